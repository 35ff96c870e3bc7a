package handlers

import (
	"fmt"
	"os"

	"github.com/ersonp/archiquiz/internal/domain/quiz"
	"github.com/ersonp/archiquiz/internal/domain/services"
	"github.com/ersonp/archiquiz/internal/infrastructure/parsers"
)

// CatalogHandler loads building catalogs from files.
type CatalogHandler struct {
	service *services.CatalogService
}

// NewCatalogHandler creates a new catalog handler.
func NewCatalogHandler(service *services.CatalogService) *CatalogHandler {
	return &CatalogHandler{
		service: service,
	}
}

// Handle parses, validates and enriches the catalog at filePath.
// Format is "json", "csv", "yaml" or "auto" (by extension).
func (h *CatalogHandler) Handle(filePath, format string) (*quiz.Catalog, error) {
	var parser parsers.Parser
	if format == "" || format == "auto" {
		parser = parsers.ForFile(filePath)
	} else {
		parser = parsers.ForFormat(format)
	}

	if parser == nil {
		return nil, fmt.Errorf("unsupported format for file: %s", filePath)
	}

	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("opening catalog: %w", err)
	}
	defer file.Close()

	rawBuildings, err := parser.Parse(file)
	if err != nil {
		return nil, fmt.Errorf("parsing catalog %s: %w", filePath, err)
	}

	catalog, err := h.service.Load(rawBuildings)
	if err != nil {
		return nil, fmt.Errorf("loading catalog %s: %w", filePath, err)
	}
	return catalog, nil
}
