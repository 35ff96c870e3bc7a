// Package handlers contains application use case handlers.
package handlers

import (
	"context"
	"fmt"

	"github.com/ersonp/archiquiz/internal/domain/ports"
	"github.com/ersonp/archiquiz/internal/infrastructure/config"
)

// InitHandler handles project initialization.
type InitHandler struct {
	store ports.StatsStore
}

// NewInitHandler creates a new init handler. A nil store skips creating the
// score database.
func NewInitHandler(store ports.StatsStore) *InitHandler {
	return &InitHandler{
		store: store,
	}
}

// InitResult contains the result of initialization.
type InitResult struct {
	ConfigPath  string
	CatalogPath string
}

// Handle writes the default config and prepares the score database.
func (h *InitHandler) Handle(ctx context.Context, basePath string) (*InitResult, error) {
	if config.Exists(basePath) {
		return nil, fmt.Errorf("archiquiz already initialized in %s", basePath)
	}

	if err := config.WriteDefault(basePath); err != nil {
		return nil, fmt.Errorf("writing default config: %w", err)
	}

	cfg, err := config.Load(basePath)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	if h.store != nil {
		if err := h.store.EnsureSchema(ctx); err != nil {
			return nil, fmt.Errorf("creating stats schema: %w", err)
		}
	}

	return &InitResult{
		ConfigPath:  config.ConfigFilePath(basePath),
		CatalogPath: cfg.Catalog.Path,
	}, nil
}
