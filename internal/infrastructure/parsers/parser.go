// Package parsers provides parsers for loading building catalogs from various formats.
package parsers

import (
	"io"
	"path/filepath"
	"strings"

	"github.com/ersonp/archiquiz/internal/domain/entities"
)

// RawBuilding represents a catalog record parsed from an external source before validation.
type RawBuilding struct {
	ID               string   `json:"id" yaml:"id" validate:"required"`
	Name             string   `json:"name" yaml:"name" validate:"required"`
	Image            string   `json:"image" yaml:"image" validate:"required"`
	Credit           string   `json:"credit,omitempty" yaml:"credit,omitempty"`
	Architect        string   `json:"architect" yaml:"architect" validate:"required"`
	Era              string   `json:"era" yaml:"era" validate:"required"`
	Architects       []string `json:"architects,omitempty" yaml:"architects,omitempty"`
	Eras             []string `json:"eras,omitempty" yaml:"eras,omitempty"`
	NameAliases      []string `json:"nameAliases,omitempty" yaml:"nameAliases,omitempty"`
	ArchitectAliases []string `json:"architectAliases,omitempty" yaml:"architectAliases,omitempty"`
	EraAliases       []string `json:"eraAliases,omitempty" yaml:"eraAliases,omitempty"`
	Explanation      string   `json:"explanation,omitempty" yaml:"explanation,omitempty"`
	LineNum          int      `json:"-" yaml:"-"` // Record position in source file (set by parser)
}

// ToBuilding converts the raw record into a domain building.
func (r *RawBuilding) ToBuilding() entities.Building {
	return entities.Building{
		ID:               strings.TrimSpace(r.ID),
		Name:             r.Name,
		Image:            r.Image,
		Credit:           r.Credit,
		Architect:        r.Architect,
		Era:              r.Era,
		Architects:       r.Architects,
		Eras:             r.Eras,
		NameAliases:      r.NameAliases,
		ArchitectAliases: r.ArchitectAliases,
		EraAliases:       r.EraAliases,
		Explanation:      r.Explanation,
	}
}

// Parser defines the interface for parsing catalog records from various formats.
type Parser interface {
	Parse(r io.Reader) ([]RawBuilding, error)
}

// ForFormat returns the appropriate parser for the given format.
// Supported formats: "json", "csv", "yaml".
func ForFormat(format string) Parser {
	switch strings.ToLower(format) {
	case "json":
		return &JSONParser{}
	case "csv":
		return &CSVParser{}
	case "yaml", "yml":
		return &YAMLParser{}
	default:
		return nil
	}
}

// ForFile returns the appropriate parser based on file extension.
func ForFile(filename string) Parser {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".json":
		return &JSONParser{}
	case ".csv":
		return &CSVParser{}
	case ".yaml", ".yml":
		return &YAMLParser{}
	default:
		return nil
	}
}
