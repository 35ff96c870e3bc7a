package quiz

import (
	"errors"
	"fmt"

	"github.com/ersonp/archiquiz/internal/domain/entities"
)

// ErrEmptyCatalog is returned when a catalog has no buildings.
var ErrEmptyCatalog = errors.New("catalog is empty")

// Catalog is an immutable, enriched building collection indexed by id.
type Catalog struct {
	buildings []entities.EnrichedBuilding
	byID      map[string]int
}

// NewCatalog enriches records and indexes them. An empty record list is an
// error since nothing could be asked.
func NewCatalog(records []entities.Building) (*Catalog, error) {
	if len(records) == 0 {
		return nil, ErrEmptyCatalog
	}
	enriched, err := EnrichCatalog(records)
	if err != nil {
		return nil, fmt.Errorf("building catalog: %w", err)
	}

	byID := make(map[string]int, len(enriched))
	for i := range enriched {
		byID[enriched[i].ID()] = i
	}
	return &Catalog{buildings: enriched, byID: byID}, nil
}

// Len returns the number of buildings.
func (c *Catalog) Len() int {
	return len(c.buildings)
}

// All returns the buildings in catalog order. Callers must not modify them.
func (c *Catalog) All() []entities.EnrichedBuilding {
	return c.buildings
}

// At returns the building at index i.
func (c *Catalog) At(i int) *entities.EnrichedBuilding {
	return &c.buildings[i]
}

// Find returns the building with the given id.
func (c *Catalog) Find(id string) (*entities.EnrichedBuilding, bool) {
	i, ok := c.byID[id]
	if !ok {
		return nil, false
	}
	return &c.buildings[i], true
}
