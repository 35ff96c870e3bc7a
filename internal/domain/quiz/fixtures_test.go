package quiz

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ersonp/archiquiz/internal/domain/entities"
)

func sampleBuildings() []entities.Building {
	return []entities.Building{
		{
			ID:        "zwinger",
			Name:      "Zwinger",
			Image:     "./assets/images/zwinger.jpg",
			Architect: "Matthäus Daniel Pöppelmann",
			Era:       "Barock",
		},
		{
			ID:        "guggenheim-bilbao",
			Name:      "Guggenheim-Museum Bilbao",
			Image:     "./assets/images/guggenheim-bilbao.jpg",
			Architect: "Frank Gehry; Partner Studio",
			Era:       "Dekonstruktivismus",
		},
		{
			ID:          "petersdom",
			Name:        "St. Peter's – Rome",
			Image:       "./assets/images/petersdom.jpg",
			Architect:   "Donato Bramante, Michelangelo und Carlo Maderno",
			Era:         "Renaissance / Barock",
			NameAliases: []string{"Petersdom", "Sankt Peter"},
		},
		{
			ID:        "bauhaus-dessau",
			Name:      "Bauhausgebäude (Dessau)",
			Image:     "./assets/images/bauhaus.jpg",
			Architect: "Walter Gropius",
			Era:       "Klassische Moderne",
		},
		{
			ID:               "elbphilharmonie",
			Name:             "Elbphilharmonie",
			Image:            "./assets/images/elbphilharmonie.jpg",
			Architect:        "Herzog & de Meuron",
			Era:              "Zeitgenössische Architektur",
			ArchitectAliases: []string{"Herzog und de Meuron"},
		},
		{
			ID:        "ronchamp",
			Name:      "Notre-Dame-du-Haut Ronchamp",
			Image:     "./assets/images/ronchamp.jpg",
			Architect: "Le Corbusier",
			Era:       "Moderne",
		},
	}
}

func sampleCatalog(t *testing.T) []entities.EnrichedBuilding {
	t.Helper()
	catalog, err := EnrichCatalog(sampleBuildings())
	require.NoError(t, err)
	return catalog
}

func findBuilding(t *testing.T, catalog []entities.EnrichedBuilding, id string) *entities.EnrichedBuilding {
	t.Helper()
	for i := range catalog {
		if catalog[i].ID() == id {
			return &catalog[i]
		}
	}
	t.Fatalf("building %q not in catalog", id)
	return nil
}
