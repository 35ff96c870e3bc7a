package services

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ersonp/archiquiz/internal/domain/entities"
	"github.com/ersonp/archiquiz/internal/domain/quiz"
)

func testBuildings() []entities.Building {
	return []entities.Building{
		{ID: "zwinger", Name: "Zwinger", Image: "z.jpg", Architect: "Matthäus Daniel Pöppelmann", Era: "Barock"},
		{ID: "bauhaus-dessau", Name: "Bauhausgebäude (Dessau)", Image: "b.jpg", Architect: "Walter Gropius", Era: "Klassische Moderne"},
		{ID: "elbphilharmonie", Name: "Elbphilharmonie", Image: "e.jpg", Architect: "Herzog & de Meuron", Era: "Zeitgenössische Architektur"},
		{ID: "ronchamp", Name: "Notre-Dame-du-Haut Ronchamp", Image: "r.jpg", Architect: "Le Corbusier", Era: "Moderne"},
		{ID: "petersdom", Name: "Petersdom", Image: "p.jpg", Architect: "Donato Bramante, Michelangelo", Era: "Renaissance / Barock"},
	}
}

func testCatalog(t *testing.T) *quiz.Catalog {
	t.Helper()
	c, err := quiz.NewCatalog(testBuildings())
	require.NoError(t, err)
	return c
}

func testRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed+1))
}
