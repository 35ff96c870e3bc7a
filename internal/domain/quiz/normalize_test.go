package quiz

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "empty", input: "", expected: ""},
		{name: "whitespace only", input: "   \t ", expected: ""},
		{name: "upper case umlaut", input: "  MÜNCHEN ", expected: "munchen"},
		{name: "lower case umlaut", input: "münchen", expected: "munchen"},
		{name: "sharp s", input: "Straße", expected: "strasse"},
		{name: "accents", input: "Sagrada Família", expected: "sagrada familia"},
		{name: "hyphen becomes space", input: "Notre-Dame de Paris", expected: "notre dame de paris"},
		{name: "parentheses", input: "Villa Savoye (Poissy)", expected: "villa savoye poissy"},
		{name: "apostrophe", input: "St. Peter's", expected: "st peter s"},
		{name: "typographic quotes", input: "„Haus“ am Horn", expected: "haus am horn"},
		{name: "ampersand spaced", input: "Herzog & de Meuron", expected: "herzog und de meuron"},
		{name: "ampersand unspaced", input: "Herzog&de Meuron", expected: "herzog und de meuron"},
		{name: "sankt abbreviated", input: "Sankt Peter", expected: "st peter"},
		{name: "sankt inside word kept", input: "Sanktuarium", expected: "sanktuarium"},
		{name: "collapse whitespace", input: "Le   Corbusier\n", expected: "le corbusier"},
		{name: "underscore and tilde", input: "a_b~c", expected: "a b c"},
		{name: "accent before punctuation", input: "Église-Saint-Étienne", expected: "eglise saint etienne"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Normalize(tt.input))
		})
	}
}

func TestNormalize_CaseAndAccentInsensitive(t *testing.T) {
	assert.Equal(t, Normalize("munchen"), Normalize("MÜNCHEN"))
	assert.Equal(t, Normalize("münchen"), Normalize("MÜNCHEN"))
	assert.Equal(t, Normalize("Sankt Peter"), Normalize("St. Peter"))
}

func TestNormalize_Idempotent(t *testing.T) {
	inputs := []string{
		"", "MÜNCHEN", "Straße", "St. Peter's – Rome", "Herzog & de Meuron",
		"Sankt  Gallen", "Bauhausgebäude (Dessau)", "Œuvre — «Le Corbusier»",
		"Frank Gehry; Partner Studio", "Renaissance / Barock", "a&&b",
	}

	for _, in := range inputs {
		once := Normalize(in)
		assert.Equal(t, once, Normalize(once), "input %q", in)
	}
}
