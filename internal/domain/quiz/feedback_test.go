package quiz

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComposeExplanation(t *testing.T) {
	tests := []struct {
		name     string
		labels   []string
		expected string
	}{
		{name: "no labels", labels: nil, expected: "It is Zwinger."},
		{name: "one label", labels: []string{"Baroque"}, expected: "It is Zwinger, from the Baroque era."},
		{name: "two labels", labels: []string{"Baroque", "Rococo"}, expected: "It is Zwinger, from both the Baroque and the Rococo era."},
		{name: "three labels", labels: []string{"A", "B", "C"}, expected: "It is Zwinger, from A, B and C."},
		{name: "four labels", labels: []string{"A", "B", "C", "D"}, expected: "It is Zwinger, from A, B, C and D."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ComposeExplanation("Zwinger", tt.labels))
		})
	}
}

func TestComposeExplanation_Idempotent(t *testing.T) {
	labels := []string{"Renaissance", "Barock"}
	assert.Equal(t, ComposeExplanation("Petersdom", labels), ComposeExplanation("Petersdom", labels))
}
