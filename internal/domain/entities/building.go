// Package entities contains core domain data structures.
package entities

// Building is one quizzable catalog record as loaded from the catalog file.
// It is immutable once loaded; enrichment derives an EnrichedBuilding from it.
type Building struct {
	ID               string   `json:"id" yaml:"id"`
	Name             string   `json:"name" yaml:"name"`
	Image            string   `json:"image" yaml:"image"`
	Credit           string   `json:"credit,omitempty" yaml:"credit,omitempty"`
	Architect        string   `json:"architect" yaml:"architect"`
	Era              string   `json:"era" yaml:"era"`
	Architects       []string `json:"architects,omitempty" yaml:"architects,omitempty"`
	Eras             []string `json:"eras,omitempty" yaml:"eras,omitempty"`
	NameAliases      []string `json:"nameAliases,omitempty" yaml:"nameAliases,omitempty"`
	ArchitectAliases []string `json:"architectAliases,omitempty" yaml:"architectAliases,omitempty"`
	EraAliases       []string `json:"eraAliases,omitempty" yaml:"eraAliases,omitempty"`
	Explanation      string   `json:"explanation,omitempty" yaml:"explanation,omitempty"`
}
