package entities

// AnswerKey holds everything accepted as correct for one question kind.
type AnswerKey struct {
	// Answers is deduplicated by exact string equality, in insertion order.
	Answers []string `json:"answers" yaml:"answers"`
	// Display is the single human-readable rendering of the field.
	Display string `json:"display" yaml:"display"`
}

// EnrichedBuilding is a Building plus the answer keys derived from it.
type EnrichedBuilding struct {
	Building       Building  `json:"building" yaml:"building"`
	Name           AnswerKey `json:"name" yaml:"name"`
	Author         AnswerKey `json:"author" yaml:"author"`
	Classification AnswerKey `json:"classification" yaml:"classification"`
	// Labels are the canonical classification values, in catalog order.
	Labels      []string `json:"labels" yaml:"labels"`
	Explanation string   `json:"explanation" yaml:"explanation"`
}

// ID returns the building identifier.
func (e *EnrichedBuilding) ID() string {
	return e.Building.ID
}

// Key returns the answer key for kind, or false for an unknown kind.
func (e *EnrichedBuilding) Key(kind QuestionKind) (AnswerKey, bool) {
	switch kind {
	case KindName:
		return e.Name, true
	case KindAuthor:
		return e.Author, true
	case KindClassification:
		return e.Classification, true
	default:
		return AnswerKey{}, false
	}
}
