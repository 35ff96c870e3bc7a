package entities

import (
	"fmt"
	"strings"
)

// QuestionKind selects which attribute of a building is asked about.
type QuestionKind string

// The closed set of question kinds.
const (
	KindName           QuestionKind = "name"
	KindAuthor         QuestionKind = "author"
	KindClassification QuestionKind = "classification"
)

// QuestionKinds lists every valid kind in a stable order.
var QuestionKinds = []QuestionKind{KindAuthor, KindName, KindClassification}

// IsValid reports whether k belongs to the closed set of kinds.
func (k QuestionKind) IsValid() bool {
	switch k {
	case KindName, KindAuthor, KindClassification:
		return true
	default:
		return false
	}
}

// Prompt returns the question text shown for the kind.
func (k QuestionKind) Prompt() string {
	switch k {
	case KindName:
		return "What is this building called?"
	case KindAuthor:
		return "Who is the architect?"
	case KindClassification:
		return "Which era does this building belong to?"
	default:
		return ""
	}
}

// ParseQuestionKind converts user input into a QuestionKind.
// The catalog vocabulary "architect" and "era" is accepted as well.
func ParseQuestionKind(s string) (QuestionKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "name":
		return KindName, nil
	case "author", "architect":
		return KindAuthor, nil
	case "classification", "era":
		return KindClassification, nil
	default:
		return "", fmt.Errorf("invalid question kind %q (valid: name, author, classification)", s)
	}
}

// Presentation is how a question is offered to the player.
type Presentation string

// Presentations.
const (
	PresentChoice Presentation = "choice"
	PresentText   Presentation = "text"
)

// Mode decides which presentation the next question uses.
type Mode string

// Modes, in toggle order.
const (
	ModeRandom Mode = "random"
	ModeChoice Mode = "choice"
	ModeText   Mode = "text"
)

// Next returns the mode that follows m when toggling.
func (m Mode) Next() Mode {
	switch m {
	case ModeRandom:
		return ModeChoice
	case ModeChoice:
		return ModeText
	default:
		return ModeRandom
	}
}

// ParseMode converts user input into a Mode.
func ParseMode(s string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(s))) {
	case ModeRandom, "":
		return ModeRandom, nil
	case ModeChoice, "mc":
		return ModeChoice, nil
	case ModeText, "input":
		return ModeText, nil
	default:
		return "", fmt.Errorf("invalid mode %q (valid: random, choice, text)", s)
	}
}
