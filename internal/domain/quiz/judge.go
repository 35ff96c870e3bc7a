package quiz

import (
	"errors"
	"fmt"

	"github.com/ersonp/archiquiz/internal/domain/entities"
)

// ErrUnknownQuestionKind is returned for a kind outside the closed set.
var ErrUnknownQuestionKind = errors.New("unknown question kind")

// Feedback messages.
const (
	MessageCorrect = "Correct!"
	messageWrong   = "Wrong. Correct answer: %s."
	messageReveal  = "Solution: %s."
)

// Judgement is the outcome of one answered question.
type Judgement struct {
	Correct bool
	Message string
	// Expected is the display string of the correct answer.
	Expected string
	// Rule names the matcher rule that accepted a free-text answer.
	Rule string
}

// Judge judges answers against enriched buildings.
type Judge struct {
	matcher *Matcher
}

// NewJudge creates a judge using the given matcher options.
func NewJudge(opts MatchOptions) *Judge {
	return &Judge{matcher: NewMatcher(opts)}
}

var defaultJudge = NewJudge(DefaultMatchOptions())

// JudgeFreeText judges typed text with the default tolerances.
func JudgeFreeText(b *entities.EnrichedBuilding, kind entities.QuestionKind, input string) (Judgement, error) {
	return defaultJudge.FreeText(b, kind, input)
}

// JudgeChoice judges a selected multiple-choice option.
func JudgeChoice(b *entities.EnrichedBuilding, kind entities.QuestionKind, selected string) (Judgement, error) {
	return defaultJudge.Choice(b, kind, selected)
}

// FreeText judges typed text. Empty input is simply wrong.
func (j *Judge) FreeText(b *entities.EnrichedBuilding, kind entities.QuestionKind, input string) (Judgement, error) {
	key, err := keyFor(b, kind)
	if err != nil {
		return Judgement{}, err
	}

	m, ok := j.matcher.Match(input, key.Display, key.Answers)
	jd := verdict(b, kind, key, ok)
	jd.Rule = m.Rule
	return jd, nil
}

// Choice judges a selected option by normalized equality with the display
// string.
func (j *Judge) Choice(b *entities.EnrichedBuilding, kind entities.QuestionKind, selected string) (Judgement, error) {
	key, err := keyFor(b, kind)
	if err != nil {
		return Judgement{}, err
	}

	ok := Normalize(selected) != "" && Normalize(selected) == Normalize(key.Display)
	return verdict(b, kind, key, ok), nil
}

// Reveal returns the solution message for a question.
func Reveal(b *entities.EnrichedBuilding, kind entities.QuestionKind) (string, error) {
	key, err := keyFor(b, kind)
	if err != nil {
		return "", err
	}
	return withExplanation(b, kind, fmt.Sprintf(messageReveal, key.Display)), nil
}

func keyFor(b *entities.EnrichedBuilding, kind entities.QuestionKind) (entities.AnswerKey, error) {
	key, ok := b.Key(kind)
	if !ok {
		return entities.AnswerKey{}, fmt.Errorf("%w: %q", ErrUnknownQuestionKind, kind)
	}
	return key, nil
}

func verdict(b *entities.EnrichedBuilding, kind entities.QuestionKind, key entities.AnswerKey, correct bool) Judgement {
	msg := MessageCorrect
	if !correct {
		msg = fmt.Sprintf(messageWrong, key.Display)
	}
	return Judgement{
		Correct:  correct,
		Message:  withExplanation(b, kind, msg),
		Expected: key.Display,
	}
}

// withExplanation appends the stored explanation sentence to classification
// messages.
func withExplanation(b *entities.EnrichedBuilding, kind entities.QuestionKind, msg string) string {
	if kind != entities.KindClassification || b.Explanation == "" {
		return msg
	}
	return msg + " " + b.Explanation
}
