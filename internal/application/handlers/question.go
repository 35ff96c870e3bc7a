package handlers

import (
	"fmt"
	"math/rand/v2"

	"github.com/ersonp/archiquiz/internal/domain/entities"
	"github.com/ersonp/archiquiz/internal/domain/quiz"
)

// QuestionHandler answers one-off questions about a catalog building
// without a session or a stored score.
type QuestionHandler struct {
	catalog *quiz.Catalog
	judge   *quiz.Judge
}

// NewQuestionHandler creates a handler judging with the given tolerances.
func NewQuestionHandler(catalog *quiz.Catalog, opts quiz.MatchOptions) *QuestionHandler {
	return &QuestionHandler{
		catalog: catalog,
		judge:   quiz.NewJudge(opts),
	}
}

// JudgeRequest is one answer to judge.
type JudgeRequest struct {
	BuildingID string
	Kind       entities.QuestionKind
	Answer     string
	// Choice judges Answer as a selected option instead of typed text.
	Choice bool
}

// Judge judges the request's answer.
func (h *QuestionHandler) Judge(req JudgeRequest) (quiz.Judgement, error) {
	b, err := h.find(req.BuildingID)
	if err != nil {
		return quiz.Judgement{}, err
	}

	if req.Choice {
		return h.judge.Choice(b, req.Kind, req.Answer)
	}
	return h.judge.FreeText(b, req.Kind, req.Answer)
}

// Options returns count multiple-choice options for a building and kind.
func (h *QuestionHandler) Options(buildingID string, kind entities.QuestionKind, count int, rng *rand.Rand) ([]string, error) {
	b, err := h.find(buildingID)
	if err != nil {
		return nil, err
	}
	return quiz.BuildOptions(h.catalog.All(), b, kind, count, rng)
}

// Reveal returns the solution message.
func (h *QuestionHandler) Reveal(buildingID string, kind entities.QuestionKind) (string, error) {
	b, err := h.find(buildingID)
	if err != nil {
		return "", err
	}
	return quiz.Reveal(b, kind)
}

func (h *QuestionHandler) find(id string) (*entities.EnrichedBuilding, error) {
	b, ok := h.catalog.Find(id)
	if !ok {
		return nil, fmt.Errorf("building not found: %s", id)
	}
	return b, nil
}
