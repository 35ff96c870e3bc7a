package services

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"

	"go.uber.org/zap"

	"github.com/ersonp/archiquiz/internal/domain/entities"
	"github.com/ersonp/archiquiz/internal/domain/ports"
	"github.com/ersonp/archiquiz/internal/domain/quiz"
)

var (
	// ErrNoQuestion is returned when answering before a question was drawn.
	ErrNoQuestion = errors.New("no current question")
	// ErrAlreadyAnswered is returned when the current question was already
	// answered or revealed.
	ErrAlreadyAnswered = errors.New("question already answered")
)

// SessionOptions controls a quiz session.
type SessionOptions struct {
	OptionCount int
	Mode        entities.Mode
	Match       quiz.MatchOptions
}

// DefaultSessionOptions returns four options, random mode and the default
// tolerances.
func DefaultSessionOptions() SessionOptions {
	return SessionOptions{
		OptionCount: 4,
		Mode:        entities.ModeRandom,
		Match:       quiz.DefaultMatchOptions(),
	}
}

// Question is the question currently asked.
type Question struct {
	Building     *entities.EnrichedBuilding
	Kind         entities.QuestionKind
	Presentation entities.Presentation
	// Options is set for multiple-choice questions only.
	Options  []string
	Answered bool
}

// Prompt returns the question text.
func (q *Question) Prompt() string {
	return q.Kind.Prompt()
}

// SessionService runs a quiz over an immutable catalog and keeps the
// player's score in a StatsStore. It is not safe for concurrent use.
type SessionService struct {
	catalog *quiz.Catalog
	store   ports.StatsStore
	judge   *quiz.Judge
	rng     *rand.Rand
	logger  *zap.Logger

	optionCount int
	mode        entities.Mode
	current     *Question
	stats       entities.Stats
}

// NewSessionService creates a session and loads the saved score.
func NewSessionService(ctx context.Context, catalog *quiz.Catalog, store ports.StatsStore, rng *rand.Rand, opts SessionOptions, logger *zap.Logger) (*SessionService, error) {
	if opts.OptionCount < 2 {
		opts.OptionCount = DefaultSessionOptions().OptionCount
	}
	if opts.Mode == "" {
		opts.Mode = entities.ModeRandom
	}

	stats, err := store.LoadStats(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading stats: %w", err)
	}

	return &SessionService{
		catalog:     catalog,
		store:       store,
		judge:       quiz.NewJudge(opts.Match),
		rng:         rng,
		logger:      logger,
		optionCount: opts.OptionCount,
		mode:        opts.Mode,
		stats:       stats,
	}, nil
}

// Next draws a new question: a uniformly random building and kind, presented
// according to the current mode.
func (s *SessionService) Next() (*Question, error) {
	b := s.catalog.At(s.rng.IntN(s.catalog.Len()))
	kind := entities.QuestionKinds[s.rng.IntN(len(entities.QuestionKinds))]

	q := &Question{
		Building:     b,
		Kind:         kind,
		Presentation: s.presentation(),
	}

	if q.Presentation == entities.PresentChoice {
		options, err := quiz.BuildOptions(s.catalog.All(), b, kind, s.optionCount, s.rng)
		if err != nil {
			return nil, fmt.Errorf("drawing question: %w", err)
		}
		q.Options = options
	}

	s.current = q
	return q, nil
}

func (s *SessionService) presentation() entities.Presentation {
	switch s.mode {
	case entities.ModeChoice:
		return entities.PresentChoice
	case entities.ModeText:
		return entities.PresentText
	default:
		if s.rng.IntN(2) == 0 {
			return entities.PresentChoice
		}
		return entities.PresentText
	}
}

// Current returns the current question, or nil before the first Next.
func (s *SessionService) Current() *Question {
	return s.current
}

// AnswerText judges typed text against the current question.
// A judgement is returned even when persisting the score fails.
func (s *SessionService) AnswerText(ctx context.Context, input string) (quiz.Judgement, error) {
	q, err := s.open()
	if err != nil {
		return quiz.Judgement{}, err
	}

	jd, err := s.judge.FreeText(q.Building, q.Kind, input)
	if err != nil {
		return quiz.Judgement{}, err
	}
	return jd, s.record(ctx, q, input, jd)
}

// AnswerChoice judges a selected option of the current question.
func (s *SessionService) AnswerChoice(ctx context.Context, selected string) (quiz.Judgement, error) {
	q, err := s.open()
	if err != nil {
		return quiz.Judgement{}, err
	}

	jd, err := s.judge.Choice(q.Building, q.Kind, selected)
	if err != nil {
		return quiz.Judgement{}, err
	}
	return jd, s.record(ctx, q, selected, jd)
}

// Reveal closes the current question and returns its solution. It does not
// change the score.
func (s *SessionService) Reveal() (string, error) {
	q, err := s.open()
	if err != nil {
		return "", err
	}

	msg, err := quiz.Reveal(q.Building, q.Kind)
	if err != nil {
		return "", err
	}
	q.Answered = true
	return msg, nil
}

func (s *SessionService) open() (*Question, error) {
	if s.current == nil {
		return nil, ErrNoQuestion
	}
	if s.current.Answered {
		return nil, ErrAlreadyAnswered
	}
	return s.current, nil
}

func (s *SessionService) record(ctx context.Context, q *Question, input string, jd quiz.Judgement) error {
	q.Answered = true
	s.stats.Record(jd.Correct)

	attempt := &entities.Attempt{
		BuildingID:   q.Building.ID(),
		Kind:         q.Kind,
		Presentation: q.Presentation,
		Input:        input,
		Correct:      jd.Correct,
	}
	if err := s.store.RecordAttempt(ctx, attempt, s.stats); err != nil {
		return fmt.Errorf("saving attempt: %w", err)
	}

	s.logger.Debug("attempt recorded",
		zap.String("id", attempt.ID),
		zap.String("building", attempt.BuildingID),
		zap.String("kind", string(attempt.Kind)),
		zap.Bool("correct", attempt.Correct),
		zap.String("rule", jd.Rule),
	)
	return nil
}

// Mode returns the current presentation mode.
func (s *SessionService) Mode() entities.Mode {
	return s.mode
}

// SetMode changes the mode used for following questions.
func (s *SessionService) SetMode(m entities.Mode) {
	s.mode = m
}

// ToggleMode advances random → choice → text → random and returns the new mode.
func (s *SessionService) ToggleMode() entities.Mode {
	s.mode = s.mode.Next()
	return s.mode
}

// Stats returns the running score.
func (s *SessionService) Stats() entities.Stats {
	return s.stats
}

// ResetStats zeroes the running score.
func (s *SessionService) ResetStats(ctx context.Context) error {
	if err := s.store.ResetStats(ctx); err != nil {
		return fmt.Errorf("resetting stats: %w", err)
	}
	s.stats = entities.Stats{}
	s.logger.Info("stats reset")
	return nil
}
