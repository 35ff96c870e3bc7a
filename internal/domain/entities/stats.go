package entities

import "time"

// Stats is the running score of a player.
type Stats struct {
	Score      int       `json:"score"`
	Total      int       `json:"total"`
	Streak     int       `json:"streak"`
	BestStreak int       `json:"best_streak"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// Record applies the outcome of one answered question.
func (s *Stats) Record(correct bool) {
	s.Total++
	if !correct {
		s.Streak = 0
		return
	}
	s.Score++
	s.Streak++
	if s.Streak > s.BestStreak {
		s.BestStreak = s.Streak
	}
}

// Attempt is one judged answer.
type Attempt struct {
	ID           string       `json:"id"`
	BuildingID   string       `json:"building_id"`
	Kind         QuestionKind `json:"kind"`
	Presentation Presentation `json:"presentation"`
	Input        string       `json:"input"`
	Correct      bool         `json:"correct"`
	CreatedAt    time.Time    `json:"created_at"`
}

// KindSummary aggregates attempts for one question kind.
type KindSummary struct {
	Kind     QuestionKind `json:"kind"`
	Attempts int          `json:"attempts"`
	Correct  int          `json:"correct"`
}

// Accuracy returns the share of correct attempts in [0, 1].
func (k KindSummary) Accuracy() float64 {
	if k.Attempts == 0 {
		return 0
	}
	return float64(k.Correct) / float64(k.Attempts)
}
