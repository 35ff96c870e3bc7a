package services

import (
	"context"
	"fmt"

	"github.com/ersonp/archiquiz/internal/domain/entities"
	"github.com/ersonp/archiquiz/internal/domain/ports"
)

// StatsReport is a player's score plus attempt history.
type StatsReport struct {
	Stats   entities.Stats
	ByKind  []entities.KindSummary
	History []entities.Attempt
}

// StatsService reads and resets a player's stored score.
type StatsService struct {
	store ports.StatsStore
}

// NewStatsService creates a new stats service.
func NewStatsService(store ports.StatsStore) *StatsService {
	return &StatsService{store: store}
}

// Report returns the score, per-kind accuracy and up to historyLimit recent
// attempts. A limit of zero skips the history.
func (s *StatsService) Report(ctx context.Context, historyLimit int) (*StatsReport, error) {
	stats, err := s.store.LoadStats(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading stats: %w", err)
	}

	byKind, err := s.store.SummarizeByKind(ctx)
	if err != nil {
		return nil, fmt.Errorf("summarizing attempts: %w", err)
	}

	report := &StatsReport{Stats: stats, ByKind: byKind}
	if historyLimit > 0 {
		report.History, err = s.store.ListAttempts(ctx, historyLimit)
		if err != nil {
			return nil, fmt.Errorf("listing attempts: %w", err)
		}
	}
	return report, nil
}

// Reset zeroes the stored score.
func (s *StatsService) Reset(ctx context.Context) error {
	if err := s.store.ResetStats(ctx); err != nil {
		return fmt.Errorf("resetting stats: %w", err)
	}
	return nil
}
