// Package mocks provides mock implementations for testing.
package mocks

import (
	"context"
	"sort"
	"strconv"

	"github.com/ersonp/archiquiz/internal/domain/entities"
)

// StatsStore is an in-memory mock implementation of ports.StatsStore.
type StatsStore struct {
	Stats    entities.Stats
	Attempts []entities.Attempt
	Err      error

	// Call tracking
	RecordCallCount int
	ResetCallCount  int
	Closed          bool
}

// NewStatsStore creates a new mock StatsStore.
func NewStatsStore() *StatsStore {
	return &StatsStore{}
}

// EnsureSchema returns the configured error.
func (m *StatsStore) EnsureSchema(_ context.Context) error {
	return m.Err
}

// Close marks the store closed.
func (m *StatsStore) Close() error {
	m.Closed = true
	return nil
}

// LoadStats returns the stored stats.
func (m *StatsStore) LoadStats(_ context.Context) (entities.Stats, error) {
	if m.Err != nil {
		return entities.Stats{}, m.Err
	}
	return m.Stats, nil
}

// RecordAttempt appends the attempt and replaces the stats.
func (m *StatsStore) RecordAttempt(_ context.Context, attempt *entities.Attempt, stats entities.Stats) error {
	m.RecordCallCount++
	if m.Err != nil {
		return m.Err
	}
	if attempt.ID == "" {
		attempt.ID = "attempt-" + strconv.Itoa(len(m.Attempts)+1)
	}
	m.Attempts = append(m.Attempts, *attempt)
	m.Stats = stats
	return nil
}

// ResetStats zeroes the stored stats.
func (m *StatsStore) ResetStats(_ context.Context) error {
	m.ResetCallCount++
	if m.Err != nil {
		return m.Err
	}
	m.Stats = entities.Stats{}
	return nil
}

// ListAttempts returns the newest attempts first.
func (m *StatsStore) ListAttempts(_ context.Context, limit int) ([]entities.Attempt, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	result := make([]entities.Attempt, 0, len(m.Attempts))
	for i := len(m.Attempts) - 1; i >= 0 && len(result) < limit; i-- {
		result = append(result, m.Attempts[i])
	}
	return result, nil
}

// SummarizeByKind aggregates the stored attempts per kind.
func (m *StatsStore) SummarizeByKind(_ context.Context) ([]entities.KindSummary, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	byKind := make(map[entities.QuestionKind]*entities.KindSummary)
	for _, a := range m.Attempts {
		s, ok := byKind[a.Kind]
		if !ok {
			s = &entities.KindSummary{Kind: a.Kind}
			byKind[a.Kind] = s
		}
		s.Attempts++
		if a.Correct {
			s.Correct++
		}
	}
	result := make([]entities.KindSummary, 0, len(byKind))
	for _, s := range byKind {
		result = append(result, *s)
	}
	// Sort by kind for deterministic test results
	sort.Slice(result, func(i, j int) bool {
		return result[i].Kind < result[j].Kind
	})
	return result, nil
}
