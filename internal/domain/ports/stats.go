// Package ports defines interfaces for external service communication.
package ports

import (
	"context"

	"github.com/ersonp/archiquiz/internal/domain/entities"
)

// StatsStore persists a player's running score and attempt history.
type StatsStore interface {
	// EnsureSchema creates the storage schema if it doesn't exist.
	EnsureSchema(ctx context.Context) error

	// Close releases the underlying connection.
	Close() error

	// LoadStats returns the saved score, or zero stats when nothing was saved.
	LoadStats(ctx context.Context) (entities.Stats, error)

	// RecordAttempt saves the attempt together with the score after it.
	// Both are written or neither is.
	RecordAttempt(ctx context.Context, attempt *entities.Attempt, stats entities.Stats) error

	// ResetStats zeroes the score without touching attempt history.
	ResetStats(ctx context.Context) error

	// ListAttempts returns up to limit attempts, newest first.
	ListAttempts(ctx context.Context, limit int) ([]entities.Attempt, error)

	// SummarizeByKind returns attempt counts per question kind.
	SummarizeByKind(ctx context.Context) ([]entities.KindSummary, error)
}
