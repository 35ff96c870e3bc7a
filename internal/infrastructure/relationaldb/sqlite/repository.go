// Package sqlite provides a SQLite implementation of the StatsStore interface.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/ersonp/archiquiz/internal/domain/entities"
	"github.com/ersonp/archiquiz/internal/infrastructure/config"
)

// generateUUID returns a new UUID string.
func generateUUID() string {
	return uuid.New().String()
}

// timeNow returns the current time (can be mocked in tests).
var timeNow = time.Now

// Repository implements ports.StatsStore using SQLite.
type Repository struct {
	db   *sql.DB
	path string
}

// NewRepository creates a new SQLite repository, creating the parent
// directory of the database file when needed.
func NewRepository(cfg config.SQLiteConfig) (*Repository, error) {
	if cfg.Path == "" {
		return nil, errors.New("sqlite path is required")
	}

	if cfg.Path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(cfg.Path), 0755); err != nil {
			return nil, fmt.Errorf("creating database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", cfg.Path)
	if err != nil {
		return nil, fmt.Errorf("opening sqlite database: %w", err)
	}

	// One connection: an in-memory database exists per connection, and the
	// quiz writes from a single goroutine anyway.
	db.SetMaxOpenConns(1)

	// Enable WAL mode for better concurrent read/write performance
	if _, err := db.Exec("PRAGMA journal_mode = WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enabling WAL mode: %w", err)
	}

	// Set busy timeout to avoid "database is locked" errors
	if _, err := db.Exec("PRAGMA busy_timeout = 5000"); err != nil {
		db.Close()
		return nil, fmt.Errorf("setting busy timeout: %w", err)
	}

	return &Repository{
		db:   db,
		path: cfg.Path,
	}, nil
}

// Close closes the database connection.
func (r *Repository) Close() error {
	return r.db.Close()
}

// Path returns the database file path.
func (r *Repository) Path() string {
	return r.path
}

// EnsureSchema creates the database schema if it doesn't exist.
func (r *Repository) EnsureSchema(ctx context.Context) error {
	schema := `
	-- Running score (single row)
	CREATE TABLE IF NOT EXISTS stats (
		id INTEGER PRIMARY KEY CHECK (id = 1),
		score INTEGER NOT NULL DEFAULT 0,
		total INTEGER NOT NULL DEFAULT 0,
		streak INTEGER NOT NULL DEFAULT 0,
		best_streak INTEGER NOT NULL DEFAULT 0,
		updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	);

	-- Every judged answer
	CREATE TABLE IF NOT EXISTS attempts (
		id TEXT PRIMARY KEY,
		building_id TEXT NOT NULL,
		kind TEXT NOT NULL,
		presentation TEXT NOT NULL,
		input TEXT NOT NULL,
		correct INTEGER NOT NULL,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	);
	CREATE INDEX IF NOT EXISTS idx_attempts_building ON attempts(building_id);
	CREATE INDEX IF NOT EXISTS idx_attempts_kind ON attempts(kind);
	CREATE INDEX IF NOT EXISTS idx_attempts_created ON attempts(created_at);
	`

	_, err := r.db.ExecContext(ctx, schema)
	if err != nil {
		return fmt.Errorf("creating schema: %w", err)
	}
	return nil
}

// LoadStats returns the stored score, or zero stats if none was saved yet.
func (r *Repository) LoadStats(ctx context.Context) (entities.Stats, error) {
	query := `
		SELECT score, total, streak, best_streak, updated_at
		FROM stats
		WHERE id = 1
	`
	var s entities.Stats
	err := r.db.QueryRowContext(ctx, query).Scan(
		&s.Score,
		&s.Total,
		&s.Streak,
		&s.BestStreak,
		&s.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Stats{}, nil
	}
	if err != nil {
		return entities.Stats{}, fmt.Errorf("scanning stats: %w", err)
	}
	return s, nil
}

// RecordAttempt stores an attempt and the score after it in one transaction.
// An attempt without ID or timestamp gets both assigned.
func (r *Repository) RecordAttempt(ctx context.Context, attempt *entities.Attempt, stats entities.Stats) (err error) {
	if attempt.ID == "" {
		attempt.ID = generateUUID()
	}
	if attempt.CreatedAt.IsZero() {
		attempt.CreatedAt = timeNow()
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	insertAttempt := `
		INSERT INTO attempts (id, building_id, kind, presentation, input, correct, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`
	if _, err = tx.ExecContext(ctx, insertAttempt,
		attempt.ID,
		attempt.BuildingID,
		string(attempt.Kind),
		string(attempt.Presentation),
		attempt.Input,
		attempt.Correct,
		attempt.CreatedAt,
	); err != nil {
		return fmt.Errorf("saving attempt: %w", err)
	}

	if err = saveStats(ctx, tx, stats, attempt.CreatedAt); err != nil {
		return err
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("committing attempt: %w", err)
	}
	return nil
}

// ResetStats zeroes the running score. Attempt history is kept.
func (r *Repository) ResetStats(ctx context.Context) error {
	return saveStats(ctx, r.db, entities.Stats{}, timeNow())
}

// execer is satisfied by *sql.DB and *sql.Tx.
type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

func saveStats(ctx context.Context, db execer, s entities.Stats, at time.Time) error {
	query := `
		INSERT INTO stats (id, score, total, streak, best_streak, updated_at)
		VALUES (1, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			score = excluded.score,
			total = excluded.total,
			streak = excluded.streak,
			best_streak = excluded.best_streak,
			updated_at = excluded.updated_at
	`
	if _, err := db.ExecContext(ctx, query, s.Score, s.Total, s.Streak, s.BestStreak, at); err != nil {
		return fmt.Errorf("saving stats: %w", err)
	}
	return nil
}

// ListAttempts returns the most recent attempts, newest first.
func (r *Repository) ListAttempts(ctx context.Context, limit int) ([]entities.Attempt, error) {
	query := `
		SELECT id, building_id, kind, presentation, input, correct, created_at
		FROM attempts
		ORDER BY created_at DESC, rowid DESC
		LIMIT ?
	`
	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("querying attempts: %w", err)
	}
	defer rows.Close()

	var attempts []entities.Attempt
	for rows.Next() {
		var a entities.Attempt
		var kind, presentation string
		if err := rows.Scan(&a.ID, &a.BuildingID, &kind, &presentation, &a.Input, &a.Correct, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning attempt: %w", err)
		}
		a.Kind = entities.QuestionKind(kind)
		a.Presentation = entities.Presentation(presentation)
		attempts = append(attempts, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating attempts: %w", err)
	}
	return attempts, nil
}

// SummarizeByKind returns per-kind accuracy over the whole attempt history.
func (r *Repository) SummarizeByKind(ctx context.Context) ([]entities.KindSummary, error) {
	query := `
		SELECT kind, COUNT(*), COALESCE(SUM(correct), 0)
		FROM attempts
		GROUP BY kind
		ORDER BY kind
	`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying attempt summary: %w", err)
	}
	defer rows.Close()

	var summaries []entities.KindSummary
	for rows.Next() {
		var s entities.KindSummary
		var kind string
		if err := rows.Scan(&kind, &s.Attempts, &s.Correct); err != nil {
			return nil, fmt.Errorf("scanning attempt summary: %w", err)
		}
		s.Kind = entities.QuestionKind(kind)
		summaries = append(summaries, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating attempt summary: %w", err)
	}
	return summaries, nil
}
