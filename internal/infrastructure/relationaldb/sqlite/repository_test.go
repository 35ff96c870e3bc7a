package sqlite

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ersonp/archiquiz/internal/domain/entities"
	"github.com/ersonp/archiquiz/internal/infrastructure/config"
)

// setupTestRepo creates an in-memory SQLite repository for testing.
func setupTestRepo(t *testing.T) *Repository {
	t.Helper()
	repo, err := NewRepository(config.SQLiteConfig{Path: ":memory:"})
	require.NoError(t, err)
	t.Cleanup(func() { repo.Close() })

	err = repo.EnsureSchema(context.Background())
	require.NoError(t, err)

	return repo
}

// fixClock makes timeNow return base, base+1s, base+2s, ...
func fixClock(t *testing.T) {
	t.Helper()
	base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	n := 0
	orig := timeNow
	timeNow = func() time.Time {
		n++
		return base.Add(time.Duration(n) * time.Second)
	}
	t.Cleanup(func() { timeNow = orig })
}

func TestNewRepository(t *testing.T) {
	t.Run("success with memory database", func(t *testing.T) {
		repo, err := NewRepository(config.SQLiteConfig{Path: ":memory:"})
		require.NoError(t, err)
		defer repo.Close()
		assert.NotNil(t, repo)
	})

	t.Run("creates parent directory", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "players", "anna", "stats.db")
		repo, err := NewRepository(config.SQLiteConfig{Path: path})
		require.NoError(t, err)
		defer repo.Close()

		require.NoError(t, repo.EnsureSchema(context.Background()))
		assert.FileExists(t, path)
		assert.Equal(t, path, repo.Path())
	})

	t.Run("error with empty path", func(t *testing.T) {
		_, err := NewRepository(config.SQLiteConfig{Path: ""})
		require.Error(t, err)
	})
}

func TestRepository_EnsureSchema(t *testing.T) {
	repo := setupTestRepo(t)

	tables := []string{"stats", "attempts"}
	for _, table := range tables {
		var count int
		err := repo.db.QueryRow(`SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name=?`, table).Scan(&count)
		require.NoError(t, err)
		assert.Equal(t, 1, count, "table %s should exist", table)
	}
}

func TestRepository_EnsureSchema_Idempotent(t *testing.T) {
	repo := setupTestRepo(t)

	err := repo.EnsureSchema(context.Background())
	require.NoError(t, err)
}

func TestRepository_LoadStats_Empty(t *testing.T) {
	repo := setupTestRepo(t)

	stats, err := repo.LoadStats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, entities.Stats{}, stats)
}

func TestRepository_RecordAttempt(t *testing.T) {
	fixClock(t)
	repo := setupTestRepo(t)
	ctx := context.Background()

	attempt := &entities.Attempt{
		BuildingID:   "zwinger",
		Kind:         entities.KindName,
		Presentation: entities.PresentText,
		Input:        "Zwinger",
		Correct:      true,
	}
	stats := entities.Stats{Score: 1, Total: 1, Streak: 1, BestStreak: 1}

	err := repo.RecordAttempt(ctx, attempt, stats)
	require.NoError(t, err)
	assert.NotEmpty(t, attempt.ID)
	assert.False(t, attempt.CreatedAt.IsZero())

	loaded, err := repo.LoadStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, loaded.Score)
	assert.Equal(t, 1, loaded.Total)
	assert.Equal(t, 1, loaded.Streak)
	assert.Equal(t, 1, loaded.BestStreak)

	// Second attempt overwrites the single stats row.
	wrong := &entities.Attempt{
		BuildingID:   "petersdom",
		Kind:         entities.KindAuthor,
		Presentation: entities.PresentChoice,
		Input:        "Le Corbusier",
	}
	err = repo.RecordAttempt(ctx, wrong, entities.Stats{Score: 1, Total: 2, Streak: 0, BestStreak: 1})
	require.NoError(t, err)

	loaded, err = repo.LoadStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, loaded.Score)
	assert.Equal(t, 2, loaded.Total)
	assert.Equal(t, 0, loaded.Streak)
	assert.Equal(t, 1, loaded.BestStreak)

	var rows int
	require.NoError(t, repo.db.QueryRow(`SELECT COUNT(*) FROM stats`).Scan(&rows))
	assert.Equal(t, 1, rows)
}

func TestRepository_RecordAttempt_KeepsGivenID(t *testing.T) {
	repo := setupTestRepo(t)
	ctx := context.Background()

	attempt := &entities.Attempt{
		ID:           "fixed-id",
		BuildingID:   "zwinger",
		Kind:         entities.KindName,
		Presentation: entities.PresentText,
		Input:        "x",
	}
	require.NoError(t, repo.RecordAttempt(ctx, attempt, entities.Stats{Total: 1}))
	assert.Equal(t, "fixed-id", attempt.ID)

	// Duplicate primary key rolls back, leaving stats untouched.
	err := repo.RecordAttempt(ctx, attempt, entities.Stats{Total: 99})
	require.Error(t, err)

	loaded, err := repo.LoadStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, loaded.Total)
}

func TestRepository_ResetStats(t *testing.T) {
	repo := setupTestRepo(t)
	ctx := context.Background()

	attempt := &entities.Attempt{BuildingID: "zwinger", Kind: entities.KindName, Presentation: entities.PresentText, Input: "Zwinger", Correct: true}
	require.NoError(t, repo.RecordAttempt(ctx, attempt, entities.Stats{Score: 1, Total: 1, Streak: 1, BestStreak: 1}))

	require.NoError(t, repo.ResetStats(ctx))

	loaded, err := repo.LoadStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, loaded.Score)
	assert.Equal(t, 0, loaded.Total)
	assert.Equal(t, 0, loaded.BestStreak)

	// History survives a reset.
	attempts, err := repo.ListAttempts(ctx, 10)
	require.NoError(t, err)
	assert.Len(t, attempts, 1)
}

func TestRepository_ListAttempts(t *testing.T) {
	fixClock(t)
	repo := setupTestRepo(t)
	ctx := context.Background()

	inputs := []string{"first", "second", "third"}
	for i, in := range inputs {
		a := &entities.Attempt{
			BuildingID:   "zwinger",
			Kind:         entities.KindClassification,
			Presentation: entities.PresentChoice,
			Input:        in,
			Correct:      i%2 == 0,
		}
		require.NoError(t, repo.RecordAttempt(ctx, a, entities.Stats{Total: i + 1}))
	}

	attempts, err := repo.ListAttempts(ctx, 2)
	require.NoError(t, err)
	require.Len(t, attempts, 2)
	assert.Equal(t, "third", attempts[0].Input)
	assert.Equal(t, "second", attempts[1].Input)
	assert.Equal(t, entities.KindClassification, attempts[0].Kind)
	assert.Equal(t, entities.PresentChoice, attempts[0].Presentation)
	assert.True(t, attempts[0].Correct)
	assert.False(t, attempts[1].Correct)
	assert.True(t, attempts[0].CreatedAt.After(attempts[1].CreatedAt))
}

func TestRepository_SummarizeByKind(t *testing.T) {
	repo := setupTestRepo(t)
	ctx := context.Background()

	t.Run("empty", func(t *testing.T) {
		summaries, err := repo.SummarizeByKind(ctx)
		require.NoError(t, err)
		assert.Empty(t, summaries)
	})

	record := func(kind entities.QuestionKind, correct bool) {
		a := &entities.Attempt{BuildingID: "b", Kind: kind, Presentation: entities.PresentText, Input: "x", Correct: correct}
		require.NoError(t, repo.RecordAttempt(ctx, a, entities.Stats{}))
	}
	record(entities.KindName, true)
	record(entities.KindName, false)
	record(entities.KindName, true)
	record(entities.KindAuthor, false)

	summaries, err := repo.SummarizeByKind(ctx)
	require.NoError(t, err)
	require.Len(t, summaries, 2)

	// Ordered by kind name: "author" < "name".
	assert.Equal(t, entities.KindAuthor, summaries[0].Kind)
	assert.Equal(t, 1, summaries[0].Attempts)
	assert.Equal(t, 0, summaries[0].Correct)

	assert.Equal(t, entities.KindName, summaries[1].Kind)
	assert.Equal(t, 3, summaries[1].Attempts)
	assert.Equal(t, 2, summaries[1].Correct)
	assert.InDelta(t, 2.0/3.0, summaries[1].Accuracy(), 1e-9)
}
