package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ersonp/archiquiz/internal/domain/entities"
	"github.com/ersonp/archiquiz/internal/domain/mocks"
)

func TestStatsService_Report(t *testing.T) {
	store := mocks.NewStatsStore()
	store.Stats = entities.Stats{Score: 2, Total: 3, Streak: 1, BestStreak: 2}
	store.Attempts = []entities.Attempt{
		{ID: "a1", BuildingID: "zwinger", Kind: entities.KindName, Correct: true},
		{ID: "a2", BuildingID: "zwinger", Kind: entities.KindAuthor, Correct: false},
		{ID: "a3", BuildingID: "ronchamp", Kind: entities.KindName, Correct: true},
	}
	service := NewStatsService(store)

	t.Run("without history", func(t *testing.T) {
		report, err := service.Report(context.Background(), 0)
		require.NoError(t, err)
		assert.Equal(t, 2, report.Stats.Score)
		assert.Empty(t, report.History)
		require.Len(t, report.ByKind, 2)
		assert.Equal(t, entities.KindAuthor, report.ByKind[0].Kind)
		assert.Equal(t, 2, report.ByKind[1].Correct)
	})

	t.Run("with history", func(t *testing.T) {
		report, err := service.Report(context.Background(), 2)
		require.NoError(t, err)
		require.Len(t, report.History, 2)
		assert.Equal(t, "a3", report.History[0].ID)
		assert.Equal(t, "a2", report.History[1].ID)
	})
}

func TestStatsService_Report_Error(t *testing.T) {
	store := mocks.NewStatsStore()
	store.Err = errors.New("boom")

	_, err := NewStatsService(store).Report(context.Background(), 5)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "loading stats")
}

func TestStatsService_Reset(t *testing.T) {
	store := mocks.NewStatsStore()
	store.Stats = entities.Stats{Score: 2, Total: 3}

	require.NoError(t, NewStatsService(store).Reset(context.Background()))
	assert.Equal(t, entities.Stats{}, store.Stats)
	assert.Equal(t, 1, store.ResetCallCount)
}
