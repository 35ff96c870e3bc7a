package handlers

import (
	"context"
	"errors"

	"github.com/ersonp/archiquiz/internal/domain/services"
)

// StatsHandler reports and resets a player's score.
type StatsHandler struct {
	service *services.StatsService
}

// NewStatsHandler creates a new stats handler.
func NewStatsHandler(service *services.StatsService) *StatsHandler {
	return &StatsHandler{
		service: service,
	}
}

// Report returns the score and, when history > 0, that many recent attempts.
func (h *StatsHandler) Report(ctx context.Context, history int) (*services.StatsReport, error) {
	if history < 0 {
		return nil, errors.New("history must not be negative")
	}
	return h.service.Report(ctx, history)
}

// Reset zeroes the score.
func (h *StatsHandler) Reset(ctx context.Context) error {
	return h.service.Reset(ctx)
}
