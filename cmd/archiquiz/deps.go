package main

import (
	"context"
	"fmt"
	"math/rand/v2"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/ersonp/archiquiz/internal/application/handlers"
	"github.com/ersonp/archiquiz/internal/domain/entities"
	"github.com/ersonp/archiquiz/internal/domain/quiz"
	"github.com/ersonp/archiquiz/internal/domain/services"
	"github.com/ersonp/archiquiz/internal/infrastructure/config"
	"github.com/ersonp/archiquiz/internal/infrastructure/logging"
	"github.com/ersonp/archiquiz/internal/infrastructure/relationaldb/sqlite"
)

// Deps holds high-level dependencies for commands.
// Only handlers and the read-only catalog are exposed.
type Deps struct {
	Config          *config.Config
	Catalog         *quiz.Catalog
	QuestionHandler *handlers.QuestionHandler
}

// internalDeps holds all dependencies including low-level components.
// Used internally by helper functions.
type internalDeps struct {
	Deps
	cwd    string
	logger *zap.Logger
}

// withDeps loads config and the catalog, then calls the provided function.
func withDeps(fn func(*Deps) error) error {
	return withInternalDeps(true, func(d *internalDeps) error {
		return fn(&d.Deps)
	})
}

// withInternalDeps loads config and the logger, and the catalog when
// loadCatalog is set. The logger is flushed on return.
func withInternalDeps(loadCatalog bool, fn func(*internalDeps) error) error {
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("getting current directory: %w", err)
	}

	cfg, err := config.Load(cwd)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if globalCatalog != "" {
		cfg.Catalog.Path = globalCatalog
	}

	logger, err := logging.New(cfg.Log)
	if err != nil {
		return fmt.Errorf("creating logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	deps := &internalDeps{
		Deps:   Deps{Config: cfg},
		cwd:    cwd,
		logger: logger,
	}

	if loadCatalog {
		handler := handlers.NewCatalogHandler(services.NewCatalogService(logger))
		catalog, err := handler.Handle(cfg.Catalog.Path, cfg.Catalog.Format)
		if err != nil {
			return err
		}
		deps.Catalog = catalog
		deps.QuestionHandler = handlers.NewQuestionHandler(catalog, cfg.Matcher.MatchOptions())
	}

	return fn(deps)
}

// withStore opens the current player's score database and ensures its schema.
func withStore(ctx context.Context, d *internalDeps, fn func(*sqlite.Repository) error) error {
	path := d.Config.StatsPath(d.cwd, globalPlayer)
	store, err := sqlite.NewRepository(config.SQLiteConfig{Path: path})
	if err != nil {
		return fmt.Errorf("creating sqlite repository: %w", err)
	}
	defer store.Close()

	if err := store.EnsureSchema(ctx); err != nil {
		return fmt.Errorf("ensuring sqlite schema: %w", err)
	}
	d.logger.Debug("stats database opened", zap.String("path", path))

	return fn(store)
}

// withStatsHandler provides access to the player's stored score.
func withStatsHandler(ctx context.Context, fn func(*handlers.StatsHandler) error) error {
	return withInternalDeps(false, func(d *internalDeps) error {
		return withStore(ctx, d, func(store *sqlite.Repository) error {
			return fn(handlers.NewStatsHandler(services.NewStatsService(store)))
		})
	})
}

// withSession builds a quiz session over the catalog and the player's score.
// An empty mode falls back to the configured one.
func withSession(ctx context.Context, mode entities.Mode, fn func(*services.SessionService) error) error {
	return withInternalDeps(true, func(d *internalDeps) error {
		if mode == "" {
			m, err := entities.ParseMode(d.Config.Quiz.Mode)
			if err != nil {
				return err
			}
			mode = m
		}

		return withStore(ctx, d, func(store *sqlite.Repository) error {
			opts := services.SessionOptions{
				OptionCount: d.Config.Quiz.OptionCount,
				Mode:        mode,
				Match:       d.Config.Matcher.MatchOptions(),
			}
			session, err := services.NewSessionService(ctx, d.Catalog, store, newRand(d.Config.Quiz.Seed), opts, d.logger)
			if err != nil {
				return err
			}
			return fn(session)
		})
	})
}

// newRand returns a generator seeded from seed, or from the clock when seed
// is zero.
func newRand(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}
