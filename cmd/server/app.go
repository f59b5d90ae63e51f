package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/phrazzld/quizgen-api/internal/cache"
	"github.com/phrazzld/quizgen-api/internal/config"
	"github.com/phrazzld/quizgen-api/internal/generation"
	"github.com/phrazzld/quizgen-api/internal/pipeline"
)

// application holds all the shared application dependencies to simplify management
// and ensure proper cleanup on shutdown.
type application struct {
	config *config.Config
	logger *slog.Logger

	pipeline     *pipeline.Pipeline
	orchestrator *generation.Orchestrator
}

// newApplication builds the generation pipeline from cfg.
func newApplication(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*application, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}

	p, err := pipeline.New(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}
	return newApplicationFromPipeline(cfg, logger, p), nil
}

// assembleApplication builds the application from already constructed
// dependencies.
func assembleApplication(
	cfg *config.Config,
	logger *slog.Logger,
	gateway generation.Gateway,
	contextCache cache.ContextCache,
) (*application, error) {
	p, err := pipeline.Assemble(cfg, logger, gateway, contextCache)
	if err != nil {
		return nil, err
	}
	return newApplicationFromPipeline(cfg, logger, p), nil
}

func newApplicationFromPipeline(cfg *config.Config, logger *slog.Logger, p *pipeline.Pipeline) *application {
	logger.Info("Application initialized successfully",
		"candidates", p.Orchestrator.Candidates())

	return &application{
		config:       cfg,
		logger:       logger,
		pipeline:     p,
		orchestrator: p.Orchestrator,
	}
}

// Run serves HTTP until ctx is canceled, then shuts down gracefully.
func (app *application) Run(ctx context.Context) error {
	router := app.setupRouter()

	if err := app.startHTTPServer(ctx, router); err != nil {
		return fmt.Errorf("server error: %w", err)
	}

	return nil
}

// cleanup handles graceful shutdown of application resources.
func (app *application) cleanup() {
	if err := app.pipeline.Close(); err != nil {
		app.logger.Error("Error closing context cache", "error", err)
	}

	app.logger.Info("Application shutdown completed")
}
