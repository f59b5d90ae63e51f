// Package pipeline builds the quiz generation pipeline from configuration.
// The API server and the quizgen CLI both construct it here so they run the
// same candidate models, deadlines, bounds and cache.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/phrazzld/quizgen-api/internal/cache"
	"github.com/phrazzld/quizgen-api/internal/config"
	"github.com/phrazzld/quizgen-api/internal/generation"
	"github.com/phrazzld/quizgen-api/internal/platform/gemini"
)

// Pipeline is a ready orchestrator together with the resources it owns.
type Pipeline struct {
	Orchestrator *generation.Orchestrator
	Cache        cache.ContextCache
}

// New creates the Gemini gateway and context cache described by cfg and
// assembles them into a Pipeline.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Pipeline, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}

	gateway, err := gemini.NewGateway(ctx, logger, cfg.LLM)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Gemini gateway: %w", err)
	}
	logger.Info("Gemini gateway initialized successfully")

	contextCache, err := cache.New(ctx, cfg.Cache, logger.With("component", "context_cache"))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize context cache: %w", err)
	}

	p, err := Assemble(cfg, logger, gateway, contextCache)
	if err != nil {
		_ = contextCache.Close()
		return nil, err
	}
	return p, nil
}

// Assemble wires already constructed dependencies into a Pipeline.
func Assemble(
	cfg *config.Config,
	logger *slog.Logger,
	gateway generation.Gateway,
	contextCache cache.ContextCache,
) (*Pipeline, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}
	if contextCache == nil {
		contextCache = cache.NewNoOpCache()
	}

	orchestrator, err := generation.NewOrchestrator(
		gateway,
		OrchestratorConfig(cfg),
		logger.With("component", "orchestrator"),
		generation.WithContextCache(contextCache),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create orchestrator: %w", err)
	}

	return &Pipeline{Orchestrator: orchestrator, Cache: contextCache}, nil
}

// OrchestratorConfig maps application configuration to orchestrator settings.
func OrchestratorConfig(cfg *config.Config) generation.Config {
	return generation.Config{
		PrimaryModel: cfg.LLM.ModelName,
		KnownModels:  cfg.LLM.KnownModels,
		CallTimeout:  cfg.LLM.CallTimeout(),
		Bounds:       cfg.Quiz.Bounds(),
	}
}

// Close releases the pipeline's cache connection.
func (p *Pipeline) Close() error {
	if p == nil || p.Cache == nil {
		return nil
	}
	return p.Cache.Close()
}
