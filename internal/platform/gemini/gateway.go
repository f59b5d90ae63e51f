package gemini

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/phrazzld/quizgen-api/internal/config"
	"github.com/phrazzld/quizgen-api/internal/generation"
	"google.golang.org/genai"
)

// contentGenerator is the part of the genai client used by Gateway.
// *genai.Models satisfies it.
type contentGenerator interface {
	GenerateContent(
		ctx context.Context,
		model string,
		contents []*genai.Content,
		config *genai.GenerateContentConfig,
	) (*genai.GenerateContentResponse, error)
}

// Gateway implements generation.Gateway on top of the Gemini API.
// It is safe for concurrent use.
type Gateway struct {
	models contentGenerator
	logger *slog.Logger
}

var _ generation.Gateway = (*Gateway)(nil)

// NewGateway creates a Gateway with a Gemini client authenticated by the
// configured API key.
func NewGateway(ctx context.Context, logger *slog.Logger, cfg config.LLMConfig) (*Gateway, error) {
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}

	if strings.TrimSpace(cfg.GeminiAPIKey) == "" {
		return nil, fmt.Errorf("%w: gemini API key cannot be empty", generation.ErrInvalidConfig)
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.GeminiAPIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create Gemini client: %v",
			generation.ErrInvalidConfig, err)
	}

	return newGateway(client.Models, logger), nil
}

func newGateway(models contentGenerator, logger *slog.Logger) *Gateway {
	return &Gateway{
		models: models,
		logger: logger.With("component", "gemini_gateway"),
	}
}

// Generate asks model for text. Browsing enables the URL context tool; a
// schema requests JSON output constrained by it.
func (g *Gateway) Generate(
	ctx context.Context,
	model string,
	prompt string,
	opts generation.CallOptions,
) (string, error) {
	mode := callMode(opts)
	g.logger.DebugContext(ctx, "Making Gemini API call",
		"model", model,
		"mode", mode,
		"prompt_length", len(prompt))

	start := time.Now()
	resp, err := g.models.GenerateContent(ctx, model, genai.Text(prompt), generateConfig(opts))
	latency := time.Since(start)

	if err != nil {
		err = translateError(err)
		g.logger.DebugContext(ctx, "Gemini API call failed",
			"model", model,
			"mode", mode,
			"latency_ms", latency.Milliseconds(),
			"error", err)
		return "", err
	}

	text, err := responseText(resp)
	if err != nil {
		g.logger.DebugContext(ctx, "Gemini API response rejected",
			"model", model,
			"mode", mode,
			"latency_ms", latency.Milliseconds(),
			"error", err)
		return "", err
	}

	g.logger.DebugContext(ctx, "Gemini API call successful",
		"model", model,
		"mode", mode,
		"latency_ms", latency.Milliseconds(),
		"response_length", len(text))

	return text, nil
}

func generateConfig(opts generation.CallOptions) *genai.GenerateContentConfig {
	cfg := &genai.GenerateContentConfig{}

	if opts.Browsing {
		cfg.Tools = []*genai.Tool{{URLContext: &genai.URLContext{}}}
	}

	if opts.Schema != nil {
		cfg.ResponseMIMEType = "application/json"
		cfg.ResponseSchema = toGenaiSchema(opts.Schema)
	}

	return cfg
}

func callMode(opts generation.CallOptions) string {
	switch {
	case opts.Browsing && opts.Schema != nil:
		return "browsing+structured"
	case opts.Browsing:
		return "browsing"
	case opts.Schema != nil:
		return "structured"
	default:
		return "text"
	}
}
