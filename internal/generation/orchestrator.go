package generation

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/phrazzld/quizgen-api/internal/domain"
)

// DefaultCallTimeout bounds a single outbound model call.
const DefaultCallTimeout = 60 * time.Second

// ContextCache stores context summaries by source URL so repeated requests
// for the same page can skip the browsing call.
type ContextCache interface {
	// GetSummary returns the cached summary and whether it was found.
	GetSummary(ctx context.Context, url string) (string, bool, error)
	// SetSummary stores a summary.
	SetSummary(ctx context.Context, url, summary string) error
}

// Config holds the orchestrator settings. It is read-only after construction.
type Config struct {
	// PrimaryModel is always tried first.
	PrimaryModel string
	// KnownModels are tried in order after the primary on overload.
	KnownModels []string
	// CallTimeout bounds each outbound model call. Zero means DefaultCallTimeout.
	CallTimeout time.Duration
	// Bounds resolves and validates the requested question amount.
	Bounds domain.QuestionBounds
}

// Option customizes an Orchestrator.
type Option func(*Orchestrator)

// WithContextCache enables context summary caching.
func WithContextCache(cache ContextCache) Option {
	return func(o *Orchestrator) {
		o.cache = cache
	}
}

// WithResponseValidator replaces the default response validator.
func WithResponseValidator(v *ResponseValidator) Option {
	return func(o *Orchestrator) {
		o.validator = v
	}
}

// Orchestrator runs the quiz generation pipeline:
//
//	validate input -> fetch context -> build prompt -> call model ->
//	validate response -> success | next candidate model | failed
//
// Only failures classified as KindOverloaded advance to the next candidate
// model; everything else fails immediately. Candidates are tried strictly
// one after another. An Orchestrator holds no per-request state and is safe
// for concurrent use.
type Orchestrator struct {
	gateway     Gateway
	prompts     *PromptBuilder
	validator   *ResponseValidator
	cache       ContextCache
	logger      *slog.Logger
	primary     string
	known       []string
	callTimeout time.Duration
	bounds      domain.QuestionBounds
}

// NewOrchestrator creates an Orchestrator with the provided dependencies.
func NewOrchestrator(gateway Gateway, cfg Config, logger *slog.Logger, opts ...Option) (*Orchestrator, error) {
	if gateway == nil {
		return nil, fmt.Errorf("%w: gateway cannot be nil", ErrInvalidConfig)
	}
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}
	if strings.TrimSpace(cfg.PrimaryModel) == "" {
		return nil, fmt.Errorf("%w: primary model cannot be empty", ErrInvalidConfig)
	}
	if err := cfg.Bounds.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	prompts, err := NewPromptBuilder()
	if err != nil {
		return nil, err
	}

	callTimeout := cfg.CallTimeout
	if callTimeout <= 0 {
		callTimeout = DefaultCallTimeout
	}

	o := &Orchestrator{
		gateway:     gateway,
		prompts:     prompts,
		validator:   NewResponseValidator(),
		logger:      logger,
		primary:     cfg.PrimaryModel,
		known:       append([]string(nil), cfg.KnownModels...),
		callTimeout: callTimeout,
		bounds:      cfg.Bounds,
	}
	for _, opt := range opts {
		opt(o)
	}

	return o, nil
}

// Bounds returns the question amount bounds used by GenerateQuiz.
func (o *Orchestrator) Bounds() domain.QuestionBounds {
	return o.bounds
}

// Candidates returns the ordered models GenerateQuiz will try.
func (o *Orchestrator) Candidates() []string {
	return CandidateModels(o.primary, o.known)
}

// GenerateQuiz generates a quiz of questionAmount questions (the default
// amount when nil) from the content at rawURL.
//
// Every returned error is a *ClassifiedError. Invalid input fails before any
// model call. When all candidates are overloaded the last failure is
// returned.
func (o *Orchestrator) GenerateQuiz(ctx context.Context, rawURL string, questionAmount *int) (*domain.QuizQuestions, error) {
	target, err := domain.ValidateURL(rawURL)
	if err != nil {
		return nil, ClassifyError(err)
	}

	count, err := o.bounds.Resolve(questionAmount)
	if err != nil {
		return nil, ClassifyError(err)
	}

	url := target.String()
	candidates := o.Candidates()

	var lastErr error
	for i, model := range candidates {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, callerGone(ctxErr)
		}

		o.logger.InfoContext(ctx, "Generating quiz",
			"model", model,
			"attempt", i+1,
			"candidates", len(candidates),
			"question_count", count)

		quiz, err := o.attempt(ctx, model, url, count)
		if err == nil {
			o.logger.InfoContext(ctx, "Quiz generated successfully",
				"model", model,
				"attempt", i+1,
				"question_count", len(quiz.Questions))
			return quiz, nil
		}

		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, callerGone(ctxErr)
		}

		kind := Classify(err)
		lastErr = &ClassifiedError{Kind: kind, Err: fmt.Errorf("model %s: %w", model, err)}

		if !kind.Retryable() {
			o.logger.WarnContext(ctx, "Permanent error occurred, not retrying",
				"model", model,
				"error_kind", kind.String())
			return nil, lastErr
		}

		o.logger.WarnContext(ctx, "Model unavailable, trying next candidate",
			"model", model,
			"attempt", i+1,
			"remaining", len(candidates)-i-1)
	}

	o.logger.ErrorContext(ctx, "All candidate models unavailable",
		"candidates", len(candidates))
	return nil, lastErr
}

// attempt runs both model stages against one candidate. A context fetch
// failure is retried together with the quiz call on the next candidate.
func (o *Orchestrator) attempt(ctx context.Context, model, url string, count int) (*domain.QuizQuestions, error) {
	summary, err := o.fetchContext(ctx, model, url)
	if err != nil {
		return nil, fmt.Errorf("fetch context: %w", err)
	}

	quiz, err := o.synthesizeQuiz(ctx, model, url, summary, count)
	if err != nil {
		return nil, fmt.Errorf("synthesize quiz: %w", err)
	}

	return quiz, nil
}

// fetchContext summarizes the page at url with browsing enabled and no
// output schema.
func (o *Orchestrator) fetchContext(ctx context.Context, model, url string) (string, error) {
	if o.cache != nil {
		summary, ok, err := o.cache.GetSummary(ctx, url)
		switch {
		case err != nil:
			o.logger.WarnContext(ctx, "Context cache lookup failed", "error", err)
		case ok && strings.TrimSpace(summary) != "":
			o.logger.DebugContext(ctx, "Context cache hit", "summary_length", len(summary))
			return summary, nil
		}
	}

	prompt, err := o.prompts.ContextPrompt(url)
	if err != nil {
		return "", err
	}

	summary, err := o.callModel(ctx, model, prompt, CallOptions{Browsing: true})
	if err != nil {
		return "", err
	}

	if o.cache != nil {
		if err := o.cache.SetSummary(ctx, url, summary); err != nil {
			o.logger.WarnContext(ctx, "Context cache store failed", "error", err)
		}
	}

	return summary, nil
}

// synthesizeQuiz asks for a schema-constrained quiz built from summary alone
// and validates the result.
func (o *Orchestrator) synthesizeQuiz(ctx context.Context, model, url, summary string, count int) (*domain.QuizQuestions, error) {
	prompt, err := o.prompts.QuizPrompt(summary, url, count)
	if err != nil {
		return nil, err
	}

	text, err := o.callModel(ctx, model, prompt, CallOptions{Schema: QuizSchema(count)})
	if err != nil {
		return nil, err
	}

	return o.validator.Validate(text, count)
}

// callModel performs one gateway call under the per-call deadline. Hitting
// that deadline is reported as ErrUnavailable so the next candidate is tried.
func (o *Orchestrator) callModel(ctx context.Context, model, prompt string, opts CallOptions) (string, error) {
	callCtx, cancel := context.WithTimeout(ctx, o.callTimeout)
	defer cancel()

	start := time.Now()
	text, err := o.gateway.Generate(callCtx, model, prompt, opts)
	if err != nil {
		if ctx.Err() == nil && errors.Is(callCtx.Err(), context.DeadlineExceeded) {
			return "", fmt.Errorf("%w: call exceeded %s: %v", ErrUnavailable, o.callTimeout, err)
		}
		return "", err
	}

	o.logger.DebugContext(ctx, "Model call completed",
		"model", model,
		"browsing", opts.Browsing,
		"structured", opts.Schema != nil,
		"latency_ms", time.Since(start).Milliseconds())

	if strings.TrimSpace(text) == "" {
		return "", ErrEmptyResponse
	}

	return text, nil
}

// callerGone reports that the caller's context ended mid-pipeline.
func callerGone(ctxErr error) error {
	return &ClassifiedError{
		Kind: KindOverloaded,
		Err:  fmt.Errorf("%w: %v", ErrUnavailable, ctxErr),
	}
}
