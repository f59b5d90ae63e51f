package mocks

import (
	"context"
	"sync"

	"github.com/phrazzld/quizgen-api/internal/generation"
)

// GatewayCall records a single Generate invocation.
type GatewayCall struct {
	Model  string
	Prompt string
	Opts   generation.CallOptions
}

// MockGateway implements generation.Gateway for testing
type MockGateway struct {
	// GenerateFn allows test cases to mock the Generate behavior
	GenerateFn func(ctx context.Context, model, prompt string, opts generation.CallOptions) (string, error)

	// Default response values, used when GenerateFn is nil
	Summary  string
	QuizJSON string
	Err      error

	// mu protects the call tracking state for concurrent test cases
	mu    sync.Mutex
	calls []GatewayCall
}

// Generate implements the generation.Gateway interface
func (m *MockGateway) Generate(
	ctx context.Context,
	model string,
	prompt string,
	opts generation.CallOptions,
) (string, error) {
	m.mu.Lock()
	m.calls = append(m.calls, GatewayCall{Model: model, Prompt: prompt, Opts: opts})
	m.mu.Unlock()

	if m.GenerateFn != nil {
		return m.GenerateFn(ctx, model, prompt, opts)
	}

	if m.Err != nil {
		return "", m.Err
	}
	if opts.Schema != nil {
		return m.QuizJSON, nil
	}
	return m.Summary, nil
}

// Calls returns a copy of every recorded call in order.
func (m *MockGateway) Calls() []GatewayCall {
	m.mu.Lock()
	defer m.mu.Unlock()

	return append([]GatewayCall(nil), m.calls...)
}

// CallCount returns the number of Generate calls.
func (m *MockGateway) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	return len(m.calls)
}

// Models returns the model of every recorded call in order.
func (m *MockGateway) Models() []string {
	m.mu.Lock()
	defer m.mu.Unlock()

	models := make([]string, 0, len(m.calls))
	for _, c := range m.calls {
		models = append(models, c.Model)
	}
	return models
}

// Reset resets the call tracking state
func (m *MockGateway) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.calls = nil
}

// NewMockGatewayWithQuiz creates a MockGateway that returns summary for
// browsing calls and quizJSON for schema-constrained calls.
func NewMockGatewayWithQuiz(summary, quizJSON string) *MockGateway {
	return &MockGateway{
		Summary:  summary,
		QuizJSON: quizJSON,
	}
}

// NewMockGatewayWithError creates a MockGateway that fails every call with err.
func NewMockGatewayWithError(err error) *MockGateway {
	return &MockGateway{
		Err: err,
	}
}
