package mocks

import (
	"context"
	"sync"

	"github.com/phrazzld/quizgen-api/internal/domain"
)

// QuizRequest records one call to MockQuizGenerator.GenerateQuiz.
type QuizRequest struct {
	URL            string
	QuestionAmount *int
}

// MockQuizGenerator implements api.QuizGenerator for handler tests.
type MockQuizGenerator struct {
	GenerateQuizFn func(ctx context.Context, url string, questionAmount *int) (*domain.QuizQuestions, error)

	mu    sync.Mutex
	calls []QuizRequest
}

// GenerateQuiz records the call and delegates to GenerateQuizFn. Without a
// function it returns a quiz of the requested size, five by default.
func (m *MockQuizGenerator) GenerateQuiz(
	ctx context.Context,
	url string,
	questionAmount *int,
) (*domain.QuizQuestions, error) {
	m.mu.Lock()
	m.calls = append(m.calls, QuizRequest{URL: url, QuestionAmount: questionAmount})
	m.mu.Unlock()

	if m.GenerateQuizFn != nil {
		return m.GenerateQuizFn(ctx, url, questionAmount)
	}

	n := domain.DefaultQuestionAmount
	if questionAmount != nil {
		n = *questionAmount
	}
	return SampleQuiz(n), nil
}

// Calls returns a copy of the recorded calls.
func (m *MockQuizGenerator) Calls() []QuizRequest {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]QuizRequest, len(m.calls))
	copy(out, m.calls)
	return out
}

// CallCount returns the number of GenerateQuiz calls.
func (m *MockQuizGenerator) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.calls)
}
