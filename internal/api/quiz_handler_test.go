package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/phrazzld/quizgen-api/internal/api/shared"
	"github.com/phrazzld/quizgen-api/internal/domain"
	"github.com/phrazzld/quizgen-api/internal/generation"
	"github.com/phrazzld/quizgen-api/internal/mocks"
	"github.com/phrazzld/quizgen-api/internal/platform/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newQuizRequest(t *testing.T, body string) *http.Request {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/quiz/generate", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req.WithContext(shared.SetTraceID(req.Context()))
}

func decodeErrorResponse(t *testing.T, rr *httptest.ResponseRecorder) shared.ErrorResponse {
	t.Helper()
	var resp shared.ErrorResponse
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	return resp
}

func TestQuizHandler_GenerateQuiz_Success(t *testing.T) {
	t.Parallel()

	generator := &mocks.MockQuizGenerator{}
	log, _ := logger.NewTestLogger()
	handler := NewQuizHandler(generator, domain.DefaultQuestionBounds(), log)

	rr := httptest.NewRecorder()
	handler.GenerateQuiz(rr, newQuizRequest(t, `{"url":"https://example.com/article","questionAmount":7}`))

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

	var resp GenerateQuizResponse
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.True(t, resp.Success)
	assert.Equal(t, 7, resp.QuestionCount)
	require.NotNil(t, resp.Data)
	assert.Len(t, resp.Data.Questions, 7)

	calls := generator.Calls()
	require.Len(t, calls, 1)
	assert.Equal(t, "https://example.com/article", calls[0].URL)
	require.NotNil(t, calls[0].QuestionAmount)
	assert.Equal(t, 7, *calls[0].QuestionAmount)
}

func TestQuizHandler_GenerateQuiz_QuestionAmountParsing(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		body       string
		wantCalled bool
		wantAmount *int
	}{
		{name: "absent", body: `{"url":"https://example.com"}`, wantCalled: true},
		{name: "null", body: `{"url":"https://example.com","questionAmount":null}`, wantCalled: true},
		{name: "integral float", body: `{"url":"https://example.com","questionAmount":5.0}`, wantCalled: true, wantAmount: intPtr(5)},
		{name: "fraction", body: `{"url":"https://example.com","questionAmount":4.5}`},
		{name: "string", body: `{"url":"https://example.com","questionAmount":"5"}`},
		{name: "boolean", body: `{"url":"https://example.com","questionAmount":true}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			generator := &mocks.MockQuizGenerator{}
			log, _ := logger.NewTestLogger()
			handler := NewQuizHandler(generator, domain.DefaultQuestionBounds(), log)

			rr := httptest.NewRecorder()
			handler.GenerateQuiz(rr, newQuizRequest(t, tt.body))

			if !tt.wantCalled {
				assert.Equal(t, http.StatusBadRequest, rr.Code)
				assert.Equal(t, 0, generator.CallCount())
				resp := decodeErrorResponse(t, rr)
				assert.Equal(t, "Bad Request", resp.Error)
				assert.Contains(t, resp.Message, "Invalid question amount")
				return
			}

			require.Equal(t, http.StatusOK, rr.Code)
			calls := generator.Calls()
			require.Len(t, calls, 1)
			assert.Equal(t, tt.wantAmount, calls[0].QuestionAmount)
		})
	}
}

func TestQuizHandler_GenerateQuiz_RejectsOutOfBoundsAmount(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		amount  int
		wantMsg string
	}{
		{name: "zero", amount: 0, wantMsg: "Invalid question amount: must be between 3 and 20, got 0"},
		{name: "below minimum", amount: 2, wantMsg: "Invalid question amount: must be between 3 and 20, got 2"},
		{name: "above maximum", amount: 21, wantMsg: "Invalid question amount: must be between 3 and 20, got 21"},
		{name: "far above maximum", amount: 50, wantMsg: "Invalid question amount: must be between 3 and 20, got 50"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			generator := &mocks.MockQuizGenerator{}
			log, _ := logger.NewTestLogger()
			handler := NewQuizHandler(generator, domain.DefaultQuestionBounds(), log)

			body := fmt.Sprintf(`{"url":"https://example.com/a","questionAmount":%d}`, tt.amount)
			rr := httptest.NewRecorder()
			handler.GenerateQuiz(rr, newQuizRequest(t, body))

			assert.Equal(t, http.StatusBadRequest, rr.Code)
			assert.Equal(t, 0, generator.CallCount())

			resp := decodeErrorResponse(t, rr)
			assert.Equal(t, "Bad Request", resp.Error)
			assert.Equal(t, tt.wantMsg, resp.Message)
		})
	}
}

func TestQuizHandler_GenerateQuiz_UsesConfiguredBounds(t *testing.T) {
	t.Parallel()

	generator := &mocks.MockQuizGenerator{}
	log, _ := logger.NewTestLogger()
	bounds := domain.QuestionBounds{Min: 1, Max: 30, Default: 10}
	handler := NewQuizHandler(generator, bounds, log)

	rr := httptest.NewRecorder()
	handler.GenerateQuiz(rr, newQuizRequest(t, `{"url":"https://example.com/a","questionAmount":25}`))

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, 1, generator.CallCount())
}

func TestQuizHandler_GenerateQuiz_RequestErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		body    string
		wantMsg string
	}{
		{name: "empty body", body: "", wantMsg: "URL is required in request body"},
		{name: "missing url", body: `{}`, wantMsg: "URL is required in request body"},
		{name: "empty url", body: `{"url":""}`, wantMsg: "URL is required in request body"},
		{name: "numeric url", body: `{"url":42}`, wantMsg: "URL must be a string"},
		{name: "malformed json", body: `{"url":`, wantMsg: "Invalid request format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			generator := &mocks.MockQuizGenerator{}
			log, _ := logger.NewTestLogger()
			handler := NewQuizHandler(generator, domain.DefaultQuestionBounds(), log)

			rr := httptest.NewRecorder()
			handler.GenerateQuiz(rr, newQuizRequest(t, tt.body))

			assert.Equal(t, http.StatusBadRequest, rr.Code)
			assert.Equal(t, 0, generator.CallCount())

			resp := decodeErrorResponse(t, rr)
			assert.Equal(t, "Bad Request", resp.Error)
			assert.Equal(t, tt.wantMsg, resp.Message)
			assert.NotEmpty(t, resp.TraceID)
		})
	}
}

func TestQuizHandler_GenerateQuiz_GenerationErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantLabel  string
	}{
		{
			name:       "invalid url",
			err:        generation.ClassifyError(fmt.Errorf("%w: ftp://example.com", domain.ErrInvalidURL)),
			wantStatus: http.StatusBadRequest,
			wantLabel:  "Bad Request",
		},
		{
			name:       "auth",
			err:        generation.ClassifyError(&generation.UpstreamError{StatusCode: 401, Status: "UNAUTHENTICATED"}),
			wantStatus: http.StatusInternalServerError,
			wantLabel:  "Configuration Error",
		},
		{
			name:       "overloaded",
			err:        generation.ClassifyError(&generation.UpstreamError{StatusCode: 503, Status: "UNAVAILABLE"}),
			wantStatus: http.StatusServiceUnavailable,
			wantLabel:  "Service Unavailable",
		},
		{
			name:       "quota",
			err:        generation.ClassifyError(&generation.UpstreamError{StatusCode: 429, Status: "RESOURCE_EXHAUSTED"}),
			wantStatus: http.StatusServiceUnavailable,
			wantLabel:  "Service Unavailable",
		},
		{
			name:       "response shape",
			err:        generation.ClassifyError(generation.ErrQuestionCountMismatch),
			wantStatus: http.StatusInternalServerError,
			wantLabel:  "Internal Server Error",
		},
		{
			name:       "content safety",
			err:        generation.ClassifyError(generation.ErrUnsafeURL),
			wantStatus: http.StatusBadRequest,
			wantLabel:  "Content Policy Violation",
		},
		{
			name:       "upstream url",
			err:        generation.ClassifyError(generation.ErrURLRetrieval),
			wantStatus: http.StatusBadGateway,
			wantLabel:  "Bad Gateway",
		},
		{
			name:       "unknown",
			err:        generation.ClassifyError(fmt.Errorf("boom")),
			wantStatus: http.StatusInternalServerError,
			wantLabel:  "Internal Server Error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			generator := &mocks.MockQuizGenerator{
				GenerateQuizFn: func(context.Context, string, *int) (*domain.QuizQuestions, error) {
					return nil, tt.err
				},
			}
			log, buf := logger.NewTestLogger()
			handler := NewQuizHandler(generator, domain.DefaultQuestionBounds(), log)

			req := newQuizRequest(t, `{"url":"https://example.com"}`)
			rr := httptest.NewRecorder()
			handler.GenerateQuiz(rr, req)

			assert.Equal(t, tt.wantStatus, rr.Code)
			resp := decodeErrorResponse(t, rr)
			assert.Equal(t, tt.wantLabel, resp.Error)
			assert.Equal(t, GetSafeErrorMessage(tt.err), resp.Message)
			assert.Equal(t, shared.GetTraceID(req.Context()), resp.TraceID)

			if tt.wantStatus >= http.StatusInternalServerError {
				entries, err := buf.GetLogEntries()
				require.NoError(t, err)
				require.NotEmpty(t, entries)
				assert.Equal(t, "API error response", entries[len(entries)-1]["msg"])
				assert.Equal(t, "ERROR", entries[len(entries)-1]["level"])
			}
		})
	}
}

func TestQuizHandler_GenerateQuiz_ErrorBodyOmitsSecrets(t *testing.T) {
	t.Parallel()

	secret := "AIzaSyD-abcdefghijklmnopqrstuvwxyz0123456"
	generator := &mocks.MockQuizGenerator{
		GenerateQuizFn: func(context.Context, string, *int) (*domain.QuizQuestions, error) {
			return nil, generation.ClassifyError(&generation.UpstreamError{
				StatusCode: 400,
				Status:     "INVALID_ARGUMENT",
				Message:    "API key not valid: " + secret,
			})
		},
	}
	log, buf := logger.NewTestLogger()
	handler := NewQuizHandler(generator, domain.DefaultQuestionBounds(), log)

	rr := httptest.NewRecorder()
	handler.GenerateQuiz(rr, newQuizRequest(t, `{"url":"https://example.com"}`))

	assert.NotContains(t, rr.Body.String(), secret)
	assert.NotContains(t, buf.String(), secret)
}

func intPtr(v int) *int { return &v }
