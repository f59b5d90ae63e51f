package api

import (
	"encoding/json"

	"github.com/phrazzld/quizgen-api/internal/domain"
)

// GenerateQuizRequest defines the payload for the quiz generation endpoint.
type GenerateQuizRequest struct {
	URL string `json:"url" validate:"required"`

	// QuestionAmount is kept raw so that non-integer values can be rejected
	// instead of silently coerced.
	QuestionAmount json.RawMessage `json:"questionAmount,omitempty"`
}

// GenerateQuizResponse defines the successful response for quiz generation.
type GenerateQuizResponse struct {
	Success       bool                  `json:"success"`
	Data          *domain.QuizQuestions `json:"data"`
	QuestionCount int                   `json:"questionCount"`
}

// RootResponse is returned by the service banner endpoint.
type RootResponse struct {
	Message   string `json:"message"`
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}

// HealthResponse is returned by the health probe.
type HealthResponse struct {
	Status        string  `json:"status"`
	UptimeSeconds float64 `json:"uptime_seconds"`
	Timestamp     string  `json:"timestamp"`
}

// NotFoundResponse is returned for unknown routes.
type NotFoundResponse struct {
	Error string `json:"error"`
	Path  string `json:"path"`
}
