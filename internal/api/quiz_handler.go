package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/phrazzld/quizgen-api/internal/api/shared"
	"github.com/phrazzld/quizgen-api/internal/domain"
)

// QuizGenerator defines the generation operation the quiz handler depends on.
type QuizGenerator interface {
	GenerateQuiz(ctx context.Context, url string, questionAmount *int) (*domain.QuizQuestions, error)
}

// QuizHandler handles quiz generation HTTP requests.
type QuizHandler struct {
	generator QuizGenerator
	bounds    domain.QuestionBounds
	logger    *slog.Logger
}

// NewQuizHandler creates a new QuizHandler. Question amounts outside bounds
// are rejected before the generator is called; bounds should match the
// generator's own.
// It uses the provided logger or falls back to the default logger if nil.
func NewQuizHandler(generator QuizGenerator, bounds domain.QuestionBounds, logger *slog.Logger) *QuizHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &QuizHandler{
		generator: generator,
		bounds:    bounds,
		logger:    logger.With(slog.String("component", "quiz_handler")),
	}
}

// GenerateQuiz handles POST /api/quiz/generate.
func (h *QuizHandler) GenerateQuiz(w http.ResponseWriter, r *http.Request) {
	var req GenerateQuizRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		h.respondInvalid(w, r, decodeErrorMessage(err), err)
		return
	}

	if err := shared.ValidateRequest(&req); err != nil {
		h.respondInvalid(w, r, validationErrorMessage(err), err)
		return
	}

	amount, err := parseQuestionAmount(req.QuestionAmount)
	if err != nil {
		h.respondWithError(w, r, err)
		return
	}

	if _, err := h.bounds.Resolve(amount); err != nil {
		h.respondWithError(w, r, err)
		return
	}

	h.logger.InfoContext(r.Context(), "Quiz generation requested",
		slog.Bool("question_amount_set", amount != nil))

	quiz, err := h.generator.GenerateQuiz(r.Context(), req.URL, amount)
	if err != nil {
		h.respondWithError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, GenerateQuizResponse{
		Success:       true,
		Data:          quiz,
		QuestionCount: len(quiz.Questions),
	})
}

// respondWithError maps err to its status, label and safe message.
func (h *QuizHandler) respondWithError(w http.ResponseWriter, r *http.Request, err error) {
	shared.RespondWithErrorAndLog(w, r,
		MapErrorToStatusCode(err),
		GetErrorLabel(err),
		GetSafeErrorMessage(err),
		err,
		shared.WithLogger(h.logger))
}

func (h *QuizHandler) respondInvalid(w http.ResponseWriter, r *http.Request, message string, err error) {
	shared.RespondWithErrorAndLog(w, r,
		http.StatusBadRequest,
		"Bad Request",
		message,
		err,
		shared.WithLogger(h.logger))
}

func decodeErrorMessage(err error) string {
	var typeErr *json.UnmarshalTypeError
	switch {
	case errors.Is(err, shared.ErrEmptyBody):
		return "URL is required in request body"
	case errors.As(err, &typeErr) && typeErr.Field == "url":
		return "URL must be a string"
	case errors.As(err, &typeErr):
		return fmt.Sprintf("Invalid value for field %q", typeErr.Field)
	default:
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return "Request body is too large"
		}
		return "Invalid request format"
	}
}

func validationErrorMessage(err error) string {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		for _, fe := range validationErrs {
			if fe.Field() == "URL" && fe.Tag() == "required" {
				return "URL is required in request body"
			}
		}
	}
	return "Invalid request format"
}
