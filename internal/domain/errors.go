package domain

import (
	"errors"
	"fmt"
)

// Common domain errors used across the application.
var (
	// ErrInvalidInput is the parent of every caller-input failure.
	// Errors wrapping it are never retried and map to HTTP 400.
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidURL is returned when the quiz source URL is malformed.
	ErrInvalidURL = fmt.Errorf("%w: invalid URL format", ErrInvalidInput)

	// ErrInvalidQuestionAmount is returned when the requested question amount
	// is not an integer or falls outside the configured bounds.
	ErrInvalidQuestionAmount = fmt.Errorf("%w: invalid question amount", ErrInvalidInput)

	// ErrInvalidBounds is returned when question bounds are inconsistent.
	ErrInvalidBounds = errors.New("invalid question bounds")
)
