package generation

import (
	"errors"
	"fmt"
)

// Common errors returned by the generation package
var (
	// ErrEmptyResponse is returned when the model produced no text.
	ErrEmptyResponse = errors.New("no response text generated by language model")

	// ErrEmptyContext is returned when a quiz prompt is built from an empty summary.
	ErrEmptyContext = errors.New("context summary cannot be empty")

	// ErrJSONParse is returned when the model output is not valid JSON.
	ErrJSONParse = errors.New("failed to parse language model response as JSON")

	// ErrSchemaValidation is returned when the JSON does not have the quiz shape.
	ErrSchemaValidation = errors.New("language model response failed schema validation")

	// ErrQuestionCountMismatch is returned when the model ignored the requested count.
	ErrQuestionCountMismatch = errors.New("language model returned the wrong number of questions")

	// ErrContentBlocked is returned when the model refuses or flags the content.
	ErrContentBlocked = errors.New("content blocked by language model safety filters")

	// ErrUnsafeURL is returned when the model's URL retrieval was rejected as unsafe.
	ErrUnsafeURL = errors.New("URL content failed safety check")

	// ErrURLRetrieval is returned when the model could not retrieve the target URL.
	ErrURLRetrieval = errors.New("failed to retrieve content from URL")

	// ErrUnavailable is returned for capacity or availability failures that
	// may succeed against another model.
	ErrUnavailable = errors.New("language model temporarily unavailable")

	// ErrInvalidConfig is returned when the generator configuration is invalid.
	ErrInvalidConfig = errors.New("invalid generator configuration")
)

// UpstreamError carries the status of a failed provider call in a
// provider-neutral form so classification does not depend on an SDK.
type UpstreamError struct {
	// StatusCode is the HTTP status returned by the provider, 0 if unknown.
	StatusCode int
	// Status is the provider's symbolic status, e.g. "UNAVAILABLE".
	Status string
	// Message is the raw provider message. It is never shown to callers.
	Message string
}

func (e *UpstreamError) Error() string {
	if e.Status != "" {
		return fmt.Sprintf("upstream error %d (%s): %s", e.StatusCode, e.Status, e.Message)
	}
	return fmt.Sprintf("upstream error %d: %s", e.StatusCode, e.Message)
}
