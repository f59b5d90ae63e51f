package api

import (
	"errors"
	"net/http"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/phrazzld/quizgen-api/internal/domain"
	"github.com/phrazzld/quizgen-api/internal/generation"
	"github.com/phrazzld/quizgen-api/internal/redact"
)

// errorMapping is the external form of one failure kind.
type errorMapping struct {
	status  int
	label   string
	message string
}

// kindMappings maps each failure kind to its status code, category label and
// safe message. Only invalid input echoes details back to the caller.
var kindMappings = map[generation.Kind]errorMapping{
	generation.KindInvalidInput: {
		status:  http.StatusBadRequest,
		label:   "Bad Request",
		message: "Invalid request.",
	},
	generation.KindAuthConfiguration: {
		status:  http.StatusInternalServerError,
		label:   "Configuration Error",
		message: "Server configuration error. Please contact support.",
	},
	generation.KindOverloaded: {
		status:  http.StatusServiceUnavailable,
		label:   "Service Unavailable",
		message: "The AI service is currently overloaded. Please try again in a few moments.",
	},
	generation.KindQuotaExceeded: {
		status:  http.StatusServiceUnavailable,
		label:   "Service Unavailable",
		message: "Service temporarily unavailable. Please try again later.",
	},
	generation.KindResponseShape: {
		status:  http.StatusInternalServerError,
		label:   "Internal Server Error",
		message: "Failed to generate valid quiz. Please try again.",
	},
	generation.KindContentSafety: {
		status:  http.StatusBadRequest,
		label:   "Content Policy Violation",
		message: "The content at this URL cannot be used to generate a quiz.",
	},
	generation.KindUpstreamURL: {
		status:  http.StatusBadGateway,
		label:   "Bad Gateway",
		message: "Failed to retrieve content from URL. Please check that the page is publicly accessible.",
	},
	generation.KindUnknown: {
		status:  http.StatusInternalServerError,
		label:   "Internal Server Error",
		message: "An unexpected error occurred while generating the quiz.",
	},
}

func mappingFor(err error) errorMapping {
	if err == nil {
		return kindMappings[generation.KindUnknown]
	}
	if m, ok := kindMappings[generation.Classify(err)]; ok {
		return m
	}
	return kindMappings[generation.KindUnknown]
}

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on their classified kind. This prevents leaking internal error types
// or messages to clients.
func MapErrorToStatusCode(err error) int {
	return mappingFor(err).status
}

// GetErrorLabel returns the error category label sent in the "error" field.
func GetErrorLabel(err error) string {
	return mappingFor(err).label
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message
// based on the error type. This prevents leaking sensitive internal details.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return kindMappings[generation.KindUnknown].message
	}

	if errors.Is(err, domain.ErrInvalidInput) {
		if msg := invalidInputMessage(err); msg != "" {
			return msg
		}
	}

	return mappingFor(err).message
}

// invalidInputMessage echoes the validation reason without the generic
// "invalid input" prefix, e.g. "Invalid URL format: URL is required".
func invalidInputMessage(err error) string {
	msg := err.Error()
	if i := strings.Index(msg, domain.ErrInvalidInput.Error()+": "); i >= 0 {
		msg = msg[i+len(domain.ErrInvalidInput.Error())+2:]
	}
	return capitalize(redact.String(msg))
}

func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
