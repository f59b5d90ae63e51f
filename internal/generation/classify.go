package generation

import (
	"context"
	"errors"
	"strings"

	"github.com/phrazzld/quizgen-api/internal/domain"
)

// Kind is the stable external category of a generation failure.
type Kind int

// Failure categories, see Classify.
const (
	KindUnknown Kind = iota
	KindInvalidInput
	KindOverloaded
	KindAuthConfiguration
	KindQuotaExceeded
	KindContentSafety
	KindUpstreamURL
	KindResponseShape
)

var kindNames = map[Kind]string{
	KindUnknown:           "unknown",
	KindInvalidInput:      "invalid_input",
	KindOverloaded:        "overloaded",
	KindAuthConfiguration: "auth_configuration",
	KindQuotaExceeded:     "quota_exceeded",
	KindContentSafety:     "content_safety",
	KindUpstreamURL:       "upstream_url_failure",
	KindResponseShape:     "response_shape_failure",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return kindNames[KindUnknown]
}

// Retryable reports whether a failure of this kind may succeed against the
// next candidate model. Only capacity failures qualify.
func (k Kind) Retryable() bool {
	return k == KindOverloaded
}

// ClassifiedError pairs a failure with its Kind.
type ClassifiedError struct {
	Kind Kind
	Err  error
}

func (e *ClassifiedError) Error() string {
	if e.Err == nil {
		return e.Kind.String()
	}
	return e.Err.Error()
}

func (e *ClassifiedError) Unwrap() error {
	return e.Err
}

// classifierRule maps evidence about a failure to a Kind. Sentinels are
// matched with errors.Is, status codes and statuses against an
// UpstreamError, substrings case-insensitively against the error text.
type classifierRule struct {
	kind        Kind
	sentinels   []error
	statusCodes []int
	statuses    []string
	substrings  []string
}

// classifierRules is the single auditable mapping table. Order matters
// within each evidence pass: the first matching rule wins.
var classifierRules = []classifierRule{
	{
		kind:      KindInvalidInput,
		sentinels: []error{domain.ErrInvalidInput},
	},
	{
		kind: KindResponseShape,
		sentinels: []error{
			ErrJSONParse,
			ErrSchemaValidation,
			ErrQuestionCountMismatch,
			ErrEmptyResponse,
			ErrEmptyContext,
		},
	},
	{
		kind:        KindAuthConfiguration,
		sentinels:   []error{ErrInvalidConfig},
		statusCodes: []int{401, 403},
		statuses:    []string{"UNAUTHENTICATED", "PERMISSION_DENIED"},
		substrings:  []string{"api key", "api_key_invalid"},
	},
	{
		kind:        KindQuotaExceeded,
		statusCodes: []int{429},
		statuses:    []string{"RESOURCE_EXHAUSTED"},
		substrings:  []string{"quota"},
	},
	{
		kind:       KindContentSafety,
		sentinels:  []error{ErrContentBlocked, ErrUnsafeURL},
		substrings: []string{"url_retrieval_status_unsafe", "blocked", "safety"},
	},
	{
		kind:       KindUpstreamURL,
		sentinels:  []error{ErrURLRetrieval},
		substrings: []string{"url_retrieval_status", "failed to retrieve"},
	},
	{
		kind:        KindOverloaded,
		sentinels:   []error{ErrUnavailable, context.DeadlineExceeded},
		statusCodes: []int{502, 503, 504, 529},
		statuses:    []string{"UNAVAILABLE", "DEADLINE_EXCEEDED"},
		// "overloded" is a misspelling the upstream has been seen to emit.
		substrings: []string{"overloaded", "overload", "overloded", "unavailable", "try again later"},
	},
}

// Classify maps a failure from any pipeline stage to its Kind.
//
// Typed evidence wins over message heuristics: all rules are first checked
// for sentinel errors, then for upstream status codes, and only then for
// substrings of the error message.
func Classify(err error) Kind {
	if err == nil {
		return KindUnknown
	}

	var classified *ClassifiedError
	if errors.As(err, &classified) {
		return classified.Kind
	}

	for _, rule := range classifierRules {
		for _, sentinel := range rule.sentinels {
			if errors.Is(err, sentinel) {
				return rule.kind
			}
		}
	}

	var upstream *UpstreamError
	if errors.As(err, &upstream) {
		for _, rule := range classifierRules {
			if matchesStatus(rule, upstream) {
				return rule.kind
			}
		}
	}

	msg := strings.ToLower(err.Error())
	for _, rule := range classifierRules {
		for _, sub := range rule.substrings {
			if strings.Contains(msg, sub) {
				return rule.kind
			}
		}
	}

	return KindUnknown
}

// ClassifyError wraps err with its Kind. A nil error stays nil and an error
// that is already classified is returned unchanged.
func ClassifyError(err error) error {
	if err == nil {
		return nil
	}

	var classified *ClassifiedError
	if errors.As(err, &classified) {
		return err
	}

	return &ClassifiedError{Kind: Classify(err), Err: err}
}

func matchesStatus(rule classifierRule, upstream *UpstreamError) bool {
	for _, code := range rule.statusCodes {
		if upstream.StatusCode == code {
			return true
		}
	}
	for _, status := range rule.statuses {
		if strings.EqualFold(upstream.Status, status) {
			return true
		}
	}
	return false
}
