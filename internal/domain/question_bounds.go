package domain

import "fmt"

// Default question amount bounds.
const (
	DefaultQuestionAmount = 5
	MinQuestionAmount     = 3
	MaxQuestionAmount     = 20
)

// QuestionBounds holds the inclusive range of accepted question amounts and
// the amount used when the caller does not ask for one.
//
// The request boundary and the generation pipeline both resolve amounts with
// the same QuestionBounds value, so a request rejected by one is never
// accepted by the other.
type QuestionBounds struct {
	Min     int
	Max     int
	Default int
}

// DefaultQuestionBounds returns the built-in bounds.
func DefaultQuestionBounds() QuestionBounds {
	return QuestionBounds{
		Min:     MinQuestionAmount,
		Max:     MaxQuestionAmount,
		Default: DefaultQuestionAmount,
	}
}

// Validate checks that the bounds are internally consistent.
func (b QuestionBounds) Validate() error {
	if b.Min < 1 {
		return fmt.Errorf("%w: minimum must be at least 1, got %d", ErrInvalidBounds, b.Min)
	}
	if b.Max < b.Min {
		return fmt.Errorf("%w: maximum %d is below minimum %d", ErrInvalidBounds, b.Max, b.Min)
	}
	if b.Default < b.Min || b.Default > b.Max {
		return fmt.Errorf("%w: default %d is outside [%d, %d]", ErrInvalidBounds, b.Default, b.Min, b.Max)
	}
	return nil
}

// Resolve returns the question amount to generate. A nil request resolves
// to the default; any other value must lie within [Min, Max].
func (b QuestionBounds) Resolve(requested *int) (int, error) {
	if requested == nil {
		return b.Default, nil
	}

	n := *requested
	if n < b.Min || n > b.Max {
		return 0, fmt.Errorf("%w: must be between %d and %d, got %d",
			ErrInvalidQuestionAmount, b.Min, b.Max, n)
	}

	return n, nil
}
