package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"

	"github.com/phrazzld/quizgen-api/internal/domain"
)

// parseQuestionAmount decodes the optional questionAmount field. Absent and
// null mean "use the default"; anything but a JSON number with an integral
// value is rejected. Bounds are checked later by domain.QuestionBounds.
func parseQuestionAmount(raw json.RawMessage) (*int, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil, nil
	}

	dec := json.NewDecoder(bytes.NewReader(trimmed))
	dec.UseNumber()

	var value any
	if err := dec.Decode(&value); err != nil {
		return nil, fmt.Errorf("%w: must be an integer", domain.ErrInvalidQuestionAmount)
	}

	number, ok := value.(json.Number)
	if !ok {
		return nil, fmt.Errorf("%w: must be an integer, got %s", domain.ErrInvalidQuestionAmount, jsonKind(value))
	}

	if n, err := number.Int64(); err == nil {
		return intInRange(n)
	}

	f, err := number.Float64()
	if err != nil || f != math.Trunc(f) || math.IsInf(f, 0) {
		return nil, fmt.Errorf("%w: must be an integer, got %s", domain.ErrInvalidQuestionAmount, number.String())
	}
	if f < math.MinInt32 || f > math.MaxInt32 {
		return nil, fmt.Errorf("%w: %s is out of range", domain.ErrInvalidQuestionAmount, number.String())
	}
	return intInRange(int64(f))
}

func intInRange(n int64) (*int, error) {
	if n < math.MinInt32 || n > math.MaxInt32 {
		return nil, fmt.Errorf("%w: %s is out of range", domain.ErrInvalidQuestionAmount, strconv.FormatInt(n, 10))
	}
	v := int(n)
	return &v, nil
}

func jsonKind(v any) string {
	switch v.(type) {
	case string:
		return "string"
	case bool:
		return "boolean"
	case []any:
		return "array"
	case map[string]any:
		return "object"
	default:
		return fmt.Sprintf("%T", v)
	}
}
