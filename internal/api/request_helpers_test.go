package api

import (
	"encoding/json"
	"testing"

	"github.com/phrazzld/quizgen-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseQuestionAmount(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		raw     string
		want    *int
		wantErr bool
	}{
		{name: "empty", raw: ""},
		{name: "null", raw: "null"},
		{name: "integer", raw: "10", want: intPtr(10)},
		{name: "negative", raw: "-2", want: intPtr(-2)},
		{name: "integral float", raw: "3.0", want: intPtr(3)},
		{name: "exponent", raw: "1e1", want: intPtr(10)},
		{name: "fraction", raw: "2.5", wantErr: true},
		{name: "string", raw: `"5"`, wantErr: true},
		{name: "bool", raw: "false", wantErr: true},
		{name: "array", raw: "[5]", wantErr: true},
		{name: "object", raw: `{"n":5}`, wantErr: true},
		{name: "huge", raw: "1e20", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := parseQuestionAmount(json.RawMessage(tt.raw))
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, domain.ErrInvalidQuestionAmount)
				assert.ErrorIs(t, err, domain.ErrInvalidInput)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
