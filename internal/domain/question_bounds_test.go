package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

func TestQuestionBounds_Resolve(t *testing.T) {
	t.Parallel()

	bounds := DefaultQuestionBounds()

	tests := []struct {
		name      string
		requested *int
		want      int
		wantErr   bool
	}{
		{name: "absent uses default", requested: nil, want: DefaultQuestionAmount},
		{name: "lower bound", requested: intPtr(MinQuestionAmount), want: MinQuestionAmount},
		{name: "upper bound", requested: intPtr(MaxQuestionAmount), want: MaxQuestionAmount},
		{name: "inside range", requested: intPtr(7), want: 7},
		{name: "below range", requested: intPtr(MinQuestionAmount - 1), wantErr: true},
		{name: "above range", requested: intPtr(MaxQuestionAmount + 1), wantErr: true},
		{name: "zero", requested: intPtr(0), wantErr: true},
		{name: "negative", requested: intPtr(-5), wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got, err := bounds.Resolve(tc.requested)
			if tc.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrInvalidQuestionAmount))
				assert.True(t, errors.Is(err, ErrInvalidInput))
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestQuestionBounds_Validate(t *testing.T) {
	t.Parallel()

	assert.NoError(t, DefaultQuestionBounds().Validate())
	assert.NoError(t, QuestionBounds{Min: 1, Max: 1, Default: 1}.Validate())

	invalid := []QuestionBounds{
		{Min: 0, Max: 10, Default: 5},
		{Min: 5, Max: 3, Default: 4},
		{Min: 3, Max: 10, Default: 11},
		{Min: 3, Max: 10, Default: 2},
	}
	for _, b := range invalid {
		err := b.Validate()
		assert.ErrorIs(t, err, ErrInvalidBounds, "bounds %+v should be rejected", b)
	}
}
