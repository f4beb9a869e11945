package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReviewType_CodeMapping(t *testing.T) {
	tests := []struct {
		typ  ReviewType
		code int16
	}{
		{ReviewPositive, 0},
		{ReviewNeutral, 1},
		{ReviewCritical, 2},
	}

	for _, tt := range tests {
		t.Run(string(tt.typ), func(t *testing.T) {
			code, err := tt.typ.Code()
			require.NoError(t, err)
			assert.Equal(t, tt.code, code)

			back, err := ReviewTypeFromCode(tt.code)
			require.NoError(t, err)
			assert.Equal(t, tt.typ, back)
		})
	}
}

func TestReviewType_Unknown(t *testing.T) {
	_, err := ReviewType("ANGRY").Code()
	assert.Error(t, err)

	_, err = ReviewTypeFromCode(7)
	assert.Error(t, err)

	assert.False(t, ReviewType("").Valid())
}

func TestParseReviewType(t *testing.T) {
	got, err := ParseReviewType(" critical ")
	require.NoError(t, err)
	assert.Equal(t, ReviewCritical, got)

	_, err = ParseReviewType("meh")
	assert.Error(t, err)
}

func TestReview_WithLeavesOriginalUntouched(t *testing.T) {
	orig := Review{ID: 1, Type: ReviewNeutral, Content: "ok", AuthorID: 2, ArticleID: 3}

	changed := orig.WithContent("better").WithType(ReviewPositive)

	assert.Equal(t, "ok", orig.Content)
	assert.Equal(t, ReviewNeutral, orig.Type)
	assert.Equal(t, "better", changed.Content)
	assert.Equal(t, ReviewPositive, changed.Type)
	assert.Equal(t, orig.AuthorID, changed.AuthorID)
}
