package httpapi

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/abhisek/studyhall/internal/recommend"
	"github.com/abhisek/studyhall/internal/store"
)

func TestRequestValidation(t *testing.T) {
	require.Error(t, validate.Struct(answerRequest{}))
	require.Error(t, validate.Struct(answerRequest{LessonID: 0, Question: "q"}))
	require.Error(t, validate.Struct(answerRequest{LessonID: -1, Question: "q"}))
	require.Error(t, validate.Struct(answerRequest{LessonID: 1}))
	require.NoError(t, validate.Struct(answerRequest{LessonID: 1, Question: "What is this?"}))

	require.Error(t, validate.Struct(createLessonRequest{}))
	require.Error(t, validate.Struct(createLessonRequest{Title: "t"}))
	require.NoError(t, validate.Struct(createLessonRequest{Title: "t", Content: "c"}))
}

func TestLessonResponsePreview(t *testing.T) {
	long := store.Lesson{
		ID:      1,
		Title:   "Long Lesson",
		Content: strings.Repeat("x", 500),
	}
	resp := toLessonResponse(long)
	require.True(t, strings.HasSuffix(resp.ContentPreview, "..."))
	require.LessOrEqual(t, len(resp.ContentPreview), 203)

	short := store.Lesson{ID: 2, Title: "Short", Content: "Brief."}
	require.Equal(t, "Brief.", toLessonResponse(short).ContentPreview)
}

func TestRecommendationResponseMapping(t *testing.T) {
	scores := []recommend.Score{
		{LessonID: 3, Score: 2.5},
		{LessonID: 1, Score: 1.0},
	}
	out := toRecommendationResponse(scores)
	require.Len(t, out, 2)
	require.Equal(t, 3, out[0].LessonID)
	require.InDelta(t, 2.5, out[0].Score, 1e-9)

	require.Empty(t, toRecommendationResponse(nil))
}
