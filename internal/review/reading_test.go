package review

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alperyazir/dream-lms-sub000/internal/models"
)

func readingConfig() map[string]any {
	return map[string]any{
		"content": map[string]any{
			"passages": []any{
				map[string]any{
					"passage_id": "p1",
					"title":      "The Garden",
					"text":       "A short passage about a garden.",
					"questions": []any{
						map[string]any{
							"question_id":   "q1",
							"type":          "multiple_choice",
							"question":      "What grows in the garden?",
							"options":       []any{"cars", "flowers"},
							"correct_index": "1",
						},
						map[string]any{
							"question_id":   "q2",
							"type":          "true_false",
							"question":      "The garden is big.",
							"options":       []any{"true", "false"},
							"correct_index": float64(0),
						},
						map[string]any{
							"question_id":    "q3",
							"type":           "short_answer",
							"question":       "Who waters the garden?",
							"correct_answer": "the gardener",
						},
					},
				},
			},
		},
	}
}

func TestParseReadingComprehension(t *testing.T) {
	e := newTestEngine()

	answers := map[string]any{
		"q1": float64(1),
		"q2": "1",
		"q3": "  The Gardener ",
	}

	r := e.ParseReadingComprehension(readingConfig(), answers, 66.7)
	require.NotNil(t, r)

	assert.Equal(t, 2, r.Score)
	assert.Equal(t, 3, r.Total)
	assert.Equal(t, 67, r.Percentage)

	require.Len(t, r.Passages, 1)
	qs := r.Passages[0].Questions
	require.Len(t, qs, 3)

	// multiple_choice: config index is a numeric string, submission a float.
	assert.True(t, qs[0].IsCorrect)
	require.NotNil(t, qs[0].CorrectIndex)
	assert.Equal(t, 1, *qs[0].CorrectIndex)

	// true_false: submitted 1 against correct 0.
	assert.False(t, qs[1].IsCorrect)
	require.NotNil(t, qs[1].StudentIndex)
	assert.Equal(t, 1, *qs[1].StudentIndex)

	// short_answer: trimmed, case-insensitive.
	assert.True(t, qs[2].IsCorrect)

	assert.Equal(t, models.TypeScore{Correct: 1, Total: 1}, r.ScoreByType["multiple_choice"])
	assert.Equal(t, models.TypeScore{Correct: 0, Total: 1}, r.ScoreByType["true_false"])
	assert.Equal(t, models.TypeScore{Correct: 1, Total: 1}, r.ScoreByType["short_answer"])
}

func TestParseReadingComprehension_WrappedAndUnanswered(t *testing.T) {
	e := newTestEngine()

	answers := map[string]any{
		"0": map[string]any{
			"answers": map[string]any{"q1": float64(1)},
			"status":  "completed",
		},
	}

	r := e.ParseReadingComprehension(readingConfig(), answers, 33)
	require.NotNil(t, r)
	assert.Equal(t, 1, r.Score)
	assert.Equal(t, 2, r.Diagnostics.Unanswered)
	assert.Equal(t, string(StrategyActivityEntry), r.Diagnostics.UnwrapStrategy)
}

func TestParseReadingComprehension_MissingPassages(t *testing.T) {
	e := newTestEngine()
	assert.Nil(t, e.ParseReadingComprehension(map[string]any{"content": map[string]any{}}, map[string]any{}, 0))
}
