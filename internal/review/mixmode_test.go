package review

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mixModeConfig() map[string]any {
	return map[string]any{
		"content": map[string]any{
			"items": []any{
				map[string]any{
					"item_id":       "m1",
					"format_slug":   "quiz",
					"question":      "Pick the noun.",
					"options":       []any{"run", "cat"},
					"correct_index": float64(1),
				},
				map[string]any{
					"item_id":        "m2",
					"format_slug":    "vocabulary",
					"word":           "dog",
					"correct_answer": "Hund",
				},
				map[string]any{
					"item_id":          "m3",
					"format_slug":      "sentence_builder",
					"correct_sentence": "I like cats",
				},
				map[string]any{
					"item_id":     "m4",
					"format_slug": "free_response",
					"prompt":      "Describe your weekend.",
				},
				map[string]any{
					"item_id":     "m5",
					"format_slug": "crossword",
					"prompt":      "A format this engine does not know.",
				},
			},
		},
	}
}

func TestParseMixMode(t *testing.T) {
	e := newTestEngine()

	answers := map[string]any{
		"m1": "1",
		"m2": "hund",
		"m3": []any{"I", "cats", "like"},
		"m4": "It was sunny.",
		"m5": "across: cat",
	}

	r := e.ParseMixMode(mixModeConfig(), answers, 999)
	require.NotNil(t, r)

	assert.Equal(t, 5, r.Total)
	assert.Equal(t, 3, r.AutoScored)
	assert.Equal(t, 2, r.AutoCorrect)
	assert.Equal(t, 2, r.PendingReview)
	assert.Equal(t, 2, r.Score)
	// 2 of 3 auto-scored items; pending items never enter the denominator.
	assert.Equal(t, 67, r.Percentage)

	require.Len(t, r.Items, 5)

	quiz := r.Items[0]
	assert.True(t, quiz.IsCorrect)
	assert.Equal(t, "cat", quiz.CorrectAnswer)
	assert.Equal(t, "cat", quiz.StudentAnswer)

	vocab := r.Items[1]
	assert.True(t, vocab.IsCorrect)
	assert.Equal(t, "Hund", vocab.CorrectAnswer)

	builder := r.Items[2]
	assert.False(t, builder.IsCorrect)
	assert.Equal(t, "I cats like", builder.StudentAnswer)

	free := r.Items[3]
	assert.True(t, free.PendingReview)
	assert.False(t, free.IsCorrect)
	assert.Equal(t, "It was sunny.", free.StudentAnswer)

	unknown := r.Items[4]
	assert.True(t, unknown.PendingReview)
	assert.Equal(t, "across: cat", unknown.StudentAnswer)
}

func TestParseMixMode_BucketsAreExclusive(t *testing.T) {
	e := newTestEngine()

	r := e.ParseMixMode(mixModeConfig(), map[string]any{}, 0)
	require.NotNil(t, r)

	assert.Equal(t, r.Total, r.AutoScored+r.PendingReview)
	for _, item := range r.Items {
		if item.PendingReview {
			assert.False(t, item.IsCorrect)
		}
	}
	assert.Equal(t, 5, r.Diagnostics.Unanswered)
	assert.Equal(t, 0, r.Percentage)
}

func TestParseMixMode_AllManualItems(t *testing.T) {
	e := newTestEngine()

	config := map[string]any{
		"content": map[string]any{
			"items": []any{
				map[string]any{"item_id": "m1", "format_slug": "free_response", "prompt": "Why?"},
				map[string]any{"item_id": "m2", "format_slug": "open_response", "prompt": "How?"},
			},
		},
	}

	r := e.ParseMixMode(config, map[string]any{"m1": "because", "m2": "somehow"}, 100)
	require.NotNil(t, r)
	assert.Equal(t, 0, r.AutoScored)
	assert.Equal(t, 2, r.PendingReview)
	// No auto-scored items means no percentage, not a division by zero.
	assert.Equal(t, 0, r.Percentage)
}

func TestParseMixMode_MissingItems(t *testing.T) {
	e := newTestEngine()
	assert.Nil(t, e.ParseMixMode(map[string]any{"content": map[string]any{}}, map[string]any{}, 0))
}

func TestParseFreeResponse(t *testing.T) {
	e := newTestEngine()

	config := map[string]any{
		"content": map[string]any{
			"prompts": []any{
				map[string]any{"item_id": "f1", "prompt": "Describe your town."},
				map[string]any{"item_id": "f2", "prompt": "What did you learn?"},
			},
		},
	}

	r := e.ParseFreeResponse(config, map[string]any{"f1": "It is small."}, 0)
	require.NotNil(t, r)

	assert.Equal(t, 0, r.Score)
	assert.Equal(t, 2, r.Total)
	assert.Equal(t, 1, r.Diagnostics.Unanswered)
	require.Len(t, r.Responses, 2)
	assert.Equal(t, "It is small.", r.Responses[0].StudentAnswer)
	assert.Equal(t, "", r.Responses[1].StudentAnswer)
}

func TestParseFreeResponse_MissingPrompts(t *testing.T) {
	e := newTestEngine()
	assert.Nil(t, e.ParseFreeResponse(map[string]any{"content": map[string]any{}}, map[string]any{}, 0))
}
