package review

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseVocabularyQuiz_CaseInsensitive(t *testing.T) {
	e := newTestEngine()

	config := map[string]any{
		"content": map[string]any{
			"words": []any{
				map[string]any{"word_id": "w1", "word": "cat", "definition": "a small animal"},
				map[string]any{"word_id": "w2", "word": "dog", "correct_answer": "Hund"},
				map[string]any{"word_id": "w3", "word": "bird"},
			},
		},
	}
	answers := map[string]any{
		"w1": "CAT",
		"w2": "hund",
		"w3": float64(3),
	}

	r := e.ParseVocabularyQuiz(config, answers, 67)
	require.NotNil(t, r)

	assert.Equal(t, 2, r.Score)
	assert.Equal(t, 3, r.Total)
	assert.Equal(t, 67, r.Percentage)

	require.Len(t, r.Words, 3)
	assert.True(t, r.Words[0].IsCorrect)
	// correct_answer overrides the word itself when set.
	assert.Equal(t, "Hund", r.Words[1].CorrectAnswer)
	assert.True(t, r.Words[1].IsCorrect)
	// A non-string answer coerces to "" and never matches.
	assert.False(t, r.Words[2].IsCorrect)
	assert.Equal(t, "", r.Words[2].StudentAnswer)
}

func TestParseVocabularyQuiz_MissingWordsArray(t *testing.T) {
	e := newTestEngine()
	assert.Nil(t, e.ParseVocabularyQuiz(map[string]any{"content": map[string]any{}}, map[string]any{}, 0))
}

func TestParseVocabularyMatching_SelfMatch(t *testing.T) {
	e := newTestEngine()

	config := map[string]any{
		"content": map[string]any{
			"pairs": []any{
				map[string]any{"pair_id": "p1", "word": "cat", "definition": "a small animal"},
				map[string]any{"pair_id": "p2", "word": "dog", "definition": "a loyal animal"},
				map[string]any{"pair_id": "p3", "word": "bird", "definition": "it flies"},
			},
		},
	}
	answers := map[string]any{
		"p1": "p1",
		"p2": " p2 ",
		"p3": "p1",
	}

	// The caller-supplied score is ignored; the percentage is local.
	r := e.ParseVocabularyMatching(config, answers, 5)
	require.NotNil(t, r)

	assert.Equal(t, 2, r.Score)
	assert.Equal(t, 3, r.Total)
	assert.Equal(t, 67, r.Percentage)

	assert.True(t, r.Pairs[0].IsCorrect)
	assert.True(t, r.Pairs[1].IsCorrect)
	assert.False(t, r.Pairs[2].IsCorrect)
	assert.Equal(t, "p1", r.Pairs[2].StudentMatch)
}

func TestParseVocabularyMatching_EmptyAnswers(t *testing.T) {
	e := newTestEngine()

	config := map[string]any{
		"content": map[string]any{
			"pairs": []any{
				map[string]any{"pair_id": "p1", "word": "cat", "definition": "a small animal"},
			},
		},
	}

	r := e.ParseVocabularyMatching(config, map[string]any{}, 100)
	require.NotNil(t, r)
	assert.Equal(t, 0, r.Score)
	assert.Equal(t, 0, r.Percentage)
	assert.Equal(t, 1, r.Diagnostics.Unanswered)
}
