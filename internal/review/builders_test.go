package review

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sentenceBuilderConfig() map[string]any {
	return map[string]any{
		"content": map[string]any{
			"sentences": []any{
				map[string]any{
					"item_id":          "s1",
					"correct_sentence": "I like cats",
					"words":            []any{"cats", "I", "like"},
				},
			},
		},
	}
}

func TestParseSentenceBuilder(t *testing.T) {
	e := newTestEngine()

	tests := []struct {
		name    string
		answer  any
		correct bool
	}{
		{"exact order", []any{"I", "like", "cats"}, true},
		{"wrong order", []any{"cats", "like", "I"}, false},
		{"stringified array", `["I","like","cats"]`, true},
		{"case differs", []any{"i", "like", "cats"}, false},
		{"missing word", []any{"I", "like"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := e.ParseSentenceBuilder(sentenceBuilderConfig(), map[string]any{"s1": tt.answer}, 0)
			require.NotNil(t, r)
			require.Len(t, r.Sentences, 1)
			assert.Equal(t, tt.correct, r.Sentences[0].IsCorrect)
		})
	}
}

func TestParseSentenceBuilder_JoinedSentenceReported(t *testing.T) {
	e := newTestEngine()

	r := e.ParseSentenceBuilder(sentenceBuilderConfig(), map[string]any{"s1": []any{"I", "like", "cats"}}, 100)
	require.NotNil(t, r)
	assert.Equal(t, "I like cats", r.Sentences[0].SubmittedSentence)
	assert.Equal(t, []string{"I", "like", "cats"}, r.Sentences[0].SubmittedWords)
	assert.Equal(t, 1, r.Score)
	assert.Equal(t, 100, r.Percentage)
}

func TestParseSentenceBuilder_MissingSentences(t *testing.T) {
	e := newTestEngine()
	assert.Nil(t, e.ParseSentenceBuilder(map[string]any{"content": map[string]any{}}, map[string]any{}, 0))
}

func wordBuilderConfig() map[string]any {
	return map[string]any{
		"content": map[string]any{
			"words": []any{
				map[string]any{"item_id": "w1", "word": "cat"},
				map[string]any{"item_id": "w2", "word": "dog", "correct_word": "hound"},
				map[string]any{"item_id": "w3", "word": "bird"},
			},
		},
	}
}

func TestParseWordBuilder_AttemptPoints(t *testing.T) {
	e := newTestEngine()

	answers := map[string]any{
		"w1": map[string]any{"answer": "Cat", "attempts": float64(1)},
		"w2": map[string]any{"answer": "hound", "attempts": float64(3)},
		"w3": map[string]any{"answer": "brid", "attempts": float64(4)},
	}

	r := e.ParseWordBuilder(wordBuilderConfig(), answers, 67)
	require.NotNil(t, r)

	assert.Equal(t, 2, r.Score)
	assert.Equal(t, 3, r.Total)
	assert.Equal(t, 1, r.PerfectWords)
	// (1 + 3 + 4) / 3 rounded to two decimals.
	assert.Equal(t, 2.67, r.AverageAttempts)

	require.Len(t, r.Words, 3)
	assert.Equal(t, wordPointsFirstTry, r.Words[0].Points)
	// correct_word overrides word as the target.
	assert.Equal(t, "hound", r.Words[1].Word)
	assert.Equal(t, wordPointsThirdTry, r.Words[1].Points)
	assert.False(t, r.Words[2].IsCorrect)
	assert.Equal(t, 0, r.Words[2].Points)
}

func TestParseWordBuilder_BareStringAnswer(t *testing.T) {
	e := newTestEngine()

	r := e.ParseWordBuilder(wordBuilderConfig(), map[string]any{"w1": "cat"}, 33)
	require.NotNil(t, r)
	assert.True(t, r.Words[0].IsCorrect)
	assert.Equal(t, 1, r.Words[0].Attempts)
	assert.Equal(t, wordPointsFirstTry, r.Words[0].Points)
	assert.Equal(t, 1, r.PerfectWords)
	assert.Equal(t, 2, r.Diagnostics.Unanswered)
}

func TestParseWordBuilder_PositionalFallback(t *testing.T) {
	e := newTestEngine()

	// No submitted key matches an item id, but the counts line up, so answers
	// are aligned by sorted key order: a1->w1, a2->w2, a3->w3.
	answers := map[string]any{
		"a1": "cat",
		"a2": "hound",
		"a3": "wrong",
	}

	r := e.ParseWordBuilder(wordBuilderConfig(), answers, 67)
	require.NotNil(t, r)
	assert.True(t, r.Words[0].IsCorrect)
	assert.True(t, r.Words[1].IsCorrect)
	assert.False(t, r.Words[2].IsCorrect)
	assert.Equal(t, 2, r.Score)
	assert.Equal(t, 0, r.Diagnostics.Unanswered)
}

func TestParseWordBuilder_NoFallbackOnCountMismatch(t *testing.T) {
	e := newTestEngine()

	r := e.ParseWordBuilder(wordBuilderConfig(), map[string]any{"a1": "cat", "a2": "hound"}, 0)
	require.NotNil(t, r)
	assert.Equal(t, 0, r.Score)
	assert.Equal(t, 3, r.Diagnostics.Unanswered)
}

func TestWordAnswer(t *testing.T) {
	tests := []struct {
		name     string
		raw      any
		word     string
		attempts int
	}{
		{"bare string", "cat", "cat", 1},
		{"object with answer", map[string]any{"answer": "cat", "attempts": float64(2)}, "cat", 2},
		{"object with word key", map[string]any{"word": "cat"}, "cat", 1},
		{"zero attempts clamped", map[string]any{"answer": "cat", "attempts": float64(0)}, "cat", 1},
		{"unusable shape", float64(7), "", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			word, attempts := wordAnswer(tt.raw)
			assert.Equal(t, tt.word, word)
			assert.Equal(t, tt.attempts, attempts)
		})
	}
}
