package review

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alperyazir/dream-lms-sub000/internal/models"
)

func TestSupportsDetailedReview(t *testing.T) {
	for _, at := range models.ActivityTypes() {
		assert.True(t, SupportsDetailedReview(string(at)), string(at))
	}
	assert.False(t, SupportsDetailedReview("crossword"))
	assert.False(t, SupportsDetailedReview(""))
	assert.False(t, SupportsDetailedReview("Quiz"))
}

// Every supported type must have a dispatch arm in Parse: a well-formed
// configuration for it must produce a non-nil review carrying diagnostics.
func TestParse_CoversEverySupportedType(t *testing.T) {
	e := newTestEngine()

	configs := map[models.ActivityType]map[string]any{
		models.ActivityQuiz:                     quizConfig(),
		models.ActivityListeningQuiz:            quizConfig(),
		models.ActivityVocabularyQuiz:           {"content": map[string]any{"words": []any{}}},
		models.ActivityReadingComprehension:     readingConfig(),
		models.ActivitySentenceBuilder:          sentenceBuilderConfig(),
		models.ActivityListeningSentenceBuilder: sentenceBuilderConfig(),
		models.ActivityWordBuilder:              wordBuilderConfig(),
		models.ActivityListeningWordBuilder:     wordBuilderConfig(),
		models.ActivityListeningFillBlank:       {"content": map[string]any{"sentences": []any{}}},
		models.ActivityWritingFillBlank:         {"content": map[string]any{"sentences": []any{}}},
		models.ActivitySentenceCorrector:        {"content": map[string]any{"sentences": []any{}}},
		models.ActivityFreeResponse:             {"content": map[string]any{"prompts": []any{}}},
		models.ActivityVocabularyMatching:       {"content": map[string]any{"pairs": []any{}}},
		models.ActivityMixMode:                  {"content": map[string]any{"items": []any{}}},
	}

	for _, at := range models.ActivityTypes() {
		config, ok := configs[at]
		require.True(t, ok, "missing fixture for %s", at)

		result := e.Parse(string(at), config, map[string]any{}, 0)
		require.NotNil(t, result, string(at))

		summarized, ok := result.(interface{ Summary() models.ReviewSummary })
		require.True(t, ok, string(at))
		assert.NotEmpty(t, summarized.Summary().Diagnostics.UnwrapStrategy, string(at))
	}
}

// Unwrapping is idempotent: re-wrapping an already unwrapped map and
// unwrapping again lands on the same logical answers.
func TestUnwrap_Idempotent(t *testing.T) {
	envelope := map[string]any{
		"0": map[string]any{
			"answers": map[string]any{"q1": "apple", "q2": float64(2)},
			"score":   float64(50),
		},
	}

	once, _ := Unwrap(envelope)
	twice, _ := Unwrap(once)
	assert.Equal(t, once, twice)
}
