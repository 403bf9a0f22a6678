package review

import (
	"strings"

	"github.com/alperyazir/dream-lms-sub000/internal/models"
)

// ParseVocabularyQuiz scores a vocabulary quiz. An item is correct when the
// submitted string equals the configured answer case-insensitively. Returns
// nil only when the configuration has no words array.
func (e *Engine) ParseVocabularyQuiz(config, answers map[string]any, score float64) *models.VocabularyQuizReview {
	var content models.VocabularyQuizContent
	if err := decodeContent(config, &content); err != nil {
		e.logger.Error("vocabulary quiz config is malformed", "error", err)
		return nil
	}
	if content.Words == nil {
		e.logger.Error("vocabulary quiz config has no words array")
		return nil
	}

	answerMap, strategy := Unwrap(answers)

	results := make([]models.VocabularyWordResult, 0, len(content.Words))
	correct := 0
	unanswered := 0
	for _, w := range content.Words {
		target := w.CorrectAnswer
		if target == "" {
			target = w.Word
		}

		r := models.VocabularyWordResult{
			WordID:        w.WordID,
			Word:          w.Word,
			Definition:    w.Definition,
			CorrectAnswer: target,
			AudioURL:      w.AudioURL,
		}

		raw, ok := answerFor(answerMap, w.WordID)
		if !ok {
			unanswered++
		} else {
			submitted := toAnswerString(raw)
			r.StudentAnswer = submitted
			r.IsCorrect = submitted != "" && strings.EqualFold(submitted, target)
		}
		if r.IsCorrect {
			correct++
		}
		results = append(results, r)
	}

	return &models.VocabularyQuizReview{
		ReviewSummary: models.ReviewSummary{
			Score:       correct,
			Total:       len(content.Words),
			Percentage:  roundScore(score),
			Diagnostics: diagnostics(strategy, unanswered),
		},
		Words: results,
	}
}

// ParseVocabularyMatching scores a word/definition matching activity. Each
// word's correct match is itself: the submission is the identifier of the
// definition the student paired with the word, and it must equal the word's
// own pair_id. The percentage is computed locally from the correct count.
func (e *Engine) ParseVocabularyMatching(config, answers map[string]any, _ float64) *models.VocabularyMatchingReview {
	var content models.VocabularyMatchingContent
	if err := decodeContent(config, &content); err != nil {
		e.logger.Error("vocabulary matching config is malformed", "error", err)
		return nil
	}
	if content.Pairs == nil {
		e.logger.Error("vocabulary matching config has no pairs array")
		return nil
	}

	answerMap, strategy := Unwrap(answers)

	results := make([]models.MatchingResult, 0, len(content.Pairs))
	correct := 0
	unanswered := 0
	for _, p := range content.Pairs {
		r := models.MatchingResult{
			PairID:     p.PairID,
			Word:       p.Word,
			Definition: p.Definition,
		}

		raw, ok := answerFor(answerMap, p.PairID)
		if !ok {
			unanswered++
		} else {
			matched := strings.TrimSpace(toAnswerString(raw))
			r.StudentMatch = matched
			r.IsCorrect = matched != "" && matched == p.PairID
		}
		if r.IsCorrect {
			correct++
		}
		results = append(results, r)
	}

	return &models.VocabularyMatchingReview{
		ReviewSummary: models.ReviewSummary{
			Score:       correct,
			Total:       len(content.Pairs),
			Percentage:  percentageOf(correct, len(content.Pairs)),
			Diagnostics: diagnostics(strategy, unanswered),
		},
		Pairs: results,
	}
}
