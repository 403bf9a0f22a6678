package review

import (
	"strings"

	"github.com/alperyazir/dream-lms-sub000/internal/models"
)

// ParseListeningFillBlank scores a listen-and-fill activity. The submitted
// word list must have the same length as missing_words and match element by
// element, case-insensitively. Configs that predate missing_words fall back
// to a looser proxy: the item counts as correct when every submitted blank is
// filled. Returns nil only when the configuration has no sentences array.
func (e *Engine) ParseListeningFillBlank(config, answers map[string]any, score float64) *models.ListeningFillBlankReview {
	var content models.ListeningFillBlankContent
	if err := decodeContent(config, &content); err != nil {
		e.logger.Error("listening fill-blank config is malformed", "error", err)
		return nil
	}
	if content.Sentences == nil {
		e.logger.Error("listening fill-blank config has no sentences array")
		return nil
	}

	answerMap, strategy := Unwrap(answers)

	results := make([]models.ListeningBlankResult, 0, len(content.Sentences))
	correct := 0
	unanswered := 0
	for _, s := range content.Sentences {
		r := models.ListeningBlankResult{
			ItemID:       s.ItemID,
			Sentence:     s.Sentence,
			MissingWords: s.MissingWords,
			AudioURL:     s.AudioURL,
		}

		raw, ok := answerFor(answerMap, s.ItemID)
		if !ok {
			unanswered++
		} else if words, okList := toStringList(raw); okList {
			r.SubmittedWords = words
			if len(s.MissingWords) > 0 {
				r.IsCorrect = blanksMatch(words, s.MissingWords)
			} else {
				r.IsCorrect = allBlanksFilled(words)
			}
		}
		if r.IsCorrect {
			correct++
		}
		results = append(results, r)
	}

	return &models.ListeningFillBlankReview{
		ReviewSummary: models.ReviewSummary{
			Score:       correct,
			Total:       len(content.Sentences),
			Percentage:  roundScore(score),
			Diagnostics: diagnostics(strategy, unanswered),
		},
		Sentences: results,
	}
}

func blanksMatch(submitted, expected []string) bool {
	if len(submitted) != len(expected) {
		return false
	}
	for i := range submitted {
		if !strings.EqualFold(strings.TrimSpace(submitted[i]), strings.TrimSpace(expected[i])) {
			return false
		}
	}
	return true
}

func allBlanksFilled(words []string) bool {
	if len(words) == 0 {
		return false
	}
	for _, w := range words {
		if strings.TrimSpace(w) == "" {
			return false
		}
	}
	return true
}

// ParseWritingFillBlank scores a written fill-in-the-blank activity. The
// submitted text matches when it equals the primary correct answer or any of
// the acceptable alternates, trimmed and case-insensitive. The percentage is
// computed locally. Returns nil only when the configuration has no sentences
// array.
func (e *Engine) ParseWritingFillBlank(config, answers map[string]any, _ float64) *models.WritingFillBlankReview {
	var content models.WritingFillBlankContent
	if err := decodeContent(config, &content); err != nil {
		e.logger.Error("writing fill-blank config is malformed", "error", err)
		return nil
	}
	if content.Sentences == nil {
		e.logger.Error("writing fill-blank config has no sentences array")
		return nil
	}

	answerMap, strategy := Unwrap(answers)

	results := make([]models.WritingBlankResult, 0, len(content.Sentences))
	correct := 0
	unanswered := 0
	for _, s := range content.Sentences {
		r := models.WritingBlankResult{
			ItemID:            s.ItemID,
			Sentence:          s.Sentence,
			CorrectAnswer:     s.CorrectAnswer,
			AcceptableAnswers: s.AcceptableAnswers,
		}

		raw, ok := answerFor(answerMap, s.ItemID)
		if !ok {
			unanswered++
		} else {
			submitted := toAnswerString(raw)
			r.StudentAnswer = submitted
			r.IsCorrect = matchesAnyAnswer(submitted, s.CorrectAnswer, s.AcceptableAnswers)
		}
		if r.IsCorrect {
			correct++
		}
		results = append(results, r)
	}

	return &models.WritingFillBlankReview{
		ReviewSummary: models.ReviewSummary{
			Score:       correct,
			Total:       len(content.Sentences),
			Percentage:  percentageOf(correct, len(content.Sentences)),
			Diagnostics: diagnostics(strategy, unanswered),
		},
		Sentences: results,
	}
}

func matchesAnyAnswer(submitted, primary string, acceptable []string) bool {
	if textMatches(submitted, primary) {
		return true
	}
	for _, alt := range acceptable {
		if textMatches(submitted, alt) {
			return true
		}
	}
	return false
}

// ParseSentenceCorrector scores a fix-the-sentence activity: the submitted
// text must equal the correct sentence, trimmed and case-insensitive. The
// percentage is computed locally. Returns nil only when the configuration has
// no sentences array.
func (e *Engine) ParseSentenceCorrector(config, answers map[string]any, _ float64) *models.SentenceCorrectorReview {
	var content models.SentenceCorrectorContent
	if err := decodeContent(config, &content); err != nil {
		e.logger.Error("sentence corrector config is malformed", "error", err)
		return nil
	}
	if content.Sentences == nil {
		e.logger.Error("sentence corrector config has no sentences array")
		return nil
	}

	answerMap, strategy := Unwrap(answers)

	results := make([]models.CorrectorResult, 0, len(content.Sentences))
	correct := 0
	unanswered := 0
	for _, s := range content.Sentences {
		r := models.CorrectorResult{
			ItemID:            s.ItemID,
			IncorrectSentence: s.IncorrectSentence,
			CorrectSentence:   s.CorrectSentence,
		}

		raw, ok := answerFor(answerMap, s.ItemID)
		if !ok {
			unanswered++
		} else {
			submitted := toAnswerString(raw)
			r.StudentAnswer = submitted
			r.IsCorrect = textMatches(submitted, s.CorrectSentence)
		}
		if r.IsCorrect {
			correct++
		}
		results = append(results, r)
	}

	return &models.SentenceCorrectorReview{
		ReviewSummary: models.ReviewSummary{
			Score:       correct,
			Total:       len(content.Sentences),
			Percentage:  percentageOf(correct, len(content.Sentences)),
			Diagnostics: diagnostics(strategy, unanswered),
		},
		Sentences: results,
	}
}
