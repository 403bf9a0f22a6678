package review

import (
	"strings"

	"github.com/alperyazir/dream-lms-sub000/internal/models"
)

// ParseMixMode scores a mixed-format activity. Each item is dispatched to the
// comparison rule named by its own format_slug; formats flagged manual
// (free_response, open_response) are routed to the pending-review bucket and
// never enter the auto-scored denominator. Unknown format slugs are also
// parked in pending review rather than guessed at. The percentage is computed
// locally over the auto-scored items. Returns nil only when the configuration
// has no items array.
func (e *Engine) ParseMixMode(config, answers map[string]any, _ float64) *models.MixModeReview {
	var content models.MixModeContent
	if err := decodeContent(config, &content); err != nil {
		e.logger.Error("mix-mode config is malformed", "error", err)
		return nil
	}
	if content.Items == nil {
		e.logger.Error("mix-mode config has no items array")
		return nil
	}

	answerMap, strategy := Unwrap(answers)

	results := make([]models.MixModeItemResult, 0, len(content.Items))
	autoScored := 0
	autoCorrect := 0
	pending := 0
	unanswered := 0

	for _, item := range content.Items {
		raw, ok := answerFor(answerMap, item.ItemID)
		if !ok {
			unanswered++
		}

		r := models.MixModeItemResult{
			ItemID:     item.ItemID,
			FormatSlug: item.FormatSlug,
			Prompt:     mixPrompt(item),
		}

		if manual, correct, correctAnswer, submitted := scoreMixItem(item, raw, ok); manual {
			pending++
			r.PendingReview = true
			r.StudentAnswer = submitted
		} else {
			autoScored++
			r.IsCorrect = correct
			r.CorrectAnswer = correctAnswer
			r.StudentAnswer = submitted
			if correct {
				autoCorrect++
			}
		}
		results = append(results, r)
	}

	return &models.MixModeReview{
		ReviewSummary: models.ReviewSummary{
			Score:       autoCorrect,
			Total:       len(content.Items),
			Percentage:  percentageOf(autoCorrect, autoScored),
			Diagnostics: diagnostics(strategy, unanswered),
		},
		AutoScored:    autoScored,
		AutoCorrect:   autoCorrect,
		PendingReview: pending,
		Items:         results,
	}
}

func mixPrompt(item models.MixModeItem) string {
	if item.Question != "" {
		return item.Question
	}
	return item.Prompt
}

// scoreMixItem applies the per-format comparison rule to one mixed item.
// answered is false when no raw value was found for the item, in which case
// an auto-scorable item is simply incorrect.
func scoreMixItem(item models.MixModeItem, raw any, answered bool) (manual, correct bool, correctAnswer, submitted string) {
	switch item.FormatSlug {
	case models.FormatFreeResponse, models.FormatOpenResponse:
		if answered {
			submitted = toAnswerString(raw)
		}
		return true, false, "", submitted

	case "quiz", "multiple_choice", "listening_quiz":
		correctIdx, hasCorrect := toIndex(item.CorrectIndex)
		if hasCorrect && correctIdx >= 0 && correctIdx < len(item.Options) {
			correctAnswer = item.Options[correctIdx]
		}
		if answered {
			if idx, ok := toIndex(raw); ok {
				if idx >= 0 && idx < len(item.Options) {
					submitted = item.Options[idx]
				}
				correct = hasCorrect && idx == correctIdx
			}
		}
		return false, correct, correctAnswer, submitted

	case "vocabulary", "vocabulary_quiz", "word_builder":
		target := item.CorrectAnswer
		if target == "" {
			target = item.CorrectWord
		}
		if target == "" {
			target = item.Word
		}
		if answered {
			submitted = toAnswerString(raw)
			correct = submitted != "" && strings.EqualFold(submitted, target)
		}
		return false, correct, target, submitted

	case "fill_blank", "writing_fill_blank":
		if answered {
			submitted = toAnswerString(raw)
			correct = matchesAnyAnswer(submitted, item.CorrectAnswer, item.AcceptableAnswers)
		}
		return false, correct, item.CorrectAnswer, submitted

	case "sentence_builder", "listening_sentence_builder":
		if answered {
			if words, ok := toStringList(raw); ok {
				submitted = strings.Join(words, " ")
				correct = submitted == item.CorrectSentence
			}
		}
		return false, correct, item.CorrectSentence, submitted

	case "sentence_corrector":
		if answered {
			submitted = toAnswerString(raw)
			correct = textMatches(submitted, item.CorrectSentence)
		}
		return false, correct, item.CorrectSentence, submitted

	default:
		// Unknown formats cannot be auto-scored safely.
		if answered {
			submitted = toAnswerString(raw)
		}
		return true, false, "", submitted
	}
}
