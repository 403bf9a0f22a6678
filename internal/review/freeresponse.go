package review

import (
	"github.com/alperyazir/dream-lms-sub000/internal/models"
)

// ParseFreeResponse collects free-response submissions for human review. No
// correctness is computed; the result only pairs each prompt with what the
// student wrote. Returns nil only when the configuration has no prompts
// array.
func (e *Engine) ParseFreeResponse(config, answers map[string]any, score float64) *models.FreeResponseReview {
	var content models.FreeResponseContent
	if err := decodeContent(config, &content); err != nil {
		e.logger.Error("free response config is malformed", "error", err)
		return nil
	}
	if content.Prompts == nil {
		e.logger.Error("free response config has no prompts array")
		return nil
	}

	answerMap, strategy := Unwrap(answers)

	results := make([]models.FreeResponseResult, 0, len(content.Prompts))
	unanswered := 0
	for _, p := range content.Prompts {
		r := models.FreeResponseResult{
			ItemID: p.ItemID,
			Prompt: p.Prompt,
		}
		raw, ok := answerFor(answerMap, p.ItemID)
		if !ok {
			unanswered++
		} else {
			r.StudentAnswer = toAnswerString(raw)
		}
		results = append(results, r)
	}

	return &models.FreeResponseReview{
		ReviewSummary: models.ReviewSummary{
			Score:       0,
			Total:       len(content.Prompts),
			Percentage:  roundScore(score),
			Diagnostics: diagnostics(strategy, unanswered),
		},
		Responses: results,
	}
}
