package review

import (
	"github.com/alperyazir/dream-lms-sub000/internal/models"
)

// ParseReadingComprehension scores a passage-based activity. Multiple-choice
// and true/false questions compare coerced indices; both sides are coerced
// independently because older records store the ground-truth index as a
// numeric string. Short-answer questions compare trimmed, case-insensitive
// text. Returns nil only when the configuration has no passages array.
func (e *Engine) ParseReadingComprehension(config, answers map[string]any, score float64) *models.ReadingReview {
	var content models.ReadingContent
	if err := decodeContent(config, &content); err != nil {
		e.logger.Error("reading comprehension config is malformed", "error", err)
		return nil
	}
	if content.Passages == nil {
		e.logger.Error("reading comprehension config has no passages array")
		return nil
	}

	answerMap, strategy := Unwrap(answers)

	scoreByType := map[string]models.TypeScore{}
	passages := make([]models.ReadingPassageResult, 0, len(content.Passages))
	correct := 0
	total := 0
	unanswered := 0

	for _, p := range content.Passages {
		pr := models.ReadingPassageResult{
			PassageID: p.PassageID,
			Title:     p.Title,
			Questions: make([]models.ReadingQuestionResult, 0, len(p.Questions)),
		}

		for _, q := range p.Questions {
			total++
			r := models.ReadingQuestionResult{
				QuestionID: q.QuestionID,
				Type:       q.Type,
				Question:   q.Question,
				Options:    q.Options,
			}

			raw, ok := answerFor(answerMap, q.QuestionID)
			if !ok {
				unanswered++
			}

			switch q.Type {
			case models.ReadingShortAnswer:
				r.CorrectAnswer = q.CorrectAnswer
				if ok {
					submitted := toAnswerString(raw)
					r.StudentAnswer = submitted
					r.IsCorrect = textMatches(submitted, q.CorrectAnswer)
				}
			default:
				// multiple_choice and true_false both score by index.
				if correctIdx, hasCorrect := toIndex(q.CorrectIndex); hasCorrect {
					idx := correctIdx
					r.CorrectIndex = &idx
					if ok {
						if studentIdx, okIdx := toIndex(raw); okIdx {
							s := studentIdx
							r.StudentIndex = &s
							r.IsCorrect = studentIdx == correctIdx
						}
					}
				}
			}

			ts := scoreByType[string(q.Type)]
			ts.Total++
			if r.IsCorrect {
				ts.Correct++
				correct++
			}
			scoreByType[string(q.Type)] = ts

			pr.Questions = append(pr.Questions, r)
		}
		passages = append(passages, pr)
	}

	return &models.ReadingReview{
		ReviewSummary: models.ReviewSummary{
			Score:       correct,
			Total:       total,
			Percentage:  roundScore(score),
			Diagnostics: diagnostics(strategy, unanswered),
		},
		ScoreByType: scoreByType,
		Passages:    passages,
	}
}
