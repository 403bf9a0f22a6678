package review

import (
	"github.com/alperyazir/dream-lms-sub000/internal/models"
)

// ParseQuiz scores a multiple-choice quiz submission. An item is correct when
// the submitted option index strictly equals the configured correct index
// after both sides are coerced; a value that does not coerce never matches.
// Returns nil only when the configuration has no questions array.
func (e *Engine) ParseQuiz(config, answers map[string]any, score float64) *models.QuizReview {
	return e.parseChoiceQuiz("quiz", config, answers, score)
}

// ParseListeningQuiz scores a listening quiz. Scoring is identical to a plain
// quiz; the items additionally carry the audio clip played to the student.
func (e *Engine) ParseListeningQuiz(config, answers map[string]any, score float64) *models.QuizReview {
	return e.parseChoiceQuiz("listening_quiz", config, answers, score)
}

func (e *Engine) parseChoiceQuiz(tag string, config, answers map[string]any, score float64) *models.QuizReview {
	var content models.QuizContent
	if err := decodeContent(config, &content); err != nil {
		e.logger.Error("quiz config is malformed", "activity_type", tag, "error", err)
		return nil
	}
	if content.Questions == nil {
		e.logger.Error("quiz config has no questions array", "activity_type", tag)
		return nil
	}

	answerMap, strategy := Unwrap(answers)

	results := make([]models.QuizQuestionResult, 0, len(content.Questions))
	correct := 0
	unanswered := 0
	for _, q := range content.Questions {
		correctIdx, hasCorrect := toIndex(q.CorrectIndex)

		r := models.QuizQuestionResult{
			QuestionID:  q.QuestionID,
			Question:    q.Question,
			Options:     q.Options,
			Explanation: q.Explanation,
			AudioURL:    q.AudioURL,
		}
		if hasCorrect {
			r.CorrectIndex = correctIdx
		}

		raw, ok := answerFor(answerMap, q.QuestionID)
		if !ok {
			unanswered++
		} else if idx, okIdx := toIndex(raw); okIdx {
			r.StudentAnswer = &idx
			r.IsCorrect = hasCorrect && idx == correctIdx
		}
		if r.IsCorrect {
			correct++
		}
		results = append(results, r)
	}

	return &models.QuizReview{
		ReviewSummary: models.ReviewSummary{
			Score:       correct,
			Total:       len(content.Questions),
			Percentage:  roundScore(score),
			Diagnostics: diagnostics(strategy, unanswered),
		},
		Questions: results,
	}
}
