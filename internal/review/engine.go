package review

import (
	"encoding/json"
	"math"

	"github.com/alperyazir/dream-lms-sub000/internal/models"
	"github.com/alperyazir/dream-lms-sub000/internal/utils"
)

// Engine hosts the per-activity-type parsers. It holds no state beyond a
// logger; every parse call is independent and safe to run concurrently.
type Engine struct {
	logger utils.Logger
}

func NewEngine(logger utils.Logger) *Engine {
	return &Engine{logger: logger}
}

// Parse dispatches to the parser for the given activity type and returns its
// typed review, or nil when the type is unsupported or the configuration is
// malformed. A panicking parser is recovered here so a single broken
// submission can never take the caller down; it is logged and reported as
// "cannot review".
func (e *Engine) Parse(activityType string, config, answers map[string]any, score float64) (result any) {
	defer func() {
		if r := recover(); r != nil {
			e.logger.Error("review parser panicked",
				"activity_type", activityType,
				"panic", r)
			result = nil
		}
	}()

	switch models.ActivityType(activityType) {
	case models.ActivityQuiz:
		if r := e.ParseQuiz(config, answers, score); r != nil {
			return r
		}
	case models.ActivityVocabularyQuiz:
		if r := e.ParseVocabularyQuiz(config, answers, score); r != nil {
			return r
		}
	case models.ActivityReadingComprehension:
		if r := e.ParseReadingComprehension(config, answers, score); r != nil {
			return r
		}
	case models.ActivitySentenceBuilder:
		if r := e.ParseSentenceBuilder(config, answers, score); r != nil {
			return r
		}
	case models.ActivityWordBuilder:
		if r := e.ParseWordBuilder(config, answers, score); r != nil {
			return r
		}
	case models.ActivityListeningQuiz:
		if r := e.ParseListeningQuiz(config, answers, score); r != nil {
			return r
		}
	case models.ActivityListeningFillBlank:
		if r := e.ParseListeningFillBlank(config, answers, score); r != nil {
			return r
		}
	case models.ActivityListeningSentenceBuilder:
		if r := e.ParseListeningSentenceBuilder(config, answers, score); r != nil {
			return r
		}
	case models.ActivityListeningWordBuilder:
		if r := e.ParseListeningWordBuilder(config, answers, score); r != nil {
			return r
		}
	case models.ActivityWritingFillBlank:
		if r := e.ParseWritingFillBlank(config, answers, score); r != nil {
			return r
		}
	case models.ActivitySentenceCorrector:
		if r := e.ParseSentenceCorrector(config, answers, score); r != nil {
			return r
		}
	case models.ActivityFreeResponse:
		if r := e.ParseFreeResponse(config, answers, score); r != nil {
			return r
		}
	case models.ActivityVocabularyMatching:
		if r := e.ParseVocabularyMatching(config, answers, score); r != nil {
			return r
		}
	case models.ActivityMixMode:
		if r := e.ParseMixMode(config, answers, score); r != nil {
			return r
		}
	default:
		e.logger.Warn("unsupported activity type", "activity_type", activityType)
	}
	return nil
}

// decodeContent decodes an activity configuration into its typed shape. The
// activity-specific fields may sit under a "content" wrapper or directly at
// the top level; both decode identically.
func decodeContent(config map[string]any, out any) error {
	content := config
	if inner, ok := asObject(config["content"]); ok {
		content = inner
	}
	raw, err := json.Marshal(content)
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, out)
}

// roundScore converts the caller-supplied percentage into the reported value.
func roundScore(score float64) int {
	return int(math.Round(score))
}

// percentageOf computes a local percentage for the activity types that do not
// trust the caller-supplied score.
func percentageOf(correct, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(float64(correct) / float64(total) * 100))
}

func diagnostics(strategy UnwrapStrategy, unanswered int) models.Diagnostics {
	return models.Diagnostics{
		UnwrapStrategy: string(strategy),
		Unanswered:     unanswered,
	}
}
