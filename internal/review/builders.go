package review

import (
	"math"
	"sort"
	"strings"

	"github.com/alperyazir/dream-lms-sub000/internal/models"
)

// Attempt-based points for word builder items. The first successful try is
// worth full credit; later tries degrade, and a never-correct word earns 0.
const (
	wordPointsFirstTry  = 100
	wordPointsSecondTry = 70
	wordPointsThirdTry  = 50
	wordPointsLateTry   = 30
)

// ParseSentenceBuilder scores a word-ordering activity. The submitted word
// list, joined with single spaces, must equal the correct sentence exactly:
// both word order and whitespace are significant. Returns nil only when the
// configuration has no sentences array.
func (e *Engine) ParseSentenceBuilder(config, answers map[string]any, score float64) *models.SentenceBuilderReview {
	return e.parseSentenceBuilder("sentence_builder", config, answers, score)
}

// ParseListeningSentenceBuilder scores the listening variant; the rule is the
// same, the items carry audio.
func (e *Engine) ParseListeningSentenceBuilder(config, answers map[string]any, score float64) *models.SentenceBuilderReview {
	return e.parseSentenceBuilder("listening_sentence_builder", config, answers, score)
}

func (e *Engine) parseSentenceBuilder(tag string, config, answers map[string]any, score float64) *models.SentenceBuilderReview {
	var content models.SentenceBuilderContent
	if err := decodeContent(config, &content); err != nil {
		e.logger.Error("sentence builder config is malformed", "activity_type", tag, "error", err)
		return nil
	}
	if content.Sentences == nil {
		e.logger.Error("sentence builder config has no sentences array", "activity_type", tag)
		return nil
	}

	answerMap, strategy := Unwrap(answers)

	results := make([]models.SentenceBuilderResult, 0, len(content.Sentences))
	correct := 0
	unanswered := 0
	for _, s := range content.Sentences {
		r := models.SentenceBuilderResult{
			ItemID:          s.ItemID,
			CorrectSentence: s.CorrectSentence,
			AudioURL:        s.AudioURL,
		}

		raw, ok := answerFor(answerMap, s.ItemID)
		if !ok {
			unanswered++
		} else if words, okList := toStringList(raw); okList {
			r.SubmittedWords = words
			r.SubmittedSentence = strings.Join(words, " ")
			r.IsCorrect = r.SubmittedSentence == s.CorrectSentence
		}
		if r.IsCorrect {
			correct++
		}
		results = append(results, r)
	}

	return &models.SentenceBuilderReview{
		ReviewSummary: models.ReviewSummary{
			Score:       correct,
			Total:       len(content.Sentences),
			Percentage:  roundScore(score),
			Diagnostics: diagnostics(strategy, unanswered),
		},
		Sentences: results,
	}
}

// ParseWordBuilder scores a spelling activity with attempt-based partial
// credit. A word is correct when the submitted spelling equals the target
// case-insensitively; points depend on which attempt succeeded. The review
// additionally reports perfect_words (correct on the first try) and the mean
// attempt count. Returns nil only when the configuration has no words array.
func (e *Engine) ParseWordBuilder(config, answers map[string]any, score float64) *models.WordBuilderReview {
	return e.parseWordBuilder("word_builder", config, answers, score)
}

// ParseListeningWordBuilder scores the listening variant of the word builder.
func (e *Engine) ParseListeningWordBuilder(config, answers map[string]any, score float64) *models.WordBuilderReview {
	return e.parseWordBuilder("listening_word_builder", config, answers, score)
}

func (e *Engine) parseWordBuilder(tag string, config, answers map[string]any, score float64) *models.WordBuilderReview {
	var content models.WordBuilderContent
	if err := decodeContent(config, &content); err != nil {
		e.logger.Error("word builder config is malformed", "activity_type", tag, "error", err)
		return nil
	}
	if content.Words == nil {
		e.logger.Error("word builder config has no words array", "activity_type", tag)
		return nil
	}

	answerMap, strategy := Unwrap(answers)

	raws := make([]any, len(content.Words))
	found := make([]bool, len(content.Words))
	matched := 0
	for i, w := range content.Words {
		if raw, ok := answerFor(answerMap, w.ItemID); ok {
			raws[i] = raw
			found[i] = true
			matched++
		}
	}

	// Positional fallback: when no item id lines up but the answer count
	// equals the item count, align by position. Best effort only — if items
	// and answers are misaligned (say, one skipped item under renamed ids)
	// this pairs them wrongly, and nothing here can detect that.
	if matched == 0 && len(answerMap) == len(content.Words) && len(answerMap) > 0 {
		keys := make([]string, 0, len(answerMap))
		for k := range answerMap {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for i, k := range keys {
			raws[i] = answerMap[k]
			found[i] = true
		}
	}

	results := make([]models.WordBuilderResult, 0, len(content.Words))
	correct := 0
	perfect := 0
	unanswered := 0
	attemptsSum := 0
	attemptsCount := 0

	for i, w := range content.Words {
		r := models.WordBuilderResult{
			ItemID:     w.ItemID,
			Word:       w.Target(),
			Definition: w.Definition,
			AudioURL:   w.AudioURL,
		}

		if !found[i] {
			unanswered++
		} else {
			submitted, attempts := wordAnswer(raws[i])
			r.StudentAnswer = submitted
			r.Attempts = attempts
			if attempts > 0 {
				attemptsSum += attempts
				attemptsCount++
			}
			r.IsCorrect = submitted != "" && strings.EqualFold(submitted, w.Target())
			r.Points = wordPoints(r.IsCorrect, attempts)
		}
		if r.IsCorrect {
			correct++
			if r.Attempts == 1 {
				perfect++
			}
		}
		results = append(results, r)
	}

	avgAttempts := 0.0
	if attemptsCount > 0 {
		avgAttempts = math.Round(float64(attemptsSum)/float64(attemptsCount)*100) / 100
	}

	return &models.WordBuilderReview{
		ReviewSummary: models.ReviewSummary{
			Score:       correct,
			Total:       len(content.Words),
			Percentage:  roundScore(score),
			Diagnostics: diagnostics(strategy, unanswered),
		},
		PerfectWords:    perfect,
		AverageAttempts: avgAttempts,
		Words:           results,
	}
}

// wordAnswer extracts the submitted spelling and attempt count from a raw
// word-builder answer. Producers send either a bare string (attempts
// implicitly 1) or an object carrying the word plus its attempt counter.
func wordAnswer(raw any) (string, int) {
	switch t := raw.(type) {
	case string:
		return t, 1
	case map[string]any:
		word := toAnswerString(t["answer"])
		if word == "" {
			word = toAnswerString(t["word"])
		}
		attempts, ok := toIndex(t["attempts"])
		if !ok || attempts < 1 {
			attempts = 1
		}
		return word, attempts
	}
	return "", 0
}

func wordPoints(isCorrect bool, attempts int) int {
	if !isCorrect {
		return 0
	}
	switch attempts {
	case 1:
		return wordPointsFirstTry
	case 2:
		return wordPointsSecondTry
	case 3:
		return wordPointsThirdTry
	default:
		return wordPointsLateTry
	}
}
