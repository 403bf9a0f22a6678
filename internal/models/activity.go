package models

// ActivityType identifies one of the closed set of activity formats the
// review engine understands.
type ActivityType string

const (
	ActivityQuiz                     ActivityType = "quiz"
	ActivityVocabularyQuiz           ActivityType = "vocabulary_quiz"
	ActivityReadingComprehension     ActivityType = "reading_comprehension"
	ActivitySentenceBuilder          ActivityType = "sentence_builder"
	ActivityWordBuilder              ActivityType = "word_builder"
	ActivityListeningQuiz            ActivityType = "listening_quiz"
	ActivityListeningFillBlank       ActivityType = "listening_fill_blank"
	ActivityListeningSentenceBuilder ActivityType = "listening_sentence_builder"
	ActivityListeningWordBuilder     ActivityType = "listening_word_builder"
	ActivityWritingFillBlank         ActivityType = "writing_fill_blank"
	ActivitySentenceCorrector        ActivityType = "sentence_corrector"
	ActivityFreeResponse             ActivityType = "free_response"
	ActivityVocabularyMatching       ActivityType = "vocabulary_matching"
	ActivityMixMode                  ActivityType = "mix_mode"
)

// ActivityTypes returns the ordered, closed list of supported activity types.
func ActivityTypes() []ActivityType {
	return []ActivityType{
		ActivityQuiz,
		ActivityVocabularyQuiz,
		ActivityReadingComprehension,
		ActivitySentenceBuilder,
		ActivityWordBuilder,
		ActivityListeningQuiz,
		ActivityListeningFillBlank,
		ActivityListeningSentenceBuilder,
		ActivityListeningWordBuilder,
		ActivityWritingFillBlank,
		ActivitySentenceCorrector,
		ActivityFreeResponse,
		ActivityVocabularyMatching,
		ActivityMixMode,
	}
}

type DifficultyLevel string

const (
	DifficultyEasy   DifficultyLevel = "easy"
	DifficultyMedium DifficultyLevel = "medium"
	DifficultyHard   DifficultyLevel = "hard"
)

// Mix-mode item formats that are never auto-scored and always land in the
// pending-review bucket.
const (
	FormatFreeResponse = "free_response"
	FormatOpenResponse = "open_response"
)

// ===== ACTIVITY CONTENT SHAPES =====
//
// These structs describe the stored configuration (the answer key) for each
// activity type. Configs arrive as untyped JSON, optionally wrapped in a
// "content" envelope, and are decoded into these shapes before scoring.
//
// Ground-truth fields whose stored type has drifted over time (for example
// correct_index persisted as "1" in older records) are declared as `any` and
// coerced at scoring time.

type QuizContent struct {
	Questions   []QuizQuestion `json:"questions"`
	ModuleTitle string         `json:"module_title,omitempty"`
	Difficulty  string         `json:"difficulty,omitempty"`
	Language    string         `json:"language,omitempty"`
}

type QuizQuestion struct {
	QuestionID   string   `json:"question_id"`
	Question     string   `json:"question"`
	Options      []string `json:"options"`
	CorrectIndex any      `json:"correct_index"`
	Explanation  string   `json:"explanation,omitempty"`
	AudioURL     string   `json:"audio_url,omitempty"`
}

type VocabularyQuizContent struct {
	Words       []VocabularyWord `json:"words"`
	ModuleTitle string           `json:"module_title,omitempty"`
	Language    string           `json:"language,omitempty"`
}

type VocabularyWord struct {
	WordID        string `json:"word_id"`
	Word          string `json:"word"`
	Definition    string `json:"definition"`
	CorrectAnswer string `json:"correct_answer,omitempty"`
	AudioURL      string `json:"audio_url,omitempty"`
}

type ReadingContent struct {
	Passages []ReadingPassage `json:"passages"`
}

type ReadingPassage struct {
	PassageID string            `json:"passage_id"`
	Title     string            `json:"title,omitempty"`
	Text      string            `json:"text,omitempty"`
	Questions []ReadingQuestion `json:"questions"`
}

// ReadingQuestionType discriminates the per-question comparison rule inside a
// reading comprehension passage.
type ReadingQuestionType string

const (
	ReadingMultipleChoice ReadingQuestionType = "multiple_choice"
	ReadingTrueFalse      ReadingQuestionType = "true_false"
	ReadingShortAnswer    ReadingQuestionType = "short_answer"
)

type ReadingQuestion struct {
	QuestionID    string              `json:"question_id"`
	Type          ReadingQuestionType `json:"type"`
	Question      string              `json:"question"`
	Options       []string            `json:"options,omitempty"`
	CorrectIndex  any                 `json:"correct_index,omitempty"`
	CorrectAnswer string              `json:"correct_answer,omitempty"`
}

type SentenceBuilderContent struct {
	Sentences []BuilderSentence `json:"sentences"`
}

type BuilderSentence struct {
	ItemID          string   `json:"item_id"`
	CorrectSentence string   `json:"correct_sentence"`
	Words           []string `json:"words,omitempty"`
	WordCount       int      `json:"word_count,omitempty"`
	AudioURL        string   `json:"audio_url,omitempty"`
}

type WordBuilderContent struct {
	Words []BuilderWord `json:"words"`
}

type BuilderWord struct {
	ItemID           string   `json:"item_id"`
	Word             string   `json:"word,omitempty"`
	CorrectWord      string   `json:"correct_word,omitempty"`
	ScrambledLetters []string `json:"scrambled_letters,omitempty"`
	Definition       string   `json:"definition,omitempty"`
	AudioURL         string   `json:"audio_url,omitempty"`
}

// Target returns the canonical word to score against. Some records carry it
// under correct_word, older ones only under word.
func (w BuilderWord) Target() string {
	if w.CorrectWord != "" {
		return w.CorrectWord
	}
	return w.Word
}

type ListeningFillBlankContent struct {
	Sentences []ListeningBlankSentence `json:"sentences"`
}

type ListeningBlankSentence struct {
	ItemID       string   `json:"item_id"`
	Sentence     string   `json:"sentence"`
	MissingWords []string `json:"missing_words,omitempty"`
	AudioURL     string   `json:"audio_url,omitempty"`
}

type WritingFillBlankContent struct {
	Sentences []WritingBlankSentence `json:"sentences"`
}

type WritingBlankSentence struct {
	ItemID            string   `json:"item_id"`
	Sentence          string   `json:"sentence"`
	CorrectAnswer     string   `json:"correct_answer"`
	AcceptableAnswers []string `json:"acceptable_answers,omitempty"`
}

type SentenceCorrectorContent struct {
	Sentences []CorrectorSentence `json:"sentences"`
}

type CorrectorSentence struct {
	ItemID            string `json:"item_id"`
	IncorrectSentence string `json:"incorrect_sentence"`
	CorrectSentence   string `json:"correct_sentence"`
}

type FreeResponseContent struct {
	Prompts []FreeResponsePrompt `json:"prompts"`
}

type FreeResponsePrompt struct {
	ItemID string `json:"item_id"`
	Prompt string `json:"prompt"`
}

type VocabularyMatchingContent struct {
	Pairs []MatchingPair `json:"pairs"`
}

// MatchingPair is one word/definition pair; a submission is correct when the
// matched definition identifier equals the word's own pair_id.
type MatchingPair struct {
	PairID     string `json:"pair_id"`
	Word       string `json:"word"`
	Definition string `json:"definition"`
}

type MixModeContent struct {
	Items []MixModeItem `json:"items"`
}

// MixModeItem carries the union of per-format answer-key fields; which ones
// are meaningful depends on format_slug.
type MixModeItem struct {
	ItemID            string   `json:"item_id"`
	FormatSlug        string   `json:"format_slug"`
	Question          string   `json:"question,omitempty"`
	Prompt            string   `json:"prompt,omitempty"`
	Options           []string `json:"options,omitempty"`
	CorrectIndex      any      `json:"correct_index,omitempty"`
	CorrectAnswer     string   `json:"correct_answer,omitempty"`
	AcceptableAnswers []string `json:"acceptable_answers,omitempty"`
	CorrectSentence   string   `json:"correct_sentence,omitempty"`
	CorrectWord       string   `json:"correct_word,omitempty"`
	Word              string   `json:"word,omitempty"`
}
