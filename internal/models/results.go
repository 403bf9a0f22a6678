package models

// Diagnostics describes how the submission envelope was interpreted. It is
// attached to every review so callers that want telemetry get it without the
// engine writing to any output itself.
type Diagnostics struct {
	UnwrapStrategy string `json:"unwrap_strategy"`
	Unanswered     int    `json:"unanswered"`
}

// ReviewSummary is the aggregate every per-type review carries: Score is the
// raw correct-item count, Percentage the 0-100 figure shown to the student.
type ReviewSummary struct {
	Score       int         `json:"score"`
	Total       int         `json:"total"`
	Percentage  int         `json:"percentage"`
	Diagnostics Diagnostics `json:"diagnostics"`
}

// Summary lets callers read the aggregate off any per-type review without
// knowing its concrete type; every review struct embeds ReviewSummary.
func (s ReviewSummary) Summary() ReviewSummary {
	return s
}

// ===== QUIZ / LISTENING QUIZ =====

type QuizQuestionResult struct {
	QuestionID    string   `json:"question_id"`
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectIndex  int      `json:"correct_index"`
	StudentAnswer *int     `json:"student_answer"`
	IsCorrect     bool     `json:"is_correct"`
	Explanation   string   `json:"explanation,omitempty"`
	AudioURL      string   `json:"audio_url,omitempty"`
}

type QuizReview struct {
	ReviewSummary
	Questions []QuizQuestionResult `json:"question_results"`
}

// ===== VOCABULARY QUIZ =====

type VocabularyWordResult struct {
	WordID        string `json:"word_id"`
	Word          string `json:"word"`
	Definition    string `json:"definition"`
	CorrectAnswer string `json:"correct_answer"`
	StudentAnswer string `json:"student_answer"`
	IsCorrect     bool   `json:"is_correct"`
	AudioURL      string `json:"audio_url,omitempty"`
}

type VocabularyQuizReview struct {
	ReviewSummary
	Words []VocabularyWordResult `json:"word_results"`
}

// ===== READING COMPREHENSION =====

type TypeScore struct {
	Correct int `json:"correct"`
	Total   int `json:"total"`
}

type ReadingQuestionResult struct {
	QuestionID    string              `json:"question_id"`
	Type          ReadingQuestionType `json:"type"`
	Question      string              `json:"question"`
	Options       []string            `json:"options,omitempty"`
	CorrectIndex  *int                `json:"correct_index,omitempty"`
	CorrectAnswer string              `json:"correct_answer,omitempty"`
	StudentIndex  *int                `json:"student_index,omitempty"`
	StudentAnswer string              `json:"student_answer,omitempty"`
	IsCorrect     bool                `json:"is_correct"`
}

type ReadingPassageResult struct {
	PassageID string                  `json:"passage_id"`
	Title     string                  `json:"title,omitempty"`
	Questions []ReadingQuestionResult `json:"question_results"`
}

type ReadingReview struct {
	ReviewSummary
	ScoreByType map[string]TypeScore   `json:"score_by_type"`
	Passages    []ReadingPassageResult `json:"passage_results"`
}

// ===== SENTENCE BUILDER (plain and listening) =====

type SentenceBuilderResult struct {
	ItemID            string   `json:"item_id"`
	CorrectSentence   string   `json:"correct_sentence"`
	SubmittedWords    []string `json:"submitted_words"`
	SubmittedSentence string   `json:"submitted_sentence"`
	IsCorrect         bool     `json:"is_correct"`
	AudioURL          string   `json:"audio_url,omitempty"`
}

type SentenceBuilderReview struct {
	ReviewSummary
	Sentences []SentenceBuilderResult `json:"sentence_results"`
}

// ===== WORD BUILDER (plain and listening) =====

type WordBuilderResult struct {
	ItemID        string `json:"item_id"`
	Word          string `json:"word"`
	Definition    string `json:"definition,omitempty"`
	StudentAnswer string `json:"student_answer"`
	Attempts      int    `json:"attempts"`
	Points        int    `json:"points"`
	IsCorrect     bool   `json:"is_correct"`
	AudioURL      string `json:"audio_url,omitempty"`
}

type WordBuilderReview struct {
	ReviewSummary
	PerfectWords    int                 `json:"perfect_words"`
	AverageAttempts float64             `json:"average_attempts"`
	Words           []WordBuilderResult `json:"word_results"`
}

// ===== LISTENING FILL-BLANK =====

type ListeningBlankResult struct {
	ItemID         string   `json:"item_id"`
	Sentence       string   `json:"sentence"`
	MissingWords   []string `json:"missing_words,omitempty"`
	SubmittedWords []string `json:"submitted_words"`
	IsCorrect      bool     `json:"is_correct"`
	AudioURL       string   `json:"audio_url,omitempty"`
}

type ListeningFillBlankReview struct {
	ReviewSummary
	Sentences []ListeningBlankResult `json:"sentence_results"`
}

// ===== WRITING FILL-BLANK =====

type WritingBlankResult struct {
	ItemID            string   `json:"item_id"`
	Sentence          string   `json:"sentence"`
	CorrectAnswer     string   `json:"correct_answer"`
	AcceptableAnswers []string `json:"acceptable_answers,omitempty"`
	StudentAnswer     string   `json:"student_answer"`
	IsCorrect         bool     `json:"is_correct"`
}

type WritingFillBlankReview struct {
	ReviewSummary
	Sentences []WritingBlankResult `json:"sentence_results"`
}

// ===== SENTENCE CORRECTOR =====

type CorrectorResult struct {
	ItemID            string `json:"item_id"`
	IncorrectSentence string `json:"incorrect_sentence"`
	CorrectSentence   string `json:"correct_sentence"`
	StudentAnswer     string `json:"student_answer"`
	IsCorrect         bool   `json:"is_correct"`
}

type SentenceCorrectorReview struct {
	ReviewSummary
	Sentences []CorrectorResult `json:"sentence_results"`
}

// ===== FREE RESPONSE =====

// FreeResponseResult carries no correctness; free-response answers are routed
// to human review.
type FreeResponseResult struct {
	ItemID        string `json:"item_id"`
	Prompt        string `json:"prompt"`
	StudentAnswer string `json:"student_answer"`
}

type FreeResponseReview struct {
	ReviewSummary
	Responses []FreeResponseResult `json:"responses"`
}

// ===== VOCABULARY MATCHING =====

type MatchingResult struct {
	PairID       string `json:"pair_id"`
	Word         string `json:"word"`
	Definition   string `json:"definition"`
	StudentMatch string `json:"student_match"`
	IsCorrect    bool   `json:"is_correct"`
}

type VocabularyMatchingReview struct {
	ReviewSummary
	Pairs []MatchingResult `json:"pair_results"`
}

// ===== MIX MODE =====

type MixModeItemResult struct {
	ItemID        string `json:"item_id"`
	FormatSlug    string `json:"format_slug"`
	Prompt        string `json:"prompt,omitempty"`
	CorrectAnswer string `json:"correct_answer,omitempty"`
	StudentAnswer string `json:"student_answer"`
	IsCorrect     bool   `json:"is_correct"`
	PendingReview bool   `json:"pending_review"`
}

type MixModeReview struct {
	ReviewSummary
	AutoScored    int                 `json:"auto_scored"`
	AutoCorrect   int                 `json:"auto_correct"`
	PendingReview int                 `json:"pending_review"`
	Items         []MixModeItemResult `json:"item_results"`
}
