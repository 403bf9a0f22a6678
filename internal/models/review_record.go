package models

import (
	"time"

	"gorm.io/datatypes"
)

// SubmissionReview is the persisted outcome of running the review engine over
// one submission. Config and Answers keep the raw inputs for re-review after
// engine fixes; Result holds the typed review tree as produced by the engine.
type SubmissionReview struct {
	ID           string       `json:"id" gorm:"primaryKey;size:36"`
	ActivityID   string       `json:"activity_id" gorm:"not null;index;size:64"`
	ActivityType ActivityType `json:"activity_type" gorm:"not null;index;size:40"`
	StudentID    string       `json:"student_id" gorm:"not null;index;size:64"`

	Score          float64 `json:"score"`
	UnwrapStrategy string  `json:"unwrap_strategy" gorm:"size:32"`

	Config  datatypes.JSON `json:"config" gorm:"type:jsonb"`
	Answers datatypes.JSON `json:"answers" gorm:"type:jsonb"`
	Result  datatypes.JSON `json:"result" gorm:"type:jsonb"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (SubmissionReview) TableName() string {
	return "submission_reviews"
}
