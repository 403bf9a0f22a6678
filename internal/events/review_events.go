package events

import (
	"time"

	"github.com/google/uuid"

	"github.com/alperyazir/dream-lms-sub000/internal/models"
)

// ReviewEventType identifies the kind of review lifecycle event.
type ReviewEventType string

const (
	ReviewCompleted   ReviewEventType = "review.completed"
	ReviewUnavailable ReviewEventType = "review.unavailable"
)

// ReviewEvent is the envelope published to the review-events topic whenever a
// submission has been scored (or could not be).
type ReviewEvent struct {
	ID        string          `json:"id"`
	Type      ReviewEventType `json:"type"`
	Source    string          `json:"source"`
	Version   string          `json:"version"`
	Timestamp time.Time       `json:"timestamp"`

	ReviewID     string              `json:"review_id,omitempty"`
	ActivityID   string              `json:"activity_id"`
	ActivityType models.ActivityType `json:"activity_type"`
	StudentID    string              `json:"student_id"`
	Score        float64             `json:"score"`
}

const (
	eventSource  = "review-service"
	eventVersion = "1.0"
)

// NewReviewCompletedEvent builds the event announcing a stored review.
func NewReviewCompletedEvent(review *models.SubmissionReview) *ReviewEvent {
	return &ReviewEvent{
		ID:           uuid.NewString(),
		Type:         ReviewCompleted,
		Source:       eventSource,
		Version:      eventVersion,
		Timestamp:    time.Now().UTC(),
		ReviewID:     review.ID,
		ActivityID:   review.ActivityID,
		ActivityType: review.ActivityType,
		StudentID:    review.StudentID,
		Score:        review.Score,
	}
}

// NewReviewUnavailableEvent is published when the engine could not produce a
// detailed review for a submission (malformed configuration).
func NewReviewUnavailableEvent(activityID string, activityType models.ActivityType, studentID string) *ReviewEvent {
	return &ReviewEvent{
		ID:           uuid.NewString(),
		Type:         ReviewUnavailable,
		Source:       eventSource,
		Version:      eventVersion,
		Timestamp:    time.Now().UTC(),
		ActivityID:   activityID,
		ActivityType: activityType,
		StudentID:    studentID,
	}
}
