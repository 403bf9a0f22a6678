package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/alperyazir/dream-lms-sub000/internal/models"
)

// ErrNotFound is returned by repositories when no row matches.
var ErrNotFound = errors.New("record not found")

// IsNotFoundError reports whether err represents a missing record.
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// ReviewFilters narrows review listings.
type ReviewFilters struct {
	ActivityID   *string              `json:"activity_id"`
	ActivityType *models.ActivityType `json:"activity_type"`
	StudentID    *string              `json:"student_id"`
	DateFrom     *time.Time           `json:"date_from"`
	DateTo       *time.Time           `json:"date_to"`
	Limit        int                  `json:"limit"`
	Offset       int                  `json:"offset"`
	SortBy       string               `json:"sort_by"`    // "created_at", "score"
	SortOrder    string               `json:"sort_order"` // "asc", "desc"
}

// ReviewRepository stores and retrieves computed submission reviews.
type ReviewRepository interface {
	Create(ctx context.Context, review *models.SubmissionReview) error
	GetByID(ctx context.Context, id string) (*models.SubmissionReview, error)
	List(ctx context.Context, filters ReviewFilters) ([]*models.SubmissionReview, int64, error)
	GetLatestForStudent(ctx context.Context, activityID, studentID string) (*models.SubmissionReview, error)
	Delete(ctx context.Context, id string) error
}

// Repository is the root access point handed to services.
type Repository interface {
	Review() ReviewRepository
	Ping(ctx context.Context) error
	Close() error
}
