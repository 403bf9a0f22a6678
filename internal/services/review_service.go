package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/alperyazir/dream-lms-sub000/internal/cache"
	"github.com/alperyazir/dream-lms-sub000/internal/events"
	"github.com/alperyazir/dream-lms-sub000/internal/models"
	"github.com/alperyazir/dream-lms-sub000/internal/repositories"
	"github.com/alperyazir/dream-lms-sub000/internal/review"
	"github.com/alperyazir/dream-lms-sub000/internal/utils"
)

const reviewCacheTTL = time.Hour

// ReviewRequest carries one submission to be scored.
type ReviewRequest struct {
	ActivityID   string         `json:"activity_id" validate:"required"`
	ActivityType string         `json:"activity_type" validate:"required,activity_type"`
	StudentID    string         `json:"student_id" validate:"required"`
	Score        float64        `json:"score" validate:"min=0,max=100"`
	Config       map[string]any `json:"config" validate:"required"`
	Answers      map[string]any `json:"answers"`
}

// ReviewResponse pairs the stored record with the typed review tree.
type ReviewResponse struct {
	Review *models.SubmissionReview `json:"review"`
	Result any                      `json:"result"`
}

// reviewed is the common surface of every typed review the engine produces.
type reviewed interface {
	Summary() models.ReviewSummary
}

// ReviewService orchestrates scoring a submission: run the engine, persist
// the outcome, warm the cache, and announce completion.
type ReviewService interface {
	Review(ctx context.Context, req *ReviewRequest) (*ReviewResponse, error)
	GetByID(ctx context.Context, id string) (*models.SubmissionReview, error)
	GetLatestForStudent(ctx context.Context, activityID, studentID string) (*models.SubmissionReview, error)
	List(ctx context.Context, filters repositories.ReviewFilters) ([]*models.SubmissionReview, int64, error)
	Delete(ctx context.Context, id string) error
	ActivityTypes() []models.ActivityType
}

type reviewService struct {
	repo      repositories.Repository
	engine    *review.Engine
	cache     cache.ReviewCache
	publisher events.EventPublisher
	logger    utils.Logger
	validator *utils.Validator
}

// NewReviewService wires the review pipeline. cache may be nil when Redis is
// not configured; publisher may be a mock when events are disabled.
func NewReviewService(
	repo repositories.Repository,
	engine *review.Engine,
	reviewCache cache.ReviewCache,
	publisher events.EventPublisher,
	logger utils.Logger,
	validator *utils.Validator,
) ReviewService {
	return &reviewService{
		repo:      repo,
		engine:    engine,
		cache:     reviewCache,
		publisher: publisher,
		logger:    logger,
		validator: validator,
	}
}

func (s *reviewService) Review(ctx context.Context, req *ReviewRequest) (*ReviewResponse, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidationFailed, err)
	}

	if !review.SupportsDetailedReview(req.ActivityType) {
		return nil, ErrActivityTypeUnsupported
	}

	result := s.engine.Parse(req.ActivityType, req.Config, req.Answers, req.Score)
	if result == nil {
		s.logger.Warn("engine could not review submission",
			"activity_id", req.ActivityID,
			"activity_type", req.ActivityType)
		s.publish(ctx, events.NewReviewUnavailableEvent(
			req.ActivityID, models.ActivityType(req.ActivityType), req.StudentID))
		return nil, ErrReviewNotAvailable
	}

	record, err := s.buildRecord(req, result)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Review().Create(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to store review: %w", err)
	}

	// Cache and event publishing are best effort; the review itself is
	// already durable.
	if s.cache != nil {
		if err := s.cache.Set(ctx, record, reviewCacheTTL); err != nil {
			s.logger.Warn("failed to cache review", "review_id", record.ID, "error", err)
		}
	}
	s.publish(ctx, events.NewReviewCompletedEvent(record))

	s.logger.Info("submission reviewed",
		"review_id", record.ID,
		"activity_id", record.ActivityID,
		"activity_type", record.ActivityType,
		"unwrap_strategy", record.UnwrapStrategy)

	return &ReviewResponse{Review: record, Result: result}, nil
}

func (s *reviewService) buildRecord(req *ReviewRequest, result any) (*models.SubmissionReview, error) {
	configJSON, err := json.Marshal(req.Config)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config: %w", err)
	}
	answersJSON, err := json.Marshal(req.Answers)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal answers: %w", err)
	}
	resultJSON, err := json.Marshal(result)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal review result: %w", err)
	}

	record := &models.SubmissionReview{
		ID:           uuid.NewString(),
		ActivityID:   req.ActivityID,
		ActivityType: models.ActivityType(req.ActivityType),
		StudentID:    req.StudentID,
		Score:        req.Score,
		Config:       datatypes.JSON(configJSON),
		Answers:      datatypes.JSON(answersJSON),
		Result:       datatypes.JSON(resultJSON),
	}
	if r, ok := result.(reviewed); ok {
		record.UnwrapStrategy = r.Summary().Diagnostics.UnwrapStrategy
	}
	return record, nil
}

func (s *reviewService) publish(ctx context.Context, event *events.ReviewEvent) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.PublishReviewEvent(ctx, event); err != nil {
		s.logger.Warn("failed to publish review event",
			"event_type", event.Type,
			"activity_id", event.ActivityID,
			"error", err)
	}
}

func (s *reviewService) GetByID(ctx context.Context, id string) (*models.SubmissionReview, error) {
	if s.cache != nil {
		if cached, err := s.cache.Get(ctx, id); err == nil {
			return cached, nil
		}
	}

	record, err := s.repo.Review().GetByID(ctx, id)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, ErrReviewNotFound
		}
		return nil, fmt.Errorf("failed to get review: %w", err)
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, record, reviewCacheTTL); err != nil {
			s.logger.Warn("failed to cache review", "review_id", record.ID, "error", err)
		}
	}
	return record, nil
}

// GetLatestForStudent returns the newest review of one student's submissions
// to one activity; resubmissions produce a new review each time.
func (s *reviewService) GetLatestForStudent(ctx context.Context, activityID, studentID string) (*models.SubmissionReview, error) {
	record, err := s.repo.Review().GetLatestForStudent(ctx, activityID, studentID)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, ErrReviewNotFound
		}
		return nil, fmt.Errorf("failed to get latest review: %w", err)
	}
	return record, nil
}

func (s *reviewService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Review().Delete(ctx, id); err != nil {
		if repositories.IsNotFoundError(err) {
			return ErrReviewNotFound
		}
		return fmt.Errorf("failed to delete review: %w", err)
	}
	if s.cache != nil {
		if err := s.cache.Delete(ctx, id); err != nil {
			s.logger.Warn("failed to evict cached review", "review_id", id, "error", err)
		}
	}
	return nil
}

func (s *reviewService) List(ctx context.Context, filters repositories.ReviewFilters) ([]*models.SubmissionReview, int64, error) {
	reviews, total, err := s.repo.Review().List(ctx, filters)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list reviews: %w", err)
	}
	return reviews, total, nil
}

func (s *reviewService) ActivityTypes() []models.ActivityType {
	return review.SupportedActivityTypes
}
