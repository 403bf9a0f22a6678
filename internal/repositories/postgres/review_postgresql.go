package postgres

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/alperyazir/dream-lms-sub000/internal/models"
	"github.com/alperyazir/dream-lms-sub000/internal/repositories"
)

// sortColumns whitelists the columns a listing may be ordered by. SortBy
// arrives from an HTTP query parameter and must never reach the ORDER BY
// clause verbatim.
var sortColumns = map[string]bool{
	"created_at": true,
	"score":      true,
}

func orderClause(sortBy, sortOrder string) string {
	if !sortColumns[sortBy] {
		sortBy = "created_at"
	}
	if sortOrder != "asc" {
		sortOrder = "desc"
	}
	return sortBy + " " + sortOrder
}

type reviewRepository struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) repositories.ReviewRepository {
	return &reviewRepository{db: db}
}

func (r *reviewRepository) Create(ctx context.Context, review *models.SubmissionReview) error {
	if err := r.db.WithContext(ctx).Create(review).Error; err != nil {
		return fmt.Errorf("failed to create submission review: %w", err)
	}
	return nil
}

func (r *reviewRepository) GetByID(ctx context.Context, id string) (*models.SubmissionReview, error) {
	var review models.SubmissionReview
	err := r.db.WithContext(ctx).First(&review, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repositories.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get submission review: %w", err)
	}
	return &review, nil
}

func (r *reviewRepository) List(ctx context.Context, filters repositories.ReviewFilters) ([]*models.SubmissionReview, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.SubmissionReview{})

	if filters.ActivityID != nil {
		query = query.Where("activity_id = ?", *filters.ActivityID)
	}
	if filters.ActivityType != nil {
		query = query.Where("activity_type = ?", *filters.ActivityType)
	}
	if filters.StudentID != nil {
		query = query.Where("student_id = ?", *filters.StudentID)
	}
	if filters.DateFrom != nil {
		query = query.Where("created_at >= ?", *filters.DateFrom)
	}
	if filters.DateTo != nil {
		query = query.Where("created_at <= ?", *filters.DateTo)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count submission reviews: %w", err)
	}

	query = query.Order(orderClause(filters.SortBy, filters.SortOrder))

	if filters.Limit > 0 {
		query = query.Limit(filters.Limit)
	}
	if filters.Offset > 0 {
		query = query.Offset(filters.Offset)
	}

	var reviews []*models.SubmissionReview
	if err := query.Find(&reviews).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list submission reviews: %w", err)
	}
	return reviews, total, nil
}

func (r *reviewRepository) GetLatestForStudent(ctx context.Context, activityID, studentID string) (*models.SubmissionReview, error) {
	var review models.SubmissionReview
	err := r.db.WithContext(ctx).
		Where("activity_id = ? AND student_id = ?", activityID, studentID).
		Order("created_at DESC").
		First(&review).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repositories.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get latest submission review: %w", err)
	}
	return &review, nil
}

func (r *reviewRepository) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Delete(&models.SubmissionReview{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete submission review: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return repositories.ErrNotFound
	}
	return nil
}

// repository bundles the per-entity repositories behind the root interface.
type repository struct {
	db     *gorm.DB
	review repositories.ReviewRepository
}

func NewRepository(db *gorm.DB) repositories.Repository {
	return &repository{
		db:     db,
		review: NewReviewRepository(db),
	}
}

func (r *repository) Review() repositories.ReviewRepository {
	return r.review
}

func (r *repository) Ping(ctx context.Context) error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func (r *repository) Close() error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
