package services

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/alperyazir/dream-lms-sub000/internal/events"
	"github.com/alperyazir/dream-lms-sub000/internal/models"
	"github.com/alperyazir/dream-lms-sub000/internal/repositories"
	"github.com/alperyazir/dream-lms-sub000/internal/review"
	"github.com/alperyazir/dream-lms-sub000/internal/utils"
)

type mockReviewRepository struct {
	mock.Mock
}

func (m *mockReviewRepository) Create(ctx context.Context, r *models.SubmissionReview) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *mockReviewRepository) GetByID(ctx context.Context, id string) (*models.SubmissionReview, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.SubmissionReview), args.Error(1)
}

func (m *mockReviewRepository) List(ctx context.Context, filters repositories.ReviewFilters) ([]*models.SubmissionReview, int64, error) {
	args := m.Called(ctx, filters)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*models.SubmissionReview), args.Get(1).(int64), args.Error(2)
}

func (m *mockReviewRepository) GetLatestForStudent(ctx context.Context, activityID, studentID string) (*models.SubmissionReview, error) {
	args := m.Called(ctx, activityID, studentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.SubmissionReview), args.Error(1)
}

func (m *mockReviewRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type mockRepository struct {
	reviews *mockReviewRepository
}

func (m *mockRepository) Review() repositories.ReviewRepository { return m.reviews }
func (m *mockRepository) Ping(ctx context.Context) error        { return nil }
func (m *mockRepository) Close() error                          { return nil }

func newTestService(t *testing.T) (ReviewService, *mockReviewRepository, *events.MockEventPublisher) {
	t.Helper()
	reviews := &mockReviewRepository{}
	publisher := events.NewMockEventPublisher(slog.New(slog.NewTextHandler(io.Discard, nil)))
	svc := NewReviewService(
		&mockRepository{reviews: reviews},
		review.NewEngine(utils.NopLogger{}),
		nil,
		publisher,
		utils.NopLogger{},
		utils.NewValidator(),
	)
	return svc, reviews, publisher
}

func quizRequest() *ReviewRequest {
	return &ReviewRequest{
		ActivityID:   "activity-1",
		ActivityType: "quiz",
		StudentID:    "student-1",
		Score:        50,
		Config: map[string]any{
			"content": map[string]any{
				"questions": []any{
					map[string]any{
						"question_id":   "q1",
						"question":      "Pick the noun.",
						"options":       []any{"run", "cat"},
						"correct_index": float64(1),
					},
					map[string]any{
						"question_id":   "q2",
						"question":      "Pick the verb.",
						"options":       []any{"run", "cat"},
						"correct_index": float64(0),
					},
				},
			},
		},
		Answers: map[string]any{
			"0": map[string]any{
				"answers": map[string]any{"q1": float64(1), "q2": float64(1)},
				"score":   float64(50),
			},
		},
	}
}

func TestReviewService_Review(t *testing.T) {
	svc, reviews, publisher := newTestService(t)

	reviews.On("Create", mock.Anything, mock.AnythingOfType("*models.SubmissionReview")).Return(nil)

	resp, err := svc.Review(context.Background(), quizRequest())
	require.NoError(t, err)
	require.NotNil(t, resp)

	record := resp.Review
	require.NotNil(t, record)
	assert.NotEmpty(t, record.ID)
	assert.Equal(t, "activity-1", record.ActivityID)
	assert.Equal(t, models.ActivityQuiz, record.ActivityType)
	assert.Equal(t, "student-1", record.StudentID)
	assert.Equal(t, "activity_entry", record.UnwrapStrategy)

	quiz, ok := resp.Result.(*models.QuizReview)
	require.True(t, ok)
	assert.Equal(t, 1, quiz.Score)
	assert.Equal(t, 2, quiz.Total)

	// The stored result round-trips as the same review tree.
	var stored models.QuizReview
	require.NoError(t, json.Unmarshal(record.Result, &stored))
	assert.Equal(t, quiz.Score, stored.Score)

	published := publisher.PublishedEvents()
	require.Len(t, published, 1)
	assert.Equal(t, events.ReviewCompleted, published[0].Type)
	assert.Equal(t, record.ID, published[0].ReviewID)

	reviews.AssertExpectations(t)
}

func TestReviewService_Review_ValidationFailure(t *testing.T) {
	svc, reviews, _ := newTestService(t)

	req := quizRequest()
	req.ActivityID = ""

	_, err := svc.Review(context.Background(), req)
	require.Error(t, err)
	assert.True(t, IsValidation(err))

	req = quizRequest()
	req.ActivityType = "crossword"

	_, err = svc.Review(context.Background(), req)
	require.Error(t, err)
	assert.True(t, IsValidation(err))

	reviews.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestReviewService_Review_NotAvailable(t *testing.T) {
	svc, reviews, publisher := newTestService(t)

	req := quizRequest()
	req.Config = map[string]any{"content": map[string]any{}}

	_, err := svc.Review(context.Background(), req)
	require.ErrorIs(t, err, ErrReviewNotAvailable)

	published := publisher.PublishedEvents()
	require.Len(t, published, 1)
	assert.Equal(t, events.ReviewUnavailable, published[0].Type)
	assert.Equal(t, "activity-1", published[0].ActivityID)

	reviews.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestReviewService_GetByID(t *testing.T) {
	svc, reviews, _ := newTestService(t)

	record := &models.SubmissionReview{ID: "rev-1", ActivityID: "activity-1"}
	reviews.On("GetByID", mock.Anything, "rev-1").Return(record, nil)
	reviews.On("GetByID", mock.Anything, "missing").Return(nil, repositories.ErrNotFound)

	got, err := svc.GetByID(context.Background(), "rev-1")
	require.NoError(t, err)
	assert.Equal(t, record, got)

	_, err = svc.GetByID(context.Background(), "missing")
	require.ErrorIs(t, err, ErrReviewNotFound)
}

func TestReviewService_List(t *testing.T) {
	svc, reviews, _ := newTestService(t)

	want := []*models.SubmissionReview{{ID: "rev-1"}, {ID: "rev-2"}}
	filters := repositories.ReviewFilters{Limit: 10}
	reviews.On("List", mock.Anything, filters).Return(want, int64(2), nil)

	got, total, err := svc.List(context.Background(), filters)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Equal(t, want, got)
}

func TestReviewService_GetLatestForStudent(t *testing.T) {
	svc, reviews, _ := newTestService(t)

	record := &models.SubmissionReview{ID: "rev-2", ActivityID: "activity-1", StudentID: "student-1"}
	reviews.On("GetLatestForStudent", mock.Anything, "activity-1", "student-1").Return(record, nil)
	reviews.On("GetLatestForStudent", mock.Anything, "activity-1", "student-2").Return(nil, repositories.ErrNotFound)

	got, err := svc.GetLatestForStudent(context.Background(), "activity-1", "student-1")
	require.NoError(t, err)
	assert.Equal(t, record, got)

	_, err = svc.GetLatestForStudent(context.Background(), "activity-1", "student-2")
	require.ErrorIs(t, err, ErrReviewNotFound)
}

func TestReviewService_Delete(t *testing.T) {
	svc, reviews, _ := newTestService(t)

	reviews.On("Delete", mock.Anything, "rev-1").Return(nil)
	reviews.On("Delete", mock.Anything, "missing").Return(repositories.ErrNotFound)

	require.NoError(t, svc.Delete(context.Background(), "rev-1"))
	require.ErrorIs(t, svc.Delete(context.Background(), "missing"), ErrReviewNotFound)

	reviews.AssertExpectations(t)
}

func TestReviewService_ActivityTypes(t *testing.T) {
	svc, _, _ := newTestService(t)
	assert.Equal(t, models.ActivityTypes(), svc.ActivityTypes())
}
