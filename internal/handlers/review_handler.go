package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/alperyazir/dream-lms-sub000/internal/models"
	"github.com/alperyazir/dream-lms-sub000/internal/repositories"
	"github.com/alperyazir/dream-lms-sub000/internal/services"
	"github.com/alperyazir/dream-lms-sub000/internal/utils"
)

type ReviewHandler struct {
	BaseHandler
	reviewService services.ReviewService
	exportService services.ExportService
}

func NewReviewHandler(
	reviewService services.ReviewService,
	exportService services.ExportService,
	logger utils.Logger,
) *ReviewHandler {
	return &ReviewHandler{
		BaseHandler:   NewBaseHandler(logger),
		reviewService: reviewService,
		exportService: exportService,
	}
}

// CreateReview scores a submission and stores the detailed review.
func (h *ReviewHandler) CreateReview(c *gin.Context) {
	h.LogRequest(c, "Reviewing submission")

	var req services.ReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid request payload",
			Details: err.Error(),
		})
		return
	}

	resp, err := h.reviewService.Review(c.Request.Context(), &req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// GetReview returns one stored review by id.
func (h *ReviewHandler) GetReview(c *gin.Context) {
	id := c.Param("id")
	h.LogRequest(c, "Getting review", "review_id", id)

	record, err := h.reviewService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, record)
}

// GetLatestReview returns the newest review for one student on one activity.
func (h *ReviewHandler) GetLatestReview(c *gin.Context) {
	activityID := c.Query("activity_id")
	studentID := c.Query("student_id")
	h.LogRequest(c, "Getting latest review", "activity_id", activityID, "student_id", studentID)

	if activityID == "" || studentID == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "activity_id and student_id are required",
		})
		return
	}

	record, err := h.reviewService.GetLatestForStudent(c.Request.Context(), activityID, studentID)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, record)
}

// DeleteReview removes a stored review, evicting any cached copy.
func (h *ReviewHandler) DeleteReview(c *gin.Context) {
	id := c.Param("id")
	h.LogRequest(c, "Deleting review", "review_id", id)

	if err := h.reviewService.Delete(c.Request.Context(), id); err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// ListReviews lists stored reviews, filterable by activity and student.
func (h *ReviewHandler) ListReviews(c *gin.Context) {
	h.LogRequest(c, "Listing reviews")

	filters := repositories.ReviewFilters{
		Limit:     parseIntQuery(c, "limit", 20),
		Offset:    parseIntQuery(c, "offset", 0),
		SortBy:    c.Query("sort_by"),
		SortOrder: c.Query("sort_order"),
	}
	if activityID := c.Query("activity_id"); activityID != "" {
		filters.ActivityID = &activityID
	}
	if studentID := c.Query("student_id"); studentID != "" {
		filters.StudentID = &studentID
	}
	if activityType := c.Query("activity_type"); activityType != "" {
		t := models.ActivityType(activityType)
		filters.ActivityType = &t
	}

	reviews, total, err := h.reviewService.List(c.Request.Context(), filters)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, ListResponse{
		Data:   reviews,
		Total:  total,
		Limit:  filters.Limit,
		Offset: filters.Offset,
	})
}

// ExportReview streams a review as an xlsx scorecard.
func (h *ReviewHandler) ExportReview(c *gin.Context) {
	id := c.Param("id")
	h.LogRequest(c, "Exporting review", "review_id", id)

	data, err := h.exportService.ExportReviewToExcel(c.Request.Context(), id)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="review-`+id+`.xlsx"`)
	c.Data(http.StatusOK,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
}

// ListActivityTypes exposes the registry to calling UIs.
func (h *ReviewHandler) ListActivityTypes(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"activity_types": h.reviewService.ActivityTypes(),
	})
}

func parseIntQuery(c *gin.Context, name string, fallback int) int {
	raw := c.Query(name)
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 {
		return fallback
	}
	return v
}
