package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/alperyazir/dream-lms-sub000/internal/services"
	"github.com/alperyazir/dream-lms-sub000/internal/utils"
)

type HandlerManager struct {
	reviewHandler *ReviewHandler
}

func NewHandlerManager(
	reviewService services.ReviewService,
	exportService services.ExportService,
	logger utils.Logger,
) *HandlerManager {
	return &HandlerManager{
		reviewHandler: NewReviewHandler(reviewService, exportService, logger),
	}
}

// SetupRoutes sets up all API routes
func (hm *HandlerManager) SetupRoutes(router *gin.Engine) {
	router.GET("/health", HealthCheck)

	v1 := router.Group("/api/v1")
	{
		reviews := v1.Group("/reviews")
		{
			reviews.POST("", hm.reviewHandler.CreateReview)
			reviews.GET("", hm.reviewHandler.ListReviews)
			reviews.GET("/latest", hm.reviewHandler.GetLatestReview)
			reviews.GET("/:id", hm.reviewHandler.GetReview)
			reviews.GET("/:id/export", hm.reviewHandler.ExportReview)
			reviews.DELETE("/:id", hm.reviewHandler.DeleteReview)
		}

		v1.GET("/activity-types", hm.reviewHandler.ListActivityTypes)
	}
}
