package main

import (
	"os"

	"github.com/gin-gonic/gin"

	"github.com/alperyazir/dream-lms-sub000/internal/cache"
	"github.com/alperyazir/dream-lms-sub000/internal/config"
	"github.com/alperyazir/dream-lms-sub000/internal/events"
	"github.com/alperyazir/dream-lms-sub000/internal/handlers"
	"github.com/alperyazir/dream-lms-sub000/internal/models"
	"github.com/alperyazir/dream-lms-sub000/internal/repositories/postgres"
	"github.com/alperyazir/dream-lms-sub000/internal/review"
	"github.com/alperyazir/dream-lms-sub000/internal/services"
	"github.com/alperyazir/dream-lms-sub000/internal/utils"
	"github.com/alperyazir/dream-lms-sub000/pkg"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		os.Exit(1)
	}

	var logger utils.Logger
	if cfg.Environment == "production" {
		logger = utils.NewDefaultLogger()
		gin.SetMode(gin.ReleaseMode)
	} else {
		logger = utils.NewDevelopmentLogger()
	}

	db, err := pkg.InitDatabase(cfg)
	if err != nil {
		logger.LogError(err, "failed to connect to database")
		os.Exit(1)
	}
	if err := db.AutoMigrate(&models.SubmissionReview{}); err != nil {
		logger.LogError(err, "failed to migrate database")
		os.Exit(1)
	}
	repo := postgres.NewRepository(db)
	defer repo.Close()

	// Redis is optional: without it reviews are served from the database.
	var reviewCache cache.ReviewCache
	if redisClient, err := pkg.NewRedisClient(cfg); err != nil {
		logger.Warn("redis unavailable, review cache disabled", "error", err)
	} else {
		reviewCache = cache.NewRedisReviewCache(redisClient, logger)
		defer redisClient.Close()
	}

	publisher, err := newEventPublisher(cfg, logger)
	if err != nil {
		logger.LogError(err, "failed to create event publisher")
		os.Exit(1)
	}
	defer publisher.Close()

	validator := utils.NewValidator()
	engine := review.NewEngine(logger)
	reviewService := services.NewReviewService(repo, engine, reviewCache, publisher, logger, validator)
	exportService := services.NewExportService(reviewService, logger)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.LoggerMiddleware(logger))

	handlerManager := handlers.NewHandlerManager(reviewService, exportService, logger)
	handlerManager.SetupRoutes(router)

	logger.Info("review service listening", "port", cfg.Port, "environment", cfg.Environment)
	if err := router.Run(":" + cfg.Port); err != nil {
		logger.LogError(err, "server stopped")
		os.Exit(1)
	}
}

func newEventPublisher(cfg *config.Config, logger utils.Logger) (events.EventPublisher, error) {
	slogger := utils.ToSlogLogger(logger)
	if !cfg.EventsEnabled {
		logger.Info("event publishing disabled, using mock publisher")
		return events.NewMockEventPublisher(slogger), nil
	}
	return events.NewKafkaEventPublisher(events.PublisherConfig{
		KafkaBrokers: cfg.KafkaBrokers,
		TopicName:    cfg.ReviewTopic,
		Logger:       slogger,
	})
}
