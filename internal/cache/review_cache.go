package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/alperyazir/dream-lms-sub000/internal/models"
	"github.com/alperyazir/dream-lms-sub000/internal/utils"
)

// ErrCacheMiss is returned when no cached review exists for the key.
var ErrCacheMiss = errors.New("review not in cache")

// ReviewCache keeps recently computed reviews close to the API so repeated
// opens of the same review screen skip the database.
type ReviewCache interface {
	Set(ctx context.Context, review *models.SubmissionReview, ttl time.Duration) error
	Get(ctx context.Context, reviewID string) (*models.SubmissionReview, error)
	Delete(ctx context.Context, reviewID string) error
}

type redisReviewCache struct {
	client *redis.Client
	logger utils.Logger
}

func NewRedisReviewCache(client *redis.Client, logger utils.Logger) ReviewCache {
	return &redisReviewCache{
		client: client,
		logger: logger,
	}
}

func reviewKey(reviewID string) string {
	return fmt.Sprintf("review:%s", reviewID)
}

func (c *redisReviewCache) Set(ctx context.Context, review *models.SubmissionReview, ttl time.Duration) error {
	payload, err := json.Marshal(review)
	if err != nil {
		return fmt.Errorf("failed to marshal review for cache: %w", err)
	}
	if err := c.client.Set(ctx, reviewKey(review.ID), payload, ttl).Err(); err != nil {
		return fmt.Errorf("failed to cache review: %w", err)
	}
	return nil
}

func (c *redisReviewCache) Get(ctx context.Context, reviewID string) (*models.SubmissionReview, error) {
	payload, err := c.client.Get(ctx, reviewKey(reviewID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrCacheMiss
		}
		return nil, fmt.Errorf("failed to read review from cache: %w", err)
	}

	var review models.SubmissionReview
	if err := json.Unmarshal(payload, &review); err != nil {
		// A corrupt entry is treated as a miss; the database copy wins.
		c.logger.Warn("dropping corrupt cached review", "review_id", reviewID, "error", err)
		_ = c.client.Del(ctx, reviewKey(reviewID)).Err()
		return nil, ErrCacheMiss
	}
	return &review, nil
}

func (c *redisReviewCache) Delete(ctx context.Context, reviewID string) error {
	return c.client.Del(ctx, reviewKey(reviewID)).Err()
}
