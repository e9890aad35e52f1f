package cache

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/coursehub/report-service/internal/models"
	"github.com/coursehub/report-service/internal/repositories"
)

const responseTTL = 5 * time.Minute

// cachedResponseRepository is a read-through decorator over the response
// repository. Responses are the hot path of every report build; aggregate
// reports hit the same topics repeatedly within one request window.
type cachedResponseRepository struct {
	inner  repositories.ResponseRepository
	cache  CacheService
	logger *slog.Logger
}

func NewCachedResponseRepository(inner repositories.ResponseRepository, cache CacheService, logger *slog.Logger) repositories.ResponseRepository {
	return &cachedResponseRepository{
		inner:  inner,
		cache:  cache,
		logger: logger,
	}
}

func attemptsKey(topicID uuid.UUID) string {
	return fmt.Sprintf("responses:quiz:%s", topicID)
}

func submissionsKey(topicID uuid.UUID) string {
	return fmt.Sprintf("responses:assignment:%s", topicID)
}

func (r *cachedResponseRepository) ListAttemptsByTopic(ctx context.Context, topicID uuid.UUID) ([]*models.QuizAttempt, error) {
	key := attemptsKey(topicID)

	var cached []*models.QuizAttempt
	err := r.cache.Get(ctx, key, &cached)
	if err == nil {
		return cached, nil
	}
	if !errors.Is(err, ErrCacheMiss) {
		r.logger.Warn("Response cache read failed", "key", key, "error", err)
	}

	attempts, err := r.inner.ListAttemptsByTopic(ctx, topicID)
	if err != nil {
		return nil, err
	}
	if err := r.cache.Set(ctx, key, attempts, responseTTL); err != nil {
		r.logger.Warn("Response cache write failed", "key", key, "error", err)
	}
	return attempts, nil
}

func (r *cachedResponseRepository) ListSubmissionsByTopic(ctx context.Context, topicID uuid.UUID) ([]*models.Submission, error) {
	key := submissionsKey(topicID)

	var cached []*models.Submission
	err := r.cache.Get(ctx, key, &cached)
	if err == nil {
		return cached, nil
	}
	if !errors.Is(err, ErrCacheMiss) {
		r.logger.Warn("Response cache read failed", "key", key, "error", err)
	}

	submissions, err := r.inner.ListSubmissionsByTopic(ctx, topicID)
	if err != nil {
		return nil, err
	}
	if err := r.cache.Set(ctx, key, submissions, responseTTL); err != nil {
		r.logger.Warn("Response cache write failed", "key", key, "error", err)
	}
	return submissions, nil
}
