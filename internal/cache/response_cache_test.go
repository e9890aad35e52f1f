package cache

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/coursehub/report-service/internal/models"
)

// memoryCache is an in-memory CacheService for tests
type memoryCache struct {
	data map[string][]byte
}

func newMemoryCache() *memoryCache {
	return &memoryCache{data: make(map[string][]byte)}
}

func (m *memoryCache) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	m.data[key] = data
	return nil
}

func (m *memoryCache) Get(ctx context.Context, key string, dest interface{}) error {
	data, ok := m.data[key]
	if !ok {
		return ErrCacheMiss
	}
	return json.Unmarshal(data, dest)
}

func (m *memoryCache) Delete(ctx context.Context, key string) error {
	delete(m.data, key)
	return nil
}

func (m *memoryCache) DeletePattern(ctx context.Context, pattern string) error {
	return nil
}

// mockResponseRepository counts pass-through calls
type mockResponseRepository struct {
	mock.Mock
}

func (m *mockResponseRepository) ListAttemptsByTopic(ctx context.Context, topicID uuid.UUID) ([]*models.QuizAttempt, error) {
	args := m.Called(ctx, topicID)
	return args.Get(0).([]*models.QuizAttempt), args.Error(1)
}

func (m *mockResponseRepository) ListSubmissionsByTopic(ctx context.Context, topicID uuid.UUID) ([]*models.Submission, error) {
	args := m.Called(ctx, topicID)
	return args.Get(0).([]*models.Submission), args.Error(1)
}

func TestCachedResponseRepository_ReadThrough(t *testing.T) {
	ctx := context.Background()
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	topicID := uuid.New()

	attempts := []*models.QuizAttempt{
		{ID: uuid.New(), TopicID: topicID, StudentID: uuid.New()},
	}

	inner := &mockResponseRepository{}
	inner.On("ListAttemptsByTopic", ctx, topicID).Return(attempts, nil).Once()

	repo := NewCachedResponseRepository(inner, newMemoryCache(), logger)

	// First read hits the database and fills the cache.
	got, err := repo.ListAttemptsByTopic(ctx, topicID)
	assert.NoError(t, err)
	assert.Len(t, got, 1)

	// Second read must come from the cache; the inner mock allows one call.
	got, err = repo.ListAttemptsByTopic(ctx, topicID)
	assert.NoError(t, err)
	assert.Len(t, got, 1)
	assert.Equal(t, attempts[0].ID, got[0].ID)

	inner.AssertExpectations(t)
}

func TestCachedResponseRepository_SubmissionKeysAreSeparate(t *testing.T) {
	ctx := context.Background()
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	topicID := uuid.New()

	submissions := []*models.Submission{
		{ID: uuid.New(), TopicID: topicID, StudentID: uuid.New(), SubmittedAt: time.Now()},
	}

	inner := &mockResponseRepository{}
	inner.On("ListAttemptsByTopic", ctx, topicID).Return([]*models.QuizAttempt{}, nil).Once()
	inner.On("ListSubmissionsByTopic", ctx, topicID).Return(submissions, nil).Once()

	repo := NewCachedResponseRepository(inner, newMemoryCache(), logger)

	attempts, err := repo.ListAttemptsByTopic(ctx, topicID)
	assert.NoError(t, err)
	assert.Empty(t, attempts)

	got, err := repo.ListSubmissionsByTopic(ctx, topicID)
	assert.NoError(t, err)
	assert.Len(t, got, 1)

	inner.AssertExpectations(t)
}
