package repositories

import (
	"context"

	"github.com/google/uuid"

	"github.com/coursehub/report-service/internal/models"
)

// TopicRepository reads work items and their kind-specific details.
type TopicRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.Topic, error)

	// GetQuizDetail returns the quiz schedule and question set for a topic.
	GetQuizDetail(ctx context.Context, topicID uuid.UUID) (*models.QuizDetail, error)

	// GetAssignmentDetail returns the assignment schedule for a topic.
	GetAssignmentDetail(ctx context.Context, topicID uuid.UUID) (*models.AssignmentDetail, error)

	// ListByCourseAndKind returns all topics of one kind in a course.
	ListByCourseAndKind(ctx context.Context, courseID string, kind models.TopicKind) ([]*models.Topic, error)
}

// ResponseRepository reads raw student interactions with work items.
type ResponseRepository interface {
	// ListAttemptsByTopic returns every quiz attempt for the topic with
	// answers and student preloaded.
	ListAttemptsByTopic(ctx context.Context, topicID uuid.UUID) ([]*models.QuizAttempt, error)

	// ListSubmissionsByTopic returns every assignment submission for the
	// topic with the student preloaded.
	ListSubmissionsByTopic(ctx context.Context, topicID uuid.UUID) ([]*models.Submission, error)
}
