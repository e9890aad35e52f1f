package postgres

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/coursehub/report-service/internal/models"
	"github.com/coursehub/report-service/internal/repositories"
)

type TopicPostgreSQL struct {
	db *gorm.DB
}

func NewTopicPostgreSQL(db *gorm.DB) repositories.TopicRepository {
	return &TopicPostgreSQL{db: db}
}

func (t TopicPostgreSQL) GetByID(ctx context.Context, id uuid.UUID) (*models.Topic, error) {
	var topic models.Topic
	if err := t.db.WithContext(ctx).First(&topic, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &topic, nil
}

func (t TopicPostgreSQL) GetQuizDetail(ctx context.Context, topicID uuid.UUID) (*models.QuizDetail, error) {
	var detail models.QuizDetail
	if err := t.db.WithContext(ctx).
		Preload("Questions").
		First(&detail, "topic_id = ?", topicID).Error; err != nil {
		return nil, err
	}
	return &detail, nil
}

func (t TopicPostgreSQL) GetAssignmentDetail(ctx context.Context, topicID uuid.UUID) (*models.AssignmentDetail, error) {
	var detail models.AssignmentDetail
	if err := t.db.WithContext(ctx).First(&detail, "topic_id = ?", topicID).Error; err != nil {
		return nil, err
	}
	return &detail, nil
}

func (t TopicPostgreSQL) ListByCourseAndKind(ctx context.Context, courseID string, kind models.TopicKind) ([]*models.Topic, error) {
	var topics []*models.Topic
	if err := t.db.WithContext(ctx).
		Where("course_id = ? AND kind = ?", courseID, kind).
		Order("title").
		Find(&topics).Error; err != nil {
		return nil, err
	}
	return topics, nil
}

type ResponsePostgreSQL struct {
	db *gorm.DB
}

func NewResponsePostgreSQL(db *gorm.DB) repositories.ResponseRepository {
	return &ResponsePostgreSQL{db: db}
}

func (r ResponsePostgreSQL) ListAttemptsByTopic(ctx context.Context, topicID uuid.UUID) ([]*models.QuizAttempt, error) {
	var attempts []*models.QuizAttempt
	if err := r.db.WithContext(ctx).
		Where("topic_id = ?", topicID).
		Preload("Student").
		Preload("Answers").
		Order("started_at").
		Find(&attempts).Error; err != nil {
		return nil, err
	}
	return attempts, nil
}

func (r ResponsePostgreSQL) ListSubmissionsByTopic(ctx context.Context, topicID uuid.UUID) ([]*models.Submission, error) {
	var submissions []*models.Submission
	if err := r.db.WithContext(ctx).
		Where("topic_id = ?", topicID).
		Preload("Student").
		Find(&submissions).Error; err != nil {
		return nil, err
	}
	return submissions, nil
}
