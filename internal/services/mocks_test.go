package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/coursehub/report-service/internal/models"
	"github.com/coursehub/report-service/internal/repositories"
)

// MockCourseRepository is a mock implementation of CourseRepository
type MockCourseRepository struct {
	mock.Mock
}

func (m *MockCourseRepository) GetByID(ctx context.Context, id string) (*models.Course, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Course), args.Error(1)
}

func (m *MockCourseRepository) Exists(ctx context.Context, id string) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

// MockEnrollmentRepository is a mock implementation of EnrollmentRepository
type MockEnrollmentRepository struct {
	mock.Mock
}

func (m *MockEnrollmentRepository) GetByCourseBefore(ctx context.Context, courseID string, deadline time.Time) ([]*models.Enrollment, error) {
	args := m.Called(ctx, courseID, deadline)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Enrollment), args.Error(1)
}

func (m *MockEnrollmentRepository) ListCourseIDsByStudent(ctx context.Context, studentID uuid.UUID) ([]string, error) {
	args := m.Called(ctx, studentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

// MockTopicRepository is a mock implementation of TopicRepository
type MockTopicRepository struct {
	mock.Mock
}

func (m *MockTopicRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Topic, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Topic), args.Error(1)
}

func (m *MockTopicRepository) GetQuizDetail(ctx context.Context, topicID uuid.UUID) (*models.QuizDetail, error) {
	args := m.Called(ctx, topicID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.QuizDetail), args.Error(1)
}

func (m *MockTopicRepository) GetAssignmentDetail(ctx context.Context, topicID uuid.UUID) (*models.AssignmentDetail, error) {
	args := m.Called(ctx, topicID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.AssignmentDetail), args.Error(1)
}

func (m *MockTopicRepository) ListByCourseAndKind(ctx context.Context, courseID string, kind models.TopicKind) ([]*models.Topic, error) {
	args := m.Called(ctx, courseID, kind)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Topic), args.Error(1)
}

// MockResponseRepository is a mock implementation of ResponseRepository
type MockResponseRepository struct {
	mock.Mock
}

func (m *MockResponseRepository) ListAttemptsByTopic(ctx context.Context, topicID uuid.UUID) ([]*models.QuizAttempt, error) {
	args := m.Called(ctx, topicID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.QuizAttempt), args.Error(1)
}

func (m *MockResponseRepository) ListSubmissionsByTopic(ctx context.Context, topicID uuid.UUID) ([]*models.Submission, error) {
	args := m.Called(ctx, topicID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Submission), args.Error(1)
}

// MockRepository bundles the mocks behind the aggregate interface
type MockRepository struct {
	course     *MockCourseRepository
	enrollment *MockEnrollmentRepository
	topic      *MockTopicRepository
	response   *MockResponseRepository
}

func NewMockRepository() *MockRepository {
	return &MockRepository{
		course:     &MockCourseRepository{},
		enrollment: &MockEnrollmentRepository{},
		topic:      &MockTopicRepository{},
		response:   &MockResponseRepository{},
	}
}

func (m *MockRepository) Course() repositories.CourseRepository         { return m.course }
func (m *MockRepository) Enrollment() repositories.EnrollmentRepository { return m.enrollment }
func (m *MockRepository) Topic() repositories.TopicRepository           { return m.topic }
func (m *MockRepository) Response() repositories.ResponseRepository     { return m.response }
