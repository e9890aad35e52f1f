package postgres

import (
	"gorm.io/gorm"

	"github.com/coursehub/report-service/internal/repositories"
)

type repository struct {
	course     repositories.CourseRepository
	enrollment repositories.EnrollmentRepository
	topic      repositories.TopicRepository
	response   repositories.ResponseRepository
}

// NewRepository wires every PostgreSQL repository over one gorm handle.
func NewRepository(db *gorm.DB) repositories.Repository {
	return &repository{
		course:     NewCoursePostgreSQL(db),
		enrollment: NewEnrollmentPostgreSQL(db),
		topic:      NewTopicPostgreSQL(db),
		response:   NewResponsePostgreSQL(db),
	}
}

func (r *repository) Course() repositories.CourseRepository {
	return r.course
}

func (r *repository) Enrollment() repositories.EnrollmentRepository {
	return r.enrollment
}

func (r *repository) Topic() repositories.TopicRepository {
	return r.topic
}

func (r *repository) Response() repositories.ResponseRepository {
	return r.response
}
