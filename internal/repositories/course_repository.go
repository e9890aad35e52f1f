package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/coursehub/report-service/internal/models"
)

// CourseRepository looks up courses for report validation.
type CourseRepository interface {
	GetByID(ctx context.Context, id string) (*models.Course, error)
	Exists(ctx context.Context, id string) (bool, error)
}

// EnrollmentRepository answers eligibility and cross-course queries.
type EnrollmentRepository interface {
	// GetByCourseBefore returns enrollments whose join date is on or before
	// the deadline, with the student preloaded.
	GetByCourseBefore(ctx context.Context, courseID string, deadline time.Time) ([]*models.Enrollment, error)

	// ListCourseIDsByStudent returns the IDs of every course the student is
	// enrolled in.
	ListCourseIDsByStudent(ctx context.Context, studentID uuid.UUID) ([]string, error)
}
