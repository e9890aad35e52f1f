package postgres

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/coursehub/report-service/internal/models"
	"github.com/coursehub/report-service/internal/repositories"
)

type CoursePostgreSQL struct {
	db *gorm.DB
}

func NewCoursePostgreSQL(db *gorm.DB) repositories.CourseRepository {
	return &CoursePostgreSQL{db: db}
}

func (c CoursePostgreSQL) GetByID(ctx context.Context, id string) (*models.Course, error) {
	var course models.Course
	if err := c.db.WithContext(ctx).First(&course, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &course, nil
}

func (c CoursePostgreSQL) Exists(ctx context.Context, id string) (bool, error) {
	var count int64
	if err := c.db.WithContext(ctx).
		Model(&models.Course{}).
		Where("id = ?", id).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

type EnrollmentPostgreSQL struct {
	db *gorm.DB
}

func NewEnrollmentPostgreSQL(db *gorm.DB) repositories.EnrollmentRepository {
	return &EnrollmentPostgreSQL{db: db}
}

func (e EnrollmentPostgreSQL) GetByCourseBefore(ctx context.Context, courseID string, deadline time.Time) ([]*models.Enrollment, error) {
	var enrollments []*models.Enrollment
	if err := e.db.WithContext(ctx).
		Where("course_id = ? AND join_date <= ?", courseID, deadline).
		Preload("Student").
		Find(&enrollments).Error; err != nil {
		return nil, err
	}
	return enrollments, nil
}

func (e EnrollmentPostgreSQL) ListCourseIDsByStudent(ctx context.Context, studentID uuid.UUID) ([]string, error) {
	var courseIDs []string
	if err := e.db.WithContext(ctx).
		Model(&models.Enrollment{}).
		Where("student_id = ?", studentID).
		Pluck("course_id", &courseIDs).Error; err != nil {
		return nil, err
	}
	return courseIDs, nil
}
