package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Course struct {
	ID          string  `json:"id" gorm:"primaryKey;size:64"`
	Name        string  `json:"name" gorm:"not null;size:200"`
	Description *string `json:"description" gorm:"type:text"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`

	// Relations
	Enrollments []Enrollment `json:"enrollments" gorm:"foreignKey:CourseID"`
	Topics      []Topic      `json:"topics" gorm:"foreignKey:CourseID"`
}

// Enrollment records a student joining a course. Unique per (student, course);
// the join date decides report eligibility against a work item's close date.
type Enrollment struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	CourseID  string    `json:"course_id" gorm:"not null;size:64;uniqueIndex:idx_enrollment_student_course"`
	StudentID uuid.UUID `json:"student_id" gorm:"type:uuid;not null;uniqueIndex:idx_enrollment_student_course"`
	JoinDate  time.Time `json:"join_date" gorm:"not null;index"`

	// Relations
	Student User   `json:"student" gorm:"foreignKey:StudentID"`
	Course  Course `json:"course" gorm:"foreignKey:CourseID"`
}

func (Course) TableName() string {
	return "courses"
}

func (Enrollment) TableName() string {
	return "enrollment_details"
}
