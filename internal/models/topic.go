package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TopicKind is the closed set of work item kinds the reporting engine knows about.
type TopicKind string

const (
	KindQuiz       TopicKind = "quiz"
	KindAssignment TopicKind = "assignment"
)

// Topic is one work item in a course: a quiz or an assignment. Kind decides
// which of QuizDetail/AssignmentDetail carries the item's schedule and content.
type Topic struct {
	ID       uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	CourseID string    `json:"course_id" gorm:"not null;size:64;index"`
	Title    string    `json:"title" gorm:"not null;size:200"`
	Kind     TopicKind `json:"kind" gorm:"not null;size:20;index"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`

	// Relations
	Quiz       *QuizDetail       `json:"quiz,omitempty" gorm:"foreignKey:TopicID"`
	Assignment *AssignmentDetail `json:"assignment,omitempty" gorm:"foreignKey:TopicID"`
}

// QuizDetail holds the quiz-specific schedule and question set.
// Open/Close are nullable; a nil Close means the quiz never closes.
type QuizDetail struct {
	TopicID       uuid.UUID  `json:"topic_id" gorm:"type:uuid;primaryKey"`
	Open          *time.Time `json:"open"`
	Close         *time.Time `json:"close"`
	TimeLimit     int        `json:"time_limit"` // minutes, 0 = unlimited
	GradeToPass   *float64   `json:"grade_to_pass"`
	GradingMethod string     `json:"grading_method" gorm:"size:50"`

	// Relations
	Questions []Question `json:"questions" gorm:"many2many:topic_quiz_questions;joinForeignKey:TopicQuizID"`
}

// AssignmentDetail holds the assignment-specific schedule.
type AssignmentDetail struct {
	TopicID uuid.UUID  `json:"topic_id" gorm:"type:uuid;primaryKey"`
	Open    *time.Time `json:"open"`
	Close   *time.Time `json:"close"`
}

func (Topic) TableName() string {
	return "topics"
}

func (QuizDetail) TableName() string {
	return "topic_quizzes"
}

func (AssignmentDetail) TableName() string {
	return "topic_assignments"
}
