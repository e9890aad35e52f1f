package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// QuizAttempt is one student's pass through a quiz. A student may have several
// attempts; the quiz's grading method reduces them to one score.
type QuizAttempt struct {
	ID          uuid.UUID  `json:"id" gorm:"type:uuid;primaryKey"`
	TopicID     uuid.UUID  `json:"topic_id" gorm:"type:uuid;not null;index"`
	StudentID   uuid.UUID  `json:"student_id" gorm:"type:uuid;not null;index"`
	StartedAt   *time.Time `json:"started_at"`
	CompletedAt *time.Time `json:"completed_at"`

	// Relations
	Student User            `json:"student" gorm:"foreignKey:StudentID"`
	Answers []AttemptAnswer `json:"answers" gorm:"foreignKey:AttemptID"`
}

// AttemptAnswer is one answered question within an attempt, with the mark the
// grader (automatic or manual) awarded it.
type AttemptAnswer struct {
	ID         uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	AttemptID  uuid.UUID `json:"attempt_id" gorm:"type:uuid;not null;index"`
	QuestionID uuid.UUID `json:"question_id" gorm:"type:uuid;not null"`
	Answer     string    `json:"answer" gorm:"type:text"`
	Mark       *float64  `json:"mark"`
}

// SubmissionFile describes one uploaded file attached to a submission.
type SubmissionFile struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// Submission is a student's single assignment hand-in. Mark is on the
// assignment's native 0-100 scale and stays nil until graded.
type Submission struct {
	ID          uuid.UUID  `json:"id" gorm:"type:uuid;primaryKey"`
	TopicID     uuid.UUID  `json:"topic_id" gorm:"type:uuid;not null;index"`
	StudentID   uuid.UUID  `json:"student_id" gorm:"type:uuid;not null;index"`
	SubmittedAt time.Time  `json:"submitted_at" gorm:"not null"`
	Note        *string    `json:"note" gorm:"type:text"`
	Mark        *float64   `json:"mark"`
	GradedAt    *time.Time `json:"graded_at"`
	GraderID    *uuid.UUID `json:"grader_id" gorm:"type:uuid"`

	Files datatypes.JSONSlice[SubmissionFile] `json:"files" gorm:"type:jsonb"`

	// Relations
	Student User `json:"student" gorm:"foreignKey:StudentID"`
}

func (QuizAttempt) TableName() string {
	return "quiz_responses"
}

func (AttemptAnswer) TableName() string {
	return "quiz_response_answers"
}

func (Submission) TableName() string {
	return "assignment_responses"
}
