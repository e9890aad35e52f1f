package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type QuestionType string

const (
	TrueFalse      QuestionType = "true_false"
	MultipleChoice QuestionType = "multiple_choice"
	ShortAnswer    QuestionType = "short_answer"
)

// Question is an authored quiz question. DefaultMark is the maximum mark the
// question contributes to an attempt; question authors express it in 0-10 units.
type Question struct {
	ID          uuid.UUID    `json:"id" gorm:"type:uuid;primaryKey"`
	Name        string       `json:"name" gorm:"size:200"`
	Text        string       `json:"text" gorm:"type:text"`
	Type        QuestionType `json:"type" gorm:"not null;size:30;index"`
	DefaultMark float64      `json:"default_mark" gorm:"not null"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}

func (Question) TableName() string {
	return "questions"
}
