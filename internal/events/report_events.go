package events

import (
	"time"

	"github.com/google/uuid"
)

// ReportKind identifies which aggregate report was produced.
type ReportKind string

const (
	ReportKindCourseQuizzes     ReportKind = "report.course_quizzes"
	ReportKindCourseAssignments ReportKind = "report.course_assignments"
	ReportKindUserQuizzes       ReportKind = "report.user_quizzes"
	ReportKindUserAssignments   ReportKind = "report.user_assignments"
)

// ReportGeneratedEvent is emitted after an aggregate report build succeeds.
// SubjectID is the course ID for course reports and the student ID for user
// reports.
type ReportGeneratedEvent struct {
	ID          string     `json:"id"`
	Kind        ReportKind `json:"kind"`
	SubjectID   string     `json:"subject_id"`
	ItemCount   int        `json:"item_count"`
	GeneratedAt time.Time  `json:"generated_at"`
	Source      string     `json:"source"`
	Version     string     `json:"version"`
}

func NewReportGeneratedEvent(kind ReportKind, subjectID string, itemCount int) *ReportGeneratedEvent {
	return &ReportGeneratedEvent{
		ID:          uuid.NewString(),
		Kind:        kind,
		SubjectID:   subjectID,
		ItemCount:   itemCount,
		GeneratedAt: time.Now(),
		Source:      "report-service",
		Version:     "1.0",
	}
}
