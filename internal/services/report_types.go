package services

import (
	"time"

	"github.com/google/uuid"

	"github.com/coursehub/report-service/internal/models"
)

// StudentScore is one eligible student's outcome on one work item.
// Mark is on the 0-10 scale; nil means the student has no usable mark
// (never responded, or submitted but is not graded yet).
type StudentScore struct {
	Student    models.User `json:"student"`
	Mark       *float64    `json:"mark"`
	ResponseID *uuid.UUID  `json:"response_id,omitempty"`
	Submitted  bool        `json:"submitted"`
}

// QuizReport is the full analytics report for one quiz.
type QuizReport struct {
	TopicID uuid.UUID `json:"topic_id"`
	Name    string    `json:"name"`

	Open  *time.Time `json:"open"`
	Close *time.Time `json:"close"`

	Students      []models.User  `json:"students"` // everyone eligible
	StudentScores []StudentScore `json:"student_scores"`

	ScoresOver8  []StudentScore   `json:"students_with_mark_over_8"`
	ScoresOver5  []StudentScore   `json:"students_with_mark_over_5"`
	ScoresOver2  []StudentScore   `json:"students_with_mark_over_2"`
	ScoresOver0  []StudentScore   `json:"students_with_mark_over_0"`
	NoResponse   []StudentScore   `json:"students_with_no_response"`
	Distribution MarkDistribution `json:"mark_distribution_count"`

	QuestionCount  int     `json:"question_count"`
	MaxDefaultMark float64 `json:"max_default_mark"`

	AvgMark float64 `json:"avg_student_mark_base_10"`
	MaxMark float64 `json:"max_student_mark_base_10"`
	MinMark float64 `json:"min_student_mark_base_10"`

	AttemptCount        int     `json:"attempt_count"`
	AvgTimeSpentSeconds float64 `json:"avg_time_spent_seconds"`
	CompletionRate      float64 `json:"completion_rate"`

	TrueFalseCount      int `json:"true_false_question_count"`
	MultipleChoiceCount int `json:"multiple_choice_question_count"`
	ShortAnswerCount    int `json:"short_answer_question_count"`
}

// AssignmentReport is the full analytics report for one assignment.
// Avg/Max/MinMark are on the assignment's native 0-100 scale; the Base10
// fields carry the normalized equivalents used for bucketing.
type AssignmentReport struct {
	TopicID uuid.UUID `json:"topic_id"`
	Name    string    `json:"name"`

	Open  *time.Time `json:"open"`
	Close *time.Time `json:"close"`

	Students      []models.User  `json:"students"`
	StudentScores []StudentScore `json:"student_scores"`

	ScoresOver8  []StudentScore   `json:"students_with_mark_over_8"`
	ScoresOver5  []StudentScore   `json:"students_with_mark_over_5"`
	ScoresOver2  []StudentScore   `json:"students_with_mark_over_2"`
	ScoresOver0  []StudentScore   `json:"students_with_mark_over_0"`
	NoResponse   []StudentScore   `json:"students_with_no_response"`
	Distribution MarkDistribution `json:"mark_distribution_count"`

	SubmissionCount       int `json:"submission_count"`
	GradedSubmissionCount int `json:"graded_submission_count"`
	FileCount             int `json:"file_count"`

	FileTypeCount map[string]int `json:"file_type_count"`

	AvgMark float64 `json:"avg_mark"`
	MaxMark float64 `json:"max_mark"`
	MinMark float64 `json:"min_mark"`

	AvgMarkBase10 float64 `json:"avg_mark_base_10"`
	MaxMarkBase10 float64 `json:"max_mark_base_10"`
	MinMarkBase10 float64 `json:"min_mark_base_10"`

	CompletionRate float64 `json:"completion_rate"`
}

// QuizAggregateReport merges quiz reports across a course window or across a
// user's enrolled courses.
type QuizAggregateReport struct {
	QuizCount         int     `json:"quiz_count"`
	AvgCompletionRate float64 `json:"avg_completion_rate"`

	MinQuestionCount int `json:"min_question_count"`
	MaxQuestionCount int `json:"max_question_count"`

	MinMark float64 `json:"min_student_score_base_10"`
	MaxMark float64 `json:"max_student_score_base_10"`

	StudentAverages []StudentScore `json:"student_info_with_mark_average"`

	ScoresOver8 []StudentScore `json:"students_with_mark_over_8"`
	ScoresOver5 []StudentScore `json:"students_with_mark_over_5"`
	ScoresOver2 []StudentScore `json:"students_with_mark_over_2"`
	ScoresOver0 []StudentScore `json:"students_with_mark_over_0"`
	NoResponse  []StudentScore `json:"students_with_no_response"`

	Distribution MarkDistribution `json:"mark_distribution_count"`

	TrueFalseCount      int `json:"true_false_question_count"`
	MultipleChoiceCount int `json:"multiple_choice_question_count"`
	ShortAnswerCount    int `json:"short_answer_question_count"`

	Reports []*QuizReport `json:"single_quiz_reports"`
}

// AssignmentAggregateReport merges assignment reports across a course window
// or across a user's enrolled courses.
type AssignmentAggregateReport struct {
	AssignmentCount      int `json:"assignment_count"`
	InProgressCount      int `json:"assignments_count_in_progress"`
	EndingThisMonthCount int `json:"assignments_ending_this_month"`

	NextCloseAt *time.Time `json:"closest_next_end_assignment"`

	AvgMark           float64 `json:"avg_mark"`
	AvgCompletionRate float64 `json:"avg_completion_rate"`

	StudentAverages []StudentScore `json:"student_info_with_mark_average"`

	ScoresOver8 []StudentScore `json:"students_with_mark_over_8"`
	ScoresOver5 []StudentScore `json:"students_with_mark_over_5"`
	ScoresOver2 []StudentScore `json:"students_with_mark_over_2"`
	ScoresOver0 []StudentScore `json:"students_with_mark_over_0"`
	NoResponse  []StudentScore `json:"students_with_no_response"`

	Distribution MarkDistribution `json:"mark_distribution_count"`

	FileTypeCount map[string]int `json:"file_type_count"`

	Reports []*AssignmentReport `json:"single_assignment_reports"`
}
