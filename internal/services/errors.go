package services

import (
	"errors"
)

// ===== COMMON SERVICE ERRORS =====

var (
	// Generic errors
	ErrNotFound      = errors.New("resource not found")
	ErrBadRequest    = errors.New("bad request")
	ErrInternalError = errors.New("internal server error")

	// Lookup errors
	ErrCourseNotFound     = errors.New("course not found")
	ErrTopicNotFound      = errors.New("topic not found")
	ErrQuizNotFound       = errors.New("quiz data not found")
	ErrAssignmentNotFound = errors.New("assignment data not found")
	ErrStudentNotFound    = errors.New("student not found")

	// Request errors
	ErrTopicNotQuiz        = errors.New("topic is not a quiz")
	ErrTopicNotAssignment  = errors.New("topic is not an assignment")
	ErrTopicCourseMismatch = errors.New("topic does not belong to the specified course")
	ErrInvalidDateRange    = errors.New("start of date range is after its end")
)

// IsNotFound checks if error represents a "not found" condition
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrCourseNotFound) ||
		errors.Is(err, ErrTopicNotFound) ||
		errors.Is(err, ErrQuizNotFound) ||
		errors.Is(err, ErrAssignmentNotFound) ||
		errors.Is(err, ErrStudentNotFound)
}

// IsBadRequest checks if error represents an invalid request
func IsBadRequest(err error) bool {
	return errors.Is(err, ErrBadRequest) ||
		errors.Is(err, ErrTopicNotQuiz) ||
		errors.Is(err, ErrTopicNotAssignment) ||
		errors.Is(err, ErrTopicCourseMismatch) ||
		errors.Is(err, ErrInvalidDateRange)
}
