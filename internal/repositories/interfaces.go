package repositories

import (
	"errors"

	"gorm.io/gorm"
)

// Repository bundles the read-side repositories the reporting engine consumes.
// The engine never writes; every method here is a query.
type Repository interface {
	Course() CourseRepository
	Enrollment() EnrollmentRepository
	Topic() TopicRepository
	Response() ResponseRepository
}

// IsNotFoundError reports whether err is the storage layer's "no rows" error.
func IsNotFoundError(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}

type responseOverride struct {
	Repository
	response ResponseRepository
}

func (r *responseOverride) Response() ResponseRepository {
	return r.response
}

// WithResponse returns base with its response repository replaced, used to
// layer a cache over the response read path.
func WithResponse(base Repository, response ResponseRepository) Repository {
	return &responseOverride{Repository: base, response: response}
}
