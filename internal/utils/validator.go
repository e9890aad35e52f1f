package utils

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/coursehub/report-service/internal/models"
)

// Validator wraps the struct-tag validator used on report requests.
type Validator struct {
	validate *validator.Validate
}

func NewValidator() *Validator {
	validate := validator.New()

	validate.RegisterValidation("topic_kind", validateTopicKind)

	// Report errors by json field name
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &Validator{validate: validate}
}

func (v *Validator) Validate(s interface{}) error {
	return v.validate.Struct(s)
}

func validateTopicKind(fl validator.FieldLevel) bool {
	switch models.TopicKind(fl.Field().String()) {
	case models.KindQuiz, models.KindAssignment:
		return true
	}
	return false
}
