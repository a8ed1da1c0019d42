package validator

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// FieldError is one failed constraint, kept structured so callers can match
// on field and tag instead of parsing a message.
type FieldError struct {
	Field string
	Tag   string
	Param string
}

func (e FieldError) Error() string {
	if e.Param != "" {
		return fmt.Sprintf("%s failed on '%s=%s'", e.Field, e.Tag, e.Param)
	}
	return fmt.Sprintf("%s failed on '%s'", e.Field, e.Tag)
}

// Errors collects every failed constraint from one ValidateStruct call.
type Errors []FieldError

func (e Errors) Error() string {
	parts := make([]string, len(e))
	for i, fe := range e {
		parts[i] = fe.Error()
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

var validate = validator.New()

func init() {
	// uuid.Nil passes the stock "required" tag, so FK fields carry their own.
	validate.RegisterValidation("uuid_required", func(fl validator.FieldLevel) bool {
		if id, ok := fl.Field().Interface().(uuid.UUID); ok {
			return id != uuid.Nil
		}
		return false
	})
}

// ValidateStruct returns nil when data passes, or an Errors value listing
// every failed field.
func ValidateStruct(data interface{}) error {
	err := validate.Struct(data)
	if err == nil {
		return nil
	}
	var errs Errors
	for _, fe := range err.(validator.ValidationErrors) {
		errs = append(errs, FieldError{
			Field: fe.StructNamespace(),
			Tag:   fe.Tag(),
			Param: fe.Param(),
		})
	}
	return errs
}
