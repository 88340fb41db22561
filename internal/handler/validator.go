package handler

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"unicode"

	"github.com/go-playground/validator/v10"
)

// MaxHandleLength bounds player handles accepted by the API
const MaxHandleLength = 64

// Validator checks request structs and path values against their tags
type Validator struct {
	validate *validator.Validate
}

var (
	validatorOnce sync.Once
	validate      *Validator
)

// GetValidator returns the shared validator, with the "handle" tag registered
func GetValidator() *Validator {
	validatorOnce.Do(func() {
		v := validator.New()
		_ = v.RegisterValidation("handle", validateHandle)
		validate = &Validator{validate: v}
	})
	return validate
}

func (v *Validator) ValidateStruct(s interface{}) error {
	return v.validate.Struct(s)
}

// ValidateHandle checks a single handle, such as one taken from the URL
func (v *Validator) ValidateHandle(handle string) error {
	return v.validate.Var(handle, "handle")
}

// FormatValidationError maps failed fields to messages keyed by lower-cased
// field name, so struct names never reach the client
func FormatValidationError(err error) map[string]string {
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return map[string]string{"error": "Invalid request format"}
	}

	errs := make(map[string]string, len(validationErrors))
	for _, e := range validationErrors {
		errs[strings.ToLower(e.Field())] = fieldMessage(e)
	}
	return errs
}

func fieldMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "This field is required"
	case "handle":
		return "Invalid player handle"
	case "max":
		return fmt.Sprintf("Must be at most %s", e.Param())
	case "min":
		return fmt.Sprintf("Must be at least %s", e.Param())
	default:
		return "Invalid value"
	}
}

// validateHandle accepts non-empty handles without whitespace or control characters
func validateHandle(fl validator.FieldLevel) bool {
	handle := fl.Field().String()
	if handle == "" || len(handle) > MaxHandleLength {
		return false
	}
	for _, r := range handle {
		if unicode.IsSpace(r) || unicode.IsControl(r) {
			return false
		}
	}
	return true
}
