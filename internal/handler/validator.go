package handler

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/special-brownies/booster-pack/internal/cardmeta"
)

// Validator wraps the validator instance
type Validator struct {
	validate *validator.Validate
}

var validate *Validator

// InitValidator initializes the global validator
func InitValidator() {
	v := validator.New()

	// segment: a single safe path component of the dataset tree
	_ = v.RegisterValidation("segment", validateSegment)

	validate = &Validator{validate: v}
}

// GetValidator returns the global validator instance
func GetValidator() *Validator {
	if validate == nil {
		InitValidator()
	}
	return validate
}

// ValidateStruct validates a struct using tags
func (v *Validator) ValidateStruct(s any) error {
	return v.validate.Struct(s)
}

// FormatValidationError formats validation errors into a map keyed by the
// lower-cased field name.
func FormatValidationError(err error) map[string]string {
	if err == nil {
		return nil
	}

	errs := make(map[string]string)

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		errs["error"] = "Invalid request format"
		return errs
	}

	for _, e := range validationErrors {
		field := strings.ToLower(e.Field())
		switch e.Tag() {
		case "required":
			errs[field] = "This field is required"
		case "segment":
			errs[field] = "Must contain only letters, digits, '_' or '-'"
		case "max":
			errs[field] = "Must be at most " + e.Param() + " characters"
		default:
			errs[field] = "Invalid value"
		}
	}

	return errs
}

func validateSegment(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	// Empty is handled by 'required'
	if s == "" {
		return true
	}
	return cardmeta.ValidSegment(s)
}
