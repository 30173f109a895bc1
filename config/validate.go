package config

import (
	"github.com/go-playground/validator/v10"
)

// validate is the shared validator instance used across the package.
var validate *validator.Validate

func init() {
	validate = validator.New()
}

// Validate checks the given struct against its validation tags.
//
// Parameters:
//   - s: The struct to validate. Must be a pointer to a struct.
//
// Returns:
//   - error: nil if validation passes, otherwise returns validation errors
func Validate(s interface{}) error {
	return validate.Struct(s)
}

// RegisterCustomValidation registers a custom validation function for
// the given tag, for callers extending Config validation.
func RegisterCustomValidation(tag string, fn validator.Func) error {
	return validate.RegisterValidation(tag, fn)
}
