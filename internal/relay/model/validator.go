package model

import (
	"errors"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validate *validator.Validate
	once     sync.Once
)

func GetValidator() *validator.Validate {
	once.Do(func() {
		validate = validator.New()
	})
	return validate
}

// FormatValidationError flattens validator errors into a single descriptive
// error so handlers can surface it directly in the response body.
func FormatValidationError(err error) error {
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		// Just take the first error for simplicity.
		e := validationErrors[0]
		if e.Tag() == "required" {
			return errors.New(e.Field() + " is required")
		}
		return errors.New("field validation for '" + e.Field() + "' failed on the '" + e.Tag() + "' tag")
	}

	return err
}
