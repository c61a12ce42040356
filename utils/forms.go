package utils

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldErrors flattens a gin binding error into per-field messages so a form
// can be re-rendered with its errors in place.
func FieldErrors(err error) map[string]string {
	fieldErrors := map[string]string{}

	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		for _, fieldError := range validationErrors {
			fieldErrors[strings.ToLower(fieldError.Field())] = fieldErrorMessage(fieldError)
		}
		return fieldErrors
	}

	fieldErrors["form"] = "Invalid form submission"
	return fieldErrors
}

func fieldErrorMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required."
	case "email":
		return "Enter a valid email address."
	case "max":
		return "Ensure this value has at most " + fe.Param() + " characters."
	default:
		return "Enter a valid value."
	}
}
