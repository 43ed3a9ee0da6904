package errors

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

type ValidationErrorResponse struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func msgForTag(field, tag, param string) string {
	switch tag {
	case "required", "notblank":
		return fmt.Sprintf("%s is required", field)
	case "email":
		return fmt.Sprintf("%s must be a valid email address", field)
	case "max":
		return fmt.Sprintf("%s must not exceed %s characters", field, param)
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", field, param)
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}

// FormatValidationErrors converts validator failures into one entry per field.
// Field names come from the validator's tag name func, so callers should
// register the json tag with it.
func FormatValidationErrors(err error) []ValidationErrorResponse {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return nil
	}

	errorsList := make([]ValidationErrorResponse, 0, len(validationErrors))
	seen := make(map[string]bool, len(validationErrors))

	for _, fieldError := range validationErrors {
		field := fieldError.Field()
		if seen[field] {
			continue
		}
		seen[field] = true

		errorsList = append(errorsList, ValidationErrorResponse{
			Field:   field,
			Message: msgForTag(field, fieldError.Tag(), fieldError.Param()),
		})
	}

	return errorsList
}
