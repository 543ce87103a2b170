package exceptions

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/kralluz/imec-formularios-app/internal/pkg/constvars"
)

// FormatValidationErrors maps validator failures to field -> message. The
// field name is the JSON name registered on the validator.
func FormatValidationErrors(err error) map[string]string {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return nil
	}

	details := make(map[string]string, len(validationErrors))
	for _, fieldErr := range validationErrors {
		field := fieldPath(fieldErr)
		if _, exists := details[field]; exists {
			continue
		}
		details[field] = formatMessage(fieldErr)
	}
	return details
}

func FormatFirstValidationError(err error) string {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) || len(validationErrors) == 0 {
		return constvars.ErrClientCannotProcessRequest
	}
	firstErr := validationErrors[0]
	return fieldPath(firstErr) + " " + formatMessage(firstErr)
}

func fieldPath(fieldErr validator.FieldError) string {
	namespace := fieldErr.Namespace()
	if idx := strings.Index(namespace, "."); idx >= 0 {
		return namespace[idx+1:]
	}
	return fieldErr.Field()
}

func formatMessage(fieldErr validator.FieldError) string {
	tag := fieldErr.Tag()
	customMessage, ok := constvars.CustomValidationErrorMessages[tag]
	if !ok {
		return "is invalid"
	}
	if constvars.TagsWithParams[tag] {
		if tag == "oneof" {
			return strings.Replace(customMessage, "%s", strings.Join(strings.Fields(fieldErr.Param()), ", "), 1)
		}
		return strings.Replace(customMessage, "%s", fieldErr.Param(), 1)
	}
	return customMessage
}
