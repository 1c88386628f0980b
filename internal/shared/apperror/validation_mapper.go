package apperror

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

func formatFieldName(s string) string {
	// emailAddress -> Email Address
	var b strings.Builder
	for i, r := range s {
		if i > 0 && r >= 'A' && r <= 'Z' {
			b.WriteByte(' ')
		}
		b.WriteRune(r)
	}
	caser := cases.Title(language.English)
	return caser.String(b.String())
}

// MapValidationError converts a gin binding failure into a field-scoped
// INVALID_INPUT error. Only the first failing rule per field is kept.
func MapValidationError(err error) error {
	errs, ok := err.(validator.ValidationErrors)
	if !ok {
		return ErrInvalidInput
	}

	details := make(map[string]string, len(errs))
	for _, e := range errs {
		field := e.Field()
		if _, seen := details[field]; seen {
			continue
		}
		details[field] = messageFor(formatFieldName(field), e)
	}

	return ErrInvalidInput.WithDetails(details)
}

func messageFor(field string, e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "max":
		return fmt.Sprintf("%s cannot exceed %s characters", field, e.Param())
	case "email":
		return "Invalid email address"
	case "phone":
		return "Invalid phone number"
	case "datetime":
		return fmt.Sprintf("%s must be a date in YYYY-MM-DD format", field)
	case "gte":
		return fmt.Sprintf("%s must be at least %s", field, e.Param())
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}
