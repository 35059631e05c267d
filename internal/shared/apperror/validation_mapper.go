package apperror

import (
	"encoding/json"
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

func formatFieldName(s string) string {
	s = strings.ReplaceAll(s, "_", " ")
	caser := cases.Title(language.English)
	return caser.String(s)
}

func fieldMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "is required"
	case "max":
		return "must be at most " + e.Param() + " characters"
	case "oneof":
		return "must be one of: " + e.Param()
	case "email":
		return "must be a valid email address"
	case "uuid":
		return "must be a valid UUID"
	case "money":
		return "must have at most 10 digits before and 2 after the decimal point"
	default:
		return "is invalid"
	}
}

// MapValidationError converts binding errors into a 400 INVALID_INPUT error.
// The message names the first failing field, details list all of them.
func MapValidationError(err error) error {
	var errs validator.ValidationErrors
	if errors.As(err, &errs) && len(errs) > 0 {
		fields := make([]FieldError, 0, len(errs))
		for _, e := range errs {
			fields = append(fields, FieldError{Field: e.Field(), Message: fieldMessage(e)})
		}

		first := errs[0]
		humanReadableField := formatFieldName(first.Field())

		var base *AppError
		switch first.Tag() {
		case "required":
			base = RequiredField(humanReadableField)
		default:
			base = InvalidField(humanReadableField)
		}
		return &ValidationError{AppError: base, Fields: fields}
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		base := InvalidField(formatFieldName(typeErr.Field))
		return &ValidationError{
			AppError: base,
			Fields:   []FieldError{{Field: typeErr.Field, Message: "has the wrong type"}},
		}
	}

	return ErrInvalidInput
}
