package utils

import (
	"log/slog"
	"strings"

	appErrors "github.com/DeepakKumarDu/giftdesk/internal/errors"
	"github.com/go-playground/validator/v10"
)

// ValidateStruct runs validator tags over data and converts failures into
// a field-level validation AppError the view layer can surface per field.
func ValidateStruct(validate *validator.Validate, data any) error {
	err := validate.Struct(data)
	if err == nil {
		return nil
	}

	validationErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		slog.Error("Unexpected validation error", slog.String("error", err.Error()))

		return appErrors.InternalError("unexpected validation error").WithError(err)
	}

	slog.Warn("User input validation failed", slog.String("error", validationErrs.Error()))

	messages := make([]string, 0, len(validationErrs))
	for _, fieldErr := range validationErrs {
		messages = append(messages, fieldMessage(fieldErr))
	}

	return appErrors.ValidationError(strings.Join(messages, "; ")).WithError(validationErrs)
}

func fieldMessage(fieldErr validator.FieldError) string {
	switch fieldErr.Tag() {
	case "required":
		return fieldErr.Field() + " is required"
	case "email":
		return fieldErr.Field() + " must be a valid email address"
	case "gt":
		return fieldErr.Field() + " must be greater than " + fieldErr.Param()
	default:
		return fieldErr.Field() + " is invalid"
	}
}
