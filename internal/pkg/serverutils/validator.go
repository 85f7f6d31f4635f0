package serverutils

import (
	"fmt"

	"antrian-truk-be/internal/pkg/apperror"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ValidateRequest runs the struct tags and converts failures into one
// VALIDATION error listing every offending field.
func ValidateRequest(req interface{}) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return apperror.Validation("Request tidak valid")
	}

	details := make([]string, 0, len(validationErrors))
	for _, fe := range validationErrors {
		switch fe.Tag() {
		case "required":
			details = append(details, fmt.Sprintf("%s wajib diisi", fe.Field()))
		case "oneof":
			details = append(details, fmt.Sprintf("%s harus salah satu dari: %s", fe.Field(), fe.Param()))
		default:
			details = append(details, fmt.Sprintf("%s tidak valid", fe.Field()))
		}
	}
	return apperror.Validation("Request tidak valid", details...)
}
