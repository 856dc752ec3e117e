// Package validator adapts go-playground/validator to Echo's Validator interface.
package validator

import (
	"reflect"
	"strings"

	playground "github.com/go-playground/validator/v10"
	"github.com/pkg/errors"

	domainerrors "github.com/Danielluzius/coderr-backend/internal/domain/errors"
)

// echoValidator wraps a shared validator instance for Echo.
type echoValidator struct {
	validate *playground.Validate
}

// New builds the Echo validator. Field names in error messages come from the
// json tag so they match the wire format callers see.
func New() *echoValidator {
	validate := playground.New(playground.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}

		return name
	})

	return &echoValidator{validate: validate}
}

// Validate implements echo.Validator. Struct-tag violations are reported as
// per-field validation errors.
func (v *echoValidator) Validate(i any) error {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}

	var validationErrs playground.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return errors.WithStack(err)
	}

	fieldErrs := domainerrors.NewFieldErrors()
	for _, fieldErr := range validationErrs {
		fieldErrs.Add(fieldErr.Field(), messageFor(fieldErr))
	}

	return fieldErrs
}

// messageFor renders one tag violation as a caller-facing message.
func messageFor(fieldErr playground.FieldError) string {
	switch fieldErr.Tag() {
	case "required":
		return "This field is required."
	case "email":
		return "Enter a valid email address."
	case "max":
		return "Ensure this field has no more than " + fieldErr.Param() + " characters."
	case "min":
		return "Ensure this value is at least " + fieldErr.Param() + "."
	default:
		return "Invalid value."
	}
}
