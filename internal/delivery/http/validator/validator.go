// Package validator adapts go-playground struct validation to echo.
package validator

import (
	domainerrors "github.com/shipeast-beep/upkeep-guardian-home/internal/domain/errors"

	"github.com/go-playground/validator/v10"
)

// Validator implements echo.Validator over go-playground validation tags.
type Validator struct {
	validate *validator.Validate
}

// New creates a new request validator instance
func New() *Validator {
	return &Validator{validate: validator.New()}
}

// Validate checks the struct tags and maps failures to the validation error.
func (v *Validator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	return nil
}
