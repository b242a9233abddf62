package handler

import (
	"github.com/go-playground/validator/v10"

	"github.com/shopfront/admin-api/internal/core/domain"
	"github.com/shopfront/admin-api/internal/pkg/validation"
)

// echoValidator wraps go-playground/validator so Echo can call c.Validate(req).
type echoValidator struct {
	v *validator.Validate
}

// NewValidator returns an echoValidator ready to be assigned to echo.Echo.Validator.
func NewValidator() *echoValidator {
	return &echoValidator{v: validation.New()}
}

// Validate reports the first failing field as a domain.ValidationError.
func (ev *echoValidator) Validate(i any) error {
	err := ev.v.Struct(i)
	if err == nil {
		return nil
	}
	if field, msg, ok := validation.FirstError(err); ok {
		return domain.NewValidationError(field, msg)
	}
	return err
}
