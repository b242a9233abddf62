package service

import (
	"github.com/go-playground/validator/v10"

	"github.com/shopfront/admin-api/internal/core/domain"
	"github.com/shopfront/admin-api/internal/pkg/validation"
)

var validate = validation.New()

// checkInput runs struct validation and converts the first failure into a
// domain.ValidationError.
func checkInput(v *validator.Validate, input any) error {
	err := v.Struct(input)
	if err == nil {
		return nil
	}
	if field, msg, ok := validation.FirstError(err); ok {
		return domain.NewValidationError(field, msg)
	}
	return err
}
