// Package validation builds the go-playground validator used by both the
// HTTP layer and the core services, with the shop's custom tags registered.
package validation

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// localImagePath matches paths produced by the upload service, e.g.
// /uploads/1700000000000-<uuid>.png
var localImagePath = regexp.MustCompile(`(?i)^/.*\.(jpg|jpeg|png|gif|webp)$`)

var urlValidator = validator.New()

// New returns a validator with the "finite" and "imageref" tags registered.
func New() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("finite", isFinite)
	_ = v.RegisterValidation("imageref", func(fl validator.FieldLevel) bool {
		return IsImageRef(fl.Field().String())
	})
	return v
}

func isFinite(fl validator.FieldLevel) bool {
	switch fl.Field().Kind() {
	case reflect.Float32, reflect.Float64:
		f := fl.Field().Float()
		return !math.IsNaN(f) && !math.IsInf(f, 0)
	default:
		return true
	}
}

// IsImageRef reports whether s is an absolute URL or a local image path.
func IsImageRef(s string) bool {
	if localImagePath.MatchString(s) {
		return true
	}
	return urlValidator.Var(s, "url") == nil
}

// FirstError returns the field name and message of the first failure in err.
// ok is false when err is not a validator.ValidationErrors.
func FirstError(err error) (field, msg string, ok bool) {
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) || len(ve) == 0 {
		return "", "", false
	}
	fe := ve[0]
	return strings.ToLower(fe.Field()), FieldMessage(fe), true
}

// FieldMessage converts a single FieldError into a human-readable message.
func FieldMessage(fe validator.FieldError) string {
	field := strings.ToLower(fe.Field())
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "email":
		return field + " must be a valid email"
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", field, fe.Param())
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at least %s characters long", field, fe.Param())
		}
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s cannot exceed %s characters", field, fe.Param())
		}
		return fmt.Sprintf("%s must be at most %s", field, fe.Param())
	case "finite":
		return field + " must be a valid number"
	case "imageref":
		return field + " must be a valid URL or image path"
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, fe.Param())
	default:
		return fmt.Sprintf("%s failed validation (%s)", field, fe.Tag())
	}
}
