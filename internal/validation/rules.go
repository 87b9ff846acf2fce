// Package validation provides custom validation rules for the application.
package validation

import (
	"strings"

	validation "github.com/jellydator/validation"

	apperrors "github.com/allisson/inventory/internal/errors"
)

// MaxNameLength matches the VARCHAR size of the nombre columns.
const MaxNameLength = 255

// WrapValidationError wraps validation errors as domain ErrInvalidInput
func WrapValidationError(err error) error {
	if err == nil {
		return nil
	}
	return apperrors.Wrap(apperrors.ErrInvalidInput, err.Error())
}

// NotBlank validates that a string is not empty after trimming whitespace
var NotBlank = validation.NewStringRuleWithError(
	func(s string) bool {
		return strings.TrimSpace(s) != ""
	},
	validation.NewError("validation_not_blank", "el nombre es requerido"),
)

// Name is the rule set applied to every nombre field.
func Name() []validation.Rule {
	return []validation.Rule{
		validation.Required.Error("el nombre es requerido"),
		NotBlank,
		validation.RuneLength(1, MaxNameLength).Error("el nombre debe tener entre 1 y 255 caracteres"),
	}
}

// PositiveID rejects a present id lower than 1. Nil pointers pass; absence is the
// caller's decision.
var PositiveID = validation.By(func(value any) error {
	var id int64
	switch v := value.(type) {
	case *int64:
		if v == nil {
			return nil
		}
		id = *v
	case int64:
		id = v
	default:
		return nil
	}
	if id < 1 {
		return validation.NewError("validation_positive_id", "debe ser un entero positivo")
	}
	return nil
})
