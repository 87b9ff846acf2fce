// Package domain defines the Category entity and its validation rules.
package domain

import (
	"strings"

	validation "github.com/jellydator/validation"

	customValidation "github.com/allisson/inventory/internal/validation"
)

// Category groups products. Rows live in the categorias table.
type Category struct {
	ID   int64
	Name string
}

// NewCategory validates name and returns an unsaved Category holding the trimmed name.
func NewCategory(name string) (*Category, error) {
	if err := ValidateName(name); err != nil {
		return nil, err
	}
	return &Category{Name: strings.TrimSpace(name)}, nil
}

// ValidateName checks the nombre rules and reports failures as ErrInvalidInput.
func ValidateName(name string) error {
	err := validation.Errors{
		"nombre": validation.Validate(name, customValidation.Name()...),
	}.Filter()
	return customValidation.WrapValidationError(err)
}
