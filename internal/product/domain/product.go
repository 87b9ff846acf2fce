// Package domain defines the Product entity and its validation rules.
package domain

import (
	"strings"

	validation "github.com/jellydator/validation"

	apperrors "github.com/allisson/inventory/internal/errors"
	customValidation "github.com/allisson/inventory/internal/validation"
)

// ErrCategoryNotFound is returned when categoria_id names a category that does not exist.
var ErrCategoryNotFound = apperrors.Wrap(apperrors.ErrInvalidInput, "categoria_id: la categoría no existe")

// Product is an inventory item. Rows live in the productos table. CategoryID is nil
// for uncategorized products, including those whose category was deleted.
type Product struct {
	ID         int64
	Name       string
	CategoryID *int64
}

// NewProduct validates its input and returns an unsaved Product holding the trimmed name.
func NewProduct(name string, categoryID *int64) (*Product, error) {
	err := validation.Errors{
		"nombre":       validation.Validate(name, customValidation.Name()...),
		"categoria_id": validation.Validate(categoryID, customValidation.PositiveID),
	}.Filter()
	if err != nil {
		return nil, customValidation.WrapValidationError(err)
	}

	return &Product{
		Name:       strings.TrimSpace(name),
		CategoryID: categoryID,
	}, nil
}
