// Package dto provides data transfer objects for the category endpoints.
package dto

import (
	validation "github.com/jellydator/validation"

	customValidation "github.com/allisson/inventory/internal/validation"
)

// CategoryRequest is the body of POST /categorias and PUT /categorias/:id.
// Nombre is a pointer so an absent field and an explicit null both fail validation.
type CategoryRequest struct {
	Nombre *string `json:"nombre"`
}

// Validate checks that nombre is present and not blank.
func (r *CategoryRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Nombre, customValidation.Name()...),
	)
}

// Name returns the requested name, empty when absent.
func (r *CategoryRequest) Name() string {
	if r.Nombre == nil {
		return ""
	}
	return *r.Nombre
}
