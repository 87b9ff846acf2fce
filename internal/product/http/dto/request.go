// Package dto provides data transfer objects for the product endpoints.
package dto

import (
	validation "github.com/jellydator/validation"

	customValidation "github.com/allisson/inventory/internal/validation"
)

// ProductRequest is the body of POST /productos and PUT /productos/:id.
type ProductRequest struct {
	Nombre      *string `json:"nombre"`
	CategoriaID *int64  `json:"categoria_id"`
}

// Validate checks that nombre is present and categoria_id, when given, is positive.
func (r *ProductRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Nombre, customValidation.Name()...),
		validation.Field(&r.CategoriaID, customValidation.PositiveID),
	)
}

// Name returns the requested name, empty when absent.
func (r *ProductRequest) Name() string {
	if r.Nombre == nil {
		return ""
	}
	return *r.Nombre
}
