package dto

import (
	productDomain "github.com/allisson/inventory/internal/product/domain"
)

// ProductResponse is the JSON representation of a product. CategoriaID encodes as
// null for uncategorized products.
type ProductResponse struct {
	ID          int64  `json:"id"`
	Nombre      string `json:"nombre"`
	CategoriaID *int64 `json:"categoria_id"`
}

// MapProductToResponse converts a domain product to its API representation.
func MapProductToResponse(product *productDomain.Product) ProductResponse {
	return ProductResponse{
		ID:          product.ID,
		Nombre:      product.Name,
		CategoriaID: product.CategoryID,
	}
}

// MapProductsToResponse converts a list of products; never nil.
func MapProductsToResponse(products []*productDomain.Product) []ProductResponse {
	response := make([]ProductResponse, 0, len(products))
	for _, product := range products {
		response = append(response, MapProductToResponse(product))
	}
	return response
}
