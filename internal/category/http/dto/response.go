package dto

import (
	categoryDomain "github.com/allisson/inventory/internal/category/domain"
)

// CategoryResponse is the JSON representation of a category.
type CategoryResponse struct {
	ID     int64  `json:"id"`
	Nombre string `json:"nombre"`
}

// MapCategoryToResponse converts a domain category to its API representation.
func MapCategoryToResponse(category *categoryDomain.Category) CategoryResponse {
	return CategoryResponse{
		ID:     category.ID,
		Nombre: category.Name,
	}
}

// MapCategoriesToResponse converts a list of categories. The result is never nil so
// an empty collection encodes as [].
func MapCategoriesToResponse(categories []*categoryDomain.Category) []CategoryResponse {
	response := make([]CategoryResponse, 0, len(categories))
	for _, category := range categories {
		response = append(response, MapCategoryToResponse(category))
	}
	return response
}
