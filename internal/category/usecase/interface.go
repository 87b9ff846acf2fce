// Package usecase implements the category operations exposed by the API: list,
// create, update and delete.
package usecase

import (
	"context"

	categoryDomain "github.com/allisson/inventory/internal/category/domain"
)

// CategoryRepository persists categories.
type CategoryRepository interface {
	// List returns every category ordered by id. Never nil.
	List(ctx context.Context) ([]*categoryDomain.Category, error)
	// Create inserts the category and sets its ID.
	Create(ctx context.Context, category *categoryDomain.Category) error
	// Update overwrites the name of the row with category.ID. Zero matched rows is not an error.
	Update(ctx context.Context, category *categoryDomain.Category) error
	// Delete removes the row with id. Zero matched rows is not an error.
	Delete(ctx context.Context, id int64) error
}

// CategoryUseCase defines the category business operations.
type CategoryUseCase interface {
	List(ctx context.Context) ([]*categoryDomain.Category, error)
	Create(ctx context.Context, name string) (*categoryDomain.Category, error)
	// Update renames a category. Unknown ids succeed without effect.
	Update(ctx context.Context, id int64, name string) error
	// Delete removes a category. Products referencing it keep existing with no
	// category. Unknown ids succeed without effect.
	Delete(ctx context.Context, id int64) error
}
