// Package usecase implements the product operations exposed by the API: list, create
// and update. Products cannot be deleted.
package usecase

import (
	"context"

	productDomain "github.com/allisson/inventory/internal/product/domain"
)

// ProductRepository persists products.
type ProductRepository interface {
	// List returns every product ordered by id. Never nil.
	List(ctx context.Context) ([]*productDomain.Product, error)
	// Create inserts the product and sets its ID. A dangling CategoryID yields
	// productDomain.ErrCategoryNotFound.
	Create(ctx context.Context, product *productDomain.Product) error
	// Update overwrites the row with product.ID. Zero matched rows is not an error.
	Update(ctx context.Context, product *productDomain.Product) error
}

// ProductUseCase defines the product business operations.
type ProductUseCase interface {
	List(ctx context.Context) ([]*productDomain.Product, error)
	Create(ctx context.Context, name string, categoryID *int64) (*productDomain.Product, error)
	// Update overwrites a product. Unknown ids succeed without effect.
	Update(ctx context.Context, id int64, name string, categoryID *int64) error
}
