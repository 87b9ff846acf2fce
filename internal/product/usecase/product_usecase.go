package usecase

import (
	"context"
	"time"

	"github.com/allisson/inventory/internal/database"
	productDomain "github.com/allisson/inventory/internal/product/domain"
)

type productUseCase struct {
	txManager    database.TxManager
	productRepo  ProductRepository
	queryTimeout time.Duration
}

func (p *productUseCase) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if p.queryTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, p.queryTimeout)
}

// List returns all products.
func (p *productUseCase) List(ctx context.Context) ([]*productDomain.Product, error) {
	ctx, cancel := p.withTimeout(ctx)
	defer cancel()

	return p.productRepo.List(ctx)
}

// Create validates the input before touching the store. The category reference is
// checked by the store's foreign key.
func (p *productUseCase) Create(
	ctx context.Context,
	name string,
	categoryID *int64,
) (*productDomain.Product, error) {
	product, err := productDomain.NewProduct(name, categoryID)
	if err != nil {
		return nil, err
	}

	ctx, cancel := p.withTimeout(ctx)
	defer cancel()

	err = p.txManager.WithTx(ctx, func(txCtx context.Context) error {
		return p.productRepo.Create(txCtx, product)
	})
	if err != nil {
		return nil, err
	}

	return product, nil
}

// Update overwrites name and category of the product with id.
func (p *productUseCase) Update(ctx context.Context, id int64, name string, categoryID *int64) error {
	product, err := productDomain.NewProduct(name, categoryID)
	if err != nil {
		return err
	}
	product.ID = id

	ctx, cancel := p.withTimeout(ctx)
	defer cancel()

	return p.txManager.WithTx(ctx, func(txCtx context.Context) error {
		return p.productRepo.Update(txCtx, product)
	})
}

// NewProductUseCase creates a ProductUseCase. Every store call is bounded by
// queryTimeout; zero disables the bound.
func NewProductUseCase(
	txManager database.TxManager,
	productRepo ProductRepository,
	queryTimeout time.Duration,
) ProductUseCase {
	return &productUseCase{
		txManager:    txManager,
		productRepo:  productRepo,
		queryTimeout: queryTimeout,
	}
}
