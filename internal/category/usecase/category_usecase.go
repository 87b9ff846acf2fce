package usecase

import (
	"context"
	"time"

	categoryDomain "github.com/allisson/inventory/internal/category/domain"
	"github.com/allisson/inventory/internal/database"
)

type categoryUseCase struct {
	txManager    database.TxManager
	categoryRepo CategoryRepository
	queryTimeout time.Duration
}

func (c *categoryUseCase) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if c.queryTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, c.queryTimeout)
}

// List returns all categories.
func (c *categoryUseCase) List(ctx context.Context) ([]*categoryDomain.Category, error) {
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	return c.categoryRepo.List(ctx)
}

// Create validates the name before touching the store.
func (c *categoryUseCase) Create(ctx context.Context, name string) (*categoryDomain.Category, error) {
	category, err := categoryDomain.NewCategory(name)
	if err != nil {
		return nil, err
	}

	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	err = c.txManager.WithTx(ctx, func(txCtx context.Context) error {
		return c.categoryRepo.Create(txCtx, category)
	})
	if err != nil {
		return nil, err
	}

	return category, nil
}

// Update renames the category with id.
func (c *categoryUseCase) Update(ctx context.Context, id int64, name string) error {
	category, err := categoryDomain.NewCategory(name)
	if err != nil {
		return err
	}
	category.ID = id

	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	return c.txManager.WithTx(ctx, func(txCtx context.Context) error {
		return c.categoryRepo.Update(txCtx, category)
	})
}

// Delete removes the category with id.
func (c *categoryUseCase) Delete(ctx context.Context, id int64) error {
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	return c.txManager.WithTx(ctx, func(txCtx context.Context) error {
		return c.categoryRepo.Delete(txCtx, id)
	})
}

// NewCategoryUseCase creates a CategoryUseCase. Every store call is bounded by
// queryTimeout; zero disables the bound.
func NewCategoryUseCase(
	txManager database.TxManager,
	categoryRepo CategoryRepository,
	queryTimeout time.Duration,
) CategoryUseCase {
	return &categoryUseCase{
		txManager:    txManager,
		categoryRepo: categoryRepo,
		queryTimeout: queryTimeout,
	}
}
