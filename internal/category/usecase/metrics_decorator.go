package usecase

import (
	"context"
	"time"

	categoryDomain "github.com/allisson/inventory/internal/category/domain"
	"github.com/allisson/inventory/internal/metrics"
)

// categoryUseCaseWithMetrics decorates CategoryUseCase with metrics instrumentation.
type categoryUseCaseWithMetrics struct {
	next    CategoryUseCase
	metrics metrics.BusinessMetrics
}

// NewCategoryUseCaseWithMetrics wraps a CategoryUseCase with metrics recording.
func NewCategoryUseCaseWithMetrics(useCase CategoryUseCase, m metrics.BusinessMetrics) CategoryUseCase {
	return &categoryUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

func (c *categoryUseCaseWithMetrics) List(ctx context.Context) ([]*categoryDomain.Category, error) {
	start := time.Now()
	categories, err := c.next.List(ctx)
	metrics.Observe(ctx, c.metrics, metrics.DomainCategories, "list", start, err)
	return categories, err
}

func (c *categoryUseCaseWithMetrics) Create(ctx context.Context, name string) (*categoryDomain.Category, error) {
	start := time.Now()
	category, err := c.next.Create(ctx, name)
	metrics.Observe(ctx, c.metrics, metrics.DomainCategories, "create", start, err)
	return category, err
}

func (c *categoryUseCaseWithMetrics) Update(ctx context.Context, id int64, name string) error {
	start := time.Now()
	err := c.next.Update(ctx, id, name)
	metrics.Observe(ctx, c.metrics, metrics.DomainCategories, "update", start, err)
	return err
}

func (c *categoryUseCaseWithMetrics) Delete(ctx context.Context, id int64) error {
	start := time.Now()
	err := c.next.Delete(ctx, id)
	metrics.Observe(ctx, c.metrics, metrics.DomainCategories, "delete", start, err)
	return err
}
