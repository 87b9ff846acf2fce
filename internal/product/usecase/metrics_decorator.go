package usecase

import (
	"context"
	"time"

	"github.com/allisson/inventory/internal/metrics"
	productDomain "github.com/allisson/inventory/internal/product/domain"
)

// productUseCaseWithMetrics decorates ProductUseCase with metrics instrumentation.
type productUseCaseWithMetrics struct {
	next    ProductUseCase
	metrics metrics.BusinessMetrics
}

// NewProductUseCaseWithMetrics wraps a ProductUseCase with metrics recording.
func NewProductUseCaseWithMetrics(useCase ProductUseCase, m metrics.BusinessMetrics) ProductUseCase {
	return &productUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

func (p *productUseCaseWithMetrics) List(ctx context.Context) ([]*productDomain.Product, error) {
	start := time.Now()
	products, err := p.next.List(ctx)
	metrics.Observe(ctx, p.metrics, metrics.DomainProducts, "list", start, err)
	return products, err
}

func (p *productUseCaseWithMetrics) Create(
	ctx context.Context,
	name string,
	categoryID *int64,
) (*productDomain.Product, error) {
	start := time.Now()
	product, err := p.next.Create(ctx, name, categoryID)
	metrics.Observe(ctx, p.metrics, metrics.DomainProducts, "create", start, err)
	return product, err
}

func (p *productUseCaseWithMetrics) Update(ctx context.Context, id int64, name string, categoryID *int64) error {
	start := time.Now()
	err := p.next.Update(ctx, id, name, categoryID)
	metrics.Observe(ctx, p.metrics, metrics.DomainProducts, "update", start, err)
	return err
}
