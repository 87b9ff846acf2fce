// Package mocks provides testify mocks for the product use case layer.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	productDomain "github.com/allisson/inventory/internal/product/domain"
)

type testingT interface {
	mock.TestingT
	Cleanup(func())
}

// MockProductRepository is a mock implementation of usecase.ProductRepository.
type MockProductRepository struct {
	mock.Mock
}

// NewMockProductRepository creates a mock whose expectations are asserted on cleanup.
func NewMockProductRepository(t testingT) *MockProductRepository {
	m := &MockProductRepository{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockProductRepository) List(ctx context.Context) ([]*productDomain.Product, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*productDomain.Product), args.Error(1)
}

func (m *MockProductRepository) Create(ctx context.Context, product *productDomain.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockProductRepository) Update(ctx context.Context, product *productDomain.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

// MockProductUseCase is a mock implementation of usecase.ProductUseCase.
type MockProductUseCase struct {
	mock.Mock
}

// NewMockProductUseCase creates a mock whose expectations are asserted on cleanup.
func NewMockProductUseCase(t testingT) *MockProductUseCase {
	m := &MockProductUseCase{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockProductUseCase) List(ctx context.Context) ([]*productDomain.Product, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*productDomain.Product), args.Error(1)
}

func (m *MockProductUseCase) Create(
	ctx context.Context,
	name string,
	categoryID *int64,
) (*productDomain.Product, error) {
	args := m.Called(ctx, name, categoryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*productDomain.Product), args.Error(1)
}

func (m *MockProductUseCase) Update(ctx context.Context, id int64, name string, categoryID *int64) error {
	args := m.Called(ctx, id, name, categoryID)
	return args.Error(0)
}
