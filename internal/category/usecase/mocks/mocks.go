// Package mocks provides testify mocks for the category use case layer.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	categoryDomain "github.com/allisson/inventory/internal/category/domain"
)

type testingT interface {
	mock.TestingT
	Cleanup(func())
}

// MockCategoryRepository is a mock implementation of usecase.CategoryRepository.
type MockCategoryRepository struct {
	mock.Mock
}

// NewMockCategoryRepository creates a mock whose expectations are asserted on cleanup.
func NewMockCategoryRepository(t testingT) *MockCategoryRepository {
	m := &MockCategoryRepository{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockCategoryRepository) List(ctx context.Context) ([]*categoryDomain.Category, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*categoryDomain.Category), args.Error(1)
}

func (m *MockCategoryRepository) Create(ctx context.Context, category *categoryDomain.Category) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}

func (m *MockCategoryRepository) Update(ctx context.Context, category *categoryDomain.Category) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}

func (m *MockCategoryRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockCategoryUseCase is a mock implementation of usecase.CategoryUseCase.
type MockCategoryUseCase struct {
	mock.Mock
}

// NewMockCategoryUseCase creates a mock whose expectations are asserted on cleanup.
func NewMockCategoryUseCase(t testingT) *MockCategoryUseCase {
	m := &MockCategoryUseCase{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockCategoryUseCase) List(ctx context.Context) ([]*categoryDomain.Category, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*categoryDomain.Category), args.Error(1)
}

func (m *MockCategoryUseCase) Create(ctx context.Context, name string) (*categoryDomain.Category, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*categoryDomain.Category), args.Error(1)
}

func (m *MockCategoryUseCase) Update(ctx context.Context, id int64, name string) error {
	args := m.Called(ctx, id, name)
	return args.Error(0)
}

func (m *MockCategoryUseCase) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
