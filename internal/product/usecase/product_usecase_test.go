package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	databaseMocks "github.com/allisson/inventory/internal/database/mocks"
	apperrors "github.com/allisson/inventory/internal/errors"
	productDomain "github.com/allisson/inventory/internal/product/domain"
	productMocks "github.com/allisson/inventory/internal/product/usecase/mocks"
)

func int64Ptr(v int64) *int64 {
	return &v
}

func TestProductUseCase_List(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mockTxManager := databaseMocks.NewMockTxManager(t)
		mockRepo := productMocks.NewMockProductRepository(t)
		uc := NewProductUseCase(mockTxManager, mockRepo, time.Second)

		expected := []*productDomain.Product{
			{ID: 1, Name: "Martillo", CategoryID: int64Ptr(2)},
			{ID: 2, Name: "Suelto"},
		}
		mockRepo.On("List", mock.Anything).Return(expected, nil).Once()

		products, err := uc.List(ctx)

		require.NoError(t, err)
		assert.Equal(t, expected, products)
	})

	t.Run("Error_StoreFailure", func(t *testing.T) {
		mockTxManager := databaseMocks.NewMockTxManager(t)
		mockRepo := productMocks.NewMockProductRepository(t)
		uc := NewProductUseCase(mockTxManager, mockRepo, time.Second)

		storeErr := errors.New("i/o timeout")
		mockRepo.On("List", mock.Anything).Return(nil, storeErr).Once()

		products, err := uc.List(ctx)

		assert.Nil(t, products)
		assert.ErrorIs(t, err, storeErr)
	})

	t.Run("Error_DeadlineExceeded", func(t *testing.T) {
		mockTxManager := databaseMocks.NewMockTxManager(t)
		mockRepo := productMocks.NewMockProductRepository(t)
		uc := NewProductUseCase(mockTxManager, mockRepo, time.Millisecond)

		mockRepo.On("List", mock.Anything).
			Return(nil, context.DeadlineExceeded).
			Run(func(args mock.Arguments) {
				<-args.Get(0).(context.Context).Done()
			}).
			Once()

		_, err := uc.List(ctx)

		assert.ErrorIs(t, err, context.DeadlineExceeded)
	})
}

func TestProductUseCase_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mockTxManager := databaseMocks.NewMockTxManager(t)
		mockRepo := productMocks.NewMockProductRepository(t)
		uc := NewProductUseCase(mockTxManager, mockRepo, time.Second)

		mockTxManager.ExpectPassthrough().Once()
		mockRepo.On("Create", mock.Anything, &productDomain.Product{Name: "Martillo", CategoryID: int64Ptr(2)}).
			Run(func(args mock.Arguments) {
				args.Get(1).(*productDomain.Product).ID = 10
			}).
			Return(nil).
			Once()

		product, err := uc.Create(ctx, "Martillo", int64Ptr(2))

		require.NoError(t, err)
		assert.Equal(t, int64(10), product.ID)
	})

	t.Run("Success_WithoutCategory", func(t *testing.T) {
		mockTxManager := databaseMocks.NewMockTxManager(t)
		mockRepo := productMocks.NewMockProductRepository(t)
		uc := NewProductUseCase(mockTxManager, mockRepo, time.Second)

		mockTxManager.ExpectPassthrough().Once()
		mockRepo.On("Create", mock.Anything, &productDomain.Product{Name: "Martillo"}).Return(nil).Once()

		_, err := uc.Create(ctx, "Martillo", nil)

		require.NoError(t, err)
	})

	t.Run("Error_MissingName", func(t *testing.T) {
		mockTxManager := databaseMocks.NewMockTxManager(t)
		mockRepo := productMocks.NewMockProductRepository(t)
		uc := NewProductUseCase(mockTxManager, mockRepo, time.Second)

		product, err := uc.Create(ctx, "", int64Ptr(2))

		assert.Nil(t, product)
		assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
		mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Error_UnknownCategory", func(t *testing.T) {
		mockTxManager := databaseMocks.NewMockTxManager(t)
		mockRepo := productMocks.NewMockProductRepository(t)
		uc := NewProductUseCase(mockTxManager, mockRepo, time.Second)

		mockTxManager.ExpectPassthrough().Once()
		mockRepo.On("Create", mock.Anything, mock.Anything).Return(productDomain.ErrCategoryNotFound).Once()

		product, err := uc.Create(ctx, "Martillo", int64Ptr(404))

		assert.Nil(t, product)
		assert.ErrorIs(t, err, productDomain.ErrCategoryNotFound)
		assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
	})
}

func TestProductUseCase_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mockTxManager := databaseMocks.NewMockTxManager(t)
		mockRepo := productMocks.NewMockProductRepository(t)
		uc := NewProductUseCase(mockTxManager, mockRepo, time.Second)

		mockTxManager.ExpectPassthrough().Once()
		mockRepo.On("Update", mock.Anything, &productDomain.Product{ID: 5, Name: "Serrucho", CategoryID: int64Ptr(1)}).
			Return(nil).
			Once()

		assert.NoError(t, uc.Update(ctx, 5, "Serrucho", int64Ptr(1)))
	})

	t.Run("Error_InvalidCategoryID", func(t *testing.T) {
		mockTxManager := databaseMocks.NewMockTxManager(t)
		mockRepo := productMocks.NewMockProductRepository(t)
		uc := NewProductUseCase(mockTxManager, mockRepo, time.Second)

		err := uc.Update(ctx, 5, "Serrucho", int64Ptr(0))

		assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
		mockTxManager.AssertNotCalled(t, "WithTx", mock.Anything, mock.Anything)
	})

	t.Run("Error_StoreFailure", func(t *testing.T) {
		mockTxManager := databaseMocks.NewMockTxManager(t)
		mockRepo := productMocks.NewMockProductRepository(t)
		uc := NewProductUseCase(mockTxManager, mockRepo, time.Second)

		storeErr := errors.New("server has gone away")
		mockTxManager.ExpectPassthrough().Once()
		mockRepo.On("Update", mock.Anything, mock.Anything).Return(storeErr).Once()

		assert.ErrorIs(t, uc.Update(ctx, 5, "Serrucho", nil), storeErr)
	})
}
