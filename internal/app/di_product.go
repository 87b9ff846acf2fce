package app

import (
	"fmt"

	productHTTP "github.com/allisson/inventory/internal/product/http"
	productRepository "github.com/allisson/inventory/internal/product/repository"
	productUseCase "github.com/allisson/inventory/internal/product/usecase"
)

// ProductRepository returns the product repository for the configured driver.
func (c *Container) ProductRepository() (productUseCase.ProductRepository, error) {
	var err error
	c.productRepositoryInit.Do(func() {
		c.productRepository, err = c.initProductRepository()
		if err != nil {
			c.setInitError("productRepository", err)
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr := c.initError("productRepository"); storedErr != nil {
		return nil, storedErr
	}
	return c.productRepository, nil
}

// ProductUseCase returns the product use case, wrapped with metrics.
func (c *Container) ProductUseCase() (productUseCase.ProductUseCase, error) {
	var err error
	c.productUseCaseInit.Do(func() {
		c.productUseCase, err = c.initProductUseCase()
		if err != nil {
			c.setInitError("productUseCase", err)
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr := c.initError("productUseCase"); storedErr != nil {
		return nil, storedErr
	}
	return c.productUseCase, nil
}

// ProductHandler returns the HTTP handler for /productos.
func (c *Container) ProductHandler() (*productHTTP.ProductHandler, error) {
	var err error
	c.productHandlerInit.Do(func() {
		var useCase productUseCase.ProductUseCase
		useCase, err = c.ProductUseCase()
		if err != nil {
			err = fmt.Errorf("failed to get product use case for product handler: %w", err)
			c.setInitError("productHandler", err)
			return
		}
		c.productHandler = productHTTP.NewProductHandler(useCase, c.Logger())
	})
	if err != nil {
		return nil, err
	}
	if storedErr := c.initError("productHandler"); storedErr != nil {
		return nil, storedErr
	}
	return c.productHandler, nil
}

func (c *Container) initProductRepository() (productUseCase.ProductRepository, error) {
	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for product repository: %w", err)
	}

	switch c.config.DBDriver {
	case "mysql":
		return productRepository.NewMySQLProductRepository(db), nil
	case "postgres":
		return productRepository.NewPostgreSQLProductRepository(db), nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", c.config.DBDriver)
	}
}

func (c *Container) initProductUseCase() (productUseCase.ProductUseCase, error) {
	txManager, err := c.TxManager()
	if err != nil {
		return nil, fmt.Errorf("failed to get tx manager for product use case: %w", err)
	}

	repo, err := c.ProductRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get product repository for product use case: %w", err)
	}

	businessMetrics, err := c.BusinessMetrics()
	if err != nil {
		return nil, fmt.Errorf("failed to get business metrics for product use case: %w", err)
	}

	useCase := productUseCase.NewProductUseCase(txManager, repo, c.config.DBQueryTimeout)
	return productUseCase.NewProductUseCaseWithMetrics(useCase, businessMetrics), nil
}
