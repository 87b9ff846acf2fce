package app

import (
	"fmt"

	categoryHTTP "github.com/allisson/inventory/internal/category/http"
	categoryRepository "github.com/allisson/inventory/internal/category/repository"
	categoryUseCase "github.com/allisson/inventory/internal/category/usecase"
)

// CategoryRepository returns the category repository for the configured driver.
func (c *Container) CategoryRepository() (categoryUseCase.CategoryRepository, error) {
	var err error
	c.categoryRepositoryInit.Do(func() {
		c.categoryRepository, err = c.initCategoryRepository()
		if err != nil {
			c.setInitError("categoryRepository", err)
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr := c.initError("categoryRepository"); storedErr != nil {
		return nil, storedErr
	}
	return c.categoryRepository, nil
}

// CategoryUseCase returns the category use case, wrapped with metrics.
func (c *Container) CategoryUseCase() (categoryUseCase.CategoryUseCase, error) {
	var err error
	c.categoryUseCaseInit.Do(func() {
		c.categoryUseCase, err = c.initCategoryUseCase()
		if err != nil {
			c.setInitError("categoryUseCase", err)
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr := c.initError("categoryUseCase"); storedErr != nil {
		return nil, storedErr
	}
	return c.categoryUseCase, nil
}

// CategoryHandler returns the HTTP handler for /categorias.
func (c *Container) CategoryHandler() (*categoryHTTP.CategoryHandler, error) {
	var err error
	c.categoryHandlerInit.Do(func() {
		var useCase categoryUseCase.CategoryUseCase
		useCase, err = c.CategoryUseCase()
		if err != nil {
			err = fmt.Errorf("failed to get category use case for category handler: %w", err)
			c.setInitError("categoryHandler", err)
			return
		}
		c.categoryHandler = categoryHTTP.NewCategoryHandler(useCase, c.Logger())
	})
	if err != nil {
		return nil, err
	}
	if storedErr := c.initError("categoryHandler"); storedErr != nil {
		return nil, storedErr
	}
	return c.categoryHandler, nil
}

func (c *Container) initCategoryRepository() (categoryUseCase.CategoryRepository, error) {
	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for category repository: %w", err)
	}

	switch c.config.DBDriver {
	case "mysql":
		return categoryRepository.NewMySQLCategoryRepository(db), nil
	case "postgres":
		return categoryRepository.NewPostgreSQLCategoryRepository(db), nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", c.config.DBDriver)
	}
}

func (c *Container) initCategoryUseCase() (categoryUseCase.CategoryUseCase, error) {
	txManager, err := c.TxManager()
	if err != nil {
		return nil, fmt.Errorf("failed to get tx manager for category use case: %w", err)
	}

	repo, err := c.CategoryRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get category repository for category use case: %w", err)
	}

	businessMetrics, err := c.BusinessMetrics()
	if err != nil {
		return nil, fmt.Errorf("failed to get business metrics for category use case: %w", err)
	}

	useCase := categoryUseCase.NewCategoryUseCase(txManager, repo, c.config.DBQueryTimeout)
	return categoryUseCase.NewCategoryUseCaseWithMetrics(useCase, businessMetrics), nil
}
