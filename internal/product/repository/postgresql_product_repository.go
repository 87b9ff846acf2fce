package repository

import (
	"context"
	"database/sql"

	"github.com/allisson/inventory/internal/database"
	apperrors "github.com/allisson/inventory/internal/errors"
	productDomain "github.com/allisson/inventory/internal/product/domain"
)

// PostgreSQLProductRepository implements Product persistence for PostgreSQL databases.
type PostgreSQLProductRepository struct {
	db *sql.DB
}

// List returns every product ordered by id.
func (p *PostgreSQLProductRepository) List(ctx context.Context) ([]*productDomain.Product, error) {
	querier := database.GetTx(ctx, p.db)

	rows, err := querier.QueryContext(ctx, `SELECT id, nombre, categoria_id FROM productos ORDER BY id`)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list products")
	}
	defer func() { _ = rows.Close() }()

	return scanProducts(rows)
}

// Create inserts a product and sets the id generated by the identity column.
func (p *PostgreSQLProductRepository) Create(ctx context.Context, product *productDomain.Product) error {
	querier := database.GetTx(ctx, p.db)

	err := querier.QueryRowContext(
		ctx,
		`INSERT INTO productos (nombre, categoria_id) VALUES ($1, $2) RETURNING id`,
		product.Name,
		nullableID(product.CategoryID),
	).Scan(&product.ID)
	if err != nil {
		return mapWriteError(err, "failed to create product")
	}

	return nil
}

// Update overwrites name and category of the product with product.ID.
func (p *PostgreSQLProductRepository) Update(ctx context.Context, product *productDomain.Product) error {
	querier := database.GetTx(ctx, p.db)

	_, err := querier.ExecContext(
		ctx,
		`UPDATE productos SET nombre = $1, categoria_id = $2 WHERE id = $3`,
		product.Name,
		nullableID(product.CategoryID),
		product.ID,
	)
	if err != nil {
		return mapWriteError(err, "failed to update product")
	}

	return nil
}

// NewPostgreSQLProductRepository creates a new PostgreSQL Product repository.
func NewPostgreSQLProductRepository(db *sql.DB) *PostgreSQLProductRepository {
	return &PostgreSQLProductRepository{db: db}
}
