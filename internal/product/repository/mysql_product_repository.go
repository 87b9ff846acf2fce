// Package repository implements product persistence for MySQL and PostgreSQL.
package repository

import (
	"context"
	"database/sql"

	"github.com/allisson/inventory/internal/database"
	apperrors "github.com/allisson/inventory/internal/errors"
	productDomain "github.com/allisson/inventory/internal/product/domain"
)

// MySQLProductRepository implements Product persistence for MySQL databases.
type MySQLProductRepository struct {
	db *sql.DB
}

// List returns every product ordered by id.
func (m *MySQLProductRepository) List(ctx context.Context) ([]*productDomain.Product, error) {
	querier := database.GetTx(ctx, m.db)

	rows, err := querier.QueryContext(ctx, `SELECT id, nombre, categoria_id FROM productos ORDER BY id`)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list products")
	}
	defer func() { _ = rows.Close() }()

	return scanProducts(rows)
}

// Create inserts a product and sets its auto-increment id.
func (m *MySQLProductRepository) Create(ctx context.Context, product *productDomain.Product) error {
	querier := database.GetTx(ctx, m.db)

	result, err := querier.ExecContext(
		ctx,
		`INSERT INTO productos (nombre, categoria_id) VALUES (?, ?)`,
		product.Name,
		nullableID(product.CategoryID),
	)
	if err != nil {
		return mapWriteError(err, "failed to create product")
	}

	id, err := result.LastInsertId()
	if err != nil {
		return apperrors.Wrap(err, "failed to read product id")
	}
	product.ID = id

	return nil
}

// Update overwrites name and category of the product with product.ID.
func (m *MySQLProductRepository) Update(ctx context.Context, product *productDomain.Product) error {
	querier := database.GetTx(ctx, m.db)

	_, err := querier.ExecContext(
		ctx,
		`UPDATE productos SET nombre = ?, categoria_id = ? WHERE id = ?`,
		product.Name,
		nullableID(product.CategoryID),
		product.ID,
	)
	if err != nil {
		return mapWriteError(err, "failed to update product")
	}

	return nil
}

// NewMySQLProductRepository creates a new MySQL Product repository.
func NewMySQLProductRepository(db *sql.DB) *MySQLProductRepository {
	return &MySQLProductRepository{db: db}
}

func nullableID(id *int64) sql.NullInt64 {
	if id == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: *id, Valid: true}
}

// mapWriteError turns a categoria_id foreign key violation into ErrCategoryNotFound.
func mapWriteError(err error, message string) error {
	if database.IsForeignKeyViolation(err) {
		return productDomain.ErrCategoryNotFound
	}
	return apperrors.Wrap(err, message)
}

func scanProducts(rows *sql.Rows) ([]*productDomain.Product, error) {
	products := make([]*productDomain.Product, 0)
	for rows.Next() {
		var product productDomain.Product
		var categoryID sql.NullInt64
		if err := rows.Scan(&product.ID, &product.Name, &categoryID); err != nil {
			return nil, apperrors.Wrap(err, "failed to scan product")
		}
		if categoryID.Valid {
			product.CategoryID = &categoryID.Int64
		}
		products = append(products, &product)
	}

	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate products")
	}

	return products, nil
}
