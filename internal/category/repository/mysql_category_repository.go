// Package repository implements category persistence for MySQL and PostgreSQL.
package repository

import (
	"context"
	"database/sql"

	categoryDomain "github.com/allisson/inventory/internal/category/domain"
	"github.com/allisson/inventory/internal/database"
	apperrors "github.com/allisson/inventory/internal/errors"
)

// MySQLCategoryRepository implements Category persistence for MySQL databases.
type MySQLCategoryRepository struct {
	db *sql.DB
}

// List returns every category ordered by id.
func (m *MySQLCategoryRepository) List(ctx context.Context) ([]*categoryDomain.Category, error) {
	querier := database.GetTx(ctx, m.db)

	rows, err := querier.QueryContext(ctx, `SELECT id, nombre FROM categorias ORDER BY id`)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list categories")
	}
	defer func() { _ = rows.Close() }()

	return scanCategories(rows)
}

// Create inserts a category and sets its auto-increment id.
func (m *MySQLCategoryRepository) Create(ctx context.Context, category *categoryDomain.Category) error {
	querier := database.GetTx(ctx, m.db)

	result, err := querier.ExecContext(ctx, `INSERT INTO categorias (nombre) VALUES (?)`, category.Name)
	if err != nil {
		return apperrors.Wrap(err, "failed to create category")
	}

	id, err := result.LastInsertId()
	if err != nil {
		return apperrors.Wrap(err, "failed to read category id")
	}
	category.ID = id

	return nil
}

// Update overwrites the name of the category with category.ID.
func (m *MySQLCategoryRepository) Update(ctx context.Context, category *categoryDomain.Category) error {
	querier := database.GetTx(ctx, m.db)

	_, err := querier.ExecContext(ctx, `UPDATE categorias SET nombre = ? WHERE id = ?`, category.Name, category.ID)
	if err != nil {
		return apperrors.Wrap(err, "failed to update category")
	}

	return nil
}

// Delete removes the category with id. The productos foreign key nulls out references.
func (m *MySQLCategoryRepository) Delete(ctx context.Context, id int64) error {
	querier := database.GetTx(ctx, m.db)

	_, err := querier.ExecContext(ctx, `DELETE FROM categorias WHERE id = ?`, id)
	if err != nil {
		return apperrors.Wrap(err, "failed to delete category")
	}

	return nil
}

// NewMySQLCategoryRepository creates a new MySQL Category repository.
func NewMySQLCategoryRepository(db *sql.DB) *MySQLCategoryRepository {
	return &MySQLCategoryRepository{db: db}
}

func scanCategories(rows *sql.Rows) ([]*categoryDomain.Category, error) {
	categories := make([]*categoryDomain.Category, 0)
	for rows.Next() {
		var category categoryDomain.Category
		if err := rows.Scan(&category.ID, &category.Name); err != nil {
			return nil, apperrors.Wrap(err, "failed to scan category")
		}
		categories = append(categories, &category)
	}

	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate categories")
	}

	return categories, nil
}
