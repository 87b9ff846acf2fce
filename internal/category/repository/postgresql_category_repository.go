package repository

import (
	"context"
	"database/sql"

	categoryDomain "github.com/allisson/inventory/internal/category/domain"
	"github.com/allisson/inventory/internal/database"
	apperrors "github.com/allisson/inventory/internal/errors"
)

// PostgreSQLCategoryRepository implements Category persistence for PostgreSQL databases.
type PostgreSQLCategoryRepository struct {
	db *sql.DB
}

// List returns every category ordered by id.
func (p *PostgreSQLCategoryRepository) List(ctx context.Context) ([]*categoryDomain.Category, error) {
	querier := database.GetTx(ctx, p.db)

	rows, err := querier.QueryContext(ctx, `SELECT id, nombre FROM categorias ORDER BY id`)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list categories")
	}
	defer func() { _ = rows.Close() }()

	return scanCategories(rows)
}

// Create inserts a category and sets the id generated by the identity column.
func (p *PostgreSQLCategoryRepository) Create(ctx context.Context, category *categoryDomain.Category) error {
	querier := database.GetTx(ctx, p.db)

	err := querier.QueryRowContext(
		ctx,
		`INSERT INTO categorias (nombre) VALUES ($1) RETURNING id`,
		category.Name,
	).Scan(&category.ID)
	if err != nil {
		return apperrors.Wrap(err, "failed to create category")
	}

	return nil
}

// Update overwrites the name of the category with category.ID.
func (p *PostgreSQLCategoryRepository) Update(ctx context.Context, category *categoryDomain.Category) error {
	querier := database.GetTx(ctx, p.db)

	_, err := querier.ExecContext(ctx, `UPDATE categorias SET nombre = $1 WHERE id = $2`, category.Name, category.ID)
	if err != nil {
		return apperrors.Wrap(err, "failed to update category")
	}

	return nil
}

// Delete removes the category with id. The productos foreign key nulls out references.
func (p *PostgreSQLCategoryRepository) Delete(ctx context.Context, id int64) error {
	querier := database.GetTx(ctx, p.db)

	_, err := querier.ExecContext(ctx, `DELETE FROM categorias WHERE id = $1`, id)
	if err != nil {
		return apperrors.Wrap(err, "failed to delete category")
	}

	return nil
}

// NewPostgreSQLCategoryRepository creates a new PostgreSQL Category repository.
func NewPostgreSQLCategoryRepository(db *sql.DB) *PostgreSQLCategoryRepository {
	return &PostgreSQLCategoryRepository{db: db}
}
