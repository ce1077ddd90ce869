package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/FedeLo13/ceramic-affair-web/internal/models"
)

var ErrCategoryNotFound = errors.New("category not found")

type CategoryRepositoryImpl struct {
	db *sqlx.DB
}

func NewCategoryRepository(db *sqlx.DB) *CategoryRepositoryImpl {
	return &CategoryRepositoryImpl{db: db}
}

func (r *CategoryRepositoryImpl) Create(ctx context.Context, category *models.Category) error {
	query := `INSERT INTO categorias (nombre) VALUES ($1) RETURNING id`

	err := r.db.QueryRowContext(ctx, query, category.Name).Scan(&category.ID)
	if err != nil {
		return fmt.Errorf("could not create category: %w", err)
	}

	return nil
}

func (r *CategoryRepositoryImpl) GetByID(ctx context.Context, id int64) (*models.Category, error) {
	var category models.Category

	err := r.db.GetContext(ctx, &category, `SELECT id, nombre FROM categorias WHERE id = $1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrCategoryNotFound
		}
		return nil, fmt.Errorf("could not get category: %w", err)
	}

	return &category, nil
}

func (r *CategoryRepositoryImpl) GetAll(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category

	err := r.db.SelectContext(ctx, &categories, `SELECT id, nombre FROM categorias ORDER BY nombre`)
	if err != nil {
		return nil, fmt.Errorf("could not get categories: %w", err)
	}

	return categories, nil
}

func (r *CategoryRepositoryImpl) Update(ctx context.Context, category *models.Category) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE categorias SET nombre = $1 WHERE id = $2`, category.Name, category.ID)
	if err != nil {
		return fmt.Errorf("could not update category: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("could not check updated rows: %w", err)
	}
	if rowsAffected == 0 {
		return ErrCategoryNotFound
	}

	return nil
}

// Delete is hard; products pointing at the category keep existing with their
// categoria_id reset by the FK (ON DELETE SET NULL).
func (r *CategoryRepositoryImpl) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM categorias WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("could not delete category: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("could not check deleted rows: %w", err)
	}
	if rowsAffected == 0 {
		return ErrCategoryNotFound
	}

	return nil
}
