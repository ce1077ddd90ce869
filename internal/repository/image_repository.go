package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/FedeLo13/ceramic-affair-web/internal/models"
)

var ErrImageNotFound = errors.New("image not found")

type ImageRepositoryImpl struct {
	db *sqlx.DB
}

func NewImageRepository(db *sqlx.DB) *ImageRepositoryImpl {
	return &ImageRepositoryImpl{db: db}
}

func (r *ImageRepositoryImpl) Create(ctx context.Context, image *models.Image) error {
	query := `
        INSERT INTO imagenes (ruta, formato, tamano, ancho, alto)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id
    `

	err := r.db.QueryRowContext(ctx, query,
		image.Path, image.Format, image.Size, image.Width, image.Height,
	).Scan(&image.ID)
	if err != nil {
		return fmt.Errorf("could not create image: %w", err)
	}

	return nil
}

func (r *ImageRepositoryImpl) GetByID(ctx context.Context, id int64) (*models.Image, error) {
	var image models.Image

	err := r.db.GetContext(ctx, &image,
		`SELECT id, ruta, formato, tamano, ancho, alto FROM imagenes WHERE id = $1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrImageNotFound
		}
		return nil, fmt.Errorf("could not get image: %w", err)
	}

	return &image, nil
}

func (r *ImageRepositoryImpl) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM imagenes WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("could not delete image: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("could not check deleted rows: %w", err)
	}
	if rowsAffected == 0 {
		return ErrImageNotFound
	}

	return nil
}
