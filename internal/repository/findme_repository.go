package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/FedeLo13/ceramic-affair-web/internal/models"
)

var ErrFindMePostNotFound = errors.New("find me post not found")

type FindMePostRepositoryImpl struct {
	db *sqlx.DB
}

func NewFindMePostRepository(db *sqlx.DB) *FindMePostRepositoryImpl {
	return &FindMePostRepositoryImpl{db: db}
}

func (r *FindMePostRepositoryImpl) Create(ctx context.Context, post *models.FindMePost) error {
	query := `
        INSERT INTO find_me_posts (titulo, descripcion, fecha_inicio, fecha_fin, latitud, longitud)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING id
    `

	err := r.db.QueryRowContext(ctx, query,
		post.Title, post.Description, post.StartDate, post.EndDate,
		post.Latitude, post.Longitude,
	).Scan(&post.ID)
	if err != nil {
		return fmt.Errorf("could not create find me post: %w", err)
	}

	return nil
}

func (r *FindMePostRepositoryImpl) GetByID(ctx context.Context, id int64) (*models.FindMePost, error) {
	var post models.FindMePost

	err := r.db.GetContext(ctx, &post,
		`SELECT id, titulo, descripcion, fecha_inicio, fecha_fin, latitud, longitud
         FROM find_me_posts WHERE id = $1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrFindMePostNotFound
		}
		return nil, fmt.Errorf("could not get find me post: %w", err)
	}

	return &post, nil
}

func (r *FindMePostRepositoryImpl) GetAll(ctx context.Context) ([]models.FindMePost, error) {
	var posts []models.FindMePost

	err := r.db.SelectContext(ctx, &posts,
		`SELECT id, titulo, descripcion, fecha_inicio, fecha_fin, latitud, longitud
         FROM find_me_posts ORDER BY fecha_inicio DESC`)
	if err != nil {
		return nil, fmt.Errorf("could not get find me posts: %w", err)
	}

	return posts, nil
}

func (r *FindMePostRepositoryImpl) Update(ctx context.Context, post *models.FindMePost) error {
	query := `
        UPDATE find_me_posts SET
            titulo = $1,
            descripcion = $2,
            fecha_inicio = $3,
            fecha_fin = $4,
            latitud = $5,
            longitud = $6
        WHERE id = $7
    `

	result, err := r.db.ExecContext(ctx, query,
		post.Title, post.Description, post.StartDate, post.EndDate,
		post.Latitude, post.Longitude, post.ID)
	if err != nil {
		return fmt.Errorf("could not update find me post: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("could not check updated rows: %w", err)
	}
	if rowsAffected == 0 {
		return ErrFindMePostNotFound
	}

	return nil
}

func (r *FindMePostRepositoryImpl) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM find_me_posts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("could not delete find me post: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("could not check deleted rows: %w", err)
	}
	if rowsAffected == 0 {
		return ErrFindMePostNotFound
	}

	return nil
}
