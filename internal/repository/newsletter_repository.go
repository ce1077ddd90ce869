package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/FedeLo13/ceramic-affair-web/internal/models"
)

// The newsletter template is a singleton row with id 1, created empty the
// first time it is read.
const templateID = 1

type NewsletterRepositoryImpl struct {
	db *sqlx.DB
}

func NewNewsletterRepository(db *sqlx.DB) *NewsletterRepositoryImpl {
	return &NewsletterRepositoryImpl{db: db}
}

func (r *NewsletterRepositoryImpl) GetTemplate(ctx context.Context) (*models.Newsletter, error) {
	var template models.Newsletter

	err := r.db.GetContext(ctx, &template,
		`SELECT asunto, mensaje FROM plantilla_newsletter WHERE id = $1`, templateID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			empty := models.Newsletter{}
			if _, err := r.db.ExecContext(ctx,
				`INSERT INTO plantilla_newsletter (id, asunto, mensaje) VALUES ($1, '', '')`,
				templateID); err != nil {
				return nil, fmt.Errorf("could not create empty template: %w", err)
			}
			return &empty, nil
		}
		return nil, fmt.Errorf("could not get newsletter template: %w", err)
	}

	return &template, nil
}

func (r *NewsletterRepositoryImpl) UpdateTemplate(ctx context.Context, template *models.Newsletter) error {
	query := `
        INSERT INTO plantilla_newsletter (id, asunto, mensaje)
        VALUES ($1, $2, $3)
        ON CONFLICT (id) DO UPDATE SET asunto = EXCLUDED.asunto, mensaje = EXCLUDED.mensaje
    `

	_, err := r.db.ExecContext(ctx, query, templateID, template.Subject, template.Message)
	if err != nil {
		return fmt.Errorf("could not update newsletter template: %w", err)
	}

	return nil
}
