package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/FedeLo13/ceramic-affair-web/internal/models"
)

var (
	ErrSubscriberNotFound = errors.New("subscriber not found")
	ErrTokenExpired       = errors.New("verification token expired")
)

type SubscriberRepositoryImpl struct {
	db *sqlx.DB
}

func NewSubscriberRepository(db *sqlx.DB) *SubscriberRepositoryImpl {
	return &SubscriberRepositoryImpl{db: db}
}

func (r *SubscriberRepositoryImpl) Create(ctx context.Context, subscriber *models.Subscriber) error {
	query := `
        INSERT INTO suscriptores (email, verificado, token_verificacion, fecha_expiracion_token)
        VALUES ($1, $2, $3, $4)
        RETURNING id
    `

	err := r.db.QueryRowContext(ctx, query,
		subscriber.Email,
		subscriber.Verified,
		subscriber.VerificationToken,
		subscriber.TokenExpiry,
	).Scan(&subscriber.ID)
	if err != nil {
		return fmt.Errorf("could not create subscriber: %w", err)
	}

	return nil
}

func (r *SubscriberRepositoryImpl) GetByEmail(ctx context.Context, email string) (*models.Subscriber, error) {
	var subscriber models.Subscriber

	err := r.db.GetContext(ctx, &subscriber,
		`SELECT id, email, verificado, token_verificacion, fecha_expiracion_token
         FROM suscriptores WHERE email = $1`, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrSubscriberNotFound
		}
		return nil, fmt.Errorf("could not get subscriber: %w", err)
	}

	return &subscriber, nil
}

func (r *SubscriberRepositoryImpl) Verify(ctx context.Context, token string) error {
	var subscriber models.Subscriber

	err := r.db.GetContext(ctx, &subscriber,
		`SELECT id, email, verificado, token_verificacion, fecha_expiracion_token
         FROM suscriptores WHERE token_verificacion = $1`, token)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrSubscriberNotFound
		}
		return fmt.Errorf("could not look up verification token: %w", err)
	}

	if time.Now().After(subscriber.TokenExpiry) {
		return ErrTokenExpired
	}

	_, err = r.db.ExecContext(ctx,
		`UPDATE suscriptores SET verificado = TRUE WHERE id = $1`, subscriber.ID)
	if err != nil {
		return fmt.Errorf("could not verify subscriber: %w", err)
	}

	return nil
}

func (r *SubscriberRepositoryImpl) DeleteByToken(ctx context.Context, token string) error {
	result, err := r.db.ExecContext(ctx,
		`DELETE FROM suscriptores WHERE token_verificacion = $1`, token)
	if err != nil {
		return fmt.Errorf("could not delete subscriber: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("could not check deleted rows: %w", err)
	}
	if rowsAffected == 0 {
		return ErrSubscriberNotFound
	}

	return nil
}

func (r *SubscriberRepositoryImpl) GetVerified(ctx context.Context) ([]models.Subscriber, error) {
	var subscribers []models.Subscriber

	err := r.db.SelectContext(ctx, &subscribers,
		`SELECT id, email, verificado, token_verificacion, fecha_expiracion_token
         FROM suscriptores WHERE verificado = TRUE ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("could not get verified subscribers: %w", err)
	}

	return subscribers, nil
}

// DeleteUnverifiedExpired purges subscribers that never confirmed and whose
// verification window closed before the given time.
func (r *SubscriberRepositoryImpl) DeleteUnverifiedExpired(ctx context.Context, before time.Time) (int64, error) {
	result, err := r.db.ExecContext(ctx,
		`DELETE FROM suscriptores WHERE verificado = FALSE AND fecha_expiracion_token < $1`, before)
	if err != nil {
		return 0, fmt.Errorf("could not purge unverified subscribers: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("could not check deleted rows: %w", err)
	}

	return rowsAffected, nil
}
