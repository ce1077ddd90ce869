package repository

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/FedeLo13/ceramic-affair-web/internal/models"
)

func TestUserRepository_CreateUser(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)

	user := &models.User{Email: "admin@example.com"}

	mock.ExpectQuery(`INSERT INTO usuarios`).
		WithArgs("admin@example.com", sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))

	err := repo.CreateUser(context.Background(), user, "secret123")

	require.NoError(t, err)
	assert.Equal(t, int64(1), user.ID)
	assert.NotEqual(t, "secret123", user.PasswordHash)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_VerifyPassword(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	hash, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.MinCost)
	require.NoError(t, err)

	t.Run("correct password", func(t *testing.T) {
		mock.ExpectQuery(`SELECT id, email, password_hash FROM usuarios WHERE email = \$1`).
			WithArgs("admin@example.com").
			WillReturnRows(sqlmock.NewRows([]string{"id", "email", "password_hash"}).
				AddRow(1, "admin@example.com", string(hash)))

		user, err := repo.VerifyPassword(ctx, "admin@example.com", "secret123")

		require.NoError(t, err)
		assert.Equal(t, "admin@example.com", user.Email)
	})

	t.Run("wrong password", func(t *testing.T) {
		mock.ExpectQuery(`SELECT id, email, password_hash FROM usuarios WHERE email = \$1`).
			WithArgs("admin@example.com").
			WillReturnRows(sqlmock.NewRows([]string{"id", "email", "password_hash"}).
				AddRow(1, "admin@example.com", string(hash)))

		_, err := repo.VerifyPassword(ctx, "admin@example.com", "nope")

		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("unknown email maps to invalid credentials", func(t *testing.T) {
		mock.ExpectQuery(`SELECT id, email, password_hash FROM usuarios WHERE email = \$1`).
			WithArgs("ghost@example.com").
			WillReturnRows(sqlmock.NewRows([]string{"id", "email", "password_hash"}))

		_, err := repo.VerifyPassword(ctx, "ghost@example.com", "secret123")

		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})
}
