package service

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/FedeLo13/ceramic-affair-web/internal/config"
	"github.com/FedeLo13/ceramic-affair-web/internal/models"
	"github.com/FedeLo13/ceramic-affair-web/internal/repository"
)

func authTestConfig() *config.Config {
	return &config.Config{
		JWTSecretKey:  "test-secret-key",
		TokenDuration: time.Hour,
		AdminEmail:    "admin@example.com",
		AdminPassword: "secret123",
	}
}

func TestAuthService_LoginIssuesValidToken(t *testing.T) {
	userRepo := new(MockUserRepository)
	authService := NewAuthService(userRepo, authTestConfig())
	ctx := context.Background()

	userRepo.On("VerifyPassword", mock.Anything, "admin@example.com", "secret123").
		Return(&models.User{ID: 1, Email: "admin@example.com"}, nil)

	tokenString, err := authService.Login(ctx, "admin@example.com", "secret123")
	require.NoError(t, err)
	require.NotEmpty(t, tokenString)

	token, err := authService.ValidateToken(tokenString)
	require.NoError(t, err)

	subject, err := token.Claims.GetSubject()
	require.NoError(t, err)
	assert.Equal(t, "admin@example.com", subject)

	expiry, err := token.Claims.GetExpirationTime()
	require.NoError(t, err)
	assert.True(t, expiry.After(time.Now()))
}

func TestAuthService_LoginRejectsBadCredentials(t *testing.T) {
	userRepo := new(MockUserRepository)
	authService := NewAuthService(userRepo, authTestConfig())

	userRepo.On("VerifyPassword", mock.Anything, "admin@example.com", "wrong").
		Return(nil, repository.ErrInvalidCredentials)

	_, err := authService.Login(context.Background(), "admin@example.com", "wrong")

	assert.ErrorIs(t, err, repository.ErrInvalidCredentials)
}

func TestAuthService_ValidateTokenRejectsForeignSignature(t *testing.T) {
	authService := NewAuthService(new(MockUserRepository), authTestConfig())

	foreign := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "admin@example.com",
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	tokenString, err := foreign.SignedString([]byte("some-other-key"))
	require.NoError(t, err)

	_, err = authService.ValidateToken(tokenString)
	assert.Error(t, err)
}

func TestAuthService_EnsureAdmin(t *testing.T) {
	t.Run("seeds when the users table is empty", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		authService := NewAuthService(userRepo, authTestConfig())

		userRepo.On("CountUsers", mock.Anything).Return(0, nil)
		userRepo.On("CreateUser", mock.Anything, mock.MatchedBy(func(user *models.User) bool {
			return user.Email == "admin@example.com"
		}), "secret123").Return(nil)

		require.NoError(t, authService.EnsureAdmin(context.Background()))
		userRepo.AssertExpectations(t)
	})

	t.Run("does nothing when users exist", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		authService := NewAuthService(userRepo, authTestConfig())

		userRepo.On("CountUsers", mock.Anything).Return(1, nil)

		require.NoError(t, authService.EnsureAdmin(context.Background()))
		userRepo.AssertNotCalled(t, "CreateUser", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("skips without seed credentials", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		cfg := authTestConfig()
		cfg.AdminEmail = ""
		authService := NewAuthService(userRepo, cfg)

		require.NoError(t, authService.EnsureAdmin(context.Background()))
		userRepo.AssertNotCalled(t, "CountUsers", mock.Anything)
	})
}
