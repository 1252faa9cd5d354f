package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/SscSPs/bookkeeping_app/internal/apperrors"
	"github.com/SscSPs/bookkeeping_app/internal/core/domain"
	"github.com/SscSPs/bookkeeping_app/internal/core/services"
	"github.com/SscSPs/bookkeeping_app/internal/platform/config"
	"github.com/SscSPs/bookkeeping_app/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()
	repo := new(MockUserRepository)
	svc := services.NewAuthService(repo)
	admin := &domain.User{ID: 1, Username: "admin", Role: domain.RoleAdmin}

	repo.On("FindUserByUsernameAndPassword", ctx, "admin", "correct").Return(admin, nil).Once()
	repo.On("FindUserByUsernameAndPassword", ctx, "admin", "wrong").Return(nil, apperrors.ErrNotFound).Once()
	repo.On("FindUserByUsernameAndPassword", ctx, "admin", "boom").Return(nil, errors.New("disk on fire")).Once()

	user, err := svc.Login(ctx, "admin", "correct")
	require.NoError(t, err)
	assert.Equal(t, admin, user)

	_, err = svc.Login(ctx, "admin", "wrong")
	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)

	_, err = svc.Login(ctx, "admin", "boom")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, apperrors.ErrUnauthorized)

	_, err = svc.Login(ctx, "  ", "x")
	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)

	repo.AssertExpectations(t)
}

func TestTokenService_GenerateAccessToken(t *testing.T) {
	cfg := &config.Config{JWTSecret: "secret", JWTExpiryDuration: time.Hour, JWTIssuer: "bookkeeping-app"}
	svc := services.NewTokenService(cfg)

	before := time.Now()
	token, expiresAt, err := svc.GenerateAccessToken(context.Background(), &domain.User{ID: 42, Username: "admin", Role: domain.RoleAdmin})
	require.NoError(t, err)
	assert.WithinDuration(t, before.Add(time.Hour), expiresAt, 5*time.Second)

	claims, err := utils.ParseAndValidateJWT(token, "secret", "bookkeeping-app")
	require.NoError(t, err)
	assert.Equal(t, "42", claims.Subject)
	assert.Equal(t, domain.RoleAdmin, claims.Role)
}
