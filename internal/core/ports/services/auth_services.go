package services

import (
	"context"
	"time"

	"github.com/SscSPs/bookkeeping_app/internal/core/domain"
)

// AuthSvcFacade defines credential checks.
type AuthSvcFacade interface {
	// Login returns the user matching username and password.
	// A mismatch of either yields apperrors.ErrUnauthorized.
	Login(ctx context.Context, username, password string) (*domain.User, error)
}

// TokenSvcFacade defines the interface for token management services.
type TokenSvcFacade interface {
	GenerateAccessToken(ctx context.Context, user *domain.User) (string, time.Time, error)
}
