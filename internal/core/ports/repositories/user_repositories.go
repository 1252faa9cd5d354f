package repositories

import (
	"context"

	"github.com/SscSPs/bookkeeping_app/internal/core/domain"
)

// UserReader defines read operations for user data
type UserReader interface {
	// FindUserByUsername retrieves a user by username.
	FindUserByUsername(ctx context.Context, username string) (*domain.User, error)

	// FindUserByUsernameAndPassword returns the user whose username matches and whose
	// stored hash accepts password. Any mismatch yields apperrors.ErrNotFound.
	FindUserByUsernameAndPassword(ctx context.Context, username, password string) (*domain.User, error)

	// ListUsers returns every user.
	ListUsers(ctx context.Context) ([]domain.User, error)
}

// UserRepositoryFacade combines all user-related repository interfaces
// This is a facade for clients that need access to all operations
type UserRepositoryFacade interface {
	UserReader
}
