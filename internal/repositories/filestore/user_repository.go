package filestore

import (
	"context"
	"fmt"

	"github.com/SscSPs/bookkeeping_app/internal/apperrors"
	"github.com/SscSPs/bookkeeping_app/internal/core/domain"
	portsrepo "github.com/SscSPs/bookkeeping_app/internal/core/ports/repositories"
	"github.com/SscSPs/bookkeeping_app/internal/utils"
)

type userRepository struct {
	store *Store
}

func newUserRepository(store *Store) portsrepo.UserRepositoryFacade {
	return &userRepository{store: store}
}

// Ensure userRepository implements portsrepo.UserRepositoryFacade
var _ portsrepo.UserRepositoryFacade = (*userRepository)(nil)

func (r *userRepository) FindUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if u.Username == username {
			found := u
			return &found, nil
		}
	}
	return nil, fmt.Errorf("user %q: %w", username, apperrors.ErrNotFound)
}

func (r *userRepository) FindUserByUsernameAndPassword(ctx context.Context, username, password string) (*domain.User, error) {
	user, err := r.FindUserByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		return nil, fmt.Errorf("user %q: %w", username, apperrors.ErrNotFound)
	}
	return user, nil
}

func (r *userRepository) ListUsers(ctx context.Context) ([]domain.User, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.User, len(s.users))
	copy(out, s.users)
	return out, nil
}
