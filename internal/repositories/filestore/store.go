package filestore

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/SscSPs/bookkeeping_app/internal/core/domain"
	portsrepo "github.com/SscSPs/bookkeeping_app/internal/core/ports/repositories"
	"github.com/SscSPs/bookkeeping_app/internal/utils"
)

// SeedAdmin is the credential created when the store starts without any users.
type SeedAdmin struct {
	Username string
	Password string
}

// Option configures a Store.
type Option func(*Store)

// WithClock overrides the clock used for created_at and updated_at stamps.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		if now != nil {
			s.now = now
		}
	}
}

// Store keeps sales, purchases and users in memory and writes each collection
// back to its document after every mutation. In-memory state stays
// authoritative when a write fails.
type Store struct {
	mu        sync.RWMutex
	persister *Persister
	logger    *slog.Logger
	now       func() time.Time

	ids       *IDAllocator
	sales     []domain.Sale
	purchases []domain.Purchase
	users     []domain.User
}

// New loads the collections, seeds the admin user when there are none and
// upgrades any plaintext credentials to bcrypt hashes.
func New(ctx context.Context, persister *Persister, seed SeedAdmin, logger *slog.Logger, opts ...Option) (*Store, error) {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Store{
		persister: persister,
		logger:    logger,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}

	data, err := persister.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load collections: %w", err)
	}
	s.sales = data.Sales
	s.purchases = data.Purchases

	users, upgraded, err := upgradeCredentials(data.Users)
	if err != nil {
		return nil, err
	}
	s.users = users
	s.ids = NewIDAllocator(MaxID(s.sales, s.purchases, s.users))

	if len(s.users) == 0 {
		if err := s.seedAdmin(ctx, seed); err != nil {
			return nil, err
		}
	} else if upgraded > 0 {
		logger.InfoContext(ctx, "Upgraded plaintext credentials", slog.Int("count", upgraded))
		s.saveUsersLocked(ctx)
	}

	logger.InfoContext(ctx, "Store loaded",
		slog.String("data_dir", persister.Dir()),
		slog.Int("sales", len(s.sales)),
		slog.Int("purchases", len(s.purchases)),
		slog.Int("users", len(s.users)),
		slog.Int64("next_id", s.ids.Peek()))
	return s, nil
}

func upgradeCredentials(records []userRecord) ([]domain.User, int, error) {
	users := make([]domain.User, 0, len(records))
	upgraded := 0
	for _, rec := range records {
		u := rec.User
		if u.PasswordHash == "" && rec.Password != "" {
			hash, err := utils.HashPassword(rec.Password)
			if err != nil {
				return nil, 0, fmt.Errorf("hash password for %q: %w", u.Username, err)
			}
			u.PasswordHash = hash
			upgraded++
		}
		users = append(users, u)
	}
	return users, upgraded, nil
}

func (s *Store) seedAdmin(ctx context.Context, seed SeedAdmin) error {
	hash, err := utils.HashPassword(seed.Password)
	if err != nil {
		return fmt.Errorf("hash seed admin password: %w", err)
	}
	admin := domain.User{
		ID:           s.ids.Next(),
		Username:     seed.Username,
		PasswordHash: hash,
		Role:         domain.RoleAdmin,
	}
	s.users = append(s.users, admin)
	s.logger.InfoContext(ctx, "Seeded admin user", slog.String("username", admin.Username), slog.Int64("id", admin.ID))
	s.saveUsersLocked(ctx)
	return nil
}

// Repositories returns the repository ports backed by this store.
func (s *Store) Repositories() portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		SaleRepo:     newSaleRepository(s),
		PurchaseRepo: newPurchaseRepository(s),
		UserRepo:     newUserRepository(s),
	}
}

func (s *Store) saveSalesLocked(ctx context.Context) {
	if err := s.persister.SaveSales(s.sales); err != nil {
		s.logger.ErrorContext(ctx, "Failed to persist sales", slog.String("error", err.Error()))
	}
}

func (s *Store) savePurchasesLocked(ctx context.Context) {
	if err := s.persister.SavePurchases(s.purchases); err != nil {
		s.logger.ErrorContext(ctx, "Failed to persist purchases", slog.String("error", err.Error()))
	}
}

func (s *Store) saveUsersLocked(ctx context.Context) {
	if err := s.persister.SaveUsers(s.users); err != nil {
		s.logger.ErrorContext(ctx, "Failed to persist users", slog.String("error", err.Error()))
	}
}
