package filestore

import (
	"context"
	"fmt"

	"github.com/SscSPs/bookkeeping_app/internal/apperrors"
	"github.com/SscSPs/bookkeeping_app/internal/core/domain"
	portsrepo "github.com/SscSPs/bookkeeping_app/internal/core/ports/repositories"
)

type purchaseRepository struct {
	store *Store
}

func newPurchaseRepository(store *Store) portsrepo.PurchaseRepositoryFacade {
	return &purchaseRepository{store: store}
}

// Ensure purchaseRepository implements portsrepo.PurchaseRepositoryFacade
var _ portsrepo.PurchaseRepositoryFacade = (*purchaseRepository)(nil)

func (r *purchaseRepository) CreatePurchase(ctx context.Context, purchase domain.Purchase) (*domain.Purchase, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	purchase.ID = s.ids.Next()
	purchase.CreatedAt = domain.NewTimestamp(s.now())
	purchase.UpdatedAt = nil
	s.purchases = append(s.purchases, purchase)
	s.savePurchasesLocked(ctx)

	created := purchase
	return &created, nil
}

func (r *purchaseRepository) ListPurchases(ctx context.Context) ([]domain.Purchase, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Purchase, len(s.purchases))
	copy(out, s.purchases)
	return out, nil
}

func (r *purchaseRepository) FindPurchaseByID(ctx context.Context, purchaseID int64) (*domain.Purchase, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	idx := r.indexOf(purchaseID)
	if idx < 0 {
		return nil, fmt.Errorf("purchase %d: %w", purchaseID, apperrors.ErrNotFound)
	}
	found := s.purchases[idx]
	return &found, nil
}

func (r *purchaseRepository) UpdatePurchase(ctx context.Context, purchaseID int64, patch domain.PurchasePatch) (*domain.Purchase, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := r.indexOf(purchaseID)
	if idx < 0 {
		return nil, fmt.Errorf("purchase %d: %w", purchaseID, apperrors.ErrNotFound)
	}
	s.purchases[idx].Apply(patch)
	s.purchases[idx].Touch(s.now())
	s.savePurchasesLocked(ctx)

	updated := s.purchases[idx]
	return &updated, nil
}

func (r *purchaseRepository) DeletePurchase(ctx context.Context, purchaseID int64) (*domain.Purchase, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := r.indexOf(purchaseID)
	if idx < 0 {
		return nil, fmt.Errorf("purchase %d: %w", purchaseID, apperrors.ErrNotFound)
	}
	removed := s.purchases[idx]
	s.purchases = append(s.purchases[:idx], s.purchases[idx+1:]...)
	s.savePurchasesLocked(ctx)
	return &removed, nil
}

// indexOf must be called with the store lock held.
func (r *purchaseRepository) indexOf(purchaseID int64) int {
	for i := range r.store.purchases {
		if r.store.purchases[i].ID == purchaseID {
			return i
		}
	}
	return -1
}
