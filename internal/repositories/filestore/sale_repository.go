package filestore

import (
	"context"
	"fmt"

	"github.com/SscSPs/bookkeeping_app/internal/apperrors"
	"github.com/SscSPs/bookkeeping_app/internal/core/domain"
	portsrepo "github.com/SscSPs/bookkeeping_app/internal/core/ports/repositories"
)

type saleRepository struct {
	store *Store
}

func newSaleRepository(store *Store) portsrepo.SaleRepositoryFacade {
	return &saleRepository{store: store}
}

// Ensure saleRepository implements portsrepo.SaleRepositoryFacade
var _ portsrepo.SaleRepositoryFacade = (*saleRepository)(nil)

func (r *saleRepository) CreateSale(ctx context.Context, sale domain.Sale) (*domain.Sale, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	sale.ID = s.ids.Next()
	sale.CreatedAt = domain.NewTimestamp(s.now())
	sale.UpdatedAt = nil
	s.sales = append(s.sales, sale)
	s.saveSalesLocked(ctx)

	created := sale
	return &created, nil
}

func (r *saleRepository) ListSales(ctx context.Context) ([]domain.Sale, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Sale, len(s.sales))
	copy(out, s.sales)
	return out, nil
}

func (r *saleRepository) FindSaleByID(ctx context.Context, saleID int64) (*domain.Sale, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	idx := r.indexOf(saleID)
	if idx < 0 {
		return nil, fmt.Errorf("sale %d: %w", saleID, apperrors.ErrNotFound)
	}
	found := s.sales[idx]
	return &found, nil
}

func (r *saleRepository) UpdateSale(ctx context.Context, saleID int64, patch domain.SalePatch) (*domain.Sale, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := r.indexOf(saleID)
	if idx < 0 {
		return nil, fmt.Errorf("sale %d: %w", saleID, apperrors.ErrNotFound)
	}
	s.sales[idx].Apply(patch)
	s.sales[idx].Touch(s.now())
	s.saveSalesLocked(ctx)

	updated := s.sales[idx]
	return &updated, nil
}

func (r *saleRepository) DeleteSale(ctx context.Context, saleID int64) (*domain.Sale, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := r.indexOf(saleID)
	if idx < 0 {
		return nil, fmt.Errorf("sale %d: %w", saleID, apperrors.ErrNotFound)
	}
	removed := s.sales[idx]
	s.sales = append(s.sales[:idx], s.sales[idx+1:]...)
	s.saveSalesLocked(ctx)
	return &removed, nil
}

// indexOf must be called with the store lock held.
func (r *saleRepository) indexOf(saleID int64) int {
	for i := range r.store.sales {
		if r.store.sales[i].ID == saleID {
			return i
		}
	}
	return -1
}
