package repositories

import (
	"context"

	"github.com/SscSPs/bookkeeping_app/internal/core/domain"
)

// PurchaseReader defines read operations for purchases.
type PurchaseReader interface {
	// ListPurchases returns every purchase in insertion order, oldest first.
	ListPurchases(ctx context.Context) ([]domain.Purchase, error)

	// FindPurchaseByID retrieves a specific purchase by its ID.
	FindPurchaseByID(ctx context.Context, purchaseID int64) (*domain.Purchase, error)
}

// PurchaseWriter defines write operations for purchases.
type PurchaseWriter interface {
	CreatePurchase(ctx context.Context, purchase domain.Purchase) (*domain.Purchase, error)
	UpdatePurchase(ctx context.Context, purchaseID int64, patch domain.PurchasePatch) (*domain.Purchase, error)
	DeletePurchase(ctx context.Context, purchaseID int64) (*domain.Purchase, error)
}

// PurchaseRepositoryFacade combines all purchase-related repository interfaces
type PurchaseRepositoryFacade interface {
	PurchaseReader
	PurchaseWriter
}
