package repositories

import (
	"context"

	"github.com/SscSPs/bookkeeping_app/internal/core/domain"
)

// SaleReader defines read operations for sales.
type SaleReader interface {
	// ListSales returns every sale in insertion order, oldest first.
	ListSales(ctx context.Context) ([]domain.Sale, error)

	// FindSaleByID retrieves a specific sale by its ID.
	FindSaleByID(ctx context.Context, saleID int64) (*domain.Sale, error)
}

// SaleWriter defines write operations for sales.
type SaleWriter interface {
	// CreateSale assigns an ID and creation stamp to sale, appends it and persists the collection.
	CreateSale(ctx context.Context, sale domain.Sale) (*domain.Sale, error)

	// UpdateSale merges patch into the stored sale and stamps updated_at.
	UpdateSale(ctx context.Context, saleID int64, patch domain.SalePatch) (*domain.Sale, error)

	// DeleteSale removes the sale and returns it.
	DeleteSale(ctx context.Context, saleID int64) (*domain.Sale, error)
}

// SaleRepositoryFacade combines all sale-related repository interfaces
type SaleRepositoryFacade interface {
	SaleReader
	SaleWriter
}
