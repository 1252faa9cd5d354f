package services

import (
	"context"

	"github.com/SscSPs/bookkeeping_app/internal/core/domain"
	"github.com/SscSPs/bookkeeping_app/internal/dto"
)

// SaleReaderSvc defines read operations for sales
type SaleReaderSvc interface {
	// ListSales returns all sales in insertion order.
	ListSales(ctx context.Context) ([]domain.Sale, error)

	// GetSaleByID retrieves a sale by ID.
	GetSaleByID(ctx context.Context, saleID int64) (*domain.Sale, error)
}

// SaleWriterSvc defines write operations for sales
type SaleWriterSvc interface {
	// CreateSale validates the request and records a new sale.
	CreateSale(ctx context.Context, req dto.CreateSaleRequest) (*domain.Sale, error)

	// UpdateSale validates the supplied fields and merges them into the stored sale.
	UpdateSale(ctx context.Context, saleID int64, req dto.UpdateSaleRequest) (*domain.Sale, error)

	// DeleteSale removes a sale.
	DeleteSale(ctx context.Context, saleID int64) error
}

// SaleSvcFacade combines all sale-related service interfaces
type SaleSvcFacade interface {
	SaleReaderSvc
	SaleWriterSvc
}
