package services

import (
	"context"

	"github.com/SscSPs/bookkeeping_app/internal/core/domain"
	"github.com/SscSPs/bookkeeping_app/internal/dto"
)

// PurchaseReaderSvc defines read operations for purchases
type PurchaseReaderSvc interface {
	ListPurchases(ctx context.Context) ([]domain.Purchase, error)
	GetPurchaseByID(ctx context.Context, purchaseID int64) (*domain.Purchase, error)
}

// PurchaseWriterSvc defines write operations for purchases
type PurchaseWriterSvc interface {
	CreatePurchase(ctx context.Context, req dto.CreatePurchaseRequest) (*domain.Purchase, error)
	UpdatePurchase(ctx context.Context, purchaseID int64, req dto.UpdatePurchaseRequest) (*domain.Purchase, error)
	DeletePurchase(ctx context.Context, purchaseID int64) error
}

// PurchaseSvcFacade combines all purchase-related service interfaces
type PurchaseSvcFacade interface {
	PurchaseReaderSvc
	PurchaseWriterSvc
}
