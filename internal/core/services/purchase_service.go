package services

import (
	"context"
	"log/slog"
	"strings"

	"github.com/SscSPs/bookkeeping_app/internal/core/domain"
	portsrepo "github.com/SscSPs/bookkeeping_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/bookkeeping_app/internal/core/ports/services"
	"github.com/SscSPs/bookkeeping_app/internal/dto"
)

type purchaseService struct {
	BaseService
	purchaseRepo portsrepo.PurchaseRepositoryFacade
	cal          domain.Calendar
}

// NewPurchaseService creates a new PurchaseService.
func NewPurchaseService(repo portsrepo.PurchaseRepositoryFacade, cal domain.Calendar) portssvc.PurchaseSvcFacade {
	return &purchaseService{purchaseRepo: repo, cal: cal}
}

var _ portssvc.PurchaseSvcFacade = (*purchaseService)(nil)

func (s *purchaseService) CreatePurchase(ctx context.Context, req dto.CreatePurchaseRequest) (*domain.Purchase, error) {
	supplier, err := requireText("supplier", req.Supplier)
	if err != nil {
		return nil, err
	}
	if err := requirePositive("total", req.Total); err != nil {
		return nil, err
	}
	purchaseDate, err := canonicalDate("purchase_date", req.PurchaseDate, s.cal)
	if err != nil {
		return nil, err
	}

	purchase := req.ToPurchase(purchaseDate)
	purchase.Supplier = supplier
	purchase.Category = strings.TrimSpace(purchase.Category)
	purchase.Description = strings.TrimSpace(purchase.Description)
	purchase.InvoiceNumber = strings.TrimSpace(purchase.InvoiceNumber)

	created, err := s.purchaseRepo.CreatePurchase(ctx, purchase)
	if err != nil {
		s.LogError(ctx, err, "Failed to create purchase")
		return nil, err
	}
	s.LogInfo(ctx, "Purchase created", slog.Int64("purchase_id", created.ID), slog.String("total", created.Total.String()))
	return created, nil
}

func (s *purchaseService) ListPurchases(ctx context.Context) ([]domain.Purchase, error) {
	return s.purchaseRepo.ListPurchases(ctx)
}

func (s *purchaseService) GetPurchaseByID(ctx context.Context, purchaseID int64) (*domain.Purchase, error) {
	return s.purchaseRepo.FindPurchaseByID(ctx, purchaseID)
}

func (s *purchaseService) UpdatePurchase(ctx context.Context, purchaseID int64, req dto.UpdatePurchaseRequest) (*domain.Purchase, error) {
	patch := req.ToPatch()
	if patch.Supplier != nil {
		supplier, err := requireText("supplier", *patch.Supplier)
		if err != nil {
			return nil, err
		}
		patch.Supplier = &supplier
	}
	if patch.Total != nil {
		if err := requirePositive("total", *patch.Total); err != nil {
			return nil, err
		}
	}
	if patch.PurchaseDate != nil {
		purchaseDate, err := canonicalDate("purchase_date", *patch.PurchaseDate, s.cal)
		if err != nil {
			return nil, err
		}
		patch.PurchaseDate = &purchaseDate
	}
	patch.Category = trimPtr(patch.Category)
	patch.Description = trimPtr(patch.Description)
	patch.InvoiceNumber = trimPtr(patch.InvoiceNumber)

	updated, err := s.purchaseRepo.UpdatePurchase(ctx, purchaseID, patch)
	if err != nil {
		return nil, err
	}
	s.LogInfo(ctx, "Purchase updated", slog.Int64("purchase_id", purchaseID))
	return updated, nil
}

func (s *purchaseService) DeletePurchase(ctx context.Context, purchaseID int64) error {
	if _, err := s.purchaseRepo.DeletePurchase(ctx, purchaseID); err != nil {
		return err
	}
	s.LogInfo(ctx, "Purchase deleted", slog.Int64("purchase_id", purchaseID))
	return nil
}
