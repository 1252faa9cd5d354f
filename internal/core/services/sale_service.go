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

type saleService struct {
	BaseService
	saleRepo portsrepo.SaleRepositoryFacade
	cal      domain.Calendar
}

// NewSaleService creates a new SaleService.
func NewSaleService(repo portsrepo.SaleRepositoryFacade, cal domain.Calendar) portssvc.SaleSvcFacade {
	return &saleService{saleRepo: repo, cal: cal}
}

var _ portssvc.SaleSvcFacade = (*saleService)(nil)

func (s *saleService) CreateSale(ctx context.Context, req dto.CreateSaleRequest) (*domain.Sale, error) {
	customer, err := requireText("customer", req.Customer)
	if err != nil {
		return nil, err
	}
	if err := requirePositive("total", req.Total); err != nil {
		return nil, err
	}
	saleDate, err := canonicalDate("sale_date", req.SaleDate, s.cal)
	if err != nil {
		return nil, err
	}

	sale := req.ToSale(saleDate)
	sale.Customer = customer
	sale.Category = strings.TrimSpace(sale.Category)
	sale.Description = strings.TrimSpace(sale.Description)
	sale.PaymentMethod = strings.TrimSpace(sale.PaymentMethod)

	created, err := s.saleRepo.CreateSale(ctx, sale)
	if err != nil {
		s.LogError(ctx, err, "Failed to create sale")
		return nil, err
	}
	s.LogInfo(ctx, "Sale created", slog.Int64("sale_id", created.ID), slog.String("total", created.Total.String()))
	return created, nil
}

func (s *saleService) ListSales(ctx context.Context) ([]domain.Sale, error) {
	return s.saleRepo.ListSales(ctx)
}

func (s *saleService) GetSaleByID(ctx context.Context, saleID int64) (*domain.Sale, error) {
	return s.saleRepo.FindSaleByID(ctx, saleID)
}

func (s *saleService) UpdateSale(ctx context.Context, saleID int64, req dto.UpdateSaleRequest) (*domain.Sale, error) {
	patch := req.ToPatch()
	if patch.Customer != nil {
		customer, err := requireText("customer", *patch.Customer)
		if err != nil {
			return nil, err
		}
		patch.Customer = &customer
	}
	if patch.Total != nil {
		if err := requirePositive("total", *patch.Total); err != nil {
			return nil, err
		}
	}
	if patch.SaleDate != nil {
		saleDate, err := canonicalDate("sale_date", *patch.SaleDate, s.cal)
		if err != nil {
			return nil, err
		}
		patch.SaleDate = &saleDate
	}
	patch.Category = trimPtr(patch.Category)
	patch.Description = trimPtr(patch.Description)
	patch.PaymentMethod = trimPtr(patch.PaymentMethod)

	updated, err := s.saleRepo.UpdateSale(ctx, saleID, patch)
	if err != nil {
		return nil, err
	}
	s.LogInfo(ctx, "Sale updated", slog.Int64("sale_id", saleID))
	return updated, nil
}

func (s *saleService) DeleteSale(ctx context.Context, saleID int64) error {
	if _, err := s.saleRepo.DeleteSale(ctx, saleID); err != nil {
		return err
	}
	s.LogInfo(ctx, "Sale deleted", slog.Int64("sale_id", saleID))
	return nil
}
