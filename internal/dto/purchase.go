package dto

import (
	"github.com/SscSPs/bookkeeping_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreatePurchaseRequest defines the data needed to record a purchase.
type CreatePurchaseRequest struct {
	Supplier      string          `json:"supplier" binding:"required"`
	Category      string          `json:"category"`
	Description   string          `json:"description"`
	Total         decimal.Decimal `json:"total" binding:"required,gt=0" swaggertype:"number"`
	InvoiceNumber string          `json:"invoice_number"`
	Notes         string          `json:"notes"`
	PurchaseDate  string          `json:"purchase_date" binding:"required,calendar_date" example:"2024-07-14"`
}

// UpdatePurchaseRequest carries a partial purchase.
type UpdatePurchaseRequest struct {
	Supplier      *string          `json:"supplier" binding:"omitempty,min=1"`
	Category      *string          `json:"category"`
	Description   *string          `json:"description"`
	Total         *decimal.Decimal `json:"total" binding:"omitempty,gt=0" swaggertype:"number"`
	InvoiceNumber *string          `json:"invoice_number"`
	Notes         *string          `json:"notes"`
	PurchaseDate  *string          `json:"purchase_date" binding:"omitempty,calendar_date"`
}

func (r CreatePurchaseRequest) ToPurchase(purchaseDate string) domain.Purchase {
	return domain.Purchase{
		Supplier:      r.Supplier,
		Category:      r.Category,
		Description:   r.Description,
		Total:         r.Total,
		InvoiceNumber: r.InvoiceNumber,
		Notes:         r.Notes,
		PurchaseDate:  purchaseDate,
	}
}

func (r UpdatePurchaseRequest) ToPatch() domain.PurchasePatch {
	return domain.PurchasePatch{
		Supplier:      r.Supplier,
		Category:      r.Category,
		Description:   r.Description,
		Total:         r.Total,
		InvoiceNumber: r.InvoiceNumber,
		Notes:         r.Notes,
		PurchaseDate:  r.PurchaseDate,
	}
}
