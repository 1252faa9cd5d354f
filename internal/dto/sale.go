package dto

import (
	"github.com/SscSPs/bookkeeping_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateSaleRequest defines the data needed to record a sale.
type CreateSaleRequest struct {
	Customer      string          `json:"customer" binding:"required"`
	Category      string          `json:"category"`
	Description   string          `json:"description"`
	Total         decimal.Decimal `json:"total" binding:"required,gt=0" swaggertype:"number"`
	PaymentMethod string          `json:"payment_method"`
	Notes         string          `json:"notes"`
	SaleDate      string          `json:"sale_date" binding:"required,calendar_date" example:"2024-07-15"`
}

// UpdateSaleRequest carries a partial sale. Omitted fields keep their stored value.
type UpdateSaleRequest struct {
	Customer      *string          `json:"customer" binding:"omitempty,min=1"`
	Category      *string          `json:"category"`
	Description   *string          `json:"description"`
	Total         *decimal.Decimal `json:"total" binding:"omitempty,gt=0" swaggertype:"number"`
	PaymentMethod *string          `json:"payment_method"`
	Notes         *string          `json:"notes"`
	SaleDate      *string          `json:"sale_date" binding:"omitempty,calendar_date"`
}

// ToSale builds the domain record for a create request. saleDate is the canonical date.
func (r CreateSaleRequest) ToSale(saleDate string) domain.Sale {
	return domain.Sale{
		Customer:      r.Customer,
		Category:      r.Category,
		Description:   r.Description,
		Total:         r.Total,
		PaymentMethod: r.PaymentMethod,
		Notes:         r.Notes,
		SaleDate:      saleDate,
	}
}

// ToPatch converts the request into a domain patch.
func (r UpdateSaleRequest) ToPatch() domain.SalePatch {
	return domain.SalePatch{
		Customer:      r.Customer,
		Category:      r.Category,
		Description:   r.Description,
		Total:         r.Total,
		PaymentMethod: r.PaymentMethod,
		Notes:         r.Notes,
		SaleDate:      r.SaleDate,
	}
}

// CreatedResponse is returned after a record is created.
type CreatedResponse struct {
	Success bool  `json:"success"`
	ID      int64 `json:"id"`
}

// SuccessResponse acknowledges an update or delete.
type SuccessResponse struct {
	Success bool `json:"success"`
}
