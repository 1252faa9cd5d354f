package domain

import "github.com/shopspring/decimal"

// Sale is a single sale recorded by the admin.
type Sale struct {
	ID            int64           `json:"id"`
	Customer      string          `json:"customer"`
	Category      string          `json:"category"`
	Description   string          `json:"description"`
	Total         decimal.Decimal `json:"total"`
	PaymentMethod string          `json:"payment_method"`
	Notes         string          `json:"notes,omitempty"`
	SaleDate      string          `json:"sale_date"`
	AuditFields
}

// SalePatch carries the fields supplied to an update. Nil fields are left untouched.
type SalePatch struct {
	Customer      *string
	Category      *string
	Description   *string
	Total         *decimal.Decimal
	PaymentMethod *string
	Notes         *string
	SaleDate      *string
}

// Apply merges the non-nil fields of p into s.
func (s *Sale) Apply(p SalePatch) {
	if p.Customer != nil {
		s.Customer = *p.Customer
	}
	if p.Category != nil {
		s.Category = *p.Category
	}
	if p.Description != nil {
		s.Description = *p.Description
	}
	if p.Total != nil {
		s.Total = *p.Total
	}
	if p.PaymentMethod != nil {
		s.PaymentMethod = *p.PaymentMethod
	}
	if p.Notes != nil {
		s.Notes = *p.Notes
	}
	if p.SaleDate != nil {
		s.SaleDate = *p.SaleDate
	}
}
