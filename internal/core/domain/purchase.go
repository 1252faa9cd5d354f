package domain

import "github.com/shopspring/decimal"

// Purchase is a single purchase from a supplier.
type Purchase struct {
	ID            int64           `json:"id"`
	Supplier      string          `json:"supplier"`
	Category      string          `json:"category"`
	Description   string          `json:"description"`
	Total         decimal.Decimal `json:"total"`
	InvoiceNumber string          `json:"invoice_number,omitempty"`
	Notes         string          `json:"notes,omitempty"`
	PurchaseDate  string          `json:"purchase_date"`
	AuditFields
}

// PurchasePatch carries the fields supplied to an update. Nil fields are left untouched.
type PurchasePatch struct {
	Supplier      *string
	Category      *string
	Description   *string
	Total         *decimal.Decimal
	InvoiceNumber *string
	Notes         *string
	PurchaseDate  *string
}

// Apply merges the non-nil fields of p into pu.
func (pu *Purchase) Apply(p PurchasePatch) {
	if p.Supplier != nil {
		pu.Supplier = *p.Supplier
	}
	if p.Category != nil {
		pu.Category = *p.Category
	}
	if p.Description != nil {
		pu.Description = *p.Description
	}
	if p.Total != nil {
		pu.Total = *p.Total
	}
	if p.InvoiceNumber != nil {
		pu.InvoiceNumber = *p.InvoiceNumber
	}
	if p.Notes != nil {
		pu.Notes = *p.Notes
	}
	if p.PurchaseDate != nil {
		pu.PurchaseDate = *p.PurchaseDate
	}
}
