package domain

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

// TransactionKind distinguishes sales from purchases in a combined list.
type TransactionKind string

const (
	KindSale     TransactionKind = "sale"
	KindPurchase TransactionKind = "purchase"
)

// TransactionEntry is a sale or purchase flattened for a combined listing.
type TransactionEntry struct {
	Kind        TransactionKind `json:"type"`
	ID          int64           `json:"id"`
	Party       string          `json:"party"`
	Category    string          `json:"category"`
	Description string          `json:"description"`
	Total       decimal.Decimal `json:"total"`
	Date        string          `json:"date"`
	CreatedAt   Timestamp       `json:"created_at"`
}

// SaleEntry flattens a sale.
func SaleEntry(s Sale) TransactionEntry {
	return TransactionEntry{
		Kind:        KindSale,
		ID:          s.ID,
		Party:       s.Customer,
		Category:    s.Category,
		Description: s.Description,
		Total:       s.Total,
		Date:        s.SaleDate,
		CreatedAt:   s.CreatedAt,
	}
}

// PurchaseEntry flattens a purchase.
func PurchaseEntry(p Purchase) TransactionEntry {
	return TransactionEntry{
		Kind:        KindPurchase,
		ID:          p.ID,
		Party:       p.Supplier,
		Category:    p.Category,
		Description: p.Description,
		Total:       p.Total,
		Date:        p.PurchaseDate,
		CreatedAt:   p.CreatedAt,
	}
}

// SortTransactions orders entries newest first. An entry's sort key is its
// CreatedAt, or its transaction date in cal when CreatedAt is absent; entries
// with neither sort last. Equal keys keep their input order.
func SortTransactions(entries []TransactionEntry, cal Calendar) {
	keys := make([]time.Time, len(entries))
	for i, e := range entries {
		keys[i] = sortKey(e, cal)
	}
	idx := make([]int, len(entries))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(i, j int) bool {
		return keys[idx[i]].After(keys[idx[j]])
	})
	sorted := make([]TransactionEntry, len(entries))
	for i, k := range idx {
		sorted[i] = entries[k]
	}
	copy(entries, sorted)
}

func sortKey(e TransactionEntry, cal Calendar) time.Time {
	if !e.CreatedAt.IsZero() {
		return e.CreatedAt.Time
	}
	if day, ok := cal.Normalize(e.Date); ok {
		return day
	}
	return time.Time{}
}
