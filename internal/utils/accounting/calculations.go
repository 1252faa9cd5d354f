package accounting

import (
	"sort"
	"time"

	"github.com/SscSPs/bookkeeping_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// SumSales adds up the total of every sale, dated or not.
func SumSales(sales []domain.Sale) decimal.Decimal {
	sum := decimal.Zero
	for _, s := range sales {
		sum = sum.Add(s.Total)
	}
	return sum
}

// SumPurchases adds up the total of every purchase, dated or not.
func SumPurchases(purchases []domain.Purchase) decimal.Decimal {
	sum := decimal.Zero
	for _, p := range purchases {
		sum = sum.Add(p.Total)
	}
	return sum
}

// SumSalesOn adds up sales whose date normalises to day (YYYY-MM-DD).
// Sales with an unparseable date are skipped.
func SumSalesOn(sales []domain.Sale, day string, cal domain.Calendar) decimal.Decimal {
	sum := decimal.Zero
	for _, s := range sales {
		if d, ok := cal.Canonical(s.SaleDate); ok && d == day {
			sum = sum.Add(s.Total)
		}
	}
	return sum
}

// SumPurchasesOn adds up purchases whose date normalises to day (YYYY-MM-DD).
func SumPurchasesOn(purchases []domain.Purchase, day string, cal domain.Calendar) decimal.Decimal {
	sum := decimal.Zero
	for _, p := range purchases {
		if d, ok := cal.Canonical(p.PurchaseDate); ok && d == day {
			sum = sum.Add(p.Total)
		}
	}
	return sum
}

// Buckets maps a period key to its running totals.
type Buckets map[string]*domain.PeriodTotals

func (b Buckets) get(key string) *domain.PeriodTotals {
	bucket, ok := b[key]
	if !ok {
		bucket = &domain.PeriodTotals{Period: key, Sales: decimal.Zero, Purchases: decimal.Zero}
		b[key] = bucket
	}
	return bucket
}

// Keys returns the bucket keys in ascending order.
func (b Buckets) Keys() []string {
	keys := make([]string, 0, len(b))
	for k := range b {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Lookup returns the totals for key, or an empty bucket when nothing was recorded.
func (b Buckets) Lookup(key string) domain.PeriodTotals {
	if bucket, ok := b[key]; ok {
		return *bucket
	}
	return domain.PeriodTotals{Period: key, Sales: decimal.Zero, Purchases: decimal.Zero}
}

// BucketBy groups sales and purchases by the key layout applies to their
// normalised date (domain.MonthLayout, "2006", ...). Undated records are skipped.
func BucketBy(layout string, sales []domain.Sale, purchases []domain.Purchase, cal domain.Calendar) Buckets {
	buckets := Buckets{}
	for _, s := range sales {
		day, ok := cal.Normalize(s.SaleDate)
		if !ok {
			continue
		}
		bucket := buckets.get(day.Format(layout))
		bucket.Sales = bucket.Sales.Add(s.Total)
		bucket.SaleCount++
	}
	for _, p := range purchases {
		day, ok := cal.Normalize(p.PurchaseDate)
		if !ok {
			continue
		}
		bucket := buckets.get(day.Format(layout))
		bucket.Purchases = bucket.Purchases.Add(p.Total)
		bucket.PurchaseCount++
	}
	return buckets
}

// MonthKeys lists every YYYY-MM from the month of from to the month of to, inclusive.
func MonthKeys(from, to time.Time) []string {
	start := time.Date(from.Year(), from.Month(), 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(to.Year(), to.Month(), 1, 0, 0, 0, 0, time.UTC)
	var keys []string
	for m := start; !m.After(end); m = m.AddDate(0, 1, 0) {
		keys = append(keys, m.Format(domain.MonthLayout))
	}
	return keys
}

// MatchesPeriod reports whether day falls in the given month and year.
// A zero month or year matches any value.
func MatchesPeriod(day time.Time, month, year int) bool {
	if month != 0 && int(day.Month()) != month {
		return false
	}
	if year != 0 && day.Year() != year {
		return false
	}
	return true
}
