package services

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/SscSPs/bookkeeping_app/internal/core/domain"
	portsrepo "github.com/SscSPs/bookkeeping_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/bookkeeping_app/internal/core/ports/services"
	"github.com/SscSPs/bookkeeping_app/internal/utils/accounting"
	"github.com/shopspring/decimal"
)

// yearlyWindow is the number of calendar years in the yearly rollup.
const yearlyWindow = 10

// reportingService derives every figure from a fresh read of the repositories.
type reportingService struct {
	BaseService
	saleRepo     portsrepo.SaleReader
	purchaseRepo portsrepo.PurchaseReader
	cal          domain.Calendar
}

// NewReportingService creates a new reporting service.
func NewReportingService(saleRepo portsrepo.SaleReader, purchaseRepo portsrepo.PurchaseReader, cal domain.Calendar) portssvc.ReportingService {
	return &reportingService{
		saleRepo:     saleRepo,
		purchaseRepo: purchaseRepo,
		cal:          cal,
	}
}

var _ portssvc.ReportingService = (*reportingService)(nil)

func (s *reportingService) snapshot(ctx context.Context) ([]domain.Sale, []domain.Purchase, error) {
	sales, err := s.saleRepo.ListSales(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list sales for report")
		return nil, nil, fmt.Errorf("failed to list sales: %w", err)
	}
	purchases, err := s.purchaseRepo.ListPurchases(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list purchases for report")
		return nil, nil, fmt.Errorf("failed to list purchases: %w", err)
	}
	s.LogDebug(ctx, "Aggregating records", slog.Int("sales", len(sales)), slog.Int("purchases", len(purchases)))
	return sales, purchases, nil
}

func (s *reportingService) Dashboard(ctx context.Context) (*domain.DashboardSnapshot, error) {
	sales, purchases, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}

	today := s.cal.Today()
	totalSales := accounting.SumSales(sales)
	totalPurchases := accounting.SumPurchases(purchases)
	return &domain.DashboardSnapshot{
		TotalSales:     totalSales,
		TotalPurchases: totalPurchases,
		TodaySales:     accounting.SumSalesOn(sales, today, s.cal),
		TodayPurchases: accounting.SumPurchasesOn(purchases, today, s.cal),
		SalesCount:     len(sales),
		PurchasesCount: len(purchases),
		NetProfit:      totalSales.Sub(totalPurchases),
	}, nil
}

func (s *reportingService) MonthlyRollup(ctx context.Context, months int) ([]domain.PeriodTotals, error) {
	if months < 0 {
		return nil, validationErrorf("months must not be negative")
	}
	sales, purchases, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	buckets := accounting.BucketBy(domain.MonthLayout, sales, purchases, s.cal)

	var keys []string
	if months > 0 {
		now := s.cal.Now()
		end := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, s.cal.Location())
		keys = accounting.MonthKeys(end.AddDate(0, -(months - 1), 0), end)
	} else {
		present := buckets.Keys()
		if len(present) == 0 {
			return []domain.PeriodTotals{}, nil
		}
		first, errFirst := time.Parse(domain.MonthLayout, present[0])
		last, errLast := time.Parse(domain.MonthLayout, present[len(present)-1])
		if errFirst != nil || errLast != nil {
			return nil, fmt.Errorf("unexpected month key range %q..%q", present[0], present[len(present)-1])
		}
		keys = accounting.MonthKeys(first, last)
	}

	rows := make([]domain.PeriodTotals, len(keys))
	for i, key := range keys {
		rows[i] = buckets.Lookup(key)
	}
	return rows, nil
}

func (s *reportingService) YearlyRollup(ctx context.Context) ([]domain.PeriodTotals, error) {
	sales, purchases, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	buckets := accounting.BucketBy("2006", sales, purchases, s.cal)

	current := s.cal.Now().Year()
	rows := make([]domain.PeriodTotals, 0, yearlyWindow)
	for year := current - yearlyWindow + 1; year <= current; year++ {
		rows = append(rows, buckets.Lookup(strconv.Itoa(year)))
	}
	return rows, nil
}

func (s *reportingService) Report(ctx context.Context, filter domain.ReportFilter) (*domain.Report, error) {
	if filter.Month < 0 || filter.Month > 12 {
		return nil, validationErrorf("month must be between 1 and 12")
	}
	if filter.Year < 0 {
		return nil, validationErrorf("year must not be negative")
	}
	if filter.Type == "" {
		filter.Type = domain.ReportAll
	}

	sales, purchases, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}

	report := &domain.Report{
		Filter:         filter,
		Sales:          []domain.Sale{},
		Purchases:      []domain.Purchase{},
		TotalSales:     decimal.Zero,
		TotalPurchases: decimal.Zero,
	}
	periodFiltered := filter.Month != 0 || filter.Year != 0
	inPeriod := func(raw string) bool {
		if !periodFiltered {
			return true
		}
		day, ok := s.cal.Normalize(raw)
		return ok && accounting.MatchesPeriod(day, filter.Month, filter.Year)
	}

	var entries []domain.TransactionEntry
	if filter.Type.IncludesSales() {
		for _, sale := range sales {
			if !inPeriod(sale.SaleDate) {
				continue
			}
			report.Sales = append(report.Sales, sale)
			entries = append(entries, domain.SaleEntry(sale))
		}
	}
	if filter.Type.IncludesPurchases() {
		for _, purchase := range purchases {
			if !inPeriod(purchase.PurchaseDate) {
				continue
			}
			report.Purchases = append(report.Purchases, purchase)
			entries = append(entries, domain.PurchaseEntry(purchase))
		}
	}

	report.TotalSales = accounting.SumSales(report.Sales)
	report.TotalPurchases = accounting.SumPurchases(report.Purchases)
	report.NetProfit = report.TotalSales.Sub(report.TotalPurchases)
	domain.SortTransactions(entries, s.cal)
	report.Transactions = entries
	return report, nil
}

func (s *reportingService) RecentTransactions(ctx context.Context, limit int) ([]domain.TransactionEntry, error) {
	sales, purchases, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}

	entries := make([]domain.TransactionEntry, 0, len(sales)+len(purchases))
	for _, sale := range sales {
		entries = append(entries, domain.SaleEntry(sale))
	}
	for _, purchase := range purchases {
		entries = append(entries, domain.PurchaseEntry(purchase))
	}
	domain.SortTransactions(entries, s.cal)

	if limit > 0 && len(entries) > limit {
		entries = entries[:limit]
	}
	return entries, nil
}
