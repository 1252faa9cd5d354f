package services

import (
	"context"

	"github.com/SscSPs/bookkeeping_app/internal/core/domain"
)

// ReportingService defines the derived views over sales and purchases.
// Every call recomputes from the current contents of the store.
type ReportingService interface {
	// Dashboard returns grand totals, counts and today's figures.
	Dashboard(ctx context.Context) (*domain.DashboardSnapshot, error)

	// MonthlyRollup buckets records by calendar month. months > 0 yields a fixed
	// window ending at the current month; 0 spans the earliest to latest month in the data.
	MonthlyRollup(ctx context.Context, months int) ([]domain.PeriodTotals, error)

	// YearlyRollup returns ten calendar years ending at the current year.
	YearlyRollup(ctx context.Context) ([]domain.PeriodTotals, error)

	// Report filters records by month, year and type.
	Report(ctx context.Context, filter domain.ReportFilter) (*domain.Report, error)

	// RecentTransactions returns sales and purchases merged, newest first.
	// A non-positive limit returns every transaction.
	RecentTransactions(ctx context.Context, limit int) ([]domain.TransactionEntry, error)
}
