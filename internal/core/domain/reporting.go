package domain

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// DashboardSnapshot holds the headline figures shown on the dashboard.
type DashboardSnapshot struct {
	TotalSales     decimal.Decimal `json:"totalSales"`
	TotalPurchases decimal.Decimal `json:"totalPurchases"`
	TodaySales     decimal.Decimal `json:"todaySales"`
	TodayPurchases decimal.Decimal `json:"todayPurchases"`
	SalesCount     int             `json:"salesCount"`
	PurchasesCount int             `json:"purchasesCount"`
	NetProfit      decimal.Decimal `json:"netProfit"`
}

// PeriodTotals is one month or year bucket of a rollup.
type PeriodTotals struct {
	Period        string
	Sales         decimal.Decimal
	Purchases     decimal.Decimal
	SaleCount     int
	PurchaseCount int
}

// AverageSale returns Sales / SaleCount, or nil when the period has no sales.
// A nil average means "no data" and must not be charted as zero.
func (p PeriodTotals) AverageSale() *decimal.Decimal {
	if p.SaleCount == 0 {
		return nil
	}
	avg := p.Sales.Div(decimal.NewFromInt(int64(p.SaleCount)))
	return &avg
}

// Profit returns Sales minus Purchases for the period.
func (p PeriodTotals) Profit() decimal.Decimal {
	return p.Sales.Sub(p.Purchases)
}

// ReportType selects which collections a report includes.
type ReportType string

const (
	ReportSales     ReportType = "sales"
	ReportPurchases ReportType = "purchases"
	ReportAll       ReportType = "all"
)

// ParseReportType maps a query value to a ReportType. Empty and "both" mean ReportAll.
func ParseReportType(raw string) (ReportType, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", "all", "both":
		return ReportAll, nil
	case "sales", "sale":
		return ReportSales, nil
	case "purchases", "purchase":
		return ReportPurchases, nil
	default:
		return "", fmt.Errorf("unknown report type %q", raw)
	}
}

// IncludesSales reports whether sales belong in the report.
func (t ReportType) IncludesSales() bool {
	return t == ReportSales || t == ReportAll || t == ""
}

// IncludesPurchases reports whether purchases belong in the report.
func (t ReportType) IncludesPurchases() bool {
	return t == ReportPurchases || t == ReportAll || t == ""
}

// ReportFilter narrows a report. Zero Month or Year means "any".
type ReportFilter struct {
	Month int
	Year  int
	Type  ReportType
}

// Report is the result of applying a ReportFilter.
type Report struct {
	Filter         ReportFilter
	Sales          []Sale
	Purchases      []Purchase
	TotalSales     decimal.Decimal
	TotalPurchases decimal.Decimal
	NetProfit      decimal.Decimal
	Transactions   []TransactionEntry
}
