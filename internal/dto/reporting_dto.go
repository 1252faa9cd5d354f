package dto

import (
	"github.com/SscSPs/bookkeeping_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// MonthlyRollupParams are the query parameters of GET /api/reports/monthly.
type MonthlyRollupParams struct {
	Months int `form:"months,default=12" binding:"min=0,max=120"`
}

// ReportParams are the query parameters of GET /api/reports.
type ReportParams struct {
	Month int    `form:"month" binding:"min=0,max=12"`
	Year  int    `form:"year" binding:"min=0,max=9999"`
	Type  string `form:"type"`
}

// TransactionsParams are the query parameters of GET /api/transactions.
type TransactionsParams struct {
	Limit int `form:"limit,default=10" binding:"min=0"`
}

// MonthlyRollupRow is one month of the monthly rollup.
type MonthlyRollupRow struct {
	Month       string           `json:"month"`
	Sales       decimal.Decimal  `json:"sales"`
	Purchases   decimal.Decimal  `json:"purchases"`
	SaleCount   int              `json:"saleCount"`
	AverageSale *decimal.Decimal `json:"averageSale"` // null when the month has no sales
	Profit      decimal.Decimal  `json:"profit"`
}

// YearlyRollupRow is one year of the yearly rollup.
type YearlyRollupRow struct {
	Year          string           `json:"year"`
	Sales         decimal.Decimal  `json:"sales"`
	Purchases     decimal.Decimal  `json:"purchases"`
	SaleCount     int              `json:"saleCount"`
	PurchaseCount int              `json:"purchaseCount"`
	AverageSale   *decimal.Decimal `json:"averageSale"`
	Profit        decimal.Decimal  `json:"profit"`
}

// ReportFilterResponse echoes the filter a report was built with.
type ReportFilterResponse struct {
	Month int    `json:"month,omitempty"`
	Year  int    `json:"year,omitempty"`
	Type  string `json:"type"`
}

// ReportSummary holds the totals of a filtered report.
type ReportSummary struct {
	TotalSales     decimal.Decimal `json:"totalSales"`
	TotalPurchases decimal.Decimal `json:"totalPurchases"`
	NetProfit      decimal.Decimal `json:"netProfit"`
	SalesCount     int             `json:"salesCount"`
	PurchasesCount int             `json:"purchasesCount"`
}

// ReportResponse is the body of GET /api/reports.
type ReportResponse struct {
	Filter       ReportFilterResponse      `json:"filter"`
	Sales        []domain.Sale             `json:"sales"`
	Purchases    []domain.Purchase         `json:"purchases"`
	Transactions []domain.TransactionEntry `json:"transactions"`
	Summary      ReportSummary             `json:"summary"`
}

// ToMonthlyRollupResponse converts rollup buckets to response rows.
func ToMonthlyRollupResponse(buckets []domain.PeriodTotals) []MonthlyRollupRow {
	rows := make([]MonthlyRollupRow, len(buckets))
	for i, b := range buckets {
		rows[i] = MonthlyRollupRow{
			Month:       b.Period,
			Sales:       b.Sales,
			Purchases:   b.Purchases,
			SaleCount:   b.SaleCount,
			AverageSale: b.AverageSale(),
			Profit:      b.Profit(),
		}
	}
	return rows
}

func ToYearlyRollupResponse(buckets []domain.PeriodTotals) []YearlyRollupRow {
	rows := make([]YearlyRollupRow, len(buckets))
	for i, b := range buckets {
		rows[i] = YearlyRollupRow{
			Year:          b.Period,
			Sales:         b.Sales,
			Purchases:     b.Purchases,
			SaleCount:     b.SaleCount,
			PurchaseCount: b.PurchaseCount,
			AverageSale:   b.AverageSale(),
			Profit:        b.Profit(),
		}
	}
	return rows
}

// ToReportResponse converts a domain report. Collections are never rendered as null.
func ToReportResponse(r *domain.Report) ReportResponse {
	resp := ReportResponse{
		Filter: ReportFilterResponse{
			Month: r.Filter.Month,
			Year:  r.Filter.Year,
			Type:  string(r.Filter.Type),
		},
		Sales:        r.Sales,
		Purchases:    r.Purchases,
		Transactions: r.Transactions,
		Summary: ReportSummary{
			TotalSales:     r.TotalSales,
			TotalPurchases: r.TotalPurchases,
			NetProfit:      r.NetProfit,
			SalesCount:     len(r.Sales),
			PurchasesCount: len(r.Purchases),
		},
	}
	if resp.Sales == nil {
		resp.Sales = []domain.Sale{}
	}
	if resp.Purchases == nil {
		resp.Purchases = []domain.Purchase{}
	}
	if resp.Transactions == nil {
		resp.Transactions = []domain.TransactionEntry{}
	}
	return resp
}

// HealthResponse is the body of GET /api/health.
type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}
