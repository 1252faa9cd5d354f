package domain_test

import (
	"testing"
	"time"

	"github.com/SscSPs/bookkeeping_app/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPeriodTotals_AverageSale(t *testing.T) {
	withSales := domain.PeriodTotals{Period: "2024-07", Sales: decimal.NewFromInt(400), SaleCount: 2}
	avg := withSales.AverageSale()
	require.NotNil(t, avg)
	assert.True(t, decimal.NewFromInt(200).Equal(*avg))

	empty := domain.PeriodTotals{Period: "2024-08", Purchases: decimal.NewFromInt(50)}
	assert.Nil(t, empty.AverageSale(), "a month without sales has no average")
	assert.True(t, decimal.NewFromInt(-50).Equal(empty.Profit()))
}

func TestParseReportType(t *testing.T) {
	tests := []struct {
		raw     string
		want    domain.ReportType
		wantErr bool
	}{
		{raw: "", want: domain.ReportAll},
		{raw: "both", want: domain.ReportAll},
		{raw: "ALL", want: domain.ReportAll},
		{raw: "sales", want: domain.ReportSales},
		{raw: "purchase", want: domain.ReportPurchases},
		{raw: "refunds", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := domain.ParseReportType(tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSortTransactions(t *testing.T) {
	cal := domain.NewCalendar(time.UTC)
	at := func(h int) domain.Timestamp {
		return domain.NewTimestamp(time.Date(2024, 7, 10, h, 0, 0, 0, time.UTC))
	}

	entries := []domain.TransactionEntry{
		{Kind: domain.KindSale, ID: 1, Date: "2024-07-10", CreatedAt: at(8)},
		{Kind: domain.KindPurchase, ID: 2, Date: "2024-07-12"},
		{Kind: domain.KindSale, ID: 3, Date: "2024-07-10", CreatedAt: at(12)},
		{Kind: domain.KindPurchase, ID: 4, Date: "garbage"},
		{Kind: domain.KindSale, ID: 5, Date: "2024-07-01"},
	}

	domain.SortTransactions(entries, cal)

	ids := make([]int64, len(entries))
	for i, e := range entries {
		ids[i] = e.ID
	}
	assert.Equal(t, []int64{2, 3, 1, 5, 4}, ids)
}
