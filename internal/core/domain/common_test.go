package domain_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/SscSPs/bookkeeping_app/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimestamp_RoundTrip(t *testing.T) {
	ts := domain.NewTimestamp(time.Date(2024, 7, 15, 10, 30, 0, 123, time.UTC))

	data, err := json.Marshal(ts)
	require.NoError(t, err)

	var decoded domain.Timestamp
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.True(t, ts.Equal(decoded.Time))
}

func TestTimestamp_LenientDecode(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantZero bool
	}{
		{name: "null", input: `null`, wantZero: true},
		{name: "empty string", input: `""`, wantZero: true},
		{name: "garbage", input: `"yesterday-ish"`, wantZero: true},
		{name: "number", input: `12345`, wantZero: true},
		{name: "rfc3339", input: `"2024-07-15T10:30:00Z"`, wantZero: false},
		{name: "no zone", input: `"2024-07-15 10:30:00"`, wantZero: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var ts domain.Timestamp
			require.NoError(t, json.Unmarshal([]byte(tt.input), &ts))
			assert.Equal(t, tt.wantZero, ts.IsZero())
		})
	}
}

func TestTimestamp_ZeroMarshalsAsNull(t *testing.T) {
	data, err := json.Marshal(domain.Timestamp{})
	require.NoError(t, err)
	assert.Equal(t, "null", string(data))
}

func TestSale_ApplyMergesOnlySuppliedFields(t *testing.T) {
	sale := domain.Sale{
		ID:            7,
		Customer:      "Asha",
		Category:      "Retail",
		Description:   "Two chairs",
		PaymentMethod: "cash",
		SaleDate:      "2024-07-01",
	}
	customer := "Ravi"
	notes := "paid in full"

	sale.Apply(domain.SalePatch{Customer: &customer, Notes: &notes})

	assert.Equal(t, int64(7), sale.ID)
	assert.Equal(t, "Ravi", sale.Customer)
	assert.Equal(t, "paid in full", sale.Notes)
	assert.Equal(t, "Retail", sale.Category)
	assert.Equal(t, "Two chairs", sale.Description)
	assert.Equal(t, "2024-07-01", sale.SaleDate)
}

func TestAuditFields_Touch(t *testing.T) {
	var a domain.AuditFields
	now := time.Date(2024, 7, 15, 9, 0, 0, 0, time.UTC)

	a.Touch(now)

	require.NotNil(t, a.UpdatedAt)
	assert.True(t, now.Equal(a.UpdatedAt.Time))
}
