package gst_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"gstbook/internal/gst"
)

func TestFinancialYear(t *testing.T) {
	tests := []struct {
		date string
		want string
	}{
		{"2025-03-31", "2024-2025"},
		{"2025-04-01", "2025-2026"},
		{"2025-01-15", "2024-2025"},
		{"2024-12-31", "2024-2025"},
	}
	for _, tt := range tests {
		t.Run(tt.date, func(t *testing.T) {
			d, err := time.Parse(time.DateOnly, tt.date)
			assert.NoError(t, err)
			assert.Equal(t, tt.want, gst.FinancialYear(d))
		})
	}
}

func TestInvoiceNumber(t *testing.T) {
	assert.Equal(t, "INV-2025-000001", gst.InvoiceNumber("", 2025, 1))
	assert.Equal(t, "ACME-2024-000042", gst.InvoiceNumber("ACME", 2024, 42))
	assert.Equal(t, "INV-2024-1234567", gst.InvoiceNumber("INV", 2024, 1234567))
}

func TestValidRate(t *testing.T) {
	for _, r := range []string{"0", "5", "12", "18", "28", "18.00"} {
		assert.True(t, gst.ValidRate(dec(r)), r)
	}
	for _, r := range []string{"7", "-5", "18.5", "100"} {
		assert.False(t, gst.ValidRate(dec(r)), r)
	}
}
