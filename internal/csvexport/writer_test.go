package csvexport

import (
	"bytes"
	"encoding/csv"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gstbook/internal/domain"
)

func readRows(t *testing.T, buf *bytes.Buffer) [][]string {
	t.Helper()
	rows, err := csv.NewReader(buf).ReadAll()
	require.NoError(t, err)
	return rows
}

func sampleInvoice() domain.Invoice {
	paidOn := time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)
	return domain.Invoice{
		ID:             uuid.New(),
		InvoiceNumber:  "INV-2025-000001",
		Date:           time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC),
		Status:         domain.InvoiceStatusPaid,
		PaidOn:         &paidOn,
		Subtotal:       decimal.RequireFromString("10000.5"),
		CGST:           decimal.RequireFromString("900.25"),
		SGST:           decimal.RequireFromString("900.25"),
		IGST:           decimal.Zero,
		Total:          decimal.RequireFromString("11801"),
		BuyerName:      "Buyer Inc",
		BuyerGSTIN:     "29FGHIJ5678K2Z3",
		BuyerStateCode: "29",
	}
}

func TestWriteHeader(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf, LayoutInvoices)
	require.NoError(t, w.WriteHeader())
	w.Flush()
	require.NoError(t, w.Error())

	rows := readRows(t, &buf)
	require.Len(t, rows, 1)
	assert.Len(t, rows[0], 12)
	assert.Equal(t, "Invoice Number", rows[0][0])
	assert.Equal(t, "Customer", rows[0][2])
	assert.Equal(t, "Paid On", rows[0][11])
}

func TestWriteHeader_CustomerLayout(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf, LayoutCustomerInvoices)
	require.NoError(t, w.WriteHeader())
	w.Flush()

	rows := readRows(t, &buf)
	require.Len(t, rows, 1)
	assert.Len(t, rows[0], 9)
	assert.NotContains(t, rows[0], "Customer")
	assert.NotContains(t, rows[0], "GSTIN")
}

func TestWriteInvoices(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf, LayoutInvoices)
	require.NoError(t, w.WriteInvoices([]domain.Invoice{sampleInvoice()}))
	w.Flush()
	require.NoError(t, w.Error())

	rows := readRows(t, &buf)
	require.Len(t, rows, 1)
	assert.Equal(t, []string{
		"INV-2025-000001", "2025-01-15", "Buyer Inc", "29FGHIJ5678K2Z3", "29",
		"10000.50", "900.25", "900.25", "0.00", "11801.00", "PAID", "2025-02-01",
	}, rows[0])
}

func TestWriteInvoices_CustomerLayout(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf, LayoutCustomerInvoices)
	require.NoError(t, w.WriteInvoices([]domain.Invoice{sampleInvoice()}))
	w.Flush()

	rows := readRows(t, &buf)
	require.Len(t, rows, 1)
	assert.Equal(t, []string{
		"INV-2025-000001", "2025-01-15",
		"10000.50", "900.25", "900.25", "0.00", "11801.00", "PAID", "2025-02-01",
	}, rows[0])
}

func TestWriteInvoices_UnpaidDefaults(t *testing.T) {
	inv := sampleInvoice()
	inv.Status = ""
	inv.PaidOn = nil

	var buf bytes.Buffer
	w := NewWriter(&buf, LayoutInvoices)
	require.NoError(t, w.WriteInvoices([]domain.Invoice{inv}))
	w.Flush()

	rows := readRows(t, &buf)
	assert.Equal(t, "UNPAID", rows[0][10])
	assert.Equal(t, "", rows[0][11])
}

func TestWriteInvoices_MonetaryFormatting(t *testing.T) {
	inv := sampleInvoice()
	inv.Subtotal = decimal.NewFromInt(1000)
	inv.CGST = decimal.RequireFromString("99.999")
	inv.SGST = decimal.RequireFromString("0.1")

	var buf bytes.Buffer
	w := NewWriter(&buf, LayoutInvoices)
	require.NoError(t, w.WriteInvoices([]domain.Invoice{inv}))
	w.Flush()

	rows := readRows(t, &buf)
	assert.Equal(t, "1000.00", rows[0][5])
	assert.Equal(t, "100.00", rows[0][6])
	assert.Equal(t, "0.10", rows[0][7])
}

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"simple", "Q3 Purchase Invoices", "Q3_Purchase_Invoices"},
		{"special chars", "FY 2024-25 / Q3 (Oct–Dec)", "FY_2024-25_Q3_Oct_Dec"},
		{"unicode", "कंपनी Invoices", "Invoices"},
		{"hyphens and underscores preserved", "acme-traders_2025", "acme-traders_2025"},
		{"consecutive underscores collapsed", "acme___traders", "acme_traders"},
		{"leading/trailing cleaned", "  hello  ", "hello"},
		{
			"long name truncated",
			"abcdefghijklmnopqrstuvwxyz-abcdefghijklmnopqrstuvwxyz-abcdefghijklmnopqrstuvwxyz-abcdefghijklmnopqrstuvwxyz-extra",
			"abcdefghijklmnopqrstuvwxyz-abcdefghijklmnopqrstuvwxyz-abcdefghijklmnopqrstuvwxyz-abcdefghijklmnopqrs",
		},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, SanitizeFilename(tt.input))
		})
	}
}

func TestBuildFilename(t *testing.T) {
	now := time.Date(2025, 3, 9, 12, 0, 0, 0, time.UTC)

	assert.Equal(t, "invoices_export_20250309.csv", BuildFilename("invoices_export", now))
	assert.Equal(t, "invoices_Acme_Traders_20250309.csv", BuildFilename("invoices_Acme Traders", now))
	assert.Equal(t, "invoices_20250309.csv", BuildFilename("!!!", now))
}
