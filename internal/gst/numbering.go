package gst

import (
	"fmt"
	"time"
)

// DefaultInvoicePrefix is used when the business profile sets none.
const DefaultInvoicePrefix = "INV"

// FinancialYear returns the Indian financial year (April to March) that t
// falls in, formatted "2024-2025".
func FinancialYear(t time.Time) string {
	start := t.Year()
	if t.Month() < time.April {
		start--
	}
	return fmt.Sprintf("%d-%d", start, start+1)
}

// InvoiceNumber formats a sequence number as PREFIX-YEAR-NNNNNN.
func InvoiceNumber(prefix string, year, seq int) string {
	if prefix == "" {
		prefix = DefaultInvoicePrefix
	}
	return fmt.Sprintf("%s-%d-%06d", prefix, year, seq)
}
