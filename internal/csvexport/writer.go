package csvexport

import (
	"encoding/csv"
	"fmt"
	"io"
	"regexp"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"gstbook/internal/domain"
)

// UTF-8 BOM bytes for Excel compatibility on Windows.
var BOM = []byte{0xEF, 0xBB, 0xBF}

// Layout selects the column set written by a Writer.
type Layout int

const (
	// LayoutInvoices includes the buyer columns.
	LayoutInvoices Layout = iota
	// LayoutCustomerInvoices omits the buyer columns for a single-customer export.
	LayoutCustomerInvoices
)

var invoiceColumns = []string{
	"Invoice Number",
	"Date",
	"Customer",
	"GSTIN",
	"State",
	"Subtotal",
	"CGST",
	"SGST",
	"IGST",
	"Total",
	"Status",
	"Paid On",
}

var customerInvoiceColumns = []string{
	"Invoice Number",
	"Date",
	"Subtotal",
	"CGST",
	"SGST",
	"IGST",
	"Total",
	"Status",
	"Paid On",
}

// Writer wraps csv.Writer for exporting invoices as CSV.
type Writer struct {
	csv    *csv.Writer
	layout Layout
}

// NewWriter creates a Writer that writes CSV rows in the given layout to w.
func NewWriter(w io.Writer, layout Layout) *Writer {
	return &Writer{csv: csv.NewWriter(w), layout: layout}
}

// Columns returns the header row for the writer's layout.
func (w *Writer) Columns() []string {
	if w.layout == LayoutCustomerInvoices {
		return customerInvoiceColumns
	}
	return invoiceColumns
}

// WriteHeader writes the header row.
func (w *Writer) WriteHeader() error {
	return w.csv.Write(w.Columns())
}

// WriteInvoices converts a batch of invoices to CSV rows and writes them.
func (w *Writer) WriteInvoices(invoices []domain.Invoice) error {
	for i := range invoices {
		if err := w.csv.Write(w.invoiceToRow(&invoices[i])); err != nil {
			return err
		}
	}
	return nil
}

// Flush flushes the underlying csv.Writer buffer.
func (w *Writer) Flush() {
	w.csv.Flush()
}

// Error returns any error from the underlying csv.Writer.
func (w *Writer) Error() error {
	return w.csv.Error()
}

func (w *Writer) invoiceToRow(inv *domain.Invoice) []string {
	status := string(inv.Status)
	if status == "" {
		status = string(domain.InvoiceStatusUnpaid)
	}
	amounts := []string{
		formatMoney(inv.Subtotal),
		formatMoney(inv.CGST),
		formatMoney(inv.SGST),
		formatMoney(inv.IGST),
		formatMoney(inv.Total),
		status,
		formatDate(inv.PaidOn),
	}

	row := make([]string, 0, len(w.Columns()))
	row = append(row, inv.InvoiceNumber, formatDate(&inv.Date))
	if w.layout == LayoutInvoices {
		row = append(row, inv.BuyerName, inv.BuyerGSTIN, inv.BuyerStateCode)
	}
	return append(row, amounts...)
}

func formatMoney(v decimal.Decimal) string {
	return v.StringFixed(2)
}

func formatDate(t *time.Time) string {
	if t == nil || t.IsZero() {
		return ""
	}
	return t.Format("2006-01-02")
}

// nonAlphanumeric matches characters that are not alphanumeric, hyphen, or underscore.
var nonAlphanumeric = regexp.MustCompile(`[^a-zA-Z0-9_-]+`)

// multiUnderscore matches consecutive underscores.
var multiUnderscore = regexp.MustCompile(`_{2,}`)

// SanitizeFilename cleans a name for use in Content-Disposition.
// Replaces non-alphanumeric chars (except - _) with _, collapses consecutive
// underscores, and truncates to 100 chars.
func SanitizeFilename(name string) string {
	s := nonAlphanumeric.ReplaceAllString(name, "_")
	s = multiUnderscore.ReplaceAllString(s, "_")
	s = strings.Trim(s, "_")
	if len(s) > 100 {
		s = s[:100]
	}
	return s
}

// BuildFilename returns a sanitized filename for Content-Disposition header.
// Format: {sanitized_base}_{YYYYMMDD}.csv
func BuildFilename(base string, now time.Time) string {
	sanitized := SanitizeFilename(base)
	if sanitized == "" {
		sanitized = "invoices"
	}
	return fmt.Sprintf("%s_%s.csv", sanitized, now.Format("20060102"))
}
