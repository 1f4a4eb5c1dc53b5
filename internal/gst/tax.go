// Package gst computes Indian GST line and invoice totals and holds the
// small rules around them: state codes, legal rate slabs and invoice
// numbering.
package gst

import "github.com/shopspring/decimal"

// moneyPlaces is the number of fractional digits kept on every rounded amount.
const moneyPlaces = 2

var (
	hundred = decimal.NewFromInt(100)
	two     = decimal.NewFromInt(2)
)

// LineItem is the calculator's view of an invoice line. ComputeTotals fills
// Amount and TaxAmount in place.
type LineItem struct {
	Quantity  decimal.Decimal
	Rate      decimal.Decimal
	GSTRate   decimal.Decimal
	Amount    decimal.Decimal
	TaxAmount decimal.Decimal
}

// Totals are the five invoice aggregates, each rounded to paise.
type Totals struct {
	Subtotal decimal.Decimal `json:"subtotal"`
	CGST     decimal.Decimal `json:"cgst"`
	SGST     decimal.Decimal `json:"sgst"`
	IGST     decimal.Decimal `json:"igst"`
	Total    decimal.Decimal `json:"total"`
}

// TaxTotal is CGST + SGST + IGST.
func (t Totals) TaxTotal() decimal.Decimal {
	return t.CGST.Add(t.SGST).Add(t.IGST)
}

// ComputeTotals prices every item and aggregates the invoice. Each line is
// rounded on its own; the CGST/SGST halves and the running sums keep full
// precision and are rounded once on return. Inputs are not validated:
// negative quantities produce negative but consistent totals.
func ComputeTotals(items []*LineItem, sellerState, buyerState string) Totals {
	intrastate := IsIntrastate(sellerState, buyerState)

	var subtotal, cgst, sgst, igst decimal.Decimal
	for _, it := range items {
		if it == nil {
			continue
		}
		it.Amount = it.Quantity.Mul(it.Rate).Round(moneyPlaces)
		it.TaxAmount = it.Amount.Mul(it.GSTRate).Div(hundred).Round(moneyPlaces)

		if intrastate {
			half := it.TaxAmount.Div(two)
			cgst = cgst.Add(half)
			sgst = sgst.Add(half)
		} else {
			igst = igst.Add(it.TaxAmount)
		}
		subtotal = subtotal.Add(it.Amount)
	}

	return Totals{
		Subtotal: subtotal.Round(moneyPlaces),
		CGST:     cgst.Round(moneyPlaces),
		SGST:     sgst.Round(moneyPlaces),
		IGST:     igst.Round(moneyPlaces),
		Total:    subtotal.Add(cgst).Add(sgst).Add(igst).Round(moneyPlaces),
	}
}
