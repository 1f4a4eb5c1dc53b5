package gst

import "github.com/shopspring/decimal"

// Slabs are the GST rates, in percent, an invoice line may carry.
var Slabs = []decimal.Decimal{
	decimal.NewFromInt(0),
	decimal.NewFromInt(5),
	decimal.NewFromInt(12),
	decimal.NewFromInt(18),
	decimal.NewFromInt(28),
}

// ValidRate reports whether rate is one of the Slabs.
func ValidRate(rate decimal.Decimal) bool {
	for _, s := range Slabs {
		if rate.Equal(s) {
			return true
		}
	}
	return false
}
