package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"gstbook/internal/domain"
	"gstbook/internal/hsn"
)

// Line check rules.
const (
	RuleHSNUnknown      = "hsn_unknown"
	RuleHSNRateMismatch = "hsn_rate_mismatch"
)

// LineWarning flags an invoice line whose HSN/SAC code or GST rate disagrees
// with the code catalog. Warnings never block saving an invoice.
type LineWarning struct {
	Position      int       `json:"position"`
	HSNCode       string    `json:"hsn_code"`
	Rule          string    `json:"rule"`
	Message       string    `json:"message"`
	ExpectedRates []float64 `json:"expected_rates,omitempty"`
}

// LineChecker reviews priced lines against the code catalog.
type LineChecker interface {
	CheckLines(ctx context.Context, items []domain.InvoiceItem) []LineWarning
}

// checkLines reports unknown codes and rates the catalog does not list for
// the code. Lines without a code are skipped.
func checkLines(catalog *hsn.Catalog, items []domain.InvoiceItem) []LineWarning {
	warnings := []LineWarning{}
	for i := range items {
		it := &items[i]
		code := strings.TrimSpace(it.HSNCode)
		if code == "" {
			continue
		}

		if len(catalog.Lookup(code)) == 0 {
			warnings = append(warnings, LineWarning{
				Position: it.Position,
				HSNCode:  code,
				Rule:     RuleHSNUnknown,
				Message:  fmt.Sprintf("code %s is not in the HSN/SAC master", code),
			})
			continue
		}

		rate := it.GSTRate.InexactFloat64()
		matched, valid := catalog.RateMatches(code, rate)
		if matched {
			continue
		}
		warnings = append(warnings, LineWarning{
			Position:      it.Position,
			HSNCode:       code,
			Rule:          RuleHSNRateMismatch,
			Message:       fmt.Sprintf("gst rate %s%% does not match %s for code %s", it.GSTRate.String(), formatRates(valid), code),
			ExpectedRates: valid,
		})
	}
	return warnings
}

func formatRates(rates []float64) string {
	parts := make([]string, 0, len(rates))
	for _, r := range rates {
		parts = append(parts, strconv.FormatFloat(r, 'f', -1, 64)+"%")
	}
	return strings.Join(parts, " or ")
}
