package service

import (
	"sort"

	"github.com/shopspring/decimal"

	"gstbook/internal/domain"
)

// sortOverdue orders the most overdue first, then by invoice number.
func sortOverdue(list []domain.OverdueInvoice) {
	sort.SliceStable(list, func(i, j int) bool {
		if list[i].DaysOverdue != list[j].DaysOverdue {
			return list[i].DaysOverdue > list[j].DaysOverdue
		}
		return list[i].InvoiceNumber < list[j].InvoiceNumber
	})
}

func topCustomers(totals map[string]decimal.Decimal, limit int) []domain.CustomerTotal {
	out := make([]domain.CustomerTotal, 0, len(totals))
	for name, total := range totals {
		out = append(out, domain.CustomerTotal{Name: name, Total: total.Round(2)})
	}
	sort.Slice(out, func(i, j int) bool {
		if c := out[i].Total.Cmp(out[j].Total); c != 0 {
			return c > 0
		}
		return out[i].Name < out[j].Name
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}
