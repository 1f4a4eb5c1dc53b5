package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// InvoiceFilter narrows invoice listings and exports. Zero values mean
// "no filter"; Limit 0 means no limit.
type InvoiceFilter struct {
	Statuses   []InvoiceStatus
	Query      string
	DateFrom   *time.Time
	DateTo     *time.Time
	CustomerID *uuid.UUID
	SortBy     InvoiceSort
	SortAsc    bool
	Offset     int
	Limit      int
}

// HSNFilter narrows HSN master table searches.
type HSNFilter struct {
	Query    string
	Category string
	Type     string
	Limit    int
}

// InvoiceSummary is the dashboard overview.
type InvoiceSummary struct {
	OutstandingTotal  decimal.Decimal  `json:"outstanding_total"`
	OverdueCount      int              `json:"overdue_count"`
	ThisMonthRevenue  decimal.Decimal  `json:"this_month_revenue"`
	InvoicesThisMonth int              `json:"invoices_this_month"`
	MonthlyRevenue    []MonthlyRevenue `json:"monthly_revenue"`
	OverdueList       []OverdueInvoice `json:"overdue_list"`
	TopCustomers      []CustomerTotal  `json:"top_customers"`
}

// MonthlyRevenue is paid revenue for one calendar month.
type MonthlyRevenue struct {
	Label string          `json:"label"`
	Month string          `json:"month"`
	Total decimal.Decimal `json:"total"`
}

// OverdueInvoice is an unpaid invoice past its due date.
type OverdueInvoice struct {
	ID            uuid.UUID       `json:"id"`
	InvoiceNumber string          `json:"invoice_number"`
	Customer      string          `json:"customer"`
	DueDate       time.Time       `json:"due_date"`
	DaysOverdue   int             `json:"days_overdue"`
	Total         decimal.Decimal `json:"total"`
}

// CustomerTotal is invoiced value per customer.
type CustomerTotal struct {
	Name  string          `json:"name"`
	Total decimal.Decimal `json:"total"`
}
