package domain

import "strings"

// InvoiceStatus is derived from the payments recorded against an invoice,
// or set directly with mark-paid and mark-unpaid.
type InvoiceStatus string

const (
	InvoiceStatusUnpaid        InvoiceStatus = "UNPAID"
	InvoiceStatusPartiallyPaid InvoiceStatus = "PARTIALLY_PAID"
	InvoiceStatusPaid          InvoiceStatus = "PAID"
)

// ParseInvoiceStatus accepts any letter case.
func ParseInvoiceStatus(s string) (InvoiceStatus, error) {
	switch st := InvoiceStatus(strings.ToUpper(strings.TrimSpace(s))); st {
	case InvoiceStatusUnpaid, InvoiceStatusPartiallyPaid, InvoiceStatusPaid:
		return st, nil
	}
	return "", ErrInvalidInvoiceStatus
}

// PaymentMethod is how a payment was received.
type PaymentMethod string

const (
	PaymentMethodCash  PaymentMethod = "CASH"
	PaymentMethodBank  PaymentMethod = "BANK"
	PaymentMethodUPI   PaymentMethod = "UPI"
	PaymentMethodOther PaymentMethod = "OTHER"
)

// ParsePaymentMethod accepts any letter case. An empty method means OTHER.
func ParsePaymentMethod(s string) (PaymentMethod, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	if s == "" {
		return PaymentMethodOther, nil
	}
	switch m := PaymentMethod(s); m {
	case PaymentMethodCash, PaymentMethodBank, PaymentMethodUPI, PaymentMethodOther:
		return m, nil
	}
	return "", ErrInvalidPaymentMethod
}

// InvoiceSort is the column invoice listings are ordered by.
type InvoiceSort string

const (
	InvoiceSortDate   InvoiceSort = "date"
	InvoiceSortTotal  InvoiceSort = "total"
	InvoiceSortNumber InvoiceSort = "number"
)
