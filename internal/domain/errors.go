package domain

import "errors"

var (
	ErrNotFound             = errors.New("resource not found")
	ErrCustomerNotFound     = errors.New("customer not found")
	ErrInvoiceNotFound      = errors.New("invoice not found")
	ErrPaymentNotFound      = errors.New("payment not found")
	ErrHSNCodeNotFound      = errors.New("hsn code not found")
	ErrCustomerHasInvoices  = errors.New("customer has invoices and cannot be deleted")
	ErrDuplicateInvoiceNo   = errors.New("invoice number already exists")
	ErrNoLineItems          = errors.New("invoice must have at least one line item")
	ErrInvalidLineItem      = errors.New("line item needs a description, a non-negative quantity with at most 3 decimals and a non-negative rate with at most 2 decimals")
	ErrInvalidGSTRate       = errors.New("gst rate is not a valid slab")
	ErrInvalidGSTIN         = errors.New("gstin is not a valid 15-character registration number")
	ErrInvalidStateCode     = errors.New("state code must be a two-digit code between 01 and 38")
	ErrInvalidPaymentAmount = errors.New("payment amount must be positive")
	ErrInvalidPaymentMethod = errors.New("payment method must be CASH, BANK, UPI or OTHER")
	ErrInvalidInvoiceStatus = errors.New("invalid invoice status")
	ErrInvalidDateRange     = errors.New("date_from must not be after date_to")
	ErrInvalidDate          = errors.New("dates must use the YYYY-MM-DD format")
	ErrCustomerNameRequired = errors.New("customer name is required")
	ErrEmptySearchQuery     = errors.New("search query must not be empty")

	ErrLibraryItemNotFound   = errors.New("library item not found")
	ErrDescriptionRequired   = errors.New("item description is required")
	ErrMasterServiceNotFound = errors.New("master service not found")
	ErrInvalidDataType       = errors.New("type must be all, service or product")
	ErrTemplateNotFound      = errors.New("template not found")
	ErrTemplateNameRequired  = errors.New("template name is required")
	ErrLastTemplate          = errors.New("cannot delete the only template")
)
