package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"gstbook/internal/hsn"
)

// BusinessProfile is the seller: the single business this deployment invoices for.
type BusinessProfile struct {
	ID             uuid.UUID `db:"id" json:"id"`
	Name           string    `db:"name" json:"name"`
	GSTIN          string    `db:"gstin" json:"gstin"`
	PAN            string    `db:"pan" json:"pan"`
	StateCode      string    `db:"state_code" json:"state_code"`
	Address        string    `db:"address" json:"address"`
	City           string    `db:"city" json:"city"`
	Pincode        string    `db:"pincode" json:"pincode"`
	Phone          string    `db:"phone" json:"phone"`
	Email          string    `db:"email" json:"email"`
	BankName       string    `db:"bank_name" json:"bank_name"`
	AccountNumber  string    `db:"account_number" json:"account_number"`
	IFSC           string    `db:"ifsc" json:"ifsc"`
	InvoicePrefix  string    `db:"invoice_prefix" json:"invoice_prefix"`
	NextInvoiceSeq int       `db:"next_invoice_seq" json:"next_invoice_seq"`
	CreatedAt      time.Time `db:"created_at" json:"created_at"`
	UpdatedAt      time.Time `db:"updated_at" json:"updated_at"`
}

// Customer is a buyer invoices are raised against.
type Customer struct {
	ID        uuid.UUID `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	GSTIN     string    `db:"gstin" json:"gstin"`
	StateCode string    `db:"state_code" json:"state_code"`
	Address   string    `db:"address" json:"address"`
	Email     string    `db:"email" json:"email"`
	Phone     string    `db:"phone" json:"phone"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// Invoice is a tax invoice with its aggregate amounts. Buyer fields are
// joined from customers on read.
type Invoice struct {
	ID              uuid.UUID       `db:"id" json:"id"`
	InvoiceNumber   string          `db:"invoice_number" json:"invoice_number"`
	FinancialYear   string          `db:"financial_year" json:"financial_year"`
	Date            time.Time       `db:"date" json:"date"`
	DueDate         *time.Time      `db:"due_date" json:"due_date"`
	SellerGSTIN     string          `db:"seller_gstin" json:"seller_gstin"`
	SellerStateCode string          `db:"seller_state_code" json:"seller_state_code"`
	BuyerID         uuid.UUID       `db:"buyer_id" json:"buyer_id"`
	PlaceOfSupply   string          `db:"place_of_supply" json:"place_of_supply"`
	Status          InvoiceStatus   `db:"status" json:"status"`
	PaidOn          *time.Time      `db:"paid_on" json:"paid_on"`
	Subtotal        decimal.Decimal `db:"subtotal" json:"subtotal"`
	CGST            decimal.Decimal `db:"cgst" json:"cgst"`
	SGST            decimal.Decimal `db:"sgst" json:"sgst"`
	IGST            decimal.Decimal `db:"igst" json:"igst"`
	Total           decimal.Decimal `db:"total" json:"total"`
	Notes           string          `db:"notes" json:"notes"`
	CreatedAt       time.Time       `db:"created_at" json:"created_at"`
	UpdatedAt       time.Time       `db:"updated_at" json:"updated_at"`

	BuyerName      string `db:"buyer_name" json:"buyer_name"`
	BuyerGSTIN     string `db:"buyer_gstin" json:"buyer_gstin"`
	BuyerStateCode string `db:"buyer_state_code" json:"buyer_state_code"`

	Items []InvoiceItem `db:"-" json:"items,omitempty"`
}

// InvoiceItem is one priced line of an invoice.
type InvoiceItem struct {
	ID          uuid.UUID       `db:"id" json:"id"`
	InvoiceID   uuid.UUID       `db:"invoice_id" json:"invoice_id"`
	Position    int             `db:"position" json:"position"`
	Description string          `db:"description" json:"description"`
	HSNCode     string          `db:"hsn_code" json:"hsn_code"`
	Unit        string          `db:"unit" json:"unit"`
	Quantity    decimal.Decimal `db:"quantity" json:"quantity"`
	Rate        decimal.Decimal `db:"rate" json:"rate"`
	GSTRate     decimal.Decimal `db:"gst_rate" json:"gst_rate"`
	Amount      decimal.Decimal `db:"amount" json:"amount"`
	TaxAmount   decimal.Decimal `db:"tax_amount" json:"tax_amount"`
}

// Payment is money received against an invoice.
type Payment struct {
	ID        uuid.UUID       `db:"id" json:"id"`
	InvoiceID uuid.UUID       `db:"invoice_id" json:"invoice_id"`
	Amount    decimal.Decimal `db:"amount" json:"amount"`
	Method    PaymentMethod   `db:"method" json:"method"`
	Date      time.Time       `db:"date" json:"date"`
	Ref       string          `db:"ref" json:"ref"`
	Note      string          `db:"note" json:"note"`
	CreatedAt time.Time       `db:"created_at" json:"created_at"`
}

// HSNCode is a row of the HSN/SAC master table.
type HSNCode struct {
	ID          uuid.UUID `db:"id" json:"id"`
	Code        string    `db:"code" json:"code"`
	Description string    `db:"description" json:"description"`
	GSTRate     float64   `db:"gst_rate" json:"gst_rate"`
	Type        string    `db:"type" json:"type"`
	Category    string    `db:"category" json:"category"`
	Subcategory string    `db:"subcategory" json:"subcategory"`
	Keywords    string    `db:"keywords" json:"keywords"`
	Unit        string    `db:"unit" json:"unit"`
	UsageCount  int       `db:"usage_count" json:"usage_count"`
	IsActive    bool      `db:"is_active" json:"is_active"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time `db:"updated_at" json:"updated_at"`
}

// CatalogEntry converts the row into the matcher's catalog type.
func (h *HSNCode) CatalogEntry() hsn.Code {
	return hsn.Code{
		Code:        h.Code,
		Description: h.Description,
		GSTRate:     h.GSTRate,
		Type:        hsn.CodeType(h.Type),
		Category:    h.Category,
		Subcategory: h.Subcategory,
		Keywords:    h.Keywords,
		Unit:        h.Unit,
	}
}
