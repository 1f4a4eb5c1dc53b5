package port

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"gstbook/internal/domain"
)

// BusinessRepository persists the single seller profile.
type BusinessRepository interface {
	// Get returns domain.ErrNotFound until a profile has been saved.
	Get(ctx context.Context) (*domain.BusinessProfile, error)
	Upsert(ctx context.Context, profile *domain.BusinessProfile) error
	// NextInvoiceSeq reserves and returns the next invoice sequence number
	// together with the profile's invoice prefix. It creates an empty
	// profile when none exists.
	NextInvoiceSeq(ctx context.Context) (seq int, prefix string, err error)
}

// CustomerRepository defines the contract for customer persistence.
type CustomerRepository interface {
	Create(ctx context.Context, customer *domain.Customer) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Customer, error)
	List(ctx context.Context, query string, offset, limit int) ([]domain.Customer, int, error)
	Update(ctx context.Context, customer *domain.Customer) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// InvoiceRepository defines the contract for invoice persistence.
// Create and Update write the header and its items in one transaction.
type InvoiceRepository interface {
	Create(ctx context.Context, invoice *domain.Invoice) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Invoice, error)
	List(ctx context.Context, filter *domain.InvoiceFilter) ([]domain.Invoice, int, error)
	Update(ctx context.Context, invoice *domain.Invoice) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.InvoiceStatus, paidOn *time.Time) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// PaymentRepository defines the contract for payment persistence.
type PaymentRepository interface {
	Create(ctx context.Context, payment *domain.Payment) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Payment, error)
	ListByInvoice(ctx context.Context, invoiceID uuid.UUID) ([]domain.Payment, error)
	SumByInvoice(ctx context.Context, invoiceID uuid.UUID) (decimal.Decimal, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
