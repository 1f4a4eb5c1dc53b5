package mocks

import (
	"context"
	"io"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"gstbook/internal/csvexport"
	"gstbook/internal/domain"
	"gstbook/internal/service"
)

// MockInvoiceService is a mock implementation of service.InvoiceService.
type MockInvoiceService struct {
	mock.Mock
}

func (m *MockInvoiceService) invoice(args mock.Arguments) (*domain.Invoice, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Invoice), args.Error(1)
}

func (m *MockInvoiceService) Create(ctx context.Context, input service.CreateInvoiceInput) (*domain.Invoice, error) {
	return m.invoice(m.Called(ctx, input))
}

func (m *MockInvoiceService) GetByID(ctx context.Context, id uuid.UUID) (*domain.Invoice, error) {
	return m.invoice(m.Called(ctx, id))
}

func (m *MockInvoiceService) List(ctx context.Context, filter *domain.InvoiceFilter) ([]domain.Invoice, int, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.Invoice), args.Int(1), args.Error(2)
}

func (m *MockInvoiceService) Update(ctx context.Context, id uuid.UUID, input service.UpdateInvoiceInput) (*domain.Invoice, error) {
	return m.invoice(m.Called(ctx, id, input))
}

func (m *MockInvoiceService) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockInvoiceService) MarkPaid(ctx context.Context, id uuid.UUID) (*domain.Invoice, error) {
	return m.invoice(m.Called(ctx, id))
}

func (m *MockInvoiceService) MarkUnpaid(ctx context.Context, id uuid.UUID) (*domain.Invoice, error) {
	return m.invoice(m.Called(ctx, id))
}

func (m *MockInvoiceService) Duplicate(ctx context.Context, id uuid.UUID) (*domain.Invoice, error) {
	return m.invoice(m.Called(ctx, id))
}

func (m *MockInvoiceService) Summary(ctx context.Context) (*domain.InvoiceSummary, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.InvoiceSummary), args.Error(1)
}

func (m *MockInvoiceService) Preview(ctx context.Context, input service.TaxPreviewInput) (*service.TaxPreview, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.TaxPreview), args.Error(1)
}

// Export writes the string given as the first Return value to w.
func (m *MockInvoiceService) Export(ctx context.Context, w io.Writer, filter *domain.InvoiceFilter, layout csvexport.Layout) error {
	args := m.Called(ctx, w, filter, layout)
	if body, ok := args.Get(0).(string); ok {
		_, _ = io.WriteString(w, body)
	}
	return args.Error(1)
}
