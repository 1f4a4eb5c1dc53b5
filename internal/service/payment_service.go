package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"gstbook/internal/domain"
	"gstbook/internal/metrics"
	"gstbook/internal/port"
)

// AddPaymentInput is the DTO for recording a payment. An empty Date means
// today and an empty Method means OTHER.
type AddPaymentInput struct {
	Amount decimal.Decimal `json:"amount"`
	Method string          `json:"method"`
	Date   string          `json:"date"`
	Ref    string          `json:"ref"`
	Note   string          `json:"note"`
}

// PaymentService records payments and keeps invoice status in step with them.
type PaymentService interface {
	Add(ctx context.Context, invoiceID uuid.UUID, input AddPaymentInput) (*domain.Payment, error)
	ListByInvoice(ctx context.Context, invoiceID uuid.UUID) ([]domain.Payment, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type paymentService struct {
	paymentRepo port.PaymentRepository
	invoiceRepo port.InvoiceRepository
	now         func() time.Time
	metrics     *metrics.Metrics
	log         *zap.Logger
}

// NewPaymentService creates a new PaymentService. A nil now defaults to
// time.Now.
func NewPaymentService(
	paymentRepo port.PaymentRepository,
	invoiceRepo port.InvoiceRepository,
	now func() time.Time,
	m *metrics.Metrics,
	log *zap.Logger,
) PaymentService {
	if now == nil {
		now = time.Now
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &paymentService{
		paymentRepo: paymentRepo,
		invoiceRepo: invoiceRepo,
		now:         now,
		metrics:     m,
		log:         log.Named("payment.service"),
	}
}

func (s *paymentService) Add(ctx context.Context, invoiceID uuid.UUID, input AddPaymentInput) (*domain.Payment, error) {
	if !input.Amount.IsPositive() {
		return nil, domain.ErrInvalidPaymentAmount
	}
	method, err := domain.ParsePaymentMethod(input.Method)
	if err != nil {
		return nil, err
	}
	date, err := parseDate(input.Date, s.today())
	if err != nil {
		return nil, err
	}

	inv, err := s.invoiceRepo.GetByID(ctx, invoiceID)
	if err != nil {
		return nil, err
	}

	payment := &domain.Payment{
		InvoiceID: inv.ID,
		Amount:    input.Amount.Round(2),
		Method:    method,
		Date:      date,
		Ref:       strings.TrimSpace(input.Ref),
		Note:      strings.TrimSpace(input.Note),
	}
	if err := s.paymentRepo.Create(ctx, payment); err != nil {
		return nil, err
	}
	s.metrics.ObservePayment(string(method))

	if err := s.recompute(ctx, inv, date); err != nil {
		return nil, err
	}
	return payment, nil
}

func (s *paymentService) ListByInvoice(ctx context.Context, invoiceID uuid.UUID) ([]domain.Payment, error) {
	if _, err := s.invoiceRepo.GetByID(ctx, invoiceID); err != nil {
		return nil, err
	}
	return s.paymentRepo.ListByInvoice(ctx, invoiceID)
}

func (s *paymentService) Delete(ctx context.Context, id uuid.UUID) error {
	payment, err := s.paymentRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	inv, err := s.invoiceRepo.GetByID(ctx, payment.InvoiceID)
	if err != nil {
		return err
	}
	if err := s.paymentRepo.Delete(ctx, id); err != nil {
		return err
	}
	return s.recompute(ctx, inv, s.today())
}

// recompute derives the invoice status from the payments on record. paidOn
// is stamped only when the invoice becomes fully paid.
func (s *paymentService) recompute(ctx context.Context, inv *domain.Invoice, paidOn time.Time) error {
	paid, err := s.paymentRepo.SumByInvoice(ctx, inv.ID)
	if err != nil {
		return err
	}

	status := settledStatus(paid, inv.Total)
	var stamp *time.Time
	if status == domain.InvoiceStatusPaid {
		stamp = &paidOn
	}
	if err := s.invoiceRepo.UpdateStatus(ctx, inv.ID, status, stamp); err != nil {
		return err
	}

	s.log.Info("invoice status recomputed",
		zap.String("invoice_id", inv.ID.String()),
		zap.String("paid", paid.StringFixed(2)),
		zap.String("status", string(status)),
	)
	return nil
}

func (s *paymentService) today() time.Time {
	now := s.now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

// settledStatus maps the amount paid against an invoice total to a status.
func settledStatus(paid, total decimal.Decimal) domain.InvoiceStatus {
	switch {
	case paid.GreaterThanOrEqual(total):
		return domain.InvoiceStatusPaid
	case paid.IsPositive():
		return domain.InvoiceStatusPartiallyPaid
	default:
		return domain.InvoiceStatusUnpaid
	}
}
