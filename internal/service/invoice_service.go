package service

import (
	"context"
	"errors"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"gstbook/internal/csvexport"
	"gstbook/internal/domain"
	"gstbook/internal/gst"
	"gstbook/internal/metrics"
	"gstbook/internal/port"
)

const (
	dateLayout      = "2006-01-02"
	exportPageSize  = 200
	summaryMonths   = 6
	topCustomerDays = 90
	topCustomerMax  = 5
	overdueListMax  = 5
)

// InvoiceServiceConfig holds invoice numbering settings and the clock.
type InvoiceServiceConfig struct {
	// NumberPrefix is used when the business profile has no prefix of its own.
	NumberPrefix string
	// Now defaults to time.Now.
	Now func() time.Time
	// Lines, when set, adds catalog warnings to tax previews.
	Lines LineChecker
}

// LineItemInput is one line of an invoice request.
type LineItemInput struct {
	Description string          `json:"description"`
	HSNCode     string          `json:"hsn_code"`
	Unit        string          `json:"unit"`
	Quantity    decimal.Decimal `json:"quantity"`
	Rate        decimal.Decimal `json:"rate"`
	GSTRate     decimal.Decimal `json:"gst_rate"`
}

// CreateInvoiceInput is the DTO for raising an invoice. Dates use YYYY-MM-DD;
// an empty Date means today.
type CreateInvoiceInput struct {
	BuyerID uuid.UUID       `json:"buyer_id"`
	Date    string          `json:"date"`
	DueDate string          `json:"due_date"`
	Notes   string          `json:"notes"`
	Items   []LineItemInput `json:"items"`
}

// UpdateInvoiceInput is the DTO for editing an invoice. Nil fields are left
// unchanged; a non-nil Items replaces every line. An empty DueDate clears it.
type UpdateInvoiceInput struct {
	BuyerID *uuid.UUID      `json:"buyer_id"`
	Date    *string         `json:"date"`
	DueDate *string         `json:"due_date"`
	Notes   *string         `json:"notes"`
	Items   []LineItemInput `json:"items"`
}

// TaxPreviewInput prices lines without saving anything. States are resolved
// from the explicit codes first, then the GSTINs, then the business profile
// for the seller.
type TaxPreviewInput struct {
	Items       []LineItemInput `json:"items"`
	SellerState string          `json:"seller_state"`
	SellerGSTIN string          `json:"seller_gstin"`
	BuyerState  string          `json:"buyer_state"`
	BuyerGSTIN  string          `json:"buyer_gstin"`
}

// TaxPreview is the priced result of a TaxPreviewInput.
type TaxPreview struct {
	Items       []domain.InvoiceItem `json:"items"`
	Totals      gst.Totals           `json:"totals"`
	SellerState string               `json:"seller_state"`
	BuyerState  string               `json:"buyer_state"`
	Intrastate  bool                 `json:"intrastate"`
	Warnings    []LineWarning        `json:"warnings"`
}

// InvoiceService defines the invoicing contract.
type InvoiceService interface {
	Create(ctx context.Context, input CreateInvoiceInput) (*domain.Invoice, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Invoice, error)
	List(ctx context.Context, filter *domain.InvoiceFilter) ([]domain.Invoice, int, error)
	Update(ctx context.Context, id uuid.UUID, input UpdateInvoiceInput) (*domain.Invoice, error)
	Delete(ctx context.Context, id uuid.UUID) error
	MarkPaid(ctx context.Context, id uuid.UUID) (*domain.Invoice, error)
	MarkUnpaid(ctx context.Context, id uuid.UUID) (*domain.Invoice, error)
	Duplicate(ctx context.Context, id uuid.UUID) (*domain.Invoice, error)
	Summary(ctx context.Context) (*domain.InvoiceSummary, error)
	Preview(ctx context.Context, input TaxPreviewInput) (*TaxPreview, error)
	// Export writes every invoice matching filter as CSV rows (no BOM) to w.
	// Offset and Limit on filter are ignored.
	Export(ctx context.Context, w io.Writer, filter *domain.InvoiceFilter, layout csvexport.Layout) error
}

type invoiceService struct {
	invoiceRepo  port.InvoiceRepository
	customerRepo port.CustomerRepository
	businessRepo port.BusinessRepository
	paymentRepo  port.PaymentRepository
	cfg          InvoiceServiceConfig
	metrics      *metrics.Metrics
	log          *zap.Logger
}

// NewInvoiceService creates a new InvoiceService implementation.
func NewInvoiceService(
	invoiceRepo port.InvoiceRepository,
	customerRepo port.CustomerRepository,
	businessRepo port.BusinessRepository,
	paymentRepo port.PaymentRepository,
	cfg InvoiceServiceConfig,
	m *metrics.Metrics,
	log *zap.Logger,
) InvoiceService {
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &invoiceService{
		invoiceRepo:  invoiceRepo,
		customerRepo: customerRepo,
		businessRepo: businessRepo,
		paymentRepo:  paymentRepo,
		cfg:          cfg,
		metrics:      m,
		log:          log.Named("invoice.service"),
	}
}

func (s *invoiceService) Create(ctx context.Context, input CreateInvoiceInput) (*domain.Invoice, error) {
	items, err := buildItems(input.Items)
	if err != nil {
		return nil, err
	}
	date, err := parseDate(input.Date, s.today())
	if err != nil {
		return nil, err
	}
	dueDate, err := parseOptionalDate(input.DueDate)
	if err != nil {
		return nil, err
	}
	if input.BuyerID == uuid.Nil {
		return nil, domain.ErrCustomerNotFound
	}

	buyer, err := s.customerRepo.GetByID(ctx, input.BuyerID)
	if err != nil {
		return nil, err
	}
	seller, err := s.seller(ctx)
	if err != nil {
		return nil, err
	}

	inv := &domain.Invoice{
		Date:            date,
		DueDate:         dueDate,
		SellerGSTIN:     seller.GSTIN,
		SellerStateCode: gst.ResolveState(seller.StateCode, seller.GSTIN),
		Notes:           strings.TrimSpace(input.Notes),
		Items:           items,
	}
	return s.create(ctx, inv, buyer)
}

// create numbers, prices and stores inv for buyer. The seller fields on inv
// must already be set.
func (s *invoiceService) create(ctx context.Context, inv *domain.Invoice, buyer *domain.Customer) (*domain.Invoice, error) {
	seq, prefix, err := s.businessRepo.NextInvoiceSeq(ctx)
	if err != nil {
		return nil, err
	}
	if prefix == "" {
		prefix = s.cfg.NumberPrefix
	}

	inv.InvoiceNumber = gst.InvoiceNumber(prefix, inv.Date.Year(), seq)
	inv.FinancialYear = gst.FinancialYear(inv.Date)
	inv.Status = domain.InvoiceStatusUnpaid
	inv.PaidOn = nil
	setBuyer(inv, buyer)
	s.price(inv)

	if err := s.invoiceRepo.Create(ctx, inv); err != nil {
		return nil, err
	}

	s.log.Info("invoice created",
		zap.String("invoice_id", inv.ID.String()),
		zap.String("invoice_number", inv.InvoiceNumber),
		zap.String("total", inv.Total.StringFixed(2)),
	)
	return inv, nil
}

func (s *invoiceService) GetByID(ctx context.Context, id uuid.UUID) (*domain.Invoice, error) {
	return s.invoiceRepo.GetByID(ctx, id)
}

func (s *invoiceService) List(ctx context.Context, filter *domain.InvoiceFilter) ([]domain.Invoice, int, error) {
	if filter.DateFrom != nil && filter.DateTo != nil && filter.DateFrom.After(*filter.DateTo) {
		return nil, 0, domain.ErrInvalidDateRange
	}
	return s.invoiceRepo.List(ctx, filter)
}

func (s *invoiceService) Update(ctx context.Context, id uuid.UUID, input UpdateInvoiceInput) (*domain.Invoice, error) {
	inv, err := s.invoiceRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Items != nil {
		items, err := buildItems(input.Items)
		if err != nil {
			return nil, err
		}
		inv.Items = items
	}
	if input.Date != nil {
		date, err := parseDate(*input.Date, inv.Date)
		if err != nil {
			return nil, err
		}
		inv.Date = date
	}
	if input.DueDate != nil {
		dueDate, err := parseOptionalDate(*input.DueDate)
		if err != nil {
			return nil, err
		}
		inv.DueDate = dueDate
	}
	if input.Notes != nil {
		inv.Notes = strings.TrimSpace(*input.Notes)
	}
	if input.BuyerID != nil {
		inv.BuyerID = *input.BuyerID
	}

	buyer, err := s.customerRepo.GetByID(ctx, inv.BuyerID)
	if err != nil {
		return nil, err
	}
	setBuyer(inv, buyer)
	inv.FinancialYear = gst.FinancialYear(inv.Date)
	s.price(inv)

	if err := s.invoiceRepo.Update(ctx, inv); err != nil {
		return nil, err
	}
	if err := s.reconcileStatus(ctx, inv); err != nil {
		return nil, err
	}
	return inv, nil
}

// reconcileStatus re-derives the status of an invoice with payments after its
// total changed.
func (s *invoiceService) reconcileStatus(ctx context.Context, inv *domain.Invoice) error {
	paid, err := s.paymentRepo.SumByInvoice(ctx, inv.ID)
	if err != nil {
		return err
	}
	if !paid.IsPositive() {
		return nil
	}

	status := settledStatus(paid, inv.Total)
	if status == inv.Status {
		return nil
	}
	var paidOn *time.Time
	if status == domain.InvoiceStatusPaid {
		today := s.today()
		paidOn = &today
	}
	if err := s.invoiceRepo.UpdateStatus(ctx, inv.ID, status, paidOn); err != nil {
		return err
	}
	inv.Status = status
	inv.PaidOn = paidOn
	return nil
}

func (s *invoiceService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.invoiceRepo.Delete(ctx, id)
}

func (s *invoiceService) MarkPaid(ctx context.Context, id uuid.UUID) (*domain.Invoice, error) {
	today := s.today()
	return s.setStatus(ctx, id, domain.InvoiceStatusPaid, &today)
}

func (s *invoiceService) MarkUnpaid(ctx context.Context, id uuid.UUID) (*domain.Invoice, error) {
	return s.setStatus(ctx, id, domain.InvoiceStatusUnpaid, nil)
}

func (s *invoiceService) setStatus(ctx context.Context, id uuid.UUID, status domain.InvoiceStatus, paidOn *time.Time) (*domain.Invoice, error) {
	inv, err := s.invoiceRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.invoiceRepo.UpdateStatus(ctx, id, status, paidOn); err != nil {
		return nil, err
	}
	inv.Status = status
	inv.PaidOn = paidOn
	return inv, nil
}

// Duplicate raises a new invoice dated today with the source's buyer, lines,
// due date and seller details.
func (s *invoiceService) Duplicate(ctx context.Context, id uuid.UUID) (*domain.Invoice, error) {
	src, err := s.invoiceRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	buyer, err := s.customerRepo.GetByID(ctx, src.BuyerID)
	if err != nil {
		return nil, err
	}

	items := make([]domain.InvoiceItem, 0, len(src.Items))
	for _, it := range src.Items {
		items = append(items, domain.InvoiceItem{
			Description: it.Description,
			HSNCode:     it.HSNCode,
			Unit:        it.Unit,
			Quantity:    it.Quantity,
			Rate:        it.Rate,
			GSTRate:     it.GSTRate,
		})
	}

	dup := &domain.Invoice{
		Date:            s.today(),
		DueDate:         src.DueDate,
		SellerGSTIN:     src.SellerGSTIN,
		SellerStateCode: src.SellerStateCode,
		Notes:           src.Notes,
		Items:           items,
	}
	return s.create(ctx, dup, buyer)
}

func (s *invoiceService) Preview(ctx context.Context, input TaxPreviewInput) (*TaxPreview, error) {
	items, err := buildItems(input.Items)
	if err != nil {
		return nil, err
	}

	sellerState := gst.ResolveState(input.SellerState, strings.ToUpper(input.SellerGSTIN))
	if sellerState == "" {
		seller, err := s.seller(ctx)
		if err != nil {
			return nil, err
		}
		sellerState = gst.ResolveState(seller.StateCode, seller.GSTIN)
	}
	buyerState := gst.ResolveState(input.BuyerState, strings.ToUpper(input.BuyerGSTIN))

	inv := &domain.Invoice{SellerStateCode: sellerState, PlaceOfSupply: buyerState, Items: items}
	intrastate := s.price(inv)

	for i := range inv.Items {
		inv.Items[i].Position = i + 1
	}
	warnings := []LineWarning{}
	if s.cfg.Lines != nil {
		warnings = s.cfg.Lines.CheckLines(ctx, inv.Items)
	}
	return &TaxPreview{
		Items: inv.Items,
		Totals: gst.Totals{
			Subtotal: inv.Subtotal,
			CGST:     inv.CGST,
			SGST:     inv.SGST,
			IGST:     inv.IGST,
			Total:    inv.Total,
		},
		SellerState: sellerState,
		BuyerState:  buyerState,
		Intrastate:  intrastate,
		Warnings:    warnings,
	}, nil
}

func (s *invoiceService) Export(ctx context.Context, w io.Writer, filter *domain.InvoiceFilter, layout csvexport.Layout) error {
	page := *filter
	page.Limit = exportPageSize
	page.Offset = 0

	cw := csvexport.NewWriter(w, layout)
	if err := cw.WriteHeader(); err != nil {
		return err
	}
	for {
		invoices, total, err := s.List(ctx, &page)
		if err != nil {
			return err
		}
		if err := cw.WriteInvoices(invoices); err != nil {
			return err
		}
		page.Offset += len(invoices)
		if len(invoices) == 0 || page.Offset >= total {
			break
		}
	}
	cw.Flush()
	return cw.Error()
}

// Summary builds the dashboard: outstanding and overdue unpaid invoices,
// paid revenue for this month and the last six, and the top customers by
// invoiced value over the last 90 days.
func (s *invoiceService) Summary(ctx context.Context) (*domain.InvoiceSummary, error) {
	today := s.today()
	monthStart := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, time.UTC)
	seriesStart := monthStart.AddDate(0, -(summaryMonths - 1), 0)
	since := today.AddDate(0, 0, -topCustomerDays)

	unpaid, _, err := s.invoiceRepo.List(ctx, &domain.InvoiceFilter{
		Statuses: []domain.InvoiceStatus{domain.InvoiceStatusUnpaid, domain.InvoiceStatusPartiallyPaid},
		SortBy:   domain.InvoiceSortDate,
	})
	if err != nil {
		return nil, err
	}

	from := seriesStart
	if since.Before(from) {
		from = since
	}
	recent, _, err := s.invoiceRepo.List(ctx, &domain.InvoiceFilter{
		DateFrom: &from,
		DateTo:   &today,
		SortBy:   domain.InvoiceSortDate,
	})
	if err != nil {
		return nil, err
	}

	summary := &domain.InvoiceSummary{
		OutstandingTotal: decimal.Zero,
		ThisMonthRevenue: decimal.Zero,
		OverdueList:      []domain.OverdueInvoice{},
		TopCustomers:     []domain.CustomerTotal{},
	}

	for i := range unpaid {
		inv := &unpaid[i]
		summary.OutstandingTotal = summary.OutstandingTotal.Add(inv.Total)
		if inv.DueDate != nil && inv.DueDate.Before(today) {
			summary.OverdueList = append(summary.OverdueList, domain.OverdueInvoice{
				ID:            inv.ID,
				InvoiceNumber: inv.InvoiceNumber,
				Customer:      inv.BuyerName,
				DueDate:       *inv.DueDate,
				DaysOverdue:   int(today.Sub(*inv.DueDate).Hours() / 24),
				Total:         inv.Total,
			})
		}
	}
	sortOverdue(summary.OverdueList)
	summary.OverdueCount = len(summary.OverdueList)
	if len(summary.OverdueList) > overdueListMax {
		summary.OverdueList = summary.OverdueList[:overdueListMax]
	}

	monthly := make(map[string]decimal.Decimal, summaryMonths)
	customers := map[string]decimal.Decimal{}
	for i := range recent {
		inv := &recent[i]
		if !inv.Date.Before(monthStart) {
			summary.InvoicesThisMonth++
		}
		if inv.Status == domain.InvoiceStatusPaid && !inv.Date.Before(seriesStart) {
			key := inv.Date.Format("2006-01")
			monthly[key] = monthly[key].Add(inv.Total)
		}
		if !inv.Date.Before(since) {
			name := inv.BuyerName
			if name == "" {
				name = "-"
			}
			customers[name] = customers[name].Add(inv.Total)
		}
	}

	for m := seriesStart; !m.After(monthStart); m = m.AddDate(0, 1, 0) {
		key := m.Format("2006-01")
		summary.MonthlyRevenue = append(summary.MonthlyRevenue, domain.MonthlyRevenue{
			Label: m.Format("Jan"),
			Month: key,
			Total: monthly[key].Round(2),
		})
	}
	summary.ThisMonthRevenue = monthly[monthStart.Format("2006-01")].Round(2)
	summary.OutstandingTotal = summary.OutstandingTotal.Round(2)
	summary.TopCustomers = topCustomers(customers, topCustomerMax)

	return summary, nil
}

// price runs the totals calculator over inv's items and copies the results
// back. It reports whether the supply is intrastate.
func (s *invoiceService) price(inv *domain.Invoice) bool {
	lines := make([]*gst.LineItem, len(inv.Items))
	for i := range inv.Items {
		it := &inv.Items[i]
		lines[i] = &gst.LineItem{Quantity: it.Quantity, Rate: it.Rate, GSTRate: it.GSTRate}
	}

	totals := gst.ComputeTotals(lines, inv.SellerStateCode, inv.PlaceOfSupply)
	for i := range inv.Items {
		inv.Items[i].Amount = lines[i].Amount
		inv.Items[i].TaxAmount = lines[i].TaxAmount
	}
	inv.Subtotal = totals.Subtotal
	inv.CGST = totals.CGST
	inv.SGST = totals.SGST
	inv.IGST = totals.IGST
	inv.Total = totals.Total

	intrastate := gst.IsIntrastate(inv.SellerStateCode, inv.PlaceOfSupply)
	s.metrics.ObserveTotals(intrastate)
	return intrastate
}

// seller returns the business profile, or an empty one before it is saved.
func (s *invoiceService) seller(ctx context.Context) (*domain.BusinessProfile, error) {
	profile, err := s.businessRepo.Get(ctx)
	if errors.Is(err, domain.ErrNotFound) {
		return &domain.BusinessProfile{}, nil
	}
	return profile, err
}

func (s *invoiceService) today() time.Time {
	now := s.cfg.Now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

func setBuyer(inv *domain.Invoice, buyer *domain.Customer) {
	inv.BuyerID = buyer.ID
	inv.BuyerName = buyer.Name
	inv.BuyerGSTIN = buyer.GSTIN
	inv.BuyerStateCode = buyer.StateCode
	inv.PlaceOfSupply = gst.ResolveState(buyer.StateCode, buyer.GSTIN)
}

// Stored precision of invoice_items.quantity and invoice_items.rate.
const (
	quantityPlaces = 3
	ratePlaces     = 2
)

// fitsPlaces reports whether d is exact at the given number of decimal places.
func fitsPlaces(d decimal.Decimal, places int32) bool {
	return d.Equal(d.Round(places))
}

// buildItems validates line inputs. Pricing fields are left for price.
// Quantities and rates finer than their stored precision are rejected so a
// saved line always reprices to the same amount.
func buildItems(inputs []LineItemInput) ([]domain.InvoiceItem, error) {
	if len(inputs) == 0 {
		return nil, domain.ErrNoLineItems
	}
	items := make([]domain.InvoiceItem, 0, len(inputs))
	for _, in := range inputs {
		desc := strings.TrimSpace(in.Description)
		if desc == "" || in.Quantity.IsNegative() || in.Rate.IsNegative() {
			return nil, domain.ErrInvalidLineItem
		}
		if !fitsPlaces(in.Quantity, quantityPlaces) || !fitsPlaces(in.Rate, ratePlaces) {
			return nil, domain.ErrInvalidLineItem
		}
		if !gst.ValidRate(in.GSTRate) {
			return nil, domain.ErrInvalidGSTRate
		}
		items = append(items, domain.InvoiceItem{
			Description: desc,
			HSNCode:     strings.TrimSpace(in.HSNCode),
			Unit:        strings.TrimSpace(in.Unit),
			Quantity:    in.Quantity,
			Rate:        in.Rate,
			GSTRate:     in.GSTRate,
		})
	}
	return items, nil
}

func parseDate(s string, fallback time.Time) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return fallback, nil
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}, domain.ErrInvalidDate
	}
	return t, nil
}

func parseOptionalDate(s string) (*time.Time, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	t, err := parseDate(s, time.Time{})
	if err != nil {
		return nil, err
	}
	return &t, nil
}
