package handler

import (
	"bytes"
	"context"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"gstbook/internal/csvexport"
	"gstbook/internal/domain"
	"gstbook/internal/service"
)

const filterDateLayout = "2006-01-02"

// InvoiceHandler handles invoice endpoints.
type InvoiceHandler struct {
	invoiceService service.InvoiceService
}

// NewInvoiceHandler creates a new InvoiceHandler.
func NewInvoiceHandler(invoiceService service.InvoiceService) *InvoiceHandler {
	return &InvoiceHandler{invoiceService: invoiceService}
}

// Create handles POST /api/v1/invoices
func (h *InvoiceHandler) Create(c *gin.Context) {
	var req service.CreateInvoiceInput
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "invalid request body")
		return
	}

	inv, err := h.invoiceService.Create(c.Request.Context(), req)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, inv)
}

// List handles GET /api/v1/invoices
func (h *InvoiceHandler) List(c *gin.Context) {
	filter, ok := parseInvoiceFilter(c)
	if !ok {
		return
	}
	filter.Offset, filter.Limit = parsePagination(c)

	invoices, total, err := h.invoiceService.List(c.Request.Context(), filter)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondPaginated(c, invoices, PagMeta{Total: total, Offset: filter.Offset, Limit: filter.Limit})
}

// GetByID handles GET /api/v1/invoices/:id
func (h *InvoiceHandler) GetByID(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	inv, err := h.invoiceService.GetByID(c.Request.Context(), id)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, inv)
}

// Update handles PUT /api/v1/invoices/:id
func (h *InvoiceHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req service.UpdateInvoiceInput
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "invalid request body")
		return
	}

	inv, err := h.invoiceService.Update(c.Request.Context(), id, req)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, inv)
}

// Delete handles DELETE /api/v1/invoices/:id
func (h *InvoiceHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.invoiceService.Delete(c.Request.Context(), id); err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"message": "invoice deleted"})
}

// MarkPaid handles POST /api/v1/invoices/:id/mark-paid
func (h *InvoiceHandler) MarkPaid(c *gin.Context) {
	h.transition(c, h.invoiceService.MarkPaid)
}

// MarkUnpaid handles POST /api/v1/invoices/:id/mark-unpaid
func (h *InvoiceHandler) MarkUnpaid(c *gin.Context) {
	h.transition(c, h.invoiceService.MarkUnpaid)
}

func (h *InvoiceHandler) transition(c *gin.Context, fn func(ctx context.Context, id uuid.UUID) (*domain.Invoice, error)) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	inv, err := fn(c.Request.Context(), id)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, inv)
}

// Duplicate handles POST /api/v1/invoices/:id/duplicate
func (h *InvoiceHandler) Duplicate(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	inv, err := h.invoiceService.Duplicate(c.Request.Context(), id)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, inv)
}

// Summary handles GET /api/v1/invoices/summary
func (h *InvoiceHandler) Summary(c *gin.Context) {
	summary, err := h.invoiceService.Summary(c.Request.Context())
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, summary)
}

// Export handles GET /api/v1/invoices/export
// It accepts the same filters as List and streams every matching invoice as CSV.
func (h *InvoiceHandler) Export(c *gin.Context) {
	filter, ok := parseInvoiceFilter(c)
	if !ok {
		return
	}

	var buf bytes.Buffer
	if err := h.invoiceService.Export(c.Request.Context(), &buf, filter, csvexport.LayoutInvoices); err != nil {
		HandleError(c, err)
		return
	}

	writeCSV(c, csvexport.BuildFilename("invoices", time.Now()), buf.Bytes())
}

// parseInvoiceFilter reads status, q, date_from, date_to, customer_id, sort
// and order from the query string. It writes a 400 and returns false on bad input.
func parseInvoiceFilter(c *gin.Context) (*domain.InvoiceFilter, bool) {
	filter := &domain.InvoiceFilter{
		Query:  strings.TrimSpace(c.Query("q")),
		SortBy: domain.InvoiceSortDate,
	}

	if raw := c.Query("status"); raw != "" {
		for _, part := range strings.Split(raw, ",") {
			if strings.TrimSpace(part) == "" {
				continue
			}
			st, err := domain.ParseInvoiceStatus(part)
			if err != nil {
				HandleError(c, err)
				return nil, false
			}
			filter.Statuses = append(filter.Statuses, st)
		}
	}

	for _, p := range []struct {
		key string
		dst **time.Time
	}{
		{"date_from", &filter.DateFrom},
		{"date_to", &filter.DateTo},
	} {
		raw := strings.TrimSpace(c.Query(p.key))
		if raw == "" {
			continue
		}
		t, err := time.Parse(filterDateLayout, raw)
		if err != nil {
			RespondError(c, http.StatusBadRequest, "INVALID_DATE", p.key+" must use the YYYY-MM-DD format")
			return nil, false
		}
		*p.dst = &t
	}

	if raw := c.Query("customer_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid customer_id")
			return nil, false
		}
		filter.CustomerID = &id
	}

	switch sort := domain.InvoiceSort(strings.ToLower(c.DefaultQuery("sort", string(domain.InvoiceSortDate)))); sort {
	case domain.InvoiceSortDate, domain.InvoiceSortTotal, domain.InvoiceSortNumber:
		filter.SortBy = sort
	default:
		RespondError(c, http.StatusBadRequest, "INVALID_SORT", "sort must be date, total or number")
		return nil, false
	}

	switch strings.ToLower(c.DefaultQuery("order", "desc")) {
	case "asc":
		filter.SortAsc = true
	case "desc":
	default:
		RespondError(c, http.StatusBadRequest, "INVALID_ORDER", "order must be asc or desc")
		return nil, false
	}

	return filter, true
}

// parsePagination extracts offset and limit from query params with defaults.
func parsePagination(c *gin.Context) (offset, limit int) {
	offset, _ = strconv.Atoi(c.DefaultQuery("offset", "0"))
	limit, _ = strconv.Atoi(c.DefaultQuery("limit", "20"))
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	return offset, limit
}
