package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"gstbook/internal/service"
)

// TaxHandler prices line items without persisting an invoice.
type TaxHandler struct {
	invoiceService service.InvoiceService
}

// NewTaxHandler creates a new TaxHandler.
func NewTaxHandler(invoiceService service.InvoiceService) *TaxHandler {
	return &TaxHandler{invoiceService: invoiceService}
}

// Compute handles POST /api/v1/tax/compute
func (h *TaxHandler) Compute(c *gin.Context) {
	var req service.TaxPreviewInput
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "invalid request body")
		return
	}

	preview, err := h.invoiceService.Preview(c.Request.Context(), req)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, preview)
}
