package handler_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gstbook/internal/domain"
	"gstbook/internal/gst"
	"gstbook/internal/handler"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestContext(method, target string, body string) (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	if body == "" {
		c.Request = httptest.NewRequest(method, target, http.NoBody)
	} else {
		c.Request = httptest.NewRequest(method, target, strings.NewReader(body))
		c.Request.Header.Set("Content-Type", "application/json")
	}
	return c, w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) handler.APIResponse {
	t.Helper()
	var resp handler.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestMapDomainError(t *testing.T) {
	tests := []struct {
		err        error
		wantStatus int
		wantCode   string
	}{
		{domain.ErrCustomerNotFound, http.StatusNotFound, "CUSTOMER_NOT_FOUND"},
		{domain.ErrInvoiceNotFound, http.StatusNotFound, "INVOICE_NOT_FOUND"},
		{domain.ErrPaymentNotFound, http.StatusNotFound, "PAYMENT_NOT_FOUND"},
		{domain.ErrHSNCodeNotFound, http.StatusNotFound, "HSN_CODE_NOT_FOUND"},
		{domain.ErrNotFound, http.StatusNotFound, "NOT_FOUND"},
		{domain.ErrCustomerHasInvoices, http.StatusConflict, "CUSTOMER_HAS_INVOICES"},
		{domain.ErrDuplicateInvoiceNo, http.StatusConflict, "DUPLICATE_INVOICE_NUMBER"},
		{domain.ErrNoLineItems, http.StatusBadRequest, "NO_LINE_ITEMS"},
		{domain.ErrInvalidLineItem, http.StatusBadRequest, "INVALID_LINE_ITEM"},
		{domain.ErrInvalidGSTRate, http.StatusBadRequest, "INVALID_GST_RATE"},
		{domain.ErrInvalidGSTIN, http.StatusBadRequest, "INVALID_GSTIN"},
		{domain.ErrInvalidStateCode, http.StatusBadRequest, "INVALID_STATE_CODE"},
		{domain.ErrInvalidPaymentAmount, http.StatusBadRequest, "INVALID_PAYMENT_AMOUNT"},
		{domain.ErrInvalidPaymentMethod, http.StatusBadRequest, "INVALID_PAYMENT_METHOD"},
		{domain.ErrInvalidInvoiceStatus, http.StatusBadRequest, "INVALID_STATUS"},
		{domain.ErrInvalidDateRange, http.StatusBadRequest, "INVALID_DATE_RANGE"},
		{domain.ErrInvalidDate, http.StatusBadRequest, "INVALID_DATE"},
		{domain.ErrCustomerNameRequired, http.StatusBadRequest, "NAME_REQUIRED"},
		{domain.ErrEmptySearchQuery, http.StatusBadRequest, "EMPTY_QUERY"},
		{domain.ErrLibraryItemNotFound, http.StatusNotFound, "LIBRARY_ITEM_NOT_FOUND"},
		{domain.ErrMasterServiceNotFound, http.StatusNotFound, "MASTER_SERVICE_NOT_FOUND"},
		{domain.ErrTemplateNotFound, http.StatusNotFound, "TEMPLATE_NOT_FOUND"},
		{domain.ErrLastTemplate, http.StatusConflict, "LAST_TEMPLATE"},
		{domain.ErrDescriptionRequired, http.StatusBadRequest, "DESCRIPTION_REQUIRED"},
		{domain.ErrInvalidDataType, http.StatusBadRequest, "INVALID_DATA_TYPE"},
		{fmt.Errorf("invoiceRepo.GetByID: %w", domain.ErrInvoiceNotFound), http.StatusNotFound, "INVOICE_NOT_FOUND"},
		{errors.New("connection reset"), http.StatusInternalServerError, "INTERNAL_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.wantCode, func(t *testing.T) {
			status, code, msg := handler.MapDomainError(tt.err)
			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantCode, code)
			assert.NotEmpty(t, msg)
		})
	}
}

func TestMapDomainError_GSTRateMessageListsSlabs(t *testing.T) {
	_, _, msg := handler.MapDomainError(domain.ErrInvalidGSTRate)

	assert.Equal(t, "gst rate must be one of 0, 5, 12, 18, 28", msg)
	for _, s := range gst.Slabs {
		assert.Contains(t, msg, s.String())
	}
	assert.NotContains(t, msg, "0.25")
}

func TestHandleError_HidesInternalDetails(t *testing.T) {
	c, w := newTestContext(http.MethodGet, "/api/v1/invoices", "")

	handler.HandleError(c, errors.New("pq: password authentication failed"))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	resp := decode(t, w)
	assert.False(t, resp.Success)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "INTERNAL_ERROR", resp.Error.Code)
	assert.NotContains(t, w.Body.String(), "password")
}
