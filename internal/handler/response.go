package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"gstbook/internal/domain"
	"gstbook/internal/gst"
	"gstbook/internal/logger"
)

var invalidGSTRateMessage = "gst rate must be one of " + slabList()

func slabList() string {
	parts := make([]string, 0, len(gst.Slabs))
	for _, s := range gst.Slabs {
		parts = append(parts, s.String())
	}
	return strings.Join(parts, ", ")
}

// APIResponse is the standard envelope for all API responses.
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *APIError   `json:"error,omitempty"`
	Meta    *PagMeta    `json:"meta,omitempty"`
}

// APIError holds error details in the response.
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// PagMeta holds pagination metadata.
type PagMeta struct {
	Total  int `json:"total"`
	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// RespondOK sends a 200 success response.
func RespondOK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, APIResponse{Success: true, Data: data})
}

// RespondCreated sends a 201 success response.
func RespondCreated(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, APIResponse{Success: true, Data: data})
}

// RespondPaginated sends a 200 success response with pagination metadata.
func RespondPaginated(c *gin.Context, data interface{}, meta PagMeta) {
	c.JSON(http.StatusOK, APIResponse{Success: true, Data: data, Meta: &meta})
}

// RespondError sends an error response with the given status code.
func RespondError(c *gin.Context, status int, code, msg string) {
	c.JSON(status, APIResponse{
		Success: false,
		Error:   &APIError{Code: code, Message: msg},
	})
}

// MapDomainError translates domain errors to HTTP status codes and error codes.
func MapDomainError(err error) (status int, code, msg string) {
	switch {
	case errors.Is(err, domain.ErrCustomerNotFound):
		return http.StatusNotFound, "CUSTOMER_NOT_FOUND", "customer not found"
	case errors.Is(err, domain.ErrInvoiceNotFound):
		return http.StatusNotFound, "INVOICE_NOT_FOUND", "invoice not found"
	case errors.Is(err, domain.ErrPaymentNotFound):
		return http.StatusNotFound, "PAYMENT_NOT_FOUND", "payment not found"
	case errors.Is(err, domain.ErrHSNCodeNotFound):
		return http.StatusNotFound, "HSN_CODE_NOT_FOUND", "hsn code not found"
	case errors.Is(err, domain.ErrLibraryItemNotFound):
		return http.StatusNotFound, "LIBRARY_ITEM_NOT_FOUND", "library item not found"
	case errors.Is(err, domain.ErrMasterServiceNotFound):
		return http.StatusNotFound, "MASTER_SERVICE_NOT_FOUND", "master service not found"
	case errors.Is(err, domain.ErrTemplateNotFound):
		return http.StatusNotFound, "TEMPLATE_NOT_FOUND", "template not found"
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound, "NOT_FOUND", "resource not found"
	case errors.Is(err, domain.ErrCustomerHasInvoices):
		return http.StatusConflict, "CUSTOMER_HAS_INVOICES", "customer has invoices and cannot be deleted"
	case errors.Is(err, domain.ErrDuplicateInvoiceNo):
		return http.StatusConflict, "DUPLICATE_INVOICE_NUMBER", "invoice number already exists"
	case errors.Is(err, domain.ErrLastTemplate):
		return http.StatusConflict, "LAST_TEMPLATE", err.Error()
	case errors.Is(err, domain.ErrNoLineItems):
		return http.StatusBadRequest, "NO_LINE_ITEMS", err.Error()
	case errors.Is(err, domain.ErrInvalidLineItem):
		return http.StatusBadRequest, "INVALID_LINE_ITEM", err.Error()
	case errors.Is(err, domain.ErrInvalidGSTRate):
		return http.StatusBadRequest, "INVALID_GST_RATE", invalidGSTRateMessage
	case errors.Is(err, domain.ErrInvalidGSTIN):
		return http.StatusBadRequest, "INVALID_GSTIN", err.Error()
	case errors.Is(err, domain.ErrInvalidStateCode):
		return http.StatusBadRequest, "INVALID_STATE_CODE", err.Error()
	case errors.Is(err, domain.ErrInvalidPaymentAmount):
		return http.StatusBadRequest, "INVALID_PAYMENT_AMOUNT", err.Error()
	case errors.Is(err, domain.ErrInvalidPaymentMethod):
		return http.StatusBadRequest, "INVALID_PAYMENT_METHOD", err.Error()
	case errors.Is(err, domain.ErrInvalidInvoiceStatus):
		return http.StatusBadRequest, "INVALID_STATUS", "status must be UNPAID, PARTIALLY_PAID or PAID"
	case errors.Is(err, domain.ErrInvalidDateRange):
		return http.StatusBadRequest, "INVALID_DATE_RANGE", err.Error()
	case errors.Is(err, domain.ErrInvalidDate):
		return http.StatusBadRequest, "INVALID_DATE", err.Error()
	case errors.Is(err, domain.ErrCustomerNameRequired):
		return http.StatusBadRequest, "NAME_REQUIRED", err.Error()
	case errors.Is(err, domain.ErrEmptySearchQuery):
		return http.StatusBadRequest, "EMPTY_QUERY", err.Error()
	case errors.Is(err, domain.ErrDescriptionRequired):
		return http.StatusBadRequest, "DESCRIPTION_REQUIRED", err.Error()
	case errors.Is(err, domain.ErrTemplateNameRequired):
		return http.StatusBadRequest, "NAME_REQUIRED", err.Error()
	case errors.Is(err, domain.ErrInvalidDataType):
		return http.StatusBadRequest, "INVALID_DATA_TYPE", err.Error()
	default:
		return http.StatusInternalServerError, "INTERNAL_ERROR", "an internal error occurred"
	}
}

// HandleError maps a domain error and sends the appropriate error response.
func HandleError(c *gin.Context, err error) {
	status, code, msg := MapDomainError(err)
	if status >= http.StatusInternalServerError {
		logger.FromContext(c.Request.Context()).Error("internal error",
			zap.String("path", c.Request.URL.Path),
			zap.Error(err),
		)
		_ = c.Error(err)
	}
	RespondError(c, status, code, msg)
}

// parseIDParam reads a UUID path parameter, writing a 400 when it is malformed.
func parseIDParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid "+name)
		return uuid.Nil, false
	}
	return id, true
}
