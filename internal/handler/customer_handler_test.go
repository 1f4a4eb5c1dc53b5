package handler_test

import (
	"encoding/csv"
	"net/http"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"gstbook/internal/csvexport"
	"gstbook/internal/domain"
	"gstbook/internal/handler"
	"gstbook/internal/service"
	"gstbook/mocks"
)

func newCustomerHandler() (*handler.CustomerHandler, *mocks.MockCustomerService, *mocks.MockInvoiceService) {
	custSvc := new(mocks.MockCustomerService)
	invSvc := new(mocks.MockInvoiceService)
	return handler.NewCustomerHandler(custSvc, invSvc), custSvc, invSvc
}

func TestCustomerHandler_Create(t *testing.T) {
	h, svc, _ := newCustomerHandler()
	input := service.CreateCustomerInput{Name: "Acme Traders", GSTIN: "29abcde1234f1z5"}
	svc.On("Create", mock.Anything, input).Return(&domain.Customer{ID: uuid.New(), Name: "Acme Traders", GSTIN: "29ABCDE1234F1Z5"}, nil)

	c, w := newTestContext(http.MethodPost, "/api/v1/customers", `{"name":"Acme Traders","gstin":"29abcde1234f1z5"}`)
	h.Create(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	svc.AssertExpectations(t)
}

func TestCustomerHandler_Create_MissingName(t *testing.T) {
	h, svc, _ := newCustomerHandler()

	c, w := newTestContext(http.MethodPost, "/api/v1/customers", `{"gstin":"29ABCDE1234F1Z5"}`)
	h.Create(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "INVALID_REQUEST", decode(t, w).Error.Code)
	svc.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCustomerHandler_Create_InvalidGSTIN(t *testing.T) {
	h, svc, _ := newCustomerHandler()
	svc.On("Create", mock.Anything, mock.Anything).Return(nil, domain.ErrInvalidGSTIN)

	c, w := newTestContext(http.MethodPost, "/api/v1/customers", `{"name":"Acme","gstin":"123"}`)
	h.Create(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "INVALID_GSTIN", decode(t, w).Error.Code)
}

func TestCustomerHandler_List(t *testing.T) {
	h, svc, _ := newCustomerHandler()
	svc.On("List", mock.Anything, "acme", 0, 20).Return([]domain.Customer{{Name: "Acme"}}, 1, nil)

	c, w := newTestContext(http.MethodGet, "/api/v1/customers?q=+acme+", "")
	h.List(c)

	assert.Equal(t, http.StatusOK, w.Code)
	resp := decode(t, w)
	require.NotNil(t, resp.Meta)
	assert.Equal(t, 1, resp.Meta.Total)
	svc.AssertExpectations(t)
}

func TestCustomerHandler_Update(t *testing.T) {
	h, svc, _ := newCustomerHandler()
	id := uuid.New()
	phone := "9876543210"
	svc.On("Update", mock.Anything, id, service.UpdateCustomerInput{Phone: &phone}).
		Return(&domain.Customer{ID: id, Phone: phone}, nil)

	c, w := newTestContext(http.MethodPut, "/api/v1/customers/"+id.String(), `{"phone":"9876543210"}`)
	c.Params = gin.Params{{Key: "id", Value: id.String()}}
	h.Update(c)

	assert.Equal(t, http.StatusOK, w.Code)
	svc.AssertExpectations(t)
}

func TestCustomerHandler_Delete_HasInvoices(t *testing.T) {
	h, svc, _ := newCustomerHandler()
	id := uuid.New()
	svc.On("Delete", mock.Anything, id).Return(domain.ErrCustomerHasInvoices)

	c, w := newTestContext(http.MethodDelete, "/api/v1/customers/"+id.String(), "")
	c.Params = gin.Params{{Key: "id", Value: id.String()}}
	h.Delete(c)

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "CUSTOMER_HAS_INVOICES", decode(t, w).Error.Code)
}

func TestCustomerHandler_GetByID_InvalidID(t *testing.T) {
	h, svc, _ := newCustomerHandler()

	c, w := newTestContext(http.MethodGet, "/api/v1/customers/42", "")
	c.Params = gin.Params{{Key: "id", Value: "42"}}
	h.GetByID(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	svc.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
}

func TestCustomerHandler_ExportInvoices(t *testing.T) {
	h, custSvc, invSvc := newCustomerHandler()
	id := uuid.New()
	custSvc.On("GetByID", mock.Anything, id).Return(&domain.Customer{ID: id, Name: "Acme / Traders"}, nil)
	invSvc.On("Export", mock.Anything, mock.Anything, mock.MatchedBy(func(f *domain.InvoiceFilter) bool {
		return f.CustomerID != nil && *f.CustomerID == id
	}), csvexport.LayoutCustomerInvoices).
		Return("Invoice Number,Date,Subtotal,CGST,SGST,IGST,Total,Status,Paid On\n", nil)

	c, w := newTestContext(http.MethodGet, "/api/v1/customers/"+id.String()+"/invoices/export", "")
	c.Params = gin.Params{{Key: "id", Value: id.String()}}
	h.ExportInvoices(c)

	assert.Equal(t, http.StatusOK, w.Code)
	disposition := w.Header().Get("Content-Disposition")
	assert.Contains(t, disposition, "Acme_Traders_invoices_")
	assert.NotContains(t, disposition, "/")

	body := w.Body.Bytes()
	require.True(t, len(body) >= 3)
	assert.Equal(t, csvexport.BOM, body[:3])
	records, err := csv.NewReader(strings.NewReader(string(body[3:]))).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Len(t, records[0], 9)

	custSvc.AssertExpectations(t)
	invSvc.AssertExpectations(t)
}

func TestCustomerHandler_ExportInvoices_UnknownCustomer(t *testing.T) {
	h, custSvc, invSvc := newCustomerHandler()
	id := uuid.New()
	custSvc.On("GetByID", mock.Anything, id).Return(nil, domain.ErrCustomerNotFound)

	c, w := newTestContext(http.MethodGet, "/api/v1/customers/"+id.String()+"/invoices/export", "")
	c.Params = gin.Params{{Key: "id", Value: id.String()}}
	h.ExportInvoices(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
	invSvc.AssertNotCalled(t, "Export", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}
