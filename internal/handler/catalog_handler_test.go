package handler_test

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"gstbook/internal/domain"
	"gstbook/internal/handler"
	"gstbook/internal/service"
	"gstbook/mocks"
)

func TestItemLibraryHandler_Create(t *testing.T) {
	svc := new(mocks.MockItemLibraryService)
	h := handler.NewItemLibraryHandler(svc)
	svc.On("Create", mock.Anything, mock.MatchedBy(func(in service.LibraryItemInput) bool {
		return in.Description == "Rice" && in.GSTRate.Equal(decimal.NewFromInt(5))
	})).Return(&domain.LibraryItem{ID: uuid.New(), Description: "Rice", Unit: "Kg"}, nil)

	c, w := newTestContext(http.MethodPost, "/api/v1/item-library", `{"description":"Rice","hsn_code":"1006","gst_rate":"5","unit":"Kg"}`)
	h.Create(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	svc.AssertExpectations(t)
}

func TestItemLibraryHandler_Create_MissingDescription(t *testing.T) {
	svc := new(mocks.MockItemLibraryService)
	h := handler.NewItemLibraryHandler(svc)

	c, w := newTestContext(http.MethodPost, "/api/v1/item-library", `{"gst_rate":"5"}`)
	h.Create(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	svc.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestItemLibraryHandler_List_PassesQuery(t *testing.T) {
	svc := new(mocks.MockItemLibraryService)
	h := handler.NewItemLibraryHandler(svc)
	svc.On("List", mock.Anything, "grain").Return([]domain.LibraryItem{}, nil)

	c, w := newTestContext(http.MethodGet, "/api/v1/item-library?q=grain", "")
	h.List(c)

	assert.Equal(t, http.StatusOK, w.Code)
	svc.AssertExpectations(t)
}

func TestItemLibraryHandler_GetByID_NotFound(t *testing.T) {
	svc := new(mocks.MockItemLibraryService)
	h := handler.NewItemLibraryHandler(svc)
	id := uuid.New()
	svc.On("GetByID", mock.Anything, id).Return(nil, domain.ErrLibraryItemNotFound)

	c, w := newTestContext(http.MethodGet, "/api/v1/item-library/"+id.String(), "")
	c.Params = gin.Params{{Key: "id", Value: id.String()}}
	h.GetByID(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "LIBRARY_ITEM_NOT_FOUND", decode(t, w).Error.Code)
}

func TestItemLibraryHandler_Delete_InvalidID(t *testing.T) {
	svc := new(mocks.MockItemLibraryService)
	h := handler.NewItemLibraryHandler(svc)

	c, w := newTestContext(http.MethodDelete, "/api/v1/item-library/7", "")
	c.Params = gin.Params{{Key: "id", Value: "7"}}
	h.Delete(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "INVALID_ID", decode(t, w).Error.Code)
}

func TestMasterDataHandler_SearchServices(t *testing.T) {
	svc := new(mocks.MockMasterDataService)
	h := handler.NewMasterDataHandler(svc)
	svc.On("SearchServices", mock.Anything, service.MasterSearchInput{Query: "web", BusinessType: "service", Limit: 5}).
		Return([]domain.MasterService{{ID: uuid.New(), Name: "Web design"}}, nil)

	c, w := newTestContext(http.MethodGet, "/api/v1/master-services/search?q=web&business_type=service&limit=5", "")
	h.SearchServices(c)

	assert.Equal(t, http.StatusOK, w.Code)
	svc.AssertExpectations(t)
}

func TestMasterDataHandler_Search(t *testing.T) {
	svc := new(mocks.MockMasterDataService)
	h := handler.NewMasterDataHandler(svc)
	svc.On("Search", mock.Anything, service.MasterSearchInput{Query: "audit", DataType: "service"}).
		Return([]domain.MasterDataResult{{ID: "a", Name: "Audit", Type: domain.MasterDataService, RelevanceScore: 100}}, nil)

	c, w := newTestContext(http.MethodGet, "/api/v1/master-data/search?q=audit&data_type=service", "")
	h.Search(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t,
		`{"success":true,"data":[{"id":"a","name":"Audit","description":"","category":"","code":"","gst_rate":0,"type":"service","usage_count":0,"relevance_score":100}]}`,
		w.Body.String())
}

func TestMasterDataHandler_Search_Errors(t *testing.T) {
	t.Run("bad limit", func(t *testing.T) {
		svc := new(mocks.MockMasterDataService)
		h := handler.NewMasterDataHandler(svc)

		c, w := newTestContext(http.MethodGet, "/api/v1/master-data/search?q=a&limit=x", "")
		h.Search(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		svc.AssertNotCalled(t, "Search", mock.Anything, mock.Anything)
	})

	t.Run("bad data type", func(t *testing.T) {
		svc := new(mocks.MockMasterDataService)
		h := handler.NewMasterDataHandler(svc)
		svc.On("Search", mock.Anything, service.MasterSearchInput{Query: "a", DataType: "x"}).Return(nil, domain.ErrInvalidDataType)

		c, w := newTestContext(http.MethodGet, "/api/v1/master-data/search?q=a&data_type=x", "")
		h.Search(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "INVALID_DATA_TYPE", decode(t, w).Error.Code)
	})
}

func TestMasterDataHandler_RecordServiceUsage(t *testing.T) {
	svc := new(mocks.MockMasterDataService)
	h := handler.NewMasterDataHandler(svc)
	id := uuid.New()
	svc.On("RecordServiceUsage", mock.Anything, id).Return(domain.ErrMasterServiceNotFound)

	c, w := newTestContext(http.MethodPost, "/api/v1/master-services/"+id.String()+"/use", "")
	c.Params = gin.Params{{Key: "id", Value: id.String()}}
	h.RecordServiceUsage(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestMasterDataHandler_Categories(t *testing.T) {
	svc := new(mocks.MockMasterDataService)
	h := handler.NewMasterDataHandler(svc)
	svc.On("Categories", mock.Anything).Return(&domain.MasterDataCategories{
		Services: []domain.Category{{Name: "design", DisplayName: "Design"}},
		Products: []domain.Category{},
	}, nil)

	c, w := newTestContext(http.MethodGet, "/api/v1/master-data/categories", "")
	h.Categories(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t,
		`{"success":true,"data":{"services":[{"name":"design","display_name":"Design"}],"products":[]}}`,
		w.Body.String())
}

func TestTemplateHandler_Create(t *testing.T) {
	svc := new(mocks.MockTemplateService)
	h := handler.NewTemplateHandler(svc)
	svc.On("Create", mock.Anything, service.CreateTemplateInput{Name: "Classic"}).
		Return(&domain.InvoiceTemplate{ID: uuid.New(), Name: "Classic", IsDefault: true}, nil)

	c, w := newTestContext(http.MethodPost, "/api/v1/templates", `{"name":"Classic"}`)
	h.Create(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	resp := decode(t, w)
	require.True(t, resp.Success)
}

func TestTemplateHandler_Delete_LastTemplate(t *testing.T) {
	svc := new(mocks.MockTemplateService)
	h := handler.NewTemplateHandler(svc)
	id := uuid.New()
	svc.On("Delete", mock.Anything, id).Return(domain.ErrLastTemplate)

	c, w := newTestContext(http.MethodDelete, "/api/v1/templates/"+id.String(), "")
	c.Params = gin.Params{{Key: "id", Value: id.String()}}
	h.Delete(c)

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "LAST_TEMPLATE", decode(t, w).Error.Code)
}

func TestTemplateHandler_Update(t *testing.T) {
	svc := new(mocks.MockTemplateService)
	h := handler.NewTemplateHandler(svc)
	id := uuid.New()
	yes := true
	svc.On("Update", mock.Anything, id, service.UpdateTemplateInput{IsDefault: &yes}).
		Return(&domain.InvoiceTemplate{ID: id, Name: "Modern", IsDefault: true}, nil)

	c, w := newTestContext(http.MethodPut, "/api/v1/templates/"+id.String(), `{"is_default":true}`)
	c.Params = gin.Params{{Key: "id", Value: id.String()}}
	h.Update(c)

	assert.Equal(t, http.StatusOK, w.Code)
	svc.AssertExpectations(t)
}
