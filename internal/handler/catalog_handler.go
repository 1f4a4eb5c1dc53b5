package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"gstbook/internal/service"
)

// ItemLibraryHandler handles the saved item library endpoints.
type ItemLibraryHandler struct {
	libraryService service.ItemLibraryService
}

// NewItemLibraryHandler creates a new ItemLibraryHandler.
func NewItemLibraryHandler(libraryService service.ItemLibraryService) *ItemLibraryHandler {
	return &ItemLibraryHandler{libraryService: libraryService}
}

// Create handles POST /api/v1/item-library
func (h *ItemLibraryHandler) Create(c *gin.Context) {
	var req service.LibraryItemInput
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "description is required")
		return
	}

	item, err := h.libraryService.Create(c.Request.Context(), req)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, item)
}

// List handles GET /api/v1/item-library?q=
func (h *ItemLibraryHandler) List(c *gin.Context) {
	items, err := h.libraryService.List(c.Request.Context(), c.Query("q"))
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, items)
}

// GetByID handles GET /api/v1/item-library/:id
func (h *ItemLibraryHandler) GetByID(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	item, err := h.libraryService.GetByID(c.Request.Context(), id)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, item)
}

// Update handles PUT /api/v1/item-library/:id
func (h *ItemLibraryHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req service.UpdateLibraryItemInput
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "invalid request body")
		return
	}

	item, err := h.libraryService.Update(c.Request.Context(), id, req)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, item)
}

// Delete handles DELETE /api/v1/item-library/:id
func (h *ItemLibraryHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.libraryService.Delete(c.Request.Context(), id); err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"message": "item deleted"})
}

// MasterDataHandler serves the curated services and products catalogs.
type MasterDataHandler struct {
	masterService service.MasterDataService
}

// NewMasterDataHandler creates a new MasterDataHandler.
func NewMasterDataHandler(masterService service.MasterDataService) *MasterDataHandler {
	return &MasterDataHandler{masterService: masterService}
}

func bindMasterSearch(c *gin.Context) (service.MasterSearchInput, bool) {
	var input service.MasterSearchInput
	if err := c.ShouldBindQuery(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "limit must be a number")
		return input, false
	}
	return input, true
}

// SearchServices handles GET /api/v1/master-services/search
func (h *MasterDataHandler) SearchServices(c *gin.Context) {
	input, ok := bindMasterSearch(c)
	if !ok {
		return
	}

	rows, err := h.masterService.SearchServices(c.Request.Context(), input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, rows)
}

// ServiceCategories handles GET /api/v1/master-services/categories
func (h *MasterDataHandler) ServiceCategories(c *gin.Context) {
	categories, err := h.masterService.ServiceCategories(c.Request.Context())
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, categories)
}

// RecordServiceUsage handles POST /api/v1/master-services/:id/use
func (h *MasterDataHandler) RecordServiceUsage(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.masterService.RecordServiceUsage(c.Request.Context(), id); err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"message": "usage recorded"})
}

// SearchProducts handles GET /api/v1/master-products/search
func (h *MasterDataHandler) SearchProducts(c *gin.Context) {
	input, ok := bindMasterSearch(c)
	if !ok {
		return
	}

	rows, err := h.masterService.SearchProducts(c.Request.Context(), input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, rows)
}

// ProductCategories handles GET /api/v1/master-products/categories
func (h *MasterDataHandler) ProductCategories(c *gin.Context) {
	categories, err := h.masterService.ProductCategories(c.Request.Context())
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, categories)
}

// Search handles GET /api/v1/master-data/search
func (h *MasterDataHandler) Search(c *gin.Context) {
	input, ok := bindMasterSearch(c)
	if !ok {
		return
	}

	rows, err := h.masterService.Search(c.Request.Context(), input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, rows)
}

// Categories handles GET /api/v1/master-data/categories
func (h *MasterDataHandler) Categories(c *gin.Context) {
	categories, err := h.masterService.Categories(c.Request.Context())
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, categories)
}
