package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"gstbook/internal/service"
)

// BusinessHandler handles the seller profile endpoints.
type BusinessHandler struct {
	businessService service.BusinessService
}

// NewBusinessHandler creates a new BusinessHandler.
func NewBusinessHandler(businessService service.BusinessService) *BusinessHandler {
	return &BusinessHandler{businessService: businessService}
}

// Get handles GET /api/v1/business
func (h *BusinessHandler) Get(c *gin.Context) {
	profile, err := h.businessService.Get(c.Request.Context())
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, profile)
}

// Update handles PUT /api/v1/business
func (h *BusinessHandler) Update(c *gin.Context) {
	var req service.UpdateBusinessInput
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "invalid request body")
		return
	}

	profile, err := h.businessService.Update(c.Request.Context(), req)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, profile)
}
