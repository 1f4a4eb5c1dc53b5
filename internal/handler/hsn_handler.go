package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"gstbook/internal/hsn"
	"gstbook/internal/service"
)

// HSNHandler serves HSN/SAC code suggestions and master table lookups.
type HSNHandler struct {
	hsnService service.HSNService
}

// NewHSNHandler creates a new HSNHandler.
func NewHSNHandler(hsnService service.HSNService) *HSNHandler {
	return &HSNHandler{hsnService: hsnService}
}

type codeResponse struct {
	Code        string       `json:"code"`
	Description string       `json:"description"`
	GSTRate     float64      `json:"gst_rate"`
	Type        hsn.CodeType `json:"type"`
	Category    string       `json:"category,omitempty"`
	Unit        string       `json:"unit,omitempty"`
}

// Suggest handles GET /api/v1/hsn/suggest?q=
// The body is a bare JSON array so autocomplete widgets can consume it directly.
func (h *HSNHandler) Suggest(c *gin.Context) {
	matches, err := h.hsnService.Suggest(c.Request.Context(), c.Query("q"))
	if err != nil {
		HandleError(c, err)
		return
	}
	if matches == nil {
		matches = []hsn.Match{}
	}
	c.JSON(http.StatusOK, matches)
}

// Search handles GET /api/v1/hsn/search
func (h *HSNHandler) Search(c *gin.Context) {
	var input service.HSNSearchInput
	if err := c.ShouldBindQuery(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "limit must be a number")
		return
	}

	codes, err := h.hsnService.Search(c.Request.Context(), input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, codes)
}

// RecordUsage handles POST /api/v1/hsn/:id/use
func (h *HSNHandler) RecordUsage(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.hsnService.RecordUsage(c.Request.Context(), id); err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"message": "usage recorded"})
}

// Lookup handles GET /api/v1/hsn/codes/:code
func (h *HSNHandler) Lookup(c *gin.Context) {
	code := strings.TrimSpace(c.Param("code"))

	codes, err := h.hsnService.Lookup(c.Request.Context(), code)
	if err != nil {
		HandleError(c, err)
		return
	}

	out := make([]codeResponse, 0, len(codes))
	for i := range codes {
		out = append(out, codeResponse{
			Code:        codes[i].Code,
			Description: codes[i].Description,
			GSTRate:     codes[i].GSTRate,
			Type:        codes[i].Type,
			Category:    codes[i].Category,
			Unit:        codes[i].Unit,
		})
	}
	RespondOK(c, out)
}
