package handlers

import (
	"github.com/gin-gonic/gin"

	"pharmapos/internal/core/apperror"
	"pharmapos/internal/core/id"
	"pharmapos/internal/domain/inventory"
	"pharmapos/internal/infrastructure/http/v1/dto"
)

// InventoryHandler handles the medicine stock listing and additions.
type InventoryHandler struct {
	*BaseHandler
	service *inventory.Service
}

// NewInventoryHandler creates a new inventory handler.
func NewInventoryHandler(base *BaseHandler, service *inventory.Service) *InventoryHandler {
	return &InventoryHandler{
		BaseHandler: base,
		service:     service,
	}
}

// List handles GET /inventory.
func (h *InventoryHandler) List(c *gin.Context) {
	rows, err := h.service.List(c.Request.Context())
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, rows)
}

// Get handles GET /inventory/:id.
func (h *InventoryHandler) Get(c *gin.Context) {
	stockID, err := id.Parse(c.Param("id"))
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid id format"))
		return
	}

	stock, err := h.service.Get(c.Request.Context(), stockID)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, stock)
}

// Add handles POST /inventory.
func (h *InventoryHandler) Add(c *gin.Context) {
	var req dto.AddMedicineRequest
	if !h.BindJSON(c, &req) {
		return
	}

	params, err := req.ToParams()
	if err != nil {
		h.Error(c, err)
		return
	}

	stockID, err := h.service.Add(c.Request.Context(), params)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.Created(c, stockID.String())
}
