package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"pharmapos/internal/domain/ledger"
	"pharmapos/internal/domain/purchases"
	"pharmapos/internal/infrastructure/http/v1/dto"
)

// PurchasesHandler handles stock intake.
type PurchasesHandler struct {
	*BaseHandler
	service  *purchases.Service
	recorder *ledger.Service
}

// NewPurchasesHandler creates a new purchases handler.
func NewPurchasesHandler(base *BaseHandler, service *purchases.Service, recorder *ledger.Service) *PurchasesHandler {
	return &PurchasesHandler{
		BaseHandler: base,
		service:     service,
		recorder:    recorder,
	}
}

// Receive handles POST /purchases.
func (h *PurchasesHandler) Receive(c *gin.Context) {
	var req dto.ReceivePurchaseRequest
	if !h.BindJSON(c, &req) {
		return
	}

	params, err := req.ToParams()
	if err != nil {
		h.Error(c, err)
		return
	}

	result, err := h.service.Receive(c.Request.Context(), params)
	if err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, result)
}

// List handles GET /purchases.
func (h *PurchasesHandler) List(c *gin.Context) {
	limit := h.ParseIntQuery(c, "limit", 30)

	records, err := h.recorder.RecentPurchases(c.Request.Context(), limit)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, records)
}
