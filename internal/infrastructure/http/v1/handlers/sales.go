package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"pharmapos/internal/domain/sales"
	"pharmapos/internal/infrastructure/http/v1/dto"
	"pharmapos/pkg/logger"
)

// SalesHandler handles sale commits.
type SalesHandler struct {
	*BaseHandler
	service *sales.Service
}

// NewSalesHandler creates a new sales handler.
func NewSalesHandler(base *BaseHandler, service *sales.Service) *SalesHandler {
	return &SalesHandler{
		BaseHandler: base,
		service:     service,
	}
}

// Commit handles POST /sales. The cart either commits in full or not at all;
// a stock shortage on any line rejects the whole request.
func (h *SalesHandler) Commit(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.CommitSaleRequest
	if !h.BindJSON(c, &req) {
		return
	}

	cart, err := req.ToCart()
	if err != nil {
		h.Error(c, err)
		return
	}

	receipt, err := h.service.Commit(ctx, req.BuyerName, cart)
	if err != nil {
		h.Error(c, err)
		return
	}

	logger.Info(ctx, "sale handled",
		"operator", h.GetOperatorName(c),
		"buyer", req.BuyerName,
		"invoice", receipt.InvoiceNumber,
	)

	c.JSON(http.StatusCreated, receipt)
}
