package handlers

import (
	"github.com/gin-gonic/gin"

	"pharmapos/internal/domain/reporting"
)

// ReportsHandler serves the derived read-only views: dashboard metrics,
// the expiry tracker and recent sales.
type ReportsHandler struct {
	*BaseHandler
	service *reporting.Service
}

// NewReportsHandler creates a new reports handler.
func NewReportsHandler(base *BaseHandler, service *reporting.Service) *ReportsHandler {
	return &ReportsHandler{
		BaseHandler: base,
		service:     service,
	}
}

// Dashboard handles GET /dashboard.
func (h *ReportsHandler) Dashboard(c *gin.Context) {
	metrics, err := h.service.Dashboard(c.Request.Context())
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, metrics)
}

// ExpiryTracker handles GET /reports/expiry.
func (h *ReportsHandler) ExpiryTracker(c *gin.Context) {
	days := h.ParseIntQuery(c, "days", reporting.TrackerWindowDays)

	items, err := h.service.ExpiryTracker(c.Request.Context(), days)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, items)
}

// RecentSales handles GET /sales/recent.
func (h *ReportsHandler) RecentSales(c *gin.Context) {
	limit := h.ParseIntQuery(c, "limit", reporting.DefaultRecentSales)

	records, err := h.service.RecentSales(c.Request.Context(), limit)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, records)
}
