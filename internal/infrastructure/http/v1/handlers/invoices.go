package handlers

import (
	"fmt"
	"net/http"
	"path/filepath"

	"github.com/gin-gonic/gin"

	"pharmapos/internal/domain/invoice"
)

// InvoicesHandler serves stored invoice PDFs.
type InvoicesHandler struct {
	*BaseHandler
	store *invoice.Store
}

// NewInvoicesHandler creates a new invoices handler.
func NewInvoicesHandler(base *BaseHandler, store *invoice.Store) *InvoicesHandler {
	return &InvoicesHandler{
		BaseHandler: base,
		store:       store,
	}
}

// Download handles GET /invoices/:number.
func (h *InvoicesHandler) Download(c *gin.Context) {
	path, pdf, err := h.store.Open(c.Param("number"))
	if err != nil {
		h.Error(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filepath.Base(path)))
	c.Data(http.StatusOK, "application/pdf", pdf)
}
