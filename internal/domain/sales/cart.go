// Package sales turns a buyer name and a cart of line items into a committed
// sale, or rejects it cleanly with no partial state.
package sales

import (
	"pharmapos/internal/core/apperror"
	"pharmapos/internal/core/id"
	"pharmapos/internal/core/types"
)

// Line is one candidate line item: a stock row, the requested quantity and
// the unit price snapshot taken when the cart was built.
type Line struct {
	StockID   id.ID       `json:"stockId"`
	Name      string      `json:"name"`
	Quantity  int64       `json:"quantity"`
	UnitPrice types.Money `json:"unitPrice"`
}

// Cart is the ordered, ephemeral set of line items for one sale. It exists
// only between operator selection and Complete Sale; it is never persisted.
type Cart []Line

// Total returns the sum of quantity × unit price over all lines.
func (c Cart) Total() types.Money {
	total := types.Zero()
	for _, line := range c {
		total = total.Add(types.LineTotal(line.Quantity, line.UnitPrice))
	}
	return total
}

// validate checks the commit preconditions. An empty buyer or empty cart is
// an invalid sale request; both checks run before any side effect.
func validate(buyer string, cart Cart) error {
	if buyer == "" {
		return apperror.NewInvalidSaleRequest("buyer name is required")
	}
	if len(cart) == 0 {
		return apperror.NewInvalidSaleRequest("cart is empty")
	}
	for i, line := range cart {
		if id.IsNil(line.StockID) {
			return apperror.NewValidation("stock id is required").WithDetail("line", i+1)
		}
		if line.Quantity <= 0 {
			return apperror.NewValidation("line quantity must be positive").WithDetail("line", i+1)
		}
		if line.UnitPrice.IsNegative() {
			return apperror.NewValidation("unit price must not be negative").WithDetail("line", i+1)
		}
	}
	return nil
}
