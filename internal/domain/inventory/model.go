// Package inventory owns the medicine stock rows and the single rule that
// governs them: quantity on hand only changes through a committed purchase
// (increase) or a committed sale (decrease).
package inventory

import (
	"context"
	"time"

	"pharmapos/internal/core/apperror"
	"pharmapos/internal/core/id"
	"pharmapos/internal/core/types"
)

// MedicineStock is one purchased lot of a medicine with its own expiry and
// quantity. Names are not unique: the same medicine may appear in several
// batches, each its own row. Rows are never deleted; a sold-out batch stays
// as history with quantity zero.
type MedicineStock struct {
	ID            id.ID       `db:"id" json:"id"`
	Name          string      `db:"name" json:"name"`
	BatchNo       string      `db:"batch_no" json:"batchNo"`
	ExpiryDate    time.Time   `db:"expiry_date" json:"expiryDate"`
	Quantity      int64       `db:"quantity" json:"quantity"`
	SellPrice     types.Money `db:"sell_price" json:"sellPrice"`
	PurchasePrice types.Money `db:"purchase_price" json:"purchasePrice"`
	CreatedAt     time.Time   `db:"created_at" json:"createdAt"`
	UpdatedAt     time.Time   `db:"updated_at" json:"updatedAt"`
}

// NewMedicineStock creates a stock row for a new batch.
func NewMedicineStock(name, batchNo string, expiry time.Time, quantity int64, sellPrice, purchasePrice types.Money) *MedicineStock {
	now := time.Now()
	return &MedicineStock{
		ID:            id.New(),
		Name:          name,
		BatchNo:       batchNo,
		ExpiryDate:    expiry,
		Quantity:      quantity,
		SellPrice:     sellPrice,
		PurchasePrice: purchasePrice,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

// Validate implements the add-medicine contract. The original system trusted
// its form widgets here; the checks are server-side now.
func (m *MedicineStock) Validate(ctx context.Context) error {
	if m.Name == "" {
		return apperror.NewValidation("medicine name is required").WithDetail("field", "name")
	}
	if m.Quantity < 0 {
		return apperror.NewValidation("quantity must not be negative").WithDetail("field", "quantity")
	}
	if m.SellPrice.IsNegative() {
		return apperror.NewValidation("sell price must not be negative").WithDetail("field", "sellPrice")
	}
	if m.PurchasePrice.IsNegative() {
		return apperror.NewValidation("purchase price must not be negative").WithDetail("field", "purchasePrice")
	}
	return nil
}

// ExpiredBy reports whether the batch expiry date is on or before cutoff.
// Boundary equality counts as expiring.
func (m *MedicineStock) ExpiredBy(cutoff time.Time) bool {
	return !m.ExpiryDate.After(cutoff)
}
