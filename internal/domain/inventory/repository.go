package inventory

import (
	"context"
	"time"

	"pharmapos/internal/core/id"
)

// Repository defines persistence operations for medicine stock rows.
type Repository interface {
	// Create inserts a new stock row. Always a new row: two additions with
	// identical name and batch stay two distinct batches.
	Create(ctx context.Context, stock *MedicineStock) error

	// GetByID retrieves a stock row.
	GetByID(ctx context.Context, stockID id.ID) (*MedicineStock, error)

	// GetForUpdate retrieves a stock row with a row lock. Must be called
	// within a transaction; used before every quantity change so that two
	// concurrent sales cannot both pass a stale availability check.
	GetForUpdate(ctx context.Context, stockID id.ID) (*MedicineStock, error)

	// SetQuantity writes the new on-hand quantity for a row.
	SetQuantity(ctx context.Context, stockID id.ID, quantity int64) error

	// List returns all stock rows, newest batch first.
	List(ctx context.Context) ([]MedicineStock, error)

	// Count returns the total number of stock rows.
	Count(ctx context.Context) (int64, error)

	// ListExpiringBy returns rows with expiry_date <= cutoff.
	ListExpiringBy(ctx context.Context, cutoff time.Time) ([]MedicineStock, error)

	// CountExpiringBy counts rows with expiry_date <= cutoff.
	CountExpiringBy(ctx context.Context, cutoff time.Time) (int64, error)
}
