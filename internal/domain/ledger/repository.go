package ledger

import (
	"context"
	"time"
)

// Repository defines append and read operations for the transaction records.
// There are no update or delete operations: records are immutable.
type Repository interface {
	// AppendSale inserts one sale record.
	AppendSale(ctx context.Context, record *SaleRecord) error

	// AppendPurchase inserts one purchase record.
	AppendPurchase(ctx context.Context, record *PurchaseRecord) error

	// RecentSales returns at most limit records ordered by date descending,
	// insertion order as the tiebreak within a date.
	RecentSales(ctx context.Context, limit int) ([]SaleRecord, error)

	// CountSalesOn counts sale records dated day (calendar date).
	CountSalesOn(ctx context.Context, day time.Time) (int64, error)

	// ListPurchases returns purchase records, newest first.
	ListPurchases(ctx context.Context, limit int) ([]PurchaseRecord, error)
}
