// Package purchases composes the stock intake workflow: one purchase both
// creates a stock row and appends a purchase record, committed as one unit.
package purchases

import (
	"context"
	"time"

	"pharmapos/internal/core/id"
	"pharmapos/internal/core/tx"
	"pharmapos/internal/core/types"
	"pharmapos/internal/domain/inventory"
	"pharmapos/internal/domain/ledger"
	"pharmapos/pkg/logger"
)

// ReceiveParams describes a stock intake (Purchase page form).
type ReceiveParams struct {
	MedicineName      string
	BatchNo           string
	ExpiryDate        time.Time
	Quantity          int64
	UnitPurchasePrice types.Money
	Supplier          string
}

// Result of a committed purchase.
type Result struct {
	StockID id.ID                  `json:"stockId"`
	Record  *ledger.PurchaseRecord `json:"record"`
}

// Service provides the purchase workflow.
type Service struct {
	inventory *inventory.Service
	recorder  *ledger.Service
	txManager tx.Manager
}

// NewService creates a new purchase service.
func NewService(inventorySvc *inventory.Service, recorder *ledger.Service, txManager tx.Manager) *Service {
	return &Service{
		inventory: inventorySvc,
		recorder:  recorder,
		txManager: txManager,
	}
}

// Receive creates a new MedicineStock row for the intake and appends the
// PurchaseRecord, atomically. A purchase always creates a new batch row, it
// never merges into an existing one. The row's sell price starts at zero,
// as on the original purchase form; it is set later from the Inventory page.
func (s *Service) Receive(ctx context.Context, params ReceiveParams) (*Result, error) {
	purchaseDate := time.Now()
	result := &Result{}

	err := s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		stockID, err := s.inventory.Add(ctx, inventory.AddParams{
			Name:          params.MedicineName,
			BatchNo:       params.BatchNo,
			ExpiryDate:    params.ExpiryDate,
			Quantity:      params.Quantity,
			SellPrice:     types.Zero(),
			PurchasePrice: params.UnitPurchasePrice,
		})
		if err != nil {
			return err
		}

		record, err := s.recorder.RecordPurchase(
			ctx,
			purchaseDate,
			params.MedicineName,
			params.BatchNo,
			params.ExpiryDate,
			params.Quantity,
			params.UnitPurchasePrice,
			params.Supplier,
		)
		if err != nil {
			return err
		}

		result.StockID = stockID
		result.Record = record
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info(ctx, "stock received",
		"stock_id", result.StockID,
		"medicine", params.MedicineName,
		"quantity", params.Quantity,
		"supplier", params.Supplier,
	)

	return result, nil
}
