package inventory

import (
	"context"
	"fmt"
	"time"

	"pharmapos/internal/core/apperror"
	"pharmapos/internal/core/id"
	"pharmapos/internal/core/tx"
	"pharmapos/internal/core/types"
	"pharmapos/pkg/logger"
)

// AddParams describes a manual stock addition (Inventory page form).
type AddParams struct {
	Name          string
	BatchNo       string
	ExpiryDate    time.Time
	Quantity      int64
	SellPrice     types.Money
	PurchasePrice types.Money
}

// Service provides business operations for the medicine stock.
type Service struct {
	repo      Repository
	txManager tx.Manager
}

// NewService creates a new inventory service.
func NewService(repo Repository, txManager tx.Manager) *Service {
	return &Service{
		repo:      repo,
		txManager: txManager,
	}
}

// Add creates a new stock row unconditionally. No merge with existing
// batches of the same name+batch (kept as the reference behavior).
func (s *Service) Add(ctx context.Context, params AddParams) (id.ID, error) {
	stock := NewMedicineStock(
		params.Name,
		params.BatchNo,
		params.ExpiryDate,
		params.Quantity,
		params.SellPrice,
		params.PurchasePrice,
	)

	if err := stock.Validate(ctx); err != nil {
		return id.Nil(), err
	}

	if err := s.repo.Create(ctx, stock); err != nil {
		return id.Nil(), fmt.Errorf("create stock row: %w", err)
	}

	logger.Info(ctx, "medicine added",
		"stock_id", stock.ID,
		"name", stock.Name,
		"batch", stock.BatchNo,
		"quantity", stock.Quantity,
	)

	return stock.ID, nil
}

// Adjust changes the on-hand quantity of a stock row by delta (signed).
// The row is locked for the duration; a result below zero fails with
// INSUFFICIENT_STOCK and leaves the row untouched.
func (s *Service) Adjust(ctx context.Context, stockID id.ID, delta int64) error {
	return s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		return s.AdjustLocked(ctx, stockID, delta)
	})
}

// AdjustLocked performs the adjustment inside an already-open transaction.
// Workflows that touch several rows (a multi-line sale) call this per line
// so the whole cart commits or rolls back as one unit.
func (s *Service) AdjustLocked(ctx context.Context, stockID id.ID, delta int64) error {
	stock, err := s.repo.GetForUpdate(ctx, stockID)
	if err != nil {
		return fmt.Errorf("lock stock row: %w", err)
	}

	newQty := stock.Quantity + delta
	if newQty < 0 {
		return apperror.NewInsufficientStock(stockID.String(), -delta, stock.Quantity)
	}

	if err := s.repo.SetQuantity(ctx, stockID, newQty); err != nil {
		return fmt.Errorf("set quantity: %w", err)
	}

	return nil
}

// DeductLocked locks a stock row, verifies availability and decrements the
// on-hand quantity by qty. Returns the row as it was sold (name and prices
// at commit time, quantity already reduced). Must run inside a transaction.
func (s *Service) DeductLocked(ctx context.Context, stockID id.ID, qty int64) (*MedicineStock, error) {
	if qty <= 0 {
		return nil, apperror.NewValidation("deduction quantity must be positive").WithDetail("field", "quantity")
	}

	stock, err := s.repo.GetForUpdate(ctx, stockID)
	if err != nil {
		return nil, fmt.Errorf("lock stock row: %w", err)
	}

	if stock.Quantity < qty {
		return nil, apperror.NewInsufficientStock(stockID.String(), qty, stock.Quantity)
	}

	newQty := stock.Quantity - qty
	if err := s.repo.SetQuantity(ctx, stockID, newQty); err != nil {
		return nil, fmt.Errorf("set quantity: %w", err)
	}

	stock.Quantity = newQty
	return stock, nil
}

// Get retrieves one stock row.
func (s *Service) Get(ctx context.Context, stockID id.ID) (*MedicineStock, error) {
	return s.repo.GetByID(ctx, stockID)
}

// List returns the full inventory listing.
func (s *Service) List(ctx context.Context) ([]MedicineStock, error) {
	return s.repo.List(ctx)
}
