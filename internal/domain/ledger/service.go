package ledger

import (
	"context"
	"fmt"
	"time"

	"pharmapos/internal/core/apperror"
	"pharmapos/internal/core/types"
	"pharmapos/pkg/logger"
)

// Service is the transaction recorder. It appends immutable sale and purchase
// records; it deliberately knows nothing about stock rows — workflows that
// also change stock compose this service with the inventory service inside
// one transaction.
type Service struct {
	repo Repository
}

// NewService creates a new recorder service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// RecordSale appends one sale record with LineTotal computed at commit time.
func (s *Service) RecordSale(ctx context.Context, date time.Time, medicineName string, quantity int64, unitPrice types.Money, buyerName string) (*SaleRecord, error) {
	if quantity <= 0 {
		return nil, apperror.NewValidation("sale quantity must be positive").WithDetail("field", "quantity")
	}

	record := NewSaleRecord(date, medicineName, quantity, unitPrice, buyerName)
	if err := s.repo.AppendSale(ctx, record); err != nil {
		return nil, fmt.Errorf("append sale record: %w", err)
	}

	return record, nil
}

// RecordPurchase appends one purchase record.
func (s *Service) RecordPurchase(ctx context.Context, date time.Time, medicineName, batchNo string, expiry time.Time, quantity int64, unitPurchasePrice types.Money, supplier string) (*PurchaseRecord, error) {
	if quantity <= 0 {
		return nil, apperror.NewValidation("purchase quantity must be positive").WithDetail("field", "quantity")
	}

	record := NewPurchaseRecord(date, medicineName, batchNo, expiry, quantity, unitPurchasePrice, supplier)
	if err := s.repo.AppendPurchase(ctx, record); err != nil {
		return nil, fmt.Errorf("append purchase record: %w", err)
	}

	logger.Info(ctx, "purchase recorded",
		"record_id", record.ID,
		"medicine", record.MedicineName,
		"quantity", record.Quantity,
		"supplier", record.Supplier,
	)

	return record, nil
}

// RecentPurchases returns at most limit purchase records, newest date first.
func (s *Service) RecentPurchases(ctx context.Context, limit int) ([]PurchaseRecord, error) {
	if limit <= 0 {
		limit = 30
	}
	return s.repo.ListPurchases(ctx, limit)
}
