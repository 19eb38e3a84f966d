package reporting

import (
	"context"
	"fmt"
	"time"

	"pharmapos/internal/domain/inventory"
	"pharmapos/internal/domain/ledger"
)

// StockReader is the slice of the inventory repository the reports need.
type StockReader interface {
	Count(ctx context.Context) (int64, error)
	ListExpiringBy(ctx context.Context, cutoff time.Time) ([]inventory.MedicineStock, error)
	CountExpiringBy(ctx context.Context, cutoff time.Time) (int64, error)
}

// SalesReader is the slice of the ledger repository the reports need.
type SalesReader interface {
	RecentSales(ctx context.Context, limit int) ([]ledger.SaleRecord, error)
	CountSalesOn(ctx context.Context, day time.Time) (int64, error)
}

// Service provides the derived read-only views.
type Service struct {
	stock StockReader
	sales SalesReader
}

// NewService creates a new reporting service.
func NewService(stock StockReader, sales SalesReader) *Service {
	return &Service{
		stock: stock,
		sales: sales,
	}
}

// ExpiringBy returns every stock row with expiry date on or before cutoff.
// Result order is not part of the contract; callers needing one must sort.
func (s *Service) ExpiringBy(ctx context.Context, cutoff time.Time) ([]inventory.MedicineStock, error) {
	return s.stock.ListExpiringBy(ctx, cutoff)
}

// ExpiringSoonCount counts rows expiring within windowDays from today.
func (s *Service) ExpiringSoonCount(ctx context.Context, windowDays int) (int64, error) {
	cutoff := time.Now().AddDate(0, 0, windowDays)
	return s.stock.CountExpiringBy(ctx, cutoff)
}

// ExpiryTracker returns the lookahead window with each row classified as
// overdue (already expired) or upcoming. A non-positive windowDays falls
// back to the 90-day tracker default.
func (s *Service) ExpiryTracker(ctx context.Context, windowDays int) ([]ExpiringItem, error) {
	if windowDays <= 0 {
		windowDays = TrackerWindowDays
	}

	today := time.Now()
	cutoff := today.AddDate(0, 0, windowDays)

	rows, err := s.stock.ListExpiringBy(ctx, cutoff)
	if err != nil {
		return nil, fmt.Errorf("list expiring stock: %w", err)
	}

	items := make([]ExpiringItem, 0, len(rows))
	for _, row := range rows {
		items = append(items, ExpiringItem{
			MedicineStock: row,
			Status:        ClassifyExpiry(row.ExpiryDate, today),
		})
	}
	return items, nil
}

// RecentSales returns at most limit sale records, newest date first.
// A non-positive limit falls back to the Reports page default.
func (s *Service) RecentSales(ctx context.Context, limit int) ([]ledger.SaleRecord, error) {
	if limit <= 0 {
		limit = DefaultRecentSales
	}
	return s.sales.RecentSales(ctx, limit)
}

// Dashboard computes the landing page metrics.
func (s *Service) Dashboard(ctx context.Context) (*Dashboard, error) {
	now := time.Now()

	total, err := s.stock.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count stock rows: %w", err)
	}

	salesToday, err := s.sales.CountSalesOn(ctx, now)
	if err != nil {
		return nil, fmt.Errorf("count today's sales: %w", err)
	}

	expiring, err := s.stock.CountExpiringBy(ctx, now.AddDate(0, 0, DashboardWindowDays))
	if err != nil {
		return nil, fmt.Errorf("count expiring stock: %w", err)
	}

	return &Dashboard{
		TotalMedicines:   total,
		SalesToday:       salesToday,
		ExpiringIn30Days: expiring,
	}, nil
}
