package reporting

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pharmapos/internal/core/types"
	"pharmapos/internal/domain/inventory"
	"pharmapos/internal/domain/ledger"
)

type fakeStockReader struct {
	rows []inventory.MedicineStock
}

func (r *fakeStockReader) Count(_ context.Context) (int64, error) {
	return int64(len(r.rows)), nil
}

func (r *fakeStockReader) ListExpiringBy(_ context.Context, cutoff time.Time) ([]inventory.MedicineStock, error) {
	var out []inventory.MedicineStock
	for _, row := range r.rows {
		if row.ExpiredBy(cutoff) {
			out = append(out, row)
		}
	}
	return out, nil
}

func (r *fakeStockReader) CountExpiringBy(ctx context.Context, cutoff time.Time) (int64, error) {
	rows, err := r.ListExpiringBy(ctx, cutoff)
	return int64(len(rows)), err
}

type fakeSalesReader struct {
	sales     []ledger.SaleRecord
	lastLimit int
	todays    int64
}

func (r *fakeSalesReader) RecentSales(_ context.Context, limit int) ([]ledger.SaleRecord, error) {
	r.lastLimit = limit
	if limit > len(r.sales) {
		limit = len(r.sales)
	}
	return r.sales[:limit], nil
}

func (r *fakeSalesReader) CountSalesOn(_ context.Context, _ time.Time) (int64, error) {
	return r.todays, nil
}

func stockExpiring(name string, expiry time.Time) inventory.MedicineStock {
	stock := inventory.NewMedicineStock(name, "B-1", expiry, 10, types.Zero(), types.Zero())
	return *stock
}

func TestClassifyExpiry(t *testing.T) {
	today := time.Date(2026, 8, 31, 14, 30, 0, 0, time.UTC)

	tests := []struct {
		name   string
		expiry time.Time
		want   ExpiryStatus
	}{
		{
			name:   "yesterday is overdue",
			expiry: time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC),
			want:   StatusOverdue,
		},
		{
			name:   "today is upcoming",
			expiry: time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC),
			want:   StatusUpcoming,
		},
		{
			name:   "tomorrow is upcoming",
			expiry: time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
			want:   StatusUpcoming,
		},
		{
			name:   "long past is overdue",
			expiry: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
			want:   StatusOverdue,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyExpiry(tt.expiry, today))
		})
	}
}

func TestExpiryTracker(t *testing.T) {
	now := time.Now()
	stocks := &fakeStockReader{rows: []inventory.MedicineStock{
		stockExpiring("Expired", now.AddDate(0, 0, -10)),
		stockExpiring("Soon", now.AddDate(0, 0, 5)),
		stockExpiring("EdgeOfWindow", now.AddDate(0, 0, TrackerWindowDays)),
		stockExpiring("Far", now.AddDate(1, 0, 0)),
	}}
	svc := NewService(stocks, &fakeSalesReader{})

	items, err := svc.ExpiryTracker(context.Background(), 0)
	require.NoError(t, err)

	// Only rows inside the default 90-day window appear; "Far" does not.
	require.Len(t, items, 3)

	byName := make(map[string]ExpiryStatus)
	for _, item := range items {
		byName[item.Name] = item.Status
	}
	assert.Equal(t, StatusOverdue, byName["Expired"])
	assert.Equal(t, StatusUpcoming, byName["Soon"])
	assert.Equal(t, StatusUpcoming, byName["EdgeOfWindow"])
}

func TestExpiryTrackerCustomWindow(t *testing.T) {
	now := time.Now()
	stocks := &fakeStockReader{rows: []inventory.MedicineStock{
		stockExpiring("Soon", now.AddDate(0, 0, 5)),
		stockExpiring("Later", now.AddDate(0, 0, 40)),
	}}
	svc := NewService(stocks, &fakeSalesReader{})

	items, err := svc.ExpiryTracker(context.Background(), 7)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Soon", items[0].Name)
}

func TestRecentSalesDefaultLimit(t *testing.T) {
	sales := &fakeSalesReader{}
	svc := NewService(&fakeStockReader{}, sales)

	_, err := svc.RecentSales(context.Background(), 0)
	require.NoError(t, err)
	assert.Equal(t, DefaultRecentSales, sales.lastLimit)

	_, err = svc.RecentSales(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, 5, sales.lastLimit)
}

func TestDashboard(t *testing.T) {
	now := time.Now()
	stocks := &fakeStockReader{rows: []inventory.MedicineStock{
		stockExpiring("A", now.AddDate(0, 0, 10)),
		stockExpiring("B", now.AddDate(0, 0, 60)),
		stockExpiring("C", now.AddDate(2, 0, 0)),
	}}
	sales := &fakeSalesReader{todays: 4}
	svc := NewService(stocks, sales)

	metrics, err := svc.Dashboard(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(3), metrics.TotalMedicines)
	assert.Equal(t, int64(4), metrics.SalesToday)
	// Only "A" falls inside the 30-day window.
	assert.Equal(t, int64(1), metrics.ExpiringIn30Days)
}
