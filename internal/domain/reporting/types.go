// Package reporting provides read-only derived views over the ledger store:
// expiry windows, recent sales and the dashboard metrics.
package reporting

import (
	"time"

	"pharmapos/internal/domain/inventory"
)

// Window sizes used by the UI surfaces.
const (
	// DashboardWindowDays is the expiring-soon window on the dashboard.
	DashboardWindowDays = 30

	// TrackerWindowDays is the Expiry Tracker lookahead.
	TrackerWindowDays = 90

	// DefaultRecentSales is the Reports page row count.
	DefaultRecentSales = 30
)

// ExpiryStatus classifies a batch within the tracker window.
type ExpiryStatus string

const (
	// StatusOverdue marks batches whose expiry date is strictly in the past.
	StatusOverdue ExpiryStatus = "overdue"

	// StatusUpcoming marks batches expiring today or later within the window.
	StatusUpcoming ExpiryStatus = "upcoming"
)

// ExpiringItem is a stock row with its tracker classification.
type ExpiringItem struct {
	inventory.MedicineStock
	Status ExpiryStatus `json:"status"`
}

// ClassifyExpiry returns overdue when the expiry date is before today,
// upcoming otherwise. Expiring exactly today is upcoming, not overdue.
func ClassifyExpiry(expiry, today time.Time) ExpiryStatus {
	if expiry.Before(startOfDay(today)) {
		return StatusOverdue
	}
	return StatusUpcoming
}

// Dashboard holds the read-only metrics of the landing page.
type Dashboard struct {
	TotalMedicines   int64 `json:"totalMedicines"`
	SalesToday       int64 `json:"salesToday"`
	ExpiringIn30Days int64 `json:"expiringIn30Days"`
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
