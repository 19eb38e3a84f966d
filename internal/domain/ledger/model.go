// Package ledger holds the append-only sale and purchase records. Each record
// is a point-in-time snapshot of what happened, referenced by medicine name
// and batch rather than foreign-keyed to a stock row, so later stock edits
// never rewrite history.
package ledger

import (
	"time"

	"pharmapos/internal/core/id"
	"pharmapos/internal/core/types"
)

// SaleRecord is one line item of a completed sale. Immutable once written.
// LineTotal is computed at construction and frozen.
type SaleRecord struct {
	ID           id.ID       `db:"id" json:"id"`
	Date         time.Time   `db:"date" json:"date"`
	MedicineName string      `db:"medicine_name" json:"medicineName"`
	Quantity     int64       `db:"quantity" json:"quantity"`
	UnitPrice    types.Money `db:"unit_price" json:"unitPrice"`
	LineTotal    types.Money `db:"line_total" json:"lineTotal"`
	BuyerName    string      `db:"buyer_name" json:"buyerName"`
	CreatedAt    time.Time   `db:"created_at" json:"createdAt"`
}

// NewSaleRecord builds a sale record with LineTotal = Quantity × UnitPrice.
func NewSaleRecord(date time.Time, medicineName string, quantity int64, unitPrice types.Money, buyerName string) *SaleRecord {
	return &SaleRecord{
		ID:           id.New(),
		Date:         date,
		MedicineName: medicineName,
		Quantity:     quantity,
		UnitPrice:    unitPrice,
		LineTotal:    types.LineTotal(quantity, unitPrice),
		BuyerName:    buyerName,
		CreatedAt:    time.Now(),
	}
}

// PurchaseRecord is one stock intake. Immutable once written.
type PurchaseRecord struct {
	ID                id.ID       `db:"id" json:"id"`
	Date              time.Time   `db:"date" json:"date"`
	MedicineName      string      `db:"medicine_name" json:"medicineName"`
	BatchNo           string      `db:"batch_no" json:"batchNo"`
	ExpiryDate        time.Time   `db:"expiry_date" json:"expiryDate"`
	Quantity          int64       `db:"quantity" json:"quantity"`
	UnitPurchasePrice types.Money `db:"unit_purchase_price" json:"unitPurchasePrice"`
	Supplier          string      `db:"supplier" json:"supplier"`
	CreatedAt         time.Time   `db:"created_at" json:"createdAt"`
}

// NewPurchaseRecord builds a purchase record.
func NewPurchaseRecord(date time.Time, medicineName, batchNo string, expiry time.Time, quantity int64, unitPurchasePrice types.Money, supplier string) *PurchaseRecord {
	return &PurchaseRecord{
		ID:                id.New(),
		Date:              date,
		MedicineName:      medicineName,
		BatchNo:           batchNo,
		ExpiryDate:        expiry,
		Quantity:          quantity,
		UnitPurchasePrice: unitPurchasePrice,
		Supplier:          supplier,
		CreatedAt:         time.Now(),
	}
}
