// Package dto defines the API v1 request and response shapes.
package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"pharmapos/internal/core/apperror"
	"pharmapos/internal/core/id"
	"pharmapos/internal/domain/inventory"
	"pharmapos/internal/domain/purchases"
	"pharmapos/internal/domain/sales"
)

// expiryDateLayout is the wire format for expiry dates, same as the intake
// forms used.
const expiryDateLayout = "2006-01-02"

// LoginRequest carries operator credentials.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// AddMedicineRequest is the Inventory page "add medicine" form.
type AddMedicineRequest struct {
	Name          string          `json:"name" binding:"required"`
	BatchNo       string          `json:"batchNo"`
	ExpiryDate    string          `json:"expiryDate" binding:"required"`
	Quantity      int64           `json:"quantity"`
	SellPrice     decimal.Decimal `json:"sellPrice"`
	PurchasePrice decimal.Decimal `json:"purchasePrice"`
}

// ToParams converts the request into inventory service params.
func (r *AddMedicineRequest) ToParams() (inventory.AddParams, error) {
	expiry, err := parseExpiry(r.ExpiryDate)
	if err != nil {
		return inventory.AddParams{}, err
	}
	return inventory.AddParams{
		Name:          r.Name,
		BatchNo:       r.BatchNo,
		ExpiryDate:    expiry,
		Quantity:      r.Quantity,
		SellPrice:     r.SellPrice,
		PurchasePrice: r.PurchasePrice,
	}, nil
}

// ReceivePurchaseRequest is the Purchase page intake form.
type ReceivePurchaseRequest struct {
	MedicineName      string          `json:"medicineName" binding:"required"`
	BatchNo           string          `json:"batchNo"`
	ExpiryDate        string          `json:"expiryDate" binding:"required"`
	Quantity          int64           `json:"quantity" binding:"required"`
	UnitPurchasePrice decimal.Decimal `json:"unitPurchasePrice"`
	Supplier          string          `json:"supplier"`
}

// ToParams converts the request into purchase service params.
func (r *ReceivePurchaseRequest) ToParams() (purchases.ReceiveParams, error) {
	expiry, err := parseExpiry(r.ExpiryDate)
	if err != nil {
		return purchases.ReceiveParams{}, err
	}
	return purchases.ReceiveParams{
		MedicineName:      r.MedicineName,
		BatchNo:           r.BatchNo,
		ExpiryDate:        expiry,
		Quantity:          r.Quantity,
		UnitPurchasePrice: r.UnitPurchasePrice,
		Supplier:          r.Supplier,
	}, nil
}

// SaleLineRequest is one cart line of a sale.
type SaleLineRequest struct {
	StockID   string          `json:"stockId" binding:"required"`
	Quantity  int64           `json:"quantity" binding:"required"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
}

// CommitSaleRequest is the Sales page cart submission.
type CommitSaleRequest struct {
	BuyerName string            `json:"buyerName"`
	Lines     []SaleLineRequest `json:"lines"`
}

// ToCart converts request lines into a domain cart.
func (r *CommitSaleRequest) ToCart() (sales.Cart, error) {
	cart := make(sales.Cart, 0, len(r.Lines))
	for i, line := range r.Lines {
		stockID, err := id.Parse(line.StockID)
		if err != nil {
			return nil, apperror.NewValidation("invalid stock id").
				WithDetail("line", i).
				WithDetail("stockId", line.StockID)
		}
		cart = append(cart, sales.Line{
			StockID:   stockID,
			Quantity:  line.Quantity,
			UnitPrice: line.UnitPrice,
		})
	}
	return cart, nil
}

// AddUserRequest creates an operator account.
type AddUserRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func parseExpiry(value string) (time.Time, error) {
	expiry, err := time.Parse(expiryDateLayout, value)
	if err != nil {
		return time.Time{}, apperror.NewValidation("expiry date must be YYYY-MM-DD").
			WithDetail("field", "expiryDate").
			WithDetail("value", value)
	}
	return expiry, nil
}
