package sales

import (
	"context"
	"fmt"
	"time"

	"pharmapos/internal/core/tx"
	"pharmapos/internal/core/types"
	"pharmapos/internal/domain/inventory"
	"pharmapos/internal/domain/invoice"
	"pharmapos/internal/domain/ledger"
	"pharmapos/pkg/logger"
	"pharmapos/pkg/numerator"
)

// Receipt is the result of a committed sale.
type Receipt struct {
	Total         types.Money         `json:"total"`
	InvoiceNumber string              `json:"invoiceNumber"`
	InvoicePath   string              `json:"invoicePath"`
	Lines         []ledger.SaleRecord `json:"lines"`
}

// Service composes the sale workflow: validate, atomically apply stock
// decrements plus record appends, then generate the invoice document.
type Service struct {
	inventory *inventory.Service
	recorder  *ledger.Service
	numbers   *numerator.Service
	invoices  *invoice.Store
	txManager tx.Manager
}

// NewService creates a new sale workflow service.
func NewService(
	inventorySvc *inventory.Service,
	recorder *ledger.Service,
	numbers *numerator.Service,
	invoices *invoice.Store,
	txManager tx.Manager,
) *Service {
	return &Service{
		inventory: inventorySvc,
		recorder:  recorder,
		numbers:   numbers,
		invoices:  invoices,
		txManager: txManager,
	}
}

// Commit applies a sale. Preconditions (non-empty buyer and cart) are checked
// first with no side effects on failure. All per-line effects — stock row
// lock, availability re-check, decrement, record append — run in cart order
// inside one transaction: either every line applies or none does. Stock
// quantities shown when the cart was built are NOT trusted; each line is
// re-checked against the locked row at commit time. On success the invoice
// is rendered and stored, and the receipt carries its number and path.
func (s *Service) Commit(ctx context.Context, buyer string, cart Cart) (*Receipt, error) {
	if err := validate(buyer, cart); err != nil {
		return nil, err
	}

	saleDate := time.Now()
	records := make([]ledger.SaleRecord, 0, len(cart))

	err := s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		for _, line := range cart {
			stock, err := s.inventory.DeductLocked(ctx, line.StockID, line.Quantity)
			if err != nil {
				return err
			}

			// The line keeps its snapshot price; the medicine name comes
			// from the stock row being debited.
			record, err := s.recorder.RecordSale(ctx, saleDate, stock.Name, line.Quantity, line.UnitPrice, buyer)
			if err != nil {
				return err
			}
			records = append(records, *record)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	total := cart.Total()

	number, err := s.numbers.GetNextNumber(ctx, numerator.DefaultConfig("INV"), saleDate)
	if err != nil {
		// The sale is committed; losing the artifact is still an error the
		// operator must see.
		logger.Error(ctx, "sale committed but invoice numbering failed", "buyer", buyer, "error", err)
		return nil, fmt.Errorf("allocate invoice number: %w", err)
	}

	doc := invoice.Document{
		Number:      number,
		Buyer:       buyer,
		GeneratedAt: saleDate,
		Total:       total,
	}
	for _, record := range records {
		doc.Lines = append(doc.Lines, invoice.Line{
			Name:      record.MedicineName,
			Quantity:  record.Quantity,
			UnitPrice: record.UnitPrice,
		})
	}

	pdf, err := invoice.Render(doc)
	if err != nil {
		logger.Error(ctx, "sale committed but invoice rendering failed", "buyer", buyer, "invoice", number, "error", err)
		return nil, err
	}

	path, err := s.invoices.Save(doc, pdf)
	if err != nil {
		logger.Error(ctx, "sale committed but invoice write failed", "buyer", buyer, "invoice", number, "error", err)
		return nil, err
	}

	logger.Info(ctx, "sale committed",
		"buyer", buyer,
		"lines", len(records),
		"total", total.StringFixed(2),
		"invoice", number,
	)

	return &Receipt{
		Total:         total,
		InvoiceNumber: number,
		InvoicePath:   path,
		Lines:         records,
	}, nil
}
