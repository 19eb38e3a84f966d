package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"pharmapos/internal/core/apperror"
	"pharmapos/internal/domain/ledger"
)

const (
	salesTable     = "sales"
	purchasesTable = "purchases"
)

var (
	saleColumns = []string{
		"id", "date", "medicine_name", "quantity",
		"unit_price", "line_total", "buyer_name", "created_at",
	}
	purchaseColumns = []string{
		"id", "date", "medicine_name", "batch_no", "expiry_date",
		"quantity", "unit_purchase_price", "supplier", "created_at",
	}
)

// LedgerRepo implements ledger.Repository. Records are append-only: the repo
// exposes no update or delete statements at all.
type LedgerRepo struct {
	txm     *TxManager
	builder squirrel.StatementBuilderType
}

var _ ledger.Repository = (*LedgerRepo)(nil)

// NewLedgerRepo creates a new ledger repository.
func NewLedgerRepo(txm *TxManager) *LedgerRepo {
	return &LedgerRepo{
		txm:     txm,
		builder: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// AppendSale inserts one sale record.
func (r *LedgerRepo) AppendSale(ctx context.Context, record *ledger.SaleRecord) error {
	q := r.builder.Insert(salesTable).
		Columns(saleColumns...).
		Values(
			record.ID, record.Date, record.MedicineName, record.Quantity,
			record.UnitPrice, record.LineTotal, record.BuyerName, record.CreatedAt,
		)

	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build insert: %w", err)
	}

	if _, err := r.txm.GetQuerier(ctx).Exec(ctx, sql, args...); err != nil {
		return apperror.NewStorage(err)
	}
	return nil
}

// AppendPurchase inserts one purchase record.
func (r *LedgerRepo) AppendPurchase(ctx context.Context, record *ledger.PurchaseRecord) error {
	q := r.builder.Insert(purchasesTable).
		Columns(purchaseColumns...).
		Values(
			record.ID, record.Date, record.MedicineName, record.BatchNo, record.ExpiryDate,
			record.Quantity, record.UnitPurchasePrice, record.Supplier, record.CreatedAt,
		)

	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build insert: %w", err)
	}

	if _, err := r.txm.GetQuerier(ctx).Exec(ctx, sql, args...); err != nil {
		return apperror.NewStorage(err)
	}
	return nil
}

// RecentSales returns at most limit records, date descending with insertion
// order as the tiebreak.
func (r *LedgerRepo) RecentSales(ctx context.Context, limit int) ([]ledger.SaleRecord, error) {
	q := r.builder.Select(saleColumns...).
		From(salesTable).
		OrderBy("date DESC", "created_at DESC").
		Limit(uint64(limit))

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var rows []ledger.SaleRecord
	if err := pgxscan.Select(ctx, r.txm.GetQuerier(ctx), &rows, sql, args...); err != nil {
		return nil, apperror.NewStorage(err)
	}
	return rows, nil
}

// CountSalesOn counts sale records dated on the given calendar day.
func (r *LedgerRepo) CountSalesOn(ctx context.Context, day time.Time) (int64, error) {
	var count int64
	err := r.txm.GetQuerier(ctx).
		QueryRow(ctx, "SELECT COUNT(*) FROM sales WHERE date = $1::date", day).
		Scan(&count)
	if err != nil {
		return 0, apperror.NewStorage(err)
	}
	return count, nil
}

// ListPurchases returns purchase records, newest first.
func (r *LedgerRepo) ListPurchases(ctx context.Context, limit int) ([]ledger.PurchaseRecord, error) {
	q := r.builder.Select(purchaseColumns...).
		From(purchasesTable).
		OrderBy("date DESC", "created_at DESC").
		Limit(uint64(limit))

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var rows []ledger.PurchaseRecord
	if err := pgxscan.Select(ctx, r.txm.GetQuerier(ctx), &rows, sql, args...); err != nil {
		return nil, apperror.NewStorage(err)
	}
	return rows, nil
}
