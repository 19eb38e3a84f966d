package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"pharmapos/internal/core/apperror"
	"pharmapos/internal/core/id"
	"pharmapos/internal/domain/inventory"
)

const inventoryTable = "inventory"

var inventoryColumns = []string{
	"id", "name", "batch_no", "expiry_date", "quantity",
	"sell_price", "purchase_price", "created_at", "updated_at",
}

// InventoryRepo implements inventory.Repository.
type InventoryRepo struct {
	txm     *TxManager
	builder squirrel.StatementBuilderType
}

// Compile-time interface check.
var _ inventory.Repository = (*InventoryRepo)(nil)

// NewInventoryRepo creates a new inventory repository.
func NewInventoryRepo(txm *TxManager) *InventoryRepo {
	return &InventoryRepo{
		txm:     txm,
		builder: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Create inserts a new stock row.
func (r *InventoryRepo) Create(ctx context.Context, stock *inventory.MedicineStock) error {
	q := r.builder.Insert(inventoryTable).
		Columns(inventoryColumns...).
		Values(
			stock.ID, stock.Name, stock.BatchNo, stock.ExpiryDate, stock.Quantity,
			stock.SellPrice, stock.PurchasePrice, stock.CreatedAt, stock.UpdatedAt,
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

// GetByID retrieves a stock row.
func (r *InventoryRepo) GetByID(ctx context.Context, stockID id.ID) (*inventory.MedicineStock, error) {
	q := r.builder.Select(inventoryColumns...).
		From(inventoryTable).
		Where(squirrel.Eq{"id": stockID}).
		Limit(1)

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var stock inventory.MedicineStock
	if err := pgxscan.Get(ctx, r.txm.GetQuerier(ctx), &stock, sql, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, apperror.NewNotFound("medicine stock", stockID)
		}
		return nil, apperror.NewStorage(err)
	}
	return &stock, nil
}

// GetForUpdate retrieves a stock row with a row lock. Call within a
// transaction; the lock holds until commit or rollback.
func (r *InventoryRepo) GetForUpdate(ctx context.Context, stockID id.ID) (*inventory.MedicineStock, error) {
	sql := `
		SELECT id, name, batch_no, expiry_date, quantity,
		       sell_price, purchase_price, created_at, updated_at
		FROM inventory
		WHERE id = $1
		FOR UPDATE
	`

	var stock inventory.MedicineStock
	if err := pgxscan.Get(ctx, r.txm.GetQuerier(ctx), &stock, sql, stockID); err != nil {
		if pgxscan.NotFound(err) {
			return nil, apperror.NewNotFound("medicine stock", stockID)
		}
		return nil, apperror.NewStorage(err)
	}
	return &stock, nil
}

// SetQuantity writes the new on-hand quantity.
func (r *InventoryRepo) SetQuantity(ctx context.Context, stockID id.ID, quantity int64) error {
	q := r.builder.Update(inventoryTable).
		Set("quantity", quantity).
		Set("updated_at", time.Now()).
		Where(squirrel.Eq{"id": stockID})

	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build update: %w", err)
	}

	tag, err := r.txm.GetQuerier(ctx).Exec(ctx, sql, args...)
	if err != nil {
		return apperror.NewStorage(err)
	}
	if tag.RowsAffected() == 0 {
		return apperror.NewNotFound("medicine stock", stockID)
	}
	return nil
}

// List returns all stock rows, newest batch first.
func (r *InventoryRepo) List(ctx context.Context) ([]inventory.MedicineStock, error) {
	q := r.builder.Select(inventoryColumns...).
		From(inventoryTable).
		OrderBy("created_at DESC")

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var rows []inventory.MedicineStock
	if err := pgxscan.Select(ctx, r.txm.GetQuerier(ctx), &rows, sql, args...); err != nil {
		return nil, apperror.NewStorage(err)
	}
	return rows, nil
}

// Count returns the total number of stock rows.
func (r *InventoryRepo) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.txm.GetQuerier(ctx).
		QueryRow(ctx, "SELECT COUNT(*) FROM inventory").
		Scan(&count)
	if err != nil {
		return 0, apperror.NewStorage(err)
	}
	return count, nil
}

// ListExpiringBy returns rows with expiry_date <= cutoff, soonest first.
func (r *InventoryRepo) ListExpiringBy(ctx context.Context, cutoff time.Time) ([]inventory.MedicineStock, error) {
	q := r.builder.Select(inventoryColumns...).
		From(inventoryTable).
		Where(squirrel.LtOrEq{"expiry_date": cutoff}).
		OrderBy("expiry_date ASC")

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var rows []inventory.MedicineStock
	if err := pgxscan.Select(ctx, r.txm.GetQuerier(ctx), &rows, sql, args...); err != nil {
		return nil, apperror.NewStorage(err)
	}
	return rows, nil
}

// CountExpiringBy counts rows with expiry_date <= cutoff.
func (r *InventoryRepo) CountExpiringBy(ctx context.Context, cutoff time.Time) (int64, error) {
	q := r.builder.Select("COUNT(*)").
		From(inventoryTable).
		Where(squirrel.LtOrEq{"expiry_date": cutoff})

	sql, args, err := q.ToSql()
	if err != nil {
		return 0, fmt.Errorf("build query: %w", err)
	}

	var count int64
	if err := r.txm.GetQuerier(ctx).QueryRow(ctx, sql, args...).Scan(&count); err != nil {
		return 0, apperror.NewStorage(err)
	}
	return count, nil
}
