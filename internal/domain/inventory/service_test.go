package inventory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pharmapos/internal/core/apperror"
	"pharmapos/internal/core/id"
	"pharmapos/internal/core/types"
)

// memRepo is an in-memory Repository for service tests.
type memRepo struct {
	rows map[id.ID]*MedicineStock
}

func newMemRepo() *memRepo {
	return &memRepo{rows: make(map[id.ID]*MedicineStock)}
}

func (r *memRepo) Create(_ context.Context, stock *MedicineStock) error {
	copied := *stock
	r.rows[stock.ID] = &copied
	return nil
}

func (r *memRepo) GetByID(_ context.Context, stockID id.ID) (*MedicineStock, error) {
	row, ok := r.rows[stockID]
	if !ok {
		return nil, apperror.NewNotFound("stock", stockID.String())
	}
	copied := *row
	return &copied, nil
}

func (r *memRepo) GetForUpdate(ctx context.Context, stockID id.ID) (*MedicineStock, error) {
	return r.GetByID(ctx, stockID)
}

func (r *memRepo) SetQuantity(_ context.Context, stockID id.ID, quantity int64) error {
	row, ok := r.rows[stockID]
	if !ok {
		return apperror.NewNotFound("stock", stockID.String())
	}
	row.Quantity = quantity
	return nil
}

func (r *memRepo) List(_ context.Context) ([]MedicineStock, error) {
	out := make([]MedicineStock, 0, len(r.rows))
	for _, row := range r.rows {
		out = append(out, *row)
	}
	return out, nil
}

func (r *memRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.rows)), nil
}

func (r *memRepo) ListExpiringBy(_ context.Context, cutoff time.Time) ([]MedicineStock, error) {
	var out []MedicineStock
	for _, row := range r.rows {
		if row.ExpiredBy(cutoff) {
			out = append(out, *row)
		}
	}
	return out, nil
}

func (r *memRepo) CountExpiringBy(ctx context.Context, cutoff time.Time) (int64, error) {
	rows, err := r.ListExpiringBy(ctx, cutoff)
	return int64(len(rows)), err
}

// passthroughTxManager runs fn directly, tracking invocations.
type passthroughTxManager struct {
	calls int
}

func (m *passthroughTxManager) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	m.calls++
	return fn(ctx)
}

func TestAdd(t *testing.T) {
	ctx := context.Background()
	expiry := time.Now().AddDate(1, 0, 0)

	tests := []struct {
		name     string
		params   AddParams
		wantCode string
	}{
		{
			name: "valid",
			params: AddParams{
				Name:          "Paracetamol",
				BatchNo:       "B-100",
				ExpiryDate:    expiry,
				Quantity:      100,
				SellPrice:     types.MustMoney("5.00"),
				PurchasePrice: types.MustMoney("3.50"),
			},
		},
		{
			name:     "missing name",
			params:   AddParams{Quantity: 10, ExpiryDate: expiry},
			wantCode: apperror.CodeValidation,
		},
		{
			name: "negative quantity",
			params: AddParams{
				Name:       "Ibuprofen",
				ExpiryDate: expiry,
				Quantity:   -1,
			},
			wantCode: apperror.CodeValidation,
		},
		{
			name: "negative sell price",
			params: AddParams{
				Name:       "Ibuprofen",
				ExpiryDate: expiry,
				Quantity:   10,
				SellPrice:  types.MustMoney("-0.01"),
			},
			wantCode: apperror.CodeValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newMemRepo()
			svc := NewService(repo, &passthroughTxManager{})

			stockID, err := svc.Add(ctx, tt.params)
			if tt.wantCode != "" {
				require.Error(t, err)
				assert.True(t, apperror.IsCode(err, tt.wantCode))
				assert.Empty(t, repo.rows)
				return
			}

			require.NoError(t, err)
			require.Contains(t, repo.rows, stockID)
			assert.Equal(t, tt.params.Quantity, repo.rows[stockID].Quantity)
		})
	}
}

func TestAddAlwaysCreatesNewRow(t *testing.T) {
	ctx := context.Background()
	repo := newMemRepo()
	svc := NewService(repo, &passthroughTxManager{})

	params := AddParams{
		Name:       "Amoxicillin",
		BatchNo:    "B-7",
		ExpiryDate: time.Now().AddDate(0, 6, 0),
		Quantity:   40,
	}

	first, err := svc.Add(ctx, params)
	require.NoError(t, err)
	second, err := svc.Add(ctx, params)
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.Len(t, repo.rows, 2)
}

func TestAdjust(t *testing.T) {
	ctx := context.Background()
	repo := newMemRepo()
	txm := &passthroughTxManager{}
	svc := NewService(repo, txm)

	stockID, err := svc.Add(ctx, AddParams{
		Name:       "Paracetamol",
		ExpiryDate: time.Now().AddDate(1, 0, 0),
		Quantity:   10,
	})
	require.NoError(t, err)

	require.NoError(t, svc.Adjust(ctx, stockID, -4))
	assert.Equal(t, int64(6), repo.rows[stockID].Quantity)
	assert.Equal(t, 1, txm.calls)

	// Below zero must fail and leave the row untouched.
	err = svc.Adjust(ctx, stockID, -7)
	require.Error(t, err)
	assert.True(t, apperror.IsInsufficientStock(err))
	assert.Equal(t, int64(6), repo.rows[stockID].Quantity)
}

func TestDeductLocked(t *testing.T) {
	ctx := context.Background()
	repo := newMemRepo()
	svc := NewService(repo, &passthroughTxManager{})

	stockID, err := svc.Add(ctx, AddParams{
		Name:       "Cetirizine",
		ExpiryDate: time.Now().AddDate(1, 0, 0),
		Quantity:   100,
		SellPrice:  types.MustMoney("2.00"),
	})
	require.NoError(t, err)

	stock, err := svc.DeductLocked(ctx, stockID, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(90), stock.Quantity)
	assert.Equal(t, int64(90), repo.rows[stockID].Quantity)

	// Requesting more than remaining is rejected with full detail.
	_, err = svc.DeductLocked(ctx, stockID, 150)
	require.Error(t, err)
	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperror.CodeInsufficientStock, appErr.Code)
	assert.Equal(t, int64(150), appErr.Details["requested"])
	assert.Equal(t, int64(90), appErr.Details["available"])
	assert.Equal(t, int64(90), repo.rows[stockID].Quantity)

	_, err = svc.DeductLocked(ctx, stockID, 0)
	require.Error(t, err)
	assert.True(t, apperror.IsCode(err, apperror.CodeValidation))
}
