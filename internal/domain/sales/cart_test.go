package sales

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"pharmapos/internal/core/id"
	"pharmapos/internal/core/types"
)

func TestCartTotal(t *testing.T) {
	tests := []struct {
		name string
		cart Cart
		want string
	}{
		{
			name: "empty cart",
			cart: Cart{},
			want: "0",
		},
		{
			name: "single line",
			cart: Cart{
				{StockID: id.New(), Quantity: 10, UnitPrice: types.MustMoney("5.00")},
			},
			want: "50.00",
		},
		{
			name: "multiple lines",
			cart: Cart{
				{StockID: id.New(), Quantity: 3, UnitPrice: types.MustMoney("2.50")},
				{StockID: id.New(), Quantity: 1, UnitPrice: types.MustMoney("12.99")},
			},
			want: "20.49",
		},
		{
			name: "fractional unit price",
			cart: Cart{
				{StockID: id.New(), Quantity: 7, UnitPrice: types.MustMoney("0.33")},
			},
			want: "2.31",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, tt.cart.Total().Equal(types.MustMoney(tt.want)),
				"total %s, want %s", tt.cart.Total(), tt.want)
		})
	}
}
