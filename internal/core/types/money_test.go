package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLineTotal(t *testing.T) {
	tests := []struct {
		name      string
		quantity  int64
		unitPrice string
		want      string
	}{
		{name: "whole units", quantity: 10, unitPrice: "5.00", want: "50.00"},
		{name: "fractional price exact", quantity: 3, unitPrice: "0.10", want: "0.30"},
		{name: "no float drift", quantity: 3, unitPrice: "0.1", want: "0.3"},
		{name: "zero quantity", quantity: 0, unitPrice: "9.99", want: "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := LineTotal(tt.quantity, MustMoney(tt.unitPrice))
			assert.True(t, got.Equal(MustMoney(tt.want)), "got %s want %s", got, tt.want)
		})
	}
}

func TestNewMoneyFromString(t *testing.T) {
	m, err := NewMoneyFromString("12.34")
	require.NoError(t, err)
	assert.Equal(t, "12.34", m.StringFixed(2))

	_, err = NewMoneyFromString("not-a-number")
	assert.Error(t, err)
}
