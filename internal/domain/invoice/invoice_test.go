package invoice

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pharmapos/internal/core/apperror"
	"pharmapos/internal/core/types"
)

func sampleDocument() Document {
	return Document{
		Number:      "INV-2026-00001",
		Buyer:       "Alice",
		GeneratedAt: time.Date(2026, 8, 31, 10, 0, 0, 0, time.UTC),
		Lines: []Line{
			{Name: "Paracetamol", Quantity: 10, UnitPrice: types.MustMoney("5.00")},
			{Name: "Ibuprofen", Quantity: 2, UnitPrice: types.MustMoney("7.50")},
		},
		Total: types.MustMoney("65.00"),
	}
}

func TestRender(t *testing.T) {
	pdf, err := Render(sampleDocument())
	require.NoError(t, err)
	require.NotEmpty(t, pdf)
	assert.Equal(t, "%PDF", string(pdf[:4]))
}

func TestLineTotal(t *testing.T) {
	line := Line{Name: "Paracetamol", Quantity: 7, UnitPrice: types.MustMoney("0.33")}
	assert.True(t, line.Total().Equal(types.MustMoney("2.31")))
}

func TestFilename(t *testing.T) {
	tests := []struct {
		name   string
		buyer  string
		number string
		want   string
	}{
		{
			name:   "plain",
			buyer:  "Alice",
			number: "INV-2026-00001",
			want:   "invoice_Alice_INV-2026-00001.pdf",
		},
		{
			name:   "spaces and slashes sanitized",
			buyer:  "Bob / Pharmacy Ltd",
			number: "INV-2026-00002",
			want:   "invoice_Bob___Pharmacy_Ltd_INV-2026-00002.pdf",
		},
		{
			name:   "unicode buyer",
			buyer:  "Ñandú",
			number: "INV-2026-00003",
			want:   "invoice__and__INV-2026-00003.pdf",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Filename(tt.buyer, tt.number))
		})
	}
}

func TestStoreSaveAndOpen(t *testing.T) {
	store := NewStore(t.TempDir())
	doc := sampleDocument()

	pdf, err := Render(doc)
	require.NoError(t, err)

	path, err := store.Save(doc, pdf)
	require.NoError(t, err)
	assert.FileExists(t, path)

	name, data, err := store.Open(doc.Number)
	require.NoError(t, err)
	assert.Equal(t, "invoice_Alice_INV-2026-00001.pdf", name)
	assert.Equal(t, pdf, data)
}

func TestStoreOpenMissing(t *testing.T) {
	store := NewStore(t.TempDir())

	_, _, err := store.Open("INV-2026-99999")
	require.Error(t, err)
	assert.True(t, apperror.IsNotFound(err))
}
