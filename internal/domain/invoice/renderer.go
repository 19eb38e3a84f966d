// Package invoice turns a committed sale into a printable PDF document.
// Rendering is a pure function of (number, buyer, line items, total).
package invoice

import (
	"bytes"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"

	"pharmapos/internal/core/types"
)

// Line is one rendered invoice row.
type Line struct {
	Name      string
	Quantity  int64
	UnitPrice types.Money
}

// Total returns quantity × unit price for the line.
func (l Line) Total() types.Money {
	return types.LineTotal(l.Quantity, l.UnitPrice)
}

// Document is everything the renderer needs for one invoice.
type Document struct {
	Number      string
	Buyer       string
	GeneratedAt time.Time
	Lines       []Line
	Total       types.Money
}

// Render lays out the invoice: title, buyer and date header, a four-column
// line table (unit price and line total with 2 decimal places) and the grand
// total footer.
func Render(doc Document) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 14)
	pdf.CellFormat(0, 10, "Pharmacy Invoice", "", 1, "C", false, 0, "")

	pdf.SetFont("Arial", "", 12)
	pdf.CellFormat(0, 10, fmt.Sprintf("Invoice: %s", doc.Number), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 10, fmt.Sprintf("Buyer: %s - Date: %s", doc.Buyer, doc.GeneratedAt.Format("2006-01-02 15:04")), "", 1, "L", false, 0, "")
	pdf.Ln(5)

	pdf.SetFont("Arial", "B", 10)
	pdf.CellFormat(70, 10, "Medicine", "1", 0, "L", false, 0, "")
	pdf.CellFormat(30, 10, "Qty", "1", 0, "C", false, 0, "")
	pdf.CellFormat(40, 10, "Unit Price", "1", 0, "R", false, 0, "")
	pdf.CellFormat(40, 10, "Total", "1", 1, "R", false, 0, "")

	pdf.SetFont("Arial", "", 10)
	for _, line := range doc.Lines {
		pdf.CellFormat(70, 10, line.Name, "1", 0, "L", false, 0, "")
		pdf.CellFormat(30, 10, fmt.Sprintf("%d", line.Quantity), "1", 0, "C", false, 0, "")
		pdf.CellFormat(40, 10, line.UnitPrice.StringFixed(2), "1", 0, "R", false, 0, "")
		pdf.CellFormat(40, 10, line.Total().StringFixed(2), "1", 1, "R", false, 0, "")
	}

	pdf.SetFont("Arial", "B", 10)
	pdf.CellFormat(140, 10, "Total:", "1", 0, "R", false, 0, "")
	pdf.CellFormat(40, 10, doc.Total.StringFixed(2), "1", 1, "R", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render invoice pdf: %w", err)
	}
	return buf.Bytes(), nil
}
