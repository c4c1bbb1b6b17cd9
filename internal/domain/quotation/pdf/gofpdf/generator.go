// Package gofpdf renders quotation documents with jung-kurt/gofpdf.
package gofpdf

import (
	"bytes"
	"fmt"
	"path/filepath"

	"github.com/jung-kurt/gofpdf"

	"borequote/internal/domain/quotation"
	"borequote/internal/domain/settings"
	qpdf "borequote/internal/domain/quotation/pdf"
)

const dateLayout = "02/01/2006"

// Options configures document rendering.
type Options struct {
	// CurrencySymbol prefixes every amount (e.g. "₹").
	CurrencySymbol string

	// FontDir holds DejaVuSans.ttf and DejaVuSans-Bold.ttf for full UTF-8
	// output. When empty the built-in Helvetica is used and non-latin
	// currency symbols fall back to "Rs.".
	FontDir string
}

// Generator implements pdf.Generator.
type Generator struct {
	opts Options
}

// Ensure compile-time interface compliance.
var _ qpdf.Generator = (*Generator)(nil)

// New creates a Generator.
func New(opts Options) *Generator {
	if opts.CurrencySymbol == "" {
		opts.CurrencySymbol = "₹"
	}
	return &Generator{opts: opts}
}

// Generate renders the fixed document layout: business-card header, title,
// metadata, items table, total row, optional notes, and a contact footer
// repeated on every page. Table row order matches the items order exactly.
func (g *Generator) Generate(q quotation.Quotation, card settings.BusinessCard) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(fmt.Sprintf("Quotation %s", q.QuotationNumber), true)

	font := "Helvetica"
	symbol := g.opts.CurrencySymbol
	tr := func(s string) string { return s }
	if g.opts.FontDir != "" {
		font = "DejaVu"
		pdf.AddUTF8Font(font, "", filepath.Join(g.opts.FontDir, "DejaVuSans.ttf"))
		pdf.AddUTF8Font(font, "B", filepath.Join(g.opts.FontDir, "DejaVuSans-Bold.ttf"))
		if err := pdf.Error(); err != nil {
			return nil, fmt.Errorf("load fonts: %w", err)
		}
	} else {
		// Core fonts only cover cp1252; translate what fits and keep
		// amounts readable when the symbol does not.
		tr = pdf.UnicodeTranslatorFromDescriptor("")
		if !latin1(symbol) {
			symbol = "Rs."
		}
	}

	pdf.SetFooterFunc(func() {
		pdf.SetY(-25)
		pdf.Line(20, pdf.GetY(), 190, pdf.GetY())
		pdf.Ln(3)
		pdf.SetFont(font, "", 8)
		pdf.CellFormat(0, 4, tr(card.CompanyName), "", 1, "C", false, 0, "")
		pdf.CellFormat(0, 4, tr(fmt.Sprintf("%s | %s", card.Phone, card.Email)), "", 1, "C", false, 0, "")
	})
	pdf.SetAutoPageBreak(true, 30)
	pdf.AddPage()

	// Business card header
	pdf.SetFont(font, "B", 18)
	pdf.CellFormat(0, 8, tr(card.CompanyName), "", 1, "C", false, 0, "")
	pdf.SetFont(font, "", 9)
	pdf.CellFormat(0, 5, tr(card.OwnerName), "", 1, "C", false, 0, "")
	pdf.CellFormat(0, 5, tr(fmt.Sprintf("%s | %s", card.Phone, card.Email)), "", 1, "C", false, 0, "")
	pdf.CellFormat(0, 5, tr(card.Address), "", 1, "C", false, 0, "")
	pdf.Ln(2)
	pdf.Line(20, pdf.GetY(), 190, pdf.GetY())
	pdf.Ln(4)

	pdf.SetFont(font, "B", 16)
	pdf.CellFormat(0, 8, "QUOTATION", "", 1, "C", false, 0, "")
	pdf.Ln(2)

	pdf.SetFont(font, "", 10)
	pdf.CellFormat(0, 6, fmt.Sprintf("Quotation No: %s", q.QuotationNumber), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, fmt.Sprintf("Date: %s", q.Date.Format(dateLayout)), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, tr(fmt.Sprintf("Customer: %s", q.CustomerName)), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	// Items table
	colW := []float64{85, 25, 35, 35}
	pdf.SetFont(font, "B", 10)
	pdf.SetFillColor(37, 99, 235)
	pdf.SetTextColor(255, 255, 255)
	for i, h := range []string{"Item", "Quantity", "Price/Unit", "Total"} {
		pdf.CellFormat(colW[i], 8, h, "1", 0, "L", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont(font, "", 10)
	pdf.SetTextColor(0, 0, 0)
	for _, it := range q.Items {
		pdf.CellFormat(colW[0], 7, tr(it.Name), "1", 0, "L", false, 0, "")
		pdf.CellFormat(colW[1], 7, it.Quantity.String(), "1", 0, "R", false, 0, "")
		pdf.CellFormat(colW[2], 7, symbol+it.PricePerUnit.StringFixed(2), "1", 0, "R", false, 0, "")
		pdf.CellFormat(colW[3], 7, symbol+it.ExtendedPrice().StringFixed(2), "1", 1, "R", false, 0, "")
	}

	pdf.SetFont(font, "B", 10)
	pdf.SetFillColor(240, 240, 240)
	pdf.CellFormat(colW[0]+colW[1]+colW[2], 8, "Total Amount", "1", 0, "R", true, 0, "")
	pdf.CellFormat(colW[3], 8, symbol+q.Total.StringFixed(2), "1", 1, "R", true, 0, "")

	if q.Notes != "" {
		pdf.Ln(8)
		pdf.SetFont(font, "B", 10)
		pdf.CellFormat(0, 6, "Notes:", "", 1, "L", false, 0, "")
		pdf.SetFont(font, "", 10)
		pdf.MultiCell(170, 5, tr(q.Notes), "", "L", false)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}

// latin1 reports whether every rune fits the core-font codepage.
func latin1(s string) bool {
	for _, r := range s {
		if r > 0xFF {
			return false
		}
	}
	return true
}
