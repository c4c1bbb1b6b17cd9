// Package pdf defines the printable document contract for quotations.
package pdf

import (
	"fmt"

	"borequote/internal/domain/quotation"
	"borequote/internal/domain/settings"
)

// Generator renders a quotation and the business card into document bytes.
// Implementations are pure transformations; they never touch the store.
type Generator interface {
	Generate(q quotation.Quotation, card settings.BusinessCard) ([]byte, error)
}

// Filename returns the canonical output name for a quotation document.
func Filename(q quotation.Quotation) string {
	return fmt.Sprintf("Quotation_%s.pdf", q.QuotationNumber)
}
