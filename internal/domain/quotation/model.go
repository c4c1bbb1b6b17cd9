// Package quotation provides the Quotation document: a priced estimate for a
// customer, identified by a sequential number and kept in local storage.
package quotation

import (
	"context"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"borequote/internal/core/apperror"
	"borequote/internal/core/id"
	"borequote/internal/core/types"
)

// DefaultNotes is the boilerplate appended to every new quotation.
const DefaultNotes = "• One year warranty included\n• Soil hardness extra cost if applicable"

// Item is one priced row within a quotation.
type Item struct {
	// ID is assigned at creation and never reused
	ID id.ID `json:"id"`

	// Name is a free-text label; duplicates across rows are allowed
	Name string `json:"name"`

	// Quantity is non-negative; fractional values are allowed
	Quantity types.Quantity `json:"quantity"`

	// PricePerUnit is the non-negative unit price
	PricePerUnit types.Money `json:"pricePerUnit"`
}

// NewItem creates a line item with a generated ID.
func NewItem(name string, quantity types.Quantity, pricePerUnit types.Money) Item {
	return Item{
		ID:           id.New(),
		Name:         name,
		Quantity:     quantity,
		PricePerUnit: pricePerUnit,
	}
}

// ExtendedPrice is quantity × unit price. Not stored; derived on demand.
func (i Item) ExtendedPrice() types.Money {
	return i.Quantity.Mul(i.PricePerUnit)
}

// Quotation is a priced estimate document.
type Quotation struct {
	// ID is stable across edits; duplication generates a fresh one
	ID id.ID `json:"id"`

	// QuotationNumber is assigned once at creation and immutable thereafter
	QuotationNumber string `json:"quotationNumber"`

	// CustomerName is required, enforced at the boundary before any save
	CustomerName string `json:"customerName"`

	// Date is the quotation calendar date, defaulting to creation date
	Date time.Time `json:"date"`

	// Items in display/print order
	Items []Item `json:"items"`

	// Notes is free text below the items table
	Notes string `json:"notes"`

	// Total is recomputed from Items on every save; a caller-supplied
	// value is never trusted
	Total types.Money `json:"total"`
}

// Validate implements self-validation checked before any store mutation.
func (q *Quotation) Validate(ctx context.Context) error {
	if strings.TrimSpace(q.CustomerName) == "" {
		return apperror.NewValidation("customer name is required").
			WithDetail("field", "customerName")
	}
	if len(q.Items) == 0 {
		return apperror.NewValidation("at least one item is required").
			WithDetail("field", "items")
	}
	return nil
}

// Normalize clamps negative quantities and prices to zero, the same way the
// entry form treats invalid numeric input.
func (q *Quotation) Normalize() {
	for idx := range q.Items {
		if q.Items[idx].Quantity.IsNegative() {
			q.Items[idx].Quantity = decimal.Zero
		}
		if q.Items[idx].PricePerUnit.IsNegative() {
			q.Items[idx].PricePerUnit = decimal.Zero
		}
	}
}

// CloneItems returns a copy of the items slice. Item IDs are preserved;
// only the quotation identity changes on duplication.
func (q *Quotation) CloneItems() []Item {
	items := make([]Item, len(q.Items))
	copy(items, q.Items)
	return items
}
