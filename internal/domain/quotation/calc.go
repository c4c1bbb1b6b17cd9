package quotation

import (
	"github.com/shopspring/decimal"

	"borequote/internal/core/types"
)

// LineTotal computes one item's extended price. No rounding at this stage;
// rounding to two decimal places happens only at display/export time.
func LineTotal(item Item) types.Money {
	return item.Quantity.Mul(item.PricePerUnit)
}

// GrandTotal sums extended prices in sequence order.
// The empty sequence totals zero.
func GrandTotal(items []Item) types.Money {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(LineTotal(item))
	}
	return total
}
