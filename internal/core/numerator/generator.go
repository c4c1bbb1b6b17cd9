// Package numerator provides domain contracts for quotation auto-numbering.
// Implementations live in infrastructure layer.
package numerator

import (
	"context"
	"time"
)

// Generator mints sequential quotation numbers.
// This is the domain contract - implementations live in infrastructure layer.
type Generator interface {
	// NextNumber atomically increments the persistent counter by exactly one
	// and returns the formatted number. The counter is stored before the
	// number is returned, so minted numbers survive process restarts.
	NextNumber(ctx context.Context, cfg Config, now time.Time) (string, error)

	// SetNextNumber sets the value the next call will return (for migration
	// purposes).
	SetNextNumber(ctx context.Context, value int64) error
}
