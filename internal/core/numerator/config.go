// Package numerator provides domain contracts for quotation auto-numbering.
package numerator

import (
	"fmt"
	"time"
)

// Config holds numbering configuration.
type Config struct {
	// Prefix added to all numbers (e.g., "BQ")
	Prefix string

	// PadWidth is the minimum sequence width (default 4).
	// Sequences beyond the width widen naturally; they never wrap.
	PadWidth int
}

// DefaultConfig returns sensible defaults.
func DefaultConfig(prefix string) Config {
	return Config{
		Prefix:   prefix,
		PadWidth: 4,
	}
}

// Format renders a quotation number from a sequence value.
// Pattern: PREFIX + two-digit year + zero-padded sequence (e.g., BQ260001).
// The year is taken from the moment of minting, not from the quotation date.
func (c Config) Format(seq int64, now time.Time) string {
	pad := c.PadWidth
	if pad <= 0 {
		pad = 4
	}
	return fmt.Sprintf("%s%02d%0*d", c.Prefix, now.Year()%100, pad, seq)
}
