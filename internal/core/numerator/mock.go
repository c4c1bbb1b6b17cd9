// Package numerator provides domain contracts for quotation auto-numbering.
package numerator

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"
)

// MockGenerator is a test implementation of Generator.
// Use in unit tests to avoid storage dependencies.
type MockGenerator struct {
	NextNumberFunc    func(ctx context.Context, cfg Config, now time.Time) (string, error)
	SetNextNumberFunc func(ctx context.Context, value int64) error

	seq atomic.Int64
}

// NextNumber implements Generator.
func (m *MockGenerator) NextNumber(ctx context.Context, cfg Config, now time.Time) (string, error) {
	if m.NextNumberFunc != nil {
		return m.NextNumberFunc(ctx, cfg, now)
	}
	// Default: predictable in-memory sequence
	return fmt.Sprintf("MOCK%04d", m.seq.Add(1)), nil
}

// SetNextNumber implements Generator.
func (m *MockGenerator) SetNextNumber(ctx context.Context, value int64) error {
	if m.SetNextNumberFunc != nil {
		return m.SetNextNumberFunc(ctx, value)
	}
	m.seq.Store(value - 1)
	return nil
}

// Ensure compile-time interface compliance.
var _ Generator = (*MockGenerator)(nil)
