package quotation

import (
	"context"

	"borequote/internal/core/id"
)

// Repository defines the interface for Quotation persistence.
// Implementations persist the full collection synchronously on every
// mutating call; there is exactly one record per ID at any time.
type Repository interface {
	// List returns all records in storage order.
	List(ctx context.Context) ([]Quotation, error)

	// Get retrieves one record; NOT_FOUND error when absent.
	Get(ctx context.Context, quotationID id.ID) (*Quotation, error)

	// Upsert replaces the record with the same ID in place, or appends
	// when the ID is unseen. No partial-field merge.
	Upsert(ctx context.Context, q *Quotation) error

	// Delete removes the record if present; no-op when absent.
	Delete(ctx context.Context, quotationID id.ID) error
}
