// Package storage defines the local key-value persistence contract.
// Each namespace holds one JSON-encoded value; implementations persist
// synchronously before returning.
package storage

import (
	"context"
	"errors"
)

// Namespace names for the three logically separate slots.
const (
	NamespaceQuotations = "quotations"
	NamespaceCounter    = "quotation_counter"
	NamespaceSettings   = "settings"
)

// ErrNotFound is returned by Load when a namespace has never been stored.
var ErrNotFound = errors.New("storage: namespace not found")

// ErrCorrupt is returned by Load when stored data cannot be decoded.
// Callers holding collections degrade to "no data" instead of failing.
var ErrCorrupt = errors.New("storage: stored data is corrupt")

// Provider persists one value per namespace on the local device.
// Store must complete the write before returning; there is no write-ahead
// log or partial-failure path.
type Provider interface {
	// Load decodes the namespace value into v.
	// Returns ErrNotFound if the namespace was never stored and ErrCorrupt
	// (wrapped) if the stored bytes cannot be decoded.
	Load(ctx context.Context, namespace string, v any) error

	// Store encodes v and replaces the namespace value.
	Store(ctx context.Context, namespace string, v any) error

	// Close releases any resources held by the provider.
	Close() error
}
