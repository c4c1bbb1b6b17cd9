// Package memory provides an in-memory storage provider.
// Use in unit tests to avoid filesystem dependencies.
package memory

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"borequote/internal/infrastructure/storage"
)

// Provider holds namespace values as JSON bytes in a map.
type Provider struct {
	mu    sync.Mutex
	slots map[string][]byte

	// StoreErr, when set, is returned by every Store call.
	// Simulates a full or unavailable device in tests.
	StoreErr error
}

// Ensure compile-time interface compliance.
var _ storage.Provider = (*Provider)(nil)

// New returns an empty Provider.
func New() *Provider {
	return &Provider{slots: make(map[string][]byte)}
}

// Load implements storage.Provider.
func (p *Provider) Load(ctx context.Context, namespace string, v any) error {
	p.mu.Lock()
	data, ok := p.slots[namespace]
	p.mu.Unlock()
	if !ok {
		return storage.ErrNotFound
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("%w: decode %s: %v", storage.ErrCorrupt, namespace, err)
	}
	return nil
}

// Store implements storage.Provider.
func (p *Provider) Store(ctx context.Context, namespace string, v any) error {
	if p.StoreErr != nil {
		return p.StoreErr
	}
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", namespace, err)
	}
	p.mu.Lock()
	p.slots[namespace] = data
	p.mu.Unlock()
	return nil
}

// Close implements storage.Provider.
func (p *Provider) Close() error { return nil }

// SetRaw seeds a namespace with raw bytes, bypassing JSON encoding.
// Lets tests plant malformed data.
func (p *Provider) SetRaw(namespace string, data []byte) {
	p.mu.Lock()
	p.slots[namespace] = data
	p.mu.Unlock()
}
