// Package jsonfile provides a file-backed storage provider.
// Each namespace is one JSON file in the data directory, written atomically
// via a temp file and rename.
package jsonfile

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"borequote/internal/infrastructure/storage"
)

// Provider stores each namespace as <dir>/<namespace>.json.
type Provider struct {
	dir string
}

// Ensure compile-time interface compliance.
var _ storage.Provider = (*Provider)(nil)

// New creates the data directory if needed and returns a Provider.
func New(dir string) (*Provider, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	return &Provider{dir: dir}, nil
}

// Load implements storage.Provider.
func (p *Provider) Load(ctx context.Context, namespace string, v any) error {
	data, err := os.ReadFile(p.path(namespace))
	if os.IsNotExist(err) {
		return storage.ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("read %s: %w", namespace, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("%w: decode %s: %v", storage.ErrCorrupt, namespace, err)
	}
	return nil
}

// Store implements storage.Provider.
func (p *Provider) Store(ctx context.Context, namespace string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", namespace, err)
	}

	dest := p.path(namespace)
	tmp, err := os.CreateTemp(p.dir, namespace+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write %s: %w", namespace, err)
	}
	// Flush to disk before rename so a crash never leaves a half-written slot.
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("sync %s: %w", namespace, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close %s: %w", namespace, err)
	}
	if err := os.Rename(tmpName, dest); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replace %s: %w", namespace, err)
	}
	return nil
}

// Close implements storage.Provider. File handles are not kept open.
func (p *Provider) Close() error { return nil }

func (p *Provider) path(namespace string) string {
	return filepath.Join(p.dir, namespace+".json")
}
