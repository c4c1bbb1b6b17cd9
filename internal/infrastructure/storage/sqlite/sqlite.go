// Package sqlite provides a SQLite-backed storage provider.
// All namespaces live in a single kv table inside one database file, which
// keeps the whole quotation history in one portable file.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	_ "modernc.org/sqlite"

	"borequote/internal/infrastructure/storage"
)

// Provider stores one JSON blob per namespace in a kv table.
type Provider struct {
	db *sql.DB
}

// Ensure compile-time interface compliance.
var _ storage.Provider = (*Provider)(nil)

// New opens (or creates) the database file and runs migrations.
func New(path string) (*Provider, error) {
	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}
	db, err := sql.Open("sqlite", path+sep+"_journal_mode=WAL&_busy_timeout=10000")
	if err != nil {
		return nil, err
	}

	// One logical writer; a single connection avoids SQLITE_BUSY churn.
	db.SetMaxOpenConns(1)

	// Explicitly set WAL mode (some drivers don't parse connection string params correctly)
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enable WAL mode: %w", err)
	}
	if _, err := db.Exec("PRAGMA busy_timeout=10000"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set busy_timeout: %w", err)
	}

	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS slots (
		namespace TEXT PRIMARY KEY,
		value BLOB NOT NULL,
		updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
	)`); err != nil {
		db.Close()
		return nil, fmt.Errorf("create slots table: %w", err)
	}

	return &Provider{db: db}, nil
}

// Load implements storage.Provider.
func (p *Provider) Load(ctx context.Context, namespace string, v any) error {
	var data []byte
	err := p.db.QueryRowContext(ctx,
		`SELECT value FROM slots WHERE namespace = ?`, namespace).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return storage.ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("select %s: %w", namespace, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("%w: decode %s: %v", storage.ErrCorrupt, namespace, err)
	}
	return nil
}

// Store implements storage.Provider.
func (p *Provider) Store(ctx context.Context, namespace string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", namespace, err)
	}
	_, err = p.db.ExecContext(ctx,
		`INSERT INTO slots (namespace, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(namespace) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		namespace, data)
	if err != nil {
		return fmt.Errorf("upsert %s: %w", namespace, err)
	}
	return nil
}

// Close implements storage.Provider.
func (p *Provider) Close() error {
	return p.db.Close()
}
