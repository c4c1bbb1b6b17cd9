// Package backup takes zstd-compressed JSON snapshots of the three storage
// namespaces and restores them. Snapshots are plain files; retention keeps
// only the newest few.
package backup

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/klauspost/compress/zstd"

	"borequote/internal/infrastructure/storage"
	"borequote/pkg/logger"
)

const filePrefix = "borequote-backup-"

// snapshot holds the raw JSON of every namespace present at backup time.
type snapshot struct {
	TakenAt    time.Time                  `json:"takenAt"`
	Namespaces map[string]json.RawMessage `json:"namespaces"`
}

// Manager creates, prunes, and restores snapshots.
type Manager struct {
	provider  storage.Provider
	dir       string
	retention int
	log       *logger.Logger
}

// New creates a backup manager. Retention below 1 keeps every snapshot.
func New(provider storage.Provider, dir string, retention int, log *logger.Logger) *Manager {
	if log == nil {
		log = logger.Default()
	}
	return &Manager{
		provider:  provider,
		dir:       dir,
		retention: retention,
		log:       log.WithComponent("backup"),
	}
}

// Create writes a new snapshot file and returns its path.
func (m *Manager) Create(ctx context.Context) (string, error) {
	if err := os.MkdirAll(m.dir, 0o755); err != nil {
		return "", fmt.Errorf("create backup dir: %w", err)
	}

	snap := snapshot{
		TakenAt:    time.Now(),
		Namespaces: make(map[string]json.RawMessage),
	}
	for _, ns := range []string{
		storage.NamespaceQuotations,
		storage.NamespaceCounter,
		storage.NamespaceSettings,
	} {
		var raw json.RawMessage
		err := m.provider.Load(ctx, ns, &raw)
		switch {
		case err == nil:
			snap.Namespaces[ns] = raw
		case errors.Is(err, storage.ErrNotFound), errors.Is(err, storage.ErrCorrupt):
			// Nothing usable to snapshot for this slot.
		default:
			return "", fmt.Errorf("load %s: %w", ns, err)
		}
	}

	data, err := json.Marshal(snap)
	if err != nil {
		return "", fmt.Errorf("encode snapshot: %w", err)
	}

	enc, err := zstd.NewWriter(nil)
	if err != nil {
		return "", fmt.Errorf("init compressor: %w", err)
	}
	compressed := enc.EncodeAll(data, nil)
	enc.Close()

	ts := snap.TakenAt.Format("2006-01-02T15-04-05")
	path := filepath.Join(m.dir, filePrefix+ts+".json.zst")
	// If file exists, add a counter suffix
	counter := 1
	for {
		if _, err := os.Stat(path); os.IsNotExist(err) {
			break
		}
		path = filepath.Join(m.dir, fmt.Sprintf("%s%s-%d.json.zst", filePrefix, ts, counter))
		counter++
	}

	if err := os.WriteFile(path, compressed, 0o644); err != nil {
		return "", fmt.Errorf("write snapshot: %w", err)
	}

	m.log.Infow("backup created", "path", path, "bytes", len(compressed))
	m.prune()
	return path, nil
}

// Restore loads a snapshot file and stores every namespace it contains.
func (m *Manager) Restore(ctx context.Context, path string) error {
	compressed, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read snapshot: %w", err)
	}

	dec, err := zstd.NewReader(nil)
	if err != nil {
		return fmt.Errorf("init decompressor: %w", err)
	}
	defer dec.Close()
	data, err := dec.DecodeAll(compressed, nil)
	if err != nil {
		return fmt.Errorf("decompress snapshot: %w", err)
	}

	var snap snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return fmt.Errorf("decode snapshot: %w", err)
	}

	for ns, raw := range snap.Namespaces {
		if err := m.provider.Store(ctx, ns, raw); err != nil {
			return fmt.Errorf("restore %s: %w", ns, err)
		}
	}

	m.log.Infow("backup restored", "path", path, "namespaces", len(snap.Namespaces))
	return nil
}

// List returns snapshot paths, newest first.
func (m *Manager) List() ([]string, error) {
	entries, err := os.ReadDir(m.dir)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var paths []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasPrefix(e.Name(), filePrefix) {
			paths = append(paths, filepath.Join(m.dir, e.Name()))
		}
	}
	// Timestamped names sort chronologically.
	sort.Sort(sort.Reverse(sort.StringSlice(paths)))
	return paths, nil
}

// prune removes snapshots beyond the retention count.
func (m *Manager) prune() {
	if m.retention < 1 {
		return
	}
	paths, err := m.List()
	if err != nil {
		m.log.Warnw("list backups failed", "error", err)
		return
	}
	for _, path := range paths[min(m.retention, len(paths)):] {
		if err := os.Remove(path); err != nil {
			m.log.Warnw("remove old backup failed", "path", path, "error", err)
		}
	}
}
