package sqlite

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"borequote/internal/infrastructure/storage"
)

func newTestProvider(t *testing.T) *Provider {
	t.Helper()
	provider, err := New(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { provider.Close() })
	return provider
}

func TestRoundTrip(t *testing.T) {
	provider := newTestProvider(t)
	ctx := context.Background()

	in := []string{"BQ260001", "BQ260002"}
	require.NoError(t, provider.Store(ctx, storage.NamespaceQuotations, in))

	var out []string
	require.NoError(t, provider.Load(ctx, storage.NamespaceQuotations, &out))
	assert.Equal(t, in, out)
}

func TestLoad_MissingNamespace(t *testing.T) {
	provider := newTestProvider(t)

	var out int64
	err := provider.Load(context.Background(), storage.NamespaceCounter, &out)
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestStore_Overwrites(t *testing.T) {
	provider := newTestProvider(t)
	ctx := context.Background()

	require.NoError(t, provider.Store(ctx, storage.NamespaceCounter, int64(41)))
	require.NoError(t, provider.Store(ctx, storage.NamespaceCounter, int64(42)))

	var counter int64
	require.NoError(t, provider.Load(ctx, storage.NamespaceCounter, &counter))
	assert.Equal(t, int64(42), counter)
}

func TestLoad_CorruptValue(t *testing.T) {
	provider := newTestProvider(t)
	ctx := context.Background()

	_, err := provider.db.ExecContext(ctx,
		`INSERT INTO slots (namespace, value) VALUES (?, ?)`,
		storage.NamespaceQuotations, []byte("{oops"))
	require.NoError(t, err)

	var out []string
	err = provider.Load(ctx, storage.NamespaceQuotations, &out)
	assert.True(t, errors.Is(err, storage.ErrCorrupt))
}

func TestReopen_KeepsData(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")
	ctx := context.Background()

	first, err := New(path)
	require.NoError(t, err)
	require.NoError(t, first.Store(ctx, storage.NamespaceCounter, int64(9)))
	require.NoError(t, first.Close())

	second, err := New(path)
	require.NoError(t, err)
	defer second.Close()

	var counter int64
	require.NoError(t, second.Load(ctx, storage.NamespaceCounter, &counter))
	assert.Equal(t, int64(9), counter)
}
