package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "jsonfile", cfg.Storage)
	assert.NotEmpty(t, cfg.DataDir)
	assert.Equal(t, "₹", cfg.CurrencySymbol)
	assert.Equal(t, "BQ", cfg.Numbering.Prefix)
	assert.Equal(t, 4, cfg.Numbering.PadWidth)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, 7, cfg.Backup.Retention)
	assert.Empty(t, cfg.PDF.FontDir)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("BOREQUOTE_STORAGE", "sqlite")
	t.Setenv("BOREQUOTE_CURRENCY_SYMBOL", "Rs.")
	t.Setenv("BOREQUOTE_NUMBERING_PREFIX", "QT")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "sqlite", cfg.Storage)
	assert.Equal(t, "Rs.", cfg.CurrencySymbol)
	assert.Equal(t, "QT", cfg.Numbering.Prefix)
	// Untouched keys keep their defaults.
	assert.Equal(t, 4, cfg.Numbering.PadWidth)
}
