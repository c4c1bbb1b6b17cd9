// Package config loads application configuration from a YAML file with
// environment overrides.
package config

import (
	"errors"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

const EnvPrefix = "BOREQUOTE"

// Config holds all tunables. Every field has a working default; the config
// file and environment are optional.
type Config struct {
	// DataDir is where the local store and generated files live.
	DataDir string `mapstructure:"data_dir"`

	// Storage selects the provider backend: "jsonfile" or "sqlite".
	Storage string `mapstructure:"storage"`

	// CurrencySymbol prefixes every displayed amount.
	CurrencySymbol string `mapstructure:"currency_symbol"`

	Numbering struct {
		Prefix   string `mapstructure:"prefix"`
		PadWidth int    `mapstructure:"pad_width"`
	} `mapstructure:"numbering"`

	Log struct {
		Level       string `mapstructure:"level"`
		Development bool   `mapstructure:"development"`
	} `mapstructure:"log"`

	Backup struct {
		Dir       string `mapstructure:"dir"`
		Retention int    `mapstructure:"retention"`
	} `mapstructure:"backup"`

	PDF struct {
		// FontDir holds DejaVu TTFs for full UTF-8 documents; optional.
		FontDir string `mapstructure:"font_dir"`
	} `mapstructure:"pdf"`
}

// Load reads borequote.yaml from the working directory or ~/.borequote,
// applies BOREQUOTE_* environment overrides, and falls back to defaults when
// no file exists.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	v.SetDefault("data_dir", defaultDataDir())
	v.SetDefault("storage", "jsonfile")
	v.SetDefault("currency_symbol", "₹")
	v.SetDefault("numbering.prefix", "BQ")
	v.SetDefault("numbering.pad_width", 4)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.development", false)
	v.SetDefault("backup.dir", filepath.Join(defaultDataDir(), "backups"))
	v.SetDefault("backup.retention", 7)
	v.SetDefault("pdf.font_dir", "")

	v.AddConfigPath(".")
	v.AddConfigPath(filepath.Join("$HOME", ".borequote"))
	v.SetConfigName("borequote")
	v.SetConfigType("yaml")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func defaultDataDir() string {
	return filepath.Join(".", "data")
}
