// Package config holds the reader-level settings that surround the line
// buffer: prompt, history sizing and history behavior. Settings live in a
// TOML file under the user's config directory.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// Config is the on-disk configuration for an input reader.
type Config struct {
	// Prompt is the string displayed before the editable text. It may
	// contain terminal escape sequences; width calculations strip them.
	Prompt string `toml:"prompt"`
	// HistorySize bounds the number of retained history entries.
	HistorySize int `toml:"history_size"`
	// HistoryFile is where history is persisted between sessions.
	// Empty disables persistence.
	HistoryFile string `toml:"history_file"`
	// DedupHistory drops a submitted line equal to the previous entry.
	DedupHistory bool `toml:"dedup_history"`
	// CycleHistory wraps history navigation around at both ends.
	CycleHistory bool `toml:"cycle_history"`
}

// DefaultConfig returns the settings used when no config file exists.
func DefaultConfig() Config {
	return Config{
		Prompt:       "> ",
		HistorySize:  500,
		DedupHistory: true,
	}
}

// Path returns the location of the config file,
// $XDG_CONFIG_HOME/lineedit/config.toml or the platform equivalent.
func Path() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolving config dir: %w", err)
	}
	return filepath.Join(dir, "lineedit", "config.toml"), nil
}

// LoadConfig reads the config file, falling back to DefaultConfig when the
// file does not exist. Keys absent from the file keep their default value.
func LoadConfig() (Config, error) {
	path, err := Path()
	if err != nil {
		return DefaultConfig(), err
	}
	return LoadFrom(path)
}

// LoadFrom reads configuration from a specific path. A missing file is not
// an error; it yields the defaults.
func LoadFrom(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config file %s: %w", path, err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config file %s: %w", path, err)
	}
	if cfg.HistorySize <= 0 {
		cfg.HistorySize = DefaultConfig().HistorySize
	}
	return cfg, nil
}

// SaveConfig writes cfg to the default config path, creating the directory
// if needed.
func SaveConfig(cfg Config) error {
	path, err := Path()
	if err != nil {
		return err
	}
	return SaveTo(cfg, path)
}

// SaveTo writes cfg to a specific path.
func SaveTo(cfg Config, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	data, err := toml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config file %s: %w", path, err)
	}
	return nil
}
