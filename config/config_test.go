package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFrom(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "config.toml")
	content := `prompt = "$ "
history_size = 100
history_file = "/tmp/hist"
dedup_history = false
cycle_history = true
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := LoadFrom(path)
	require.NoError(t, err)
	assert.Equal(t, "$ ", cfg.Prompt)
	assert.Equal(t, 100, cfg.HistorySize)
	assert.Equal(t, "/tmp/hist", cfg.HistoryFile)
	assert.False(t, cfg.DedupHistory)
	assert.True(t, cfg.CycleHistory)
}

func TestLoadFrom_MissingFile(t *testing.T) {
	t.Parallel()

	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "absent.toml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadFrom_PartialFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(`prompt = ">>> "`), 0o644))

	cfg, err := LoadFrom(path)
	require.NoError(t, err)
	assert.Equal(t, ">>> ", cfg.Prompt)
	// Unset keys keep their defaults.
	assert.Equal(t, DefaultConfig().HistorySize, cfg.HistorySize)
	assert.Equal(t, DefaultConfig().DedupHistory, cfg.DedupHistory)
}

func TestLoadFrom_InvalidTOML(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("prompt = "), 0o644))

	_, err := LoadFrom(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), path)
}

func TestLoadFrom_NonPositiveHistorySize(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("history_size = -1"), 0o644))

	cfg, err := LoadFrom(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig().HistorySize, cfg.HistorySize)
}

func TestSaveTo_RoundTrip(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	want := Config{
		Prompt:       "\x1b[32m> \x1b[0m",
		HistorySize:  42,
		HistoryFile:  "hist",
		DedupHistory: true,
		CycleHistory: true,
	}
	require.NoError(t, SaveTo(want, path))

	got, err := LoadFrom(path)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}
