package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultValidates(t *testing.T) {
	cfg := Default()
	assert.NoError(t, cfg.Validate())

	p := cfg.Model.Params()
	assert.Equal(t, 100.0, p.S0)
	assert.Equal(t, 252, p.Steps)
	require.NotNil(t, p.Seed)
	assert.Equal(t, uint64(42), *p.Seed)
}

func TestYAMLRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scenario.yaml")

	cfg := Default()
	cfg.Model.Sigma = 0.35
	cfg.Journal = JournalConfig{Type: "sqlite", DBPath: "./runs.sqlite"}
	require.NoError(t, cfg.SaveToFile(path))

	got, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, got)
}

func TestJSONRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scenario.json")

	cfg := Default()
	cfg.Model.Seed = nil
	require.NoError(t, cfg.SaveToFile(path))

	got, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, got)
	assert.Nil(t, got.Model.Seed)
}

func TestValidateRejectsBadModel(t *testing.T) {
	cfg := Default()
	cfg.Model.S0 = 0
	assert.Error(t, cfg.Validate())

	cfg = Default()
	cfg.Model.Sigma = -0.1
	assert.Error(t, cfg.Validate())

	cfg = Default()
	cfg.Model.Steps = 0
	assert.Error(t, cfg.Validate())
}

func TestValidateJournal(t *testing.T) {
	cfg := Default()
	cfg.Journal = JournalConfig{Type: "csv"}
	assert.Error(t, cfg.Validate())

	cfg.Journal = JournalConfig{Type: "sqlite"}
	assert.Error(t, cfg.Validate())

	cfg.Journal = JournalConfig{Type: "none"}
	assert.NoError(t, cfg.Validate())

	cfg.Journal = JournalConfig{Type: "parquet"}
	assert.Error(t, cfg.Validate())
}

func TestLoadMissingFile(t *testing.T) {
	_, err := LoadFromFile(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
