package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadEngineConfigMissingFileFallsBackToDefaults(t *testing.T) {
	cfg := LoadEngineConfig(filepath.Join(t.TempDir(), "absent.toml"))
	assert.Equal(t, DefaultEngineConfig(), cfg)
}

func TestLoadEngineConfigMalformedFileFallsBackToDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.toml")
	require.NoError(t, os.WriteFile(path, []byte("not valid toml {{{"), 0o644))
	cfg := LoadEngineConfig(path)
	assert.Equal(t, DefaultEngineConfig(), cfg)
}

func TestLoadEngineConfigPartialOverridesFillOnlySetFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.toml")
	content := "[engine]\nmax_depth = 7\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg := LoadEngineConfig(path)
	assert.Equal(t, 7, cfg.MaxDepth)
	assert.Equal(t, DefaultMaxSearchSeconds, cfg.MaxSearchSeconds)
	assert.Equal(t, DefaultTableCapacity, cfg.TableCapacity)
	assert.Equal(t, DefaultMinDrawScore, cfg.MinDrawScore)
}

func TestSaveAndLoadEngineConfigRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "engine.toml")
	want := EngineConfig{
		MaxDepth:         9,
		MaxSearchSeconds: 3,
		WorkerCount:      4,
		TableCapacity:    50_000,
		MinDrawScore:     -400,
	}
	require.NoError(t, SaveEngineConfig(path, want))

	got := LoadEngineConfig(path)
	assert.Equal(t, want, got)
}

func TestSaveEngineConfigFailsOnUnwritablePath(t *testing.T) {
	err := SaveEngineConfig(filepath.Join(t.TempDir(), "no-such-dir", "engine.toml"), DefaultEngineConfig())
	assert.Error(t, err)
}
