package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadFullConfig(t *testing.T) {
	path := writeConfig(t, "month = \"june\"\nsound = true\nvolume = 0.8\n")
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "june", cfg.Month)
	assert.True(t, cfg.Sound)
	assert.InDelta(t, 0.8, cfg.Volume, 1e-9)
}

func TestLoadPartialConfigKeepsDefaults(t *testing.T) {
	path := writeConfig(t, "month = \"october\"\n")
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "october", cfg.Month)
	assert.False(t, cfg.Sound)
	assert.InDelta(t, Default().Volume, cfg.Volume, 1e-9)
}

func TestLoadClampsVolume(t *testing.T) {
	for _, content := range []string{"volume = 0.0\n", "volume = -1.0\n", "volume = 3.0\n"} {
		cfg, err := Load(writeConfig(t, content))
		require.NoError(t, err)
		assert.InDelta(t, Default().Volume, cfg.Volume, 1e-9, content)
	}
}

func TestLoadMalformedToml(t *testing.T) {
	cfg, err := Load(writeConfig(t, "month = = \"june\"\n"))
	assert.Error(t, err)
	assert.Equal(t, Default(), cfg)
}
