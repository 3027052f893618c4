package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/depeter/loopcarousel/internal/carousel"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, carousel.DefaultParams(), cfg.Params())
}

func TestLoadFileMissingReturnsDefaults(t *testing.T) {
	cfg, err := LoadFile(filepath.Join(t.TempDir(), "nope.toml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadFilePartialOverride(t *testing.T) {
	path := writeConfig(t, `
[carousel]
cells = 7
sensitivity = 1.5

[ui]
fullscreen = true
`)
	cfg, err := LoadFile(path)
	require.NoError(t, err)

	assert.Equal(t, 7, cfg.Carousel.Cells)
	assert.Equal(t, 1.5, cfg.Carousel.Sensitivity)
	assert.Equal(t, 384.0, cfg.Carousel.Pitch, "unset keys keep defaults")
	assert.True(t, cfg.UI.Fullscreen)
	assert.Equal(t, 1920, cfg.UI.Width)
}

func TestLoadFileRejectsEvenCells(t *testing.T) {
	path := writeConfig(t, "[carousel]\ncells = 4\n")

	_, err := LoadFile(path)
	require.Error(t, err)
	assert.ErrorIs(t, err, carousel.ErrInvalidParams)
	assert.Contains(t, err.Error(), path)
}

func TestLoadFileRejectsBadTOML(t *testing.T) {
	path := writeConfig(t, "[carousel\ncells = ")

	_, err := LoadFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero pitch", func(c *Config) { c.Carousel.Pitch = 0 }},
		{"reference width", func(c *Config) { c.Reference.Width = 0 }},
		{"window height", func(c *Config) { c.UI.Height = -1 }},
		{"terminal columns", func(c *Config) { c.Terminal.ColumnsPerCell = 2 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestSaveFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	cfg := DefaultConfig()
	cfg.Carousel.InitialCenter = 0
	cfg.Keybinds.Reset = "Home"

	require.NoError(t, cfg.SaveFile(path))
	loaded, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestConfigPathHonorsXDG(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	path, err := ConfigPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "loopcarousel", "config.toml"), path)
}
