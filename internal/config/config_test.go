package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())

	assert.Equal(t, 3, cfg.Map.MaxLevel)
	assert.Equal(t, 6.0, cfg.Viewport.InitialZoom)
	assert.Equal(t, 5.0, cfg.Viewport.MinZoom)
	assert.Equal(t, 12.0, cfg.Viewport.MaxZoom)
	assert.Equal(t, 9.0, cfg.Viewport.DetailZoom)
	assert.Equal(t, 200*time.Millisecond, cfg.Viewport.SettleDelay)
	assert.Equal(t, time.Second, cfg.Viewport.BusyWindow)
	assert.Equal(t, 121.0, cfg.Viewport.Center().Lon())
	assert.Equal(t, 13.0, cfg.Viewport.Center().Lat())
}

func TestSaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "drillmap.yml")

	original := DefaultConfig()
	original.Data.Source = "https://example.org/map-data"
	original.Map.MaxLevel = 2
	original.Map.InitialArea = "Region A"
	original.Viewport.DetailZoom = 10
	original.Viewport.BusyWindow = 1500 * time.Millisecond
	original.Log.Level = "debug"

	require.NoError(t, original.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, original, loaded)
}

func TestLoadMissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nonexistent.yml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadPartialFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "drillmap.yml")
	content := "map:\n  max_level: 2\nviewport:\n  settle_delay: 50ms\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 2, cfg.Map.MaxLevel)
	assert.Equal(t, 50*time.Millisecond, cfg.Viewport.SettleDelay)
	assert.Equal(t, 9.0, cfg.Viewport.DetailZoom)
	assert.Equal(t, "map-data", cfg.Data.Source)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("DRILLMAP_MAP__MAX_LEVEL", "1")
	t.Setenv("DRILLMAP_DATA__SOURCE", "/srv/boundaries")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 1, cfg.Map.MaxLevel)
	assert.Equal(t, "/srv/boundaries", cfg.Data.Source)
}

func TestLoadRejectsInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "drillmap.yml")
	require.NoError(t, os.WriteFile(path, []byte("viewport:\n  detail_zoom: 20\n"), 0o644))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "detail_zoom")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		errMsg string
	}{
		{"empty source", func(c *Config) { c.Data.Source = "" }, "data.source"},
		{"zero max level", func(c *Config) { c.Map.MaxLevel = 0 }, "max_level"},
		{"min above max", func(c *Config) { c.Viewport.MinZoom = 13 }, "min_zoom"},
		{"initial out of range", func(c *Config) { c.Viewport.InitialZoom = 1 }, "initial_zoom"},
		{"negative padding", func(c *Config) { c.Viewport.FitPadding = -1 }, "fit_padding"},
		{"zero tile size", func(c *Config) { c.Viewport.TileSize = 0 }, "tile_size"},
		{"negative delay", func(c *Config) { c.Viewport.SettleDelay = -time.Second }, "durations"},
		{"bad center", func(c *Config) { c.Viewport.CenterLat = 91 }, "center"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}
