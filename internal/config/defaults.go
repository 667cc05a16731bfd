package config

import "time"

// DefaultConfig returns a Config with sensible defaults: the Philippines
// bounding box [5,115]-[21,127] centered at 13N 121E.
func DefaultConfig() *Config {
	return &Config{
		Data: DataConfig{
			Source:  "map-data",
			Timeout: 15 * time.Second,
		},
		Map: MapConfig{
			MaxLevel: 3,
		},
		Viewport: DefaultViewport(),
		Log: LogConfig{
			Level: "info",
			File:  "drillmap.log",
		},
	}
}

// DefaultViewport returns the default camera tuning.
func DefaultViewport() ViewportConfig {
	return ViewportConfig{
		CenterLat:         13.0,
		CenterLon:         121.0,
		InitialZoom:       6,
		MinZoom:           5,
		MaxZoom:           12,
		DetailZoom:        9,
		FitPadding:        2,
		TileSize:          64,
		AnimationDuration: 800 * time.Millisecond,
		SettleDelay:       200 * time.Millisecond,
		BusyWindow:        1000 * time.Millisecond,
	}
}
