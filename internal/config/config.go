package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	yamlv3 "gopkg.in/yaml.v3"
)

// EnvPrefix prefixes environment overrides. A double underscore separates
// nesting levels: DRILLMAP_VIEWPORT__DETAIL_ZOOM -> viewport.detail_zoom.
const EnvPrefix = "DRILLMAP_"

// Load reads configuration from the given YAML file, then overlays
// environment variable overrides, then validates the result.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	cfg := DefaultConfig()

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
				return nil, fmt.Errorf("reading config %s: %w", path, err)
			}
		} else if !os.IsNotExist(err) {
			return nil, fmt.Errorf("accessing config %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func envKey(s string) string {
	s = strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	return strings.ReplaceAll(s, "__", ".")
}

// Save writes the configuration to the given YAML file path.
func (c *Config) Save(path string) error {
	data, err := yamlv3.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}
	return nil
}

// Validate checks that the configuration contains valid values.
func (c *Config) Validate() error {
	if c.Data.Source == "" {
		return fmt.Errorf("data.source is required")
	}
	if c.Data.Timeout < 0 {
		return fmt.Errorf("data.timeout must be non-negative")
	}
	if c.Map.MaxLevel < 1 {
		return fmt.Errorf("map.max_level must be at least 1, got %d", c.Map.MaxLevel)
	}
	return c.Viewport.Validate()
}

// Validate checks the camera tuning constants.
func (v ViewportConfig) Validate() error {
	if v.CenterLat < -90 || v.CenterLat > 90 || v.CenterLon < -180 || v.CenterLon > 180 {
		return fmt.Errorf("viewport center (%g, %g) is out of range", v.CenterLat, v.CenterLon)
	}
	if v.MinZoom > v.MaxZoom {
		return fmt.Errorf("viewport.min_zoom %g exceeds max_zoom %g", v.MinZoom, v.MaxZoom)
	}
	if v.InitialZoom < v.MinZoom || v.InitialZoom > v.MaxZoom {
		return fmt.Errorf("viewport.initial_zoom %g must be within [%g, %g]", v.InitialZoom, v.MinZoom, v.MaxZoom)
	}
	if v.DetailZoom < v.MinZoom || v.DetailZoom > v.MaxZoom {
		return fmt.Errorf("viewport.detail_zoom %g must be within [%g, %g]", v.DetailZoom, v.MinZoom, v.MaxZoom)
	}
	if v.FitPadding < 0 {
		return fmt.Errorf("viewport.fit_padding must be non-negative")
	}
	if v.TileSize <= 0 {
		return fmt.Errorf("viewport.tile_size must be positive")
	}
	if v.AnimationDuration < 0 || v.SettleDelay < 0 || v.BusyWindow < 0 {
		return fmt.Errorf("viewport durations must be non-negative")
	}
	return nil
}
