package config

import (
	"time"

	"github.com/paulmach/orb"
)

// Config is the top-level drillmap configuration, corresponding to drillmap.yml.
type Config struct {
	Data     DataConfig     `yaml:"data" koanf:"data"`
	Map      MapConfig      `yaml:"map" koanf:"map"`
	Viewport ViewportConfig `yaml:"viewport" koanf:"viewport"`
	Log      LogConfig      `yaml:"log" koanf:"log"`
}

// DataConfig locates the level_N.json boundary documents.
type DataConfig struct {
	// Source is a directory or an http(s) base URL.
	Source  string        `yaml:"source" koanf:"source"`
	Timeout time.Duration `yaml:"timeout" koanf:"timeout"`
}

// MapConfig holds the drill-down settings the host passes to the map.
type MapConfig struct {
	MaxLevel int `yaml:"max_level" koanf:"max_level"`
	// InitialArea preselects a top-level area by name; empty starts at the root.
	InitialArea string `yaml:"initial_area" koanf:"initial_area"`
}

// ViewportConfig holds the camera tuning constants.
type ViewportConfig struct {
	CenterLat   float64 `yaml:"center_lat" koanf:"center_lat"`
	CenterLon   float64 `yaml:"center_lon" koanf:"center_lon"`
	InitialZoom float64 `yaml:"initial_zoom" koanf:"initial_zoom"`
	MinZoom     float64 `yaml:"min_zoom" koanf:"min_zoom"`
	MaxZoom     float64 `yaml:"max_zoom" koanf:"max_zoom"`
	// DetailZoom caps fit-to-shape zooming.
	DetailZoom float64 `yaml:"detail_zoom" koanf:"detail_zoom"`
	// FitPadding is in terminal cells.
	FitPadding int `yaml:"fit_padding" koanf:"fit_padding"`
	// TileSize is the number of braille dots spanning 360 degrees at zoom 0.
	TileSize          float64       `yaml:"tile_size" koanf:"tile_size"`
	AnimationDuration time.Duration `yaml:"animation_duration" koanf:"animation_duration"`
	SettleDelay       time.Duration `yaml:"settle_delay" koanf:"settle_delay"`
	BusyWindow        time.Duration `yaml:"busy_window" koanf:"busy_window"`
}

// Center is the default view center.
func (v ViewportConfig) Center() orb.Point {
	return orb.Point{v.CenterLon, v.CenterLat}
}

// LogConfig configures the file logger. An empty File disables logging.
type LogConfig struct {
	Level string `yaml:"level" koanf:"level"`
	File  string `yaml:"file" koanf:"file"`
}
