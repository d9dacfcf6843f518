// Package config defines the game configuration and its YAML loader.
// Values cover the window, the loop tick rate, gameplay tuning, and asset
// paths; everything ships with embedded defaults so the game runs with no
// config file at all.
package config

import "path/filepath"

// Config is the full runtime configuration.
type Config struct {
	Window  WindowConfig `yaml:"window"`
	Loop    LoopConfig   `yaml:"loop"`
	Player  PlayerConfig `yaml:"player"`
	Bullets BulletConfig `yaml:"bullets"`
	Assets  AssetConfig  `yaml:"assets"`
}

// WindowConfig describes the initial window.
type WindowConfig struct {
	Title  string `yaml:"title"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
}

// LoopConfig tunes the game loop.
type LoopConfig struct {
	// FPS is the fixed tick rate the loop targets.
	FPS int `yaml:"fps"`
}

// PlayerConfig tunes the player ship.
type PlayerConfig struct {
	// Speed is the distance travelled per second while moving, in pixels.
	Speed float64 `yaml:"speed"`

	// MoveRegion is the fraction of the playfield width the ship may
	// occupy. The full height is always available.
	MoveRegion float64 `yaml:"move_region"`

	// DebugBox draws the ship's bounding rectangle when true.
	DebugBox bool `yaml:"debug_box"`
}

// BulletConfig tunes bullets.
type BulletConfig struct {
	// Speed is the horizontal bullet speed in pixels per second.
	Speed float64 `yaml:"speed"`
}

// AssetConfig locates the image and font files the game loads at startup.
type AssetConfig struct {
	Dir              string `yaml:"dir"`
	ShipSheet        string `yaml:"ship_sheet"`
	AsteroidSheet    string `yaml:"asteroid_sheet"`
	BackgroundBack   string `yaml:"background_back"`
	BackgroundMiddle string `yaml:"background_middle"`
	BackgroundFront  string `yaml:"background_front"`
	Font             string `yaml:"font"`
}

// Path resolves an asset file name against the configured asset directory.
func (a AssetConfig) Path(name string) string {
	return filepath.Join(a.Dir, name)
}
