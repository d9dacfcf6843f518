package config

import (
	_ "embed"
)

//go:embed defaults/stardrift.yaml
var defaultYAML []byte

// Default returns the default configuration, used when no config file can be
// found or parsed.
func Default() Config {
	return Config{
		Window: WindowConfig{
			Title:  "Stardrift",
			Width:  800,
			Height: 600,
		},
		Loop: LoopConfig{
			FPS: 60,
		},
		Player: PlayerConfig{
			Speed:      180.0,
			MoveRegion: 0.7,
		},
		Bullets: BulletConfig{
			Speed: 240.0,
		},
		Assets: AssetConfig{
			Dir:              "assets",
			ShipSheet:        "spaceship.png",
			AsteroidSheet:    "asteroid.png",
			BackgroundBack:   "starBG.png",
			BackgroundMiddle: "starMG.png",
			BackgroundFront:  "starFG.png",
			Font:             "belligerent.ttf",
		},
	}
}
