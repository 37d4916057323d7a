package config

import (
	_ "embed"
)

//go:embed defaults/flappy.yaml
var defaultYAML []byte

//go:embed defaults/dragon.txt
var defaultSpriteSheet []byte

// DefaultConfig returns the built-in configuration.
func DefaultConfig() Config {
	return Config{
		Window: WindowConfig{
			Title: "Flappy Dragon",
			Cols:  80,
			Rows:  50,
		},
		SpriteLayer: SpriteLayerConfig{
			Width:  640,
			Height: 400,
		},
		SpriteSheet: SpriteSheetConfig{
			Regions: []RegionConfig{
				{X: 0, Y: 0, W: 4, H: 4},
				{X: 4, Y: 0, W: 4, H: 4},
				{X: 8, Y: 0, W: 4, H: 4},
				{X: 12, Y: 0, W: 4, H: 4},
				{X: 16, Y: 0, W: 1, H: 1},
			},
		},
		Keys: KeysConfig{
			Flap: []string{" "},
			Play: []string{"p", "P"},
			Quit: []string{"q", "Q"},
		},
		TickRate: 60,
	}
}

// DefaultSpriteSheet returns the built-in dragon sprite sheet image.
func DefaultSpriteSheet() []byte {
	return defaultSpriteSheet
}
