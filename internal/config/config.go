// Package config provides YAML-based configuration loading for the game:
// window and sprite layer geometry, the sprite sheet, key bindings and the
// frontend tick rate.
package config

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/vovakirdan/flappy-dragon/internal/core"
	"github.com/vovakirdan/flappy-dragon/internal/games/flappy"
)

// SpriteCount is the number of sprites the game draws: the player animation
// frames followed by the obstacle tile.
const SpriteCount = flappy.PlayerFrames + 1

// MinRows is the smallest grid height that leaves room for the gap clamp band.
const MinRows = 2 * flappy.GapMargin

// Config contains all bootstrap configuration.
type Config struct {
	Window      WindowConfig      `yaml:"window"`
	SpriteLayer SpriteLayerConfig `yaml:"sprite_layer"`
	SpriteSheet SpriteSheetConfig `yaml:"sprite_sheet"`
	Keys        KeysConfig        `yaml:"keys"`
	TickRate    int               `yaml:"tick_rate"` // render ticks per second
}

// WindowConfig defines the title and the character grid.
type WindowConfig struct {
	Title string `yaml:"title"`
	Cols  int    `yaml:"cols"`
	Rows  int    `yaml:"rows"`
}

// SpriteLayerConfig defines the pixel resolution of the sprite layer.
type SpriteLayerConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// SpriteSheetConfig points at the sprite sheet image and cuts it into sprites.
type SpriteSheetConfig struct {
	Path    string         `yaml:"path"` // empty = embedded dragon sheet
	Regions []RegionConfig `yaml:"regions"`
}

// RegionConfig is one sprite rectangle inside the sheet image.
type RegionConfig struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
	W int `yaml:"w"`
	H int `yaml:"h"`
}

// Rect converts the region to a core rectangle.
func (r RegionConfig) Rect() core.Rect {
	return core.NewRect(r.X, r.Y, r.W, r.H)
}

// KeysConfig maps game actions to key names as frontends report them.
type KeysConfig struct {
	Flap []string `yaml:"flap"`
	Play []string `yaml:"play"`
	Quit []string `yaml:"quit"`
}

// Validate checks that the configuration can drive the game.
func (c Config) Validate() error {
	var errs []error

	if c.Window.Cols <= flappy.StartX {
		errs = append(errs, fmt.Errorf("window.cols must be greater than %d, got %d", flappy.StartX, c.Window.Cols))
	}
	if c.Window.Rows < MinRows {
		errs = append(errs, fmt.Errorf("window.rows must be at least %d, got %d", MinRows, c.Window.Rows))
	}
	if c.SpriteLayer.Width != c.Window.Cols*flappy.SpriteCell || c.SpriteLayer.Height != c.Window.Rows*flappy.SpriteCell {
		errs = append(errs, fmt.Errorf("sprite_layer must be %dx%d pixels (%d per cell), got %dx%d",
			c.Window.Cols*flappy.SpriteCell, c.Window.Rows*flappy.SpriteCell, flappy.SpriteCell,
			c.SpriteLayer.Width, c.SpriteLayer.Height))
	}
	if len(c.SpriteSheet.Regions) != SpriteCount {
		errs = append(errs, fmt.Errorf("sprite_sheet.regions must list %d sprites, got %d",
			SpriteCount, len(c.SpriteSheet.Regions)))
	}
	if c.TickRate <= 0 {
		errs = append(errs, fmt.Errorf("tick_rate must be positive, got %d", c.TickRate))
	}

	seen := make(map[string]string)
	for _, binding := range []struct {
		name string
		keys []string
	}{
		{"flap", c.Keys.Flap},
		{"play", c.Keys.Play},
		{"quit", c.Keys.Quit},
	} {
		if len(binding.keys) == 0 {
			errs = append(errs, fmt.Errorf("keys.%s must not be empty", binding.name))
		}
		for _, k := range binding.keys {
			if prev, ok := seen[k]; ok {
				errs = append(errs, fmt.Errorf("key %q is bound to both %s and %s", k, prev, binding.name))
				continue
			}
			seen[k] = binding.name
		}
	}

	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("config: invalid configuration: %w", err)
	}
	return nil
}

// Runtime returns the simulation view of the configuration.
func (c Config) Runtime(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{
		Cols:     c.Window.Cols,
		Rows:     c.Window.Rows,
		SpriteW:  c.SpriteLayer.Width,
		SpriteH:  c.SpriteLayer.Height,
		TickRate: c.TickRate,
		Seed:     seed,
	}
}

// Regions returns the sprite rectangles in sheet order.
func (c Config) Regions() []core.Rect {
	rects := make([]core.Rect, len(c.SpriteSheet.Regions))
	for i, r := range c.SpriteSheet.Regions {
		rects[i] = r.Rect()
	}
	return rects
}

// HUD returns the texts the game prints, labelled with the first key of
// each binding.
func (c Config) HUD() flappy.HUD {
	return flappy.HUD{
		Title:   c.Window.Title,
		FlapKey: KeyLabel(c.Keys.Flap),
		PlayKey: KeyLabel(c.Keys.Play),
		QuitKey: KeyLabel(c.Keys.Quit),
	}
}

// ActionFor returns the action bound to key, or ActionNone.
func (c Config) ActionFor(key string) core.Action {
	switch {
	case slices.Contains(c.Keys.Flap, key):
		return core.ActionFlap
	case slices.Contains(c.Keys.Play, key):
		return core.ActionPlay
	case slices.Contains(c.Keys.Quit, key):
		return core.ActionQuit
	default:
		return core.ActionNone
	}
}

// KeyLabel returns the display name of the first key in keys.
func KeyLabel(keys []string) string {
	if len(keys) == 0 {
		return ""
	}
	switch k := keys[0]; k {
	case " ", "space":
		return "SPACE"
	default:
		return strings.ToUpper(k)
	}
}
