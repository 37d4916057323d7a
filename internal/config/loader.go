package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/flappy-dragon/internal/render"
)

// Load loads and validates the configuration.
// Search order: customPath -> ~/.flappy-dragon/config.yaml -> ./configs/flappy.yaml -> embedded default.
// Files are decoded over the defaults, so they only need the keys they change.
func Load(customPath string) (Config, error) {
	cfg, err := load(customPath)
	if err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func load(customPath string) (Config, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return DefaultConfig(), fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return cfg, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := Parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "flappy.yaml")); err == nil {
		if cfg, err := Parse(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := Parse(defaultYAML)
	if err != nil {
		return DefaultConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Parse decodes YAML over the built-in defaults. Lists given in data replace
// the default lists.
func Parse(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return DefaultConfig(), err
	}
	return cfg, nil
}

// LoadSpriteSheet loads the configured sprite sheet, or the embedded dragon
// sheet when no path is set.
func LoadSpriteSheet(cfg Config) (*render.SpriteSheet, error) {
	if cfg.SpriteSheet.Path == "" {
		sheet, err := render.ParseSpriteSheet(DefaultSpriteSheet(), cfg.Regions())
		if err != nil {
			return nil, fmt.Errorf("config: built-in sprite sheet: %w", err)
		}
		return sheet, nil
	}
	sheet, err := render.LoadSpriteSheet(expandHome(cfg.SpriteSheet.Path), cfg.Regions())
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return sheet, nil
}

// userConfigPath returns ~/.flappy-dragon/config.yaml, or "" without a home directory.
func userConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".flappy-dragon", "config.yaml")
}

func expandHome(path string) string {
	if len(path) < 2 || path[:2] != "~/" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[2:])
}
