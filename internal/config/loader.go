package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/gridsnake/internal/registry"
)

const fileName = "snake.yaml"

// Load loads the configuration.
// Search order: customPath -> ~/.gridsnake/configs/snake.yaml -> ./configs/snake.yaml -> embedded default.
// Files are layered over the defaults, so a partial file only overrides what it sets.
func Load(customPath string) (Config, error) {
	base := embeddedDefault()

	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return base, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := parse(data, base)
		if err != nil {
			return base, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, cfg.Validate()
	}

	// Unreadable or broken files in the search path are skipped.
	for _, path := range []string{userConfigPath(fileName), filepath.Join("configs", fileName)} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if cfg, err := parse(data, base); err == nil {
			return cfg, cfg.Validate()
		}
	}

	return base, nil
}

// parse unmarshals data on top of base.
func parse(data []byte, base Config) (Config, error) {
	cfg := base
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return base, err
	}
	return cfg, nil
}

func embeddedDefault() Config {
	cfg, err := parse(defaultSnakeYAML, DefaultConfig())
	if err != nil {
		return DefaultConfig() // Fallback to hardcoded if embed fails
	}
	return cfg
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".gridsnake", "configs", filename)
}

// ResolveBoard returns the board dimensions: the named preset (or the config's
// preset when name is empty) with any positive width/height overrides applied.
func (c Config) ResolveBoard(name string) (registry.Preset, error) {
	if name == "" {
		name = c.Board.Preset
	}
	p, err := registry.Lookup(name)
	if err != nil {
		return registry.Preset{}, err
	}
	if c.Board.Width > 0 {
		p.Width = c.Board.Width
	}
	if c.Board.Height > 0 {
		p.Height = c.Board.Height
	}
	if c.Board.Width > 0 || c.Board.Height > 0 {
		p.Title = fmt.Sprintf("%s, resized to %dx%d", p.Title, p.Width, p.Height)
	}
	return p, nil
}
