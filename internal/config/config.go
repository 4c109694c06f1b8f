// Package config provides YAML-based configuration loading for the snake
// platform: board, timing, food placement, display, SSH server and logging.
package config

import (
	"errors"
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/vovakirdan/gridsnake/internal/core"
	"github.com/vovakirdan/gridsnake/internal/games/snake"
)

// Config is the full application configuration.
type Config struct {
	Board   BoardConfig   `yaml:"board"`
	Timing  TimingConfig  `yaml:"timing"`
	Food    FoodConfig    `yaml:"food"`
	Display DisplayConfig `yaml:"display"`
	Server  ServerConfig  `yaml:"server"`
	Log     LogConfig     `yaml:"log"`
}

// BoardConfig selects the board size.
type BoardConfig struct {
	Preset string `yaml:"preset"`
	Width  int    `yaml:"width"`  // Overrides the preset when > 0
	Height int    `yaml:"height"` // Overrides the preset when > 0
}

// TimingConfig controls the tick cadence.
type TimingConfig struct {
	TickMillis int `yaml:"tick_ms"`
}

// FoodConfig controls food placement.
type FoodConfig struct {
	Strategy    string `yaml:"strategy"`
	MaxAttempts int    `yaml:"max_attempts"`
}

// DisplayConfig defines glyphs and colors for the board.
type DisplayConfig struct {
	Head        string `yaml:"head"`
	Body        string `yaml:"body"`
	Food        string `yaml:"food"`
	Empty       string `yaml:"empty"`
	HeadColor   string `yaml:"head_color"`
	BodyColor   string `yaml:"body_color"`
	FoodColor   string `yaml:"food_color"`
	BorderColor string `yaml:"border_color"`
}

// ServerConfig configures the SSH server.
type ServerConfig struct {
	Address            string `yaml:"address"`
	HostKeyPath        string `yaml:"host_key"`
	IdleTimeoutMinutes int    `yaml:"idle_timeout_minutes"`
}

// LogConfig configures the logger.
type LogConfig struct {
	Level      string `yaml:"level"`
	Timestamps bool   `yaml:"timestamps"`
}

// TickInterval returns the configured tick interval.
func (t TimingConfig) TickInterval() time.Duration {
	return time.Duration(t.TickMillis) * time.Millisecond
}

// IdleTimeout returns the configured idle timeout.
func (s ServerConfig) IdleTimeout() time.Duration {
	return time.Duration(s.IdleTimeoutMinutes) * time.Minute
}

// Placement converts the food section to a snake.Placement.
func (f FoodConfig) Placement() (snake.Placement, error) {
	strategy, err := snake.ParseStrategy(f.Strategy)
	if err != nil {
		return snake.Placement{}, err
	}
	return snake.Placement{Strategy: strategy, MaxAttempts: f.MaxAttempts}, nil
}

// Theme converts the display section to a snake.Theme.
// Empty fields keep the default glyph or color.
func (d DisplayConfig) Theme() (snake.Theme, error) {
	th := snake.DefaultTheme()

	glyphs := []struct {
		name string
		val  string
		dst  *rune
	}{
		{"head", d.Head, &th.Head},
		{"body", d.Body, &th.Body},
		{"food", d.Food, &th.Food},
		{"empty", d.Empty, &th.Empty},
	}
	for _, g := range glyphs {
		if g.val == "" {
			continue
		}
		if utf8.RuneCountInString(g.val) != 1 {
			return th, fmt.Errorf("config: display.%s must be a single character, got %q", g.name, g.val)
		}
		r, _ := utf8.DecodeRuneInString(g.val)
		*g.dst = r
	}

	colors := []struct {
		name string
		val  string
		dst  *core.Color
	}{
		{"head_color", d.HeadColor, &th.HeadColor},
		{"body_color", d.BodyColor, &th.BodyColor},
		{"food_color", d.FoodColor, &th.FoodColor},
		{"border_color", d.BorderColor, &th.BorderColor},
	}
	for _, c := range colors {
		if c.val == "" {
			continue
		}
		color, err := core.ParseColor(c.val)
		if err != nil {
			return th, fmt.Errorf("config: display.%s: %w", c.name, err)
		}
		*c.dst = color
	}

	return th, nil
}

// Validate checks the configuration for values no game can run with.
func (c Config) Validate() error {
	var errs []error

	if c.Board.Width < 0 || c.Board.Height < 0 {
		errs = append(errs, fmt.Errorf("config: board size %dx%d must not be negative", c.Board.Width, c.Board.Height))
	}
	if c.Timing.TickMillis <= 0 {
		errs = append(errs, fmt.Errorf("config: timing.tick_ms must be positive, got %d", c.Timing.TickMillis))
	}
	if _, err := c.Food.Placement(); err != nil {
		errs = append(errs, err)
	}
	if _, err := c.Display.Theme(); err != nil {
		errs = append(errs, err)
	}
	if _, err := c.Log.ParseLevel(); err != nil {
		errs = append(errs, err)
	}
	if c.Server.IdleTimeoutMinutes < 0 {
		errs = append(errs, fmt.Errorf("config: server.idle_timeout_minutes must not be negative"))
	}

	return errors.Join(errs...)
}
