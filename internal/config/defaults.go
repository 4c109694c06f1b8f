package config

import (
	_ "embed"
	"time"

	"github.com/vovakirdan/gridsnake/internal/session"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// DefaultConfig returns the built-in configuration.
// It matches defaults/snake.yaml and is used when the embedded file cannot be parsed.
func DefaultConfig() Config {
	return Config{
		Board: BoardConfig{
			Preset: "classic",
		},
		Timing: TimingConfig{
			TickMillis: int(session.DefaultTickInterval / time.Millisecond),
		},
		Food: FoodConfig{
			Strategy:    "auto",
			MaxAttempts: 32,
		},
		Display: DisplayConfig{
			Head:        "O",
			Body:        "o",
			Food:        "*",
			Empty:       " ",
			HeadColor:   "bright_green",
			BodyColor:   "green",
			FoodColor:   "bright_red",
			BorderColor: "gray",
		},
		Server: ServerConfig{
			Address:            ":23234",
			IdleTimeoutMinutes: 30,
		},
		Log: LogConfig{
			Level:      "info",
			Timestamps: true,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultSnakeYAML
}
