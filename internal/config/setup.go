package config

import (
	"github.com/vovakirdan/gridsnake/internal/registry"
	"github.com/vovakirdan/gridsnake/internal/session"
)

// SessionSetup builds the session setup for a board. A zero seed keeps
// games seeded from the clock.
func (c Config) SessionSetup(board registry.Preset, seed int64) (session.Setup, error) {
	placement, err := c.Food.Placement()
	if err != nil {
		return session.Setup{}, err
	}
	return session.Setup{
		Width:        board.Width,
		Height:       board.Height,
		TickInterval: c.Timing.TickInterval(),
		Placement:    placement,
		Seed:         seed,
	}, nil
}
