package session

import (
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/gridsnake/internal/games/snake"
)

// DefaultTickInterval is the classic cadence: one board step every 350ms.
const DefaultTickInterval = 350 * time.Millisecond

// Setup describes how to build games for a session.
type Setup struct {
	Width        int
	Height       int
	TickInterval time.Duration // DefaultTickInterval when zero
	Placement    snake.Placement
	// Seed makes the first game and every restart reproducible.
	// 0 means seed from the clock.
	Seed int64
}

// Factory returns a game factory for this setup. With a fixed seed each
// call draws the next game seed from a generator seeded once, so restarts
// differ from each other but replay identically across runs.
func (s Setup) Factory() Factory {
	var seeds *rand.Rand
	if s.Seed != 0 {
		seeds = rand.New(rand.NewSource(s.Seed))
	}

	first := true
	return func() (*snake.GameState, error) {
		var seed int64
		switch {
		case seeds == nil:
			seed = time.Now().UnixNano()
		case first:
			seed = s.Seed
		default:
			seed = seeds.Int63()
		}
		first = false

		return snake.New(s.Width, s.Height,
			snake.WithSeed(seed),
			snake.WithPlacement(s.Placement),
		)
	}
}

// Start creates a session for this setup.
func (s Setup) Start(id ID, logger *log.Logger) (*Session, error) {
	interval := s.TickInterval
	if interval == 0 {
		interval = DefaultTickInterval
	}
	return New(id, s.Factory(), Config{TickInterval: interval}, logger)
}
