package snake

import (
	"fmt"
	"strings"
)

// Strategy selects how a free cell is picked for food.
type Strategy string

const (
	// StrategyAuto samples randomly while the board is less than half full
	// and enumerates free cells otherwise.
	StrategyAuto Strategy = "auto"
	// StrategyEnumerate always walks the free cells and picks one.
	StrategyEnumerate Strategy = "enumerate"
	// StrategyRejection samples random cells until a free one turns up,
	// falling back to enumeration after MaxAttempts misses.
	StrategyRejection Strategy = "rejection"
)

// Placement configures food placement.
// Every strategy picks uniformly among free cells.
type Placement struct {
	Strategy    Strategy
	MaxAttempts int
}

// DefaultPlacement returns the auto strategy with 32 sampling attempts.
func DefaultPlacement() Placement {
	return Placement{Strategy: StrategyAuto, MaxAttempts: 32}
}

// ParseStrategy parses a strategy name. Empty means auto.
func ParseStrategy(s string) (Strategy, error) {
	switch Strategy(strings.ToLower(strings.TrimSpace(s))) {
	case "", StrategyAuto:
		return StrategyAuto, nil
	case StrategyEnumerate:
		return StrategyEnumerate, nil
	case StrategyRejection:
		return StrategyRejection, nil
	}
	return StrategyAuto, fmt.Errorf("snake: unknown food strategy %q", s)
}

// noFood marks the food cell of a board without food.
var noFood = Position{X: -1, Y: -1}

// placeFood moves the food to a random free cell.
// Returns false, leaving the board without food, when no cell is free.
func (g *GameState) placeFood() bool {
	total := len(g.occupied)
	free := total - len(g.body)
	if free <= 0 {
		g.food = noFood
		g.hasFood = false
		return false
	}

	if g.shouldSample(free, total) {
		if p, ok := g.sampleFree(); ok {
			g.food = p
			g.hasFood = true
			return true
		}
	}

	g.food = g.nthFree(g.rng.Intn(free))
	g.hasFood = true
	return true
}

func (g *GameState) shouldSample(free, total int) bool {
	switch g.placement.Strategy {
	case StrategyRejection:
		return true
	case StrategyEnumerate:
		return false
	default:
		return free*2 > total
	}
}

// sampleFree draws random cells until one is free.
// Each accepted draw is uniform over the free cells.
func (g *GameState) sampleFree() (Position, bool) {
	attempts := g.placement.MaxAttempts
	if attempts <= 0 {
		attempts = DefaultPlacement().MaxAttempts
	}
	for n := 0; n < attempts; n++ {
		idx := g.rng.Intn(len(g.occupied))
		if !g.occupied[idx] {
			return g.position(idx), true
		}
	}
	return Position{}, false
}

// nthFree returns the n-th free cell in row-major order.
func (g *GameState) nthFree(n int) Position {
	for idx, taken := range g.occupied {
		if taken {
			continue
		}
		if n == 0 {
			return g.position(idx)
		}
		n--
	}
	// Unreachable while n < free cell count.
	return Position{X: -1, Y: -1}
}

func (g *GameState) position(idx int) Position {
	return Position{X: idx % g.width, Y: idx / g.width}
}
