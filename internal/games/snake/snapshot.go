package snake

// Snapshot is an immutable copy of the game state for renderers, replay
// checks and tests. It is safe to hand to another goroutine.
type Snapshot struct {
	Width    int
	Height   int
	Body     []Position // Head at index 0
	Heading  Direction
	Food     Position
	HasFood  bool
	Terminal bool
	Reason   EndReason
	Ticks    uint64
}

// Snapshot returns a copy of the current state.
func (g *GameState) Snapshot() Snapshot {
	return Snapshot{
		Width:    g.width,
		Height:   g.height,
		Body:     g.Body(),
		Heading:  g.heading,
		Food:     g.food,
		HasFood:  g.hasFood,
		Terminal: g.terminal,
		Reason:   g.reason,
		Ticks:    g.ticks,
	}
}

// Head returns the head cell, or false for an empty body.
func (s Snapshot) Head() (Position, bool) {
	if len(s.Body) == 0 {
		return Position{}, false
	}
	return s.Body[0], true
}

// Len returns the snake length.
func (s Snapshot) Len() int {
	return len(s.Body)
}

// Occupies reports whether p is a body cell.
func (s Snapshot) Occupies(p Position) bool {
	for _, seg := range s.Body {
		if seg == p {
			return true
		}
	}
	return false
}
