// Package snake implements the grid snake rules: a fixed board, a snake that
// moves one cell per tick, and food that spawns on free cells.
//
// GameState is not safe for concurrent use. Shells serialize Tick and
// SetDirection calls (see internal/session).
package snake

import (
	"errors"
	"fmt"
	"math/rand"
	"time"
)

// ErrInvalidBoard is returned by New for non-positive dimensions.
var ErrInvalidBoard = errors.New("snake: board dimensions must be positive")

// GameState holds the board, the snake and the food.
type GameState struct {
	width  int
	height int

	body     []Position // Head at index 0
	occupied []bool     // Indexed by y*width+x, true for body cells
	heading  Direction

	food    Position
	hasFood bool

	terminal bool
	reason   EndReason
	ticks    uint64

	rng       *rand.Rand
	placement Placement
}

// Option configures a GameState at construction.
type Option func(*GameState)

// WithSeed makes food placement deterministic.
func WithSeed(seed int64) Option {
	return func(g *GameState) {
		g.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand uses r for food placement.
func WithRand(r *rand.Rand) Option {
	return func(g *GameState) {
		g.rng = r
	}
}

// WithPlacement sets the food placement strategy.
func WithPlacement(p Placement) Option {
	return func(g *GameState) {
		g.placement = p
	}
}

// New creates a game on a width×height board with a one-cell snake at the
// center heading left and food on a random free cell.
func New(width, height int, opts ...Option) (*GameState, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrInvalidBoard, width, height)
	}

	g := &GameState{
		width:     width,
		height:    height,
		occupied:  make([]bool, width*height),
		heading:   DirLeft,
		placement: DefaultPlacement(),
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.rng == nil {
		g.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	g.pushHead(Position{X: width / 2, Y: height / 2})
	// A 1x1 board has no free cell; the game starts without food.
	g.placeFood()

	return g, nil
}

// SetDirection changes the heading for the next tick.
// Reversing straight into the neck is ignored.
func (g *GameState) SetDirection(d Direction) {
	if d < DirUp || d > DirRight {
		return
	}
	if d == g.heading.Opposite() {
		return
	}
	g.heading = d
}

// Tick advances the game one step. It does nothing once the game is over.
func (g *GameState) Tick() {
	if g.terminal || len(g.body) == 0 {
		return
	}
	g.ticks++

	dx, dy := g.heading.Delta()
	next := g.body[0].Add(dx, dy)

	if !g.InBounds(next) {
		g.end(EndWall)
		return
	}
	if g.hitsBody(next) {
		g.end(EndSelf)
		return
	}

	g.pushHead(next)

	if g.hasFood && next == g.food {
		// Tail stays: the snake grows by one.
		if !g.placeFood() {
			g.end(EndBoardFull)
		}
		return
	}

	g.popTail()
}

// hitsBody reports whether moving the head to p runs into the body.
// The tail cell is excluded once the snake is longer than two: it moves out
// of the way on the same tick. At length two the tail is the neck, and
// stepping onto it means reversing through the body.
// Food is never on the body, so a move onto the tail never grows the snake.
func (g *GameState) hitsBody(p Position) bool {
	if !g.occupied[g.index(p)] {
		return false
	}
	return len(g.body) <= 2 || p != g.body[len(g.body)-1]
}

func (g *GameState) end(reason EndReason) {
	g.terminal = true
	g.reason = reason
}

func (g *GameState) pushHead(p Position) {
	g.body = append(g.body, Position{})
	copy(g.body[1:], g.body)
	g.body[0] = p
	g.occupied[g.index(p)] = true
}

func (g *GameState) popTail() {
	last := len(g.body) - 1
	tail := g.body[last]
	g.body = g.body[:last]
	// Tail and new head can share a cell when chasing the tail.
	if tail != g.body[0] {
		g.occupied[g.index(tail)] = false
	}
}

func (g *GameState) index(p Position) int {
	return p.Y*g.width + p.X
}

// InBounds reports whether p lies on the board.
func (g *GameState) InBounds(p Position) bool {
	return p.X >= 0 && p.X < g.width && p.Y >= 0 && p.Y < g.height
}

// Occupied reports whether p is a body cell.
func (g *GameState) Occupied(p Position) bool {
	return g.InBounds(p) && g.occupied[g.index(p)]
}

// Width returns the board width.
func (g *GameState) Width() int { return g.width }

// Height returns the board height.
func (g *GameState) Height() int { return g.height }

// Body returns a copy of the snake cells, head first.
func (g *GameState) Body() []Position {
	out := make([]Position, len(g.body))
	copy(out, g.body)
	return out
}

// Head returns the head cell.
func (g *GameState) Head() Position {
	return g.body[0]
}

// Len returns the snake length.
func (g *GameState) Len() int { return len(g.body) }

// Heading returns the direction applied on the next tick.
func (g *GameState) Heading() Direction { return g.heading }

// Food returns the food cell, or (-1, -1) when the board has no food.
func (g *GameState) Food() Position { return g.food }

// HasFood is false only when the snake fills the board.
func (g *GameState) HasFood() bool { return g.hasFood }

// Terminal reports whether the game is over.
func (g *GameState) Terminal() bool { return g.terminal }

// EndReason returns why the game ended, or EndNone while active.
func (g *GameState) EndReason() EndReason { return g.reason }

// Ticks returns the number of ticks that moved or ended the game.
func (g *GameState) Ticks() uint64 { return g.ticks }
