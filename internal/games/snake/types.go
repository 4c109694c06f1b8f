package snake

import (
	"fmt"
	"strings"
)

// Position is a board cell. X grows to the right, Y grows downward.
type Position struct {
	X, Y int
}

// Add returns the position shifted by (dx, dy).
func (p Position) Add(dx, dy int) Position {
	return Position{X: p.X + dx, Y: p.Y + dy}
}

// Direction represents the snake's heading.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// Opposite returns the reverse heading.
func (d Direction) Opposite() Direction {
	switch d {
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	default:
		return DirLeft
	}
}

// Delta returns the one-cell movement vector for the heading.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case DirUp:
		return 0, -1
	case DirDown:
		return 0, 1
	case DirLeft:
		return -1, 0
	case DirRight:
		return 1, 0
	default:
		return 0, 0
	}
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// ParseDirection parses "up", "down", "left" or "right" (case-insensitive).
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "up", "u":
		return DirUp, nil
	case "down", "d":
		return DirDown, nil
	case "left", "l":
		return DirLeft, nil
	case "right", "r":
		return DirRight, nil
	}
	return DirUp, fmt.Errorf("snake: unknown direction %q", s)
}

// EndReason records why a game reached the terminal state.
type EndReason int

const (
	EndNone      EndReason = iota // Game still active
	EndWall                       // Head left the board
	EndSelf                       // Head ran into the body
	EndBoardFull                  // No free cell left for food
)

func (r EndReason) String() string {
	switch r {
	case EndNone:
		return "none"
	case EndWall:
		return "wall"
	case EndSelf:
		return "self"
	case EndBoardFull:
		return "board_full"
	default:
		return "unknown"
	}
}
