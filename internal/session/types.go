// Package session runs one snake game as a single-consumer event loop.
//
// A scheduler (ticker) and an input channel are funnelled into one goroutine
// that owns the GameState, so Tick and SetDirection never overlap. Shells
// send Commands and render the Frames the loop publishes.
package session

import (
	"github.com/vovakirdan/gridsnake/internal/games/snake"
)

// ID uniquely identifies a session (e.g., one SSH connection).
type ID string

// CommandKind identifies a command sent to a session.
type CommandKind int

const (
	CmdTurn        CommandKind = iota // Change heading
	CmdTogglePause                    // Pause or resume ticking
	CmdRestart                        // Start a fresh game
)

func (k CommandKind) String() string {
	switch k {
	case CmdTurn:
		return "turn"
	case CmdTogglePause:
		return "toggle_pause"
	case CmdRestart:
		return "restart"
	default:
		return "unknown"
	}
}

// Command is an input event for the loop.
type Command struct {
	Kind CommandKind
	Dir  snake.Direction // Only used by CmdTurn
}

// Turn returns a heading-change command.
func Turn(d snake.Direction) Command {
	return Command{Kind: CmdTurn, Dir: d}
}

// TogglePause returns a pause toggle command.
func TogglePause() Command {
	return Command{Kind: CmdTogglePause}
}

// Restart returns a restart command.
func Restart() Command {
	return Command{Kind: CmdRestart}
}

// Frame is the state published after every event.
type Frame struct {
	Snapshot snake.Snapshot
	Paused   bool
	// Generation counts restarts; it starts at 1 for the first game.
	Generation int
}

// Factory creates a fresh game. Called once at start and on every restart.
type Factory func() (*snake.GameState, error)
