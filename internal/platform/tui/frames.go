// Package tui provides the Bubble Tea integration for gridsnake.
// It handles the terminal UI loop, key bindings and the SSH front end.
package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/gridsnake/internal/session"
)

// FrameMsg carries the latest frame published by a session.
type FrameMsg struct {
	ID    session.ID
	Frame session.Frame
}

// sessionClosedMsg is sent once a session stops publishing frames.
type sessionClosedMsg struct {
	id session.ID
}

// waitForFrame blocks on the session's frame channel and delivers the
// next frame as a message. The model re-issues it after every frame.
func waitForFrame(sess *session.Session) tea.Cmd {
	return func() tea.Msg {
		f, ok := <-sess.Frames()
		if !ok {
			return sessionClosedMsg{id: sess.ID()}
		}
		return FrameMsg{ID: sess.ID(), Frame: f}
	}
}

// sessionDoneMsg reports that a session's Run loop returned.
type sessionDoneMsg struct {
	id  session.ID
	err error
}

// runSession drives sess until ctx is cancelled. Bubble Tea runs commands
// on their own goroutines, so this blocks only that goroutine.
func runSession(ctx context.Context, sess *session.Session) tea.Cmd {
	return func() tea.Msg {
		return sessionDoneMsg{id: sess.ID(), err: sess.Run(ctx)}
	}
}
