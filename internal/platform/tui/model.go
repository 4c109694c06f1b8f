package tui

import (
	"context"
	"errors"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/gridsnake/internal/core"
	"github.com/vovakirdan/gridsnake/internal/games/snake"
	"github.com/vovakirdan/gridsnake/internal/session"
)

const helpHeight = 1 // Help footer below the board

// GameModel shows one session's frames and forwards keys to it as commands.
// The session owns the game; the model only keeps the latest frame.
type GameModel struct {
	sess       *session.Session
	theme      snake.Theme
	screen     *core.Screen
	keys       GameKeyMap
	help       help.Model
	frame      session.Frame
	hasFrame   bool
	width      int
	height     int
	quitting   bool
	backToMenu bool
	closed     bool
}

// NewGameModel creates a model bound to a session that is, or soon will be, running.
func NewGameModel(sess *session.Session, theme snake.Theme, width, height int) GameModel {
	return GameModel{
		sess:   sess,
		theme:  theme,
		screen: core.NewScreen(width, max(height-helpHeight, 0)),
		keys:   DefaultGameKeyMap(),
		help:   help.New(),
		width:  width,
		height: height,
	}
}

// Init starts listening for frames.
func (m GameModel) Init() tea.Cmd {
	return waitForFrame(m.sess)
}

// Update handles messages.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.screen.Resize(msg.Width, max(msg.Height-helpHeight, 0))
		m.help.Width = msg.Width
		return m, nil
	case FrameMsg:
		if msg.ID != m.sess.ID() {
			return m, nil
		}
		m.frame = msg.Frame
		m.hasFrame = true
		return m, waitForFrame(m.sess)
	case sessionClosedMsg:
		if msg.id == m.sess.ID() {
			m.closed = true
		}
		return m, nil
	}
	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keys.Action(msg)
	over := m.frame.Snapshot.Terminal

	switch {
	case action == core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case action.IsMove():
		if dir, ok := directionFor(action); ok {
			m.sess.Send(session.Turn(dir))
		}
	case action == core.ActionPause:
		m.sess.Send(session.TogglePause())
	case action == core.ActionRestart && over:
		m.sess.Send(session.Restart())
	case action == core.ActionBack && (over || m.frame.Paused):
		m.backToMenu = true
	}
	return m, nil
}

// View renders the board and the help footer.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	m.screen.Clear()
	if m.hasFrame {
		m.frame.Snapshot.Render(m.screen, m.theme, m.frame.Paused)
	} else {
		m.screen.DrawTextCentered(m.screen.Height()/2, "Starting...")
	}
	if m.closed {
		m.screen.DrawTextCentered(m.screen.Height()-1, "Session closed, press q to quit")
	}

	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys)
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// Frame returns the most recent frame, if any has arrived.
func (m GameModel) Frame() (session.Frame, bool) {
	return m.frame, m.hasFrame
}

// Run plays a single session in the local terminal until the user quits.
// The session is started here and stopped when the program exits.
func Run(sess *session.Session, theme snake.Theme, width, height int) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	runErr := make(chan error, 1)
	go func() { runErr <- sess.Run(ctx) }()

	p := tea.NewProgram(NewGameModel(sess, theme, width, height), tea.WithAltScreen())
	_, err := p.Run()

	cancel()
	return errors.Join(err, <-runErr)
}
