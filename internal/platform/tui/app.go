package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/gridsnake/internal/games/snake"
	"github.com/vovakirdan/gridsnake/internal/registry"
	"github.com/vovakirdan/gridsnake/internal/session"
)

// AppOptions configures an AppModel.
type AppOptions struct {
	// Setup is the template for every game. Width and Height are replaced
	// by the picked preset.
	Setup  session.Setup
	Theme  snake.Theme
	Logger *log.Logger
	// Name prefixes session IDs, e.g. the SSH user.
	Name string
}

// AppModel manages the full flow: menu -> game -> menu.
// It is the top-level model for the menu command and for SSH sessions.
type AppModel struct {
	ctx      context.Context
	opts     AppOptions
	width    int
	height   int
	menu     MenuModel
	game     *GameModel
	stopGame context.CancelFunc
	games    int
	quitting bool
}

// NewAppModel creates the app model. Games run until ctx is cancelled or
// the player leaves them.
func NewAppModel(ctx context.Context, opts AppOptions, width, height int) AppModel {
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	if opts.Name == "" {
		opts.Name = "local"
	}

	return AppModel{
		ctx:    ctx,
		opts:   opts,
		width:  width,
		height: height,
		menu:   NewMenuModel(width, height),
	}
}

// Init initializes the app.
func (m AppModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update handles messages for the app.
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
	case sessionDoneMsg:
		if msg.err != nil {
			m.opts.Logger.Error("session failed", "session", msg.id, "error", msg.err)
		}
		return m, nil
	}

	if m.game != nil {
		return m.updateGame(msg)
	}
	return m.updateMenu(msg)
}

// updateMenu handles updates when in menu mode.
func (m AppModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	newMenu, cmd := m.menu.Update(msg)
	if menuModel, ok := newMenu.(MenuModel); ok {
		m.menu = menuModel
	}

	if m.menu.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if selected := m.menu.Selected(); selected != nil {
		return m.startGame(*selected)
	}

	return m, cmd
}

// startGame creates a session for the preset and switches to the game view.
func (m AppModel) startGame(p registry.Preset) (tea.Model, tea.Cmd) {
	setup := m.opts.Setup
	setup.Width, setup.Height = p.Width, p.Height

	m.games++
	id := session.ID(fmt.Sprintf("%s-%d", m.opts.Name, m.games))
	sess, err := setup.Start(id, m.opts.Logger)
	if err != nil {
		m.opts.Logger.Error("cannot start game", "preset", p.ID, "error", err)
		m.menu = NewMenuModel(m.width, m.height)
		return m, nil
	}
	m.opts.Logger.Debug("game started", "session", id, "preset", p.ID)

	ctx, cancel := context.WithCancel(m.ctx)
	game := NewGameModel(sess, m.opts.Theme, m.width, m.height)
	m.game = &game
	m.stopGame = cancel

	return m, tea.Batch(runSession(ctx, sess), game.Init())
}

// updateGame handles updates when in game mode.
func (m AppModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.game.Update(msg)
	if gameModel, ok := newModel.(GameModel); ok {
		m.game = &gameModel
	}

	if m.game.BackToMenu() {
		m.endGame()
		m.menu = NewMenuModel(m.width, m.height)
		return m, m.menu.Init()
	}

	if m.game.IsQuitting() {
		m.endGame()
		m.quitting = true
		return m, tea.Quit
	}

	return m, cmd
}

func (m *AppModel) endGame() {
	if m.stopGame != nil {
		m.stopGame()
		m.stopGame = nil
	}
	m.game = nil
}

// View renders the current view.
func (m AppModel) View() string {
	if m.quitting {
		return ""
	}
	if m.game != nil {
		return m.game.View()
	}
	return m.menu.View()
}

// InGame reports whether a game is on screen.
func (m AppModel) InGame() bool {
	return m.game != nil
}

// RunApp runs the menu flow in the local terminal.
func RunApp(opts AppOptions, width, height int) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	p := tea.NewProgram(NewAppModel(ctx, opts, width, height), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
