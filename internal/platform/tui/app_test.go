package tui

import (
	"context"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/gridsnake/internal/games/snake"
	"github.com/vovakirdan/gridsnake/internal/registry"
	"github.com/vovakirdan/gridsnake/internal/session"
)

func TestMenuModelSelect(t *testing.T) {
	m := NewMenuModel(80, 24)
	presets := registry.List()
	if len(presets) < 2 {
		t.Fatalf("expected at least 2 presets, got %d", len(presets))
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m = next.(MenuModel)
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(MenuModel)

	sel := m.Selected()
	if sel == nil {
		t.Fatal("Selected() = nil after enter")
	}
	if sel.ID != presets[1].ID {
		t.Errorf("Selected() = %q, expected %q", sel.ID, presets[1].ID)
	}
}

func TestMenuModelCursorBounds(t *testing.T) {
	m := NewMenuModel(80, 24)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyUp})
	m = next.(MenuModel)
	if m.cursor != 0 {
		t.Errorf("cursor = %d after up at top, expected 0", m.cursor)
	}

	for i, n := 0, len(m.items)+3; i < n; i++ {
		next, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
		m = next.(MenuModel)
	}
	if m.cursor != len(m.items)-1 {
		t.Errorf("cursor = %d, expected %d", m.cursor, len(m.items)-1)
	}
}

func TestMenuModelView(t *testing.T) {
	m := NewMenuModel(80, 24)
	view := m.View()

	for _, p := range registry.List() {
		if !strings.Contains(view, p.Title) {
			t.Errorf("View() is missing preset %q", p.Title)
		}
	}
}

func newTestApp() AppModel {
	opts := AppOptions{
		Setup: session.Setup{
			TickInterval: time.Hour,
			Placement:    snake.DefaultPlacement(),
			Seed:         1,
		},
		Theme:  snake.DefaultTheme(),
		Logger: quietLogger(),
		Name:   "test",
	}
	return NewAppModel(context.Background(), opts, 80, 24)
}

func appUpdate(t *testing.T, m AppModel, msg tea.Msg) (AppModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	am, ok := next.(AppModel)
	if !ok {
		t.Fatalf("Update returned %T, expected AppModel", next)
	}
	return am, cmd
}

func TestAppModelMenuToGameAndBack(t *testing.T) {
	m := newTestApp()
	if m.InGame() {
		t.Fatal("app should start in the menu")
	}

	m, cmd := appUpdate(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if !m.InGame() {
		t.Fatal("enter should start a game")
	}
	if cmd == nil {
		t.Error("starting a game should return commands")
	}

	// Back is only honored once the game is paused or over.
	m, _ = appUpdate(t, m, runeKey('b'))
	if !m.InGame() {
		t.Fatal("back while playing should be ignored")
	}

	m, _ = appUpdate(t, m, FrameMsg{ID: "test-1", Frame: session.Frame{Paused: true}})
	m, _ = appUpdate(t, m, runeKey('b'))
	if m.InGame() {
		t.Fatal("back while paused should return to the menu")
	}
	if m.stopGame != nil {
		t.Error("leaving a game should cancel its session")
	}

	m, _ = appUpdate(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if !m.InGame() {
		t.Fatal("second game should start")
	}
	if m.game.sess.ID() != "test-2" {
		t.Errorf("second session ID = %q, expected test-2", m.game.sess.ID())
	}
}

func TestAppModelQuitFromGame(t *testing.T) {
	m := newTestApp()
	m, _ = appUpdate(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	m, cmd := appUpdate(t, m, runeKey('q'))
	if m.InGame() {
		t.Error("quit should leave the game")
	}
	if cmd == nil {
		t.Fatal("quit should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("quit command should produce tea.QuitMsg")
	}
	if m.View() != "" {
		t.Error("View() should be empty after quitting")
	}
}

func TestAppModelTracksWindowSize(t *testing.T) {
	m := newTestApp()
	m, _ = appUpdate(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})
	m, _ = appUpdate(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	if m.game.width != 100 || m.game.height != 40 {
		t.Errorf("game size = %dx%d, expected 100x40", m.game.width, m.game.height)
	}
}
