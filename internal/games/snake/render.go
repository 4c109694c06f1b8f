package snake

import (
	"fmt"

	"github.com/vovakirdan/gridsnake/internal/core"
)

const hudHeight = 2 // Title line and separator

// Theme holds the glyphs and colors used to draw the board.
type Theme struct {
	Head  rune
	Body  rune
	Food  rune
	Empty rune

	HeadColor   core.Color
	BodyColor   core.Color
	FoodColor   core.Color
	BorderColor core.Color
}

// DefaultTheme returns the built-in glyph set.
func DefaultTheme() Theme {
	return Theme{
		Head:        'O',
		Body:        'o',
		Food:        '*',
		Empty:       ' ',
		HeadColor:   core.ColorBrightGreen,
		BodyColor:   core.ColorGreen,
		FoodColor:   core.ColorBrightRed,
		BorderColor: core.ColorGray,
	}
}

// Render draws the board into dst: HUD, boxed grid and any overlay.
func (s Snapshot) Render(dst *core.Screen, th Theme, paused bool) {
	dst.Clear()

	s.renderHUD(dst)

	area := core.NewRect(0, hudHeight, dst.Width(), dst.Height()-hudHeight)
	if !area.Fits(s.Width+2, s.Height+2) {
		renderOverlay(dst, "Window too small", fmt.Sprintf("Need %dx%d", s.Width+2, s.Height+2+hudHeight))
		return
	}

	box := area.CenterIn(s.Width+2, s.Height+2)
	s.DrawBoard(dst, box.X, box.Y, th)

	switch {
	case s.Terminal && s.Reason == EndBoardFull:
		renderOverlay(dst, "Board Full!", "Press R to restart")
	case s.Terminal:
		renderOverlay(dst, "Game Over: "+reasonText(s.Reason), "Press R to restart")
	case paused:
		renderOverlay(dst, "Paused", "Press P to continue")
	}
}

// BoardOrigin returns where cell (0, 0) lands on a w×h screen, or false if
// the board does not fit.
func (s Snapshot) BoardOrigin(w, h int) (int, int, bool) {
	area := core.NewRect(0, hudHeight, w, h-hudHeight)
	if !area.Fits(s.Width+2, s.Height+2) {
		return 0, 0, false
	}
	box := area.CenterIn(s.Width+2, s.Height+2)
	return box.X + 1, box.Y + 1, true
}

// DrawBoard draws only the bordered grid with its top-left corner at (x, y).
// It takes (Width+2)×(Height+2) cells.
func (s Snapshot) DrawBoard(dst *core.Screen, x, y int, th Theme) {
	dst.DrawBox(core.NewRect(x, y, s.Width+2, s.Height+2), th.BorderColor)
	s.renderCells(dst, x+1, y+1, th)
}

func (s Snapshot) renderHUD(dst *core.Screen) {
	hud := fmt.Sprintf(" Snake %dx%d  Length: %d  Heading: %s", s.Width, s.Height, s.Len(), s.Heading)
	dst.DrawText(0, 0, hud)
	for x, w := 0, dst.Width(); x < w; x++ {
		dst.Set(x, 1, '─')
	}
}

func (s Snapshot) renderCells(dst *core.Screen, ox, oy int, th Theme) {
	if th.Empty != ' ' {
		for y := 0; y < s.Height; y++ {
			for x := 0; x < s.Width; x++ {
				dst.Set(ox+x, oy+y, th.Empty)
			}
		}
	}

	if s.HasFood {
		dst.SetColored(ox+s.Food.X, oy+s.Food.Y, th.Food, th.FoodColor)
	}

	// Body first so the head wins if cells ever coincide.
	for i := len(s.Body) - 1; i >= 0; i-- {
		seg := s.Body[i]
		if i == 0 {
			dst.SetColored(ox+seg.X, oy+seg.Y, th.Head, th.HeadColor)
		} else {
			dst.SetColored(ox+seg.X, oy+seg.Y, th.Body, th.BodyColor)
		}
	}
}

func reasonText(r EndReason) string {
	switch r {
	case EndWall:
		return "hit the wall"
	case EndSelf:
		return "bit yourself"
	default:
		return r.String()
	}
}

// renderOverlay draws a centered two-line message box.
func renderOverlay(dst *core.Screen, line1, line2 string) {
	maxLen := max(len([]rune(line1)), len([]rune(line2)))
	box := dst.Bounds().CenterIn(maxLen+4, 5)

	for y := box.Y; y < box.Bottom(); y++ {
		for x := box.X; x < box.Right(); x++ {
			isTopOrBottom := y == box.Y || y == box.Bottom()-1
			isLeftOrRight := x == box.X || x == box.Right()-1
			switch {
			case isTopOrBottom && isLeftOrRight:
				dst.Set(x, y, '+')
			case isTopOrBottom:
				dst.Set(x, y, '-')
			case isLeftOrRight:
				dst.Set(x, y, '|')
			default:
				dst.Set(x, y, ' ')
			}
		}
	}

	dst.DrawTextCentered(box.Y+1, line1)
	dst.DrawTextCentered(box.Y+3, line2)
}
