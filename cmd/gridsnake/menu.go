package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/gridsnake/internal/platform/tui"
	"github.com/vovakirdan/gridsnake/internal/session"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a board from a menu",
	Long: `Start gridsnake in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to start a game.
Press B on the game over or pause screen to return to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select board
  Q            - Quit

Examples:
  gridsnake menu
  gridsnake menu --seed 42`,
	Run: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	placement, err := cfg.Food.Placement()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	theme, err := cfg.Display.Theme()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger, closeLog, err := newLogger(cfg, true)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	opts := tui.AppOptions{
		Setup: session.Setup{
			TickInterval: cfg.Timing.TickInterval(),
			Placement:    placement,
			Seed:         flagSeed,
		},
		Theme:  theme,
		Logger: logger,
	}

	width, height := terminalSize()
	if err := tui.RunApp(opts, width, height); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		closeLog()
		os.Exit(1)
	}
}
