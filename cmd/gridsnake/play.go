package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/gridsnake/internal/config"
	"github.com/vovakirdan/gridsnake/internal/platform/tui"
	"github.com/vovakirdan/gridsnake/internal/registry"
)

var (
	flagWidth  int
	flagHeight int
	flagTick   time.Duration
)

var playCmd = &cobra.Command{
	Use:   "play [preset]",
	Short: "Play on a board",
	Long: `Start a game on the given board preset, or the configured one.

Controls:
  Arrows/WASD/hjkl  - Steer
  P/Esc             - Pause
  R                 - Restart (after game over)
  Q/Ctrl+C          - Quit

Examples:
  gridsnake play
  gridsnake play large
  gridsnake play classic --width 30 --height 12
  gridsnake play small --tick 150ms --seed 7`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().IntVar(&flagWidth, "width", 0, "Board width (overrides the preset)")
	playCmd.Flags().IntVar(&flagHeight, "height", 0, "Board height (overrides the preset)")
	playCmd.Flags().DurationVar(&flagTick, "tick", 0, "Tick interval (default from config, 350ms)")
}

func runPlay(_ *cobra.Command, args []string) {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	var name string
	if len(args) > 0 {
		name = args[0]
	}
	board, err := resolveBoard(cfg, name, flagWidth, flagHeight)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintln(os.Stderr, "Run 'gridsnake list' to see available boards.")
		os.Exit(1)
	}

	setup, err := cfg.SessionSetup(board, flagSeed)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if flagTick > 0 {
		setup.TickInterval = flagTick
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

	sess, err := setup.Start("local", logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	width, height := terminalSize()
	if err := tui.Run(sess, theme, width, height); err != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		closeLog()
		os.Exit(1)
	}
}

// resolveBoard picks the preset and applies config and flag size overrides.
func resolveBoard(cfg config.Config, name string, width, height int) (registry.Preset, error) {
	if width < 0 || height < 0 {
		return registry.Preset{}, fmt.Errorf("board size %dx%d must not be negative", width, height)
	}
	if width > 0 {
		cfg.Board.Width = width
	}
	if height > 0 {
		cfg.Board.Height = height
	}
	return cfg.ResolveBoard(name)
}
