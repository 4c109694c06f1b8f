// gridsnake is a grid snake game for the terminal and for SSH clients.
//
// Usage:
//
//	gridsnake list              - List board presets
//	gridsnake play [preset]     - Play on a board
//	gridsnake menu              - Pick boards interactively
//	gridsnake serve             - Start SSH server for remote play
//	gridsnake sim [preset]      - Run a headless game and print the final board
//	gridsnake config            - Print the effective configuration
//
// Global flags:
//
//	--config <path>     - Config file (default search: ~/.gridsnake/configs, ./configs)
//	--seed <value>      - Set RNG seed for reproducible games
//	--log-level <lvl>   - Override the configured log level
//	--log-file <path>   - Write logs to a file while a game is on screen
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/gridsnake/internal/config"
	_ "github.com/vovakirdan/gridsnake/internal/games/snake" // registers board presets
)

var (
	// Global flags
	flagConfig   string
	flagSeed     int64
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "gridsnake",
	Short: "gridsnake - classic snake on a fixed grid",
	Long: `gridsnake is a terminal snake game: steer the snake around a fixed-size
board, eat food to grow, and avoid the walls and your own tail.

Available commands:
  list     - Show all board presets
  play     - Play on a board directly
  menu     - Interactive board picker
  serve    - Start SSH server for remote play
  sim      - Run a headless game
  config   - Print the effective configuration

Examples:
  gridsnake list
  gridsnake play classic
  gridsnake play small --tick 200ms
  gridsnake menu
  gridsnake serve --ssh :2222
  gridsnake sim large --ticks 500 --seed 42`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Log file used while a game is on screen")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(simCmd)
}

// loadConfig loads the config file and applies global flag overrides.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	if flagLogLevel != "" {
		cfg.Log.Level = flagLogLevel
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// newLogger builds the command logger. Full-screen commands pass tui=true:
// their logs go to --log-file, or nowhere, so they never draw over the game.
func newLogger(cfg config.Config, tui bool) (*log.Logger, func(), error) {
	if !tui {
		return cfg.Log.NewLogger(os.Stderr, "gridsnake"), func() {}, nil
	}
	if flagLogFile == "" {
		return log.New(io.Discard), func() {}, nil
	}

	f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}
	return cfg.Log.NewLogger(f, "gridsnake"), func() { f.Close() }, nil
}

// terminalSize returns the size of stdout, or 80x24 if it is not a terminal.
func terminalSize() (int, int) {
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		return w, h
	}
	return 80, 24
}
