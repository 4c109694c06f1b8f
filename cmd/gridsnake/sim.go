package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/gridsnake/internal/core"
	"github.com/vovakirdan/gridsnake/internal/games/snake"
	"github.com/vovakirdan/gridsnake/internal/registry"
)

var (
	flagSimTicks     int
	flagSimTurnEvery int
)

var simCmd = &cobra.Command{
	Use:   "sim [preset]",
	Short: "Run a headless game and print the final board",
	Long: `Run a game without a terminal UI. The snake turns clockwise every
--turn-every ticks and the game stops after --ticks ticks or when it ends.
The final board and the end reason are printed to stdout.

Examples:
  gridsnake sim
  gridsnake sim small --ticks 100 --turn-every 4 --seed 42`,
	Args: cobra.MaximumNArgs(1),
	Run:  runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagSimTicks, "ticks", 200, "Maximum number of ticks")
	simCmd.Flags().IntVar(&flagSimTurnEvery, "turn-every", 5, "Turn clockwise every N ticks (0 = never)")
	simCmd.Flags().IntVar(&flagWidth, "width", 0, "Board width (overrides the preset)")
	simCmd.Flags().IntVar(&flagHeight, "height", 0, "Board height (overrides the preset)")
}

func runSim(_ *cobra.Command, args []string) {
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

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	logger, closeLog, err := newLogger(cfg, false)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()
	logger.Debug("simulating", "board", board.ID, "seed", seed, "ticks", flagSimTicks)

	opts := simOptions{
		Board:     board,
		Ticks:     flagSimTicks,
		TurnEvery: flagSimTurnEvery,
		Seed:      seed,
		Placement: placement,
		Theme:     theme,
	}
	if err := simulate(os.Stdout, opts); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		closeLog()
		os.Exit(1)
	}
}

type simOptions struct {
	Board     registry.Preset
	Ticks     int
	TurnEvery int
	Seed      int64
	Placement snake.Placement
	Theme     snake.Theme
}

// simulate plays one game and writes the final board and a summary to w.
func simulate(w io.Writer, opts simOptions) error {
	g, err := snake.NewFromPreset(opts.Board,
		snake.WithSeed(opts.Seed),
		snake.WithPlacement(opts.Placement),
	)
	if err != nil {
		return err
	}

	for i := 1; i <= opts.Ticks && !g.Terminal(); i++ {
		if opts.TurnEvery > 0 && i%opts.TurnEvery == 0 {
			g.SetDirection(clockwise(g.Heading()))
		}
		g.Tick()
	}

	snap := g.Snapshot()
	screen := core.NewScreen(snap.Width+2, snap.Height+2)
	snap.DrawBoard(screen, 0, 0, opts.Theme)
	fmt.Fprintln(w, screen.String())

	reason := "running"
	if snap.Terminal {
		reason = snap.Reason.String()
	}
	_, err = fmt.Fprintf(w, "seed: %d  ticks: %d  length: %d  result: %s\n", opts.Seed, snap.Ticks, snap.Len(), reason)
	return err
}

func clockwise(d snake.Direction) snake.Direction {
	switch d {
	case snake.DirUp:
		return snake.DirRight
	case snake.DirRight:
		return snake.DirDown
	case snake.DirDown:
		return snake.DirLeft
	default:
		return snake.DirUp
	}
}
