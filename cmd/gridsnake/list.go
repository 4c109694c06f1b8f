package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/gridsnake/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all board presets",
	Long:  `Shows every board preset with its size.`,
	Run: func(_ *cobra.Command, _ []string) {
		printPresets(os.Stdout)
	},
}

func printPresets(w io.Writer) {
	presets := registry.List()

	if len(presets) == 0 {
		fmt.Fprintln(w, "No boards available.")
		return
	}

	fmt.Fprintln(w, "Available boards:")
	fmt.Fprintln(w)

	maxIDLen := 2 // "ID" header
	for _, p := range presets {
		maxIDLen = max(maxIDLen, len(p.ID))
	}

	fmt.Fprintf(w, "  %-*s  %-7s  %s\n", maxIDLen, "ID", "Size", "Title")
	fmt.Fprintf(w, "  %-*s  %-7s  %s\n", maxIDLen, "--", "----", "-----")
	for _, p := range presets {
		fmt.Fprintf(w, "  %-*s  %-7s  %s\n", maxIDLen, p.ID, fmt.Sprintf("%dx%d", p.Width, p.Height), p.Title)
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'gridsnake play <id>' to play on a board.")
}
