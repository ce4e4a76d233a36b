package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-minesweeper/internal/config"
	"github.com/vovakirdan/tui-minesweeper/internal/registry"
)

var presetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "List difficulty presets and boards",
	Long:  `Shows the built-in difficulty presets and every board the TUI picker offers.`,
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		printPresets(cmd.OutOrStdout())
	},
}

func printPresets(w io.Writer) {
	fmt.Fprintln(w, "Difficulty presets:")
	fmt.Fprintln(w)

	// Calculate column widths
	maxNameLen := 4 // "Name" header
	for _, p := range config.Presets {
		maxNameLen = max(maxNameLen, len(p.Name))
	}

	fmt.Fprintf(w, "  %-*s  %-12s  %-5s  %s\n", maxNameLen, "Name", "Title", "Size", "Hazards")
	fmt.Fprintf(w, "  %-*s  %-12s  %-5s  %s\n", maxNameLen, "----", "-----", "----", "-------")
	for _, p := range config.Presets {
		size := fmt.Sprintf("%dx%d", p.Size, p.Size)
		fmt.Fprintf(w, "  %-*s  %-12s  %-5s  %d\n", maxNameLen, p.Name, p.Title, size, p.Hazards)
	}

	games := registry.List()
	if len(games) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Boards (minesweeper tui --pick):")
		fmt.Fprintln(w)

		maxIDLen := 2 // "ID" header
		for _, g := range games {
			maxIDLen = max(maxIDLen, len(g.ID))
		}
		for _, g := range games {
			fmt.Fprintf(w, "  %-*s  %s\n", maxIDLen, g.ID, g.Description)
		}
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'minesweeper play --difficulty <name>' to use a preset.")
}
