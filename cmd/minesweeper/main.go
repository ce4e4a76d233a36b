// minesweeper is a terminal minesweeper with a line-mode and a full-screen UI.
//
// Usage:
//
//	minesweeper              - Play in line mode (same as "play")
//	minesweeper play         - Line mode: type "row,col" to dig
//	minesweeper tui          - Full-screen board with a cursor
//	minesweeper presets      - List difficulty presets
//
// Global flags:
//
//	--seed <value>        - Set RNG seed for a reproducible board
//	--size <n>            - Board edge length
//	--hazards <n>         - Number of hazards
//	--difficulty <name>   - Preset: easy, normal, hard
//	--config <path>       - Path to a custom minesweeper.yaml
//	--log-level <level>   - debug, info, warn, error (default: warn)
//	--log-file <path>     - Write logs to a file
package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-minesweeper/internal/config"
	"github.com/vovakirdan/tui-minesweeper/internal/minefield"
)

var (
	// Global flags
	flagSeed       int64
	flagSize       int
	flagHazards    int
	flagDifficulty string
	flagConfig     string
	flagLogLevel   string
	flagLogFile    string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "minesweeper",
	Short: "Minesweeper in your terminal",
	Long: `Minesweeper clears a square board of hidden hazards one dig at a time.
Numbers show how many of the eight neighbours hide a hazard; digging a
zero opens the whole connected empty region.

Available commands:
  play     - Line mode, type coordinates to dig (default)
  tui      - Full-screen board with cursor keys
  presets  - Show difficulty presets

Examples:
  minesweeper
  minesweeper play --size 5 --hazards 3
  minesweeper tui --difficulty hard
  minesweeper play --seed 42 --config ./minesweeper.yaml`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runPlay,
}

func init() {
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().IntVar(&flagSize, "size", 0, "Board edge length (0 = from config)")
	rootCmd.PersistentFlags().IntVar(&flagHazards, "hazards", -1, "Number of hazards (-1 = from config)")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom minesweeper config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "warn", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(tuiCmd)
	rootCmd.AddCommand(presetsCmd)
}

// newLogger builds the process logger writing to w at the given level.
func newLogger(w io.Writer, level string) (*log.Logger, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level: %w", err)
	}
	return log.NewWithOptions(w, log.Options{
		Level:           lvl,
		ReportTimestamp: true,
		Prefix:          "minesweeper",
	}), nil
}

// openLogger returns a logger honouring --log-file. fallback is used when
// no file is set. The returned close func is always non-nil.
func openLogger(fallback io.Writer) (*log.Logger, func() error, error) {
	out, closeFn := fallback, func() error { return nil }
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, closeFn, fmt.Errorf("open log file: %w", err)
		}
		out, closeFn = f, f.Close
	}

	logger, err := newLogger(out, flagLogLevel)
	if err != nil {
		//nolint:errcheck // Best-effort close on the error path
		closeFn()
		return nil, func() error { return nil }, err
	}
	return logger, closeFn, nil
}

// resolveSeed returns the --seed value, or a time-based one when unset.
func resolveSeed() int64 {
	if flagSeed != 0 {
		return flagSeed
	}
	return time.Now().UnixNano()
}

// loadBoard resolves the board settings: config file, then difficulty
// preset, then --size/--hazards.
func loadBoard(cmd *cobra.Command) (config.BoardConfig, error) {
	cfg, err := config.LoadMinesweeper(flagConfig)
	if err != nil {
		return config.BoardConfig{}, err
	}

	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return config.BoardConfig{}, err
	}
	config.ApplyPreset(&cfg, preset)

	flags := cmd.Flags()
	if flags.Changed("size") && flagSize < 1 {
		return config.BoardConfig{}, fmt.Errorf("invalid --size %d: %w", flagSize, minefield.ErrInvalidConfiguration)
	}
	if flags.Changed("hazards") && flagHazards < 0 {
		return config.BoardConfig{}, fmt.Errorf("invalid --hazards %d: %w", flagHazards, minefield.ErrInvalidConfiguration)
	}

	cfg.Override(flagSize, flagHazards)
	if err := cfg.Validate(); err != nil {
		return config.BoardConfig{}, err
	}
	return cfg.Board, nil
}
