package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-minesweeper/internal/core"
	"github.com/vovakirdan/tui-minesweeper/internal/games/minesweeper"
	"github.com/vovakirdan/tui-minesweeper/internal/platform/tui"
	"github.com/vovakirdan/tui-minesweeper/internal/registry"
)

var flagPick bool

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Play on a full-screen board",
	Long: `Start a full-screen board with a cursor.

Controls:
  Arrows/WASD/HJKL  - Move cursor
  Space/Enter       - Dig
  R                 - New board (after game over)
  ?                 - Toggle key help
  Q/Ctrl+C          - Quit

Logs are discarded while the board is on screen unless --log-file is set.

Examples:
  minesweeper tui
  minesweeper tui --difficulty hard
  minesweeper tui --pick
  minesweeper tui --log-file ./minesweeper.log --log-level debug`,
	Args: cobra.NoArgs,
	RunE: runTUI,
}

func init() {
	tuiCmd.Flags().BoolVar(&flagPick, "pick", false, "Choose a board from a menu first")
}

func runTUI(cmd *cobra.Command, args []string) error {
	logger, closeLog, err := openLogger(io.Discard)
	if err != nil {
		return err
	}
	//nolint:errcheck // Best-effort close of the log file
	defer closeLog()

	board, err := loadBoard(cmd)
	if err != nil {
		return err
	}
	minesweeper.SetBoard(board)

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW: width,
		ScreenH: height,
		Seed:    resolveSeed(),
	}

	gameID := minesweeper.CustomID
	if flagPick {
		result, menuErr := tui.RunMenu(cfg)
		if menuErr != nil {
			return menuErr
		}
		if result.Quit {
			return nil
		}
		gameID = result.GameID
		cfg.ScreenW = result.Config.ScreenW
		cfg.ScreenH = result.Config.ScreenH
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}
	logger.Debug("starting tui", "game", gameID, "width", cfg.ScreenW, "height", cfg.ScreenH)

	return tui.Run(game, cfg, logger)
}
