package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"
	"strconv"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-minesweeper/internal/minefield"
)

const (
	digPrompt   = "Where do you choose to dig? Give input of numbers in this format: row,column: "
	msgInvalid  = "Invalid location. Try again."
	msgWon      = "CONGRATULATIONS!! YOU FINISHED THIS GAME!"
	msgLost     = "Game Over... You lost"
	msgBadInput = "Please enter two numbers, like 3,4."
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in line mode",
	Long: `Print the board and dig by typing a coordinate pair.

Input:
  row,col     - e.g. "3,4", "3, 4" or "3 4"
  Ctrl+D      - Quit

Examples:
  minesweeper play
  minesweeper play --difficulty easy
  minesweeper play --size 5 --hazards 3 --seed 42`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, args []string) error {
	logger, closeLog, err := openLogger(os.Stderr)
	if err != nil {
		return err
	}
	//nolint:errcheck // Best-effort close of the log file
	defer closeLog()

	board, err := loadBoard(cmd)
	if err != nil {
		return err
	}

	seed := resolveSeed()
	field, err := minefield.NewRandom(board.Size, board.Hazards, seed)
	if err != nil {
		return err
	}
	logger.Info("board dealt", "size", board.Size, "hazards", board.Hazards, "seed", seed)

	_, err = playLines(cmd.InOrStdin(), cmd.OutOrStdout(), field, logger)
	return err
}

// lineResult is how a line-mode session ended.
type lineResult int

const (
	resultQuit lineResult = iota // input ran out
	resultWon
	resultLost
)

// coordPattern accepts "row,col", "row, col" and "row col".
var coordPattern = regexp.MustCompile(`^\s*(-?\d+)\s*(?:,\s*|\s+)(-?\d+)\s*$`)

var errBadInput = errors.New("expected two integers")

// parseCoords extracts a row and column from a line of user input.
func parseCoords(line string) (row, col int, err error) {
	m := coordPattern.FindStringSubmatch(line)
	if m == nil {
		return 0, 0, fmt.Errorf("parse %q: %w", line, errBadInput)
	}
	if row, err = strconv.Atoi(m[1]); err != nil {
		return 0, 0, fmt.Errorf("parse row %q: %w", m[1], errBadInput)
	}
	if col, err = strconv.Atoi(m[2]); err != nil {
		return 0, 0, fmt.Errorf("parse col %q: %w", m[2], errBadInput)
	}
	return row, col, nil
}

// playLines runs the line-mode game loop until the board is cleared, a
// hazard is hit, or in is exhausted.
func playLines(in io.Reader, out io.Writer, field *minefield.Board, logger *log.Logger) (lineResult, error) {
	scanner := bufio.NewScanner(in)

	for !field.Won() {
		fmt.Fprintln(out, field.Render())
		fmt.Fprint(out, digPrompt)

		if !scanner.Scan() {
			fmt.Fprintln(out)
			if err := scanner.Err(); err != nil {
				return resultQuit, fmt.Errorf("read input: %w", err)
			}
			logger.Debug("input closed")
			return resultQuit, nil
		}
		line := scanner.Text()

		row, col, err := parseCoords(line)
		if err != nil {
			logger.Debug("bad input", "line", line, "err", err)
			fmt.Fprintln(out, msgBadInput)
			continue
		}

		outcome, err := field.Reveal(row, col)
		if errors.Is(err, minefield.ErrOutOfBounds) {
			logger.Debug("out of bounds", "row", row, "col", col)
			fmt.Fprintln(out, msgInvalid)
			continue
		}
		if err != nil {
			return resultQuit, err
		}
		logger.Debug("reveal", "row", row, "col", col, "outcome", outcome, "revealed", field.RevealedCount())

		if outcome == minefield.Lost {
			fmt.Fprintln(out, msgLost)
			field.RevealAll()
			fmt.Fprintln(out, field.Render())
			logger.Info("game over", "won", false, "row", row, "col", col)
			return resultLost, nil
		}
	}

	fmt.Fprintln(out, field.Render())
	fmt.Fprintln(out, msgWon)
	logger.Info("game over", "won", true)
	return resultWon, nil
}
