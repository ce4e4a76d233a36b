// Package minesweeper adapts the minefield board to the interactive terminal
// platform: a cursor, turn handling, HUD and overlays.
package minesweeper

import (
	"fmt"

	"github.com/vovakirdan/tui-minesweeper/internal/config"
	"github.com/vovakirdan/tui-minesweeper/internal/core"
	"github.com/vovakirdan/tui-minesweeper/internal/minefield"
	"github.com/vovakirdan/tui-minesweeper/internal/registry"
)

// CustomID is the registry ID of the board configured from the CLI and YAML.
const CustomID = "minesweeper"

// customBoard stores the board settings selected via CLI/config for CustomID.
var customBoard = config.DefaultMinesweeperConfig().Board

// SetBoard sets the board used by games created under CustomID.
func SetBoard(b config.BoardConfig) {
	customBoard = b
}

// Game implements minesweeper on top of a minefield.Board.
type Game struct {
	id    string
	title string
	board config.BoardConfig

	field     *minefield.Board
	cursorRow int
	cursorCol int
	turns     int
	score     int // revealed count before any post-loss RevealAll

	// Screen dimensions
	screenW int
	screenH int

	// Game state flags
	lost     bool
	won      bool
	tooSmall bool
}

// New creates a game with the given identity and board settings.
func New(id, title string, board config.BoardConfig) *Game {
	return &Game{
		id:    id,
		title: title,
		board: board,
	}
}

// NewCustom creates a game using the board set with SetBoard.
func NewCustom() *Game {
	return New(CustomID, "Minesweeper", customBoard)
}

func init() {
	registry.Register(CustomID, func() registry.Game {
		return NewCustom()
	})
	for _, p := range config.Presets {
		p := p
		registry.Register(CustomID+"_"+string(p.Name), func() registry.Game {
			return New(CustomID+"_"+string(p.Name), "Minesweeper ("+p.Title+")",
				config.BoardConfig{Size: p.Size, Hazards: p.Hazards})
		})
	}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return g.id
}

// Title returns the display name.
func (g *Game) Title() string {
	return g.title
}

// Description summarizes the board settings.
func (g *Game) Description() string {
	return fmt.Sprintf("%dx%d, %d hazards", g.board.Size, g.board.Size, g.board.Hazards)
}

// Board returns the underlying minefield, nil before Reset.
func (g *Game) Board() *minefield.Board {
	return g.field
}

// Reset builds a new board seeded from cfg.Seed and centers the cursor.
func (g *Game) Reset(cfg core.RuntimeConfig) error {
	field, err := minefield.NewRandom(g.board.Size, g.board.Hazards, cfg.Seed)
	if err != nil {
		return fmt.Errorf("minesweeper: %w", err)
	}
	g.resetWith(field)
	g.Resize(cfg.ScreenW, cfg.ScreenH)
	return nil
}

// resetWith installs a prebuilt board. Tests use it to script hazard layouts.
func (g *Game) resetWith(field *minefield.Board) {
	g.field = field
	g.cursorRow = field.Size() / 2
	g.cursorCol = field.Size() / 2
	g.turns = 0
	g.score = 0
	g.lost = false
	g.won = false
}

// Resize records new screen dimensions without touching the board.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	g.checkScreenSize()
}

// Step applies one player turn.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.field == nil || g.tooSmall || g.lost || g.won {
		return core.StepResult{State: g.State()}
	}

	last := g.field.Size() - 1
	switch {
	case in.Has(core.ActionUp):
		g.cursorRow = core.Clamp(g.cursorRow-1, 0, last)
	case in.Has(core.ActionDown):
		g.cursorRow = core.Clamp(g.cursorRow+1, 0, last)
	case in.Has(core.ActionLeft):
		g.cursorCol = core.Clamp(g.cursorCol-1, 0, last)
	case in.Has(core.ActionRight):
		g.cursorCol = core.Clamp(g.cursorCol+1, 0, last)
	}

	if in.Has(core.ActionReveal) {
		g.reveal()
	}

	return core.StepResult{State: g.State()}
}

// reveal digs at the cursor and updates win/loss.
func (g *Game) reveal() {
	out, err := g.field.Reveal(g.cursorRow, g.cursorCol)
	if err != nil {
		// The cursor is clamped to the grid, so this is unreachable.
		return
	}
	g.turns++
	g.score = g.field.RevealedCount()

	if out == minefield.Lost {
		g.lost = true
		g.field.RevealAll()
		return
	}
	if g.field.Won() {
		g.won = true
	}
}

// Cursor returns the current cursor coordinate.
func (g *Game) Cursor() (row, col int) {
	return g.cursorRow, g.cursorCol
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.lost || g.won,
		Won:      g.won,
	}
}
