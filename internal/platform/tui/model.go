// Package tui provides the Bubble Tea integration for the minesweeper boards.
// It handles the terminal UI loop, input mapping, and game orchestration.
package tui

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-minesweeper/internal/core"
	"github.com/vovakirdan/tui-minesweeper/internal/registry"
)

// helpHeight is the number of rows reserved below the game for key hints.
const helpHeight = 1

// Resizer is implemented by games that can adapt to a new screen size
// without starting over.
type Resizer interface {
	Resize(w, h int)
}

// Model is the Bubble Tea model for running a board.
type Model struct {
	game      registry.Game
	screen    *core.Screen
	config    core.RuntimeConfig
	keys      KeyMap
	help      help.Model
	logger    *log.Logger
	gameState core.GameState
	quitting  bool
	err       error
}

// NewModel creates a Bubble Tea model and deals the first board.
func NewModel(game registry.Game, cfg core.RuntimeConfig, logger *log.Logger) (Model, error) {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	m := Model{
		game:   game,
		screen: core.NewScreen(cfg.ScreenW, max(0, cfg.ScreenH-helpHeight)),
		config: cfg,
		keys:   DefaultKeyMap(),
		help:   help.New(),
		logger: logger,
	}
	m.help.Width = cfg.ScreenW

	gameCfg := cfg
	gameCfg.ScreenH = m.screen.Height()
	if err := game.Reset(gameCfg); err != nil {
		return m, fmt.Errorf("tui: start %s: %w", game.ID(), err)
	}
	m.gameState = game.State()
	logger.Info("board dealt", "game", game.ID(), "seed", cfg.Seed)
	return m, nil
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)
	}

	return m, nil
}

// handleKey turns one key press into one game turn.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Help) {
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	action := m.keys.MapKey(msg)
	switch action {
	case core.ActionNone:
		return m, nil

	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit

	case core.ActionRestart:
		if !m.gameState.GameOver {
			return m, nil
		}
		return m.restart()
	}

	in := core.NewInputFrame()
	in.Set(action)
	result := m.game.Step(in)

	if result.State.GameOver && !m.gameState.GameOver {
		m.logger.Info("game over", "game", m.game.ID(), "won", result.State.Won, "score", result.State.Score)
	} else {
		m.logger.Debug("turn", "action", action, "score", result.State.Score)
	}
	m.gameState = result.State

	return m, nil
}

// restart deals a fresh board with a new seed.
func (m Model) restart() (tea.Model, tea.Cmd) {
	m.config.Seed = time.Now().UnixNano()

	gameCfg := m.config
	gameCfg.ScreenH = m.screen.Height()
	if err := m.game.Reset(gameCfg); err != nil {
		m.err = fmt.Errorf("tui: restart %s: %w", m.game.ID(), err)
		m.quitting = true
		return m, tea.Quit
	}

	m.gameState = m.game.State()
	m.logger.Info("board dealt", "game", m.game.ID(), "seed", m.config.Seed)
	return m, nil
}

// handleResize processes window resize events. The board in play is kept.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, max(0, msg.Height-helpHeight))
	m.help.Width = msg.Width

	if r, ok := m.game.(Resizer); ok {
		r.Resize(m.screen.Width(), m.screen.Height())
	}

	return m, nil
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)

	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys)
}

// Err returns the error that stopped the model, if any.
func (m Model) Err() error {
	return m.err
}

// Run starts the Bubble Tea program for the given game.
func Run(game registry.Game, cfg core.RuntimeConfig, logger *log.Logger) error {
	model, err := NewModel(game, cfg, logger)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	if m, ok := final.(Model); ok && m.Err() != nil {
		return m.Err()
	}
	return nil
}
