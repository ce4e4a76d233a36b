// Package config provides YAML-based board configuration loading and
// difficulty presets for minesweeper.
package config

import (
	"fmt"

	"github.com/vovakirdan/tui-minesweeper/internal/minefield"
)

// MinesweeperConfig contains all configuration for a minesweeper game.
type MinesweeperConfig struct {
	Board      BoardConfig      `yaml:"board"`
	Difficulty DifficultyPreset `yaml:"difficulty"` // Optional preset applied over Board
}

// BoardConfig defines the grid dimension and hazard count.
type BoardConfig struct {
	Size    int `yaml:"size"`    // Grid is Size x Size
	Hazards int `yaml:"hazards"` // Must be in [0, Size²)
}

// Validate checks the board settings against the grid constraints.
// The returned error wraps minefield.ErrInvalidConfiguration.
func (c MinesweeperConfig) Validate() error {
	if c.Board.Size < 1 {
		return fmt.Errorf("config: board size %d: %w", c.Board.Size, minefield.ErrInvalidConfiguration)
	}
	if c.Board.Hazards < 0 || c.Board.Hazards >= c.Board.Size*c.Board.Size {
		return fmt.Errorf("config: %d hazards on a %dx%d board: %w",
			c.Board.Hazards, c.Board.Size, c.Board.Size, minefield.ErrInvalidConfiguration)
	}
	return nil
}

// Override replaces board values with any positive command-line overrides.
// A negative value means "not set"; zero hazards is a valid override.
func (c *MinesweeperConfig) Override(size, hazards int) {
	if size > 0 {
		c.Board.Size = size
	}
	if hazards >= 0 {
		c.Board.Hazards = hazards
	}
}
