package config

import (
	_ "embed"
)

//go:embed defaults/minesweeper.yaml
var defaultMinesweeperYAML []byte

// DefaultMinesweeperConfig returns the built-in board: 10x10 with 10 hazards.
func DefaultMinesweeperConfig() MinesweeperConfig {
	return MinesweeperConfig{
		Board: BoardConfig{
			Size:    10,
			Hazards: 10,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultMinesweeperYAML
}
