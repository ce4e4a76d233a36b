package config

import (
	"fmt"
	"strings"
)

// DifficultyPreset represents a named board size and hazard count.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// Preset describes the board a difficulty preset produces.
type Preset struct {
	Name    DifficultyPreset
	Title   string
	Size    int
	Hazards int
}

// Presets lists the built-in presets from easiest to hardest.
var Presets = []Preset{
	{Name: DifficultyEasy, Title: "Beginner", Size: 9, Hazards: 10},
	{Name: DifficultyNormal, Title: "Intermediate", Size: 12, Hazards: 20},
	{Name: DifficultyHard, Title: "Expert", Size: 16, Hazards: 40},
}

// PresetFor looks up a preset by name (case-insensitive).
func PresetFor(name DifficultyPreset) (Preset, bool) {
	want := DifficultyPreset(strings.ToLower(strings.TrimSpace(string(name))))
	for _, p := range Presets {
		if p.Name == want {
			return p, true
		}
	}
	return Preset{}, false
}

// ParsePreset validates a preset name from user input.
// An empty name returns an empty preset and no error.
func ParsePreset(name string) (DifficultyPreset, error) {
	if strings.TrimSpace(name) == "" {
		return "", nil
	}
	p, ok := PresetFor(DifficultyPreset(name))
	if !ok {
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal or hard)", name)
	}
	return p.Name, nil
}

// ApplyPreset modifies the config based on a difficulty preset.
// Unknown or empty presets leave the config untouched.
func ApplyPreset(cfg *MinesweeperConfig, preset DifficultyPreset) {
	p, ok := PresetFor(preset)
	if !ok {
		return
	}
	cfg.Difficulty = p.Name
	cfg.Board.Size = p.Size
	cfg.Board.Hazards = p.Hazards
}
