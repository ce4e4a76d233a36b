package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ConfigFileName is the file looked up in the user and local config directories.
const ConfigFileName = "minesweeper.yaml"

// Loader resolves configuration files. The zero value searches the user's
// home directory and ./configs, like the CLI does.
type Loader struct {
	// HomeDir overrides os.UserHomeDir. Used by tests.
	HomeDir string
	// LocalDir overrides the ./configs directory. Used by tests.
	LocalDir string
}

// LoadMinesweeper loads configuration with the default Loader.
func LoadMinesweeper(customPath string) (MinesweeperConfig, error) {
	return Loader{}.Load(customPath)
}

// Load loads minesweeper configuration and applies its difficulty preset.
// Search order: customPath -> ~/.minesweeper/configs/minesweeper.yaml ->
// ./configs/minesweeper.yaml -> embedded default.
//
// A custom path that cannot be read or parsed is an error; unreadable files
// further down the chain are skipped.
func (l Loader) Load(customPath string) (MinesweeperConfig, error) {
	cfg, err := l.load(customPath)
	if err != nil {
		return cfg, err
	}
	if cfg.Difficulty != "" {
		if _, ok := PresetFor(cfg.Difficulty); !ok {
			return cfg, fmt.Errorf("config: unknown difficulty %q", cfg.Difficulty)
		}
		ApplyPreset(&cfg, cfg.Difficulty)
	}
	return cfg, nil
}

func (l Loader) load(customPath string) (MinesweeperConfig, error) {
	cfg := DefaultMinesweeperConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := l.userConfigPath(ConfigFileName); userCfgPath != "" {
		if c, ok := readYAML(userCfgPath); ok {
			return c, nil
		}
	}

	// Try local configs directory
	if c, ok := readYAML(filepath.Join(l.localDir(), ConfigFileName)); ok {
		return c, nil
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultMinesweeperYAML, &cfg); err != nil {
		return DefaultMinesweeperConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// readYAML parses path on top of the defaults; ok is false if the file is
// missing or malformed.
func readYAML(path string) (MinesweeperConfig, bool) {
	cfg := DefaultMinesweeperConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, false
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, false
	}
	return cfg, true
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func (l Loader) userConfigPath(filename string) string {
	home := l.HomeDir
	if home == "" {
		var err error
		home, err = os.UserHomeDir()
		if err != nil {
			return ""
		}
	}
	return filepath.Join(home, ".minesweeper", "configs", filename)
}

func (l Loader) localDir() string {
	if l.LocalDir != "" {
		return l.LocalDir
	}
	return "configs"
}
