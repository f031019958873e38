package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadHexmines loads the hexmines configuration.
// Search order: customPath -> ~/.hexmines/configs/hexmines.yaml -> ./configs/hexmines.yaml -> embedded default
func LoadHexmines(customPath string) (HexminesConfig, error) {
	// Start from defaults so partial files only override what they set
	cfg := DefaultHexminesConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return cfg, fmt.Errorf("config: %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory, then local configs directory
	candidates := []string{userConfigPath("hexmines.yaml"), filepath.Join("configs", "hexmines.yaml")}
	for _, path := range candidates {
		if path == "" {
			continue
		}
		if loaded, ok := tryLoad(path); ok {
			return loaded, nil
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultHexminesYAML, &cfg); err != nil {
		return DefaultHexminesConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// tryLoad reads an optional config file. Unreadable or invalid files are skipped.
func tryLoad(path string) (HexminesConfig, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return HexminesConfig{}, false
	}
	cfg := DefaultHexminesConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return HexminesConfig{}, false
	}
	if cfg.Validate() != nil {
		return HexminesConfig{}, false
	}
	return cfg, true
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".hexmines", "configs", filename)
}

// ApplyPreset sets the difficulty of the config. An empty preset leaves it unchanged.
func ApplyPreset(cfg *HexminesConfig, preset DifficultyPreset) {
	if preset == "" {
		return
	}
	cfg.Difficulty = string(preset)
}

// ApplyBoardSize overrides the board extent. Non-positive values leave it unchanged.
func ApplyBoardSize(cfg *HexminesConfig, columns, rows int) {
	if columns > 0 {
		cfg.Board.Columns = columns
	}
	if rows > 0 {
		cfg.Board.Rows = rows
	}
}
