package config

import (
	_ "embed"
)

//go:embed defaults/hexmines.yaml
var defaultHexminesYAML []byte

// DefaultHexminesConfig returns the default hexmines configuration.
func DefaultHexminesConfig() HexminesConfig {
	return HexminesConfig{
		Board: BoardConfig{
			Columns:     12,
			Rows:        9,
			Orientation: "flat",
		},
		Difficulty: string(DifficultyEasy),
		AutoOpen:   true,
		Scoring: ScoringConfig{
			PointsPerCell: 10,
			WinBonus:      500,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultHexminesYAML
}
