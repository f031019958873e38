// Package config provides YAML-based game configuration loading and
// difficulty management for hexmines.
package config

import (
	"fmt"

	"github.com/vovakirdan/hexmines/internal/hexgrid"
)

// Board size limits. The lower bound keeps at least one safe cell on every preset;
// the upper bound keeps the rendered board inside a reasonable terminal.
const (
	MinBoardSide = 2
	MaxBoardSide = 60
)

// HexminesConfig contains all configuration for the hexmines game.
type HexminesConfig struct {
	Board      BoardConfig   `yaml:"board"`
	Difficulty string        `yaml:"difficulty"`
	AutoOpen   bool          `yaml:"auto_open"`
	Scoring    ScoringConfig `yaml:"scoring"`
}

// BoardConfig defines the grid extent and layout.
type BoardConfig struct {
	Columns     int    `yaml:"columns"`
	Rows        int    `yaml:"rows"`
	Orientation string `yaml:"orientation"`
}

// ScoringConfig defines how a finished game is scored.
type ScoringConfig struct {
	PointsPerCell int `yaml:"points_per_cell"` // Per revealed safe cell
	WinBonus      int `yaml:"win_bonus"`       // Added once when the board is cleared
}

// Validate checks that the configuration can produce a playable board.
func (c HexminesConfig) Validate() error {
	if c.Board.Columns < MinBoardSide || c.Board.Columns > MaxBoardSide {
		return fmt.Errorf("config: board.columns %d outside [%d, %d]", c.Board.Columns, MinBoardSide, MaxBoardSide)
	}
	if c.Board.Rows < MinBoardSide || c.Board.Rows > MaxBoardSide {
		return fmt.Errorf("config: board.rows %d outside [%d, %d]", c.Board.Rows, MinBoardSide, MaxBoardSide)
	}
	if _, err := hexgrid.ParseOrientation(c.Board.Orientation); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if _, err := ParseDifficulty(c.Difficulty); err != nil {
		return err
	}
	if c.Scoring.PointsPerCell < 0 || c.Scoring.WinBonus < 0 {
		return fmt.Errorf("config: scoring values must not be negative")
	}
	return nil
}

// Orientation returns the parsed board orientation, defaulting to flat.
func (c HexminesConfig) Orientation() hexgrid.Orientation {
	o, err := hexgrid.ParseOrientation(c.Board.Orientation)
	if err != nil {
		return hexgrid.Flat
	}
	return o
}

// Preset returns the parsed difficulty, defaulting to easy.
func (c HexminesConfig) Preset() DifficultyPreset {
	p, err := ParseDifficulty(c.Difficulty)
	if err != nil {
		return DifficultyEasy
	}
	return p
}
