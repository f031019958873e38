package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/hexmines/internal/hexgrid"
)

func TestPresetMineCounts(t *testing.T) {
	tests := []struct {
		preset   DifficultyPreset
		expected int
	}{
		{DifficultyEasy, 10},
		{DifficultyMedium, 14},
		{DifficultyHard, 20},
		{DifficultyVeryHard, 25},
		{DifficultyImpossible, 33},
	}

	for _, tc := range tests {
		t.Run(string(tc.preset), func(t *testing.T) {
			if got := tc.preset.MineCount(10, 10); got != tc.expected {
				t.Errorf("MineCount(10, 10) = %d, expected %d", got, tc.expected)
			}
		})
	}
}

func TestParseDifficulty(t *testing.T) {
	tests := []struct {
		in       string
		expected DifficultyPreset
		wantErr  bool
	}{
		{"", DifficultyEasy, false},
		{"Medium", DifficultyMedium, false},
		{"very-hard", DifficultyVeryHard, false},
		{"veryhard", DifficultyVeryHard, false},
		{"impossible", DifficultyImpossible, false},
		{"nightmare", DifficultyEasy, true},
	}

	for _, tc := range tests {
		got, err := ParseDifficulty(tc.in)
		if (err != nil) != tc.wantErr {
			t.Errorf("ParseDifficulty(%q) error = %v, wantErr %v", tc.in, err, tc.wantErr)
		}
		if got != tc.expected {
			t.Errorf("ParseDifficulty(%q) = %q, expected %q", tc.in, got, tc.expected)
		}
	}
}

func TestScoreMultiplierIncreases(t *testing.T) {
	prev := 0
	for _, p := range Presets() {
		m := p.ScoreMultiplier()
		if m <= prev {
			t.Errorf("%s multiplier %d should exceed %d", p, m, prev)
		}
		prev = m
	}
}

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	if len(GetDefaultYAML()) == 0 {
		t.Fatal("Embedded default YAML is empty")
	}

	cfg, err := LoadHexmines("")
	if err != nil {
		t.Fatalf("LoadHexmines(\"\") failed: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Default config invalid: %v", err)
	}
	if cfg.Board.Columns <= 0 || cfg.Board.Rows <= 0 {
		t.Errorf("Default board size %dx%d", cfg.Board.Columns, cfg.Board.Rows)
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := "board:\n  columns: 8\n  rows: 6\n  orientation: pointy\ndifficulty: hard\n"
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	cfg, err := LoadHexmines(path)
	if err != nil {
		t.Fatalf("LoadHexmines() failed: %v", err)
	}
	if cfg.Board.Columns != 8 || cfg.Board.Rows != 6 {
		t.Errorf("Board = %dx%d, expected 8x6", cfg.Board.Columns, cfg.Board.Rows)
	}
	if cfg.Orientation() != hexgrid.Pointy {
		t.Errorf("Orientation = %v, expected pointy", cfg.Orientation())
	}
	if cfg.Preset() != DifficultyHard {
		t.Errorf("Preset = %q, expected hard", cfg.Preset())
	}
	// Unset fields keep their defaults
	if cfg.Scoring.PointsPerCell != DefaultHexminesConfig().Scoring.PointsPerCell {
		t.Errorf("PointsPerCell = %d, expected default", cfg.Scoring.PointsPerCell)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadHexmines(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("Missing custom file should fail")
	}

	bad := filepath.Join(dir, "bad.yaml")
	os.WriteFile(bad, []byte("board:\n  columns: 1\n"), 0o600)
	_, err := LoadHexmines(bad)
	if err == nil || !strings.Contains(err.Error(), "board.columns") {
		t.Errorf("Expected board.columns validation error, got %v", err)
	}
}

func TestApplyOverrides(t *testing.T) {
	cfg := DefaultHexminesConfig()
	ApplyPreset(&cfg, DifficultyImpossible)
	ApplyBoardSize(&cfg, 20, 0)

	if cfg.Preset() != DifficultyImpossible {
		t.Errorf("Preset = %q, expected impossible", cfg.Preset())
	}
	if cfg.Board.Columns != 20 || cfg.Board.Rows != DefaultHexminesConfig().Board.Rows {
		t.Errorf("Board = %dx%d after override", cfg.Board.Columns, cfg.Board.Rows)
	}

	ApplyPreset(&cfg, "")
	if cfg.Preset() != DifficultyImpossible {
		t.Error("Empty preset should not change difficulty")
	}
}
