package config

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/hexmines/internal/minefield"
)

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy       DifficultyPreset = "easy"
	DifficultyMedium     DifficultyPreset = "medium"
	DifficultyHard       DifficultyPreset = "hard"
	DifficultyVeryHard   DifficultyPreset = "very_hard"
	DifficultyImpossible DifficultyPreset = "impossible"
)

// Presets returns all difficulty presets from easiest to hardest.
func Presets() []DifficultyPreset {
	return []DifficultyPreset{
		DifficultyEasy,
		DifficultyMedium,
		DifficultyHard,
		DifficultyVeryHard,
		DifficultyImpossible,
	}
}

// ParseDifficulty converts a flag or config value to a preset.
// An empty string means easy.
func ParseDifficulty(s string) (DifficultyPreset, error) {
	norm := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "-", "_")
	switch norm {
	case "":
		return DifficultyEasy, nil
	case "veryhard":
		return DifficultyVeryHard, nil
	}
	for _, p := range Presets() {
		if string(p) == norm {
			return p, nil
		}
	}
	return DifficultyEasy, fmt.Errorf("config: unknown difficulty %q", s)
}

// Density returns the fraction of cells that hold mines for a preset.
func (p DifficultyPreset) Density() minefield.Density {
	switch p {
	case DifficultyMedium:
		return minefield.Density{Num: 1, Den: 7}
	case DifficultyHard:
		return minefield.Density{Num: 1, Den: 5}
	case DifficultyVeryHard:
		return minefield.Density{Num: 1, Den: 4}
	case DifficultyImpossible:
		return minefield.Density{Num: 1, Den: 3}
	default:
		return minefield.Density{Num: 1, Den: 10}
	}
}

// MineCount returns the number of mines for a board of the given size.
func (p DifficultyPreset) MineCount(columns, rows int) int {
	return p.Density().MineCount(columns * rows)
}

// ScoreMultiplier scales the score of harder boards.
func (p DifficultyPreset) ScoreMultiplier() int {
	for i, preset := range Presets() {
		if preset == p {
			return i + 1
		}
	}
	return 1
}

// Title returns a display name for the preset.
func (p DifficultyPreset) Title() string {
	switch p {
	case DifficultyEasy:
		return "Easy"
	case DifficultyMedium:
		return "Medium"
	case DifficultyHard:
		return "Hard"
	case DifficultyVeryHard:
		return "Very Hard"
	case DifficultyImpossible:
		return "Impossible"
	default:
		return string(p)
	}
}
