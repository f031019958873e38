package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/hexmines/internal/platform/tui"
	"github.com/vovakirdan/hexmines/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play [board]",
	Short: "Play a board",
	Long: `Start playing the specified board variant (default: hexmines).

Controls:
  Arrows/WASD/HJKL  - Move cursor
  Space/Enter       - Reveal cell
  F/M               - Cycle flag / question mark
  Left click        - Reveal cell under pointer
  Right click       - Cycle marker under pointer
  P                 - Pause
  R                 - Restart (after game over)
  Ctrl+S            - Save screenshot
  Q/Ctrl+C          - Quit

Difficulty options:
  easy        - 1 mine per 10 cells
  medium      - 1 mine per 7 cells
  hard        - 1 mine per 5 cells
  very_hard   - 1 mine per 4 cells
  impossible  - 1 mine per 3 cells

Examples:
  hexmines play
  hexmines play hexmines_pointy
  hexmines play --difficulty hard --columns 16 --rows 10
  hexmines play --config ./my-hexmines.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, args []string) error {
	boardID := "hexmines"
	if len(args) > 0 {
		boardID = args[0]
	}

	if !registry.Exists(boardID) {
		return fmt.Errorf("unknown board %q (run 'hexmines list' to see available boards)", boardID)
	}

	game, err := registry.Create(boardID)
	if err != nil {
		return fmt.Errorf("creating board: %w", err)
	}

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	fileLogger, closeLog := interactiveLogger()
	defer closeLog()

	if _, err := tui.Run(game, store, runtimeConfig(), fileLogger); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
