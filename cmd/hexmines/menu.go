package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/hexmines/internal/platform/tui"
	"github.com/vovakirdan/hexmines/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a board and difficulty interactively",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to choose a board, left/right to change the
difficulty and Enter to start. After a game you can press B to come
back to the menu.

Controls:
  Up/Down/j/k     - Choose board
  Left/Right/h/l  - Change difficulty
  Enter/Space     - Start
  Tab             - Scoreboard
  Q               - Quit

Examples:
  hexmines menu
  hexmines menu --difficulty hard
  hexmines menu --db ./scores.db`,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	store := openStore()
	if store != nil {
		defer store.Close()
	}

	fileLogger, closeLog := interactiveLogger()
	defer closeLog()

	cfg := runtimeConfig()
	preset := startPreset()

	for {
		result, err := tui.RunMenu(store, cfg, preset)
		if err != nil {
			return fmt.Errorf("menu: %w", err)
		}

		cfg = result.Config
		preset = result.Difficulty

		if result.Quit {
			return nil
		}

		if result.WantsScoreboard {
			goBack, err := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if err != nil {
				return fmt.Errorf("scoreboard: %w", err)
			}
			if !goBack {
				return nil
			}
			continue
		}

		game, err := registry.Create(result.GameID)
		if err != nil {
			logger.Error("creating board", "board", result.GameID, "error", err)
			continue
		}
		if d, ok := game.(registry.DifficultySetter); ok {
			d.SetDifficulty(preset)
		}

		// Fresh board every round unless --seed pins it
		cfg.Seed = flagSeed
		backToMenu, err := tui.Run(game, store, cfg, fileLogger)
		if err != nil {
			return fmt.Errorf("running game: %w", err)
		}
		if !backToMenu {
			return nil
		}
	}
}
