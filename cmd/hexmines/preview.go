package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/hexmines/internal/core"
	"github.com/vovakirdan/hexmines/internal/games/hexmines"
	"github.com/vovakirdan/hexmines/internal/platform/tui"
	"github.com/vovakirdan/hexmines/internal/registry"
)

var (
	flagCovered bool
	flagColor   bool
)

var previewCmd = &cobra.Command{
	Use:   "preview [board]",
	Short: "Print a generated board",
	Long: `Generate a board without starting the game and print it to stdout.

By default every cell is uncovered and mines are shown as [*]. With
--covered the board is printed as a player would first see it.
Combine with --seed to inspect a specific board.

Examples:
  hexmines preview --seed 42
  hexmines preview hexmines_pointy --difficulty impossible
  hexmines preview --covered --color`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPreview,
}

func init() {
	previewCmd.Flags().BoolVar(&flagCovered, "covered", false, "Print the board as the player sees it")
	previewCmd.Flags().BoolVar(&flagColor, "color", false, "Print with terminal colors")
}

func runPreview(_ *cobra.Command, args []string) error {
	boardID := "hexmines"
	if len(args) > 0 {
		boardID = args[0]
	}

	created, err := registry.Create(boardID)
	if err != nil {
		return err
	}
	game, ok := created.(*hexmines.Game)
	if !ok {
		return fmt.Errorf("board %q cannot be previewed", boardID)
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	// Size the screen to the board rather than the terminal
	game.Reset(core.RuntimeConfig{ScreenW: 1, ScreenH: 1, TickRate: flagFPS, Seed: seed})
	if err := game.SetupError(); err != nil {
		return fmt.Errorf("generating board: %w", err)
	}
	w, h := game.MinScreenSize()
	game.Resize(w, h)

	screen := core.NewScreen(w, h)
	if flagCovered {
		game.Render(screen)
	} else {
		game.RenderSolution(screen)
	}

	logger.Debug("board generated", "board", boardID, "seed", seed, "difficulty", game.Difficulty())

	if flagColor {
		fmt.Println(tui.RenderScreen(screen))
		return nil
	}
	for y := 0; y < screen.Height(); y++ {
		fmt.Println(strings.TrimRight(screen.Row(y), " "))
	}
	return nil
}
