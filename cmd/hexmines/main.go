// hexmines is minesweeper on a hexagonal grid, played in the terminal.
//
// Usage:
//
//	hexmines list              - List board variants
//	hexmines play [board]      - Play a board (default: hexmines)
//	hexmines menu              - Pick board and difficulty interactively
//	hexmines serve             - Start SSH server for remote play
//	hexmines scores [board]    - Show high scores and win rates
//	hexmines preview [board]   - Print a generated board fully uncovered
//
// Global flags:
//
//	--fps <rate>           - Set tick rate (default: 30)
//	--seed <value>         - Set RNG seed for reproducible boards
//	--db <path>            - Set database path (default: ~/.hexmines/scores.db)
//	--config <path>        - Use a custom hexmines.yaml
//	--difficulty <preset>  - easy, medium, hard, very_hard, impossible
//	--columns, --rows <n>  - Override board size
//	--log-level <level>    - debug, info, warn, error
//
// HEXMINES_DB, HEXMINES_CONFIG and HEXMINES_LOG_LEVEL (also read from a
// .env file in the working directory) supply defaults for the matching flags.
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/hexmines/internal/config"
	"github.com/vovakirdan/hexmines/internal/core"
	"github.com/vovakirdan/hexmines/internal/games/hexmines"
	"github.com/vovakirdan/hexmines/internal/storage"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagColumns    int
	flagRows       int
	flagLogLevel   string
	flagLogFile    string

	// logger is built in PersistentPreRunE from --log-level.
	logger *log.Logger

	logLevel = log.InfoLevel
)

// envDefaults maps flags to the environment variables that can supply them.
var envDefaults = map[string]string{
	"db":        "HEXMINES_DB",
	"config":    "HEXMINES_CONFIG",
	"log-level": "HEXMINES_LOG_LEVEL",
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "hexmines",
	Short: "Hex Mines - minesweeper on a hexagonal grid",
	Long: `Hex Mines is minesweeper played on a grid of hexagons, right in your terminal.
Every cell has up to six neighbors. Reveal all safe cells without hitting a mine.

Available commands:
  list     - Show board variants
  play     - Play a board directly
  menu     - Interactive board and difficulty picker
  serve    - Start SSH server for remote play
  scores   - View high scores and win rates
  preview  - Print a generated board

Examples:
  hexmines play
  hexmines play hexmines_pointy --difficulty hard
  hexmines menu
  hexmines serve --ssh :2222
  hexmines preview --seed 42 --columns 10 --rows 8`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.IntVar(&flagFPS, "fps", 30, "Tick rate (frames per second)")
	flags.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	flags.StringVar(&flagDBPath, "db", "~/.hexmines/scores.db", "Path to scores database")
	flags.StringVar(&flagConfig, "config", "", "Path to custom hexmines.yaml")
	flags.StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, medium, hard, very_hard, impossible")
	flags.IntVar(&flagColumns, "columns", 0, "Board columns (0 = from config)")
	flags.IntVar(&flagRows, "rows", 0, "Board rows (0 = from config)")
	flags.StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	flags.StringVar(&flagLogFile, "log-file", "~/.hexmines/hexmines.log", "Log file for interactive commands")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(previewCmd)
}

// setup loads .env, fills unset flags from the environment, builds the
// logger and hands board settings to the game package.
func setup(cmd *cobra.Command, _ []string) error {
	// A missing .env is normal; variables may be set directly
	_ = godotenv.Load()

	flags := cmd.Flags()
	for name, env := range envDefaults {
		if flags.Changed(name) {
			continue
		}
		if v, ok := os.LookupEnv(env); ok && v != "" {
			if err := flags.Set(name, v); err != nil {
				return fmt.Errorf("invalid %s: %w", env, err)
			}
		}
	}

	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", flagLogLevel, err)
	}
	logLevel = level
	logger = newLogger(os.Stderr)

	preset, err := config.ParseDifficulty(flagDifficulty)
	if err != nil {
		return err
	}
	if flagColumns < 0 || flagRows < 0 {
		return fmt.Errorf("board size must not be negative")
	}
	if flagConfig != "" {
		if _, err := config.LoadHexmines(flagConfig); err != nil {
			return err
		}
	}

	hexmines.SetConfigPath(flagConfig)
	if flagDifficulty != "" {
		hexmines.SetDifficultyPreset(string(preset))
	}
	hexmines.SetBoardSize(flagColumns, flagRows)
	return nil
}

func newLogger(w io.Writer) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.Kitchen,
		Prefix:          "hexmines",
		Level:           logLevel,
	})
}

// startPreset is the difficulty preselected in menus: the --difficulty flag,
// otherwise the one from the loaded config.
func startPreset() config.DifficultyPreset {
	if flagDifficulty != "" {
		p, err := config.ParseDifficulty(flagDifficulty)
		if err == nil {
			return p
		}
	}
	cfg, err := config.LoadHexmines(flagConfig)
	if err != nil {
		return config.DifficultyEasy
	}
	return cfg.Preset()
}

// expandHome replaces a leading ~ with the user's home directory.
func expandHome(path string) string {
	if !strings.HasPrefix(path, "~") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[1:])
}

// interactiveLogger returns a logger writing to --log-file, since a
// full-screen program owns the terminal. The returned func closes the file.
func interactiveLogger() (*log.Logger, func()) {
	path := expandHome(flagLogFile)
	if path == "" {
		return newLogger(io.Discard), func() {}
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		logger.Warn("file logging disabled", "path", path, "error", err)
		return newLogger(io.Discard), func() {}
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		logger.Warn("file logging disabled", "path", path, "error", err)
		return newLogger(io.Discard), func() {}
	}
	return newLogger(f), func() { _ = f.Close() }
}

// openStore opens the scores database. Failures are logged and play
// continues without persistence.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "path", flagDBPath, "error", err)
		return nil
	}
	return store
}

// runtimeConfig builds the runtime config from the terminal size and flags.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}
