// Package hexmines implements minesweeper on a hexagonal grid.
package hexmines

import (
	"math/rand"

	"github.com/vovakirdan/hexmines/internal/config"
	"github.com/vovakirdan/hexmines/internal/core"
	"github.com/vovakirdan/hexmines/internal/hexgrid"
	"github.com/vovakirdan/hexmines/internal/minefield"
	"github.com/vovakirdan/hexmines/internal/registry"
)

// Game implements hexagonal minesweeper.
type Game struct {
	forcePointy bool
	rng         *rand.Rand
	tick        uint64
	tickRate    int

	cfg        config.HexminesConfig
	preset     config.DifficultyPreset
	difficulty config.DifficultyPreset // per-instance override, wins over the package preset

	// field is nil until setup has fully completed; input is ignored before that.
	field    *minefield.Minefield
	setupErr error
	cursor   hexgrid.Coord
	lastHit  hexgrid.Coord
	layout   layout

	// Screen dimensions
	screenW int
	screenH int

	// Game state flags
	gameOver bool
	won      bool
	paused   bool
	tooSmall bool
	endTick  uint64
}

// Package-level variables for config
var (
	configPath       string
	difficultyPreset config.DifficultyPreset
	boardColumns     int
	boardRows        int
)

// SetConfigPath sets a custom config file path.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset for the next game.
// Unknown names are ignored and the config's difficulty is used.
func SetDifficultyPreset(preset string) {
	p, err := config.ParseDifficulty(preset)
	if err != nil || preset == "" {
		difficultyPreset = ""
		return
	}
	difficultyPreset = p
}

// SetBoardSize overrides the configured board extent. Zero keeps the config value.
func SetBoardSize(columns, rows int) {
	boardColumns = columns
	boardRows = rows
}

// New creates a game using the configured orientation (flat by default).
func New() *Game {
	return &Game{}
}

// NewPointy creates a game that always uses the pointy-top layout.
func NewPointy() *Game {
	return &Game{forcePointy: true}
}

func init() {
	registry.Register("hexmines", func() registry.Game {
		return New()
	})
	registry.Register("hexmines_pointy", func() registry.Game {
		return NewPointy()
	})
}

// SetDifficulty overrides the difficulty for this instance on the next Reset.
// An empty preset falls back to the package preset and then the config file.
func (g *Game) SetDifficulty(p config.DifficultyPreset) {
	g.difficulty = p
}

// ID returns the game identifier.
func (g *Game) ID() string {
	if g.forcePointy {
		return "hexmines_pointy"
	}
	return "hexmines"
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.forcePointy {
		return "Hex Mines (Pointy)"
	}
	return "Hex Mines"
}

// Reset builds a new board. Geometry is computed, mines are generated and the
// optional opening reveal is applied before the field is attached to the game,
// so no click can reach a cell without a neighbor count.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.tick = 0
	g.endTick = 0
	g.tickRate = cfg.TickRate
	if g.tickRate <= 0 {
		g.tickRate = core.DefaultConfig().TickRate
	}
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.gameOver = false
	g.won = false
	g.paused = false
	g.field = nil
	g.setupErr = nil

	g.cfg = loadConfig(g.difficulty)
	g.preset = g.cfg.Preset()

	orientation := g.cfg.Orientation()
	if g.forcePointy {
		orientation = hexgrid.Pointy
	}

	columns, rows := g.cfg.Board.Columns, g.cfg.Board.Rows
	g.layout = newLayout(columns, rows, orientation)

	field, err := minefield.Initialize(g.rng, columns, rows, g.preset.Density(), orientation)
	if err != nil {
		g.setupErr = err
		g.checkScreenSize()
		return
	}

	g.cursor = hexgrid.Coord{Col: columns / 2, Row: rows / 2}
	if g.cfg.AutoOpen {
		if start, ok := field.FirstZero(g.rng); ok {
			field.RevealFrom(start)
			g.cursor = start
		}
	}

	g.attach(field)
	g.checkScreenSize()
}

// attach makes a fully built field the active board.
func (g *Game) attach(field *minefield.Minefield) {
	field.SetObserver(g.onCellChanged)
	g.field = field
	g.gameOver = false
	g.won = false
	g.updateOutcome()
}

// loadConfig resolves the config file and applies package-level overrides,
// then the instance's difficulty. A broken config file falls back to the defaults.
func loadConfig(difficulty config.DifficultyPreset) config.HexminesConfig {
	cfg, err := config.LoadHexmines(configPath)
	if err != nil {
		cfg = config.DefaultHexminesConfig()
	}
	config.ApplyPreset(&cfg, difficultyPreset)
	config.ApplyPreset(&cfg, difficulty)
	config.ApplyBoardSize(&cfg, boardColumns, boardRows)
	cfg.Board.Columns = core.Clamp(cfg.Board.Columns, config.MinBoardSide, config.MaxBoardSide)
	cfg.Board.Rows = core.Clamp(cfg.Board.Rows, config.MinBoardSide, config.MaxBoardSide)
	return cfg
}

// onCellChanged tracks the most recently changed cell for highlighting.
func (g *Game) onCellChanged(c hexgrid.Coord, _ minefield.Appearance) {
	g.lastHit = c
}

// MinScreenSize returns the smallest screen that fits the board, HUD and footer.
func (g *Game) MinScreenSize() (width, height int) {
	w, h := g.layout.size()
	return w + 2, h + hudHeight + footerHeight
}

// checkScreenSize checks if the screen is large enough for board and HUD.
func (g *Game) checkScreenSize() {
	minW, minH := g.MinScreenSize()
	g.tooSmall = g.screenW < minW || g.screenH < minH
	w, _ := g.layout.size()
	g.layout.originX = (g.screenW - w) / 2
	if g.layout.originX < 0 {
		g.layout.originX = 0
	}
	g.layout.originY = hudHeight
}

// Resize re-centers the board for new screen dimensions without touching
// the minefield.
func (g *Game) Resize(width, height int) {
	g.screenW = width
	g.screenH = height
	g.checkScreenSize()
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	// Setup not finished or failed: nothing to route input to
	if g.field == nil || g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) && !g.gameOver {
		g.paused = !g.paused
	}

	if g.paused || g.gameOver {
		return core.StepResult{State: g.State()}
	}

	g.moveCursor(in)

	if in.Has(core.ActionReveal) {
		g.apply(g.cursor, minefield.ButtonPrimary)
	}
	if in.Has(core.ActionMark) {
		g.apply(g.cursor, minefield.ButtonSecondary)
	}

	for _, click := range in.Clicks {
		if g.gameOver {
			break
		}
		c, ok := g.layout.hit(click.X, click.Y)
		if !ok {
			continue
		}
		g.cursor = c
		g.apply(c, pointerButton(click.Button))
	}

	return core.StepResult{State: g.State()}
}

// moveCursor applies directional actions, clamped to the board.
func (g *Game) moveCursor(in core.InputFrame) {
	switch {
	case in.Has(core.ActionUp):
		g.cursor.Row--
	case in.Has(core.ActionDown):
		g.cursor.Row++
	case in.Has(core.ActionLeft):
		g.cursor.Col--
	case in.Has(core.ActionRight):
		g.cursor.Col++
	}
	g.cursor.Col = core.Clamp(g.cursor.Col, 0, g.field.Columns()-1)
	g.cursor.Row = core.Clamp(g.cursor.Row, 0, g.field.Rows()-1)
}

// apply dispatches a click to the field and checks for game end.
func (g *Game) apply(c hexgrid.Coord, b minefield.Button) {
	res := minefield.Dispatch(g.field, c, b)
	if res.Changed() {
		g.updateOutcome()
	}
}

// updateOutcome ends the game on explosion or a cleared board.
func (g *Game) updateOutcome() {
	if g.field == nil || g.gameOver {
		return
	}
	switch {
	case g.field.Lost():
		g.gameOver = true
	case g.field.Won():
		g.gameOver = true
		g.won = true
	}
	if g.gameOver {
		g.endTick = g.tick
	}
}

// pointerButton maps a platform pointer button to a minefield button.
func pointerButton(b core.PointerButton) minefield.Button {
	switch b {
	case core.PointerSecondary:
		return minefield.ButtonSecondary
	case core.PointerMiddle:
		return minefield.ButtonMiddle
	default:
		return minefield.ButtonPrimary
	}
}

// Score returns revealed safe cells times points per cell, scaled by difficulty,
// plus the win bonus once the board is cleared.
func (g *Game) Score() int {
	if g.field == nil {
		return 0
	}
	mult := g.preset.ScoreMultiplier()
	score := g.field.Stats().Revealed * g.cfg.Scoring.PointsPerCell * mult
	if g.won {
		score += g.cfg.Scoring.WinBonus * mult
	}
	return score
}

// ElapsedSeconds returns play time, frozen at game over.
func (g *Game) ElapsedSeconds() int {
	end := g.tick
	if g.gameOver {
		end = g.endTick
	}
	return core.RuntimeConfig{TickRate: g.tickRate}.ElapsedSeconds(end)
}

// Field returns the active minefield, or nil before setup completes.
func (g *Game) Field() *minefield.Minefield {
	return g.field
}

// SetupError returns the error that aborted board generation, if any.
func (g *Game) SetupError() error {
	return g.setupErr
}

// Difficulty returns the difficulty of the current board.
func (g *Game) Difficulty() config.DifficultyPreset {
	return g.preset
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.Score(),
		GameOver: g.gameOver,
		Won:      g.won,
		Paused:   g.paused || g.tooSmall,
	}
}

// Summary describes a finished or in-progress game for result records.
type Summary struct {
	Difficulty   string
	Columns      int
	Rows         int
	Mines        int
	Revealed     int
	Won          bool
	Score        int
	DurationSecs int
}

// Summary returns the result record for the current board.
func (g *Game) Summary() Summary {
	s := Summary{
		Difficulty:   string(g.preset),
		Columns:      g.cfg.Board.Columns,
		Rows:         g.cfg.Board.Rows,
		Won:          g.won,
		Score:        g.Score(),
		DurationSecs: g.ElapsedSeconds(),
	}
	if g.field != nil {
		stats := g.field.Stats()
		s.Mines = stats.Mines
		s.Revealed = stats.Revealed
	}
	return s
}
