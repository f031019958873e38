package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/hexmines/internal/core"
	"github.com/vovakirdan/hexmines/internal/games/hexmines"
	"github.com/vovakirdan/hexmines/internal/registry"
	"github.com/vovakirdan/hexmines/internal/storage"
)

// summarizer is implemented by games that can describe a finished board.
type summarizer interface {
	Summary() hexmines.Summary
}

// Model is the Bubble Tea model that runs one game.
// It is used directly by Run and embedded in SSH sessions.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	logger     *log.Logger
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	keyMapper  *KeyMapper
	tickLoop   uint64
	standalone bool // quit the program instead of reporting BackToMenu
	quitting   bool
	backToMenu bool
	saved      bool // Whether score and result have been saved for current game over
}

// NewModel creates a new Bubble Tea model for the given game.
// A nil logger discards log output.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		logger:     logger,
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		keyMapper:  NewKeyMapper(),
		tickLoop:   nextTickLoop(),
	}
}

// Init starts the game and the tick loop.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.logger.Debug("game started", "game", m.game.ID(), "seed", m.config.Seed)
	return tickCmd(m.tickLoop, m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		if click, ok := m.keyMapper.MapMouse(msg); ok {
			m.inputFrame.AddClick(click)
		}
		return m, nil

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		if msg.Loop != m.tickLoop {
			return m, nil
		}
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}

	// Back to menu (B or Esc) only when the board is not in play
	if m.inputFrame.Has(core.ActionBack) && (m.gameState.GameOver || m.gameState.Paused) {
		m.backToMenu = true
		if m.standalone {
			return m, tea.Quit
		}
	}

	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	// Boards survive resizes; other games restart with the new size
	if r, ok := m.game.(registry.Resizable); ok {
		r.Resize(msg.Width, msg.Height)
	} else if !m.gameState.GameOver {
		m.game.Reset(m.config)
	}

	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.backToMenu {
		return m, nil
	}

	if m.inputFrame.Has(core.ActionRestart) && m.gameState.GameOver {
		m.config.Seed = time.Now().UnixNano()
		m.game.Reset(m.config)
		m.gameState = m.game.State()
		m.saved = false
		m.inputFrame.Clear()
		m.logger.Debug("game restarted", "game", m.game.ID(), "seed", m.config.Seed)
		return m, tickCmd(m.tickLoop, m.config.TickRate)
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	if m.gameState.GameOver && !m.saved {
		m.recordGameOver()
		m.saved = true
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.tickLoop, m.config.TickRate)
}

// recordGameOver logs the outcome and persists score and result.
// Storage failures are logged and do not interrupt play.
func (m Model) recordGameOver() {
	m.logger.Info("game over", "game", m.game.ID(), "won", m.gameState.Won, "score", m.gameState.Score)
	if m.store == nil {
		return
	}

	if m.gameState.Score > 0 {
		if _, err := m.store.SaveScore(m.game.ID(), m.gameState.Score); err != nil {
			m.logger.Warn("could not save score", "game", m.game.ID(), "error", err)
		}
	}

	s, ok := m.game.(summarizer)
	if !ok {
		return
	}
	sum := s.Summary()
	id, err := m.store.SaveResult(storage.GameResult{
		GameID:       m.game.ID(),
		Difficulty:   sum.Difficulty,
		Columns:      sum.Columns,
		Rows:         sum.Rows,
		Mines:        sum.Mines,
		Won:          sum.Won,
		Revealed:     sum.Revealed,
		Score:        sum.Score,
		DurationSecs: sum.DurationSecs,
	})
	if err != nil {
		m.logger.Warn("could not save result", "game", m.game.ID(), "error", err)
		return
	}
	m.logger.Debug("result saved", "id", id)
}

// saveScreenshot writes the current screen as plain text under ~/.hexmines/screenshots.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("screenshot skipped", "error", err)
		return
	}
	dir := filepath.Join(home, ".hexmines", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot skipped", "error", err)
		return
	}

	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), time.Now().Format("20060102_150405"))
	path := filepath.Join(dir, filename)
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "path", path, "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Run starts the Bubble Tea program for a single game.
// Returns true if the player asked to go back to the menu.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) (backToMenu bool, err error) {
	model := NewModel(game, store, cfg, logger)
	model.standalone = true

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	final, err := p.Run()
	if err != nil {
		return false, err
	}
	m, ok := final.(Model)
	return ok && m.BackToMenu(), nil
}
