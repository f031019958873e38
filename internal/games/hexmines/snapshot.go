package hexmines

import "github.com/vovakirdan/hexmines/internal/hexgrid"

// GameStateType represents the current game state.
type GameStateType string

const (
	StateSetupFailed GameStateType = "setup_failed"
	StatePlaying     GameStateType = "playing"
	StatePaused      GameStateType = "paused"
	StateWon         GameStateType = "won"
	StateLost        GameStateType = "lost"
	StatePausedSmall GameStateType = "paused_small_window"
)

// Snapshot captures the game state for determinism testing.
type Snapshot struct {
	Tick     uint64
	Columns  int
	Rows     int
	Mines    int
	Revealed int
	Flags    int
	Cursor   hexgrid.Coord
	Score    int
	State    GameStateType
	// MineCoords lists mined cells in row-major order.
	MineCoords []hexgrid.Coord
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.field == nil:
		state = StateSetupFailed
	case g.tooSmall:
		state = StatePausedSmall
	case g.won:
		state = StateWon
	case g.gameOver:
		state = StateLost
	case g.paused:
		state = StatePaused
	}

	snap := Snapshot{
		Tick:    g.tick,
		Columns: g.cfg.Board.Columns,
		Rows:    g.cfg.Board.Rows,
		Cursor:  g.cursor,
		Score:   g.Score(),
		State:   state,
	}
	if g.field != nil {
		stats := g.field.Stats()
		snap.Mines = stats.Mines
		snap.Revealed = stats.Revealed
		snap.Flags = stats.Flags
		snap.MineCoords = g.field.Mines()
	}
	return snap
}
