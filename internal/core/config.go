package core

// RuntimeConfig is what the platform hands a board on Reset.
type RuntimeConfig struct {
	ScreenW  int // terminal columns
	ScreenH  int // terminal rows
	TickRate int // ticks per second; drives the clock shown in the HUD

	// Seed fixes mine placement. Zero asks the platform to pick one from
	// the current time.
	Seed int64
}

// DefaultConfig returns an 80x24 terminal at 30 ticks per second.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 30,
	}
}

// ElapsedSeconds converts a tick count to whole seconds.
func (c RuntimeConfig) ElapsedSeconds(ticks uint64) int {
	if c.TickRate <= 0 {
		return 0
	}
	return int(ticks / uint64(c.TickRate))
}

// GameState is the part of a board's state the platform acts on:
// saving scores, offering restart and back-to-menu.
type GameState struct {
	Score    int
	GameOver bool
	Won      bool // only meaningful once GameOver is set
	Paused   bool // also set while the window is too small to play
}

// StepResult is returned by Game.Step.
type StepResult struct {
	State GameState
}
