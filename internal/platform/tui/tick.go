// Package tui runs hexmines games in a terminal with Bubble Tea.
// It maps keys and mouse clicks to game input, drives the fixed tick loop,
// and serves the same flow over SSH.
package tui

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick.
// Loop identifies the model that scheduled it, so a model replaced in the
// same program never receives a stale loop's ticks.
type TickMsg struct {
	Loop uint64
	Time time.Time
}

var tickLoops atomic.Uint64

// nextTickLoop returns a fresh tick loop identifier.
func nextTickLoop() uint64 {
	return tickLoops.Add(1)
}

// tickCmd schedules the next tick of a loop at the given rate.
func tickCmd(loop uint64, tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 30
	}
	return tea.Tick(time.Second/time.Duration(tickRate), func(t time.Time) tea.Msg {
		return TickMsg{Loop: loop, Time: t}
	})
}
