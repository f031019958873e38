// Package registry maps game IDs to factories.
// Board variants register themselves in init(), so the CLI and the SSH server
// can list and create them by ID.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/hexmines/internal/config"
	"github.com/vovakirdan/hexmines/internal/core"
)

// Game is implemented by every registered board variant.
// Implementations hold no terminal state; the platform maps keys and mouse
// events to an InputFrame and draws the Screen they render into.
type Game interface {
	// ID returns a unique identifier (e.g., "hexmines", "hexmines_pointy").
	// Used for CLI arguments and as the score table key.
	ID() string

	// Title returns a human-readable name for menus and the scoreboard.
	Title() string

	// Reset builds a fresh board.
	// Called at start and on restart. The seed in cfg fully determines mine placement.
	Reset(cfg core.RuntimeConfig)

	// Step advances one tick, applying cursor actions and pointer clicks.
	Step(in core.InputFrame) core.StepResult

	// Render draws the board into dst, which is cleared beforehand.
	Render(dst *core.Screen)

	// State returns score and end-of-game flags.
	State() core.GameState
}

// Resizable is implemented by games that can follow terminal size changes
// without being reset.
type Resizable interface {
	Resize(width, height int)
}

// DifficultySetter is implemented by games whose difficulty can be chosen
// per instance, so concurrent sessions do not share one setting.
type DifficultySetter interface {
	SetDifficulty(p config.DifficultyPreset)
}

// GameInfo contains metadata about a registered game.
type GameInfo struct {
	ID    string
	Title string
}

// Factory is a function that creates a new instance of a game.
type Factory func() Game

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a game factory to the registry.
// Typically called from a game's init() function.
// Panics if a game with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}

	factories[id] = f

	// Titles are cached so List does not build boards
	g := f()
	titles[id] = g.Title()
}

// List returns information about all registered games, sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(factories))
	for id := range factories {
		result = append(result, GameInfo{
			ID:    id,
			Title: titles[id],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a new game by its ID.
// Returns an error if the game ID is not registered.
func Create(id string) (Game, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}

	return f(), nil
}

// Exists checks if a game with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
