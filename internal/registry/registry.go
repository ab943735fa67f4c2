// Package registry maps variant ids to game factories. Variants register
// themselves from init(), so hosts create them by id alone.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/glimmer/internal/core"
)

// Game is what a host drives: it owns timing and input decoding, the game
// owns the grid it draws into the supplied display.
type Game interface {
	// ID returns a unique identifier for this game (e.g., "glimmer").
	// Used for CLI commands and score storage.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset initializes or resets the game state.
	// Called once at start and again when restarting after game over.
	// The RuntimeConfig provides grid dimensions and seed; dst is the display
	// the game draws into and reads back from.
	Reset(cfg core.RuntimeConfig, dst core.Display)

	// Step advances the simulation by one fixed tick.
	// Keys and host actions collected since the previous tick arrive in the frame.
	// Returns the result of this tick including current game state.
	Step(in core.InputFrame) core.StepResult

	// State returns the current game state (score, level, game over, paused).
	State() core.GameState
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

	titles[id] = f().Title()
}

// List returns information about all registered games, sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(factories))
	for id := range factories {
		result = append(result, GameInfo{ID: id, Title: titles[id]})
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
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

// ConfigReporter is implemented by games that load a config file and fall
// back to defaults when it cannot be used.
type ConfigReporter interface {
	ConfigError() error
}

// ConfigError returns the config problem g reports, or nil.
func ConfigError(g Game) error {
	if r, ok := g.(ConfigReporter); ok {
		return r.ConfigError()
	}
	return nil
}
