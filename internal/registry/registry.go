// Package registry keeps the catalog of playable games. Game packages
// self-register from init, so importing a game package is all it takes to
// make it playable.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"gameforge/internal/core"
)

// Game is the contract every game implements. The platform drives the
// loop: Reset once, then Step/Render each tick.
type Game interface {
	// ID returns the stable identifier used for registration, CLI
	// selection and score storage.
	ID() string

	// Title returns the human-readable name shown in menus.
	Title() string

	// Reset initializes or restarts the game with the given runtime
	// configuration.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by one tick.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current state into the screen buffer.
	Render(dst *core.Screen)

	// State returns the current platform-visible state.
	State() core.GameState
}

// Factory creates a fresh game instance.
type Factory func() Game

// Info describes a registered game.
type Info struct {
	ID    string
	Title string
}

var (
	mu        sync.RWMutex
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
)

// Register adds a game factory under the given ID. It panics on duplicate
// registration, which indicates a programming error.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q registered twice", id))
	}
	factories[id] = f
	titles[id] = f().Title()
}

// Create instantiates the game with the given ID.
func Create(id string) (Game, error) {
	mu.RLock()
	f, ok := factories[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}
	return f(), nil
}

// Exists reports whether a game with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}

// List returns all registered games sorted by ID.
func List() []Info {
	mu.RLock()
	defer mu.RUnlock()

	infos := make([]Info, 0, len(factories))
	for id := range factories {
		infos = append(infos, Info{ID: id, Title: titles[id]})
	}
	sort.Slice(infos, func(i, j int) bool { return infos[i].ID < infos[j].ID })
	return infos
}

// IDs returns all registered game IDs sorted alphabetically.
func IDs() []string {
	infos := List()
	ids := make([]string, len(infos))
	for i, info := range infos {
		ids[i] = info.ID
	}
	return ids
}
