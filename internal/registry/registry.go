// Package registry maps game IDs to factories. Each game package registers
// itself from init, so the command layer can list and start games by name
// without importing them directly.
package registry

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/vovakirdan/tui-jumper/internal/core"
)

// Game is what the runtime drives. Implementations are plain simulations:
// they never see the terminal, the clock or the audio device. The runtime
// feeds them abstract input once per tick and draws their screen buffer.
type Game interface {
	// ID is the stable name used on the command line and in the score
	// table, e.g. "jumper".
	ID() string
	// Title is the display name.
	Title() string

	// Reset starts a fresh session sized for cfg.
	Reset(cfg core.RuntimeConfig)
	// Step advances one fixed tick.
	Step(in core.InputFrame) core.StepResult
	// Render draws the current frame into dst.
	Render(dst *core.Screen)
	// State reports score and end-of-run status.
	State() core.GameState
}

// Reloader is implemented by games whose tuning can be re-read from disk
// while running. The game decides when new values take effect.
type Reloader interface {
	Reload() error
}

// Describer is implemented by games that offer a one-line summary for
// listings.
type Describer interface {
	Summary() string
}

// ErrUnknownGame is returned by Create for IDs nobody registered.
var ErrUnknownGame = errors.New("registry: unknown game")

// GameInfo describes a registered game without instantiating it.
type GameInfo struct {
	ID      string
	Title   string
	Summary string
}

// Factory builds a fresh game instance.
type Factory func() Game

type entry struct {
	info  GameInfo
	build Factory
}

var (
	mu      sync.RWMutex
	entries = map[string]entry{}
)

// Register adds a factory under id. Registering the same id twice panics.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, dup := entries[id]; dup {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}

	// One throwaway instance supplies the display metadata.
	probe := f()
	info := GameInfo{ID: id, Title: probe.Title()}
	if d, ok := probe.(Describer); ok {
		info.Summary = d.Summary()
	}
	entries[id] = entry{info: info, build: f}
}

// List returns every registered game ordered by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	out := make([]GameInfo, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.info)
	}
	slices.SortFunc(out, func(a, b GameInfo) int {
		return strings.Compare(a.ID, b.ID)
	})
	return out
}

// Create returns a new instance of game id.
func Create(id string) (Game, error) {
	mu.RLock()
	e, ok := entries[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownGame, id)
	}
	return e.build(), nil
}

// Exists reports whether id is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()
	_, ok := entries[id]
	return ok
}
