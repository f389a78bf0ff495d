// Package jumper implements a 2D platformer on a procedurally generated,
// always-reachable level. The player collects every coin before the
// countdown runs out while avoiding or stomping patrolling enemies.
package jumper

import (
	"fmt"

	"github.com/vovakirdan/tui-jumper/internal/config"
	"github.com/vovakirdan/tui-jumper/internal/core"
	"github.com/vovakirdan/tui-jumper/internal/registry"
)

// Game adapts a World to the registry.Game interface. It owns the session
// clock, which only advances while unpaused.
type Game struct {
	world   *World
	runtime core.RuntimeConfig
	cfg     config.JumperConfig
	pending *config.JumperConfig // Reloaded config waiting for the next regenerate
	paused  bool
	ticks   int64
	now     int64
}

// configPath stores the custom config path set via CLI
var configPath string
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names fall back
// to the config default.
func SetDifficultyPreset(preset string) {
	p, ok := config.ParsePreset(preset)
	if !ok || preset == "" {
		difficultyPreset = ""
		return
	}
	difficultyPreset = p
}

// New creates a new jumper game instance.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "jumper"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Jumper"
}

// Summary is the one-line description shown in listings.
func (g *Game) Summary() string {
	return "Collect every coin on a generated level before the clock runs out."
}

// Reset loads config and starts a fresh session on a new level.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	if runtime.TickRate <= 0 {
		runtime.TickRate = core.DefaultConfig().TickRate
	}
	g.runtime = runtime
	g.cfg = loadConfig()
	g.pending = nil
	g.paused = false
	g.ticks = 0
	g.now = 0
	g.world = NewWorld(g.cfg, core.NewSimpleRNG(runtime.Seed), 0)
}

func loadConfig() config.JumperConfig {
	cfg, err := config.LoadJumper(configPath)
	if err != nil {
		cfg = config.DefaultJumperConfig()
	}
	if difficultyPreset != "" {
		config.ApplyJumperPreset(&cfg, difficultyPreset)
	}
	return cfg
}

// Reload re-reads the config file. The result is applied at the next
// regenerate so a level never changes rules mid-run.
func (g *Game) Reload() error {
	cfg, err := config.LoadJumper(configPath)
	if err != nil {
		return fmt.Errorf("jumper: reload: %w", err)
	}
	if difficultyPreset != "" {
		config.ApplyJumperPreset(&cfg, difficultyPreset)
	}
	g.pending = &cfg
	return nil
}

// Step advances the session by one tick. The pause toggle freezes the clock.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionPause) && !g.world.Phase().Terminal() {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.ticks++
	g.now = g.ticks * 1000 / int64(g.runtime.TickRate)

	if g.pending != nil && g.regenerates(in) {
		g.cfg = *g.pending
		g.pending = nil
		g.world.Reconfigure(g.cfg)
	}

	sounds := g.world.Tick(in, g.now)
	return core.StepResult{State: g.State(), Sounds: sounds}
}

func (g *Game) regenerates(in core.InputFrame) bool {
	return in.Has(core.ActionRegenerate) ||
		(in.Has(core.ActionConfirm) && g.world.Phase().Terminal())
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.world == nil {
		return core.GameState{}
	}
	phase := g.world.Phase()
	return core.GameState{
		Score:    g.world.Score(),
		GameOver: phase.Terminal(),
		Won:      phase == PhaseWon,
		Paused:   g.paused,
		FinishMs: g.world.FinishMs(),
	}
}

// World exposes the underlying session for inspection.
func (g *Game) World() *World {
	return g.world
}

// Register the game with the registry
func init() {
	registry.Register("jumper", func() registry.Game {
		return New()
	})
}
