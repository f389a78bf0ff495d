// Package beepy implements a tiny sound toy: number keys 1 to 7 play a
// note each, and rings pulse on screen while a note sounds.
package beepy

import (
	"github.com/vovakirdan/tui-jumper/internal/config"
	"github.com/vovakirdan/tui-jumper/internal/core"
	"github.com/vovakirdan/tui-jumper/internal/registry"
)

// Prompt is shown between notes.
const Prompt = "Press 1 to 7 to beep!"

// Game implements the sound toy.
type Game struct {
	runtime      core.RuntimeConfig
	cfg          config.BeepyConfig
	tickCount    int
	playingUntil int // Tick at which the current note stops sounding
	lastNote     int
	played       int // Notes played this session, reported as score
	paused       bool
}

// configPath stores the custom config path set via CLI
var configPath string

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// New creates a new sound toy instance.
func New() *Game {
	return &Game{lastNote: -1}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "beepy"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Beepy"
}

// Summary is the one-line description shown in listings.
func (g *Game) Summary() string {
	return "Play tones on keys 1 to 7."
}

// Reset initializes the toy.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	if runtime.TickRate <= 0 {
		runtime.TickRate = core.DefaultConfig().TickRate
	}
	g.runtime = runtime

	cfg, err := config.LoadBeepy(configPath)
	if err != nil {
		cfg = config.DefaultBeepyConfig()
	}
	g.cfg = cfg

	g.tickCount = 0
	g.playingUntil = 0
	g.lastNote = -1
	g.played = 0
	g.paused = false
}

// Step advances one tick. A note key edge plays that note and restarts the
// ring animation. When several note keys arrive on one tick the highest
// numbered wins, the way a single channel would.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.tickCount++

	note := -1
	for i := 0; i < len(g.cfg.Notes) && i < 7; i++ {
		if in.Has(core.NoteAction(i)) {
			note = i
		}
	}

	var sounds []core.Sound
	if note >= 0 {
		g.lastNote = note
		g.played++
		g.playingUntil = g.tickCount + g.noteTicks()
		sounds = append(sounds, core.Sound{Kind: core.SoundNote, Note: note})
	}

	return core.StepResult{State: g.State(), Sounds: sounds}
}

// noteTicks converts the note length to ticks, at least one.
func (g *Game) noteTicks() int {
	n := int(g.cfg.NoteMs) * g.runtime.TickRate / 1000
	if n < 1 {
		return 1
	}
	return n
}

// Playing reports whether a note is sounding.
func (g *Game) Playing() bool {
	return g.tickCount < g.playingUntil
}

// Notes returns the configured note frequencies in Hz.
func (g *Game) Notes() []float64 {
	return g.cfg.Notes
}

// NoteDurationMs returns the configured note length.
func (g *Game) NoteDurationMs() int {
	return int(g.cfg.NoteMs)
}

// State returns the current game state. The toy never ends on its own.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:  g.played,
		Paused: g.paused,
	}
}

// Register the game with the registry
func init() {
	registry.Register("beepy", func() registry.Game {
		return New()
	})
}
