package beepy

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-jumper/internal/core"
	"github.com/vovakirdan/tui-jumper/internal/registry"
)

func newTestGame(t *testing.T) *Game {
	t.Helper()
	g := New()
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1})
	return g
}

func TestRegistered(t *testing.T) {
	if !registry.Exists("beepy") {
		t.Fatal("beepy should register itself")
	}
}

func TestNoteKeysEmitNotes(t *testing.T) {
	for i := 0; i < 7; i++ {
		g := newTestGame(t)
		in := core.NewInputFrame()
		in.Set(core.NoteAction(i))

		res := g.Step(in)
		if len(res.Sounds) != 1 {
			t.Fatalf("key %d: sounds = %v", i+1, res.Sounds)
		}
		if s := res.Sounds[0]; s.Kind != core.SoundNote || s.Note != i {
			t.Errorf("key %d: got %+v", i+1, s)
		}
		if !g.Playing() {
			t.Errorf("key %d: should be playing", i+1)
		}
	}
}

func TestNoteStopsAfterDuration(t *testing.T) {
	g := newTestGame(t)
	in := core.NewInputFrame()
	in.Set(core.ActionNote3)
	g.Step(in)

	// 83 ms at 60 ticks/s is 4 ticks.
	for i := 0; i < 3; i++ {
		g.Step(core.NewInputFrame())
	}
	if !g.Playing() {
		t.Fatal("note ended early")
	}
	g.Step(core.NewInputFrame())
	if g.Playing() {
		t.Fatal("note should have ended")
	}
	if g.State().Score != 1 {
		t.Errorf("score = %d, want 1", g.State().Score)
	}
}

func TestSilentTickEmitsNothing(t *testing.T) {
	g := newTestGame(t)
	res := g.Step(core.NewInputFrame())
	if len(res.Sounds) != 0 {
		t.Errorf("sounds = %v", res.Sounds)
	}
	if res.State.GameOver {
		t.Error("the toy never ends")
	}
}

func TestPromptBlinks(t *testing.T) {
	g := newTestGame(t)
	screen := core.NewScreen(80, 24)

	g.Render(screen)
	if !strings.Contains(screen.String(), Prompt) {
		t.Error("prompt should show on the first half-period")
	}

	for i := 0; i < 30; i++ {
		g.Step(core.NewInputFrame())
	}
	g.Render(screen)
	if strings.Contains(screen.String(), Prompt) {
		t.Error("prompt should be hidden on the second half-period")
	}
}

func TestRingsWhilePlaying(t *testing.T) {
	g := newTestGame(t)
	in := core.NewInputFrame()
	in.Set(core.ActionNote1)
	g.Step(in)

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	out := screen.String()
	if strings.Contains(out, Prompt) {
		t.Error("prompt should be replaced by rings")
	}
	if !strings.ContainsRune(out, RingChar) {
		t.Error("rings not drawn")
	}
	if !strings.Contains(out, "220.00 Hz") {
		t.Error("note label missing")
	}
}

func TestPauseIgnoresNotes(t *testing.T) {
	g := newTestGame(t)
	pause := core.NewInputFrame()
	pause.Set(core.ActionPause)
	g.Step(pause)

	in := core.NewInputFrame()
	in.Set(core.ActionNote1)
	if res := g.Step(in); len(res.Sounds) != 0 {
		t.Error("notes should not play while paused")
	}
}
