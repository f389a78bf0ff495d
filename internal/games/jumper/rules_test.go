package jumper

import (
	"testing"

	"github.com/vovakirdan/tui-jumper/internal/core"
)

// contactWorld puts the player at (100, 270) moving with vy and a single
// enemy of the given kind overlapping it from below.
func contactWorld(t *testing.T, kind EnemyKind, vy float64) *World {
	t.Helper()
	w := quietWorld(t, defaultTestConfig())
	w.player.X, w.player.Y, w.player.VY = 100, 270, vy
	w.enemies = []Enemy{{
		Body:  Body{X: 100, Y: 290, W: 24, H: 24},
		Kind:  kind,
		Alive: true,
	}}
	return w
}

func TestStompBeatsDamage(t *testing.T) {
	w := contactWorld(t, EnemyWalker, 3)

	w.resolveInteractions(1000)

	if w.enemies[0].Alive {
		t.Error("falling contact from above should stomp the enemy")
	}
	if w.lives != 3 {
		t.Errorf("lives = %d, want 3", w.lives)
	}
	if w.player.VY != -8 {
		t.Errorf("bounce VY = %v, want -8", w.player.VY)
	}
	if w.score != 100 {
		t.Errorf("score = %d, want 100", w.score)
	}
	if w.combo != 2 || w.comboUntil != 4000 {
		t.Errorf("combo = %d until %d, want 2 until 4000", w.combo, w.comboUntil)
	}
}

func TestComboMultipliesAndCaps(t *testing.T) {
	w := contactWorld(t, EnemyWalker, 3)
	w.combo = 5

	w.resolveInteractions(1000)

	if w.score != 500 {
		t.Errorf("score = %d, want 500", w.score)
	}
	if w.combo != 5 {
		t.Errorf("combo = %d, want capped at 5", w.combo)
	}
}

func TestComboExpires(t *testing.T) {
	w := quietWorld(t, defaultTestConfig())
	w.combo = 3
	w.comboUntil = 2000

	w.Tick(core.NewInputFrame(), 1999)
	if w.combo != 3 {
		t.Errorf("combo = %d before expiry, want 3", w.combo)
	}
	w.Tick(core.NewInputFrame(), 2000)
	if w.combo != 1 {
		t.Errorf("combo = %d after expiry, want 1", w.combo)
	}
}

func TestSideContactCostsLife(t *testing.T) {
	w := contactWorld(t, EnemyShell, 0)

	w.resolveInteractions(1000)

	if !w.enemies[0].Alive {
		t.Error("side contact should not kill the enemy")
	}
	if w.lives != 2 {
		t.Errorf("lives = %d, want 2", w.lives)
	}
	if w.invulnerableUntil != 3000 {
		t.Errorf("invulnerable until %d, want 3000", w.invulnerableUntil)
	}
	if w.player.X != 100 || w.player.Y != 400 || w.player.VY != 0 {
		t.Errorf("player should respawn at (100, 400), got (%v, %v)", w.player.X, w.player.Y)
	}
	if w.Phase() != PhasePlaying {
		t.Errorf("phase = %s, want playing", w.Phase())
	}
}

func TestSpikeCannotBeStomped(t *testing.T) {
	w := contactWorld(t, EnemySpike, 3)

	w.resolveInteractions(1000)

	if !w.enemies[0].Alive {
		t.Error("spikes cannot be stomped")
	}
	if w.lives != 2 {
		t.Errorf("lives = %d, want 2", w.lives)
	}
}

func TestInvulnerabilityBlocksDamage(t *testing.T) {
	tests := []struct {
		name  string
		setup func(w *World)
	}{
		{"after hit", func(w *World) { w.invulnerableUntil = 2000 }},
		{"invincible effect", func(w *World) { w.player.Effects.Apply(PowerInvincible, 0, 3000) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := contactWorld(t, EnemySpike, 0)
			tt.setup(w)
			w.resolveInteractions(1000)
			if w.lives != 3 {
				t.Errorf("lives = %d, want 3", w.lives)
			}
		})
	}
}

func TestLastLifeEndsSession(t *testing.T) {
	w := contactWorld(t, EnemyWalker, 0)
	w.lives = 1
	w.sounds = nil

	w.resolveInteractions(1000)

	if w.Phase() != PhaseGameOver {
		t.Fatalf("phase = %s, want game_over", w.Phase())
	}
	if w.lives != 0 {
		t.Errorf("lives = %d, want 0", w.lives)
	}
	if w.invulnerableUntil != 0 {
		t.Errorf("no invulnerability on the last life, got %d", w.invulnerableUntil)
	}
	if !hasSound(w.sounds, core.SoundLose) {
		t.Error("last life should raise the lose cue")
	}
}

func TestLifeLossStopsInteractions(t *testing.T) {
	w := contactWorld(t, EnemyWalker, 0)
	w.enemies = append(w.enemies, Enemy{Body: Body{X: 110, Y: 280, W: 24, H: 24}, Kind: EnemyWalker, Alive: true})
	w.coins = []Coin{{X: 105, Y: 275, Size: 16}}

	w.resolveInteractions(1000)

	if w.lives != 2 {
		t.Errorf("lives = %d, want exactly one life lost", w.lives)
	}
	if w.coins[0].Collected {
		t.Error("coins should not be collected on the tick a life is lost")
	}
}

func TestPowerUpPickup(t *testing.T) {
	w := quietWorld(t, defaultTestConfig())
	w.player.X, w.player.Y = 100, 270
	w.powerUps = []PowerUp{{X: 105, Y: 275, Size: 20, Kind: PowerMagnet, DurationMs: 4000}}

	w.resolveInteractions(1000)

	if !w.powerUps[0].Collected {
		t.Fatal("overlapping power-up should be collected")
	}
	if w.score != 200 {
		t.Errorf("score = %d, want 200", w.score)
	}
	if got := w.player.Effects.Remaining(PowerMagnet, 1000); got != 4000 {
		t.Errorf("magnet remaining = %d, want 4000", got)
	}
}

func TestMagnetPullsCoins(t *testing.T) {
	w := quietWorld(t, defaultTestConfig())
	w.player.X, w.player.Y = 100, 270
	w.player.Effects.Apply(PowerMagnet, 0, 4000)
	w.coins = []Coin{
		{X: 180, Y: 270, Size: 16}, // 80 px away
		{X: 400, Y: 270, Size: 16}, // out of range
	}

	w.resolveInteractions(1000)

	if w.coins[0].X != 172 {
		t.Errorf("near coin X = %v, want 172", w.coins[0].X)
	}
	if w.coins[1].X != 400 {
		t.Errorf("far coin moved to %v", w.coins[1].X)
	}
}

func TestEffectsApplyIsIdempotent(t *testing.T) {
	var e Effects
	e.Apply(PowerSpeed, 0, 5000)
	e.Apply(PowerSpeed, 1000, 5000)

	if len(e) != 1 {
		t.Fatalf("effects = %d, want 1", len(e))
	}
	if e[0].UntilMs != 6000 {
		t.Errorf("until = %d, want 6000 (timer restarted, not stacked)", e[0].UntilMs)
	}

	e.Apply(PowerJump, 1000, 5000)
	expired := e.Expire(6000)
	if len(expired) != 2 || len(e) != 0 {
		t.Errorf("expired %v, left %v", expired, e)
	}
}
