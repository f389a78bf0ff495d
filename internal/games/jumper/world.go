package jumper

import (
	"github.com/vovakirdan/tui-jumper/internal/config"
	"github.com/vovakirdan/tui-jumper/internal/core"
)

// World is one play session. It owns every entity collection and is only
// mutated through Tick.
type World struct {
	cfg   config.JumperConfig
	phys  Physics
	boost PlayerBoost
	gen   *Generator
	diff  *config.DifficultyManager
	fx    *core.SimpleRNG // Cosmetic randomness, kept apart from level generation

	platforms []Platform
	enemies   []Enemy
	coins     []Coin
	powerUps  []PowerUp
	particles []Particle
	player    Player

	score             int
	lives             int
	combo             int
	comboUntil        int64
	invulnerableUntil int64
	startedAt         int64
	countdownStart    int64
	warned            bool
	phase             Phase
	finishMs          int64
	shakeUntil        int64
	ticks             int
	now               int64

	sounds []core.Sound
}

// NewWorld generates a first level and starts a session at clock value now.
func NewWorld(cfg config.JumperConfig, rng core.Rand, now int64) *World {
	w := &World{
		fx: core.NewSimpleRNG(int64(rng.Intn(1 << 30))),
	}
	w.configure(cfg, rng)
	w.newSession(now)
	w.loadLevel()
	w.emit(core.SoundMusic)
	return w
}

func (w *World) configure(cfg config.JumperConfig, rng core.Rand) {
	w.cfg = cfg
	w.phys = PhysicsFrom(cfg.Physics)
	w.boost = PlayerBoost{Speed: cfg.Player.SpeedBoost, Jump: cfg.Player.JumpBoost}
	w.gen = NewGenerator(cfg, rng)
	w.diff = config.NewDifficultyManager(cfg.Difficulty)
}

// Reconfigure swaps in a new configuration. It takes effect for physics
// immediately and for layout at the next regenerate.
func (w *World) Reconfigure(cfg config.JumperConfig) {
	w.configure(cfg, w.gen.rng)
}

func (w *World) newSession(now int64) {
	w.score = 0
	w.lives = w.cfg.Gameplay.Lives
	w.combo = 1
	w.comboUntil = 0
	w.startedAt = now
	w.countdownStart = now
	w.warned = false
	w.phase = PhasePlaying
	w.finishMs = 0
	w.ticks = 0
	w.now = now
	w.player.Effects = nil
}

func (w *World) loadLevel() {
	level := w.gen.Generate()
	w.platforms = level.Platforms
	w.enemies = level.Enemies
	w.coins = level.Coins
	w.powerUps = level.PowerUps
	w.particles = nil
	w.respawn()
	w.invulnerableUntil = 0
	w.shakeUntil = 0
}

func (w *World) respawn() {
	pc := w.cfg.Player
	effects := w.player.Effects
	w.player = Player{
		Body:        Body{X: pc.SpawnX, Y: pc.SpawnY, W: pc.Width, H: pc.Height},
		FacingRight: true,
		Effects:     effects,
	}
}

// Regenerate builds a fresh level. From a finished run it also starts a
// new session: score, lives, combo and timers are reset.
func (w *World) Regenerate(now int64) {
	w.now = now
	if w.phase.Terminal() {
		w.newSession(now)
	}
	w.loadLevel()
}

// Tick advances the world by one fixed step. now is the session clock in
// milliseconds. Returned sounds are the cues raised since the last Tick.
func (w *World) Tick(in core.InputFrame, now int64) []core.Sound {
	w.advance(in, now)
	out := w.sounds
	w.sounds = nil
	return out
}

func (w *World) advance(in core.InputFrame, now int64) {
	switch {
	case in.Has(core.ActionRegenerate):
		w.Regenerate(now)
	case in.Has(core.ActionConfirm) && w.phase.Terminal():
		w.Regenerate(now)
	}

	if w.phase.Terminal() {
		return
	}
	w.now = now

	remaining := w.Remaining(now)
	if !w.warned && remaining <= w.cfg.Gameplay.WarningMs {
		w.warned = true
		w.emit(core.SoundWarning)
	}
	if remaining <= 0 {
		w.phase = PhaseGameOver
		w.emit(core.SoundLose)
		return
	}

	w.ticks++
	bounds := w.bounds()

	stepPlayer(&w.player, in, w.phys, w.boost, w.platforms, bounds, now)

	if w.comboUntil > 0 && now >= w.comboUntil {
		w.combo = 1
		w.comboUntil = 0
	}

	for i := range w.enemies {
		e := &w.enemies[i]
		speed := w.diff.Speed(e.Kind.PatrolSpeed(), w.score, w.ticks)
		stepEnemy(e, w.phys, speed, w.cfg.Enemies.LookAhead, w.platforms, bounds)
	}

	for i := range w.coins {
		w.coins[i].Spin = (w.coins[i].Spin + 5) % 360
	}
	for i := range w.powerUps {
		w.powerUps[i].Phase += 0.05
	}
	w.stepParticles()

	w.resolveInteractions(now)

	if w.phase == PhasePlaying && w.allCoinsCollected() {
		w.phase = PhaseWon
		w.finishMs = now - w.startedAt
		w.emit(core.SoundWin)
	}
}

// Remaining returns milliseconds left on the countdown, never negative.
func (w *World) Remaining(now int64) int64 {
	left := w.cfg.Gameplay.CountdownMs - (now - w.countdownStart)
	if left < 0 {
		return 0
	}
	return left
}

// Phase returns the session phase.
func (w *World) Phase() Phase {
	return w.phase
}

// Score returns the current score.
func (w *World) Score() int {
	return w.score
}

// FinishMs returns the completion time of a won run.
func (w *World) FinishMs() int64 {
	return w.finishMs
}

func (w *World) bounds() Bounds {
	return Bounds{W: w.cfg.Screen.Width, H: w.cfg.Screen.Height}
}

func (w *World) allCoinsCollected() bool {
	for _, c := range w.coins {
		if !c.Collected {
			return false
		}
	}
	return true
}

func (w *World) emit(kind core.SoundKind) {
	w.sounds = append(w.sounds, core.Sound{Kind: kind})
}

func (w *World) stepParticles() {
	alive := w.particles[:0]
	for _, p := range w.particles {
		p.X += p.VX
		p.Y += p.VY
		p.VY += 0.1
		p.Life--
		if p.Life > 0 {
			alive = append(alive, p)
		}
	}
	w.particles = alive
}

func (w *World) burst(x, y float64, color core.Color, count int) {
	for i := 0; i < count; i++ {
		w.particles = append(w.particles, Particle{
			X:       x,
			Y:       y,
			VX:      core.RandUniform(w.fx, -2, 2),
			VY:      core.RandUniform(w.fx, -3, -1),
			Life:    60,
			MaxLife: 60,
			Color:   color,
		})
	}
}

func (w *World) shake(now, durationMs int64) {
	if until := now + durationMs; until > w.shakeUntil {
		w.shakeUntil = until
	}
}
