package jumper

import (
	"math"

	"github.com/vovakirdan/tui-jumper/internal/core"
)

// Particle burst sizes.
const (
	burstStomp   = 15
	burstCoin    = 10
	burstPowerUp = 20
	burstDeath   = 25
)

// resolveInteractions applies player contact with enemies, coins and
// power-ups. A life lost ends processing for the tick.
func (w *World) resolveInteractions(now int64) {
	if w.resolveEnemies(now) {
		return
	}
	w.collectCoins()
	w.collectPowerUps(now)
}

// resolveEnemies returns true when the player lost a life.
func (w *World) resolveEnemies(now int64) bool {
	pr := w.player.Rect()
	for i := range w.enemies {
		e := &w.enemies[i]
		if !e.Alive || !pr.Intersects(e.Rect()) {
			continue
		}

		if e.Kind.AlwaysLethal() {
			if w.vulnerable(now) {
				w.shake(now, 500)
				w.loseLife(now)
				return true
			}
			continue
		}

		if w.player.VY > 0 && w.player.Y < e.Y {
			w.stomp(e, now)
			continue
		}

		if w.vulnerable(now) {
			w.loseLife(now)
			return true
		}
	}
	return false
}

func (w *World) stomp(e *Enemy, now int64) {
	gp := w.cfg.Gameplay
	e.Alive = false
	w.player.VY = gp.StompBounce
	w.score += gp.StompScore * w.combo
	w.combo = min(gp.ComboMax, w.combo+1)
	w.comboUntil = now + gp.ComboWindowMs

	cx, cy := e.Rect().Center()
	w.burst(cx, cy, core.ColorYellow, burstStomp)
	w.shake(now, 200)
}

// vulnerable reports whether contact damage applies right now.
func (w *World) vulnerable(now int64) bool {
	return now >= w.invulnerableUntil && !w.player.Effects.Has(PowerInvincible)
}

// loseLife removes a life and respawns the player. The last life ends the
// session without an invulnerability grant.
func (w *World) loseLife(now int64) {
	w.lives--
	w.respawn()

	cx, cy := w.player.Rect().Center()
	w.burst(cx, cy, core.ColorRed, burstDeath)
	w.shake(now, 400)

	if w.lives <= 0 {
		w.lives = 0
		w.phase = PhaseGameOver
		w.emit(core.SoundLose)
		return
	}
	w.invulnerableUntil = now + w.cfg.Gameplay.InvulnerableMs
}

func (w *World) collectCoins() {
	gp := w.cfg.Gameplay
	magnet := w.player.Effects.Has(PowerMagnet)
	pr := w.player.Rect()

	for i := range w.coins {
		c := &w.coins[i]
		if c.Collected {
			continue
		}
		if magnet {
			dx, dy := w.player.X-c.X, w.player.Y-c.Y
			if math.Hypot(dx, dy) < gp.MagnetRange {
				c.X += dx * gp.MagnetPull
				c.Y += dy * gp.MagnetPull
			}
		}
		if pr.Intersects(c.Rect()) {
			c.Collected = true
			w.score += gp.CoinScore * w.combo
			cx, cy := c.Rect().Center()
			w.burst(cx, cy, core.ColorYellow, burstCoin)
		}
	}
}

func (w *World) collectPowerUps(now int64) {
	pr := w.player.Rect()
	for i := range w.powerUps {
		p := &w.powerUps[i]
		if p.Collected || !pr.Intersects(p.Rect()) {
			continue
		}
		p.Collected = true
		w.player.Effects.Apply(p.Kind, now, p.DurationMs)
		w.score += w.cfg.Gameplay.PowerUpScore

		cx, cy := p.Rect().Center()
		w.burst(cx, cy, p.Kind.Color(), burstPowerUp)
		w.shake(now, 250)
	}
}
