package jumper

import (
	"github.com/vovakirdan/tui-jumper/internal/core"
)

const (
	footWidth  = 5
	footHeight = 10
	ghostDrift = 0.05 // Hover phase advance per tick
)

// Bounds is the playable area. The left and top edges are zero.
type Bounds struct {
	W, H float64
}

// moveX advances the body horizontally and pushes it out of any platform
// it entered, to the edge facing the direction of travel. Reports whether
// a side was hit.
func moveX(b *Body, platforms []Platform) bool {
	dir := b.VX
	b.X += b.VX

	hit := false
	for _, p := range platforms {
		if !b.Rect().Intersects(p.Rect) {
			continue
		}
		switch {
		case dir > 0:
			b.X = p.X - b.W
		case dir < 0:
			b.X = p.Right()
		}
		hit = true
	}
	return hit
}

// moveY advances the body vertically and resolves overlaps using the
// position before the move: a body that started above a platform top
// (within tol) lands on it; one that started below its bottom is stopped
// underneath. Every platform is checked so the highest landing wins.
func moveY(b *Body, platforms []Platform, tol float64) {
	dir := b.VY
	oldY := b.Y
	b.Y += b.VY
	b.OnGround = false

	for _, p := range platforms {
		if !b.Rect().Intersects(p.Rect) {
			continue
		}
		switch {
		case dir > 0 && oldY+b.H <= p.Y+tol:
			b.Y = p.Y - b.H
			b.VY = 0
			b.OnGround = true
		case dir < 0 && oldY >= p.Bottom()-tol:
			b.Y = p.Bottom()
			b.VY = 0
		}
	}
}

// catchFloor stops a body that fell past the bottom of the screen.
func catchFloor(b *Body, bounds Bounds) {
	if b.Y > bounds.H-b.H {
		b.Y = bounds.H - b.H
		b.VY = 0
		b.OnGround = true
	}
}

// stepPlayer advances the player one tick.
func stepPlayer(p *Player, in core.InputFrame, phys Physics, boost PlayerBoost, platforms []Platform, bounds Bounds, now int64) {
	p.Effects.Expire(now)

	speed := phys.Speed
	if p.Effects.Has(PowerSpeed) {
		speed *= boost.Speed
	}

	left, right := in.IsHeld(core.ActionLeft), in.IsHeld(core.ActionRight)
	p.Walking = false
	switch {
	case left && !right:
		p.VX = -speed
		p.FacingRight = false
		p.Walking = true
	case right && !left:
		p.VX = speed
		p.FacingRight = true
		p.Walking = true
	default:
		p.VX = 0
	}

	if in.Has(core.ActionJump) && p.OnGround {
		jump := phys.JumpImpulse
		if p.Effects.Has(PowerJump) {
			jump *= boost.Jump
		}
		p.VY = jump
		p.OnGround = false
	}

	if p.Walking && p.OnGround {
		p.Anim += 0.2
	} else if p.OnGround {
		p.Anim = 0
	}

	p.VY += phys.Gravity

	moveX(&p.Body, platforms)
	p.X = core.Clamp(p.X, 0, bounds.W-p.W)
	moveY(&p.Body, platforms, phys.LandingTolerance)
	catchFloor(&p.Body, bounds)
}

// PlayerBoost holds the power-up multipliers.
type PlayerBoost struct {
	Speed float64
	Jump  float64
}

// stepEnemy advances a live enemy one tick. speed is the unsigned patrol
// speed for this tick.
func stepEnemy(e *Enemy, phys Physics, speed float64, lookAhead float64, platforms []Platform, bounds Bounds) {
	if !e.Alive {
		return
	}
	e.Anim += 0.2
	if e.VX < 0 {
		e.VX = -speed
	} else {
		e.VX = speed
	}

	if e.Kind.Floating() {
		e.X += e.VX
		bounceOffEdges(&e.Body, bounds)
		e.Phase += ghostDrift
		return
	}

	e.VY += phys.Gravity
	if moveX(&e.Body, platforms) {
		e.VX = -e.VX
	}
	bounceOffEdges(&e.Body, bounds)
	moveY(&e.Body, platforms, phys.LandingTolerance)
	catchFloor(&e.Body, bounds)

	if e.OnGround && !supportAhead(e.Body, lookAhead, platforms) {
		e.VX = -e.VX
	}
}

// bounceOffEdges keeps a patrolling body on screen, pointing it back inward.
func bounceOffEdges(b *Body, bounds Bounds) {
	switch {
	case b.X <= 0:
		b.X = 0
		b.VX = abs(b.VX)
	case b.X >= bounds.W-b.W:
		b.X = bounds.W - b.W
		b.VX = -abs(b.VX)
	}
}

// supportAhead probes for ground just past the leading edge.
func supportAhead(b Body, lookAhead float64, platforms []Platform) bool {
	fx := b.X - lookAhead
	if b.VX > 0 {
		fx = b.Right() + lookAhead - footWidth
	}
	foot := core.NewRect(fx, b.Y+b.H, footWidth, footHeight)
	for _, p := range platforms {
		if foot.Intersects(p.Rect) {
			return true
		}
	}
	return false
}

// Right returns the x-coordinate of the body's right edge.
func (b Body) Right() float64 {
	return b.X + b.W
}
