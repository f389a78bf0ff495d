package jumper

import (
	"math"

	"github.com/vovakirdan/tui-jumper/internal/config"
	"github.com/vovakirdan/tui-jumper/internal/core"
)

// Physics holds the jump constants. It is immutable and passed by value
// to the generator and kinematics.
type Physics struct {
	Gravity          float64
	JumpImpulse      float64
	Speed            float64
	LandingTolerance float64
}

// PhysicsFrom builds Physics from configuration.
func PhysicsFrom(cfg config.PhysicsConfig) Physics {
	return Physics{
		Gravity:          cfg.Gravity,
		JumpImpulse:      cfg.JumpImpulse,
		Speed:            cfg.Speed,
		LandingTolerance: cfg.LandingTolerance,
	}
}

// Airtime is the number of ticks a full jump spends in the air.
func (p Physics) Airtime() float64 {
	return 2 * math.Abs(p.JumpImpulse) / p.Gravity
}

// MaxJumpDistance is the horizontal distance covered in one jump,
// scaled by slack (< 1 makes the estimate conservative).
func (p Physics) MaxJumpDistance(slack float64) float64 {
	return p.Speed * p.Airtime() * slack
}

// MaxJumpHeight is the apex height of a jump minus a safety margin.
func (p Physics) MaxJumpHeight(margin float64) float64 {
	return p.JumpImpulse*p.JumpImpulse/(2*p.Gravity) - margin
}

// Reach builds a reachability predicate for the given tuning.
func (p Physics) Reach(slack, margin float64) Reach {
	return Reach{
		MaxDistance: p.MaxJumpDistance(slack),
		MaxRise:     p.MaxJumpHeight(margin),
	}
}

// Reach decides whether one rectangle can be jumped to from another.
type Reach struct {
	MaxDistance float64 // Centre-to-centre horizontal limit
	MaxRise     float64 // How much higher the target top may be
	MaxDrop     float64 // How much lower the target top may be; 0 means unlimited
}

// WithMaxDrop returns a copy that also bounds how far below the source
// the target may sit.
func (r Reach) WithMaxDrop(d float64) Reach {
	r.MaxDrop = d
	return r
}

// Reachable reports whether dst can be reached from a body standing on src.
func (r Reach) Reachable(src, dst core.Rect) bool {
	if math.Abs(src.CenterX()-dst.CenterX()) > r.MaxDistance {
		return false
	}
	rise := src.Y - dst.Y
	if rise > r.MaxRise {
		return false
	}
	if r.MaxDrop > 0 && -rise > r.MaxDrop {
		return false
	}
	return true
}

// ReachableFromAny reports whether dst is reachable from at least one source.
func (r Reach) ReachableFromAny(srcs []core.Rect, dst core.Rect) bool {
	for _, s := range srcs {
		if r.Reachable(s, dst) {
			return true
		}
	}
	return false
}
