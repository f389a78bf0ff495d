package config

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidConfig, fmt.Sprintf(format, args...))
}

// Validate rejects configurations that make the jump math undefined or
// leave no room to build a level.
func (c JumperConfig) Validate() error {
	switch {
	case c.Physics.Gravity <= 0:
		return invalid("physics.gravity must be positive, got %v", c.Physics.Gravity)
	case c.Physics.JumpImpulse >= 0:
		return invalid("physics.jump_impulse must be negative, got %v", c.Physics.JumpImpulse)
	case c.Physics.Speed <= 0:
		return invalid("physics.speed must be positive, got %v", c.Physics.Speed)
	case c.Physics.LandingTolerance < 0:
		return invalid("physics.landing_tolerance must not be negative")
	}

	if c.Player.Width <= 0 || c.Player.Height <= 0 {
		return invalid("player size must be positive, got %vx%v", c.Player.Width, c.Player.Height)
	}
	if c.Screen.Width < 4*c.Player.Width || c.Screen.Height < 4*c.Player.Height {
		return invalid("screen %vx%v is too small for a %vx%v player",
			c.Screen.Width, c.Screen.Height, c.Player.Width, c.Player.Height)
	}
	if c.Layers.GroundHeight <= 0 || c.Layers.GroundHeight >= c.Screen.Height {
		return invalid("layers.ground_height must be inside the screen, got %v", c.Layers.GroundHeight)
	}

	if c.Layers.ReachSlack <= 0 || c.Floating.ReachSlack <= 0 || c.Coins.ReachSlack <= 0 {
		return invalid("reach_slack values must be positive")
	}
	rise := c.Physics.JumpImpulse * c.Physics.JumpImpulse / (2 * c.Physics.Gravity)
	if rise-c.Layers.HeightMargin <= 0 {
		return invalid("jump rise %.1f leaves nothing after layers.height_margin %.1f", rise, c.Layers.HeightMargin)
	}

	if c.Layers.MinWidth <= 0 || c.Layers.MaxWidth < c.Layers.MinWidth {
		return invalid("layers width range [%d, %d] is empty", c.Layers.MinWidth, c.Layers.MaxWidth)
	}
	if c.Layers.MinHeight <= 0 || c.Layers.MaxHeight < c.Layers.MinHeight {
		return invalid("layers height range [%d, %d] is empty", c.Layers.MinHeight, c.Layers.MaxHeight)
	}
	if c.Floating.MinWidth <= 0 || c.Floating.MaxWidth < c.Floating.MinWidth {
		return invalid("floating width range [%d, %d] is empty", c.Floating.MinWidth, c.Floating.MaxWidth)
	}

	if c.Gameplay.Lives <= 0 {
		return invalid("gameplay.lives must be positive, got %d", c.Gameplay.Lives)
	}
	if c.Gameplay.CountdownMs <= 0 {
		return invalid("gameplay.countdown_ms must be positive, got %d", c.Gameplay.CountdownMs)
	}
	if c.Gameplay.ComboMax < 1 {
		return invalid("gameplay.combo_max must be at least 1")
	}
	if c.Coins.Size <= 0 || c.PowerUps.Size <= 0 {
		return invalid("pickup sizes must be positive")
	}
	w := c.PowerUps.Weights
	if w.Speed < 0 || w.Jump < 0 || w.Invincible < 0 || w.Magnet < 0 || w.Speed+w.Jump+w.Invincible+w.Magnet == 0 {
		return invalid("powerups.weights must be non-negative with a positive sum")
	}
	return nil
}

// Validate rejects sound toy configurations without playable notes.
func (c BeepyConfig) Validate() error {
	if len(c.Notes) == 0 {
		return invalid("beepy needs at least one note")
	}
	for i, f := range c.Notes {
		if f <= 0 {
			return invalid("note %d has non-positive frequency %v", i+1, f)
		}
	}
	if c.NoteMs <= 0 {
		return invalid("note_ms must be positive, got %d", c.NoteMs)
	}
	if c.BlinkTicks <= 0 {
		return invalid("blink_ticks must be positive, got %d", c.BlinkTicks)
	}
	return nil
}
