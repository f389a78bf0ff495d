package jumper

import (
	"math"

	"github.com/vovakirdan/tui-jumper/internal/core"
)

// SurfaceKind is the cosmetic material of a platform.
type SurfaceKind int

const (
	SurfaceBrick SurfaceKind = iota
	SurfaceStone
	SurfaceGrass
	SurfaceMetal
	surfaceCount
)

// Glyph returns the fill character for a surface.
func (s SurfaceKind) Glyph() rune {
	switch s {
	case SurfaceBrick:
		return '▤'
	case SurfaceStone:
		return '▓'
	case SurfaceGrass:
		return '█'
	case SurfaceMetal:
		return '▦'
	default:
		return '#'
	}
}

// Color returns the render colour for a surface.
func (s SurfaceKind) Color() core.Color {
	switch s {
	case SurfaceBrick:
		return core.ColorOrange
	case SurfaceStone:
		return core.ColorGray
	case SurfaceGrass:
		return core.ColorGreen
	case SurfaceMetal:
		return core.ColorCyan
	default:
		return core.ColorDefault
	}
}

// Platform is a static, solid rectangle. Platforms never change after
// a level is generated.
type Platform struct {
	core.Rect
	Surface SurfaceKind
}

// Body is the kinematic state shared by the player and enemies.
type Body struct {
	X, Y     float64
	VX, VY   float64
	W, H     float64
	OnGround bool
}

// Rect returns the body's collision box.
func (b Body) Rect() core.Rect {
	return core.NewRect(b.X, b.Y, b.W, b.H)
}

// Player is the controllable character.
type Player struct {
	Body
	FacingRight bool
	Walking     bool
	Anim        float64
	Effects     Effects
}

// EnemyKind discriminates enemy behaviour.
type EnemyKind int

const (
	EnemyWalker EnemyKind = iota // Slow ground patrol
	EnemyShell                   // Fast ground patrol
	EnemySpike                   // Ground patrol that cannot be stomped
	EnemyGhost                   // Flies level, ignores gravity and platforms
	enemyKindCount
)

// String returns the name of the enemy kind.
func (k EnemyKind) String() string {
	switch k {
	case EnemyWalker:
		return "walker"
	case EnemyShell:
		return "shell"
	case EnemySpike:
		return "spike"
	case EnemyGhost:
		return "ghost"
	default:
		return "unknown"
	}
}

// AlwaysLethal reports whether touching the enemy hurts regardless of
// approach direction.
func (k EnemyKind) AlwaysLethal() bool {
	return k == EnemySpike
}

// Floating reports whether the enemy is exempt from gravity and platforms.
func (k EnemyKind) Floating() bool {
	return k == EnemyGhost
}

// Size returns the collision box size in pixels.
func (k EnemyKind) Size() (w, h float64) {
	switch k {
	case EnemyShell:
		return 26, 28
	case EnemySpike:
		return 22, 22
	case EnemyGhost:
		return 26, 26
	default:
		return 24, 24
	}
}

// PatrolSpeed returns the unsigned base patrol speed in pixels per tick.
func (k EnemyKind) PatrolSpeed() float64 {
	switch k {
	case EnemyShell:
		return 2
	case EnemySpike:
		return 1
	case EnemyGhost:
		return 0.8
	default:
		return 1.5
	}
}

// Enemy is a patrolling hazard.
type Enemy struct {
	Body
	Kind  EnemyKind
	Alive bool
	Phase float64 // Ghost hover phase, radians
	Anim  float64
}

// HoverOffset returns the cosmetic vertical offset of a floating enemy.
// It never feeds back into collision.
func (e Enemy) HoverOffset(amplitude float64) float64 {
	if !e.Kind.Floating() {
		return 0
	}
	return math.Sin(e.Phase) * amplitude
}

// Coin is a collectible. Collected coins stay in the slice, flagged.
type Coin struct {
	X, Y      float64
	Size      float64
	Collected bool
	Spin      int // Degrees, cosmetic
}

// Rect returns the coin's collision box.
func (c Coin) Rect() core.Rect {
	return core.NewRect(c.X, c.Y, c.Size, c.Size)
}

// PowerKind is the effect granted by a power-up.
type PowerKind int

const (
	PowerSpeed PowerKind = iota
	PowerJump
	PowerInvincible
	PowerMagnet
	powerKindCount
)

// String returns the name of the power kind.
func (k PowerKind) String() string {
	switch k {
	case PowerSpeed:
		return "speed"
	case PowerJump:
		return "jump"
	case PowerInvincible:
		return "invincible"
	case PowerMagnet:
		return "magnet"
	default:
		return "unknown"
	}
}

// Glyph returns the display character for a power kind.
func (k PowerKind) Glyph() rune {
	switch k {
	case PowerSpeed:
		return '»'
	case PowerJump:
		return '↑'
	case PowerInvincible:
		return '★'
	case PowerMagnet:
		return 'U'
	default:
		return '?'
	}
}

// Color returns the render colour for a power kind.
func (k PowerKind) Color() core.Color {
	switch k {
	case PowerSpeed:
		return core.ColorOrange
	case PowerJump:
		return core.ColorBrightGreen
	case PowerInvincible:
		return core.ColorBrightMagenta
	case PowerMagnet:
		return core.ColorBrightCyan
	default:
		return core.ColorDefault
	}
}

// PowerUp is a collectible that grants a timed effect.
type PowerUp struct {
	X, Y       float64
	Size       float64
	Kind       PowerKind
	Collected  bool
	DurationMs int64
	Phase      float64 // Bob phase, cosmetic
}

// Rect returns the power-up's collision box.
func (p PowerUp) Rect() core.Rect {
	return core.NewRect(p.X, p.Y, p.Size, p.Size)
}

// Particle is short-lived visual feedback.
type Particle struct {
	X, Y    float64
	VX, VY  float64
	Life    int
	MaxLife int
	Color   core.Color
}

// Phase is the session state machine.
type Phase int

const (
	PhasePlaying Phase = iota
	PhaseWon
	PhaseGameOver
)

// String returns the name of the phase.
func (p Phase) String() string {
	switch p {
	case PhasePlaying:
		return "playing"
	case PhaseWon:
		return "won"
	case PhaseGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Terminal reports whether the phase only changes on regenerate.
func (p Phase) Terminal() bool {
	return p != PhasePlaying
}

// Level is the output of one generator run.
type Level struct {
	Platforms []Platform
	Enemies   []Enemy
	Coins     []Coin
	PowerUps  []PowerUp
}
