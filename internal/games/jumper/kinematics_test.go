package jumper

import (
	"testing"

	"github.com/vovakirdan/tui-jumper/internal/core"
)

var testPhysics = Physics{Gravity: 0.8, JumpImpulse: -15, Speed: 5, LandingTolerance: 5}

var testBounds = Bounds{W: 800, H: 600}

func platform(x, y, w, h float64) Platform {
	return Platform{Rect: core.NewRect(x, y, w, h)}
}

func TestMoveYLandsOnTop(t *testing.T) {
	b := Body{X: 120, Y: 466, W: 32, H: 32, VY: 5}
	moveY(&b, []Platform{platform(100, 500, 100, 20)}, 5)

	if b.Y != 468 {
		t.Errorf("Y = %v, want 468", b.Y)
	}
	if b.VY != 0 || !b.OnGround {
		t.Errorf("expected grounded with zero VY, got VY=%v OnGround=%v", b.VY, b.OnGround)
	}
}

func TestMoveYHighestLandingWins(t *testing.T) {
	// Two stacked platforms both entered in one fast fall.
	b := Body{X: 120, Y: 440, W: 32, H: 32, VY: 40}
	moveY(&b, []Platform{platform(100, 500, 100, 20), platform(100, 475, 100, 10)}, 5)

	if b.Y != 443 {
		t.Errorf("Y = %v, want 443 (on the upper platform)", b.Y)
	}
}

func TestMoveYHitsCeiling(t *testing.T) {
	b := Body{X: 120, Y: 222, W: 32, H: 32, VY: -5}
	moveY(&b, []Platform{platform(100, 200, 100, 20)}, 5)

	if b.Y != 220 {
		t.Errorf("Y = %v, want 220", b.Y)
	}
	if b.VY != 0 {
		t.Errorf("VY = %v, want 0", b.VY)
	}
	if b.OnGround {
		t.Error("ceiling hit should not ground the body")
	}
}

func TestMoveXPushesOutOfSide(t *testing.T) {
	tests := []struct {
		name  string
		x, vx float64
		wantX float64
	}{
		{"moving right", 60, 10, 68},
		{"moving left", 205, -10, 200},
		{"clear", 0, 5, 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := Body{X: tt.x, Y: 100, W: 32, H: 32, VX: tt.vx}
			hit := moveX(&b, []Platform{platform(100, 90, 100, 60)})
			if b.X != tt.wantX {
				t.Errorf("X = %v, want %v", b.X, tt.wantX)
			}
			if hit != (tt.x+tt.vx != tt.wantX) {
				t.Errorf("hit = %v", hit)
			}
		})
	}
}

func TestStepPlayerClampsToScreen(t *testing.T) {
	tests := []struct {
		name  string
		x     float64
		act   core.Action
		wantX float64
	}{
		{"left edge", 2, core.ActionLeft, 0},
		{"right edge", 766, core.ActionRight, 768},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &Player{Body: Body{X: tt.x, Y: 528, W: 32, H: 32, OnGround: true}}
			in := core.NewInputFrame()
			in.Hold(tt.act)
			for i := 0; i < 10; i++ {
				stepPlayer(p, in, testPhysics, PlayerBoost{1.5, 1.3}, []Platform{platform(0, 560, 800, 40)}, testBounds, 0)
			}
			if p.X != tt.wantX {
				t.Errorf("X = %v, want %v", p.X, tt.wantX)
			}
		})
	}
}

func TestStepPlayerJumpNeedsGround(t *testing.T) {
	ground := []Platform{platform(0, 560, 800, 40)}
	in := core.NewInputFrame()
	in.Set(core.ActionJump)

	p := &Player{Body: Body{X: 100, Y: 528, W: 32, H: 32, OnGround: true}}
	stepPlayer(p, in, testPhysics, PlayerBoost{1.5, 1.3}, ground, testBounds, 0)
	if p.VY >= 0 {
		t.Errorf("grounded jump should rise, VY = %v", p.VY)
	}

	air := &Player{Body: Body{X: 100, Y: 300, W: 32, H: 32}}
	stepPlayer(air, in, testPhysics, PlayerBoost{1.5, 1.3}, ground, testBounds, 0)
	if air.VY != testPhysics.Gravity {
		t.Errorf("airborne jump should be ignored, VY = %v", air.VY)
	}
}

func TestStepPlayerBoosts(t *testing.T) {
	ground := []Platform{platform(0, 560, 800, 40)}
	in := core.NewInputFrame()
	in.Hold(core.ActionRight)
	in.Set(core.ActionJump)

	p := &Player{Body: Body{X: 100, Y: 528, W: 32, H: 32, OnGround: true}}
	p.Effects.Apply(PowerSpeed, 0, 5000)
	p.Effects.Apply(PowerJump, 0, 5000)
	stepPlayer(p, in, testPhysics, PlayerBoost{1.5, 1.3}, ground, testBounds, 100)

	if p.VX != 7.5 {
		t.Errorf("boosted VX = %v, want 7.5", p.VX)
	}
	want := testPhysics.JumpImpulse * 1.3
	want += testPhysics.Gravity
	if p.VY != want {
		t.Errorf("boosted VY = %v, want %v", p.VY, want)
	}
}

func TestStepPlayerExpiresEffects(t *testing.T) {
	p := &Player{Body: Body{X: 100, Y: 528, W: 32, H: 32, OnGround: true}}
	p.Effects.Apply(PowerSpeed, 0, 5000)

	stepPlayer(p, core.NewInputFrame(), testPhysics, PlayerBoost{1.5, 1.3}, nil, testBounds, 4999)
	if !p.Effects.Has(PowerSpeed) {
		t.Error("effect expired early")
	}
	stepPlayer(p, core.NewInputFrame(), testPhysics, PlayerBoost{1.5, 1.3}, nil, testBounds, 5000)
	if p.Effects.Has(PowerSpeed) {
		t.Error("effect should expire at its deadline")
	}
}

func TestNoPenetrationUnderRandomInput(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		w := NewWorld(defaultTestConfig(), core.NewSimpleRNG(seed), 0)
		inputs := core.NewSimpleRNG(seed * 7919)

		for tick := int64(1); tick <= 2000; tick++ {
			in := core.NewInputFrame()
			switch inputs.Intn(4) {
			case 0:
				in.Hold(core.ActionLeft)
			case 1:
				in.Hold(core.ActionRight)
			}
			if inputs.Intn(8) == 0 {
				in.Set(core.ActionJump)
			}
			w.Tick(in, tick*16)
			if w.Phase().Terminal() {
				break
			}

			pr := w.player.Rect()
			for i, p := range w.platforms {
				if pr.Intersects(p.Rect) {
					t.Fatalf("seed %d tick %d: player %+v inside platform %d %+v", seed, tick, pr, i, p.Rect)
				}
			}
			if w.player.X < 0 || w.player.Right() > 800 {
				t.Fatalf("seed %d tick %d: player x %v off screen", seed, tick, w.player.X)
			}
		}
	}
}

func TestEnemyTurnsAtPlatformEdge(t *testing.T) {
	plat := []Platform{platform(100, 300, 100, 20)}
	e := &Enemy{
		Body:  Body{X: 170, Y: 276, W: 24, H: 24, VX: 1.5, OnGround: true},
		Kind:  EnemyWalker,
		Alive: true,
	}
	stepEnemy(e, testPhysics, 1.5, 10, plat, testBounds)

	if e.VX >= 0 {
		t.Errorf("walker should turn back at the edge, VX = %v", e.VX)
	}
	if e.Y != 276 || !e.OnGround {
		t.Errorf("walker should stay on the platform, Y = %v OnGround = %v", e.Y, e.OnGround)
	}
}

func TestEnemyKeepsDirectionWithSupport(t *testing.T) {
	plat := []Platform{platform(100, 300, 200, 20)}
	e := &Enemy{
		Body:  Body{X: 150, Y: 276, W: 24, H: 24, VX: 1.5, OnGround: true},
		Kind:  EnemyWalker,
		Alive: true,
	}
	stepEnemy(e, testPhysics, 1.5, 10, plat, testBounds)

	if e.VX != 1.5 {
		t.Errorf("VX = %v, want 1.5", e.VX)
	}
	if e.X != 151.5 {
		t.Errorf("X = %v, want 151.5", e.X)
	}
}

func TestEnemyBouncesOffScreenEdge(t *testing.T) {
	ground := []Platform{platform(0, 560, 800, 40)}
	e := &Enemy{
		Body:  Body{X: 1, Y: 536, W: 24, H: 24, VX: -2, OnGround: true},
		Kind:  EnemyShell,
		Alive: true,
	}
	stepEnemy(e, testPhysics, 2, 10, ground, testBounds)

	if e.X != 0 {
		t.Errorf("X = %v, want 0", e.X)
	}
	if e.VX <= 0 {
		t.Errorf("enemy should head back inward, VX = %v", e.VX)
	}
}

func TestGhostIgnoresGravityAndPlatforms(t *testing.T) {
	plat := []Platform{platform(100, 200, 200, 20)}
	e := &Enemy{
		Body:  Body{X: 150, Y: 195, W: 26, H: 26, VX: 0.8},
		Kind:  EnemyGhost,
		Alive: true,
	}
	for i := 0; i < 30; i++ {
		stepEnemy(e, testPhysics, 0.8, 10, plat, testBounds)
	}

	if e.Y != 195 || e.VY != 0 {
		t.Errorf("ghost moved vertically: Y = %v VY = %v", e.Y, e.VY)
	}
	if e.X <= 150 {
		t.Errorf("ghost should drift right, X = %v", e.X)
	}
	if e.Phase == 0 {
		t.Error("hover phase should advance")
	}
}

func TestDeadEnemyDoesNotMove(t *testing.T) {
	e := &Enemy{Body: Body{X: 150, Y: 276, W: 24, H: 24, VX: 1.5}, Kind: EnemyWalker}
	stepEnemy(e, testPhysics, 1.5, 10, nil, testBounds)
	if e.X != 150 || e.Y != 276 {
		t.Errorf("dead enemy moved to (%v, %v)", e.X, e.Y)
	}
}
