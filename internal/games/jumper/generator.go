package jumper

import (
	"math"

	"github.com/vovakirdan/tui-jumper/internal/config"
	"github.com/vovakirdan/tui-jumper/internal/core"
)

// Pickup placement tuning that is not worth exposing in YAML.
const (
	coinLift        = 4   // Gap between a platform top and a coin resting above it
	powerUpLift     = 5   // Same for power-ups
	pickupInset     = 10  // Horizontal inset from platform edges
	screenPad       = 20  // Floating pickups stay this far from the screen edge
	airSpreadX      = 0.7 // Air coin offset as a fraction of jump distance
	airAbove        = 0.8 // Air coins rise up to this fraction of jump height
	airBelow        = 0.3 // and sink down to this fraction
	bonusLiftMin    = 20
	bonusLiftMax    = 40
	fallbackSpacing = 30 // Separation enforced by the first fallback pass
	floatPadX       = 50 // Floating power-up bounds
	floatTop        = 100
	floatBottom     = 200
)

// Generator builds levels. The random source is injected so tests can
// reproduce a level from a seed.
type Generator struct {
	cfg  config.JumperConfig
	phys Physics
	rng  core.Rand
}

// NewGenerator creates a generator for the given configuration.
func NewGenerator(cfg config.JumperConfig, rng core.Rand) *Generator {
	return &Generator{
		cfg:  cfg,
		phys: PhysicsFrom(cfg.Physics),
		rng:  rng,
	}
}

// Generate produces a complete level. The first platform is always the ground.
func (g *Generator) Generate() Level {
	platforms := g.Platforms()
	return Level{
		Platforms: platforms,
		Enemies:   g.Enemies(platforms),
		Coins:     g.Coins(platforms),
		PowerUps:  g.PowerUps(platforms),
	}
}

// LayerReach is the predicate layer platforms satisfy against the layer below.
// Every other reach used by the generator is at least as strict.
func (g *Generator) LayerReach() Reach {
	return g.phys.Reach(g.cfg.Layers.ReachSlack, g.cfg.Layers.HeightMargin)
}

func (g *Generator) width() float64  { return g.cfg.Screen.Width }
func (g *Generator) height() float64 { return g.cfg.Screen.Height }

func (g *Generator) spawnRect() core.Rect {
	p := g.cfg.Player
	return core.NewRect(p.SpawnX, p.SpawnY, p.Width, p.Height)
}

// Platforms builds the ground, the layered platforms and the floating extras.
func (g *Generator) Platforms() []Platform {
	lc := g.cfg.Layers
	W, H := g.width(), g.height()

	ground := Platform{
		Rect:    core.NewRect(0, H-lc.GroundHeight, W, lc.GroundHeight),
		Surface: SurfaceGrass,
	}
	platforms := []Platform{ground}
	below := []core.Rect{ground.Rect}
	reach := g.LayerReach()

	for layer := 0; layer < lc.Count; layer++ {
		bandY := H - lc.Base - float64(layer)*lc.Spacing
		if bandY < lc.MinY {
			break
		}

		var placed []core.Rect
		target := core.RandRange(g.rng, lc.MinPerLayer, lc.MaxPerLayer)
		for i := 0; i < target; i++ {
			if r, ok := g.placeLayerPlatform(bandY, below, platforms, reach); ok {
				platforms = append(platforms, Platform{Rect: r, Surface: g.randomSurface()})
				placed = append(placed, r)
			}
		}

		if len(placed) == 0 && layer < lc.FallbackLayers {
			if r, ok := g.fallbackPlatform(bandY, below, platforms, reach); ok {
				platforms = append(platforms, Platform{Rect: r, Surface: g.randomSurface()})
				placed = append(placed, r)
			}
		}

		// An empty layer ends generation: nothing above it could be reached.
		if len(placed) == 0 {
			break
		}
		below = placed
	}

	return g.addFloating(platforms)
}

func (g *Generator) placeLayerPlatform(bandY float64, below []core.Rect, placed []Platform, reach Reach) (core.Rect, bool) {
	lc := g.cfg.Layers
	W, H := g.width(), g.height()

	for attempt := 0; attempt < lc.Attempts; attempt++ {
		w := core.RandRange(g.rng, lc.MinWidth, lc.MaxWidth)
		h := core.RandRange(g.rng, lc.MinHeight, lc.MaxHeight)

		minX, maxX := lc.Margin, int(W)-w-lc.Margin
		if minX >= maxX {
			continue
		}
		x := core.RandRange(g.rng, minX, maxX)
		y := core.Clamp(bandY+float64(core.RandRange(g.rng, -lc.YJitter, lc.YJitter)), lc.TopClamp, H-lc.BottomClamp)

		cand := core.NewRect(float64(x), y, float64(w), float64(h))
		if !reach.ReachableFromAny(below, cand) {
			continue
		}
		if g.blocked(cand, lc.OverlapBuffer, placed) {
			continue
		}
		return cand, true
	}
	return core.Rect{}, false
}

// fallbackPlatform tries a single centred platform for a layer that got
// nothing. It is held to the same reachability rule as any other.
func (g *Generator) fallbackPlatform(bandY float64, below []core.Rect, placed []Platform, reach Reach) (core.Rect, bool) {
	lc := g.cfg.Layers
	W := g.width()

	w := float64(lc.MinWidth + 20)
	h := float64(lc.MinHeight)
	x := core.Clamp(W/2-w/2, float64(lc.Margin), W-w-float64(lc.Margin))
	cand := core.NewRect(x, bandY, w, h)

	if !reach.ReachableFromAny(below, cand) || g.blocked(cand, lc.FallbackBuffer, placed) {
		return core.Rect{}, false
	}
	return cand, true
}

func (g *Generator) addFloating(platforms []Platform) []Platform {
	fc := g.cfg.Floating
	W, H := g.width(), g.height()
	reach := g.phys.Reach(fc.ReachSlack, fc.HeightMargin)

	count := core.RandRange(g.rng, fc.MinCount, fc.MaxCount)
	for n := 0; n < count; n++ {
		sources := rects(platforms)
		for attempt := 0; attempt < fc.Attempts; attempt++ {
			w := core.RandRange(g.rng, fc.MinWidth, fc.MaxWidth)
			h := core.RandRange(g.rng, fc.MinHeight, fc.MaxHeight)

			minX, maxX := fc.Margin, int(W)-w-fc.Margin
			if minX >= maxX {
				continue
			}
			x := core.RandRange(g.rng, minX, maxX)
			y := core.RandRange(g.rng, fc.MinY, int(H)-fc.BottomClamp)

			cand := core.NewRect(float64(x), float64(y), float64(w), float64(h))
			if !reach.ReachableFromAny(sources, cand) {
				continue
			}
			if g.blocked(cand, fc.OverlapBuffer, platforms) {
				continue
			}
			platforms = append(platforms, Platform{Rect: cand, Surface: g.randomSurface()})
			break
		}
	}
	return platforms
}

// blocked reports whether cand, inflated by buffer, touches any platform
// or the player's spawn box.
func (g *Generator) blocked(cand core.Rect, buffer float64, platforms []Platform) bool {
	grown := cand.Inflate(buffer)
	for _, p := range platforms {
		if grown.Intersects(p.Rect) {
			return true
		}
	}
	return grown.Intersects(g.spawnRect().Inflate(g.cfg.Layers.SpawnClearance))
}

func (g *Generator) randomSurface() SurfaceKind {
	return SurfaceKind(g.rng.Intn(int(surfaceCount)))
}

// Enemies places one enemy on each of a random selection of wide,
// non-ground platforms. Spots touching the spawn box are skipped.
func (g *Generator) Enemies(platforms []Platform) []Enemy {
	ec := g.cfg.Enemies

	var candidates []core.Rect
	for _, p := range platforms[1:] {
		if p.W >= ec.MinPlatformWidth {
			candidates = append(candidates, p.Rect)
		}
	}
	if len(candidates) == 0 {
		return nil
	}

	count := min(core.RandRange(g.rng, ec.MinCount, ec.MaxCount), len(candidates))
	enemies := make([]Enemy, 0, count)
	for _, p := range g.sample(candidates, count) {
		kind := EnemyKind(g.rng.Intn(int(enemyKindCount)))
		w, h := kind.Size()

		lo := int(p.X) + ec.EdgeInset
		hi := int(p.Right()-w) - ec.EdgeInset
		x := core.RandRange(g.rng, lo, hi)
		y := p.Y - h
		if kind.Floating() {
			y -= ec.GhostLift
		}

		box := core.NewRect(float64(x), y, w, h)
		if box.Intersects(g.spawnRect().Inflate(g.cfg.Layers.SpawnClearance)) {
			continue
		}

		vx := kind.PatrolSpeed()
		if g.rng.Intn(2) == 0 {
			vx = -vx
		}
		enemies = append(enemies, Enemy{
			Body:  Body{X: float64(x), Y: y, VX: vx, W: w, H: h, OnGround: !kind.Floating()},
			Kind:  kind,
			Alive: true,
		})
	}
	return enemies
}

// Coins places a coin on every wide platform, then air and bonus coins at
// reachable spots, then tops up from the fallback path.
func (g *Generator) Coins(platforms []Platform) []Coin {
	cc := g.cfg.Coins
	raised := rects(platforms[1:])
	reach := g.phys.Reach(cc.ReachSlack, cc.HeightMargin).WithMaxDrop(cc.MaxDrop)

	var coins []Coin
	for _, p := range raised {
		if p.W >= cc.MinPlatformWidth {
			coins = append(coins, g.coinAtop(p))
		}
	}

	if len(raised) > 0 {
		coins = g.addAirCoins(coins, raised, platforms, reach)
		coins = g.addBonusCoins(coins, raised, platforms, reach)
	}

	return g.topUpCoins(coins, platforms)
}

func (g *Generator) coinAtop(p core.Rect) Coin {
	size := g.cfg.Coins.Size
	x := core.RandRange(g.rng, int(p.X)+pickupInset, int(p.Right()-size)-pickupInset)
	return Coin{X: float64(x), Y: p.Y - size - coinLift, Size: size}
}

func (g *Generator) addAirCoins(coins []Coin, raised []core.Rect, platforms []Platform, reach Reach) []Coin {
	cc := g.cfg.Coins
	W, H := g.width(), g.height()
	spreadX := int(reach.MaxDistance * airSpreadX)
	above := int(reach.MaxRise * airAbove)
	below := int(reach.MaxRise * airBelow)

	count := core.RandRange(g.rng, cc.AirMin, cc.AirMax)
	for n := 0; n < count; n++ {
		for attempt := 0; attempt < cc.AirAttempts; attempt++ {
			src := raised[g.rng.Intn(len(raised))]
			x := src.CenterX() + float64(core.RandRange(g.rng, -spreadX, spreadX))
			y := src.Y + float64(core.RandRange(g.rng, -above, below))
			x = core.Clamp(x, screenPad, W-screenPad-cc.Size)
			y = core.Clamp(y, screenPad, H-g.cfg.Layers.BottomClamp)

			c := Coin{X: x, Y: y, Size: cc.Size}
			if !reach.ReachableFromAny(raised, c.Rect()) {
				continue
			}
			if g.nearPlatform(c.Rect(), cc.PlatformBuffer, platforms) || coinCrowded(coins, x, y, cc.Separation) {
				continue
			}
			coins = append(coins, c)
			break
		}
	}
	return coins
}

// addBonusCoins hangs coins above the midpoint of two platforms that can
// be jumped between.
func (g *Generator) addBonusCoins(coins []Coin, raised []core.Rect, platforms []Platform, reach Reach) []Coin {
	cc := g.cfg.Coins
	W, H := g.width(), g.height()
	if len(raised) < 2 {
		return coins
	}

	count := core.RandRange(g.rng, cc.BonusMin, cc.BonusMax)
	for n := 0; n < count; n++ {
		for attempt := 0; attempt < cc.BonusAttempts; attempt++ {
			i, j := g.rng.Intn(len(raised)), g.rng.Intn(len(raised))
			if i == j {
				continue
			}
			a, b := raised[i], raised[j]
			dx := a.CenterX() - b.CenterX()
			dy := a.Y - b.Y
			if dx < 0 {
				dx = -dx
			}
			if dy < 0 {
				dy = -dy
			}
			if dx > reach.MaxDistance || dy > reach.MaxRise {
				continue
			}

			x := (a.CenterX() + b.CenterX()) / 2
			y := min(a.Y, b.Y) - float64(core.RandRange(g.rng, bonusLiftMin, bonusLiftMax))
			x = core.Clamp(x, screenPad, W-screenPad-cc.Size)
			y = core.Clamp(y, screenPad, H-g.cfg.Layers.BottomClamp)

			c := Coin{X: x, Y: y, Size: cc.Size}
			if g.nearPlatform(c.Rect(), cc.PlatformBuffer, platforms) || coinCrowded(coins, x, y, cc.BonusSeparation) {
				continue
			}
			coins = append(coins, c)
			break
		}
	}
	return coins
}

// topUpCoins guarantees at least MinCount coins by resting extras on
// random platforms, the ground included. The second pass ignores spacing
// so it cannot fail.
func (g *Generator) topUpCoins(coins []Coin, platforms []Platform) []Coin {
	want := g.cfg.Coins.MinCount
	if want < 1 {
		want = 1
	}
	hosts := g.hosts(platforms, g.cfg.Coins.Size)

	for attempt := 0; attempt < want*10 && len(coins) < want; attempt++ {
		c := g.coinAtop(hosts[g.rng.Intn(len(hosts))])
		if !coinCrowded(coins, c.X, c.Y, fallbackSpacing) {
			coins = append(coins, c)
		}
	}
	for len(coins) < want {
		coins = append(coins, g.coinAtop(hosts[g.rng.Intn(len(hosts))]))
	}
	return coins
}

// PowerUps places power-ups on platforms and at reachable floating spots,
// topping up to the configured minimum.
func (g *Generator) PowerUps(platforms []Platform) []PowerUp {
	pc := g.cfg.PowerUps
	W, H := g.width(), g.height()

	var wide []core.Rect
	for _, p := range platforms[1:] {
		if p.W >= pc.MinPlatformWidth {
			wide = append(wide, p.Rect)
		}
	}

	total := core.RandRange(g.rng, pc.MinCount, pc.MaxCount)
	var ups []PowerUp
	if len(wide) > 0 {
		for _, p := range g.sample(wide, min(total/2+1, len(wide))) {
			ups = append(ups, g.powerUpAtop(p))
		}

		reach := g.phys.Reach(g.cfg.Coins.ReachSlack, g.cfg.Coins.HeightMargin).WithMaxDrop(pc.MaxDrop)
		for len(ups) < total {
			placed := false
			for attempt := 0; attempt < pc.Attempts; attempt++ {
				x := core.RandRange(g.rng, floatPadX, int(W)-floatPadX-int(pc.Size))
				y := core.RandRange(g.rng, floatTop, int(H)-floatBottom)
				p := g.newPowerUp(float64(x), float64(y))
				if !reach.ReachableFromAny(wide, p.Rect()) {
					continue
				}
				if g.nearPlatform(p.Rect(), pc.PlatformBuffer, platforms) || powerUpCrowded(ups, p.X, p.Y, pc.Separation) {
					continue
				}
				ups = append(ups, p)
				placed = true
				break
			}
			if !placed {
				break
			}
		}
	}

	want := pc.Fallback
	hosts := g.hosts(platforms, pc.Size)
	for attempt := 0; attempt < want*10 && len(ups) < want; attempt++ {
		p := g.powerUpAtop(hosts[g.rng.Intn(len(hosts))])
		if !powerUpCrowded(ups, p.X, p.Y, fallbackSpacing) {
			ups = append(ups, p)
		}
	}
	for len(ups) < want {
		ups = append(ups, g.powerUpAtop(hosts[g.rng.Intn(len(hosts))]))
	}
	return ups
}

func (g *Generator) powerUpAtop(p core.Rect) PowerUp {
	size := g.cfg.PowerUps.Size
	x := core.RandRange(g.rng, int(p.X)+pickupInset, int(p.Right()-size)-pickupInset)
	return g.newPowerUp(float64(x), p.Y-size-powerUpLift)
}

func (g *Generator) newPowerUp(x, y float64) PowerUp {
	pc := g.cfg.PowerUps
	kind := g.rollPowerKind()
	return PowerUp{
		X:          x,
		Y:          y,
		Size:       pc.Size,
		Kind:       kind,
		DurationMs: powerDuration(pc.DurationsMs, kind),
		Phase:      g.rng.Float64() * 2 * math.Pi,
	}
}

// rollPowerKind picks a kind using the configured relative weights.
func (g *Generator) rollPowerKind() PowerKind {
	w := g.cfg.PowerUps.Weights
	weights := [powerKindCount]int{w.Speed, w.Jump, w.Invincible, w.Magnet}

	total := 0
	for _, v := range weights {
		total += v
	}
	roll := g.rng.Intn(total)
	for k, v := range weights {
		if roll < v {
			return PowerKind(k)
		}
		roll -= v
	}
	return PowerMagnet
}

func powerDuration(d config.PowerUpTimes, kind PowerKind) int64 {
	switch kind {
	case PowerSpeed:
		return d.Speed
	case PowerJump:
		return d.Jump
	case PowerInvincible:
		return d.Invincible
	default:
		return d.Magnet
	}
}

// hosts returns the platforms wide enough to carry a pickup of the given
// size. The ground always qualifies.
func (g *Generator) hosts(platforms []Platform, size float64) []core.Rect {
	var out []core.Rect
	for _, p := range platforms {
		if p.W >= size+2*pickupInset {
			out = append(out, p.Rect)
		}
	}
	return out
}

func (g *Generator) nearPlatform(r core.Rect, buffer float64, platforms []Platform) bool {
	for _, p := range platforms {
		if r.Intersects(p.Rect.Inflate(buffer)) {
			return true
		}
	}
	return false
}

// sample returns n distinct elements in random order.
func (g *Generator) sample(from []core.Rect, n int) []core.Rect {
	pool := append([]core.Rect(nil), from...)
	for i := 0; i < n && i < len(pool); i++ {
		j := i + g.rng.Intn(len(pool)-i)
		pool[i], pool[j] = pool[j], pool[i]
	}
	if n > len(pool) {
		n = len(pool)
	}
	return pool[:n]
}

func coinCrowded(coins []Coin, x, y, sep float64) bool {
	for _, c := range coins {
		if abs(c.X-x) < sep && abs(c.Y-y) < sep {
			return true
		}
	}
	return false
}

func powerUpCrowded(ups []PowerUp, x, y, sep float64) bool {
	for _, p := range ups {
		if abs(p.X-x) < sep && abs(p.Y-y) < sep {
			return true
		}
	}
	return false
}

func rects(platforms []Platform) []core.Rect {
	out := make([]core.Rect, len(platforms))
	for i, p := range platforms {
		out[i] = p.Rect
	}
	return out
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
