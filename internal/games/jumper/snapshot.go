package jumper

import "math"

// Snapshot is a read-only copy of the session state.
// Uses primitive types only so runs can be compared by Hash.
type Snapshot struct {
	Phase             Phase
	Score             int
	Lives             int
	Combo             int
	InvulnerableUntil int64
	RemainingMs       int64
	FinishMs          int64

	PlayerX, PlayerY   float64
	PlayerVX, PlayerVY float64
	OnGround           bool
	Effects            []Effect

	Platforms      int
	EnemiesAlive   int
	CoinsLeft      int
	CoinsTotal     int
	PowerUpsLeft   int
	PlatformData   []float64 // x, y, w, h per platform
	EnemyData      []float64 // x, y, alive per enemy
	CoinData       []float64 // x, y, collected per coin
	GeneratorState uint64
}

// Snapshot returns the current session state.
func (w *World) Snapshot() Snapshot {
	snap := Snapshot{
		Phase:             w.phase,
		Score:             w.score,
		Lives:             w.lives,
		Combo:             w.combo,
		InvulnerableUntil: w.invulnerableUntil,
		RemainingMs:       w.Remaining(w.now),
		FinishMs:          w.finishMs,
		PlayerX:           w.player.X,
		PlayerY:           w.player.Y,
		PlayerVX:          w.player.VX,
		PlayerVY:          w.player.VY,
		OnGround:          w.player.OnGround,
		Effects:           append([]Effect(nil), w.player.Effects...),
		Platforms:         len(w.platforms),
		CoinsTotal:        len(w.coins),
	}

	snap.PlatformData = make([]float64, 0, len(w.platforms)*4)
	for _, p := range w.platforms {
		snap.PlatformData = append(snap.PlatformData, p.X, p.Y, p.W, p.H)
	}

	snap.EnemyData = make([]float64, 0, len(w.enemies)*3)
	for _, e := range w.enemies {
		alive := 0.0
		if e.Alive {
			alive = 1
			snap.EnemiesAlive++
		}
		snap.EnemyData = append(snap.EnemyData, e.X, e.Y, alive)
	}

	snap.CoinData = make([]float64, 0, len(w.coins)*3)
	for _, c := range w.coins {
		collected := 0.0
		if c.Collected {
			collected = 1
		} else {
			snap.CoinsLeft++
		}
		snap.CoinData = append(snap.CoinData, c.X, c.Y, collected)
	}

	for _, p := range w.powerUps {
		if !p.Collected {
			snap.PowerUpsLeft++
		}
	}

	if s, ok := w.gen.rng.(interface{ State() uint64 }); ok {
		snap.GeneratorState = s.State()
	}
	return snap
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := uint64(snap.Phase)             //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Score)       //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Lives)       //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Combo)       //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.RemainingMs) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.FinishMs)    //#nosec G115 -- hash computation
	h = h*31 + math.Float64bits(snap.PlayerX)
	h = h*31 + math.Float64bits(snap.PlayerY)
	h = h*31 + math.Float64bits(snap.PlayerVX)
	h = h*31 + math.Float64bits(snap.PlayerVY)

	for _, e := range snap.Effects {
		h = h*31 + uint64(e.Kind)    //#nosec G115 -- hash computation
		h = h*31 + uint64(e.UntilMs) //#nosec G115 -- hash computation
	}
	for _, v := range snap.PlatformData {
		h = h*31 + math.Float64bits(v)
	}
	for _, v := range snap.EnemyData {
		h = h*31 + math.Float64bits(v)
	}
	for _, v := range snap.CoinData {
		h = h*31 + math.Float64bits(v)
	}

	h = h*31 + snap.GeneratorState
	return h
}
