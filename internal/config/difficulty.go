package config

// DifficultyManager ramps enemy patrol speed over a session.
//
// The ramp starts at InitialLevel and climbs linearly to 1.0 as the tracked
// quantity (score or elapsed ticks) approaches Progression.MaxAt. Speed at
// full level is base * (1 + Scaling.SpeedMultiplier).
type DifficultyManager struct {
	cfg DifficultyConfig
}

// NewDifficultyManager wraps cfg. InitialLevel is clamped to [0, 1].
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	cfg.InitialLevel = unit(cfg.InitialLevel)
	return &DifficultyManager{cfg: cfg}
}

// SetEnabled switches the ramp on or off without touching the rest of the
// configuration.
func (d *DifficultyManager) SetEnabled(enabled bool) {
	d.cfg.Enabled = enabled
}

func (d *DifficultyManager) ramping() bool {
	switch d.cfg.Progression.Type {
	case "score", "time":
		return d.cfg.Enabled
	}
	return false
}

// progress reports how far along the ramp a session is, in [0, 1].
func (d *DifficultyManager) progress(score, ticks int) float64 {
	maxAt := float64(d.cfg.Progression.MaxAt)
	if maxAt <= 0 {
		return 1
	}
	v := ticks
	if d.cfg.Progression.Type == "score" {
		v = score
	}
	return unit(float64(v) / maxAt)
}

// Level is the current difficulty in [InitialLevel, 1].
func (d *DifficultyManager) Level(score, ticks int) float64 {
	start := d.cfg.InitialLevel
	if !d.ramping() {
		return start
	}
	return start + (1-start)*d.progress(score, ticks)
}

// Speed scales a base patrol speed. With the ramp off base is returned
// unchanged, whatever the initial level.
func (d *DifficultyManager) Speed(base float64, score, ticks int) float64 {
	if !d.ramping() {
		return base
	}
	return base * (1 + d.Level(score, ticks)*d.cfg.Scaling.SpeedMultiplier)
}

func unit(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	}
	return v
}
