// Package config provides YAML-based game configuration loading and
// difficulty management for the jumper games.
package config

// JumperConfig contains all configuration for the platformer.
// Distances are world pixels, durations are milliseconds.
type JumperConfig struct {
	Screen     ScreenConfig     `yaml:"screen"`
	Physics    PhysicsConfig    `yaml:"physics"`
	Player     PlayerConfig     `yaml:"player"`
	Layers     LayerConfig      `yaml:"layers"`
	Floating   FloatingConfig   `yaml:"floating"`
	Enemies    EnemyConfig      `yaml:"enemies"`
	Coins      CoinConfig       `yaml:"coins"`
	PowerUps   PowerUpConfig    `yaml:"powerups"`
	Gameplay   GameplayConfig   `yaml:"gameplay"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// ScreenConfig is the size of the simulated world.
type ScreenConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PhysicsConfig defines the jump physics shared by generator and kinematics.
type PhysicsConfig struct {
	Gravity          float64 `yaml:"gravity"`
	JumpImpulse      float64 `yaml:"jump_impulse"` // Negative: up is -y
	Speed            float64 `yaml:"speed"`
	LandingTolerance float64 `yaml:"landing_tolerance"`
}

// PlayerConfig defines the player body and power-up multipliers.
type PlayerConfig struct {
	Width      float64 `yaml:"width"`
	Height     float64 `yaml:"height"`
	SpawnX     float64 `yaml:"spawn_x"`
	SpawnY     float64 `yaml:"spawn_y"`
	SpeedBoost float64 `yaml:"speed_boost"`
	JumpBoost  float64 `yaml:"jump_boost"`
}

// LayerConfig drives the layered platform pass.
type LayerConfig struct {
	GroundHeight   float64 `yaml:"ground_height"`
	Count          int     `yaml:"count"`
	Base           float64 `yaml:"base"`    // First layer sits at height - base
	Spacing        float64 `yaml:"spacing"` // Vertical distance between layers
	MinY           float64 `yaml:"min_y"`   // Layers above this are not built
	MinPerLayer    int     `yaml:"min_per_layer"`
	MaxPerLayer    int     `yaml:"max_per_layer"`
	Attempts       int     `yaml:"attempts"`
	MinWidth       int     `yaml:"min_width"`
	MaxWidth       int     `yaml:"max_width"`
	MinHeight      int     `yaml:"min_height"`
	MaxHeight      int     `yaml:"max_height"`
	Margin         int     `yaml:"margin"`
	YJitter        int     `yaml:"y_jitter"`
	TopClamp       float64 `yaml:"top_clamp"`
	BottomClamp    float64 `yaml:"bottom_clamp"` // Distance from the screen bottom
	ReachSlack     float64 `yaml:"reach_slack"`
	HeightMargin   float64 `yaml:"height_margin"`
	OverlapBuffer  float64 `yaml:"overlap_buffer"`
	FallbackLayers int     `yaml:"fallback_layers"` // Layers that may get a centred fallback
	FallbackBuffer float64 `yaml:"fallback_buffer"`
	SpawnClearance float64 `yaml:"spawn_clearance"`
}

// FloatingConfig drives the floating platform pass.
type FloatingConfig struct {
	MinCount      int     `yaml:"min_count"`
	MaxCount      int     `yaml:"max_count"`
	Attempts      int     `yaml:"attempts"`
	MinWidth      int     `yaml:"min_width"`
	MaxWidth      int     `yaml:"max_width"`
	MinHeight     int     `yaml:"min_height"`
	MaxHeight     int     `yaml:"max_height"`
	Margin        int     `yaml:"margin"`
	MinY          int     `yaml:"min_y"`
	BottomClamp   int     `yaml:"bottom_clamp"`
	ReachSlack    float64 `yaml:"reach_slack"`
	HeightMargin  float64 `yaml:"height_margin"`
	OverlapBuffer float64 `yaml:"overlap_buffer"`
}

// EnemyConfig drives enemy placement and patrol behaviour.
type EnemyConfig struct {
	MinCount         int     `yaml:"min_count"`
	MaxCount         int     `yaml:"max_count"`
	MinPlatformWidth float64 `yaml:"min_platform_width"`
	EdgeInset        int     `yaml:"edge_inset"`
	GhostLift        float64 `yaml:"ghost_lift"`
	GhostAmplitude   float64 `yaml:"ghost_amplitude"`
	LookAhead        float64 `yaml:"look_ahead"`
}

// CoinConfig drives coin placement.
type CoinConfig struct {
	Size             float64 `yaml:"size"`
	MinPlatformWidth float64 `yaml:"min_platform_width"`
	AirMin           int     `yaml:"air_min"`
	AirMax           int     `yaml:"air_max"`
	AirAttempts      int     `yaml:"air_attempts"`
	BonusMin         int     `yaml:"bonus_min"`
	BonusMax         int     `yaml:"bonus_max"`
	BonusAttempts    int     `yaml:"bonus_attempts"`
	ReachSlack       float64 `yaml:"reach_slack"`
	HeightMargin     float64 `yaml:"height_margin"`
	MaxDrop          float64 `yaml:"max_drop"` // How far below a platform top a floating coin may sit
	Separation       float64 `yaml:"separation"`
	BonusSeparation  float64 `yaml:"bonus_separation"`
	PlatformBuffer   float64 `yaml:"platform_buffer"`
	MinCount         int     `yaml:"min_count"`
}

// PowerUpConfig drives power-up placement and effects.
type PowerUpConfig struct {
	Size             float64        `yaml:"size"`
	MinCount         int            `yaml:"min_count"`
	MaxCount         int            `yaml:"max_count"`
	MinPlatformWidth float64        `yaml:"min_platform_width"`
	Attempts         int            `yaml:"attempts"`
	MaxDrop          float64        `yaml:"max_drop"`
	Separation       float64        `yaml:"separation"`
	PlatformBuffer   float64        `yaml:"platform_buffer"`
	Fallback         int            `yaml:"fallback"` // Guaranteed minimum
	Weights          PowerUpWeights `yaml:"weights"`
	DurationsMs      PowerUpTimes   `yaml:"durations_ms"`
}

// PowerUpWeights are relative spawn weights per kind.
type PowerUpWeights struct {
	Speed      int `yaml:"speed"`
	Jump       int `yaml:"jump"`
	Invincible int `yaml:"invincible"`
	Magnet     int `yaml:"magnet"`
}

// PowerUpTimes are effect durations per kind.
type PowerUpTimes struct {
	Speed      int64 `yaml:"speed"`
	Jump       int64 `yaml:"jump"`
	Invincible int64 `yaml:"invincible"`
	Magnet     int64 `yaml:"magnet"`
}

// GameplayConfig holds session rules.
type GameplayConfig struct {
	Lives          int     `yaml:"lives"`
	CountdownMs    int64   `yaml:"countdown_ms"`
	WarningMs      int64   `yaml:"warning_ms"`
	InvulnerableMs int64   `yaml:"invulnerable_ms"`
	ComboWindowMs  int64   `yaml:"combo_window_ms"`
	ComboMax       int     `yaml:"combo_max"`
	StompBounce    float64 `yaml:"stomp_bounce"`
	StompScore     int     `yaml:"stomp_score"`
	CoinScore      int     `yaml:"coin_score"`
	PowerUpScore   int     `yaml:"powerup_score"`
	MagnetRange    float64 `yaml:"magnet_range"`
	MagnetPull     float64 `yaml:"magnet_pull"`
}

// BeepyConfig contains configuration for the sound toy.
type BeepyConfig struct {
	NoteMs     int64     `yaml:"note_ms"`
	BlinkTicks int       `yaml:"blink_ticks"`
	Rings      int       `yaml:"rings"`
	Notes      []float64 `yaml:"notes"` // Frequencies in Hz for keys 1..7
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Enemy patrol speed added at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

// ParsePreset maps a flag value to a preset. Empty means normal.
func ParsePreset(s string) (DifficultyPreset, bool) {
	switch DifficultyPreset(s) {
	case "":
		return DifficultyNormal, true
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s), true
	}
	return "", false
}
