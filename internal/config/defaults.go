package config

import (
	_ "embed"
)

//go:embed defaults/jumper.yaml
var defaultJumperYAML []byte

//go:embed defaults/beepy.yaml
var defaultBeepyYAML []byte

// DefaultJumperConfig returns the default platformer configuration.
// It mirrors defaults/jumper.yaml and is used when the embedded file
// cannot be parsed.
func DefaultJumperConfig() JumperConfig {
	return JumperConfig{
		Screen: ScreenConfig{Width: 800, Height: 600},
		Physics: PhysicsConfig{
			Gravity:          0.8,
			JumpImpulse:      -15,
			Speed:            5,
			LandingTolerance: 5,
		},
		Player: PlayerConfig{
			Width:      32,
			Height:     32,
			SpawnX:     100,
			SpawnY:     400,
			SpeedBoost: 1.5,
			JumpBoost:  1.3,
		},
		Layers: LayerConfig{
			GroundHeight:   40,
			Count:          3,
			Base:           150,
			Spacing:        100,
			MinY:           80,
			MinPerLayer:    2,
			MaxPerLayer:    4,
			Attempts:       50,
			MinWidth:       80,
			MaxWidth:       200,
			MinHeight:      15,
			MaxHeight:      25,
			Margin:         50,
			YJitter:        20,
			TopClamp:       50,
			BottomClamp:    100,
			ReachSlack:     0.8,
			HeightMargin:   20,
			OverlapBuffer:  20,
			FallbackLayers: 2,
			FallbackBuffer: 10,
			SpawnClearance: 8,
		},
		Floating: FloatingConfig{
			MinCount:      1,
			MaxCount:      3,
			Attempts:      30,
			MinWidth:      50,
			MaxWidth:      90,
			MinHeight:     15,
			MaxHeight:     20,
			Margin:        30,
			MinY:          80,
			BottomClamp:   250,
			ReachSlack:    0.7,
			HeightMargin:  30,
			OverlapBuffer: 30,
		},
		Enemies: EnemyConfig{
			MinCount:         2,
			MaxCount:         4,
			MinPlatformWidth: 80,
			EdgeInset:        10,
			GhostLift:        10,
			GhostAmplitude:   6,
			LookAhead:        10,
		},
		Coins: CoinConfig{
			Size:             16,
			MinPlatformWidth: 50,
			AirMin:           2,
			AirMax:           4,
			AirAttempts:      20,
			BonusMin:         1,
			BonusMax:         2,
			BonusAttempts:    15,
			ReachSlack:       0.9,
			HeightMargin:     10,
			MaxDrop:          30,
			Separation:       30,
			BonusSeparation:  40,
			PlatformBuffer:   10,
			MinCount:         3,
		},
		PowerUps: PowerUpConfig{
			Size:             20,
			MinCount:         2,
			MaxCount:         4,
			MinPlatformWidth: 60,
			Attempts:         30,
			MaxDrop:          50,
			Separation:       50,
			PlatformBuffer:   10,
			Fallback:         2,
			Weights:          PowerUpWeights{Speed: 25, Jump: 25, Invincible: 20, Magnet: 30},
			DurationsMs:      PowerUpTimes{Speed: 5000, Jump: 5000, Invincible: 3000, Magnet: 4000},
		},
		Gameplay: GameplayConfig{
			Lives:          3,
			CountdownMs:    120000,
			WarningMs:      30000,
			InvulnerableMs: 2000,
			ComboWindowMs:  3000,
			ComboMax:       5,
			StompBounce:    -8,
			StompScore:     100,
			CoinScore:      50,
			PowerUpScore:   200,
			MagnetRange:    100,
			MagnetPull:     0.1,
		},
		Difficulty: DifficultyConfig{
			Enabled:      false,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "time",
				MaxAt: 7200,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 0.8,
			},
		},
	}
}

// DefaultBeepyConfig returns the default sound toy configuration.
func DefaultBeepyConfig() BeepyConfig {
	return BeepyConfig{
		NoteMs:     83,
		BlinkTicks: 30,
		Rings:      3,
		Notes:      []float64{220.00, 246.94, 130.81, 146.83, 164.81, 174.61, 196.00},
	}
}
