package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// File names looked up in the config directories.
const (
	JumperFile = "jumper.yaml"
	BeepyFile  = "beepy.yaml"
)

// LoadJumper loads the platformer configuration and validates it.
// Search order: customPath -> ~/.jumper/configs/jumper.yaml -> ./configs/jumper.yaml -> embedded default
func LoadJumper(customPath string) (JumperConfig, error) {
	cfg := DefaultJumperConfig()

	if customPath != "" {
		if err := readYAML(customPath, &cfg); err != nil {
			return cfg, err
		}
		return cfg, cfg.Validate()
	}

	for _, p := range SearchPaths(JumperFile) {
		candidate := DefaultJumperConfig()
		if err := readYAML(p, &candidate); err == nil {
			return candidate, candidate.Validate()
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultJumperYAML, &cfg); err != nil {
		return DefaultJumperConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, cfg.Validate()
}

// LoadBeepy loads the sound toy configuration.
// Search order: customPath -> ~/.jumper/configs/beepy.yaml -> ./configs/beepy.yaml -> embedded default
func LoadBeepy(customPath string) (BeepyConfig, error) {
	cfg := DefaultBeepyConfig()

	if customPath != "" {
		if err := readYAML(customPath, &cfg); err != nil {
			return cfg, err
		}
		return cfg, cfg.Validate()
	}

	for _, p := range SearchPaths(BeepyFile) {
		candidate := DefaultBeepyConfig()
		if err := readYAML(p, &candidate); err == nil {
			return candidate, candidate.Validate()
		}
	}

	if err := yaml.Unmarshal(defaultBeepyYAML, &cfg); err != nil {
		return DefaultBeepyConfig(), nil
	}
	return cfg, cfg.Validate()
}

// SearchPaths returns the on-disk locations checked for a config file,
// highest priority first. The embedded default is not included.
func SearchPaths(filename string) []string {
	var paths []string
	if p := userConfigPath(filename); p != "" {
		paths = append(paths, p)
	}
	return append(paths, filepath.Join("configs", filename))
}

// readYAML decodes a file over the values already in out, so a partial
// file only overrides the keys it names.
func readYAML(path string, out any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".jumper", "configs", filename)
}

// ApplyJumperPreset modifies the config based on a difficulty preset.
func ApplyJumperPreset(cfg *JumperConfig, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	// Adjust session rules based on difficulty
	switch preset {
	case DifficultyEasy:
		cfg.Gameplay.Lives = 5
		cfg.Gameplay.CountdownMs = 180000
	case DifficultyHard:
		cfg.Gameplay.Lives = 2
		cfg.Gameplay.CountdownMs = 90000
	}
}
