package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const rustleFile = "rustle.yaml"

// LoadRustle loads the game configuration.
// Search order: customPath -> ~/.rustle/configs/rustle.yaml ->
// ./configs/rustle.yaml -> embedded default -> hardcoded default.
// Keys missing from a file keep their default values.
func LoadRustle(customPath string) (RustleConfig, error) {
	cfg := DefaultRustleConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, cfg.Validate()
	}

	for _, path := range []string{userConfigPath(rustleFile), filepath.Join("configs", rustleFile)} {
		if path == "" {
			continue
		}
		if loaded, ok := tryLoad(path); ok {
			return loaded, nil
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultRustleYAML, &cfg); err != nil {
		return DefaultRustleConfig(), nil
	}
	return cfg, nil
}

// tryLoad reads an optional config file. Unreadable or invalid files are
// skipped so a broken user file never blocks the game.
func tryLoad(path string) (RustleConfig, bool) {
	cfg := DefaultRustleConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, false
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, false
	}
	if cfg.Validate() != nil {
		return cfg, false
	}
	return cfg, true
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".rustle", "configs", filename)
}

// ApplyRustlePreset adjusts the config for a difficulty preset.
// Normal leaves the config untouched.
func ApplyRustlePreset(cfg *RustleConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Gameplay.Lives = 5
		cfg.Bubble.SpeedX *= 0.75
		cfg.Bubble.Slowdown *= 0.75
	case DifficultyHard:
		cfg.Gameplay.Lives = 2
		cfg.Bubble.SpeedX *= 1.25
		cfg.Bubble.Slowdown *= 1.25
		cfg.Hook.Speed *= 0.8
	}
}

// Marshal renders a config as YAML.
func Marshal(cfg RustleConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: failed to encode: %w", err)
	}
	return data, nil
}
