package config

import (
	_ "embed"
)

//go:embed defaults/rustle.yaml
var defaultRustleYAML []byte

// DefaultRustleConfig returns the built-in configuration.
func DefaultRustleConfig() RustleConfig {
	return RustleConfig{
		Window: WindowConfig{
			Title:      "Bubble Rustle!",
			Fullscreen: true,
		},
		Arena: ArenaConfig{
			Left:     -550,
			Right:    550,
			Bottom:   -400,
			Top:      400,
			WallSize: 20,
		},
		Player: PlayerConfig{
			Width:  144,
			Height: 75,
			Scale:  0.5,
			Speed:  300,
		},
		Hook: HookConfig{
			Width:      8,
			Height:     199,
			WidthScale: 1.1,
			Speed:      100,
		},
		Bubble: BubbleConfig{
			Radius:       10,
			SpeedX:       200,
			Slowdown:     600,
			InitialTier:  4,
			MinSplitTier: 2,
		},
		Reward: RewardConfig{
			Size:  15,
			Speed: 300,
			Max:   1200,
		},
		Gameplay: GameplayConfig{
			Lives:           3,
			SplashSeconds:   2.0,
			LeaderboardSize: 5,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultRustleYAML
}
