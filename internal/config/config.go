// Package config provides YAML-based tuning for Bubble Rustle and the
// difficulty presets that adjust it.
package config

import (
	"errors"
	"fmt"
)

// RustleConfig contains every tunable of the game.
type RustleConfig struct {
	Window   WindowConfig   `yaml:"window"`
	Arena    ArenaConfig    `yaml:"arena"`
	Player   PlayerConfig   `yaml:"player"`
	Hook     HookConfig     `yaml:"hook"`
	Bubble   BubbleConfig   `yaml:"bubble"`
	Reward   RewardConfig   `yaml:"reward"`
	Gameplay GameplayConfig `yaml:"gameplay"`
}

// WindowConfig describes how the game presents itself in the terminal.
type WindowConfig struct {
	Title      string `yaml:"title"`
	Fullscreen bool   `yaml:"fullscreen"` // use the alternate screen
}

// ArenaConfig holds the wall centre lines in world units (y grows upward).
type ArenaConfig struct {
	Left     float64 `yaml:"left"`
	Right    float64 `yaml:"right"`
	Bottom   float64 `yaml:"bottom"`
	Top      float64 `yaml:"top"`
	WallSize float64 `yaml:"wall_size"`
}

// PlayerConfig defines the player sprite and movement.
type PlayerConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Scale  float64 `yaml:"scale"`
	Speed  float64 `yaml:"speed"`
}

// HookConfig defines the grappling hook sprite and rise speed.
type HookConfig struct {
	Width      float64 `yaml:"width"`
	Height     float64 `yaml:"height"`
	WidthScale float64 `yaml:"width_scale"`
	Speed      float64 `yaml:"speed"`
}

// BubbleConfig defines bubble size and motion.
type BubbleConfig struct {
	Radius       float64 `yaml:"radius"`         // box side = radius * tier
	SpeedX       float64 `yaml:"speed_x"`        // horizontal speed, bounce speed = speed_x * tier
	Slowdown     float64 `yaml:"slowdown"`       // constant vertical deceleration
	InitialTier  int     `yaml:"initial_tier"`   // tier of the root bubble
	MinSplitTier int     `yaml:"min_split_tier"` // tiers at or below this do not split
}

// RewardConfig defines the falling reward pickup.
type RewardConfig struct {
	Size  float64 `yaml:"size"`
	Speed float64 `yaml:"speed"`
	Max   int     `yaml:"max"` // value = max / tier
}

// GameplayConfig defines run and UI bookkeeping.
type GameplayConfig struct {
	Lives           int     `yaml:"lives"`
	SplashSeconds   float64 `yaml:"splash_seconds"`
	LeaderboardSize int     `yaml:"leaderboard_size"`
}

// PlayerY returns the fixed height of the player's centre: standing on the
// floor wall.
func (c RustleConfig) PlayerY() float64 {
	return c.Arena.Bottom + c.Arena.WallSize/2 + c.Player.Height*c.Player.Scale/2
}

// HookInitialScaleY returns the vertical scale of a freshly fired hook, which
// makes it half as tall as the player.
func (c RustleConfig) HookInitialScaleY() float64 {
	return c.Player.Height * c.Player.Scale / 2 / c.Hook.Height
}

// Validate reports configuration values the simulation cannot run with.
func (c RustleConfig) Validate() error {
	var errs []error
	if c.Arena.Right <= c.Arena.Left || c.Arena.Top <= c.Arena.Bottom {
		errs = append(errs, errors.New("arena bounds are inverted"))
	}
	if c.Arena.WallSize <= 0 {
		errs = append(errs, errors.New("arena.wall_size must be positive"))
	}
	if c.Player.Width <= 0 || c.Player.Height <= 0 || c.Player.Scale <= 0 {
		errs = append(errs, errors.New("player size and scale must be positive"))
	}
	if c.Hook.Height <= 0 || c.Hook.Width <= 0 {
		errs = append(errs, errors.New("hook size must be positive"))
	}
	if c.Bubble.Radius <= 0 {
		errs = append(errs, errors.New("bubble.radius must be positive"))
	}
	if c.Bubble.InitialTier < 1 {
		errs = append(errs, fmt.Errorf("bubble.initial_tier must be at least 1, got %d", c.Bubble.InitialTier))
	}
	if c.Reward.Max < 0 {
		errs = append(errs, errors.New("reward.max must not be negative"))
	}
	if c.Gameplay.Lives < 1 {
		errs = append(errs, fmt.Errorf("gameplay.lives must be at least 1, got %d", c.Gameplay.Lives))
	}
	if c.Gameplay.LeaderboardSize < 1 {
		errs = append(errs, errors.New("gameplay.leaderboard_size must be at least 1"))
	}
	if len(errs) > 0 {
		return fmt.Errorf("config: invalid: %w", errors.Join(errs...))
	}
	return nil
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset converts a flag value into a preset.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return p, nil
	case "":
		return DifficultyNormal, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (use easy, normal or hard)", s)
	}
}
