package core

import (
	"math"
	"time"
)

// SimRate is the fixed simulation rate. Every Step advances the game by
// 1/SimRate seconds whatever the platform's tick rate is.
const SimRate = 60

// StepSeconds is the simulated time of one Step.
const StepSeconds = 1.0 / SimRate

// RuntimeConfig contains configuration passed to games at initialization.
type RuntimeConfig struct {
	ScreenW  int // Screen width in characters
	ScreenH  int // Screen height in characters
	TickRate int // Platform ticks (redraws) per second, at most SimRate
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}

// StepsPerTick returns how many simulation steps one platform tick runs so
// the game keeps real time at a lower tick rate.
func (c RuntimeConfig) StepsPerTick() int {
	if c.TickRate <= 0 || c.TickRate >= SimRate {
		return 1
	}
	return int(math.Round(float64(SimRate) / float64(c.TickRate)))
}

// TickInterval returns the wall-clock time between platform ticks.
func (c RuntimeConfig) TickInterval() time.Duration {
	return time.Second * time.Duration(c.StepsPerTick()) / SimRate
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Mode   string // Top-level screen, e.g. "Splash", "Menu", "Game"
	Score  int    // Current run score
	Lives  int    // Lives left in the current run
	Paused bool   // Whether the run is paused
	Quit   bool   // Whether the player asked to leave the program
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
}
