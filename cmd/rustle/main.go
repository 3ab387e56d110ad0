// rustle is Bubble Rustle!, a bubble shooter for the terminal.
//
// Usage:
//
//	rustle                   - Play (splash, menu, game)
//	rustle play              - Same as above
//	rustle config            - Print the effective game config as YAML
//
// Global flags:
//
//	--fps <rate>             - Set redraw rate, capped at 60 (default: 60)
//	--log <path>             - Append logs to a file (default: no logging)
//	--debug                  - Log state transitions too
//	--config <path>          - Load game tuning from a YAML file
//	--difficulty <preset>    - easy, normal or hard
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/bubble-rustle/internal/config"
)

var (
	// Global flags
	flagFPS        int
	flagLogPath    string
	flagDebug      bool
	flagConfig     string
	flagDifficulty string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "rustle",
	Short: "Bubble Rustle! - pop bubbles in your terminal",
	Long: `Bubble Rustle! is a bubble shooter played in the terminal.

Walk along the floor and fire your hook at the bouncing bubbles. Every hit
splits a bubble in two smaller ones until the smallest vanish and drop a
reward. Clear them all before you run out of lives.

Examples:
  rustle
  rustle play --difficulty hard
  rustle play --config ./my-rustle.yaml --log rustle.log
  rustle config --difficulty easy`,
	Run: runPlay,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Redraw rate in frames per second; the game always simulates at 60Hz")
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log", "", "Append logs to this file")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(configCmd)
}

// fail prints an error and exits.
func fail(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}

// newLogger returns a logger writing to path, or one that discards
// everything when path is empty. The terminal belongs to the game.
func newLogger(path string, debug bool) (*log.Logger, func(), error) {
	var w io.Writer = io.Discard
	closeFn := func() {}
	if path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		w = f
		closeFn = func() { f.Close() }
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "rustle",
	})
	if debug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger, closeFn, nil
}

// loadConfig resolves the game tuning from the config flags.
func loadConfig() (config.RustleConfig, error) {
	cfg, err := config.LoadRustle(flagConfig)
	if err != nil {
		return cfg, err
	}
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return cfg, err
	}
	config.ApplyRustlePreset(&cfg, preset)
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}
