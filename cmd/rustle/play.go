package main

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/bubble-rustle/internal/core"
	"github.com/vovakirdan/bubble-rustle/internal/games/rustle"
	"github.com/vovakirdan/bubble-rustle/internal/platform/tui"
	"github.com/vovakirdan/bubble-rustle/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play Bubble Rustle!",
	Long: `Start the game at the splash screen.

Controls:
  Left/Right, A/D    - Walk
  Space              - Fire the hook
  Up/Down, W/S, K/J  - Move through the menu
  Enter              - Press the selected button
  Esc/B              - Back from the scores view
  P                  - Pause
  Q/Ctrl+C           - Quit

Scores are kept until the program exits.

Difficulty options:
  easy   - 5 lives, slower bubbles
  normal - 3 lives
  hard   - 2 lives, faster bubbles, slower hook`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(cmd *cobra.Command, args []string) {
	if err := play(); err != nil {
		fail(err)
	}
}

func play() error {
	logger, closeLog, err := newLogger(flagLogPath, flagDebug)
	if err != nil {
		return err
	}
	defer closeLog()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}
	runtime := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
	}

	var board rustle.Leaderboard
	var scores *storage.Board
	store, err := storage.OpenMemory()
	if err != nil {
		logger.Warn("score store unavailable, using a plain list", "err", err)
		board = rustle.NewMemoryLeaderboard()
	} else {
		defer store.Close()
		scores = storage.NewBoard(store, rustle.GameID)
		board = scores
	}

	game := rustle.New(
		rustle.WithConfig(cfg),
		rustle.WithLeaderboard(board),
		rustle.WithLogger(logger),
	)
	if err := tui.Run(game, runtime, logger); err != nil {
		return err
	}

	logSession(logger, scores)
	return nil
}

// logSession writes a summary of the runs played.
func logSession(logger *log.Logger, scores *storage.Board) {
	if scores == nil {
		return
	}
	stats, err := scores.Stats()
	if err != nil {
		logger.Warn("cannot read session stats", "err", err)
		return
	}
	logger.Info("session finished",
		"runs", stats.GamesCount,
		"best", stats.HighScore,
		"average", stats.AvgScore,
	)
}
