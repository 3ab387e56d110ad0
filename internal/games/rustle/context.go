package rustle

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/bubble-rustle/internal/assets"
	"github.com/vovakirdan/bubble-rustle/internal/config"
	"github.com/vovakirdan/bubble-rustle/internal/world"
)

// RunState is the per-run aggregate.
type RunState struct {
	Score   int // only grows during a run
	Lives   int // only shrinks during a run
	Bubbles int // bubbles still to pop
}

// NewRunState returns the state a run starts with.
func NewRunState(cfg config.RustleConfig) RunState {
	return RunState{
		Score:   0,
		Lives:   cfg.Gameplay.Lives,
		Bubbles: 1,
	}
}

// PlayerState tracks the player entity across respawns.
type PlayerState struct {
	Alive      bool
	HookActive bool
}

// HUD holds the texts shown above the arena.
type HUD struct {
	Score string
	Lives string
}

// Assets holds the handles the game draws with.
type Assets struct {
	Lib    *assets.Library
	Player assets.Handle
	Hook   assets.Handle
	Logo   assets.Handle
}

// LoadAssets requests every sprite the game needs. Nothing is decoded yet.
func LoadAssets(lib *assets.Library) Assets {
	return Assets{
		Lib:    lib,
		Player: lib.Load(assets.Player),
		Hook:   lib.Load(assets.Hook),
		Logo:   lib.Load(assets.Logo),
	}
}

// Sprite returns the decoded sprite for an asset name.
func (a Assets) Sprite(name string) (assets.Sprite, bool) {
	var h assets.Handle
	switch name {
	case assets.Player:
		h = a.Player
	case assets.Hook:
		h = a.Hook
	case assets.Logo:
		h = a.Logo
	default:
		return assets.Sprite{}, false
	}
	if a.Lib == nil {
		return assets.Sprite{}, false
	}
	s, err := a.Lib.Get(h)
	return s, err == nil
}

// Context is everything a system may read or write during a tick.
type Context struct {
	Cfg    config.RustleConfig
	Arena  *world.Arena
	Run    RunState
	Player PlayerState
	HUD    HUD
	Board  Leaderboard
	Assets Assets
	Log    *log.Logger
	DT     float64

	ended bool
}

// NewContext creates a context with a fresh run.
func NewContext(cfg config.RustleConfig, board Leaderboard, a Assets, logger *log.Logger, dt float64) *Context {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	c := &Context{
		Cfg:    cfg,
		Arena:  world.NewArena(),
		Run:    NewRunState(cfg),
		Board:  board,
		Assets: a,
		Log:    logger,
		DT:     dt,
	}
	c.refreshHUD()
	return c
}

// Ended reports whether the run finished during the current tick.
func (c *Context) Ended() bool {
	return c.ended
}

// killPlayer removes the player and takes a life.
func (c *Context) killPlayer(id world.EntityID) {
	c.Arena.Despawn(id)
	c.Player.Alive = false
	if c.Run.Lives > 0 {
		c.Run.Lives--
	}
	c.HUD.Lives = fmt.Sprintf("Lives: %d", c.Run.Lives)
}

// finishRun records the score and resets the run. It does nothing if the
// run already finished this tick.
func (c *Context) finishRun(reason string) {
	if c.ended {
		return
	}
	c.ended = true

	score := c.Run.Score
	if c.Board != nil {
		if err := c.Board.Record(score); err != nil {
			c.Log.Error("cannot record score", "score", score, "err", err)
		}
	}
	c.Log.Info("run finished",
		"reason", reason,
		"score", score,
		"bubbles_left", c.Arena.Count(world.RoleBubble),
	)

	c.Run = NewRunState(c.Cfg)
	c.Player = PlayerState{}
}

// beginRun prepares a new run when the game screen is entered.
func (c *Context) beginRun() {
	c.ended = false
	c.Run = NewRunState(c.Cfg)
	c.Player = PlayerState{}
	c.refreshHUD()
}

func (c *Context) refreshHUD() {
	c.HUD.Score = fmt.Sprintf("Score: %d", c.Run.Score)
	c.HUD.Lives = fmt.Sprintf("Lives: %d", c.Run.Lives)
}
