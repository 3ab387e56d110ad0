// Package rustle implements Bubble Rustle!, a bubble shooter.
//
// The player walks along the floor of a walled arena and fires a hook
// upward. A hooked bubble pops into two smaller ones until the smallest tier
// simply vanishes, leaving a falling reward behind. The run ends when every
// bubble is gone or the last life is lost, and its score goes to the
// leaderboard.
//
// The package is pure logic: it consumes core.InputFrame values once per
// fixed tick and draws into a core.Screen. Splash, menu and game screens are
// driven by an explicit state machine.
package rustle

import (
	"io"
	"math"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/bubble-rustle/internal/assets"
	"github.com/vovakirdan/bubble-rustle/internal/config"
	"github.com/vovakirdan/bubble-rustle/internal/core"
	"github.com/vovakirdan/bubble-rustle/internal/world"
)

// GameID identifies the game's scores in a shared store.
const GameID = "rustle"

// Button is a menu button.
type Button int

const (
	ButtonPlay Button = iota
	ButtonScores
	ButtonQuit
	ButtonBack
)

// Label returns the text shown on the button.
func (b Button) Label() string {
	switch b {
	case ButtonPlay:
		return "Let's Play!"
	case ButtonScores:
		return "Scores"
	case ButtonQuit:
		return "Quit!"
	case ButtonBack:
		return "Back to menu!"
	default:
		return ""
	}
}

// Menu texts.
const (
	TextScores   = "Top scores of all time:"
	TextNoScores = "There are no scores yet!"
)

var (
	mainButtons   = []Button{ButtonPlay, ButtonScores, ButtonQuit}
	scoresButtons = []Button{ButtonBack}
)

// system is one step of the game tick.
type system func(*Context, core.InputFrame)

// gameSystems run in this order every unpaused game tick.
var gameSystems = []system{
	respawnSystem,
	movePlayerSystem,
	fireSystem,
	integrateSystem,
	hookSystem,
	hookWallSystem,
	bubbleWallSystem,
	bubbleHookSystem,
	bubblePlayerSystem,
	rewardPlayerSystem,
	rewardWallSystem,
	winSystem,
	hudSystem,
}

// Option configures an App.
type Option func(*App)

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *log.Logger) Option {
	return func(a *App) { a.log = l }
}

// WithLeaderboard sets where finished runs are recorded.
// The default keeps scores in memory.
func WithLeaderboard(b Leaderboard) Option {
	return func(a *App) { a.board = b }
}

// WithConfig sets the game tuning. The default is config.DefaultRustleConfig.
func WithConfig(cfg config.RustleConfig) Option {
	return func(a *App) { a.cfg = cfg }
}

// WithAssets sets the sprite library. The default uses the embedded art.
func WithAssets(lib *assets.Library) Option {
	return func(a *App) { a.lib = lib }
}

// App is the whole game: splash, menu and play screens.
type App struct {
	cfg     config.RustleConfig
	runtime core.RuntimeConfig
	board   Leaderboard
	lib     *assets.Library
	log     *log.Logger

	machine Machine
	ctx     *Context

	tick        uint64
	splashTicks int
	splashLeft  int
	cursor      int
	paused      bool
	quit        bool
}

// New creates the game.
func New(opts ...Option) *App {
	a := &App{
		cfg: config.DefaultRustleConfig(),
	}
	for _, opt := range opts {
		opt(a)
	}
	if a.log == nil {
		a.log = log.New(io.Discard)
	}
	if a.board == nil {
		a.board = NewMemoryLeaderboard()
	}
	if a.lib == nil {
		a.lib = assets.NewLibrary()
	}
	return a
}

// ID returns the unique identifier for this game.
func (a *App) ID() string {
	return GameID
}

// Title returns the window title.
func (a *App) Title() string {
	return a.cfg.Window.Title
}

// Config returns the game tuning in use.
func (a *App) Config() config.RustleConfig {
	return a.cfg
}

// Reset starts over from the splash screen. The leaderboard is kept.
func (a *App) Reset(runtime core.RuntimeConfig) {
	a.runtime = runtime
	dt := core.StepSeconds

	a.ctx = NewContext(a.cfg, a.board, LoadAssets(a.lib), a.log, dt)
	a.machine = Machine{}
	a.tick = 0
	a.cursor = 0
	a.paused = false
	a.quit = false

	a.splashTicks = int(math.Round(a.cfg.Gameplay.SplashSeconds / dt))
	a.enter(StateSplash)
}

// Step advances the game by one tick.
func (a *App) Step(in core.InputFrame) core.StepResult {
	if a.ctx == nil {
		a.Reset(core.DefaultConfig())
	}
	a.tick++

	if in.Has(core.ActionQuit) {
		a.quit = true
		return core.StepResult{State: a.State()}
	}

	switch a.machine.App() {
	case StateSplash:
		a.stepSplash()
	case StateMenu:
		a.stepMenu(in)
	case StateGame:
		a.stepGame(in)
	}
	return core.StepResult{State: a.State()}
}

func (a *App) stepSplash() {
	a.splashLeft--
	if a.splashLeft <= 0 {
		a.transition(StateMenu)
	}
}

func (a *App) stepMenu(in core.InputFrame) {
	buttons := a.Buttons()
	switch {
	case in.Has(core.ActionUp):
		a.cursor = core.Clamp(a.cursor-1, 0, len(buttons)-1)
	case in.Has(core.ActionDown):
		a.cursor = core.Clamp(a.cursor+1, 0, len(buttons)-1)
	case in.Has(core.ActionConfirm):
		a.press(buttons[a.cursor])
	case in.Has(core.ActionBack) && a.machine.Menu() == MenuScores:
		a.press(ButtonBack)
	}
}

// press runs a menu button's action.
func (a *App) press(b Button) {
	switch b {
	case ButtonPlay:
		if a.setMenu(MenuDisabled) {
			a.transition(StateGame)
		}
	case ButtonScores:
		a.setMenu(MenuScores)
	case ButtonBack:
		a.setMenu(MenuMain)
	case ButtonQuit:
		a.log.Info("quit requested")
		a.quit = true
	}
}

func (a *App) stepGame(in core.InputFrame) {
	if in.Has(core.ActionPause) {
		a.paused = !a.paused
	}
	if a.paused {
		return
	}

	ctx := a.ctx
	for _, sys := range gameSystems {
		sys(ctx, in)
		if ctx.Ended() {
			ctx.refreshHUD()
			a.transition(StateMenu)
			break
		}
	}
	ctx.Arena.Compact()
}

// transition leaves the current screen and enters another one.
func (a *App) transition(to AppState) bool {
	from := a.machine.App()
	if err := a.machine.Transition(to); err != nil {
		a.log.Error("state transition rejected", "err", err)
		return false
	}
	a.log.Debug("state transition", "from", from, "to", to)
	a.exit(from)
	a.enter(to)
	return true
}

func (a *App) setMenu(to MenuState) bool {
	from := a.machine.Menu()
	if err := a.machine.SetMenu(to); err != nil {
		a.log.Error("menu transition rejected", "err", err)
		return false
	}
	a.log.Debug("menu transition", "from", from, "to", to)
	a.cursor = 0
	return true
}

// enter sets up a screen.
func (a *App) enter(s AppState) {
	switch s {
	case StateSplash:
		spawnLogo(a.ctx)
		a.splashLeft = a.splashTicks
	case StateMenu:
		a.setMenu(MenuMain)
	case StateGame:
		a.paused = false
		a.ctx.beginRun()
		spawnWalls(a.ctx)
		spawnRootBubble(a.ctx)
		a.log.Info("run started", "lives", a.ctx.Run.Lives)
	}
}

// exit tears down everything the screen owns.
func (a *App) exit(s AppState) {
	a.ctx.Arena.DespawnScreen(screenTag(s))
	a.ctx.Arena.Compact()
}

func screenTag(s AppState) world.ScreenTag {
	switch s {
	case StateSplash:
		return world.ScreenSplash
	case StateMenu:
		return world.ScreenMenu
	case StateGame:
		return world.ScreenGame
	default:
		return world.ScreenNone
	}
}

// State returns the current game state.
func (a *App) State() core.GameState {
	st := core.GameState{
		Mode:   a.machine.App().String(),
		Paused: a.paused,
		Quit:   a.quit,
	}
	if a.ctx != nil {
		st.Score = a.ctx.Run.Score
		st.Lives = a.ctx.Run.Lives
	}
	return st
}

// AppState returns the current top-level screen.
func (a *App) AppState() AppState {
	return a.machine.App()
}

// MenuState returns the current menu sub-state.
func (a *App) MenuState() MenuState {
	return a.machine.Menu()
}

// Buttons returns the buttons of the current menu view.
func (a *App) Buttons() []Button {
	if a.machine.Menu() == MenuScores {
		return scoresButtons
	}
	return mainButtons
}

// Cursor returns the index of the selected button.
func (a *App) Cursor() int {
	return a.cursor
}

// TopScores returns the leaderboard entries to display, best first.
func (a *App) TopScores() []int {
	top, err := a.board.Top(a.cfg.Gameplay.LeaderboardSize)
	if err != nil {
		a.log.Error("cannot read scores", "err", err)
		return nil
	}
	return top
}

// Context exposes the per-run context.
func (a *App) Context() *Context {
	return a.ctx
}
