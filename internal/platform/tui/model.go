package tui

import (
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/bubble-rustle/internal/core"
	"github.com/vovakirdan/bubble-rustle/internal/games/rustle"
)

// Model is the Bubble Tea model for running the game.
type Model struct {
	game     *rustle.App
	screen   *core.Screen
	config   core.RuntimeConfig
	keys     KeyMap
	help     help.Model
	holds    *holdTracker
	input    core.InputFrame
	log      *log.Logger
	now      func() time.Time
	quitting bool
}

// NewModel creates a Bubble Tea model for the game and resets it to the
// splash screen.
func NewModel(game *rustle.App, cfg core.RuntimeConfig, logger *log.Logger) Model {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	game.Reset(cfg)

	h := help.New()
	h.Width = cfg.ScreenW

	return Model{
		game:   game,
		screen: core.NewScreen(cfg.ScreenW, playHeight(cfg.ScreenH)),
		config: cfg,
		keys:   DefaultKeyMap(),
		help:   h,
		holds:  newHoldTracker(RepeatDelay, HoldWindow),
		input:  core.NewInputFrame(),
		log:    logger,
		now:    time.Now,
	}
}

// playHeight leaves the bottom row for the help line.
func playHeight(h int) int {
	return max(h-1, 1)
}

// Init sets the terminal title and starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		tea.SetWindowTitle(m.game.Title()),
		tickCmd(m.config.TickInterval()),
	)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey records the key for the next tick.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keys.Action(msg)
	switch action {
	case core.ActionNone:
		return m, nil
	case core.ActionQuit:
		m.quitting = true
		m.log.Info("quit key pressed", "mode", m.game.AppState())
		return m, tea.Quit
	}

	m.input.Set(action)
	m.holds.Press(action, m.now())
	return m, nil
}

// handleResize changes only the cell projection. The arena keeps its size.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, playHeight(msg.Height))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick runs the simulation steps for one tick. Presses gathered since
// the last tick go to the first step only; held keys apply to every step.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	var result core.StepResult
	for range m.config.StepsPerTick() {
		m.holds.Apply(&m.input, now)
		result = m.game.Step(m.input)
		m.input.Clear()
		if m.game.AppState() != rustle.StateGame {
			m.holds.Reset()
		}
		if result.State.Quit {
			break
		}
	}

	if result.State.Quit {
		m.quitting = true
		m.log.Info("leaving", "mode", result.State.Mode)
		return m, tea.Quit
	}
	return m, tickCmd(m.config.TickInterval())
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var body string
	var keys help.KeyMap = m.keys
	switch m.game.AppState() {
	case rustle.StateMenu:
		body = menuView(m.game, m.screen.Width(), m.screen.Height())
		keys = menuHelp{m.keys}
	default:
		m.game.Render(m.screen)
		body = RenderScreen(m.screen)
		if m.game.AppState() == rustle.StateSplash {
			keys = menuHelp{m.keys}
		}
	}
	return body + "\n" + helpStyle.Render(m.help.View(keys))
}

// Run starts the Bubble Tea program and blocks until the player quits.
func Run(game *rustle.App, cfg core.RuntimeConfig, logger *log.Logger) error {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	model := NewModel(game, cfg, logger)

	var opts []tea.ProgramOption
	if game.Config().Window.Fullscreen {
		opts = append(opts, tea.WithAltScreen())
	}

	logger.Info("starting", "width", cfg.ScreenW, "height", cfg.ScreenH, "fps", cfg.TickRate, "steps_per_tick", cfg.StepsPerTick())
	_, err := tea.NewProgram(model, opts...).Run()
	if err != nil {
		logger.Error("program stopped", "err", err)
		return err
	}
	logger.Info("stopped")
	return nil
}
