package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/bubble-rustle/internal/core"
)

// Terminals report presses only, never releases, so a key counts as held for
// a while after each press. The first press has to outlast the terminal's
// auto-repeat delay (typically 250-600ms); once repeats arrive they come
// every 30-50ms and a short window releases the key soon after they stop.
const (
	RepeatDelay = 500 * time.Millisecond
	HoldWindow  = 150 * time.Millisecond
)

// KeyMap defines the key bindings for every screen.
type KeyMap struct {
	Left    key.Binding
	Right   key.Binding
	Up      key.Binding
	Down    key.Binding
	Fire    key.Binding
	Confirm key.Binding
	Back    key.Binding
	Pause   key.Binding
	Quit    key.Binding
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "a"),
			key.WithHelp("←/a", "move left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d"),
			key.WithHelp("→/d", "move right"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "w", "k"),
			key.WithHelp("↑/w/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "s", "j"),
			key.WithHelp("↓/s/j", "down"),
		),
		Fire: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "fire"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "select"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "pause"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp returns key bindings for the in-game help line.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Fire, k.Pause, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Fire, k.Pause},
		{k.Up, k.Down, k.Confirm, k.Back, k.Quit},
	}
}

// menuHelp is the help line shown on the splash and menu screens.
type menuHelp struct{ KeyMap }

func (m menuHelp) ShortHelp() []key.Binding {
	return []key.Binding{m.Up, m.Down, m.Confirm, m.Back, m.Quit}
}

// Action translates a key message to a game action.
func (k KeyMap) Action(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit
	case key.Matches(msg, k.Left):
		return core.ActionLeft
	case key.Matches(msg, k.Right):
		return core.ActionRight
	case key.Matches(msg, k.Up):
		return core.ActionUp
	case key.Matches(msg, k.Down):
		return core.ActionDown
	case key.Matches(msg, k.Fire):
		return core.ActionFire
	case key.Matches(msg, k.Confirm):
		return core.ActionConfirm
	case key.Matches(msg, k.Back):
		return core.ActionBack
	case key.Matches(msg, k.Pause):
		return core.ActionPause
	}
	return core.ActionNone
}

// holdable reports whether an action is continuous rather than a one-shot press.
func holdable(a core.Action) bool {
	return a == core.ActionLeft || a == core.ActionRight
}

// holdTracker turns repeated key presses into held state.
type holdTracker struct {
	delay  time.Duration
	window time.Duration
	keys   map[core.Action]hold
}

type hold struct {
	at        time.Time
	repeating bool
}

func newHoldTracker(delay, window time.Duration) *holdTracker {
	return &holdTracker{
		delay:  delay,
		window: window,
		keys:   make(map[core.Action]hold),
	}
}

// Press records a press of a holdable action at the given time. A press that
// arrives while the key is still held is an auto-repeat.
func (h *holdTracker) Press(a core.Action, at time.Time) {
	if !holdable(a) {
		return
	}
	// Opposite directions cancel: the newest one wins.
	switch a {
	case core.ActionLeft:
		delete(h.keys, core.ActionRight)
	case core.ActionRight:
		delete(h.keys, core.ActionLeft)
	}
	prev, ok := h.keys[a]
	h.keys[a] = hold{at: at, repeating: ok && at.Sub(prev.at) <= h.limit(prev)}
}

// Apply marks every action still inside its window as held and forgets the
// rest.
func (h *holdTracker) Apply(frame *core.InputFrame, now time.Time) {
	for a, k := range h.keys {
		if now.Sub(k.at) > h.limit(k) {
			delete(h.keys, a)
			continue
		}
		frame.SetHeld(a)
	}
}

// Reset forgets every held key.
func (h *holdTracker) Reset() {
	clear(h.keys)
}

func (h *holdTracker) limit(k hold) time.Duration {
	if k.repeating {
		return h.window
	}
	return h.delay
}
