package rustle

import (
	"errors"
	"fmt"
	"slices"
)

// ErrInvalidTransition is returned when a state change is not in the
// transition table.
var ErrInvalidTransition = errors.New("rustle: invalid state transition")

// AppState is the top-level screen of the program.
type AppState int

const (
	StateSplash AppState = iota
	StateMenu
	StateGame
)

// String returns a human-readable name for the state.
func (s AppState) String() string {
	switch s {
	case StateSplash:
		return "Splash"
	case StateMenu:
		return "Menu"
	case StateGame:
		return "Game"
	default:
		return fmt.Sprintf("AppState(%d)", int(s))
	}
}

// MenuState is the sub-state of the menu screen.
type MenuState int

const (
	MenuDisabled MenuState = iota
	MenuMain
	MenuScores
)

// String returns a human-readable name for the menu state.
func (s MenuState) String() string {
	switch s {
	case MenuDisabled:
		return "Disabled"
	case MenuMain:
		return "Main"
	case MenuScores:
		return "Scores"
	default:
		return fmt.Sprintf("MenuState(%d)", int(s))
	}
}

var appTransitions = map[AppState][]AppState{
	StateSplash: {StateMenu},
	StateMenu:   {StateGame},
	StateGame:   {StateMenu},
}

var menuTransitions = map[MenuState][]MenuState{
	MenuDisabled: {MenuMain},
	MenuMain:     {MenuScores, MenuDisabled},
	MenuScores:   {MenuMain},
}

// CanTransition reports whether the app may move from one state to another.
func CanTransition(from, to AppState) bool {
	return slices.Contains(appTransitions[from], to)
}

// CanTransitionMenu reports whether the menu may move between sub-states.
func CanTransitionMenu(from, to MenuState) bool {
	return slices.Contains(menuTransitions[from], to)
}

// Machine holds the current app and menu states.
// The zero value starts on the splash screen with the menu disabled.
type Machine struct {
	app  AppState
	menu MenuState
}

// App returns the current top-level state.
func (m *Machine) App() AppState {
	return m.app
}

// Menu returns the current menu sub-state.
func (m *Machine) Menu() MenuState {
	return m.menu
}

// Transition moves to another top-level state.
func (m *Machine) Transition(to AppState) error {
	if !CanTransition(m.app, to) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, m.app, to)
	}
	m.app = to
	return nil
}

// SetMenu moves to another menu sub-state.
func (m *Machine) SetMenu(to MenuState) error {
	if !CanTransitionMenu(m.menu, to) {
		return fmt.Errorf("%w: menu %s -> %s", ErrInvalidTransition, m.menu, to)
	}
	m.menu = to
	return nil
}
