package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/bubble-rustle/internal/games/rustle"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("14")).
			MarginBottom(1)

	buttonStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Foreground(lipgloss.Color("250")).
			Padding(0, 2).
			Width(buttonWidth).
			Align(lipgloss.Center)

	activeButtonStyle = buttonStyle.
				BorderForeground(lipgloss.Color("11")).
				Foreground(lipgloss.Color("229")).
				Bold(true)

	headerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("229")).
			MarginBottom(1)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

const buttonWidth = 21

// menuView renders the main menu or the scores view, centred in the given area.
func menuView(app *rustle.App, width, height int) string {
	parts := []string{titleStyle.Render(app.Title())}

	if app.MenuState() == rustle.MenuScores {
		parts = append(parts, scoresView(app.TopScores()))
	}

	cursor := app.Cursor()
	for i, b := range app.Buttons() {
		label := b.Label()
		style := buttonStyle
		if i == cursor {
			label = rustle.CursorMark + label
			style = activeButtonStyle
		}
		parts = append(parts, style.Render(label))
	}

	content := lipgloss.JoinVertical(lipgloss.Center, parts...)
	if width <= 0 || height <= 0 {
		return content
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
