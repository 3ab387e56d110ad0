package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/bubble-rustle/internal/games/rustle"
)

// scoresView renders the leaderboard header and table, best first.
func scoresView(top []int) string {
	if len(top) == 0 {
		return headerStyle.Render(rustle.TextNoScores)
	}

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1).
		MarginBottom(1)

	return lipgloss.JoinVertical(lipgloss.Center,
		headerStyle.Render(rustle.TextScores),
		tableStyle.Render(newScoreTable(top).View()),
	)
}

// newScoreTable builds a read-only table of ranked scores.
func newScoreTable(top []int) table.Model {
	columns := []table.Column{
		{Title: "Rank", Width: 6},
		{Title: "Score", Width: 10},
	}

	rows := make([]table.Row, len(top))
	for i, score := range top {
		rows[i] = table.Row{
			fmt.Sprintf("%d.", i+1),
			fmt.Sprintf("%d", score),
		}
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithHeight(len(rows)+1),
		table.WithFocused(false),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	// Nothing is selectable, so the cursor row looks like the others.
	s.Selected = lipgloss.NewStyle()
	t.SetStyles(s)

	return t
}
