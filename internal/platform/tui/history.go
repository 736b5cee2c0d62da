package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/kulki/internal/games/kulki"
)

// History panel layout constants
const (
	historyWidth = 28 // Width of the panel including its border
	maxHistory   = 200
)

// moveHistory lists the accepted moves of the current game, newest first.
type moveHistory struct {
	table table.Model
	rows  []table.Row
	count int
}

func newMoveHistory(height int) moveHistory {
	columns := []table.Column{
		{Title: "#", Width: 4},
		{Title: "Move", Width: 7},
		{Title: "Pts", Width: 5},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithHeight(max(height, 3)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = lipgloss.NewStyle()
	t.SetStyles(s)

	return moveHistory{table: t}
}

// add records an accepted move.
func (h *moveHistory) add(out kulki.Outcome) {
	if !out.Moved || !out.Result.Accepted {
		return
	}
	h.count++

	pts := ""
	if out.Result.Points > 0 {
		pts = fmt.Sprintf("+%d", out.Result.Points)
	}
	row := table.Row{
		fmt.Sprint(h.count),
		kulki.CellName(out.From) + "-" + kulki.CellName(out.To),
		pts,
	}

	h.rows = append([]table.Row{row}, h.rows...)
	if len(h.rows) > maxHistory {
		h.rows = h.rows[:maxHistory]
	}
	h.table.SetRows(h.rows)
}

// reset forgets all moves.
func (h *moveHistory) reset() {
	h.rows = nil
	h.count = 0
	h.table.SetRows(nil)
}

func (h *moveHistory) setHeight(height int) {
	h.table.SetHeight(max(height, 3))
}

// view renders the panel with a border.
func (h moveHistory) view() string {
	style := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	return style.Render(h.table.View())
}
