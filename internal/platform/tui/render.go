package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/kulki/internal/core"
)

// Theme maps core.Color to lipgloss styles.
type Theme map[core.Color]lipgloss.Style

// NewTheme builds the styles for the board. ballColors holds one lipgloss
// colour per ball colour; missing entries fall back to the default style.
func NewTheme(ballColors []string) Theme {
	t := Theme{
		core.ColorDefault: lipgloss.NewStyle(),
		core.ColorFrame:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		core.ColorCursor:  lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Bold(true),
		core.ColorTarget:  lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		core.ColorNotice:  lipgloss.NewStyle().Foreground(lipgloss.Color("229")).Bold(true),
	}
	for i, c := range ballColors {
		bc := core.BallColor(i + 1)
		if bc == core.ColorDefault {
			break
		}
		t[bc] = lipgloss.NewStyle().Foreground(lipgloss.Color(c)).Bold(true)
	}
	return t
}

// style returns the style for c, or the default style.
func (t Theme) style(c core.Color) lipgloss.Style {
	if s, ok := t[c]; ok {
		return s
	}
	return t[core.ColorDefault]
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen, theme Theme) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		// Group consecutive cells with the same color for efficiency
		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			startColor := cell.Color

			// Collect consecutive cells with same color
			var run strings.Builder
			for x < s.Width() {
				cell = s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			sb.WriteString(theme.style(startColor).Render(run.String()))
		}
	}
	return sb.String()
}
