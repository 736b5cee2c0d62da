package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/kulki/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestKeyMapAction(t *testing.T) {
	km := DefaultKeyMap()

	tests := []struct {
		name     string
		msg      tea.KeyMsg
		expected core.Action
	}{
		{"arrow up", tea.KeyMsg{Type: tea.KeyUp}, core.ActionUp},
		{"vim up", runeKey('k'), core.ActionUp},
		{"arrow down", tea.KeyMsg{Type: tea.KeyDown}, core.ActionDown},
		{"vim down", runeKey('j'), core.ActionDown},
		{"arrow left", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft},
		{"vim left", runeKey('h'), core.ActionLeft},
		{"arrow right", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight},
		{"vim right", runeKey('l'), core.ActionRight},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionSelect},
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.ActionSelect},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionCancel},
		{"restart while playing", runeKey('r'), core.ActionNone},
		{"quit is handled by the model", runeKey('q'), core.ActionNone},
		{"unbound", runeKey('x'), core.ActionNone},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, km.Action(tc.msg))
		})
	}
}

func TestKeyMapRestartWhenEnabled(t *testing.T) {
	km := DefaultKeyMap()
	km.Restart.SetEnabled(true)
	assert.Equal(t, core.ActionRestart, km.Action(runeKey('r')))
}

func TestKeyMapHelp(t *testing.T) {
	km := DefaultKeyMap()
	assert.Len(t, km.ShortHelp(), 5)
	assert.Len(t, km.FullHelp(), 3)
}
