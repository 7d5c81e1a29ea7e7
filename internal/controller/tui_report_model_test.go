package controller

import (
	"testing"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTruncateToWidth(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		width int
		want  string
	}{
		{"fits", "short", 10, "short"},
		{"zero width", "anything", 0, ""},
		{"width one", "anything", 1, "…"},
		{"truncated", "abcdefgh", 5, "abcd…"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, truncateToWidth(tt.text, tt.width))
		})
	}
}

func TestAnimateScroll(t *testing.T) {
	// Before the pause runs out the text is only truncated.
	assert.Equal(t, "abcd…", animateScroll("abcdefgh", 5, 0))

	// Short text never scrolls.
	assert.Equal(t, "ab", animateScroll("ab", 5, 100))

	// After the pause the window advances through the text.
	first := animateScroll("abcdefgh", 5, 5)
	second := animateScroll("abcdefgh", 5, 6)
	assert.NotEqual(t, first, second)
	assert.Len(t, []rune(first), 5)
}

func TestReportModel_ToggleDetails(t *testing.T) {
	items := []list.Item{
		fileItem{path: "a.js", count: 1, ranges: []string{"lines 2-3"}},
	}
	model := newReportModel(items, "test")

	updated, _ := model.Update(tea.KeyMsg{Type: tea.KeyEnter})
	rm, ok := updated.(reportModel)
	require.True(t, ok)
	assert.True(t, rm.showDetails)
	assert.Contains(t, rm.View(), "lines 2-3")

	updated, _ = rm.Update(tea.KeyMsg{Type: tea.KeyEsc})
	rm, ok = updated.(reportModel)
	require.True(t, ok)
	assert.False(t, rm.showDetails)
}

func TestReportModel_QuitClearsView(t *testing.T) {
	model := newReportModel(nil, "test")

	updated, _ := model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	rm, ok := updated.(reportModel)
	require.True(t, ok)
	assert.True(t, rm.quitting)
	assert.Equal(t, "", rm.View())
}
