package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lepinkainen/steamstats/internal/library"
)

func testMatches() []library.GameView {
	return []library.GameView{
		{Name: "Half-Life", AppID: 70, PlaytimeHours: 1.5, LastPlayed: "Jun 10, 2024"},
		{Name: "Half-Life 2", AppID: 220, PlaytimeHours: 20.0, LastPlayed: "May 01, 2024"},
	}
}

func TestSelectGameNoMatchesSkips(t *testing.T) {
	result, err := SelectGame("half", nil)
	require.NoError(t, err)
	assert.Equal(t, ActionSkipped, result.Action)
	assert.Nil(t, result.Selection)
}

func TestModelEnterSelectsHighlightedGame(t *testing.T) {
	m := newModel("half", []gameItem{
		{GameView: testMatches()[0]},
		{GameView: testMatches()[1]},
	})

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	final := updated.(*model)

	assert.Equal(t, ActionSelected, final.result.Action)
	require.NotNil(t, final.result.Selection)
	assert.Equal(t, "Half-Life", final.result.Selection.Name)
}

func TestModelSkipAndStopKeys(t *testing.T) {
	testCases := []struct {
		key      string
		expected SelectionAction
	}{
		{key: "s", expected: ActionSkipped},
		{key: "esc", expected: ActionSkipped},
		{key: "q", expected: ActionStopped},
	}

	for _, tc := range testCases {
		t.Run(tc.key, func(t *testing.T) {
			m := newModel("half", []gameItem{{GameView: testMatches()[0]}})

			var msg tea.Msg
			if tc.key == "esc" {
				msg = tea.KeyMsg{Type: tea.KeyEsc}
			} else {
				msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(tc.key)}
			}

			updated, _ := m.Update(msg)
			final := updated.(*model)
			assert.Equal(t, tc.expected, final.result.Action)
		})
	}
}

func TestSelectGameUsesProgramResult(t *testing.T) {
	original := runProgram
	defer func() { runProgram = original }()

	runProgram = func(m tea.Model) (tea.Model, error) {
		typed := m.(*model)
		typed.result = SelectionResult{
			Action:    ActionSelected,
			Selection: &library.GameView{Name: "Half-Life 2"},
		}
		return typed, nil
	}

	result, err := SelectGame("half", testMatches())
	require.NoError(t, err)
	assert.Equal(t, ActionSelected, result.Action)
	assert.Equal(t, "Half-Life 2", result.Selection.Name)
}

func TestGameItemDescription(t *testing.T) {
	item := gameItem{GameView: testMatches()[1]}
	assert.Equal(t, "20.0 hours | last played May 01, 2024", item.Description())
}
