package cmd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lepinkainen/steamstats/internal/library"
	"github.com/lepinkainen/steamstats/internal/tui"
)

func TestPrintSelectionSelected(t *testing.T) {
	game := library.GameView{Name: "Half-Life", AppID: 70, PlaytimeHours: 1.5, LastPlayed: "Jun 10, 2024"}
	var out bytes.Buffer

	err := printSelection(&out, tui.SelectionResult{Action: tui.ActionSelected, Selection: &game})
	require.NoError(t, err)

	output := out.String()
	assert.Contains(t, output, "Half-Life")
	assert.Contains(t, output, "Playtime: 1.5 hours")
	assert.Contains(t, output, "Steam AppID: 70")
}

func TestPrintSelectionSkipped(t *testing.T) {
	var out bytes.Buffer

	err := printSelection(&out, tui.SelectionResult{Action: tui.ActionSkipped})
	require.NoError(t, err)
	assert.Contains(t, out.String(), "No game selected")
}

func TestPrintSelectionAborted(t *testing.T) {
	var out bytes.Buffer

	err := printSelection(&out, tui.SelectionResult{Action: tui.ActionStopped})
	require.NoError(t, err)
	assert.Contains(t, out.String(), "Selection aborted")
	assert.NotContains(t, out.String(), "No game selected")
}

func TestPrintGameStats(t *testing.T) {
	var out bytes.Buffer
	printGameStats(&out, library.GameView{Name: "Portal", AppID: 400, PlaytimeHours: 0.5, LastPlayed: "Never"})

	output := out.String()
	assert.Contains(t, output, "Portal")
	assert.Contains(t, output, "Playtime: 0.5 hours")
	assert.Contains(t, output, "Last Played: Never")
}
