package cmd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToolsRunListsCapabilities(t *testing.T) {
	var out bytes.Buffer
	cmd := &ToolsCmd{}

	err := cmd.run(&out)
	require.NoError(t, err)

	output := out.String()
	assert.Contains(t, output, "AGENT CAPABILITIES")
	for _, name := range []string{
		"get_total_game_count",
		"get_most_played_games",
		"list_unplayed_games",
		"find_game_stats",
		"get_recently_played_games",
		"get_neglected_games",
		"get_library_summary",
		"get_game_info",
		"summarize_player_reviews",
	} {
		assert.Contains(t, output, name)
	}
}

func TestToolsRunShowsParamDefaults(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, (&ToolsCmd{}).run(&out))

	// Parameter listings include the type and default value.
	assert.Contains(t, out.String(), "default 5")
	assert.Contains(t, out.String(), "default 30")
}
