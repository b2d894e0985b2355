package datastore

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lepinkainen/steamstats/internal/library"
	"github.com/lepinkainen/steamstats/internal/testutil"
)

func TestExportLibrary(t *testing.T) {
	env := testutil.NewTestEnv(t)
	dbPath := env.Path("stats.db")

	games := []library.GameView{
		{Name: "Counter-Strike 2", AppID: 730, PlaytimeHours: 200.0, LastPlayed: "Jun 05, 2024"},
		{Name: "Portal", AppID: 400, PlaytimeHours: 0.5, LastPlayed: "Never"},
	}
	summary := library.Summary{
		TotalGames:      2,
		TotalPlaytime:   200.5,
		MostPlayedGame:  &library.SummaryGame{Name: "Counter-Strike 2", PlaytimeHours: 200.0},
		UnplayedCount:   1,
		PlayedCount:     1,
		AveragePlaytime: 200.5,
	}

	err := ExportLibrary(NewSQLiteStore(dbPath), "76561197960287930", "TestPlayer", games, summary)
	require.NoError(t, err)

	db, err := sql.Open("sqlite", dbPath)
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	var gameCount int
	require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM steam_library").Scan(&gameCount))
	assert.Equal(t, 2, gameCount)

	var name string
	var hours float64
	require.NoError(t, db.QueryRow(
		"SELECT name, playtime_hours FROM steam_library WHERE appid = 730").Scan(&name, &hours))
	assert.Equal(t, "Counter-Strike 2", name)
	assert.InDelta(t, 200.0, hours, 0.01)

	var playerName, mostPlayed string
	var totalGames int
	require.NoError(t, db.QueryRow(
		"SELECT player_name, most_played_game, total_games FROM library_summary").
		Scan(&playerName, &mostPlayed, &totalGames))
	assert.Equal(t, "TestPlayer", playerName)
	assert.Equal(t, "Counter-Strike 2", mostPlayed)
	assert.Equal(t, 2, totalGames)
}

func TestExportLibraryEmptySummaryGame(t *testing.T) {
	env := testutil.NewTestEnv(t)
	dbPath := env.Path("empty.db")

	err := ExportLibrary(NewSQLiteStore(dbPath), "76561197960287930", "TestPlayer", nil, library.Summary{})
	require.NoError(t, err)

	db, err := sql.Open("sqlite", dbPath)
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	var mostPlayed string
	require.NoError(t, db.QueryRow("SELECT most_played_game FROM library_summary").Scan(&mostPlayed))
	assert.Equal(t, "", mostPlayed)
}
