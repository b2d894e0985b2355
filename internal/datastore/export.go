package datastore

import (
	"fmt"

	"github.com/lepinkainen/steamstats/internal/library"
)

// DatabaseName is the logical database exports are written to.
const DatabaseName = "steamstats"

const libraryTableSchema = `CREATE TABLE IF NOT EXISTS steam_library (
	steam_id TEXT,
	appid INTEGER,
	name TEXT,
	playtime_hours REAL,
	last_played TEXT
)`

const summaryTableSchema = `CREATE TABLE IF NOT EXISTS library_summary (
	steam_id TEXT,
	player_name TEXT,
	total_games INTEGER,
	total_playtime REAL,
	most_played_game TEXT,
	unplayed_count INTEGER,
	played_count INTEGER,
	average_playtime REAL
)`

// ExportLibrary writes the per-game views and the library summary for one
// account. Existing rows are left in place; repeated exports append.
func ExportLibrary(store Store, steamID, playerName string, games []library.GameView, summary library.Summary) error {
	if err := store.Connect(); err != nil {
		return fmt.Errorf("failed to connect to store: %w", err)
	}
	defer func() { _ = store.Close() }()

	if err := store.CreateTable(libraryTableSchema); err != nil {
		return err
	}
	if err := store.CreateTable(summaryTableSchema); err != nil {
		return err
	}

	gameRows := make([]map[string]any, 0, len(games))
	for _, game := range games {
		gameRows = append(gameRows, map[string]any{
			"steam_id":       steamID,
			"appid":          game.AppID,
			"name":           game.Name,
			"playtime_hours": game.PlaytimeHours,
			"last_played":    game.LastPlayed,
		})
	}
	if err := store.BatchInsert(DatabaseName, "steam_library", gameRows); err != nil {
		return fmt.Errorf("failed to export game rows: %w", err)
	}

	mostPlayed := ""
	if summary.MostPlayedGame != nil {
		mostPlayed = summary.MostPlayedGame.Name
	}
	summaryRow := map[string]any{
		"steam_id":         steamID,
		"player_name":      playerName,
		"total_games":      summary.TotalGames,
		"total_playtime":   summary.TotalPlaytime,
		"most_played_game": mostPlayed,
		"unplayed_count":   summary.UnplayedCount,
		"played_count":     summary.PlayedCount,
		"average_playtime": summary.AveragePlaytime,
	}
	if err := store.BatchInsert(DatabaseName, "library_summary", []map[string]any{summaryRow}); err != nil {
		return fmt.Errorf("failed to export summary row: %w", err)
	}

	return nil
}
