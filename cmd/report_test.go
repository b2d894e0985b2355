package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lepinkainen/steamstats/internal/agent"
	"github.com/lepinkainen/steamstats/internal/errors"
	"github.com/lepinkainen/steamstats/internal/library"
	"github.com/lepinkainen/steamstats/internal/ratelimit"
	"github.com/lepinkainen/steamstats/internal/steam"
)

const testSteamID = "76561197960287930"

func newReportTestSession(t *testing.T, payload library.Payload) *agent.Session {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/IPlayerService/GetOwnedGames/v1/", func(w http.ResponseWriter, r *http.Request) {
		writeTestJSON(t, w, map[string]any{"response": payload})
	})
	mux.HandleFunc("/ISteamUser/GetPlayerSummaries/v2/", func(w http.ResponseWriter, r *http.Request) {
		writeTestJSON(t, w, map[string]any{
			"response": map[string]any{
				"players": []map[string]any{{"steamid": testSteamID, "personaname": "TestPlayer"}},
			},
		})
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	client := steam.NewClient("test-key",
		steam.WithBaseURLs(srv.URL, srv.URL),
		steam.WithLimiter(ratelimit.New("test", 1000)),
	)
	return agent.NewSession(client)
}

func writeTestJSON(t *testing.T, w http.ResponseWriter, v any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	require.NoError(t, json.NewEncoder(w).Encode(v))
}

func reportTestPayload() library.Payload {
	return library.Payload{
		GameCount: 3,
		Games: []library.RawGame{
			{Name: "Counter-Strike 2", AppID: 730, PlaytimeForever: 12000, LastPlayed: 1718409600},
			{Name: "Half-Life", AppID: 70, PlaytimeForever: 90, LastPlayed: 1717200000},
			{Name: "Portal", AppID: 400, PlaytimeForever: 30},
		},
	}
}

func TestReportRun(t *testing.T) {
	session := newReportTestSession(t, reportTestPayload())
	cmd := &ReportCmd{ID: testSteamID, Top: 2}
	var out bytes.Buffer

	err := cmd.run(context.Background(), session, &out)
	require.NoError(t, err)

	output := out.String()
	assert.Contains(t, output, "Loaded 3 games for TestPlayer")
	assert.Contains(t, output, "LIBRARY SUMMARY")
	assert.Contains(t, output, "Total Games: 3")
	assert.Contains(t, output, "Most Played Game: Counter-Strike 2 (200.0 hours)")
	assert.Contains(t, output, "Played: 2, Unplayed: 1")
	assert.Contains(t, output, "TOP GAMES BY PLAYTIME")
	// Top is 2, so the unplayed third game stays out of the table.
	assert.NotContains(t, output, "400.0")
}

func TestReportRunWithCSV(t *testing.T) {
	session := newReportTestSession(t, reportTestPayload())
	csvPath := filepath.Join(t.TempDir(), "report.csv")
	cmd := &ReportCmd{ID: testSteamID, Top: 10, CSV: csvPath}
	var out bytes.Buffer

	err := cmd.run(context.Background(), session, &out)
	require.NoError(t, err)
	assert.Contains(t, out.String(), "Game library exported to "+csvPath)

	data, err := os.ReadFile(csvPath)
	require.NoError(t, err)
	content := string(data)
	assert.Contains(t, content, "Game,Hours Played,Last Played")
	assert.Contains(t, content, "Counter-Strike 2,200.0")
	// Unplayed games are appended after the top list.
	assert.Contains(t, content, "Portal,0.5,Never")
}

func TestReportRunPrivateProfile(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/IPlayerService/GetOwnedGames/v1/", func(w http.ResponseWriter, r *http.Request) {
		writeTestJSON(t, w, map[string]any{"response": map[string]any{}})
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	client := steam.NewClient("test-key",
		steam.WithBaseURLs(srv.URL, srv.URL),
		steam.WithLimiter(ratelimit.New("test", 1000)),
	)
	session := agent.NewSession(client)

	cmd := &ReportCmd{ID: testSteamID, Top: 5}
	var out bytes.Buffer

	err := cmd.run(context.Background(), session, &out)
	require.Error(t, err)
	assert.True(t, errors.IsProfileError(err))
	assert.Contains(t, out.String(), "Possible solutions:")
	assert.Contains(t, out.String(), "https://steamid.io/")
}

func TestWriteGamesTable(t *testing.T) {
	var out bytes.Buffer
	writeGamesTable(&out, []library.GameView{
		{Name: "Counter-Strike 2", AppID: 730, PlaytimeHours: 1234.5, LastPlayed: "Jun 15, 2024"},
	})

	output := out.String()
	assert.Contains(t, output, "GAME")
	assert.Contains(t, output, "HOURS PLAYED")
	assert.Contains(t, output, "Counter-Strike 2")
	assert.Contains(t, output, "1,234.5")
}
