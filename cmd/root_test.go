package cmd

import (
	"testing"

	"github.com/alecthomas/kong"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lepinkainen/steamstats/internal/config"
	"github.com/lepinkainen/steamstats/internal/testutil"
)

func parseCLI(t *testing.T, args ...string) (*CLI, *kong.Context, error) {
	t.Helper()
	cli := &CLI{}
	parser, err := kong.New(cli, kong.Name("steamstats"))
	require.NoError(t, err)
	ctx, err := parser.Parse(args)
	return cli, ctx, err
}

func TestCLIParseReport(t *testing.T) {
	cli, ctx, err := parseCLI(t, "report", "76561197960287930", "--top", "3")
	require.NoError(t, err)

	assert.Equal(t, "report <id>", ctx.Command())
	assert.Equal(t, "76561197960287930", cli.Report.ID)
	assert.Equal(t, 3, cli.Report.Top)
}

func TestCLIParseReportDefaults(t *testing.T) {
	cli, ctx, err := parseCLI(t, "report")
	require.NoError(t, err)

	assert.Equal(t, "report", ctx.Command())
	assert.Equal(t, 10, cli.Report.Top)
	assert.Empty(t, cli.Report.CSV)
}

func TestCLIParseExportFormat(t *testing.T) {
	cli, _, err := parseCLI(t, "export", "--format", "markdown", "--covers")
	require.NoError(t, err)
	assert.Equal(t, "markdown", cli.Export.Format)
	assert.True(t, cli.Export.Covers)

	_, _, err = parseCLI(t, "export", "--format", "xml")
	require.Error(t, err)
}

func TestCLIParseFindName(t *testing.T) {
	cli, _, err := parseCLI(t, "find", "half", "life")
	require.NoError(t, err)
	assert.Equal(t, []string{"half", "life"}, cli.Find.Name)
}

func TestCLIParseGlobalFlags(t *testing.T) {
	cli, _, err := parseCLI(t, "--debug", "--overwrite", "--api-key", "abc123", "tools")
	require.NoError(t, err)
	assert.True(t, cli.Debug)
	assert.True(t, cli.Overwrite)
	assert.Equal(t, "abc123", cli.APIKey)
}

func TestResolveSteamID(t *testing.T) {
	state := testutil.SaveConfigState()
	defer testutil.RestoreConfigState(state)

	config.SteamID = "configured-id"
	id, err := resolveSteamID("explicit-id")
	require.NoError(t, err)
	assert.Equal(t, "explicit-id", id)

	id, err = resolveSteamID("")
	require.NoError(t, err)
	assert.Equal(t, "configured-id", id)

	config.SteamID = ""
	_, err = resolveSteamID("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "STEAM_ID")
}

func TestNewSessionRequiresAPIKey(t *testing.T) {
	state := testutil.SaveConfigState()
	defer testutil.RestoreConfigState(state)

	config.SteamAPIKey = ""
	_, err := newSession()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "https://steamcommunity.com/dev/apikey")

	config.SteamAPIKey = "test-key"
	session, err := newSession()
	require.NoError(t, err)
	assert.NotNil(t, session)
}
