package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/lepinkainen/steamstats/internal/agent"
	"github.com/lepinkainen/steamstats/internal/config"
	"github.com/lepinkainen/steamstats/internal/datastore"
	"github.com/lepinkainen/steamstats/internal/fileutil"
	"github.com/lepinkainen/steamstats/internal/library"
	"github.com/lepinkainen/steamstats/internal/notes"
	"github.com/lepinkainen/steamstats/internal/term"
)

// ExportCmd writes the full library out in one of several formats.
type ExportCmd struct {
	ID     string `arg:"" optional:"" help:"Steam ID or vanity URL (falls back to config)"`
	Format string `help:"Export format" enum:"csv,json,markdown,sqlite" default:"csv"`
	Output string `help:"Output file or directory (defaults depend on format)" type:"path"`

	DatasetteURL   string `help:"Push SQLite rows to a remote Datasette instance instead of a local file"`
	DatasetteToken string `help:"API token for the Datasette instance"`

	Covers bool `help:"Download header images for markdown notes"`
}

func (e *ExportCmd) Run() error {
	session, err := newSession()
	if err != nil {
		return err
	}

	id, err := resolveSteamID(e.ID)
	if err != nil {
		return err
	}

	ctx := context.Background()
	out := os.Stdout

	result, err := session.Load(ctx, id)
	if err != nil {
		printLoadGuidance(out, err)
		return err
	}
	term.PrintSuccess(out, fmt.Sprintf("Loaded %d games for %s", result.GameCount, result.PlayerName))

	analyzer, err := session.Analyzer()
	if err != nil {
		return err
	}
	games := analyzer.MostPlayed(session.Snapshot().Len())

	switch e.Format {
	case "csv":
		return e.exportCSV(out, games)
	case "json":
		return e.exportJSON(out, games)
	case "markdown":
		return e.exportMarkdown(ctx, out, session, games)
	case "sqlite":
		return e.exportSQLite(out, result, analyzer, games)
	default:
		return fmt.Errorf("unknown export format: %s", e.Format)
	}
}

func (e *ExportCmd) exportCSV(out io.Writer, games []library.GameView) error {
	path := e.Output
	if path == "" {
		path = filepath.Join(viper.GetString("ExportOutputDir"), "steam_library.csv")
	}
	if err := writeGamesCSV(path, games); err != nil {
		return err
	}
	term.PrintSuccess(out, fmt.Sprintf("Exported %d games to %s", len(games), path))
	return nil
}

func (e *ExportCmd) exportJSON(out io.Writer, games []library.GameView) error {
	path := e.Output
	if path == "" {
		path = filepath.Join(viper.GetString("ExportOutputDir"), "steam_library.json")
	}
	written, err := fileutil.WriteJSONFile(games, path, config.OverwriteFiles)
	if err != nil {
		return err
	}
	if !written {
		term.PrintWarning(out, fmt.Sprintf("Skipped %s (already exists, use --overwrite to replace)", path))
		return nil
	}
	term.PrintSuccess(out, fmt.Sprintf("Exported %d games to %s", len(games), path))
	return nil
}

func (e *ExportCmd) exportMarkdown(ctx context.Context, out io.Writer, session *agent.Session, games []library.GameView) error {
	dir := e.Output
	if dir == "" {
		dir = viper.GetString("MarkdownOutputDir")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	written := 0
	for _, game := range games {
		headerImage := ""
		if e.Covers {
			headerImage = e.downloadCover(ctx, session, game, dir)
		}

		data, err := notes.GameNote(game, headerImage)
		if err != nil {
			return fmt.Errorf("failed to build note for %s: %w", game.Name, err)
		}

		path := fileutil.GetNoteFilePath(game.Name, dir)
		ok, err := fileutil.WriteFileWithOverwrite(path, data, 0o644, config.OverwriteFiles)
		if err != nil {
			return err
		}
		if ok {
			written++
		}
	}

	term.PrintSuccess(out, fmt.Sprintf("Wrote %d markdown notes to %s", written, dir))
	return nil
}

// downloadCover fetches the store header image for a game. Failures are
// logged and skipped so one delisted game doesn't abort the export.
func (e *ExportCmd) downloadCover(ctx context.Context, session *agent.Session, game library.GameView, dir string) string {
	details, err := session.API().GetGameDetails(ctx, game.AppID)
	if err != nil || details.HeaderImage == "" {
		slog.Debug("No header image available", "game", game.Name, "error", err)
		return ""
	}

	result, err := fileutil.DownloadHeaderImage(fileutil.HeaderDownloadOptions{
		URL:       details.HeaderImage,
		OutputDir: dir,
		Filename:  fileutil.BuildHeaderFilename(game.Name),
		Refresh:   config.OverwriteFiles,
	})
	if err != nil || result == nil {
		slog.Warn("Failed to download header image", "game", game.Name, "error", err)
		return ""
	}
	return result.RelativePath
}

func (e *ExportCmd) exportSQLite(out io.Writer, loaded *agent.LoadResult, analyzer *library.Analyzer, games []library.GameView) error {
	var store datastore.Store
	var target string

	if e.DatasetteURL != "" {
		store = datastore.NewDatasetteClient(e.DatasetteURL, e.DatasetteToken)
		target = e.DatasetteURL
	} else {
		path := e.Output
		if path == "" {
			path = filepath.Join(viper.GetString("ExportOutputDir"), "steamstats.db")
		}
		store = datastore.NewSQLiteStore(path)
		target = path
	}

	if err := datastore.ExportLibrary(store, loaded.SteamID, loaded.PlayerName, games, analyzer.Summary()); err != nil {
		return err
	}
	term.PrintSuccess(out, fmt.Sprintf("Exported %d games to %s", len(games), target))
	return nil
}
