package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/lepinkainen/steamstats/internal/library"
	"github.com/lepinkainen/steamstats/internal/term"
	"github.com/lepinkainen/steamstats/internal/tui"
)

// FindCmd looks up playtime stats for a single game.
type FindCmd struct {
	Name []string `arg:"" help:"Game name to search for"`
	ID   string   `help:"Steam ID or vanity URL (falls back to config)"`
}

func (f *FindCmd) Run() error {
	session, err := newSession()
	if err != nil {
		return err
	}

	id, err := resolveSteamID(f.ID)
	if err != nil {
		return err
	}

	ctx := context.Background()
	out := os.Stdout

	if _, err := session.Load(ctx, id); err != nil {
		printLoadGuidance(out, err)
		return err
	}

	analyzer, err := session.Analyzer()
	if err != nil {
		return err
	}

	query := strings.Join(f.Name, " ")
	exact, partial := analyzer.Find(query)

	switch {
	case exact != nil:
		printGameStats(out, *exact)
		return nil
	case len(partial) == 1:
		printGameStats(out, partial[0])
		return nil
	case len(partial) > 1:
		return pickAndPrint(out, query, partial)
	default:
		term.PrintWarning(out, fmt.Sprintf("No game matching %q found in your library", query))
		return nil
	}
}

// pickAndPrint lets the user choose among several partial matches.
func pickAndPrint(out io.Writer, query string, matches []library.GameView) error {
	result, err := tui.SelectGame(query, matches)
	if err != nil {
		return err
	}
	return printSelection(out, result)
}

func printSelection(w io.Writer, result tui.SelectionResult) error {
	switch result.Action {
	case tui.ActionSelected:
		printGameStats(w, *result.Selection)
	case tui.ActionStopped:
		term.PrintWarning(w, "Selection aborted")
	default:
		term.PrintWarning(w, "No game selected")
	}
	return nil
}

func printGameStats(w io.Writer, game library.GameView) {
	term.PrintHeader(w, game.Name)
	fmt.Fprintf(w, "Playtime: %s hours\n", term.FormatHours(game.PlaytimeHours))
	fmt.Fprintf(w, "Last Played: %s\n", game.LastPlayed)
	fmt.Fprintf(w, "Steam AppID: %d\n", game.AppID)
}
