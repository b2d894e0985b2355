package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/lepinkainen/steamstats/internal/agent"
	"github.com/lepinkainen/steamstats/internal/csvutil"
	"github.com/lepinkainen/steamstats/internal/errors"
	"github.com/lepinkainen/steamstats/internal/library"
	"github.com/lepinkainen/steamstats/internal/term"
)

// ReportCmd generates a one-shot report of the library.
type ReportCmd struct {
	ID  string `arg:"" optional:"" help:"Steam ID or vanity URL (falls back to config)"`
	Top int    `help:"Number of top games to include" default:"10"`
	CSV string `help:"Also export the game list to this CSV file" type:"path"`
}

func (r *ReportCmd) Run() error {
	session, err := newSession()
	if err != nil {
		return err
	}
	return r.run(context.Background(), session, os.Stdout)
}

func (r *ReportCmd) run(ctx context.Context, session *agent.Session, out io.Writer) error {
	id, err := resolveSteamID(r.ID)
	if err != nil {
		return err
	}

	term.PrintBanner(out)
	fmt.Fprintf(out, "Analyzing Steam library for: %s\n", id)

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
	summary := analyzer.Summary()

	term.PrintHeader(out, "LIBRARY SUMMARY")
	fmt.Fprintf(out, "Total Games: %d\n", summary.TotalGames)
	fmt.Fprintf(out, "Total Playtime: %s hours\n", term.FormatHours(summary.TotalPlaytime))
	if summary.MostPlayedGame != nil {
		fmt.Fprintf(out, "Most Played Game: %s (%s hours)\n",
			summary.MostPlayedGame.Name, term.FormatHours(summary.MostPlayedGame.PlaytimeHours))
	}
	fmt.Fprintf(out, "Played: %d, Unplayed: %d\n", summary.PlayedCount, summary.UnplayedCount)
	fmt.Fprintf(out, "Average Playtime per Played Game: %s hours\n", term.FormatHours(summary.AveragePlaytime))

	term.PrintHeader(out, "TOP GAMES BY PLAYTIME")
	writeGamesTable(out, analyzer.MostPlayed(r.Top))

	if r.CSV != "" {
		games := append(analyzer.MostPlayed(r.Top), analyzer.Unplayed()...)
		if err := writeGamesCSV(r.CSV, games); err != nil {
			term.PrintError(out, fmt.Sprintf("Failed to export CSV: %v", err))
			return err
		}
		term.PrintSuccess(out, fmt.Sprintf("Game library exported to %s", r.CSV))
	}

	return nil
}

func writeGamesTable(w io.Writer, games []library.GameView) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "GAME\tHOURS PLAYED\tLAST PLAYED")
	for _, game := range games {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", game.Name, term.FormatHours(game.PlaytimeHours), game.LastPlayed)
	}
	_ = tw.Flush()
}

func writeGamesCSV(path string, games []library.GameView) error {
	return csvutil.WriteCSV(path,
		[]string{"Game", "Hours Played", "Last Played"},
		games,
		func(game library.GameView) []string {
			return []string{game.Name, term.FormatHours(game.PlaytimeHours), game.LastPlayed}
		},
		csvutil.WriterOptions{Overwrite: true},
	)
}

// printLoadGuidance explains common load failures in user terms.
func printLoadGuidance(w io.Writer, err error) {
	term.PrintError(w, err.Error())

	switch {
	case errors.IsProfileError(err):
		fmt.Fprintln(w, "\nPossible solutions:")
		fmt.Fprintln(w, "1. Make sure your Steam profile is set to public")
		fmt.Fprintln(w, "   - Open Steam > Profile > Edit Profile > Privacy Settings")
		fmt.Fprintln(w, "   - Set 'My profile' and 'Game details' to 'Public'")
		fmt.Fprintln(w, "2. Double-check your Steam ID or vanity URL")
		fmt.Fprintln(w, "3. Try a Steam ID finder like https://steamid.io/")
	case errors.IsRateLimitError(err):
		fmt.Fprintln(w, "Steam is rate limiting requests; wait a few minutes and try again.")
	}
}
