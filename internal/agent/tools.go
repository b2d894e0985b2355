package agent

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/lepinkainen/steamstats/internal/library"
	"github.com/lepinkainen/steamstats/internal/registry"
	"github.com/lepinkainen/steamstats/internal/steam"
)

// Call-site defaults for defensively coerced arguments.
const (
	defaultTopN          = 5
	defaultUnplayedLimit = 10
	defaultReviewCount   = 5
)

func intParam(name string, def int, doc string) registry.Param {
	return registry.Param{Name: name, Type: "int", Default: def, Doc: doc}
}

func stringParam(name, doc string) registry.Param {
	return registry.Param{Name: name, Type: "string", Doc: doc}
}

// Tools builds the capability registry over a session. Every capability that
// reads the library checks the missing-data condition explicitly before
// touching the snapshot.
func Tools(s *Session) *registry.Registry {
	r := registry.New()

	r.MustRegister(registry.Tool{
		Name: "get_total_game_count",
		Doc:  "Total number of games in the library, split into played and unplayed",
		Handler: func(_ context.Context, _ registry.Args) (map[string]any, error) {
			analyzer, err := s.Analyzer()
			if err != nil {
				return nil, err
			}
			summary := analyzer.Summary()
			return map[string]any{
				"total_games":    summary.TotalGames,
				"played_games":   summary.PlayedCount,
				"unplayed_games": summary.UnplayedCount,
			}, nil
		},
	})

	r.MustRegister(registry.Tool{
		Name: "get_total_playtime",
		Doc:  "Total playtime across all games, in hours",
		Handler: func(_ context.Context, _ registry.Args) (map[string]any, error) {
			analyzer, err := s.Analyzer()
			if err != nil {
				return nil, err
			}
			summary := analyzer.Summary()
			return map[string]any{
				"total_hours":            summary.TotalPlaytime,
				"average_hours_per_game": summary.AveragePlaytime,
			}, nil
		},
	})

	r.MustRegister(registry.Tool{
		Name:   "get_most_played_games",
		Doc:    "The most played games by lifetime playtime",
		Params: []registry.Param{intParam("top_n", defaultTopN, "number of games to return")},
		Handler: func(_ context.Context, args registry.Args) (map[string]any, error) {
			analyzer, err := s.Analyzer()
			if err != nil {
				return nil, err
			}
			games := analyzer.MostPlayed(args.Int("top_n", defaultTopN))
			return map[string]any{"games": games, "count": len(games)}, nil
		},
	})

	r.MustRegister(registry.Tool{
		Name:   "get_least_played_games",
		Doc:    "The least played games that still have some playtime",
		Params: []registry.Param{intParam("top_n", defaultTopN, "number of games to return")},
		Handler: func(_ context.Context, args registry.Args) (map[string]any, error) {
			analyzer, err := s.Analyzer()
			if err != nil {
				return nil, err
			}
			games := analyzer.LeastPlayed(args.Int("top_n", defaultTopN))
			return map[string]any{"games": games, "count": len(games)}, nil
		},
	})

	r.MustRegister(registry.Tool{
		Name:   "list_unplayed_games",
		Doc:    "Games with under an hour of playtime",
		Params: []registry.Param{intParam("limit", defaultUnplayedLimit, "maximum number of games to return")},
		Handler: func(_ context.Context, args registry.Args) (map[string]any, error) {
			analyzer, err := s.Analyzer()
			if err != nil {
				return nil, err
			}
			limit := args.Int("limit", defaultUnplayedLimit)
			unplayed := analyzer.Unplayed()
			shown := unplayed
			if limit < len(shown) {
				shown = shown[:limit]
			}
			return map[string]any{
				"games":       shown,
				"total_count": len(unplayed),
				"showing":     len(shown),
			}, nil
		},
	})

	r.MustRegister(registry.Tool{
		Name:   "find_game_stats",
		Doc:    "Playtime statistics for one game, matched by name",
		Params: []registry.Param{stringParam("game_name", "name of the game to look up")},
		Handler: func(_ context.Context, args registry.Args) (map[string]any, error) {
			analyzer, err := s.Analyzer()
			if err != nil {
				return nil, err
			}
			name := args.String("game_name")
			if name == "" {
				return nil, fmt.Errorf("no game name provided")
			}

			exact, partial := analyzer.Find(name)
			if exact != nil {
				return map[string]any{
					"name":           exact.Name,
					"appid":          exact.AppID,
					"playtime_hours": exact.PlaytimeHours,
					"last_played":    exact.LastPlayed,
					"found":          true,
				}, nil
			}
			if len(partial) > 0 {
				return map[string]any{
					"matches": partial,
					"count":   len(partial),
					"found":   true,
				}, nil
			}
			return map[string]any{
				"found": false,
				"error": fmt.Sprintf("Game %q not found in your library", name),
			}, nil
		},
	})

	r.MustRegister(registry.Tool{
		Name: "get_recently_played_games",
		Doc:  "Games played within the given number of days",
		Params: []registry.Param{
			intParam("days", library.DefaultRecentDays, "number of days to look back"),
			intParam("limit", defaultTopN, "maximum number of games to return"),
		},
		Handler: func(_ context.Context, args registry.Args) (map[string]any, error) {
			analyzer, err := s.Analyzer()
			if err != nil {
				return nil, err
			}
			days := args.Int("days", library.DefaultRecentDays)
			limit := args.Int("limit", defaultTopN)
			recent := analyzer.RecentlyPlayed(days)
			shown := recent
			if limit < len(shown) {
				shown = shown[:limit]
			}
			return map[string]any{
				"games":       shown,
				"total_count": len(recent),
				"showing":     len(shown),
				"days":        days,
			}, nil
		},
	})

	r.MustRegister(registry.Tool{
		Name: "get_neglected_games",
		Doc:  "Games with substantial playtime not touched within the given window",
		Params: []registry.Param{
			intParam("days", library.DefaultNeglectedDays, "age threshold in days"),
			intParam("limit", defaultTopN, "maximum number of games to return"),
		},
		Handler: func(_ context.Context, args registry.Args) (map[string]any, error) {
			analyzer, err := s.Analyzer()
			if err != nil {
				return nil, err
			}
			days := args.Int("days", library.DefaultNeglectedDays)
			limit := args.Int("limit", defaultTopN)
			neglected := analyzer.Neglected(days)
			shown := neglected
			if limit < len(shown) {
				shown = shown[:limit]
			}
			return map[string]any{
				"games":       shown,
				"total_count": len(neglected),
				"showing":     len(shown),
				"days":        days,
			}, nil
		},
	})

	r.MustRegister(registry.Tool{
		Name: "get_library_summary",
		Doc:  "Aggregate statistics for the whole library",
		Handler: func(_ context.Context, _ registry.Args) (map[string]any, error) {
			analyzer, err := s.Analyzer()
			if err != nil {
				return nil, err
			}
			summary := analyzer.Summary()
			return map[string]any{
				"total_games":      summary.TotalGames,
				"total_playtime":   summary.TotalPlaytime,
				"most_played_game": summary.MostPlayedGame,
				"unplayed_count":   summary.UnplayedCount,
				"played_count":     summary.PlayedCount,
				"average_playtime": summary.AveragePlaytime,
			}, nil
		},
	})

	r.MustRegister(registry.Tool{
		Name:   "get_game_info",
		Doc:    "Store-page details for a game, owned or not",
		Params: []registry.Param{stringParam("game_name", "name of the game to look up")},
		Handler: func(ctx context.Context, args registry.Args) (map[string]any, error) {
			return s.gameInfo(ctx, args.String("game_name"))
		},
	})

	r.MustRegister(registry.Tool{
		Name: "summarize_player_reviews",
		Doc:  "Recent player reviews for a game on Steam",
		Params: []registry.Param{
			stringParam("game_name", "name of the game to get reviews for"),
			intParam("num_reviews", defaultReviewCount, "number of recent reviews to analyze"),
		},
		Handler: func(ctx context.Context, args registry.Args) (map[string]any, error) {
			return s.playerReviews(ctx, args.String("game_name"), args.Int("num_reviews", defaultReviewCount))
		},
	})

	return r
}

// ownedGame looks up an exact-name match in the loaded library, if any.
// Works without a loaded snapshot: store lookups are allowed before Load.
func (s *Session) ownedGame(name string) *library.GameView {
	if s.analyzer == nil {
		return nil
	}
	exact, _ := s.analyzer.Find(name)
	return exact
}

func (s *Session) gameInfo(ctx context.Context, name string) (map[string]any, error) {
	if name == "" {
		return nil, fmt.Errorf("no game name provided")
	}

	owned := s.ownedGame(name)

	appID := 0
	if owned != nil {
		appID = owned.AppID
	} else {
		hit, err := s.api.SearchGame(ctx, name)
		if err != nil {
			return nil, fmt.Errorf("failed to search for game: %w", err)
		}
		if hit == nil {
			return map[string]any{
				"found": false,
				"error": fmt.Sprintf("Could not find game %q on Steam", name),
			}, nil
		}
		appID = hit.AppID
	}

	details, err := s.api.GetGameDetails(ctx, appID)
	if err != nil {
		slog.Error("Error fetching game details", "game", name, "error", err)
		if owned != nil {
			// Fall back to the stats we already hold locally.
			return map[string]any{
				"found": true,
				"error": "Could not fetch detailed game information",
				"basic_info": map[string]any{
					"name":           owned.Name,
					"appid":          owned.AppID,
					"owned":          true,
					"playtime_hours": owned.PlaytimeHours,
					"last_played":    owned.LastPlayed,
				},
			}, nil
		}
		return nil, fmt.Errorf("could not fetch information for game %q: %w", name, err)
	}

	info := map[string]any{
		"name":              details.Name,
		"appid":             details.AppID,
		"short_description": details.ShortDesc,
		"developers":        details.Developers,
		"publishers":        details.Publishers,
		"release_date":      details.ReleaseDate.Date,
		"genres":            genreNames(details.Genres),
		"metacritic_score":  details.Metacritic.Score,
		"header_image":      details.HeaderImage,
		"owned":             owned != nil,
	}
	if owned != nil {
		info["playtime_hours"] = owned.PlaytimeHours
		info["last_played"] = owned.LastPlayed
	}
	return map[string]any{"found": true, "details": info}, nil
}

func (s *Session) playerReviews(ctx context.Context, name string, numReviews int) (map[string]any, error) {
	if name == "" {
		return nil, fmt.Errorf("no game name provided")
	}

	owned := s.ownedGame(name)

	appID := 0
	gameName := name
	if owned != nil {
		appID = owned.AppID
		gameName = owned.Name
	} else {
		hit, err := s.api.SearchGame(ctx, name)
		if err != nil {
			return nil, fmt.Errorf("failed to search for game: %w", err)
		}
		if hit == nil {
			return map[string]any{
				"found": false,
				"error": fmt.Sprintf("Could not find game %q on Steam", name),
			}, nil
		}
		appID = hit.AppID
		gameName = hit.Name
	}

	reviews, err := s.api.GetGameReviews(ctx, appID, numReviews)
	if err != nil {
		slog.Error("Error fetching game reviews", "game", gameName, "error", err)
		return nil, fmt.Errorf("could not fetch reviews for game %q: %w", gameName, err)
	}

	positive := 0
	texts := make([]string, 0, len(reviews))
	for _, review := range reviews {
		if review.VotedUp {
			positive++
		}
		texts = append(texts, review.Text)
	}

	return map[string]any{
		"found":          true,
		"game_name":      gameName,
		"owned":          owned != nil,
		"review_count":   len(reviews),
		"positive_count": positive,
		"negative_count": len(reviews) - positive,
		"reviews":        texts,
	}, nil
}

func genreNames(genres []steam.Genre) []string {
	names := make([]string, 0, len(genres))
	for _, g := range genres {
		names = append(names, g.Description)
	}
	return names
}
