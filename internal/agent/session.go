// Package agent ties the Steam client, the library snapshot, and the
// capability registry together into one analysis session.
package agent

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/lepinkainen/steamstats/internal/errors"
	"github.com/lepinkainen/steamstats/internal/library"
	"github.com/lepinkainen/steamstats/internal/steam"
)

// Session holds one user's loaded library data. The snapshot is immutable
// once loaded; Load replaces it wholesale. Queries issued against an old
// analyzer keep working because the analyzer holds its own snapshot
// reference.
type Session struct {
	api      *steam.Client
	clock    func() time.Time
	steamID  string
	player   *steam.PlayerSummary
	snapshot *library.Snapshot
	analyzer *library.Analyzer
}

// SessionOption configures a Session.
type SessionOption func(*Session)

// WithClock overrides the time source handed to analyzers. Used by tests.
func WithClock(now func() time.Time) SessionOption {
	return func(s *Session) {
		s.clock = now
	}
}

// NewSession creates a session over the given Steam client. No data is
// loaded yet; queries fail with the missing-data condition until Load
// succeeds.
func NewSession(api *steam.Client, opts ...SessionOption) *Session {
	s := &Session{
		api:   api,
		clock: time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// LoadResult reports what a successful Load brought in.
type LoadResult struct {
	SteamID    string
	PlayerName string
	GameCount  int
}

// Load resolves the Steam ID, fetches the owned-games payload and player
// profile, and replaces the session's snapshot with a fresh one.
func (s *Session) Load(ctx context.Context, steamIDOrVanity string) (*LoadResult, error) {
	steamID, err := s.api.ResolveID(ctx, steamIDOrVanity)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve Steam ID: %w", err)
	}

	payload, err := s.api.GetOwnedGames(ctx, steamID)
	if err != nil {
		return nil, err
	}

	player, err := s.api.GetPlayerSummary(ctx, steamID)
	if err != nil {
		return nil, err
	}

	snapshot := library.NewSnapshot(payload)
	s.steamID = steamID
	s.player = player
	s.snapshot = snapshot
	s.analyzer = library.NewAnalyzer(snapshot, library.WithClock(s.clock))

	playerName := player.PersonaName
	if playerName == "" {
		playerName = "Unknown Player"
	}

	slog.Info("Library loaded", "player", playerName, "games", payload.GameCount)
	return &LoadResult{
		SteamID:    steamID,
		PlayerName: playerName,
		GameCount:  payload.GameCount,
	}, nil
}

// Loaded reports whether a snapshot is present.
func (s *Session) Loaded() bool {
	return s.snapshot != nil
}

// Analyzer returns the analyzer over the current snapshot, or the
// missing-data condition when nothing is loaded yet.
func (s *Session) Analyzer() (*library.Analyzer, error) {
	if s.analyzer == nil {
		return nil, errors.ErrNoData
	}
	return s.analyzer, nil
}

// Snapshot returns the current snapshot, or nil before the first Load.
func (s *Session) Snapshot() *library.Snapshot {
	return s.snapshot
}

// Player returns the loaded player profile, or nil before the first Load.
func (s *Session) Player() *steam.PlayerSummary {
	return s.player
}

// API exposes the underlying Steam client for capabilities that reach past
// the snapshot (store details, reviews, search).
func (s *Session) API() *steam.Client {
	return s.api
}
