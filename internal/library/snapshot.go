// Package library holds the normalized snapshot of a Steam game library and
// the query functions that derive statistics from it.
package library

// PlaceholderName is used for games the API returned without a name.
const PlaceholderName = "Unknown Game"

// RawGame is one entry of the owned-games payload as the Steam API returns it.
// Any field may be absent; absent fields decode to their zero value.
type RawGame struct {
	Name            string `json:"name"`
	AppID           int    `json:"appid"`
	PlaytimeForever int    `json:"playtime_forever"` // lifetime playtime in minutes
	PlaytimeRecent  int    `json:"playtime_2weeks"`
	LastPlayed      int64  `json:"rtime_last_played"` // unix seconds, 0 = never played
}

// Payload is the owned-games response body for one account.
type Payload struct {
	GameCount int       `json:"game_count"`
	Games     []RawGame `json:"games"`
}

// GameRecord is one owned title after normalization.
type GameRecord struct {
	Name            string
	AppID           int
	PlaytimeMinutes int
	LastPlayedEpoch int64
}

// Unplayed reports whether the game counts as unplayed (under one hour).
// This is a different predicate from zero playtime.
func (g GameRecord) Unplayed() bool {
	return g.PlaytimeMinutes < 60
}

// NeverPlayed reports whether the game has no last-played timestamp.
// Epoch 0 means "never", not January 1970.
func (g GameRecord) NeverPlayed() bool {
	return g.LastPlayedEpoch == 0
}

// Snapshot is an immutable point-in-time copy of a user's owned games.
// DeclaredCount is the count reported by the API; it is authoritative for
// "total games" even when it disagrees with len(Records).
type Snapshot struct {
	Records       []GameRecord
	DeclaredCount int
}

// NewSnapshot normalizes a raw owned-games payload into a Snapshot.
// Missing fields are defaulted, never rejected: an absent name becomes the
// placeholder, absent numbers stay zero. Input order is preserved.
func NewSnapshot(payload Payload) *Snapshot {
	records := make([]GameRecord, 0, len(payload.Games))
	for _, g := range payload.Games {
		name := g.Name
		if name == "" {
			name = PlaceholderName
		}
		playtime := g.PlaytimeForever
		if playtime < 0 {
			playtime = 0
		}
		lastPlayed := g.LastPlayed
		if lastPlayed < 0 {
			lastPlayed = 0
		}
		records = append(records, GameRecord{
			Name:            name,
			AppID:           g.AppID,
			PlaytimeMinutes: playtime,
			LastPlayedEpoch: lastPlayed,
		})
	}
	return &Snapshot{
		Records:       records,
		DeclaredCount: payload.GameCount,
	}
}

// Len returns the number of records actually present in the snapshot.
func (s *Snapshot) Len() int {
	return len(s.Records)
}
