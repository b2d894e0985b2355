package library

import (
	"math"
	"sort"
	"strings"
	"time"
)

// Defaults applied when a caller passes a non-positive limit or day window.
const (
	DefaultListLimit     = 10
	DefaultRecentDays    = 30
	DefaultNeglectedDays = 365
)

// NeverPlayedLabel is the rendered last-played value for epoch 0.
const NeverPlayedLabel = "Never"

// dateLayout renders unix timestamps as short human dates ("Jan 02, 2006").
const dateLayout = "Jan 02, 2006"

// GameView is the derived per-game view returned by queries. It is a fresh
// value copy; mutating it never touches the snapshot.
type GameView struct {
	Name          string  `json:"name"`
	AppID         int     `json:"appid"`
	PlaytimeHours float64 `json:"playtime_hours"`
	LastPlayed    string  `json:"last_played"`
}

// NeglectedView is a GameView plus the age of its last session.
type NeglectedView struct {
	GameView
	DaysSincePlayed int `json:"days_since_played"`
}

// SummaryGame identifies the single most-played game in a summary.
type SummaryGame struct {
	Name          string  `json:"name"`
	PlaytimeHours float64 `json:"playtime_hours"`
}

// Summary aggregates library-wide statistics.
type Summary struct {
	TotalGames      int          `json:"total_games"`
	TotalPlaytime   float64      `json:"total_playtime"`
	MostPlayedGame  *SummaryGame `json:"most_played_game"`
	UnplayedCount   int          `json:"unplayed_count"`
	PlayedCount     int          `json:"played_count"`
	AveragePlaytime float64      `json:"average_playtime"`
}

// Analyzer answers queries over one immutable Snapshot. Every query re-scans
// the record set; nothing is cached between calls. Record counts are bounded
// by a personal game library, so the re-scan is cheap.
type Analyzer struct {
	snap *Snapshot
	now  func() time.Time
}

// Option configures an Analyzer.
type Option func(*Analyzer)

// WithClock overrides the time source used for recency windows.
func WithClock(now func() time.Time) Option {
	return func(a *Analyzer) {
		a.now = now
	}
}

// NewAnalyzer creates an Analyzer over the given snapshot. The analyzer holds
// its own reference, so replacing the caller's snapshot does not affect
// queries already constructed over the old one.
func NewAnalyzer(snap *Snapshot, opts ...Option) *Analyzer {
	a := &Analyzer{
		snap: snap,
		now:  time.Now,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// MinutesToHours converts playtime minutes to hours, one decimal place.
func MinutesToHours(minutes int) float64 {
	return math.Round(float64(minutes)/60*10) / 10
}

// FormatEpoch renders a last-played timestamp as a short date, or the literal
// "Never" for epoch 0.
func FormatEpoch(epoch int64) string {
	if epoch == 0 {
		return NeverPlayedLabel
	}
	return time.Unix(epoch, 0).Format(dateLayout)
}

func (a *Analyzer) view(g GameRecord) GameView {
	return GameView{
		Name:          g.Name,
		AppID:         g.AppID,
		PlaytimeHours: MinutesToHours(g.PlaytimeMinutes),
		LastPlayed:    FormatEpoch(g.LastPlayedEpoch),
	}
}

// TotalPlaytime returns the summed playtime of all records in hours.
func (a *Analyzer) TotalPlaytime() float64 {
	total := 0
	for _, g := range a.snap.Records {
		total += g.PlaytimeMinutes
	}
	return MinutesToHours(total)
}

// MostPlayed returns up to limit games sorted by playtime descending.
// Ties keep their input order. A non-positive limit falls back to the
// default list size.
func (a *Analyzer) MostPlayed(limit int) []GameView {
	if limit <= 0 {
		limit = DefaultListLimit
	}

	sorted := make([]GameRecord, len(a.snap.Records))
	copy(sorted, a.snap.Records)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].PlaytimeMinutes > sorted[j].PlaytimeMinutes
	})

	if limit > len(sorted) {
		limit = len(sorted)
	}
	views := make([]GameView, 0, limit)
	for _, g := range sorted[:limit] {
		views = append(views, a.view(g))
	}
	return views
}

// LeastPlayed returns up to limit games sorted by playtime ascending,
// excluding games with zero playtime. Unplayed games with a few minutes on
// the clock still qualify; see Unplayed for the under-an-hour predicate.
func (a *Analyzer) LeastPlayed(limit int) []GameView {
	if limit <= 0 {
		limit = DefaultListLimit
	}

	var played []GameRecord
	for _, g := range a.snap.Records {
		if g.PlaytimeMinutes > 0 {
			played = append(played, g)
		}
	}
	sort.SliceStable(played, func(i, j int) bool {
		return played[i].PlaytimeMinutes < played[j].PlaytimeMinutes
	})

	if limit > len(played) {
		limit = len(played)
	}
	views := make([]GameView, 0, limit)
	for _, g := range played[:limit] {
		views = append(views, a.view(g))
	}
	return views
}

// Unplayed returns every game with under an hour of playtime, in the
// snapshot's original order.
func (a *Analyzer) Unplayed() []GameView {
	var views []GameView
	for _, g := range a.snap.Records {
		if g.Unplayed() {
			views = append(views, a.view(g))
		}
	}
	return views
}

// RecentlyPlayed returns games last played strictly within the given number
// of days, newest first. A non-positive window falls back to 30 days.
func (a *Analyzer) RecentlyPlayed(days int) []GameView {
	if days <= 0 {
		days = DefaultRecentDays
	}
	cutoff := a.now().AddDate(0, 0, -days).Unix()

	var views []GameView
	for _, g := range a.snap.Records {
		if g.LastPlayedEpoch > cutoff {
			views = append(views, a.view(g))
		}
	}

	// Ordering follows the rendered date string, not the raw epoch, to keep
	// the report output identical to previous releases. Lexicographic order
	// on "Jan 02, 2006" is not chronological across month or year
	// boundaries.
	// TODO: switch to sorting on LastPlayedEpoch once report output may change
	sort.SliceStable(views, func(i, j int) bool {
		return views[i].LastPlayed > views[j].LastPlayed
	})
	return views
}

// Neglected returns games with at least two hours of playtime whose last
// session is older than the given window, sorted by playtime descending.
// Never-played games are excluded regardless of playtime. A non-positive
// window falls back to a year.
func (a *Analyzer) Neglected(days int) []NeglectedView {
	if days <= 0 {
		days = DefaultNeglectedDays
	}
	now := a.now()
	cutoff := now.AddDate(0, 0, -days).Unix()

	var views []NeglectedView
	for _, g := range a.snap.Records {
		if g.PlaytimeMinutes < 120 || g.NeverPlayed() || g.LastPlayedEpoch >= cutoff {
			continue
		}
		days := int(now.Sub(time.Unix(g.LastPlayedEpoch, 0)).Hours() / 24)
		views = append(views, NeglectedView{
			GameView:        a.view(g),
			DaysSincePlayed: days,
		})
	}

	sort.SliceStable(views, func(i, j int) bool {
		return views[i].PlaytimeHours > views[j].PlaytimeHours
	})
	return views
}

// Summary aggregates library-wide statistics. An empty record set yields a
// zero-valued summary; the played-game average is guarded against division
// by zero.
func (a *Analyzer) Summary() Summary {
	if len(a.snap.Records) == 0 {
		return Summary{}
	}

	mostPlayed := a.snap.Records[0]
	unplayedCount := 0
	for _, g := range a.snap.Records {
		if g.PlaytimeMinutes > mostPlayed.PlaytimeMinutes {
			mostPlayed = g
		}
		if g.Unplayed() {
			unplayedCount++
		}
	}

	playedCount := a.snap.DeclaredCount - unplayedCount
	totalPlaytime := a.TotalPlaytime()

	average := 0.0
	if playedCount > 0 {
		average = math.Round(totalPlaytime/float64(playedCount)*10) / 10
	}

	return Summary{
		TotalGames:    a.snap.DeclaredCount,
		TotalPlaytime: totalPlaytime,
		MostPlayedGame: &SummaryGame{
			Name:          mostPlayed.Name,
			PlaytimeHours: MinutesToHours(mostPlayed.PlaytimeMinutes),
		},
		UnplayedCount:   unplayedCount,
		PlayedCount:     playedCount,
		AveragePlaytime: average,
	}
}

// Find looks up games by name. An exact match (case-insensitive) wins; when
// there is none, all partial matches are returned in snapshot order.
func (a *Analyzer) Find(name string) (exact *GameView, partial []GameView) {
	lower := strings.ToLower(name)
	for _, g := range a.snap.Records {
		gname := strings.ToLower(g.Name)
		if gname == lower {
			v := a.view(g)
			return &v, nil
		}
		if lower != "" && strings.Contains(gname, lower) {
			partial = append(partial, a.view(g))
		}
	}
	return nil, partial
}
