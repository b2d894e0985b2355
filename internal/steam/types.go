package steam

// PlayerSummary is a player's public profile information.
type PlayerSummary struct {
	SteamID     string `json:"steamid"`
	PersonaName string `json:"personaname"`
	ProfileURL  string `json:"profileurl"`
	AvatarURL   string `json:"avatarfull"`
}

type Category struct {
	ID          int    `json:"id"`
	Description string `json:"description"`
}

type Genre struct {
	ID          string `json:"id"`
	Description string `json:"description"`
}

type MetacriticData struct {
	Score int    `json:"score"`
	URL   string `json:"url"`
}

// GameDetails is the store-page description of a game.
type GameDetails struct {
	AppID       int        `json:"appid"`
	Name        string     `json:"name"`
	ShortDesc   string     `json:"short_description"`
	HeaderImage string     `json:"header_image"`
	Developers  []string   `json:"developers"`
	Publishers  []string   `json:"publishers"`
	ReleaseDate struct {
		ComingSoon bool   `json:"coming_soon"`
		Date       string `json:"date"`
	} `json:"release_date"`
	Categories []Category     `json:"categories"`
	Genres     []Genre        `json:"genres"`
	Metacritic MetacriticData `json:"metacritic,omitempty"`
}

// Review is one player review from the store.
type Review struct {
	Text             string `json:"review"`
	VotedUp          bool   `json:"voted_up"`
	TimestampCreated int64  `json:"timestamp_created"`
	Author           struct {
		PlaytimeAtReview int `json:"playtime_at_review"`
		PlaytimeForever  int `json:"playtime_forever"`
	} `json:"author"`
}

// SearchResult is one hit from the store search.
type SearchResult struct {
	AppID int    `json:"id"`
	Name  string `json:"name"`
	Type  string `json:"type"`
}
