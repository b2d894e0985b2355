// Package steam talks to the Steam Web API and the Steam Store API.
package steam

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/lepinkainen/steamstats/internal/errors"
	"github.com/lepinkainen/steamstats/internal/library"
	"github.com/lepinkainen/steamstats/internal/ratelimit"
)

const (
	defaultAPIURL   = "https://api.steampowered.com"
	defaultStoreURL = "https://store.steampowered.com"

	// requestInterval is the minimum spacing between requests to Steam.
	requestInterval = time.Second
)

// Client is a rate-limited Steam Web API client.
type Client struct {
	apiKey     string
	apiURL     string
	storeURL   string
	httpClient *http.Client
	limiter    *ratelimit.Limiter
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURLs overrides the Web API and Store API base URLs. Used by tests
// to point the client at an httptest server.
func WithBaseURLs(apiURL, storeURL string) Option {
	return func(c *Client) {
		c.apiURL = apiURL
		c.storeURL = storeURL
	}
}

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithLimiter overrides the request rate limiter.
func WithLimiter(limiter *ratelimit.Limiter) Option {
	return func(c *Client) {
		c.limiter = limiter
	}
}

// NewClient creates a Steam API client using the given Web API key.
func NewClient(apiKey string, opts ...Option) *Client {
	c := &Client{
		apiKey:     apiKey,
		apiURL:     defaultAPIURL,
		storeURL:   defaultStoreURL,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		limiter:    ratelimit.NewInterval("steam", requestInterval),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// get performs a rate-limited GET and returns the body and status code.
func (c *Client) get(ctx context.Context, rawURL string) ([]byte, int, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, 0, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, resp.StatusCode, fmt.Errorf("failed to read response body: %w", err)
	}
	return body, resp.StatusCode, nil
}

// checkStatus maps Steam's error status codes onto typed errors.
func checkStatus(statusCode int, body []byte) error {
	switch {
	case statusCode == http.StatusTooManyRequests:
		return errors.NewRateLimitError("Rate limit reached. Please try again later (usually after a few minutes)")
	case statusCode == http.StatusUnauthorized || statusCode == http.StatusForbidden:
		return errors.NewProfileError(statusCode, string(body))
	case statusCode != http.StatusOK:
		return fmt.Errorf("steam API returned status code %d. Response: %s", statusCode, string(body))
	}
	return nil
}

// isSteamID64 reports whether the input looks like a 64-bit Steam ID
// (17 decimal digits).
func isSteamID64(id string) bool {
	if len(id) != 17 {
		return false
	}
	for _, r := range id {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// ResolveID converts a Steam ID or vanity URL name into a 64-bit Steam ID.
// Numeric 17-digit IDs pass through unchanged.
func (c *Client) ResolveID(ctx context.Context, steamIDOrVanity string) (string, error) {
	if isSteamID64(steamIDOrVanity) {
		return steamIDOrVanity, nil
	}

	params := url.Values{}
	params.Add("key", c.apiKey)
	params.Add("vanityurl", steamIDOrVanity)

	body, status, err := c.get(ctx, c.apiURL+"/ISteamUser/ResolveVanityURL/v1/?"+params.Encode())
	if err != nil {
		return "", fmt.Errorf("failed to resolve vanity URL: %w", err)
	}
	if err := checkStatus(status, body); err != nil {
		return "", err
	}

	var result struct {
		Response struct {
			Success int    `json:"success"`
			SteamID string `json:"steamid"`
		} `json:"response"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		return "", fmt.Errorf("failed to parse JSON response: %w", err)
	}

	if result.Response.Success != 1 {
		return "", fmt.Errorf("invalid Steam ID or vanity URL: %s", steamIDOrVanity)
	}
	return result.Response.SteamID, nil
}

// GetOwnedGames fetches a user's owned games, including free games with
// recorded playtime.
func (c *Client) GetOwnedGames(ctx context.Context, steamID string) (library.Payload, error) {
	params := url.Values{}
	params.Add("key", c.apiKey)
	params.Add("steamid", steamID)
	params.Add("format", "json")
	params.Add("include_appinfo", "1")
	params.Add("include_played_free_games", "1")

	body, status, err := c.get(ctx, c.apiURL+"/IPlayerService/GetOwnedGames/v1/?"+params.Encode())
	if err != nil {
		return library.Payload{}, fmt.Errorf("failed to fetch owned games: %w", err)
	}
	if err := checkStatus(status, body); err != nil {
		return library.Payload{}, err
	}

	var result struct {
		Response *library.Payload `json:"response"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		return library.Payload{}, fmt.Errorf("failed to parse JSON response: %w", err)
	}

	// An empty response object means the profile hides game details.
	if result.Response == nil || result.Response.Games == nil {
		return library.Payload{}, &errors.ProfileError{
			Message:    "Steam returned no game data; the profile might be private",
			StatusCode: status,
		}
	}
	return *result.Response, nil
}

// GetPlayerSummary fetches a player's profile information.
func (c *Client) GetPlayerSummary(ctx context.Context, steamID string) (*PlayerSummary, error) {
	params := url.Values{}
	params.Add("key", c.apiKey)
	params.Add("steamids", steamID)

	body, status, err := c.get(ctx, c.apiURL+"/ISteamUser/GetPlayerSummaries/v2/?"+params.Encode())
	if err != nil {
		return nil, fmt.Errorf("failed to fetch player summary: %w", err)
	}
	if err := checkStatus(status, body); err != nil {
		return nil, err
	}

	var result struct {
		Response struct {
			Players []PlayerSummary `json:"players"`
		} `json:"response"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("failed to parse JSON response: %w", err)
	}

	if len(result.Response.Players) == 0 {
		return nil, fmt.Errorf("player not found or profile is private")
	}
	return &result.Response.Players[0], nil
}

// GetGameDetails fetches a game's store-page details.
func (c *Client) GetGameDetails(ctx context.Context, appID int) (*GameDetails, error) {
	params := url.Values{}
	params.Add("appids", fmt.Sprintf("%d", appID))
	params.Add("cc", "us")
	params.Add("l", "english")

	body, status, err := c.get(ctx, c.storeURL+"/api/appdetails?"+params.Encode())
	if err != nil {
		return nil, fmt.Errorf("failed to fetch game details: %w", err)
	}
	if err := checkStatus(status, body); err != nil {
		return nil, err
	}

	// The Store API keys the response by app ID.
	var result map[string]struct {
		Success bool        `json:"success"`
		Data    GameDetails `json:"data"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("failed to parse JSON response: %w. Body: %s", err, string(body))
	}

	appData, exists := result[fmt.Sprintf("%d", appID)]
	if !exists {
		return nil, fmt.Errorf("steam API response missing data for app ID %d (game might be removed or region-locked)", appID)
	}
	if !appData.Success {
		return nil, fmt.Errorf("steam API indicated unsuccessful data fetch for app ID %d (game might be unavailable in store)", appID)
	}

	appData.Data.AppID = appID
	return &appData.Data, nil
}

// GetGameReviews fetches up to numReviews recent English reviews for a game.
func (c *Client) GetGameReviews(ctx context.Context, appID, numReviews int) ([]Review, error) {
	params := url.Values{}
	params.Add("json", "1")
	params.Add("filter", "recent")
	params.Add("language", "english")
	params.Add("day_range", "30")
	params.Add("num_per_page", fmt.Sprintf("%d", numReviews))
	params.Add("purchase_type", "all")
	params.Add("cursor", "*")
	params.Add("review_type", "all")

	body, status, err := c.get(ctx, fmt.Sprintf("%s/appreviews/%d?%s", c.storeURL, appID, params.Encode()))
	if err != nil {
		return nil, fmt.Errorf("failed to fetch game reviews: %w", err)
	}
	if err := checkStatus(status, body); err != nil {
		return nil, err
	}

	var result struct {
		Success int      `json:"success"`
		Reviews []Review `json:"reviews"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("failed to parse JSON response: %w", err)
	}

	if result.Success == 0 {
		return nil, fmt.Errorf("reviews not available for app ID %d", appID)
	}
	if len(result.Reviews) > numReviews {
		result.Reviews = result.Reviews[:numReviews]
	}
	return result.Reviews, nil
}

// SearchGame searches the store for a game by name and returns the first
// match, or nil when nothing was found.
func (c *Client) SearchGame(ctx context.Context, name string) (*SearchResult, error) {
	params := url.Values{}
	params.Add("term", name)
	params.Add("l", "english")
	params.Add("cc", "us")

	body, status, err := c.get(ctx, c.storeURL+"/api/storesearch?"+params.Encode())
	if err != nil {
		return nil, fmt.Errorf("failed to search for game: %w", err)
	}
	if err := checkStatus(status, body); err != nil {
		return nil, err
	}

	var result struct {
		Total int            `json:"total"`
		Items []SearchResult `json:"items"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("failed to parse JSON response: %w", err)
	}

	if result.Total == 0 || len(result.Items) == 0 {
		return nil, nil
	}
	return &result.Items[0], nil
}
