package riot

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strconv"
	"sync"
	"time"
)

const (
	// API base URLs
	americasBaseURL = "https://americas.api.riotgames.com"
	defaultPlatform = "na1"

	// Rate limits for dev key (using conservative values to be safe)
	requestsPerSecond = 15 // Actual: 20, using 15 for safety
	requestsPer2Min   = 90 // Actual: 100, using 90 for safety

	// Retry policy for 429 responses
	maxRetries       = 5
	defaultRetryWait = 10 * time.Second
)

// Client is a rate-limited Riot API client
type Client struct {
	apiKey      string
	platformURL string
	httpClient  *http.Client

	// Rate limiting
	mu          sync.Mutex
	shortWindow []time.Time // Requests in last second
	longWindow  []time.Time // Requests in last 2 minutes
}

// NewClient creates a new Riot API client
func NewClient() (*Client, error) {
	apiKey := os.Getenv("RIOT_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("RIOT_API_KEY environment variable not set")
	}

	platform := os.Getenv("RIOT_PLATFORM")
	if platform == "" {
		platform = defaultPlatform
	}

	return &Client{
		apiKey:      apiKey,
		platformURL: fmt.Sprintf("https://%s.api.riotgames.com", platform),
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		shortWindow: make([]time.Time, 0),
		longWindow:  make([]time.Time, 0),
	}, nil
}

// waitForRateLimit blocks until we can make another request
func (c *Client) waitForRateLimit() {
	for {
		c.mu.Lock()

		now := time.Now()
		oneSecondAgo := now.Add(-1 * time.Second)
		twoMinutesAgo := now.Add(-2 * time.Minute)

		// Drop expired entries
		newShort := make([]time.Time, 0, len(c.shortWindow))
		for _, t := range c.shortWindow {
			if t.After(oneSecondAgo) {
				newShort = append(newShort, t)
			}
		}
		c.shortWindow = newShort

		newLong := make([]time.Time, 0, len(c.longWindow))
		for _, t := range c.longWindow {
			if t.After(twoMinutesAgo) {
				newLong = append(newLong, t)
			}
		}
		c.longWindow = newLong

		if len(c.shortWindow) >= requestsPerSecond {
			waitTime := c.shortWindow[0].Add(time.Second).Sub(now) + 100*time.Millisecond
			c.mu.Unlock()
			time.Sleep(waitTime)
			continue
		}

		if len(c.longWindow) >= requestsPer2Min {
			waitTime := c.longWindow[0].Add(2*time.Minute).Sub(now) + 100*time.Millisecond
			c.mu.Unlock()
			fmt.Printf("      [Rate limit] %d req/2min, waiting %.1fs...\n", len(c.longWindow), waitTime.Seconds())
			time.Sleep(waitTime)
			continue
		}

		c.shortWindow = append(c.shortWindow, time.Now())
		c.longWindow = append(c.longWindow, time.Now())
		c.mu.Unlock()
		return
	}
}

// doRequest makes a rate-limited request with a bounded retry loop on 429.
func (c *Client) doRequest(ctx context.Context, url string, result interface{}) error {
	for attempt := 0; attempt <= maxRetries; attempt++ {
		c.waitForRateLimit()

		req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
		if err != nil {
			return err
		}
		req.Header.Set("X-Riot-Token", c.apiKey)

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return err
		}

		if resp.StatusCode == http.StatusTooManyRequests {
			waitTime := defaultRetryWait
			if retryAfter := resp.Header.Get("Retry-After"); retryAfter != "" {
				if secs, err := strconv.Atoi(retryAfter); err == nil {
					waitTime = time.Duration(secs) * time.Second
				}
			}
			resp.Body.Close()
			fmt.Printf("      [429 Rate Limited] attempt %d/%d, waiting %s...\n", attempt+1, maxRetries, waitTime)

			select {
			case <-time.After(waitTime):
				continue
			case <-ctx.Done():
				return ctx.Err()
			}
		}

		defer resp.Body.Close()

		switch {
		case resp.StatusCode == http.StatusForbidden:
			return fmt.Errorf("API returned 403 Forbidden - check if your API key is valid")
		case resp.StatusCode == http.StatusNotFound:
			return fmt.Errorf("API returned 404 Not Found - player/match may not exist")
		case resp.StatusCode != http.StatusOK:
			return fmt.Errorf("API returned status %d", resp.StatusCode)
		}

		return json.NewDecoder(resp.Body).Decode(result)
	}

	return fmt.Errorf("rate limited after %d retries: %s", maxRetries, url)
}

// ValidateKey makes a cheap request to verify the API key still works.
func (c *Client) ValidateKey(ctx context.Context) error {
	url := fmt.Sprintf("%s/lol/status/v4/platform-data", c.platformURL)
	var status struct {
		ID string `json:"id"`
	}
	return c.doRequest(ctx, url, &status)
}

// GetAccountByRiotID fetches account info by Riot ID (gameName#tagLine)
func (c *Client) GetAccountByRiotID(ctx context.Context, gameName, tagLine string) (*AccountResponse, error) {
	url := fmt.Sprintf("%s/riot/account/v1/accounts/by-riot-id/%s/%s",
		americasBaseURL, gameName, tagLine)

	var account AccountResponse
	err := c.doRequest(ctx, url, &account)
	return &account, err
}

// GetMatchHistory fetches ranked solo queue match IDs for a player
func (c *Client) GetMatchHistory(ctx context.Context, puuid string, count int) ([]string, error) {
	url := fmt.Sprintf("%s/lol/match/v5/matches/by-puuid/%s/ids?queue=420&count=%d",
		americasBaseURL, puuid, count)

	var matchIDs []string
	err := c.doRequest(ctx, url, &matchIDs)
	return matchIDs, err
}

// GetMatch fetches match details
func (c *Client) GetMatch(ctx context.Context, matchID string) (*MatchResponse, error) {
	url := fmt.Sprintf("%s/lol/match/v5/matches/%s", americasBaseURL, matchID)

	var match MatchResponse
	err := c.doRequest(ctx, url, &match)
	return &match, err
}

// GetTimeline fetches match timeline
func (c *Client) GetTimeline(ctx context.Context, matchID string) (*TimelineResponse, error) {
	url := fmt.Sprintf("%s/lol/match/v5/matches/%s/timeline", americasBaseURL, matchID)

	var timeline TimelineResponse
	err := c.doRequest(ctx, url, &timeline)
	return &timeline, err
}

// GetRankedEntriesByPUUID fetches all ranked entries for a player
func (c *Client) GetRankedEntriesByPUUID(ctx context.Context, puuid string) ([]LeagueEntryResponse, error) {
	url := fmt.Sprintf("%s/lol/league/v4/entries/by-puuid/%s", c.platformURL, puuid)

	var entries []LeagueEntryResponse
	err := c.doRequest(ctx, url, &entries)
	return entries, err
}

// GetSoloQueueRank returns the solo queue tier and division for a player.
// hasRank is false when the player has no RANKED_SOLO_5x5 entry.
func (c *Client) GetSoloQueueRank(ctx context.Context, puuid string) (tier, division string, hasRank bool, err error) {
	entries, err := c.GetRankedEntriesByPUUID(ctx, puuid)
	if err != nil {
		return "", "", false, err
	}

	for _, entry := range entries {
		if entry.QueueType == "RANKED_SOLO_5x5" {
			return entry.Tier, entry.Rank, true, nil
		}
	}
	return "", "", false, nil
}

// GetLeagueEntries fetches one page of ranked entries for a tier/division.
// Used by the benchmark builder to sample players per rank tier.
func (c *Client) GetLeagueEntries(ctx context.Context, tier, division string, page int) ([]LeagueEntryResponse, error) {
	url := fmt.Sprintf("%s/lol/league/v4/entries/RANKED_SOLO_5x5/%s/%s?page=%d",
		c.platformURL, tier, division, page)

	var entries []LeagueEntryResponse
	err := c.doRequest(ctx, url, &entries)
	return entries, err
}
