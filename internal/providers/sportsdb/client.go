// Package sportsdb adapts the TheSportsDB public JSON API. Besides the
// live/today feeds it also serves the league directory, standings and
// match detail lookups, which the scrape upstreams cannot provide.
package sportsdb

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"livescore-service/internal/domain"
	"livescore-service/internal/providers"
	"livescore-service/internal/timeutil"
)

type httpDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Config controls how the client reaches the upstream API.
type Config struct {
	BaseURL    string
	APIKey     string
	HTTPClient *http.Client
	Timeout    time.Duration
}

// Client fetches soccer data from TheSportsDB and maps it to domain models.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient httpDoer
	now        func() time.Time
}

// NewClient constructs a TheSportsDB client with the provided configuration.
func NewClient(cfg Config) *Client {
	return &Client{
		baseURL:    normalizeBaseURL(cfg.BaseURL),
		apiKey:     normalizeAPIKey(cfg.APIKey),
		httpClient: resolveHTTPClient(cfg.HTTPClient, cfg.Timeout),
		now:        time.Now,
	}
}

// WithNow overrides the time source; used by tests.
func (c *Client) WithNow(now func() time.Time) *Client {
	c.now = now
	return c
}

func (c *Client) Name() string {
	return providerName
}

// FetchLive returns the in-play soccer matches.
func (c *Client) FetchLive(ctx context.Context) ([]domain.Match, error) {
	var payload eventsResponse
	if err := c.get(ctx, "livescore.php", url.Values{"s": {"Soccer"}}, &payload); err != nil {
		return nil, err
	}

	// A null events array here means no live matches, not a malformed payload.
	matches := make([]domain.Match, 0, len(payload.Events))
	for _, e := range payload.Events {
		matches = append(matches, mapEvent(e))
	}
	return matches, nil
}

// FetchToday returns the day's soccer fixtures grouped by league.
// An empty date means today.
func (c *Client) FetchToday(ctx context.Context, date string) ([]domain.League, error) {
	if date == "" {
		date = timeutil.FormatDate(c.now().UTC())
	}

	var payload eventsResponse
	if err := c.get(ctx, "eventsday.php", url.Values{"d": {date}, "s": {"Soccer"}}, &payload); err != nil {
		return nil, err
	}

	byID := make(map[string]int)
	leagues := make([]domain.League, 0)
	for _, e := range payload.Events {
		m := mapEvent(e)
		idx, ok := byID[m.LeagueID]
		if !ok {
			idx = len(leagues)
			byID[m.LeagueID] = idx
			leagues = append(leagues, mapEventLeague(e, m.LeagueID))
		}
		leagues[idx].Matches = append(leagues[idx].Matches, m)
	}
	return leagues, nil
}

// FetchLeagues returns the soccer league directory (no matches attached).
func (c *Client) FetchLeagues(ctx context.Context) ([]domain.League, error) {
	var payload leaguesResponse
	if err := c.get(ctx, "all_leagues.php", nil, &payload); err != nil {
		return nil, err
	}
	if payload.Leagues == nil {
		return nil, fmt.Errorf("%w: leagues", providers.ErrMalformedPayload)
	}

	leagues := make([]domain.League, 0, len(payload.Leagues))
	for _, l := range payload.Leagues {
		if !strings.EqualFold(l.Sport, "Soccer") {
			continue
		}
		leagues = append(leagues, mapLeague(l))
	}
	return leagues, nil
}

// FetchMatch returns the detail view for one event.
func (c *Client) FetchMatch(ctx context.Context, id string) (domain.MatchDetail, error) {
	var payload eventsResponse
	if err := c.get(ctx, "lookupevent.php", url.Values{"id": {id}}, &payload); err != nil {
		return domain.MatchDetail{}, err
	}
	if len(payload.Events) == 0 {
		return domain.MatchDetail{}, fmt.Errorf("%w: event %s", ErrNotFound, id)
	}
	return mapDetail(payload.Events[0]), nil
}

// FetchStandings returns the current table for a league season.
func (c *Client) FetchStandings(ctx context.Context, leagueID, season string) ([]domain.StandingsRow, error) {
	query := url.Values{"l": {leagueID}}
	if season != "" {
		query.Set("s", season)
	}

	var payload tableResponse
	if err := c.get(ctx, "lookuptable.php", query, &payload); err != nil {
		return nil, err
	}
	if payload.Table == nil {
		return nil, fmt.Errorf("%w: table", providers.ErrMalformedPayload)
	}

	rows := make([]domain.StandingsRow, 0, len(payload.Table))
	for _, r := range payload.Table {
		rows = append(rows, mapStandingsRow(r))
	}
	return rows, nil
}

func (c *Client) get(ctx context.Context, endpoint string, query url.Values, out any) error {
	target := fmt.Sprintf("%s/%s/%s", c.baseURL, c.apiKey, endpoint)
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("thesportsdb: unexpected status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: %v", providers.ErrMalformedPayload, err)
	}
	return nil
}

func normalizeBaseURL(base string) string {
	if base == "" {
		base = "https://www.thesportsdb.com/api/v1/json"
	}
	return strings.TrimRight(base, "/")
}

func normalizeAPIKey(key string) string {
	if key == "" {
		// Public free-tier key.
		return "3"
	}
	return key
}

func resolveHTTPClient(client *http.Client, timeout time.Duration) httpDoer {
	if client != nil {
		return client
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &http.Client{Timeout: timeout}
}
