package flashscore

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"livescore-service/internal/domain"
	"livescore-service/internal/firecrawl"
	"livescore-service/internal/metrics"
	"livescore-service/internal/testutil"
)

func newScrapeStub(t *testing.T) *firecrawl.Client {
	t.Helper()
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"data":{"markdown":"## England - Premier League\nArsenal 2-1 Chelsea 67'\nLiverpool 3-0 Everton FT\n19:00 Brentford vs Fulham"}}`))
	}))
	t.Cleanup(ts.Close)
	return firecrawl.NewClient(firecrawl.Config{BaseURL: ts.URL, APIKey: "test"})
}

func TestFetchLiveFiltersToInPlay(t *testing.T) {
	p := New(newScrapeStub(t), testutil.SilentLogger(), metrics.NewRecorder())

	matches, err := p.FetchLive(context.Background())
	if err != nil {
		t.Fatalf("fetch failed: %v", err)
	}
	if len(matches) != 1 {
		t.Fatalf("expected only the live match, got %d", len(matches))
	}
	if matches[0].HomeTeam.Name != "Arsenal" || matches[0].Status != domain.StatusLive {
		t.Fatalf("unexpected match %+v", matches[0])
	}
}

func TestFetchTodayGroupsAllStatuses(t *testing.T) {
	p := New(newScrapeStub(t), testutil.SilentLogger(), metrics.NewRecorder())

	leagues, err := p.FetchToday(context.Background(), "2025-03-08")
	if err != nil {
		t.Fatalf("fetch failed: %v", err)
	}
	if len(leagues) != 1 {
		t.Fatalf("expected 1 league, got %d", len(leagues))
	}
	if len(leagues[0].Matches) != 3 {
		t.Fatalf("expected all 3 matches grouped, got %d", len(leagues[0].Matches))
	}
	if leagues[0].Country != "England" {
		t.Fatalf("unexpected country %s", leagues[0].Country)
	}
}

func TestFetchLivePropagatesScrapeError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream timeout", http.StatusBadGateway)
	}))
	t.Cleanup(ts.Close)

	p := New(firecrawl.NewClient(firecrawl.Config{BaseURL: ts.URL, APIKey: "test"}),
		testutil.SilentLogger(), metrics.NewRecorder())
	if _, err := p.FetchLive(context.Background()); err == nil {
		t.Fatal("scrape failure must propagate so the guard can absorb it")
	}
}
