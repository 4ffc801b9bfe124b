package firecrawl

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestScrapeSendsExpectedRequest(t *testing.T) {
	var gotAuth, gotPath string
	var gotBody map[string]any

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotPath = r.URL.Path
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Errorf("bad request body: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success":true,"data":{"markdown":"## England - Premier League"}}`))
	}))
	defer ts.Close()

	client := NewClient(Config{BaseURL: ts.URL, APIKey: "secret", WaitMS: 1500})
	doc, err := client.Scrape(context.Background(), "https://www.flashscore.com/football/")
	if err != nil {
		t.Fatalf("scrape failed: %v", err)
	}
	if doc != "## England - Premier League" {
		t.Fatalf("unexpected markdown %q", doc)
	}
	if gotAuth != "Bearer secret" {
		t.Fatalf("unexpected auth header %q", gotAuth)
	}
	if gotPath != "/scrape" {
		t.Fatalf("unexpected path %q", gotPath)
	}
	if gotBody["url"] != "https://www.flashscore.com/football/" {
		t.Fatalf("unexpected target url %v", gotBody["url"])
	}
	if gotBody["waitFor"] != float64(1500) {
		t.Fatalf("unexpected waitFor %v", gotBody["waitFor"])
	}
}

func TestScrapeTopLevelMarkdownFallback(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"markdown":"plain body"}`))
	}))
	defer ts.Close()

	client := NewClient(Config{BaseURL: ts.URL, APIKey: "k"})
	doc, err := client.Scrape(context.Background(), "https://example.com")
	if err != nil {
		t.Fatalf("scrape failed: %v", err)
	}
	if doc != "plain body" {
		t.Fatalf("unexpected markdown %q", doc)
	}
}

func TestScrapeNonOKStatus(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	}))
	defer ts.Close()

	client := NewClient(Config{BaseURL: ts.URL, APIKey: "k"})
	if _, err := client.Scrape(context.Background(), "https://example.com"); err == nil {
		t.Fatal("expected error for non-200 status")
	}
}

func TestScrapeWithoutAPIKey(t *testing.T) {
	client := NewClient(Config{})
	if _, err := client.Scrape(context.Background(), "https://example.com"); err == nil {
		t.Fatal("expected ErrNotConfigured without an API key")
	}
}
