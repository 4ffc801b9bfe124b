package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	if cfg.Port != "8080" {
		t.Fatalf("unexpected port %s", cfg.Port)
	}
	if len(cfg.Adapters) != 1 || cfg.Adapters[0] != "fixture" {
		t.Fatalf("unexpected adapters %v", cfg.Adapters)
	}
	if time.Duration(cfg.PollInterval) != 30*time.Second {
		t.Fatalf("unexpected poll interval %v", cfg.PollInterval)
	}
	if time.Duration(cfg.Cache.LiveTTL) != 30*time.Second {
		t.Fatalf("unexpected live TTL %v", cfg.Cache.LiveTTL)
	}
	if time.Duration(cfg.Cache.TodayTTL) != time.Minute {
		t.Fatalf("unexpected today TTL %v", cfg.Cache.TodayTTL)
	}
	if time.Duration(cfg.Cache.LeaguesTTL) != time.Hour {
		t.Fatalf("unexpected leagues TTL %v", cfg.Cache.LeaguesTTL)
	}
	if cfg.SportsDB.APIKey != "3" {
		t.Fatalf("unexpected sportsdb key %s", cfg.SportsDB.APIKey)
	}
	if cfg.Metrics.Enabled {
		t.Fatal("metrics must default to disabled")
	}
}

func TestLoadAdapterListParsing(t *testing.T) {
	t.Setenv("ADAPTERS", " Flashscore, TheSportsDB ,sofascore ")
	cfg := Load()

	want := []string{"flashscore", "thesportsdb", "sofascore"}
	if len(cfg.Adapters) != len(want) {
		t.Fatalf("unexpected adapters %v", cfg.Adapters)
	}
	for i, name := range want {
		if cfg.Adapters[i] != name {
			t.Fatalf("adapter %d: expected %s, got %s", i, name, cfg.Adapters[i])
		}
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("PORT", "9999")
	t.Setenv("POLL_INTERVAL", "10s")
	t.Setenv("LIVE_CACHE_TTL", "5s")
	t.Setenv("FIRECRAWL_API_KEY", "fc-key")

	cfg := Load()
	if cfg.Port != "9999" {
		t.Fatalf("unexpected port %s", cfg.Port)
	}
	if time.Duration(cfg.PollInterval) != 10*time.Second {
		t.Fatalf("unexpected poll interval %v", cfg.PollInterval)
	}
	if time.Duration(cfg.Cache.LiveTTL) != 5*time.Second {
		t.Fatalf("unexpected live TTL %v", cfg.Cache.LiveTTL)
	}
	if cfg.Firecrawl.APIKey != "fc-key" {
		t.Fatalf("unexpected firecrawl key %s", cfg.Firecrawl.APIKey)
	}
}

func TestInvalidDurationFallsBack(t *testing.T) {
	t.Setenv("POLL_INTERVAL", "often")
	cfg := Load()
	if time.Duration(cfg.PollInterval) != 30*time.Second {
		t.Fatalf("invalid duration must fall back to default, got %v", cfg.PollInterval)
	}
}
