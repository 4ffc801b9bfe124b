package config

// Config holds runtime configuration for the server.
type Config struct {
	Port         string
	Adapters     []string // priority order; first contributing adapter wins dedup ties
	PollInterval Duration
	Cache        CacheConfig
	Firecrawl    FirecrawlConfig
	SportsDB     SportsDBConfig
	Metrics      MetricsConfig
}

// CacheConfig carries the per-resource freshness windows.
type CacheConfig struct {
	LiveTTL    Duration
	TodayTTL   Duration
	LeaguesTTL Duration
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	return Config{
		Port:         envOrDefault(envPort, defaultPort),
		Adapters:     listEnvOrDefault(envAdapters, defaultAdapters),
		PollInterval: durationEnvOrDefault(envPollInterval, defaultPollInterval),
		Cache: CacheConfig{
			LiveTTL:    durationEnvOrDefault(envLiveTTL, defaultLiveTTL),
			TodayTTL:   durationEnvOrDefault(envTodayTTL, defaultTodayTTL),
			LeaguesTTL: durationEnvOrDefault(envLeaguesTTL, defaultLeaguesTTL),
		},
		Firecrawl: loadFirecrawl(),
		SportsDB:  loadSportsDB(),
		Metrics:   loadMetrics(),
	}
}
