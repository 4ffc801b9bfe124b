package config

import "time"

const (
	envFirecrawlBaseURL = "FIRECRAWL_BASE_URL"
	envFirecrawlAPIKey  = "FIRECRAWL_API_KEY"
	envFirecrawlTimeout = "FIRECRAWL_TIMEOUT"
	envFirecrawlWaitMS  = "FIRECRAWL_WAIT_MS"

	defaultFirecrawlBaseURL = "https://api.firecrawl.dev/v1"
	// Scrape-backed upstreams need a generous bound to tolerate the
	// proxy's cold-start and page-render latency.
	defaultFirecrawlTimeout = 20 * time.Second
	defaultFirecrawlWaitMS  = 3000
)

// FirecrawlConfig controls the markdown-conversion proxy client.
type FirecrawlConfig struct {
	BaseURL string
	APIKey  string
	Timeout Duration
	WaitMS  int
}

func loadFirecrawl() FirecrawlConfig {
	return FirecrawlConfig{
		BaseURL: envOrDefault(envFirecrawlBaseURL, defaultFirecrawlBaseURL),
		APIKey:  envOrDefault(envFirecrawlAPIKey, ""),
		Timeout: durationEnvOrDefault(envFirecrawlTimeout, defaultFirecrawlTimeout),
		WaitMS:  intEnvOrDefault(envFirecrawlWaitMS, defaultFirecrawlWaitMS),
	}
}
