package config

import "time"

const (
	envSportsDBBaseURL = "SPORTSDB_BASE_URL"
	envSportsDBAPIKey  = "SPORTSDB_API_KEY"
	envSportsDBTimeout = "SPORTSDB_TIMEOUT"

	defaultSportsDBBaseURL = "https://www.thesportsdb.com/api/v1/json"
	// "3" is the public free-tier key.
	defaultSportsDBAPIKey  = "3"
	defaultSportsDBTimeout = 10 * time.Second
)

// SportsDBConfig controls the TheSportsDB API client.
type SportsDBConfig struct {
	BaseURL string
	APIKey  string
	Timeout Duration
}

func loadSportsDB() SportsDBConfig {
	return SportsDBConfig{
		BaseURL: envOrDefault(envSportsDBBaseURL, defaultSportsDBBaseURL),
		APIKey:  envOrDefault(envSportsDBAPIKey, defaultSportsDBAPIKey),
		Timeout: durationEnvOrDefault(envSportsDBTimeout, defaultSportsDBTimeout),
	}
}
