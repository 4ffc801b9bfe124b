package config

import "time"

const (
	envPort         = "PORT"
	envAdapters     = "ADAPTERS"
	envPollInterval = "POLL_INTERVAL"

	envLiveTTL    = "LIVE_CACHE_TTL"
	envTodayTTL   = "TODAY_CACHE_TTL"
	envLeaguesTTL = "LEAGUES_CACHE_TTL"

	defaultPort         = "8080"
	defaultAdapters     = "fixture"
	defaultPollInterval = 30 * time.Second

	defaultLiveTTL    = 30 * time.Second
	defaultTodayTTL   = time.Minute
	defaultLeaguesTTL = time.Hour
)
