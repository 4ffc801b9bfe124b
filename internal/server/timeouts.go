package server

import "time"

const (
	readTimeout = 10 * time.Second
	// Scrape-backed fetches can take most of the proxy timeout, so the
	// write timeout has to sit above it.
	writeTimeout = 30 * time.Second
	idleTimeout  = 60 * time.Second
)

// shutdownTimeout remains a var for tests to override.
var shutdownTimeout = 10 * time.Second
