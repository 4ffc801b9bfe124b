package providers

import (
	"context"

	"livescore-service/internal/domain"
)

// Provider defines how one upstream's data is fetched and normalized to
// the common match/league shapes. The date parameter, when provided,
// should be a YYYY-MM-DD string indicating which day's fixtures to
// fetch; providers should interpret an empty date as "today".
type Provider interface {
	Name() string
	FetchLive(ctx context.Context) ([]domain.Match, error)
	FetchToday(ctx context.Context, date string) ([]domain.League, error)
}

// Health describes the last observed state of one adapter. An empty
// but reachable upstream (no matches scheduled) is a distinct state
// from an unreachable one.
type Health struct {
	Reachable bool
	Empty     bool
}

// LiveResult is a live fetch outcome with the error already absorbed.
type LiveResult struct {
	Matches []domain.Match
	Health  Health
}

// TodayResult is a fixtures fetch outcome with the error already absorbed.
type TodayResult struct {
	Leagues []domain.League
	Health  Health
}
