package providers

import (
	"context"
	"log/slog"
	"sync"

	"livescore-service/internal/domain"
)

// Guarded is the adapter boundary: it absorbs every upstream failure,
// serving the adapter's last-good value instead (an empty list if the
// adapter has never succeeded), and reports the failure only through
// the health signal. No error crosses this boundary.
type Guarded struct {
	inner  Provider
	logger *slog.Logger

	mu        sync.Mutex
	lastLive  []domain.Match
	lastToday map[string][]domain.League
}

// NewGuarded wraps a provider with last-good fallback behavior.
func NewGuarded(inner Provider, logger *slog.Logger) *Guarded {
	return &Guarded{
		inner:     inner,
		logger:    logger,
		lastToday: make(map[string][]domain.League),
	}
}

func (g *Guarded) Name() string {
	return g.inner.Name()
}

// SafeLive fetches live matches, falling back to the last-good value
// on any upstream failure.
func (g *Guarded) SafeLive(ctx context.Context) LiveResult {
	matches, err := g.inner.FetchLive(ctx)
	if err != nil {
		logWithAdapter(ctx, g.logger, slog.LevelWarn, g.Name(), "live fetch failed, serving last-good", "err", err)
		g.mu.Lock()
		matches = g.lastLive
		g.mu.Unlock()
		return LiveResult{
			Matches: emptyIfNil(matches),
			Health:  Health{Reachable: false, Empty: len(matches) == 0},
		}
	}

	g.mu.Lock()
	g.lastLive = matches
	g.mu.Unlock()
	return LiveResult{
		Matches: emptyIfNil(matches),
		Health:  Health{Reachable: true, Empty: len(matches) == 0},
	}
}

// SafeToday fetches the day's fixtures, falling back to the last-good
// value for that date on any upstream failure.
func (g *Guarded) SafeToday(ctx context.Context, date string) TodayResult {
	leagues, err := g.inner.FetchToday(ctx, date)
	if err != nil {
		logWithAdapter(ctx, g.logger, slog.LevelWarn, g.Name(), "today fetch failed, serving last-good", "err", err)
		g.mu.Lock()
		leagues = g.lastToday[date]
		g.mu.Unlock()
		return TodayResult{
			Leagues: emptyLeaguesIfNil(leagues),
			Health:  Health{Reachable: false, Empty: len(leagues) == 0},
		}
	}

	g.mu.Lock()
	g.lastToday[date] = leagues
	g.mu.Unlock()
	return TodayResult{
		Leagues: emptyLeaguesIfNil(leagues),
		Health:  Health{Reachable: true, Empty: len(leagues) == 0},
	}
}

func emptyIfNil(matches []domain.Match) []domain.Match {
	if matches == nil {
		return []domain.Match{}
	}
	return matches
}

func emptyLeaguesIfNil(leagues []domain.League) []domain.League {
	if leagues == nil {
		return []domain.League{}
	}
	return leagues
}
