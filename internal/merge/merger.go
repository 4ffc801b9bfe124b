// Package merge fans a fetch out to every configured adapter and folds
// the results into one view. Adapter order is priority order: the first
// adapter's data always wins a duplicate, regardless of which upstream
// answered fastest.
package merge

import (
	"context"
	"log/slog"
	"sync"

	"livescore-service/internal/domain"
	"livescore-service/internal/logging"
	"livescore-service/internal/providers"
)

// SourceHealth pairs an adapter name with its last observed health.
type SourceHealth struct {
	Name   string
	Health providers.Health
}

// LiveOutcome is the merged live view across all adapters.
type LiveOutcome struct {
	Matches []domain.Match
	// Online means at least one adapter produced at least one match.
	Online bool
	// Reachable means at least one adapter answered, even with zero
	// matches. Only its negation marks the fetch as a failure.
	Reachable bool
	Source    string
	Sources   []SourceHealth
}

// GroupedOutcome is the merged, policy-partitioned fixtures view.
type GroupedOutcome struct {
	Top       []domain.League
	Other     []domain.League
	Online    bool
	Reachable bool
	Source    string
	Sources   []SourceHealth
}

// Merger queries guarded adapters concurrently and merges in priority order.
type Merger struct {
	adapters []*providers.Guarded
	policy   Policy
	logger   *slog.Logger
}

// NewMerger constructs a merger over the adapters in priority order.
func NewMerger(adapters []*providers.Guarded, policy Policy, logger *slog.Logger) *Merger {
	return &Merger{adapters: adapters, policy: policy, logger: logger}
}

// FetchAllLive queries every adapter for live matches and merges them,
// deduplicating fixtures by team pairing.
func (m *Merger) FetchAllLive(ctx context.Context) LiveOutcome {
	results := make([]providers.LiveResult, len(m.adapters))

	var wg sync.WaitGroup
	for i, a := range m.adapters {
		wg.Add(1)
		go func(i int, a *providers.Guarded) {
			defer wg.Done()
			results[i] = a.SafeLive(ctx)
		}(i, a)
	}
	wg.Wait()

	outcome := LiveOutcome{Matches: []domain.Match{}}
	seen := make(map[string]struct{})
	var contributed []string

	for i, r := range results {
		name := m.adapters[i].Name()
		outcome.Sources = append(outcome.Sources, SourceHealth{Name: name, Health: r.Health})
		if r.Health.Reachable {
			outcome.Reachable = true
		}
		added := 0
		for _, match := range r.Matches {
			key := match.Key()
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
			outcome.Matches = append(outcome.Matches, match)
			added++
		}
		if added > 0 {
			contributed = append(contributed, name)
		}
	}

	outcome.Online = len(outcome.Matches) > 0
	outcome.Source = sourceLabel(contributed)
	logging.FromContext(ctx, m.logger).Debug("merged live view",
		logging.FieldCount, len(outcome.Matches), "reachable", outcome.Reachable)
	return outcome
}

// FetchAllToday queries every adapter for the day's fixtures, merges the
// league lists and splits them by the top-league policy. Leagues are
// deduplicated by name, matches within a league by team pairing.
func (m *Merger) FetchAllToday(ctx context.Context, date string) GroupedOutcome {
	results := make([]providers.TodayResult, len(m.adapters))

	var wg sync.WaitGroup
	for i, a := range m.adapters {
		wg.Add(1)
		go func(i int, a *providers.Guarded) {
			defer wg.Done()
			results[i] = a.SafeToday(ctx, date)
		}(i, a)
	}
	wg.Wait()

	outcome := GroupedOutcome{}
	merged := []domain.League{}
	leagueIdx := make(map[string]int)
	seenMatches := make(map[string]map[string]struct{})
	var contributed []string

	for i, r := range results {
		name := m.adapters[i].Name()
		outcome.Sources = append(outcome.Sources, SourceHealth{Name: name, Health: r.Health})
		if r.Health.Reachable {
			outcome.Reachable = true
		}
		added := 0
		for _, league := range r.Leagues {
			key := league.Key()
			idx, ok := leagueIdx[key]
			if !ok {
				idx = len(merged)
				leagueIdx[key] = idx
				copied := league
				copied.Matches = []domain.Match{}
				merged = append(merged, copied)
				seenMatches[key] = make(map[string]struct{})
			}
			for _, match := range league.Matches {
				mk := match.Key()
				if _, dup := seenMatches[key][mk]; dup {
					continue
				}
				seenMatches[key][mk] = struct{}{}
				merged[idx].Matches = append(merged[idx].Matches, match)
				added++
			}
		}
		if added > 0 {
			contributed = append(contributed, name)
		}
	}

	outcome.Top, outcome.Other = m.policy.Split(merged)
	outcome.Online = countMatches(merged) > 0
	outcome.Source = sourceLabel(contributed)
	logging.FromContext(ctx, m.logger).Debug("merged fixtures view",
		logging.FieldDate, date, logging.FieldCount, countMatches(merged), "reachable", outcome.Reachable)
	return outcome
}

func countMatches(leagues []domain.League) int {
	total := 0
	for _, l := range leagues {
		total += len(l.Matches)
	}
	return total
}

// sourceLabel is the primary data source: the highest-priority adapter
// that contributed at least one item. Per-adapter detail lives in Sources.
func sourceLabel(contributed []string) string {
	if len(contributed) == 0 {
		return "none"
	}
	return contributed[0]
}
