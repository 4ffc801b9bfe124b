// Package scores is the application service behind the score endpoints.
// It owns the cache-then-fetch-then-stale flow: answer from a fresh
// cache entry when one exists, otherwise run the merger, and fall back
// to an expired entry only when every adapter is unreachable.
package scores

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"livescore-service/internal/cache"
	"livescore-service/internal/domain"
	"livescore-service/internal/logging"
	"livescore-service/internal/merge"
	"livescore-service/internal/metrics"
	"livescore-service/internal/timeutil"
)

// ErrAllUnreachable is returned by warm-up refreshes when no adapter
// answered and no stale data exists to fall back on.
var ErrAllUnreachable = errors.New("no adapter reachable")

const (
	keyLive    = "live"
	keyLeagues = "leagues"

	resourceLive    = "live"
	resourceToday   = "today"
	resourceLeagues = "leagues"
)

// Directory is the lookup-style upstream serving the league catalogue
// and per-match detail, which the scrape adapters cannot provide.
type Directory interface {
	FetchLeagues(ctx context.Context) ([]domain.League, error)
	FetchMatch(ctx context.Context, id string) (domain.MatchDetail, error)
	FetchStandings(ctx context.Context, leagueID, season string) ([]domain.StandingsRow, error)
}

// CacheTTLs carries the per-resource freshness windows.
type CacheTTLs struct {
	Live    time.Duration
	Today   time.Duration
	Leagues time.Duration
}

// Service answers the live, today, leagues and match-detail queries.
type Service struct {
	merger    *merge.Merger
	directory Directory
	policy    merge.Policy
	logger    *slog.Logger
	recorder  *metrics.Recorder
	now       func() time.Time

	liveCache    *cache.TTL[merge.LiveOutcome]
	todayCache   *cache.TTL[merge.GroupedOutcome]
	leaguesCache *cache.TTL[[]domain.League]
}

// NewService wires the score service. directory may be nil when no
// lookup upstream is configured; league and detail queries then fail
// with ErrAllUnreachable.
func NewService(merger *merge.Merger, directory Directory, policy merge.Policy, ttls CacheTTLs, logger *slog.Logger, recorder *metrics.Recorder) *Service {
	return &Service{
		merger:       merger,
		directory:    directory,
		policy:       policy,
		logger:       logger,
		recorder:     recorder,
		now:          time.Now,
		liveCache:    cache.NewTTL[merge.LiveOutcome](ttls.Live),
		todayCache:   cache.NewTTL[merge.GroupedOutcome](ttls.Today),
		leaguesCache: cache.NewTTL[[]domain.League](ttls.Leagues),
	}
}

// WithNow overrides the time source; used by tests.
func (s *Service) WithNow(now func() time.Time) *Service {
	s.now = now
	s.liveCache.WithNow(now)
	s.todayCache.WithNow(now)
	s.leaguesCache.WithNow(now)
	return s
}

// Live returns the merged in-play view.
func (s *Service) Live(ctx context.Context) domain.LiveResponse {
	if outcome, _, ok := s.liveCache.Fresh(keyLive); ok {
		s.recorder.RecordCacheHit(resourceLive)
		return s.liveResponse(outcome, true)
	}
	s.recorder.RecordCacheMiss(resourceLive)

	outcome := s.merger.FetchAllLive(ctx)
	if outcome.Reachable {
		s.liveCache.Put(keyLive, outcome)
		return s.liveResponse(outcome, false)
	}

	if stale, age, ok := s.liveCache.Stale(keyLive); ok {
		logging.FromContext(ctx, s.logger).Warn("all adapters unreachable, serving stale live data",
			logging.FieldDurationMS, age.Milliseconds())
		return s.liveResponse(stale, true)
	}
	return s.liveResponse(outcome, false)
}

// WarmLive refreshes the live cache; the poller calls this on a fixed
// interval so user requests mostly hit a warm entry.
func (s *Service) WarmLive(ctx context.Context) error {
	outcome := s.merger.FetchAllLive(ctx)
	if !outcome.Reachable {
		return ErrAllUnreachable
	}
	s.liveCache.Put(keyLive, outcome)
	return nil
}

// Today returns the day's fixtures grouped by league and partitioned by
// the top-league policy. An empty date means the current UTC day.
func (s *Service) Today(ctx context.Context, date string) domain.GroupedResponse {
	if date == "" {
		date = timeutil.FormatDate(s.now().UTC())
	}
	key := "today:" + date

	if outcome, _, ok := s.todayCache.Fresh(key); ok {
		s.recorder.RecordCacheHit(resourceToday)
		return s.groupedResponse(outcome, date, true)
	}
	s.recorder.RecordCacheMiss(resourceToday)

	outcome := s.merger.FetchAllToday(ctx, date)
	if outcome.Reachable {
		s.todayCache.Put(key, outcome)
		return s.groupedResponse(outcome, date, false)
	}

	if stale, age, ok := s.todayCache.Stale(key); ok {
		logging.FromContext(ctx, s.logger).Warn("all adapters unreachable, serving stale fixtures",
			logging.FieldDate, date, logging.FieldDurationMS, age.Milliseconds())
		return s.groupedResponse(stale, date, true)
	}
	return s.groupedResponse(outcome, date, false)
}

// Leagues returns the league directory partitioned by the top-league
// policy. Matches are not attached to directory entries.
func (s *Service) Leagues(ctx context.Context) domain.GroupedResponse {
	if leagues, _, ok := s.leaguesCache.Fresh(keyLeagues); ok {
		s.recorder.RecordCacheHit(resourceLeagues)
		return s.directoryResponse(leagues, true, true)
	}
	s.recorder.RecordCacheMiss(resourceLeagues)

	if s.directory == nil {
		return s.directoryResponse(nil, false, false)
	}
	leagues, err := s.directory.FetchLeagues(ctx)
	if err != nil {
		logging.FromContext(ctx, s.logger).Warn("league directory fetch failed", "err", err)
		if stale, _, ok := s.leaguesCache.Stale(keyLeagues); ok {
			return s.directoryResponse(stale, true, true)
		}
		return s.directoryResponse(nil, false, false)
	}

	s.leaguesCache.Put(keyLeagues, leagues)
	return s.directoryResponse(leagues, true, false)
}

// MatchDetail looks up one match's detail view from the directory
// upstream. Detail lookups are not cached; they are rare and the
// timeline changes while a match runs.
func (s *Service) MatchDetail(ctx context.Context, id string) (domain.DetailResponse, error) {
	if s.directory == nil {
		return domain.DetailResponse{}, ErrAllUnreachable
	}
	detail, err := s.directory.FetchMatch(ctx, id)
	if err != nil {
		return domain.DetailResponse{}, err
	}
	return domain.DetailResponse{Match: detail, Timestamp: s.timestamp()}, nil
}

// Standings looks up the current table for one league. Served straight
// from the directory upstream like match detail.
func (s *Service) Standings(ctx context.Context, leagueID, season string) (domain.StandingsResponse, error) {
	if s.directory == nil {
		return domain.StandingsResponse{}, ErrAllUnreachable
	}
	rows, err := s.directory.FetchStandings(ctx, leagueID, season)
	if err != nil {
		return domain.StandingsResponse{}, err
	}
	return domain.StandingsResponse{
		LeagueID:  leagueID,
		Season:    season,
		Standings: rows,
		Timestamp: s.timestamp(),
	}, nil
}

func (s *Service) liveResponse(outcome merge.LiveOutcome, cached bool) domain.LiveResponse {
	return domain.LiveResponse{
		Matches:   emptyMatches(outcome.Matches),
		Count:     len(outcome.Matches),
		Timestamp: s.timestamp(),
		Source:    outcome.Source,
		Online:    outcome.Online,
		Cached:    cached,
	}
}

func (s *Service) groupedResponse(outcome merge.GroupedOutcome, date string, cached bool) domain.GroupedResponse {
	resp := domain.GroupedResponse{
		TopLeagues:   emptyLeagues(outcome.Top),
		OtherLeagues: emptyLeagues(outcome.Other),
		Date:         date,
		Timestamp:    s.timestamp(),
		Source:       outcome.Source,
		Online:       outcome.Online,
		Cached:       cached,
	}
	resp.Count = resp.MatchCount()
	return resp
}

func (s *Service) directoryResponse(leagues []domain.League, online, cached bool) domain.GroupedResponse {
	top, other := s.policy.Split(leagues)
	return domain.GroupedResponse{
		TopLeagues:   top,
		OtherLeagues: other,
		Count:        len(leagues),
		Timestamp:    s.timestamp(),
		Source:       "thesportsdb",
		Online:       online && len(leagues) > 0,
		Cached:       cached,
	}
}

func (s *Service) timestamp() string {
	return s.now().UTC().Format(time.RFC3339)
}

func emptyMatches(matches []domain.Match) []domain.Match {
	if matches == nil {
		return []domain.Match{}
	}
	return matches
}

func emptyLeagues(leagues []domain.League) []domain.League {
	if leagues == nil {
		return []domain.League{}
	}
	return leagues
}
