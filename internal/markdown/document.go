// Package markdown turns loosely-structured markdown text scraped from
// score sites into typed match and league records. Any line that fails
// every grammar is skipped; a parse never fails.
package markdown

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"livescore-service/internal/domain"
	"livescore-service/internal/logging"
	"livescore-service/internal/metrics"
)

// Parser drives the section tracker and the grammar chain over a full
// markdown document.
type Parser struct {
	sourceTag string
	logger    *slog.Logger
	metrics   *metrics.Recorder
	now       func() time.Time
}

// NewParser constructs a Parser. sourceTag prefixes the synthetic match
// ids so ids from different sources never collide.
func NewParser(sourceTag string, logger *slog.Logger, recorder *metrics.Recorder) *Parser {
	return &Parser{
		sourceTag: sourceTag,
		logger:    logger,
		metrics:   recorder,
		now:       time.Now,
	}
}

// WithNow overrides the time source; used by tests for deterministic
// start times and ids.
func (p *Parser) WithNow(now func() time.Time) *Parser {
	p.now = now
	return p
}

// ParseLive extracts the in-play matches from a document. The scrape
// source mixes all statuses on one page, so finished and scheduled
// matches are discarded here.
func (p *Parser) ParseLive(doc string) []domain.Match {
	all := p.parse(doc, newSectionTracker(false), liveGrammars)
	matches := make([]domain.Match, 0, len(all))
	for _, m := range all {
		if m.Status.InPlay() {
			matches = append(matches, m)
		}
	}
	p.metrics.RecordParsedMatches(p.sourceTag, len(matches))
	return matches
}

// ParseToday extracts all of the day's matches grouped by league, in
// first-match-discovery order. Leagues without matches are never
// emitted.
func (p *Parser) ParseToday(doc string) []domain.League {
	all := p.parse(doc, newSectionTracker(true), todayGrammars)
	p.metrics.RecordParsedMatches(p.sourceTag, len(all))

	byID := make(map[string]int)
	leagues := make([]domain.League, 0)
	for _, m := range all {
		idx, ok := byID[m.LeagueID]
		if !ok {
			idx = len(leagues)
			byID[m.LeagueID] = idx
			leagues = append(leagues, domain.League{
				ID:          m.LeagueID,
				Name:        m.LeagueName,
				Country:     m.Country,
				CountryFlag: domain.CountryFlag(m.Country),
				Logo:        domain.PlaceholderLogo(m.LeagueName),
			})
		}
		leagues[idx].Matches = append(leagues[idx].Matches, m)
	}
	return leagues
}

func (p *Parser) parse(doc string, tracker *sectionTracker, grammars []grammar) []domain.Match {
	ref := p.now()
	matches := make([]domain.Match, 0)

	for _, raw := range strings.Split(doc, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		tracker.Observe(line)

		for _, g := range grammars {
			res, ok := g.parse(line, tracker.Context(), ref)
			if !ok {
				continue
			}
			if res.unknownToken != "" {
				p.metrics.RecordUnknownStatusToken()
				if p.logger != nil {
					p.logger.Debug("unrecognized status token, using fallback status",
						slog.String(logging.FieldToken, res.unknownToken))
				}
			}
			res.match.ID = fmt.Sprintf("%s-%d-%d", p.sourceTag, ref.Unix(), len(matches))
			matches = append(matches, res.match)
			break
		}
	}
	return matches
}
