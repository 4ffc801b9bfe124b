// Package sofascore adapts the SofaScore site via the markdown proxy.
package sofascore

import (
	"context"
	"log/slog"

	"livescore-service/internal/domain"
	"livescore-service/internal/firecrawl"
	"livescore-service/internal/markdown"
	"livescore-service/internal/metrics"
)

const (
	providerName = "sofascore"
	sourceTag    = "ss"

	footballURL = "https://www.sofascore.com/football"
)

// Provider scrapes SofaScore through the markdown-conversion proxy.
type Provider struct {
	scraper *firecrawl.Client
	parser  *markdown.Parser
}

// New constructs a SofaScore provider.
func New(scraper *firecrawl.Client, logger *slog.Logger, recorder *metrics.Recorder) *Provider {
	return &Provider{
		scraper: scraper,
		parser:  markdown.NewParser(sourceTag, logger, recorder),
	}
}

func (p *Provider) Name() string {
	return providerName
}

// FetchLive scrapes the football page and keeps only in-play matches.
func (p *Provider) FetchLive(ctx context.Context) ([]domain.Match, error) {
	doc, err := p.scraper.Scrape(ctx, footballURL)
	if err != nil {
		return nil, err
	}
	return p.parser.ParseLive(doc), nil
}

// FetchToday scrapes the same page grouped by league; SofaScore mixes
// live and scheduled fixtures in one listing. The date is ignored for
// the same reason as Flashscore: the page always shows today.
func (p *Provider) FetchToday(ctx context.Context, date string) ([]domain.League, error) {
	_ = date
	doc, err := p.scraper.Scrape(ctx, footballURL)
	if err != nil {
		return nil, err
	}
	return p.parser.ParseToday(doc), nil
}
