// Package flashscore adapts the Flashscore site via the markdown proxy.
package flashscore

import (
	"context"
	"log/slog"

	"livescore-service/internal/domain"
	"livescore-service/internal/firecrawl"
	"livescore-service/internal/markdown"
	"livescore-service/internal/metrics"
)

const (
	providerName = "flashscore"
	sourceTag    = "fs"

	liveURL  = "https://www.flashscore.com/football/"
	todayURL = "https://www.flashscore.com/"
)

// Provider scrapes Flashscore through the markdown-conversion proxy and
// feeds the result to the document parser.
type Provider struct {
	scraper *firecrawl.Client
	parser  *markdown.Parser
}

// New constructs a Flashscore provider.
func New(scraper *firecrawl.Client, logger *slog.Logger, recorder *metrics.Recorder) *Provider {
	return &Provider{
		scraper: scraper,
		parser:  markdown.NewParser(sourceTag, logger, recorder),
	}
}

func (p *Provider) Name() string {
	return providerName
}

// FetchLive scrapes the live-score page and keeps only in-play matches.
func (p *Provider) FetchLive(ctx context.Context) ([]domain.Match, error) {
	doc, err := p.scraper.Scrape(ctx, liveURL)
	if err != nil {
		return nil, err
	}
	return p.parser.ParseLive(doc), nil
}

// FetchToday scrapes the schedule page grouped by league. The scraped
// page always shows the current day; an explicit date cannot be
// requested from this upstream and is ignored.
func (p *Provider) FetchToday(ctx context.Context, date string) ([]domain.League, error) {
	_ = date
	doc, err := p.scraper.Scrape(ctx, todayURL)
	if err != nil {
		return nil, err
	}
	return p.parser.ParseToday(doc), nil
}
