package server

import (
	"log/slog"
	"time"

	"livescore-service/internal/config"
	"livescore-service/internal/firecrawl"
	"livescore-service/internal/metrics"
	"livescore-service/internal/providers"
	"livescore-service/internal/providers/fixture"
	"livescore-service/internal/providers/flashscore"
	"livescore-service/internal/providers/sofascore"
	"livescore-service/internal/providers/sportsdb"
)

const (
	adapterFixture    = "fixture"
	adapterFlashscore = "flashscore"
	adapterSofascore  = "sofascore"
	adapterSportsDB   = "thesportsdb"

	adapterRetries       = 2
	adapterRetryInterval = 200 * time.Millisecond
)

// adapterFactory assembles the configured adapter chain. Each adapter
// is wrapped in retry then guard decorators; the resulting order is the
// merge priority order.
type adapterFactory struct {
	logger   *slog.Logger
	recorder *metrics.Recorder
}

func newAdapterFactory(logger *slog.Logger, recorder *metrics.Recorder) *adapterFactory {
	return &adapterFactory{logger: logger, recorder: recorder}
}

// build returns the guarded adapters in cfg.Adapters order, plus the
// sportsdb client when configured (it doubles as the lookup directory).
// Unknown adapter names are logged and skipped.
func (f *adapterFactory) build(cfg config.Config) ([]*providers.Guarded, *sportsdb.Client) {
	var scraper *firecrawl.Client
	var directory *sportsdb.Client
	guarded := make([]*providers.Guarded, 0, len(cfg.Adapters))

	for _, name := range cfg.Adapters {
		var inner providers.Provider
		switch name {
		case adapterFixture:
			inner = fixture.New()
		case adapterFlashscore:
			inner = flashscore.New(f.scraper(&scraper, cfg), f.logger, f.recorder)
		case adapterSofascore:
			inner = sofascore.New(f.scraper(&scraper, cfg), f.logger, f.recorder)
		case adapterSportsDB:
			client := f.sportsDB(cfg)
			directory = client
			inner = client
		default:
			if f.logger != nil {
				f.logger.Warn("unknown adapter, skipping", "adapter", name)
			}
			continue
		}
		retried := providers.NewRetryingProvider(inner, f.logger, f.recorder, adapterRetries, adapterRetryInterval)
		guarded = append(guarded, providers.NewGuarded(retried, f.logger))
	}

	// Detail and league-directory lookups need the sportsdb client even
	// when it is not part of the merge chain.
	if directory == nil {
		directory = f.sportsDB(cfg)
	}
	return guarded, directory
}

func (f *adapterFactory) scraper(cached **firecrawl.Client, cfg config.Config) *firecrawl.Client {
	if *cached == nil {
		*cached = firecrawl.NewClient(firecrawl.Config{
			BaseURL: cfg.Firecrawl.BaseURL,
			APIKey:  cfg.Firecrawl.APIKey,
			Timeout: time.Duration(cfg.Firecrawl.Timeout),
			WaitMS:  cfg.Firecrawl.WaitMS,
		})
	}
	return *cached
}

func (f *adapterFactory) sportsDB(cfg config.Config) *sportsdb.Client {
	return sportsdb.NewClient(sportsdb.Config{
		BaseURL: cfg.SportsDB.BaseURL,
		APIKey:  cfg.SportsDB.APIKey,
		Timeout: time.Duration(cfg.SportsDB.Timeout),
	})
}
