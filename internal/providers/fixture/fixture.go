// Package fixture is the local data source used when no real upstream
// is configured. It never fails and never reports unreachable.
package fixture

import (
	"context"
	"time"

	"livescore-service/internal/domain"
)

const providerName = "fixture"

// Provider returns a static set of matches useful for local runs and
// bootstrapping.
type Provider struct {
	now func() time.Time
}

// New creates a fixture provider with a time source.
func New() *Provider {
	return &Provider{now: time.Now}
}

// WithNow overrides the time source; used by tests.
func (p *Provider) WithNow(now func() time.Time) *Provider {
	p.now = now
	return p
}

func (p *Provider) Name() string {
	return providerName
}

// FetchLive returns a deterministic set of in-play matches.
func (p *Provider) FetchLive(ctx context.Context) ([]domain.Match, error) {
	_ = ctx
	now := p.now().UTC()
	started := now.Add(-1 * time.Hour).Format(time.RFC3339)

	return []domain.Match{
		{
			ID:         "fixture-1",
			HomeTeam:   domain.NewTeam("Arsenal"),
			AwayTeam:   domain.NewTeam("Chelsea"),
			HomeScore:  domain.IntPtr(2),
			AwayScore:  domain.IntPtr(1),
			Status:     domain.StatusLive,
			Minute:     domain.IntPtr(67),
			StartTime:  started,
			LeagueID:   "premier-league",
			LeagueName: "Premier League",
			Country:    "England",
		},
		{
			ID:         "fixture-2",
			HomeTeam:   domain.NewTeam("Barcelona"),
			AwayTeam:   domain.NewTeam("Real Madrid"),
			HomeScore:  domain.IntPtr(1),
			AwayScore:  domain.IntPtr(1),
			Status:     domain.StatusHalftime,
			Minute:     domain.IntPtr(45),
			StartTime:  started,
			LeagueID:   "la-liga",
			LeagueName: "La Liga",
			Country:    "Spain",
		},
	}, nil
}

// FetchToday returns a deterministic grouped fixture list for the
// requested date (or today when the date is empty).
func (p *Provider) FetchToday(ctx context.Context, date string) ([]domain.League, error) {
	_ = ctx
	day := p.now().UTC().Truncate(24 * time.Hour)
	if date != "" {
		if parsed, err := time.Parse("2006-01-02", date); err == nil {
			day = parsed.UTC()
		}
	}

	evening := day.Add(19 * time.Hour).Format(time.RFC3339)
	night := day.Add(21 * time.Hour).Format(time.RFC3339)

	return []domain.League{
		{
			ID:          "premier-league",
			Name:        "Premier League",
			Country:     "England",
			CountryFlag: domain.CountryFlag("England"),
			Logo:        domain.PlaceholderLogo("Premier League"),
			Matches: []domain.Match{
				{
					ID:         "fixture-today-1",
					HomeTeam:   domain.NewTeam("Liverpool"),
					AwayTeam:   domain.NewTeam("Manchester City"),
					Status:     domain.StatusScheduled,
					StartTime:  evening,
					LeagueID:   "premier-league",
					LeagueName: "Premier League",
					Country:    "England",
				},
			},
		},
		{
			ID:          "eredivisie",
			Name:        "Eredivisie",
			Country:     "Netherlands",
			CountryFlag: domain.CountryFlag("Netherlands"),
			Logo:        domain.PlaceholderLogo("Eredivisie"),
			Matches: []domain.Match{
				{
					ID:         "fixture-today-2",
					HomeTeam:   domain.NewTeam("Ajax"),
					AwayTeam:   domain.NewTeam("PSV"),
					Status:     domain.StatusScheduled,
					StartTime:  night,
					LeagueID:   "eredivisie",
					LeagueName: "Eredivisie",
					Country:    "Netherlands",
				},
			},
		},
	}, nil
}
