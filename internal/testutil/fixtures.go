package testutil

import "livescore-service/internal/domain"

// SampleMatch returns a live match fixture between the named teams.
func SampleMatch(home, away string) domain.Match {
	return domain.Match{
		ID:         "test-" + domain.Slug(home) + "-" + domain.Slug(away),
		HomeTeam:   domain.NewTeam(home),
		AwayTeam:   domain.NewTeam(away),
		HomeScore:  domain.IntPtr(1),
		AwayScore:  domain.IntPtr(0),
		Status:     domain.StatusLive,
		Minute:     domain.IntPtr(30),
		LeagueID:   "test-league",
		LeagueName: "Test League",
		Country:    "World",
	}
}

// SampleLeague returns a league fixture holding the provided matches.
func SampleLeague(name string, matches ...domain.Match) domain.League {
	return domain.League{
		ID:          domain.Slug(name),
		Name:        name,
		Country:     "World",
		CountryFlag: domain.CountryFlag("World"),
		Logo:        domain.PlaceholderLogo(name),
		Matches:     matches,
	}
}
