package domain

import (
	"strings"
	"testing"
)

func TestNewTeamDerivesFields(t *testing.T) {
	team := NewTeam("Manchester United")
	if team.ID != "manchester-united" {
		t.Fatalf("unexpected id %s", team.ID)
	}
	if team.ShortName != "MAN" {
		t.Fatalf("unexpected short name %s", team.ShortName)
	}
	if !strings.Contains(team.Logo, "ui-avatars.com") {
		t.Fatalf("expected placeholder logo, got %s", team.Logo)
	}
}

func TestMatchKeyIsCaseInsensitive(t *testing.T) {
	a := Match{HomeTeam: NewTeam("Arsenal"), AwayTeam: NewTeam("Chelsea")}
	b := Match{HomeTeam: NewTeam("ARSENAL"), AwayTeam: NewTeam("chelsea")}
	if a.Key() != b.Key() {
		t.Fatalf("keys differ: %s vs %s", a.Key(), b.Key())
	}
	if a.Key() != "arsenal-chelsea" {
		t.Fatalf("unexpected key %s", a.Key())
	}
}

func TestLeagueKeyIsCaseInsensitive(t *testing.T) {
	if (League{Name: "La Liga"}).Key() != (League{Name: "LA LIGA"}).Key() {
		t.Fatal("league keys must be case-insensitive")
	}
}

func TestInPlay(t *testing.T) {
	cases := map[MatchStatus]bool{
		StatusLive:      true,
		StatusHalftime:  true,
		StatusScheduled: false,
		StatusFulltime:  false,
		StatusPostponed: false,
		StatusCancelled: false,
	}
	for status, want := range cases {
		if status.InPlay() != want {
			t.Fatalf("InPlay(%s) expected %v", status, want)
		}
	}
}

func TestShortCode(t *testing.T) {
	if got := ShortCode("FC"); got != "FC" {
		t.Fatalf("expected FC, got %s", got)
	}
	if got := ShortCode(""); got != "???" {
		t.Fatalf("expected ??? for empty name, got %s", got)
	}
}

func TestSlugCollapsesWhitespace(t *testing.T) {
	if got := Slug("  Real   Madrid "); got != "real-madrid" {
		t.Fatalf("unexpected slug %s", got)
	}
}

func TestCountryFlagFallsBack(t *testing.T) {
	if CountryFlag("England") == "" {
		t.Fatal("expected a flag for England")
	}
	if CountryFlag("Atlantis") == "" {
		t.Fatal("expected fallback flag for unknown country")
	}
	if CountryFlag("England") == CountryFlag("Atlantis") {
		t.Fatal("known country must not map to the fallback flag")
	}
}
