package domain

import (
	"fmt"
	"net/url"
	"strings"
)

// MatchStatus mirrors the shared contract for match lifecycle states.
type MatchStatus string

const (
	StatusScheduled MatchStatus = "SCHEDULED"
	StatusLive      MatchStatus = "LIVE"
	StatusHalftime  MatchStatus = "HT"
	StatusFulltime  MatchStatus = "FT"
	StatusPostponed MatchStatus = "POSTPONED"
	StatusCancelled MatchStatus = "CANCELLED"
)

// InPlay reports whether the status counts as an in-progress match for
// the live view (halftime included).
func (s MatchStatus) InPlay() bool {
	return s == StatusLive || s == StatusHalftime
}

// Team is the normalized team shape.
type Team struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	ShortName string `json:"shortName"`
	Logo      string `json:"logo"`
}

// NewTeam derives a Team from a display name: slug id, three-letter
// short code and a generated placeholder logo.
func NewTeam(name string) Team {
	name = strings.TrimSpace(name)
	return Team{
		ID:        Slug(name),
		Name:      name,
		ShortName: ShortCode(name),
		Logo:      PlaceholderLogo(name),
	}
}

// Match is the canonical match shape exposed by the service.
// Nil scores mean "unknown", never 0-0; nil minute means the clock is
// not meaningful for the current status.
type Match struct {
	ID         string      `json:"id"`
	HomeTeam   Team        `json:"homeTeam"`
	AwayTeam   Team        `json:"awayTeam"`
	HomeScore  *int        `json:"homeScore"`
	AwayScore  *int        `json:"awayScore"`
	Status     MatchStatus `json:"status"`
	Minute     *int        `json:"minute"`
	StartTime  string      `json:"startTime"`
	LeagueID   string      `json:"leagueId"`
	LeagueName string      `json:"leagueName,omitempty"`
	Country    string      `json:"country,omitempty"`
}

// Key is the cross-source identity of a match: two matches are the
// same fixture iff their lower-cased team names agree.
func (m Match) Key() string {
	return strings.ToLower(m.HomeTeam.Name) + "-" + strings.ToLower(m.AwayTeam.Name)
}

// League groups matches under one competition.
type League struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Country     string  `json:"country"`
	CountryFlag string  `json:"countryFlag"`
	Logo        string  `json:"logo"`
	Matches     []Match `json:"matches"`
	IsTopLeague bool    `json:"isTopLeague,omitempty"`
}

// Key is the cross-source identity of a league.
func (l League) Key() string {
	return strings.ToLower(l.Name)
}

// Slug lowercases a name and replaces whitespace runs with hyphens.
func Slug(name string) string {
	return strings.Join(strings.Fields(strings.ToLower(strings.TrimSpace(name))), "-")
}

// ShortCode truncates a team name to a three-letter upper-case code.
func ShortCode(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return "???"
	}
	r := []rune(name)
	if len(r) > 3 {
		r = r[:3]
	}
	return strings.ToUpper(string(r))
}

// PlaceholderLogo builds a generated avatar URL for entities without
// upstream artwork.
func PlaceholderLogo(name string) string {
	if name == "" {
		name = "?"
	}
	return fmt.Sprintf("https://ui-avatars.com/api/?name=%s&background=1a1f2e&color=22c55e&bold=true&size=64",
		url.QueryEscape(name))
}

// IntPtr returns a pointer to v; shorthand for optional score/minute fields.
func IntPtr(v int) *int {
	return &v
}
