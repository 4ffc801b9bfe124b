package sportsdb

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"livescore-service/internal/domain"
	"livescore-service/internal/markdown"
)

// ErrNotFound marks a lookup for an event id the upstream does not know.
var ErrNotFound = errors.New("thesportsdb: not found")

func mapEvent(e eventResponse) domain.Match {
	status, minute := classifyEvent(e)

	m := domain.Match{
		ID:         e.ID,
		HomeTeam:   mapTeam(e.HomeTeamID, e.HomeTeam, e.HomeBadge),
		AwayTeam:   mapTeam(e.AwayTeamID, e.AwayTeam, e.AwayBadge),
		Status:     status,
		Minute:     minute,
		StartTime:  startTime(e),
		LeagueID:   leagueID(e),
		LeagueName: e.League,
		Country:    e.Country,
	}
	if status != domain.StatusScheduled {
		m.HomeScore = parseScore(e.HomeScore)
		m.AwayScore = parseScore(e.AwayScore)
	}
	return m
}

// classifyEvent runs the shared status classifier over strStatus with
// strProgress as the fallback token, then fills the minute from the
// progress text when the classifier could not.
func classifyEvent(e eventResponse) (domain.MatchStatus, *int) {
	token := e.Status
	if strings.TrimSpace(token) == "" {
		token = e.Progress
	}
	status, minute, _ := markdown.Classify(token)
	if minute == nil && status.InPlay() {
		if m := markdown.ExtractMinute(e.Progress); m != nil {
			minute = m
		} else {
			minute = markdown.ExtractMinute(e.Status)
		}
	}
	return status, minute
}

func mapTeam(id, name, badge string) domain.Team {
	t := domain.NewTeam(name)
	if id != "" {
		t.ID = id
	}
	if badge != "" {
		t.Logo = badge
	}
	return t
}

func mapEventLeague(e eventResponse, id string) domain.League {
	logo := e.LeagueBadge
	if logo == "" {
		logo = domain.PlaceholderLogo(e.League)
	}
	return domain.League{
		ID:          id,
		Name:        e.League,
		Country:     e.Country,
		CountryFlag: domain.CountryFlag(e.Country),
		Logo:        logo,
		Matches:     []domain.Match{},
	}
}

func mapLeague(l leagueResponse) domain.League {
	return domain.League{
		ID:          l.ID,
		Name:        l.Name,
		Country:     l.Country,
		CountryFlag: domain.CountryFlag(l.Country),
		Logo:        domain.PlaceholderLogo(l.Name),
		Matches:     []domain.Match{},
	}
}

func mapDetail(e eventResponse) domain.MatchDetail {
	m := mapEvent(e)
	d := domain.MatchDetail{
		Match:      m,
		Venue:      e.Venue,
		Referee:    e.Referee,
		Attendance: parseScore(e.Spectators),
		Events:     parseTimeline(e),
		League: domain.LeagueRef{
			ID:   m.LeagueID,
			Name: e.League,
			Logo: leagueLogo(e),
		},
	}
	return d
}

// parseTimeline assembles a minute-ordered event list from the
// semicolon-separated goal and card detail strings.
func parseTimeline(e eventResponse) []domain.MatchEvent {
	events := make([]domain.MatchEvent, 0)
	events = appendEvents(events, e.HomeGoalDetails, domain.EventGoal, e.HomeTeam)
	events = appendEvents(events, e.AwayGoalDetails, domain.EventGoal, e.AwayTeam)
	events = appendEvents(events, e.HomeYellowCards, domain.EventYellowCard, e.HomeTeam)
	events = appendEvents(events, e.AwayYellowCards, domain.EventYellowCard, e.AwayTeam)
	events = appendEvents(events, e.HomeRedCards, domain.EventRedCard, e.HomeTeam)
	events = appendEvents(events, e.AwayRedCards, domain.EventRedCard, e.AwayTeam)

	sort.SliceStable(events, func(i, j int) bool {
		return minuteOrder(events[i].Minute) < minuteOrder(events[j].Minute)
	})
	for i := range events {
		events[i].ID = fmt.Sprintf("ev-%d", i+1)
	}
	return events
}

// appendEvents parses one detail string. Entries look like
// "23':Saka;67':Martinelli" but older data may omit the minute.
func appendEvents(events []domain.MatchEvent, raw string, kind domain.EventType, team string) []domain.MatchEvent {
	for _, entry := range strings.Split(raw, ";") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		minute, player := splitEntry(entry)
		events = append(events, domain.MatchEvent{
			Type:       kind,
			Minute:     minute,
			Team:       team,
			PlayerName: player,
		})
	}
	return events
}

func splitEntry(entry string) (*int, string) {
	if idx := strings.Index(entry, ":"); idx >= 0 {
		minute := markdown.ExtractMinute(entry[:idx])
		return minute, strings.TrimSpace(entry[idx+1:])
	}
	return markdown.ExtractMinute(entry), strings.TrimSpace(stripMinute(entry))
}

// stripMinute removes a leading "NN'" marker when the entry has no
// colon separator.
func stripMinute(entry string) string {
	i := 0
	for i < len(entry) && entry[i] >= '0' && entry[i] <= '9' {
		i++
	}
	if i > 0 && i < len(entry) && entry[i] == '\'' {
		i++
	}
	return entry[i:]
}

func minuteOrder(m *int) int {
	if m == nil {
		return 1 << 30
	}
	return *m
}

func mapStandingsRow(r tableRowResponse) domain.StandingsRow {
	team := domain.NewTeam(r.Team)
	if r.TeamID != "" {
		team.ID = r.TeamID
	}
	if r.TeamBadge != "" {
		team.Logo = r.TeamBadge
	}
	return domain.StandingsRow{
		Position:       r.Rank,
		Team:           team,
		Played:         r.Played,
		Won:            r.Win,
		Drawn:          r.Draw,
		Lost:           r.Loss,
		GoalsFor:       r.GoalsFor,
		GoalsAgainst:   r.GoalsAgainst,
		GoalDifference: r.GoalDiff,
		Points:         r.Points,
		Form:           r.Form,
	}
}

// parseScore converts the upstream string score to a nullable int. The
// empty string is the upstream's "no value" sentinel and maps to nil,
// never to zero.
func parseScore(raw *string) *int {
	if raw == nil {
		return nil
	}
	s := strings.TrimSpace(*raw)
	if s == "" {
		return nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return nil
	}
	return &v
}

func startTime(e eventResponse) string {
	if e.Timestamp != "" {
		return e.Timestamp
	}
	if e.Date != "" {
		if e.Time != "" {
			return e.Date + "T" + e.Time
		}
		return e.Date + "T00:00:00"
	}
	return ""
}

func leagueID(e eventResponse) string {
	if e.LeagueID != "" {
		return e.LeagueID
	}
	return domain.Slug(e.League)
}

func leagueLogo(e eventResponse) string {
	if e.LeagueBadge != "" {
		return e.LeagueBadge
	}
	return domain.PlaceholderLogo(e.League)
}
