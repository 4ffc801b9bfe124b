package domain

// LiveResponse is the payload returned by /api/live.
type LiveResponse struct {
	Matches   []Match `json:"matches"`
	Count     int     `json:"count"`
	Timestamp string  `json:"timestamp"`
	Source    string  `json:"source"`
	Online    bool    `json:"online"`
	Cached    bool    `json:"cached,omitempty"`
}

// GroupedResponse is the payload returned by /api/today and /api/leagues.
type GroupedResponse struct {
	TopLeagues   []League `json:"topLeagues"`
	OtherLeagues []League `json:"otherLeagues"`
	Count        int      `json:"count"`
	Date         string   `json:"date,omitempty"`
	Timestamp    string   `json:"timestamp"`
	Source       string   `json:"source"`
	Online       bool     `json:"online"`
	Cached       bool     `json:"cached,omitempty"`
}

// MatchCount sums matches across both partitions.
func (g GroupedResponse) MatchCount() int {
	total := 0
	for _, l := range g.TopLeagues {
		total += len(l.Matches)
	}
	for _, l := range g.OtherLeagues {
		total += len(l.Matches)
	}
	return total
}

// DetailResponse wraps a match detail lookup.
type DetailResponse struct {
	Match     MatchDetail `json:"match"`
	Timestamp string      `json:"timestamp"`
}

// StandingsResponse wraps a league table lookup.
type StandingsResponse struct {
	LeagueID  string         `json:"leagueId"`
	Season    string         `json:"season,omitempty"`
	Standings []StandingsRow `json:"standings"`
	Timestamp string         `json:"timestamp"`
}
