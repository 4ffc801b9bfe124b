package domain

// LeagueRef is the compact league reference embedded in match detail.
type LeagueRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Logo string `json:"logo"`
}

// MatchStats holds side-by-side match statistics. Upstream passthrough,
// present only when the data source supplies it.
type MatchStats struct {
	Possession    HomeAway `json:"possession"`
	Shots         HomeAway `json:"shots"`
	ShotsOnTarget HomeAway `json:"shotsOnTarget"`
	Corners       HomeAway `json:"corners"`
	Fouls         HomeAway `json:"fouls"`
	YellowCards   HomeAway `json:"yellowCards"`
	RedCards      HomeAway `json:"redCards"`
}

// HomeAway is a pair of integer stats.
type HomeAway struct {
	Home int `json:"home"`
	Away int `json:"away"`
}

// EventType labels a timeline entry.
type EventType string

const (
	EventGoal       EventType = "goal"
	EventYellowCard EventType = "yellow_card"
	EventRedCard    EventType = "red_card"
)

// MatchEvent is one timeline entry (goal, card) in a match detail view.
type MatchEvent struct {
	ID         string    `json:"id"`
	Type       EventType `json:"type"`
	Minute     *int      `json:"minute"`
	Team       string    `json:"team"`
	PlayerName string    `json:"playerName"`
}

// MatchDetail extends Match with venue and timeline data passed through
// from the sports database upstream.
type MatchDetail struct {
	Match
	Venue      string       `json:"venue"`
	Referee    string       `json:"referee"`
	Attendance *int         `json:"attendance"`
	Stats      *MatchStats  `json:"stats"`
	Events     []MatchEvent `json:"events"`
	League     LeagueRef    `json:"league"`
}

// StandingsRow is one table row in a league standings view.
type StandingsRow struct {
	Position       int    `json:"position"`
	Team           Team   `json:"team"`
	Played         int    `json:"played"`
	Won            int    `json:"won"`
	Drawn          int    `json:"drawn"`
	Lost           int    `json:"lost"`
	GoalsFor       int    `json:"goalsFor"`
	GoalsAgainst   int    `json:"goalsAgainst"`
	GoalDifference int    `json:"goalDifference"`
	Points         int    `json:"points"`
	Form           string `json:"form"`
}
