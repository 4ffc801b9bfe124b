package sportsdb

const providerName = "thesportsdb"

type eventsResponse struct {
	Events []eventResponse `json:"events"`
}

// eventResponse mirrors TheSportsDB's event shape. Scores arrive as
// strings with an empty-string sentinel for "no score yet".
type eventResponse struct {
	ID          string  `json:"idEvent"`
	LeagueID    string  `json:"idLeague"`
	League      string  `json:"strLeague"`
	LeagueBadge string  `json:"strLeagueBadge"`
	Country     string  `json:"strCountry"`
	HomeTeamID  string  `json:"idHomeTeam"`
	AwayTeamID  string  `json:"idAwayTeam"`
	HomeTeam    string  `json:"strHomeTeam"`
	AwayTeam    string  `json:"strAwayTeam"`
	HomeBadge   string  `json:"strHomeTeamBadge"`
	AwayBadge   string  `json:"strAwayTeamBadge"`
	HomeScore   *string `json:"intHomeScore"`
	AwayScore   *string `json:"intAwayScore"`
	Status      string  `json:"strStatus"`
	Progress    string  `json:"strProgress"`
	Timestamp   string  `json:"strTimestamp"`
	Date        string  `json:"dateEvent"`
	Time        string  `json:"strTime"`

	Venue           string  `json:"strVenue"`
	Referee         string  `json:"strReferee"`
	Spectators      *string `json:"intSpectators"`
	HomeGoalDetails string  `json:"strHomeGoalDetails"`
	AwayGoalDetails string  `json:"strAwayGoalDetails"`
	HomeYellowCards string  `json:"strHomeYellowCards"`
	AwayYellowCards string  `json:"strAwayYellowCards"`
	HomeRedCards    string  `json:"strHomeRedCards"`
	AwayRedCards    string  `json:"strAwayRedCards"`
}

type leaguesResponse struct {
	Leagues []leagueResponse `json:"leagues"`
}

type leagueResponse struct {
	ID      string `json:"idLeague"`
	Name    string `json:"strLeague"`
	Sport   string `json:"strSport"`
	Country string `json:"strCountry"`
}

type tableResponse struct {
	Table []tableRowResponse `json:"table"`
}

type tableRowResponse struct {
	Rank         int    `json:"intRank,string"`
	TeamID       string `json:"idTeam"`
	Team         string `json:"strTeam"`
	TeamBadge    string `json:"strTeamBadge"`
	Played       int    `json:"intPlayed,string"`
	Win          int    `json:"intWin,string"`
	Draw         int    `json:"intDraw,string"`
	Loss         int    `json:"intLoss,string"`
	GoalsFor     int    `json:"intGoalsFor,string"`
	GoalsAgainst int    `json:"intGoalsAgainst,string"`
	GoalDiff     int    `json:"intGoalDifference,string"`
	Points       int    `json:"intPoints,string"`
	Form         string `json:"strForm"`
}
