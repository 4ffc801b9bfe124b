package sportsdb

import (
	"testing"

	"livescore-service/internal/domain"
)

func strPtr(s string) *string { return &s }

func liveEvent() eventResponse {
	return eventResponse{
		ID:         "1032723",
		LeagueID:   "4328",
		League:     "English Premier League",
		Country:    "England",
		HomeTeamID: "133604",
		AwayTeamID: "133610",
		HomeTeam:   "Arsenal",
		AwayTeam:   "Chelsea",
		HomeBadge:  "https://img/arsenal.png",
		AwayBadge:  "https://img/chelsea.png",
		HomeScore:  strPtr("2"),
		AwayScore:  strPtr("1"),
		Status:     "1H",
		Progress:   "34",
		Timestamp:  "2025-03-08T15:00:00+00:00",
	}
}

func TestMapEventLive(t *testing.T) {
	m := mapEvent(liveEvent())

	if m.ID != "1032723" {
		t.Fatalf("unexpected id %s", m.ID)
	}
	if m.Status != domain.StatusLive {
		t.Fatalf("expected LIVE for in-play token, got %s", m.Status)
	}
	if m.Minute == nil || *m.Minute != 34 {
		t.Fatalf("expected minute 34 from progress, got %v", m.Minute)
	}
	if m.HomeScore == nil || *m.HomeScore != 2 || m.AwayScore == nil || *m.AwayScore != 1 {
		t.Fatalf("unexpected scores %v %v", m.HomeScore, m.AwayScore)
	}
	if m.HomeTeam.ID != "133604" || m.HomeTeam.Logo != "https://img/arsenal.png" {
		t.Fatalf("upstream team id/badge must win: %+v", m.HomeTeam)
	}
	if m.StartTime != "2025-03-08T15:00:00+00:00" {
		t.Fatalf("unexpected start time %s", m.StartTime)
	}
}

func TestMapEventEmptyScoreSentinel(t *testing.T) {
	e := liveEvent()
	e.Status = "NS"
	e.Progress = ""
	e.HomeScore = strPtr("")
	e.AwayScore = strPtr("")

	m := mapEvent(e)
	if m.Status != domain.StatusScheduled {
		t.Fatalf("expected SCHEDULED, got %s", m.Status)
	}
	if m.HomeScore != nil || m.AwayScore != nil {
		t.Fatal("empty-string scores must map to nil, never zero")
	}
}

func TestMapEventFinished(t *testing.T) {
	e := liveEvent()
	e.Status = "Match Finished"
	e.Progress = ""

	m := mapEvent(e)
	if m.Status != domain.StatusFulltime {
		t.Fatalf("expected FT, got %s", m.Status)
	}
	if m.Minute != nil {
		t.Fatalf("finished match must carry nil minute, got %d", *m.Minute)
	}
	if m.HomeScore == nil || *m.HomeScore != 2 {
		t.Fatal("finished match must keep its score")
	}
}

func TestMapEventHalftime(t *testing.T) {
	e := liveEvent()
	e.Status = "HT"
	e.Progress = ""

	m := mapEvent(e)
	if m.Status != domain.StatusHalftime {
		t.Fatalf("expected HT, got %s", m.Status)
	}
	if m.Minute == nil || *m.Minute != 45 {
		t.Fatalf("expected minute 45, got %v", m.Minute)
	}
}

func TestMapEventStartTimeFallbacks(t *testing.T) {
	e := liveEvent()
	e.Timestamp = ""
	e.Date = "2025-03-08"
	e.Time = "15:00:00"
	if got := mapEvent(e).StartTime; got != "2025-03-08T15:00:00" {
		t.Fatalf("unexpected start time %s", got)
	}

	e.Time = ""
	if got := mapEvent(e).StartTime; got != "2025-03-08T00:00:00" {
		t.Fatalf("unexpected date-only start time %s", got)
	}
}

func TestMapDetailBuildsTimeline(t *testing.T) {
	e := liveEvent()
	e.Venue = "Emirates Stadium"
	e.Referee = "M Oliver"
	e.Spectators = strPtr("60233")
	e.HomeGoalDetails = "23':Saka;67':Martinelli"
	e.AwayGoalDetails = "41':Palmer"
	e.HomeYellowCards = "55':Rice"
	e.AwayRedCards = "78':James"

	d := mapDetail(e)
	if d.Venue != "Emirates Stadium" || d.Referee != "M Oliver" {
		t.Fatalf("unexpected venue/referee %+v", d)
	}
	if d.Attendance == nil || *d.Attendance != 60233 {
		t.Fatalf("unexpected attendance %v", d.Attendance)
	}
	if len(d.Events) != 5 {
		t.Fatalf("expected 5 timeline events, got %d", len(d.Events))
	}

	// Minute-ordered regardless of which side produced the event.
	wantMinutes := []int{23, 41, 55, 67, 78}
	for i, ev := range d.Events {
		if ev.Minute == nil || *ev.Minute != wantMinutes[i] {
			t.Fatalf("event %d out of order: %+v", i, ev)
		}
	}
	if d.Events[0].Type != domain.EventGoal || d.Events[0].PlayerName != "Saka" || d.Events[0].Team != "Arsenal" {
		t.Fatalf("unexpected first event %+v", d.Events[0])
	}
	if d.Events[4].Type != domain.EventRedCard || d.Events[4].Team != "Chelsea" {
		t.Fatalf("unexpected last event %+v", d.Events[4])
	}
	if d.League.ID != "4328" || d.League.Name != "English Premier League" {
		t.Fatalf("unexpected league ref %+v", d.League)
	}
}

func TestMapStandingsRow(t *testing.T) {
	row := mapStandingsRow(tableRowResponse{
		Rank:         1,
		TeamID:       "133604",
		Team:         "Arsenal",
		TeamBadge:    "https://img/arsenal.png",
		Played:       28,
		Win:          20,
		Draw:         5,
		Loss:         3,
		GoalsFor:     62,
		GoalsAgainst: 24,
		GoalDiff:     38,
		Points:       65,
		Form:         "WWDWL",
	})

	if row.Position != 1 || row.Points != 65 || row.GoalDifference != 38 {
		t.Fatalf("unexpected row %+v", row)
	}
	if row.Team.ID != "133604" || row.Team.Logo != "https://img/arsenal.png" {
		t.Fatalf("unexpected team %+v", row.Team)
	}
}

func TestParseScore(t *testing.T) {
	if parseScore(nil) != nil {
		t.Fatal("nil input must map to nil")
	}
	if parseScore(strPtr("")) != nil {
		t.Fatal("empty string must map to nil")
	}
	if v := parseScore(strPtr("3")); v == nil || *v != 3 {
		t.Fatalf("unexpected parse %v", v)
	}
	if parseScore(strPtr("n/a")) != nil {
		t.Fatal("non-numeric score must map to nil")
	}
}
