package markdown

import (
	"testing"
	"time"

	"livescore-service/internal/domain"
	"livescore-service/internal/testutil"
)

var testRef = testutil.MustParseRFC3339("2025-03-08T18:00:00Z")

func TestScoreGrammarParsesLiveLine(t *testing.T) {
	ctx := Context{League: "Premier League", Country: "England"}
	res, ok := scoreGrammar{}.parse("Arsenal 2-1 Chelsea 67'", ctx, testRef)
	if !ok {
		t.Fatal("expected line to parse")
	}

	m := res.match
	if m.HomeTeam.Name != "Arsenal" || m.AwayTeam.Name != "Chelsea" {
		t.Fatalf("unexpected teams %s vs %s", m.HomeTeam.Name, m.AwayTeam.Name)
	}
	if m.HomeScore == nil || *m.HomeScore != 2 || m.AwayScore == nil || *m.AwayScore != 1 {
		t.Fatalf("unexpected scores %v %v", m.HomeScore, m.AwayScore)
	}
	if m.Status != domain.StatusLive || m.Minute == nil || *m.Minute != 67 {
		t.Fatalf("unexpected status %s minute %v", m.Status, m.Minute)
	}
	if m.LeagueName != "Premier League" || m.Country != "England" {
		t.Fatalf("unexpected context %s/%s", m.Country, m.LeagueName)
	}
}

func TestScoreGrammarNoTokenImpliesLive(t *testing.T) {
	res, ok := scoreGrammar{}.parse("Lyon 0-0 Marseille", Context{}, testRef)
	if !ok {
		t.Fatal("expected line to parse")
	}
	if res.match.Status != domain.StatusLive {
		t.Fatalf("expected LIVE for token-less score line, got %s", res.match.Status)
	}
	if res.match.Minute != nil {
		t.Fatalf("expected nil minute, got %d", *res.match.Minute)
	}
	if res.match.HomeScore == nil || *res.match.HomeScore != 0 {
		t.Fatalf("expected 0-0 scores kept, got %v", res.match.HomeScore)
	}
}

func TestScoreGrammarScheduledDropsScores(t *testing.T) {
	res, ok := scoreGrammar{}.parse("Porto 0-0 Benfica NS", Context{}, testRef)
	if !ok {
		t.Fatal("expected line to parse")
	}
	if res.match.Status != domain.StatusScheduled {
		t.Fatalf("expected SCHEDULED, got %s", res.match.Status)
	}
	if res.match.HomeScore != nil || res.match.AwayScore != nil {
		t.Fatal("scheduled matches must carry nil scores")
	}
}

func TestScoreGrammarNotStartedPhrase(t *testing.T) {
	res, ok := scoreGrammar{}.parse("Porto 0-0 Benfica Not Started", Context{}, testRef)
	if !ok {
		t.Fatal("expected line to parse")
	}
	if res.match.AwayTeam.Name != "Benfica" {
		t.Fatalf("token must not leak into the away name, got %q", res.match.AwayTeam.Name)
	}
	if res.match.Status != domain.StatusScheduled {
		t.Fatalf("expected SCHEDULED, got %s", res.match.Status)
	}
	if res.match.HomeScore != nil || res.match.AwayScore != nil {
		t.Fatal("scheduled matches must carry nil scores")
	}
}

func TestScoreGrammarMatchFinishedPhrase(t *testing.T) {
	res, ok := scoreGrammar{}.parse("Lyon 3-0 Metz Match Finished", Context{}, testRef)
	if !ok {
		t.Fatal("expected line to parse")
	}
	if res.match.AwayTeam.Name != "Metz" {
		t.Fatalf("token must not leak into the away name, got %q", res.match.AwayTeam.Name)
	}
	if res.match.Status != domain.StatusFulltime {
		t.Fatalf("expected FT, got %s", res.match.Status)
	}
	if res.match.HomeScore == nil || *res.match.HomeScore != 3 {
		t.Fatalf("finished matches keep scores, got %v", res.match.HomeScore)
	}
}

func TestScoreGrammarHalfMarkers(t *testing.T) {
	for _, token := range []string{"1H", "2H"} {
		res, ok := scoreGrammar{}.parse("Arsenal 2-1 Chelsea "+token, Context{}, testRef)
		if !ok {
			t.Fatalf("%s line must parse, not be dropped", token)
		}
		if res.unknownToken != "" {
			t.Fatalf("%s should be recognized, got token %q", token, res.unknownToken)
		}
		if res.match.Status != domain.StatusLive {
			t.Fatalf("%s: expected LIVE, got %s", token, res.match.Status)
		}
		if res.match.Minute != nil {
			t.Fatalf("%s carries no minute, got %d", token, *res.match.Minute)
		}
	}
}

func TestScoreGrammarBareMinuteToken(t *testing.T) {
	res, ok := scoreGrammar{}.parse("Inter 1-0 Roma 78", Context{}, testRef)
	if !ok {
		t.Fatal("expected line to parse")
	}
	if res.match.Status != domain.StatusLive || res.match.Minute == nil || *res.match.Minute != 78 {
		t.Fatalf("expected LIVE at 78, got %s minute %v", res.match.Status, res.match.Minute)
	}
}

func TestScoreGrammarRecognizesHalftimeLabel(t *testing.T) {
	res, ok := scoreGrammar{}.parse("Ajax 1-0 PSV HALFTIME", Context{}, testRef)
	if !ok || res.unknownToken != "" {
		t.Fatalf("HALFTIME should be recognized, got token %q", res.unknownToken)
	}
	if res.match.Status != domain.StatusHalftime {
		t.Fatalf("expected HT, got %s", res.match.Status)
	}
}

func TestScoreGrammarRejectsShortNames(t *testing.T) {
	if _, ok := (scoreGrammar{}).parse("A 2-1 Chelsea", Context{}, testRef); ok {
		t.Fatal("single-letter home name should not parse")
	}
}

func TestFixtureTimeGrammarParsesScheduled(t *testing.T) {
	ctx := Context{League: "Serie A", Country: "Italy"}
	res, ok := fixtureTimeGrammar{}.parse("19:45 AC Milan vs Napoli", ctx, testRef)
	if !ok {
		t.Fatal("expected fixture line to parse")
	}

	m := res.match
	if m.Status != domain.StatusScheduled {
		t.Fatalf("expected SCHEDULED, got %s", m.Status)
	}
	if m.HomeScore != nil || m.AwayScore != nil {
		t.Fatal("fixtures must carry nil scores")
	}
	if m.HomeTeam.Name != "AC Milan" || m.AwayTeam.Name != "Napoli" {
		t.Fatalf("unexpected teams %s vs %s", m.HomeTeam.Name, m.AwayTeam.Name)
	}

	start, err := time.Parse(time.RFC3339, m.StartTime)
	if err != nil {
		t.Fatalf("start time not RFC3339: %v", err)
	}
	if start.Hour() != 19 || start.Minute() != 45 {
		t.Fatalf("expected 19:45 start, got %s", m.StartTime)
	}
}

func TestFixtureTimeGrammarRejectsBadClock(t *testing.T) {
	if _, ok := (fixtureTimeGrammar{}).parse("29:45 AC Milan vs Napoli", Context{}, testRef); ok {
		t.Fatal("hour 29 should not parse")
	}
}

func TestBuildMatchDefaultsContext(t *testing.T) {
	m := buildMatch("Home Side", "Away Side", Context{}, testRef)
	if m.LeagueName != "Unknown League" {
		t.Fatalf("expected default league, got %s", m.LeagueName)
	}
	if m.Country != "World" {
		t.Fatalf("expected default country, got %s", m.Country)
	}
}
