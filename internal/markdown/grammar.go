package markdown

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"livescore-service/internal/domain"
	"livescore-service/internal/timeutil"
)

// Context is the (country, league) pair in scope while scanning a
// document, set by the most recent section header.
type Context struct {
	League  string
	Country string
}

// lineResult is one candidate match extracted from a line.
// UnknownToken carries the raw status token when the classifier fell
// back to its default, so the document parser can report it.
type lineResult struct {
	match        domain.Match
	unknownToken string
}

// grammar extracts zero or one candidate match from a trimmed line.
// Grammars are pure functions of (line, context, reference time) and
// are tried in order until one matches; the chain stays open for new
// upstream formats without touching existing matchers.
type grammar interface {
	parse(line string, ctx Context, ref time.Time) (lineResult, bool)
}

var (
	liveGrammars  = []grammar{scoreGrammar{}}
	todayGrammars = []grammar{scoreGrammar{}, fixtureTimeGrammar{}}
)

// minNameLen guards against false positives from stray punctuation lines.
const minNameLen = 2

// scoreGrammar matches "<home> <int> -|–|: <int> <away> [<token>]".
// Team names are runs of letters/spaces/periods/apostrophes/ampersands.
// The trailing-token alternation must cover the classifier's full
// vocabulary, multi-word spellings included; anything it misses gets
// swallowed by the away-name group and the line comes out as a
// token-less score, which implies LIVE.
type scoreGrammar struct{}

var scorePattern = regexp.MustCompile(
	`^(?i)([A-Za-z][A-Za-z\s.'&]*?)\s+(\d+)\s*[-–:]\s*(\d+)\s+([A-Za-z][A-Za-z\s.'&]*?)(?:\s+(\d+'|\d+|1H|2H|HT|FT|LIVE|NS|NOT\s+STARTED|MATCH\s+FINISHED|FINISHED|PST|AET|PEN|POSTPONED|CANCELLED|CANC|HALFTIME))?$`)

func (scoreGrammar) parse(line string, ctx Context, ref time.Time) (lineResult, bool) {
	m := scorePattern.FindStringSubmatch(line)
	if m == nil {
		return lineResult{}, false
	}

	home := strings.TrimSpace(m[1])
	away := strings.TrimSpace(m[4])
	if len(home) < minNameLen || len(away) < minNameLen {
		return lineResult{}, false
	}

	homeScore, _ := strconv.Atoi(m[2])
	awayScore, _ := strconv.Atoi(m[3])
	token := m[5]

	var res lineResult
	var status domain.MatchStatus
	var minute *int
	if token == "" {
		// A captured score with no explicit terminal marker implies an
		// in-progress or just-started match, never SCHEDULED.
		status, minute = domain.StatusLive, nil
	} else {
		var recognized bool
		status, minute, recognized = Classify(token)
		if !recognized {
			res.unknownToken = token
		}
	}

	match := buildMatch(home, away, ctx, ref)
	match.Status = status
	match.Minute = minute
	if status != domain.StatusScheduled {
		match.HomeScore = domain.IntPtr(homeScore)
		match.AwayScore = domain.IntPtr(awayScore)
	}
	res.match = match
	return res, true
}

// fixtureTimeGrammar matches "<HH:MM> <home> vs|-|– <away>" for
// not-yet-started fixtures in the today view.
type fixtureTimeGrammar struct{}

var fixturePattern = regexp.MustCompile(
	`^(?i)(\d{1,2}):(\d{2})\s+([A-Za-z][A-Za-z\s.'&]*?)\s+(?:vs?\.?|-|–)\s+([A-Za-z][A-Za-z\s.'&]*?)$`)

func (fixtureTimeGrammar) parse(line string, ctx Context, ref time.Time) (lineResult, bool) {
	m := fixturePattern.FindStringSubmatch(line)
	if m == nil {
		return lineResult{}, false
	}

	hour, _ := strconv.Atoi(m[1])
	minute, _ := strconv.Atoi(m[2])
	if hour > 23 || minute > 59 {
		return lineResult{}, false
	}

	home := strings.TrimSpace(m[3])
	away := strings.TrimSpace(m[4])
	if len(home) < minNameLen || len(away) < minNameLen {
		return lineResult{}, false
	}

	match := buildMatch(home, away, ctx, ref)
	match.Status = domain.StatusScheduled
	match.StartTime = timeutil.AtClock(ref, hour, minute).Format(time.RFC3339)
	return lineResult{match: match}, true
}

func buildMatch(home, away string, ctx Context, ref time.Time) domain.Match {
	league := ctx.League
	if league == "" {
		league = "Unknown League"
	}
	country := ctx.Country
	if country == "" {
		country = "World"
	}
	return domain.Match{
		HomeTeam:   domain.NewTeam(home),
		AwayTeam:   domain.NewTeam(away),
		StartTime:  ref.Format(time.RFC3339),
		LeagueID:   domain.Slug(league),
		LeagueName: league,
		Country:    country,
	}
}
