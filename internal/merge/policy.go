package merge

import (
	"strings"

	"livescore-service/internal/domain"
)

// defaultTopKeywords marks the competitions surfaced in the top section
// of the grouped views. Matching is substring, case-insensitive, so
// "English Premier League" hits the "premier league" keyword.
var defaultTopKeywords = []string{
	"premier league",
	"la liga",
	"bundesliga",
	"serie a",
	"ligue 1",
	"champions league",
	"europa league",
	"world cup",
	"euro",
	"mls",
	"liga mx",
}

// Policy decides which leagues count as top leagues.
type Policy struct {
	keywords []string
}

// NewPolicy builds a policy from keywords, falling back to the default
// competition list when none are given.
func NewPolicy(keywords ...string) Policy {
	if len(keywords) == 0 {
		keywords = defaultTopKeywords
	}
	lowered := make([]string, len(keywords))
	for i, k := range keywords {
		lowered[i] = strings.ToLower(k)
	}
	return Policy{keywords: lowered}
}

// IsTop reports whether a league name matches any top-league keyword.
func (p Policy) IsTop(name string) bool {
	lower := strings.ToLower(name)
	for _, k := range p.keywords {
		if strings.Contains(lower, k) {
			return true
		}
	}
	return false
}

// Split partitions leagues into top and other, preserving order within
// each partition and stamping IsTopLeague on the way through.
func (p Policy) Split(leagues []domain.League) (top, other []domain.League) {
	top = []domain.League{}
	other = []domain.League{}
	for _, l := range leagues {
		l.IsTopLeague = p.IsTop(l.Name)
		if l.IsTopLeague {
			top = append(top, l)
		} else {
			other = append(other, l)
		}
	}
	return top, other
}
