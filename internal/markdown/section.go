package markdown

import (
	"regexp"
	"strings"
	"unicode"
)

// maxCountryPrefixLen bounds how long a header prefix may be before it
// stops looking like a country name and the whole header is treated as
// a league name instead.
const maxCountryPrefixLen = 20

var (
	headerStrip     = strings.NewReplacer("#", "", "*", "", "[", "", "]", "")
	headerSeparator = regexp.MustCompile(`[-–:]`)
)

// sectionTracker scans a document line by line and keeps the
// (country, league) context established by the most recent header-like
// line. One tracker instance serves exactly one document parse.
type sectionTracker struct {
	// strict requires header text longer than two characters, which
	// filters the bullet noise seen on fixture-listing pages.
	strict  bool
	league  string
	country string
}

func newSectionTracker(strict bool) *sectionTracker {
	return &sectionTracker{strict: strict}
}

// Observe inspects one line and updates the context when the line is a
// markdown heading or bold-emphasis header.
func (t *sectionTracker) Observe(line string) {
	line = strings.TrimSpace(line)
	if !strings.HasPrefix(line, "#") && !strings.HasPrefix(line, "**") {
		return
	}

	text := strings.TrimSpace(headerStrip.Replace(line))
	if text == "" || unicode.IsDigit([]rune(text)[0]) {
		return
	}
	if t.strict && len(text) <= 2 {
		return
	}

	parts := headerSeparator.Split(text, -1)
	if len(parts) >= 2 {
		prefix := strings.TrimSpace(parts[0])
		if prefix != "" && len(prefix) < maxCountryPrefixLen {
			rest := make([]string, 0, len(parts)-1)
			for _, p := range parts[1:] {
				if p = strings.TrimSpace(p); p != "" {
					rest = append(rest, p)
				}
			}
			if len(rest) > 0 {
				t.country = prefix
				t.league = strings.Join(rest, " ")
				return
			}
		}
	}

	t.league = text
	t.country = "World"
}

// Context returns the current (country, league) pair.
func (t *sectionTracker) Context() Context {
	return Context{League: t.league, Country: t.country}
}
