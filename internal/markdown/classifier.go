package markdown

import (
	"regexp"
	"strconv"
	"strings"

	"livescore-service/internal/domain"
)

// fallbackStatus is assigned to non-empty status tokens that match no
// known rule. The observed upstream feeds disagree on what such tokens
// mean; LIVE matches the majority behavior and is kept for
// compatibility. Callers see recognized=false and can count these.
const fallbackStatus = domain.StatusLive

var (
	digitsOnly = regexp.MustCompile(`^\d+$`)
	minuteMark = regexp.MustCompile(`\d+'`)
	firstInt   = regexp.MustCompile(`\d+`)
)

// Classify maps a raw status token (free text such as "HT", "45'",
// "FT", "NS", "LIVE") to a normalized status and an optional minute.
//
// Rule order matters: halftime must be tested before the generic
// digits-with-apostrophe rule because some feeds render halftime as a
// bare label rather than a minute.
func Classify(token string) (status domain.MatchStatus, minute *int, recognized bool) {
	s := strings.ToLower(strings.TrimSpace(token))

	switch {
	case strings.Contains(s, "ht") || s == "halftime":
		return domain.StatusHalftime, domain.IntPtr(45), true
	case strings.Contains(s, "ft") || strings.Contains(s, "finished") ||
		strings.Contains(s, "aet") || strings.Contains(s, "pen"):
		return domain.StatusFulltime, nil, true
	case strings.Contains(s, "postponed") || strings.Contains(s, "pst"):
		return domain.StatusPostponed, nil, true
	case strings.Contains(s, "cancelled") || strings.Contains(s, "canc"):
		return domain.StatusCancelled, nil, true
	case s == "" || strings.Contains(s, "not started") || strings.Contains(s, "ns"):
		return domain.StatusScheduled, nil, true
	case s == "1h" || s == "2h":
		// Half markers carry no usable minute; feeds that send them
		// put the clock in a separate progress field.
		return domain.StatusLive, nil, true
	case digitsOnly.MatchString(s) || minuteMark.MatchString(s) || s == "live":
		return domain.StatusLive, leadingMinute(s), true
	}
	return fallbackStatus, nil, false
}

// ExtractMinute pulls a match minute out of free-form progress/status
// text: the first integer when present, 45 for halftime labels.
func ExtractMinute(text string) *int {
	s := strings.ToLower(strings.TrimSpace(text))
	if m := leadingMinute(s); m != nil {
		return m
	}
	if strings.Contains(s, "ht") {
		return domain.IntPtr(45)
	}
	return nil
}

// leadingMinute extracts the first integer in the token, if any.
func leadingMinute(s string) *int {
	raw := firstInt.FindString(s)
	if raw == "" {
		return nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return nil
	}
	return &v
}
