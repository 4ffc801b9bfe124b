package markdown

import "testing"

func TestSectionTrackerSplitsCountryAndLeague(t *testing.T) {
	tracker := newSectionTracker(false)
	tracker.Observe("## England - Premier League")

	ctx := tracker.Context()
	if ctx.Country != "England" {
		t.Fatalf("expected England, got %q", ctx.Country)
	}
	if ctx.League != "Premier League" {
		t.Fatalf("expected Premier League, got %q", ctx.League)
	}
}

func TestSectionTrackerBoldHeader(t *testing.T) {
	tracker := newSectionTracker(false)
	tracker.Observe("**Spain: La Liga**")

	ctx := tracker.Context()
	if ctx.Country != "Spain" || ctx.League != "La Liga" {
		t.Fatalf("unexpected context %+v", ctx)
	}
}

func TestSectionTrackerHeaderWithoutSeparator(t *testing.T) {
	tracker := newSectionTracker(false)
	tracker.Observe("# Champions League")

	ctx := tracker.Context()
	if ctx.League != "Champions League" {
		t.Fatalf("expected Champions League, got %q", ctx.League)
	}
	if ctx.Country != "World" {
		t.Fatalf("expected World for separator-less header, got %q", ctx.Country)
	}
}

func TestSectionTrackerLongPrefixIsLeagueName(t *testing.T) {
	tracker := newSectionTracker(false)
	tracker.Observe("## UEFA Champions League Qualification - Round One")

	// A prefix too long to be a country keeps the whole text as league.
	ctx := tracker.Context()
	if ctx.Country != "World" {
		t.Fatalf("expected World, got %q", ctx.Country)
	}
}

func TestSectionTrackerIgnoresNonHeaders(t *testing.T) {
	tracker := newSectionTracker(false)
	tracker.Observe("## England - Premier League")
	tracker.Observe("Arsenal 2-1 Chelsea 67'")
	tracker.Observe("plain prose line")

	ctx := tracker.Context()
	if ctx.League != "Premier League" {
		t.Fatalf("context must persist past non-header lines, got %q", ctx.League)
	}
}

func TestSectionTrackerIgnoresNumericHeaders(t *testing.T) {
	tracker := newSectionTracker(false)
	tracker.Observe("## England - Premier League")
	tracker.Observe("## 12:00")

	if ctx := tracker.Context(); ctx.League != "Premier League" {
		t.Fatalf("digit-led header must not change context, got %q", ctx.League)
	}
}

func TestSectionTrackerStrictFiltersShortHeaders(t *testing.T) {
	tracker := newSectionTracker(true)
	tracker.Observe("## England - Premier League")
	tracker.Observe("**ad**")

	if ctx := tracker.Context(); ctx.League != "Premier League" {
		t.Fatalf("strict mode must skip two-char headers, got %q", ctx.League)
	}
}
