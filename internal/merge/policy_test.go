package merge

import (
	"testing"

	"livescore-service/internal/domain"
)

func TestPolicyMatchesKeywordSubstrings(t *testing.T) {
	policy := NewPolicy()

	top := []string{
		"Premier League",
		"English Premier League",
		"La Liga",
		"UEFA Champions League",
		"FIFA World Cup",
	}
	for _, name := range top {
		if !policy.IsTop(name) {
			t.Fatalf("expected %q to be a top league", name)
		}
	}

	other := []string{"Eredivisie", "Scottish Championship", "Primeira Liga"}
	for _, name := range other {
		if policy.IsTop(name) {
			t.Fatalf("expected %q to not be a top league", name)
		}
	}
}

func TestPolicySplitPreservesOrderAndStampsFlag(t *testing.T) {
	policy := NewPolicy()
	leagues := []domain.League{
		{Name: "Eredivisie"},
		{Name: "Premier League"},
		{Name: "Serie A"},
		{Name: "Allsvenskan"},
	}

	top, other := policy.Split(leagues)
	if len(top) != 2 || len(other) != 2 {
		t.Fatalf("unexpected partition sizes %d/%d", len(top), len(other))
	}
	if top[0].Name != "Premier League" || top[1].Name != "Serie A" {
		t.Fatalf("top order broken: %s, %s", top[0].Name, top[1].Name)
	}
	if other[0].Name != "Eredivisie" || other[1].Name != "Allsvenskan" {
		t.Fatalf("other order broken: %s, %s", other[0].Name, other[1].Name)
	}
	for _, l := range top {
		if !l.IsTopLeague {
			t.Fatalf("top league %s missing flag", l.Name)
		}
	}
	for _, l := range other {
		if l.IsTopLeague {
			t.Fatalf("other league %s wrongly flagged", l.Name)
		}
	}
}

func TestPolicyCustomKeywords(t *testing.T) {
	policy := NewPolicy("eredivisie")
	if !policy.IsTop("Eredivisie") {
		t.Fatal("custom keyword should match case-insensitively")
	}
	if policy.IsTop("Premier League") {
		t.Fatal("default keywords must not apply when custom ones are set")
	}
}

func TestPolicySplitEmptyInputYieldsEmptySlices(t *testing.T) {
	top, other := NewPolicy().Split(nil)
	if top == nil || other == nil {
		t.Fatal("partitions must be non-nil for JSON encoding")
	}
}
