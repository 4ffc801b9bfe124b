package providers

import (
	"context"
	"errors"
	"testing"
	"time"

	"livescore-service/internal/domain"
	"livescore-service/internal/testutil"
)

func TestRetryingProviderRecoversOnSecondAttempt(t *testing.T) {
	match := testutil.SampleMatch("Arsenal", "Chelsea")
	calls := 0
	stub := &testutil.StubProvider{
		NameVal: "flaky",
		LiveFn: func(ctx context.Context) ([]domain.Match, error) {
			calls++
			if calls == 1 {
				return nil, errors.New("transient")
			}
			return []domain.Match{match}, nil
		},
	}

	p := NewRetryingProvider(stub, testutil.SilentLogger(), nil, 2, time.Millisecond)
	matches, err := p.FetchLive(context.Background())
	if err != nil {
		t.Fatalf("expected recovery, got %v", err)
	}
	if calls != 2 {
		t.Fatalf("expected 2 attempts, got %d", calls)
	}
	if len(matches) != 1 {
		t.Fatalf("expected 1 match, got %d", len(matches))
	}
}

func TestRetryingProviderGivesUpAfterMaxRetries(t *testing.T) {
	calls := 0
	stub := &testutil.StubProvider{
		NameVal: "down",
		TodayFn: func(ctx context.Context, date string) ([]domain.League, error) {
			calls++
			return nil, errors.New("permanent")
		},
	}

	p := NewRetryingProvider(stub, testutil.SilentLogger(), nil, 2, time.Millisecond)
	if _, err := p.FetchToday(context.Background(), "2025-03-08"); err == nil {
		t.Fatal("expected error after exhausting retries")
	}
	// Initial attempt plus two retries.
	if calls != 3 {
		t.Fatalf("expected 3 attempts, got %d", calls)
	}
}

func TestRetryingProviderHonorsContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	stub := &testutil.StubProvider{
		NameVal: "slow",
		LiveFn: func(ctx context.Context) ([]domain.Match, error) {
			cancel()
			return nil, errors.New("transient")
		},
	}

	p := NewRetryingProvider(stub, testutil.SilentLogger(), nil, 5, time.Minute)
	start := time.Now()
	if _, err := p.FetchLive(ctx); err == nil {
		t.Fatal("expected error after cancellation")
	}
	if time.Since(start) > 5*time.Second {
		t.Fatal("cancellation must stop the backoff wait")
	}
}

func TestRetryingProviderKeepsName(t *testing.T) {
	p := NewRetryingProvider(&testutil.StubProvider{NameVal: "inner"}, testutil.SilentLogger(), nil, 1, time.Millisecond)
	if p.Name() != "inner" {
		t.Fatalf("unexpected name %s", p.Name())
	}
}
