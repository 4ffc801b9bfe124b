package testutil

import (
	"context"

	"livescore-service/internal/domain"
)

// StubProvider is a scriptable provider for tests.
type StubProvider struct {
	NameVal string
	LiveFn  func(ctx context.Context) ([]domain.Match, error)
	TodayFn func(ctx context.Context, date string) ([]domain.League, error)
}

func (s *StubProvider) Name() string {
	if s.NameVal == "" {
		return "stub"
	}
	return s.NameVal
}

func (s *StubProvider) FetchLive(ctx context.Context) ([]domain.Match, error) {
	if s.LiveFn == nil {
		return []domain.Match{}, nil
	}
	return s.LiveFn(ctx)
}

func (s *StubProvider) FetchToday(ctx context.Context, date string) ([]domain.League, error) {
	if s.TodayFn == nil {
		return []domain.League{}, nil
	}
	return s.TodayFn(ctx, date)
}
