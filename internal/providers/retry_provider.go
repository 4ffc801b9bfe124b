package providers

import (
	"context"
	"log/slog"
	"time"

	"github.com/cenkalti/backoff/v4"

	"livescore-service/internal/domain"
	"livescore-service/internal/metrics"
)

const (
	defaultMaxRetries      = 2
	defaultInitialInterval = 200 * time.Millisecond
)

// retryingProvider wraps a Provider with exponential backoff retries.
type retryingProvider struct {
	inner           Provider
	logger          *slog.Logger
	metrics         *metrics.Recorder
	maxRetries      uint64
	initialInterval time.Duration
}

// NewRetryingProvider wraps the given provider with context-aware
// retries. If maxRetries/initialInterval are <= 0, defaults are used.
func NewRetryingProvider(inner Provider, logger *slog.Logger, recorder *metrics.Recorder, maxRetries int, initialInterval time.Duration) Provider {
	if maxRetries <= 0 {
		maxRetries = defaultMaxRetries
	}
	if initialInterval <= 0 {
		initialInterval = defaultInitialInterval
	}
	return &retryingProvider{
		inner:           inner,
		logger:          logger,
		metrics:         recorder,
		maxRetries:      uint64(maxRetries),
		initialInterval: initialInterval,
	}
}

func (r *retryingProvider) Name() string {
	return r.inner.Name()
}

func (r *retryingProvider) FetchLive(ctx context.Context) ([]domain.Match, error) {
	var matches []domain.Match
	err := r.retry(ctx, "live", func() error {
		var err error
		matches, err = r.attemptLive(ctx)
		return err
	})
	if err != nil {
		return nil, err
	}
	return matches, nil
}

func (r *retryingProvider) FetchToday(ctx context.Context, date string) ([]domain.League, error) {
	var leagues []domain.League
	err := r.retry(ctx, "today", func() error {
		var err error
		leagues, err = r.attemptToday(ctx, date)
		return err
	})
	if err != nil {
		return nil, err
	}
	return leagues, nil
}

func (r *retryingProvider) attemptLive(ctx context.Context) ([]domain.Match, error) {
	start := time.Now()
	matches, err := r.inner.FetchLive(ctx)
	r.metrics.RecordAdapterAttempt(r.inner.Name(), time.Since(start), err)
	return matches, err
}

func (r *retryingProvider) attemptToday(ctx context.Context, date string) ([]domain.League, error) {
	start := time.Now()
	leagues, err := r.inner.FetchToday(ctx, date)
	r.metrics.RecordAdapterAttempt(r.inner.Name(), time.Since(start), err)
	return leagues, err
}

func (r *retryingProvider) retry(ctx context.Context, op string, fn func() error) error {
	policy := backoff.NewExponentialBackOff()
	policy.InitialInterval = r.initialInterval

	notify := func(err error, wait time.Duration) {
		logWithAdapter(ctx, r.logger, slog.LevelWarn, r.inner.Name(), "adapter fetch retry",
			"op", op, "wait", wait.String(), "err", err)
	}

	err := backoff.RetryNotify(fn,
		backoff.WithContext(backoff.WithMaxRetries(policy, r.maxRetries), ctx),
		notify)
	if err != nil {
		logWithAdapter(ctx, r.logger, slog.LevelWarn, r.inner.Name(), "adapter fetch failed",
			"op", op, "err", err)
	}
	return err
}
