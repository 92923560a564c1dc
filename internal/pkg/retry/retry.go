// Package retry provides a bounded retry executor with exponential backoff.
package retry

import (
	"context"
	"time"
)

type Policy struct {
	MaxAttempts int
	BaseDelay   time.Duration

	// Sleep overrides the inter-attempt wait. Nil means a context-aware
	// real sleep. Tests inject a recorder here.
	Sleep func(ctx context.Context, d time.Duration) error
}

// Backoff returns the delay taken after a failed attempt (1-based):
// BaseDelay doubled per attempt, so attempt 1 waits BaseDelay, attempt 2
// waits 2×BaseDelay, and so on. There is no wait after the final attempt.
func (p Policy) Backoff(attempt int) time.Duration {
	if attempt < 1 {
		attempt = 1
	}
	return p.BaseDelay << (attempt - 1)
}

// Do runs op up to MaxAttempts times, sleeping between attempts. The last
// failure is returned unchanged; op decides what counts as failure. The
// sleep does not hold any resource and aborts early when ctx is done.
func Do[T any](ctx context.Context, p Policy, op func(context.Context) (T, error)) (T, error) {
	var zero T
	if p.MaxAttempts < 1 {
		p.MaxAttempts = 1
	}
	sleep := p.Sleep
	if sleep == nil {
		sleep = sleepCtx
	}

	var lastErr error
	for attempt := 1; attempt <= p.MaxAttempts; attempt++ {
		result, err := op(ctx)
		if err == nil {
			return result, nil
		}
		lastErr = err

		if attempt < p.MaxAttempts {
			if sleepErr := sleep(ctx, p.Backoff(attempt)); sleepErr != nil {
				return zero, sleepErr
			}
		}
	}
	return zero, lastErr
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
