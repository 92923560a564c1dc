//go:build unit

package retry_test

import (
	"context"
	"testing"
	"time"

	"orderflow/internal/pkg/errs"
	"orderflow/internal/pkg/retry"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDo(t *testing.T) {
	errUnavailable := errs.New("unavailable")

	t.Run("returns first success without sleeping", func(t *testing.T) {
		var slept []time.Duration
		p := retry.Policy{
			MaxAttempts: 3,
			BaseDelay:   200 * time.Millisecond,
			Sleep: func(_ context.Context, d time.Duration) error {
				slept = append(slept, d)
				return nil
			},
		}

		calls := 0
		got, err := retry.Do(context.Background(), p, func(context.Context) (int, error) {
			calls++
			return 42, nil
		})
		require.NoError(t, err)
		assert.Equal(t, 42, got)
		assert.Equal(t, 1, calls)
		assert.Empty(t, slept)
	})

	t.Run("backs off exponentially and recovers", func(t *testing.T) {
		var slept []time.Duration
		p := retry.Policy{
			MaxAttempts: 3,
			BaseDelay:   200 * time.Millisecond,
			Sleep: func(_ context.Context, d time.Duration) error {
				slept = append(slept, d)
				return nil
			},
		}

		calls := 0
		got, err := retry.Do(context.Background(), p, func(context.Context) (string, error) {
			calls++
			if calls < 3 {
				return "", errUnavailable
			}
			return "ok", nil
		})
		require.NoError(t, err)
		assert.Equal(t, "ok", got)
		assert.Equal(t, 3, calls)
		assert.Equal(t, []time.Duration{200 * time.Millisecond, 400 * time.Millisecond}, slept)
	})

	t.Run("propagates last failure after exhausting attempts", func(t *testing.T) {
		var slept []time.Duration
		p := retry.Policy{
			MaxAttempts: 3,
			BaseDelay:   200 * time.Millisecond,
			Sleep: func(_ context.Context, d time.Duration) error {
				slept = append(slept, d)
				return nil
			},
		}

		calls := 0
		_, err := retry.Do(context.Background(), p, func(context.Context) (int, error) {
			calls++
			return 0, errUnavailable
		})
		require.ErrorIs(t, err, errUnavailable)
		assert.Equal(t, 3, calls)
		// no delay after the final attempt
		assert.Equal(t, []time.Duration{200 * time.Millisecond, 400 * time.Millisecond}, slept)
	})

	t.Run("aborts when context is canceled during backoff", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		p := retry.Policy{
			MaxAttempts: 3,
			BaseDelay:   time.Minute,
		}

		calls := 0
		done := make(chan error, 1)
		go func() {
			_, err := retry.Do(ctx, p, func(context.Context) (int, error) {
				calls++
				return 0, errUnavailable
			})
			done <- err
		}()

		cancel()
		select {
		case err := <-done:
			require.ErrorIs(t, err, context.Canceled)
		case <-time.After(5 * time.Second):
			t.Fatal("retry did not abort on cancellation")
		}
		assert.Equal(t, 1, calls)
	})

	t.Run("treats non-positive attempts as one", func(t *testing.T) {
		calls := 0
		_, err := retry.Do(context.Background(), retry.Policy{MaxAttempts: 0}, func(context.Context) (int, error) {
			calls++
			return 0, errUnavailable
		})
		require.ErrorIs(t, err, errUnavailable)
		assert.Equal(t, 1, calls)
	})
}

func TestPolicyBackoff(t *testing.T) {
	p := retry.Policy{BaseDelay: 200 * time.Millisecond}

	assert.Equal(t, 200*time.Millisecond, p.Backoff(1))
	assert.Equal(t, 400*time.Millisecond, p.Backoff(2))
	assert.Equal(t, 800*time.Millisecond, p.Backoff(3))
	assert.Equal(t, 200*time.Millisecond, p.Backoff(0))
}
