package retry_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/apikit/pkg/retry"
)

var errTransient = errors.New("transient failure")

func TestDo_SucceedsFirstAttempt(t *testing.T) {
	t.Parallel()

	calls := 0
	got, err := retry.Do(context.Background(), func(ctx context.Context) (int, error) {
		calls++
		return 42, nil
	})

	require.NoError(t, err)
	assert.Equal(t, 42, got)
	assert.Equal(t, 1, calls)
}

func TestDo_RetriesUntilSuccess(t *testing.T) {
	t.Parallel()

	calls := 0
	got, err := retry.Do(context.Background(), func(ctx context.Context) (string, error) {
		calls++
		if calls < 3 {
			return "", errTransient
		}
		return "ok", nil
	},
		retry.WithMaxAttempts(5),
		retry.WithInitialDelay(time.Millisecond),
		retry.WithoutJitter(),
	)

	require.NoError(t, err)
	assert.Equal(t, "ok", got)
	assert.Equal(t, 3, calls)
}

func TestDo_ExhaustsAttempts(t *testing.T) {
	t.Parallel()

	calls := 0
	_, err := retry.Do(context.Background(), func(ctx context.Context) (int, error) {
		calls++
		return 0, errTransient
	},
		retry.WithMaxAttempts(3),
		retry.WithInitialDelay(time.Millisecond),
		retry.WithoutJitter(),
	)

	require.Error(t, err)
	assert.ErrorIs(t, err, errTransient)
	assert.Contains(t, err.Error(), "3 attempts exhausted")
	assert.Equal(t, 3, calls)
}

func TestDo_RetryIfStopsEarly(t *testing.T) {
	t.Parallel()

	permanent := errors.New("permanent failure")

	calls := 0
	_, err := retry.Do(context.Background(), func(ctx context.Context) (int, error) {
		calls++
		return 0, permanent
	},
		retry.WithMaxAttempts(5),
		retry.WithInitialDelay(time.Millisecond),
		retry.WithRetryIf(func(err error) bool {
			return errors.Is(err, errTransient)
		}),
	)

	assert.ErrorIs(t, err, permanent)
	assert.Equal(t, 1, calls, "non-retryable error must abort immediately")
}

func TestDo_ContextCancellation(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())

	calls := 0
	start := time.Now()
	_, err := retry.Do(ctx, func(ctx context.Context) (int, error) {
		calls++
		cancel()
		return 0, errTransient
	},
		retry.WithMaxAttempts(10),
		retry.WithInitialDelay(time.Hour),
	)

	assert.ErrorIs(t, err, context.Canceled)
	assert.ErrorIs(t, err, errTransient, "last error must stay observable")
	assert.Equal(t, 1, calls)
	assert.Less(t, time.Since(start), time.Second, "cancellation must not wait out the delay")
}

func TestDo_OnRetryHook(t *testing.T) {
	t.Parallel()

	var attempts []int
	_, _ = retry.Do(context.Background(), func(ctx context.Context) (int, error) {
		return 0, errTransient
	},
		retry.WithMaxAttempts(3),
		retry.WithInitialDelay(time.Millisecond),
		retry.WithoutJitter(),
		retry.WithOnRetry(func(err error, attempt int) {
			attempts = append(attempts, attempt)
		}),
	)

	assert.Equal(t, []int{1, 2}, attempts, "hook fires before each retry, not after the final failure")
}

func TestDo_InvalidAttempts(t *testing.T) {
	t.Parallel()

	_, err := retry.Do(context.Background(), func(ctx context.Context) (int, error) {
		return 1, nil
	}, retry.WithMaxAttempts(0))

	assert.ErrorIs(t, err, retry.ErrInvalidAttempts)
}

func TestRun(t *testing.T) {
	t.Parallel()

	calls := 0
	err := retry.Run(context.Background(), func(ctx context.Context) error {
		calls++
		if calls < 2 {
			return errTransient
		}
		return nil
	},
		retry.WithInitialDelay(time.Millisecond),
		retry.WithoutJitter(),
	)

	require.NoError(t, err)
	assert.Equal(t, 2, calls)
}
