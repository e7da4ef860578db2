// Package retry runs fallible operations with exponential backoff, jittered
// delays and context-aware cancellation.
//
//	user, err := retry.Do(ctx, func(ctx context.Context) (User, error) {
//	    return client.FetchUser(ctx, id)
//	},
//	    retry.WithMaxAttempts(5),
//	    retry.WithInitialDelay(200*time.Millisecond),
//	    retry.WithRetryIf(func(err error) bool {
//	        return !errors.Is(err, ErrNotFound)
//	    }),
//	)
//
// For operations without a result use Run. Delays start at the initial delay
// and multiply by the backoff factor after each failure, capped at the max
// delay; jitter spreads concurrent retriers apart and can be disabled with
// WithoutJitter.
package retry
