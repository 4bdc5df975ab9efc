package extraction

import (
	"context"
	"time"

	"github.com/sethvargo/go-retry"
)

// RetryPolicy bounds network fetches: Attempts tries, each limited to
// Timeout, with a linear pause of Backoff*n after the n-th failure.
type RetryPolicy struct {
	Attempts int
	Backoff  time.Duration
	Timeout  time.Duration
}

func (p RetryPolicy) backoff() retry.Backoff {
	attempt := 0
	return retry.BackoffFunc(func() (time.Duration, bool) {
		attempt++
		if attempt >= p.Attempts {
			return 0, true
		}
		return p.Backoff * time.Duration(attempt), false
	})
}

// Do runs fn until it succeeds or the attempts are used up and returns the
// last error. Errors returned by fn are all considered retryable; a
// cancelled ctx stops immediately.
func (p RetryPolicy) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	if p.Attempts < 1 {
		p.Attempts = 1
	}
	return retry.Do(ctx, p.backoff(), func(ctx context.Context) error {
		attemptCtx := ctx
		if p.Timeout > 0 {
			var cancel context.CancelFunc
			attemptCtx, cancel = context.WithTimeout(ctx, p.Timeout)
			defer cancel()
		}
		err := fn(attemptCtx)
		if err == nil || ctx.Err() != nil {
			return err
		}
		return retry.RetryableError(err)
	})
}
