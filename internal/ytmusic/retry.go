package ytmusic

import (
	"context"
	"errors"
	"time"
)

// retryPolicy re-runs an operation on transient failure. Only transport
// errors and retryable statuses qualify; auth failures, parse failures and
// plain 4xx responses propagate on first occurrence.
type retryPolicy struct {
	attempts  int
	baseDelay time.Duration
}

func defaultRetryPolicy() retryPolicy {
	return retryPolicy{attempts: 3, baseDelay: 500 * time.Millisecond}
}

// run attempts op until it succeeds, fails permanently, or attempts run out.
// The backoff delay doubles after each failed attempt and the wait respects
// ctx cancellation.
func (p retryPolicy) run(ctx context.Context, op func(context.Context) error) error {
	delay := p.baseDelay
	var err error
	for attempt := 1; ; attempt++ {
		err = op(ctx)
		if err == nil || !transient(err) || attempt >= p.attempts {
			return err
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
		}
		delay *= 2
	}
}

// transient reports whether err is worth another attempt.
func transient(err error) bool {
	var netErr *NetworkError
	if errors.As(err, &netErr) {
		return true
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Transient()
	}
	return false
}
