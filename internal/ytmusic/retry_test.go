package ytmusic

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/cangzhang/kaset/internal/auth"
	"github.com/stretchr/testify/assert"
)

func testRetryPolicy() retryPolicy {
	return retryPolicy{attempts: 3, baseDelay: time.Millisecond}
}

func TestTransient(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"network error", &NetworkError{Err: errors.New("refused")}, true},
		{"500", &APIError{StatusCode: 500}, true},
		{"503", &APIError{StatusCode: 503}, true},
		{"429", &APIError{StatusCode: 429}, true},
		{"404", &APIError{StatusCode: 404}, false},
		{"400", &APIError{StatusCode: 400}, false},
		{"auth expired", auth.ErrAuthExpired, false},
		{"not authenticated", auth.ErrNotAuthenticated, false},
		{"parse error", &ParseError{Message: "not json"}, false},
		{"plain error", errors.New("whatever"), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, transient(tt.err))
		})
	}
}

func TestRetry_TransientExhaustsAttempts(t *testing.T) {
	calls := 0
	err := testRetryPolicy().run(context.Background(), func(context.Context) error {
		calls++
		return &NetworkError{Err: errors.New("down")}
	})

	assert.Equal(t, 3, calls)
	var netErr *NetworkError
	assert.True(t, errors.As(err, &netErr), "last error propagates")
}

func TestRetry_SucceedsMidway(t *testing.T) {
	calls := 0
	err := testRetryPolicy().run(context.Background(), func(context.Context) error {
		calls++
		if calls < 3 {
			return &APIError{StatusCode: 503}
		}
		return nil
	})

	assert.NoError(t, err)
	assert.Equal(t, 3, calls)
}

func TestRetry_PermanentFailsImmediately(t *testing.T) {
	calls := 0
	err := testRetryPolicy().run(context.Background(), func(context.Context) error {
		calls++
		return &APIError{StatusCode: 404}
	})

	assert.Equal(t, 1, calls, "non-transient errors are never retried")
	var apiErr *APIError
	assert.True(t, errors.As(err, &apiErr))
}

func TestRetry_AuthFailsImmediately(t *testing.T) {
	calls := 0
	err := testRetryPolicy().run(context.Background(), func(context.Context) error {
		calls++
		return auth.ErrAuthExpired
	})

	assert.Equal(t, 1, calls)
	assert.True(t, errors.Is(err, auth.ErrAuthExpired))
}

func TestRetry_ContextCancelledDuringBackoff(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	calls := 0
	p := retryPolicy{attempts: 3, baseDelay: time.Minute}
	done := make(chan error, 1)
	go func() {
		done <- p.run(ctx, func(context.Context) error {
			calls++
			return &NetworkError{Err: errors.New("down")}
		})
	}()

	time.Sleep(20 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
		assert.Equal(t, 1, calls, "cancellation interrupts the backoff wait")
	case <-time.After(2 * time.Second):
		t.Fatal("retry did not observe cancellation")
	}
}
