package common

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestWithRetry(t *testing.T) {
	opts := RetryOptions{MaxAttempts: 3, InitialDelay: time.Millisecond, MaxDelay: 5 * time.Millisecond}

	t.Run("succeeds after transient failures", func(t *testing.T) {
		calls := 0
		err := WithRetry(context.Background(), func() error {
			calls++
			if calls < 3 {
				return errors.New("busy")
			}
			return nil
		}, opts)

		assert.NoError(t, err)
		assert.Equal(t, 3, calls)
	})

	t.Run("exhausts attempts", func(t *testing.T) {
		cause := errors.New("locked")
		err := WithRetry(context.Background(), func() error { return cause }, opts)

		assert.ErrorIs(t, err, ErrMaxRetries)
		assert.ErrorIs(t, err, cause)
	})

	t.Run("single attempt returns cause unwrapped", func(t *testing.T) {
		cause := errors.New("locked")
		err := WithRetry(context.Background(), func() error { return cause }, RetryOptions{MaxAttempts: 1})

		assert.Equal(t, cause, err)
	})

	t.Run("non retryable stops early", func(t *testing.T) {
		calls := 0
		err := WithRetry(context.Background(), func() error {
			calls++
			return &RetryableError{Err: errors.New("fatal"), Retryable: false}
		}, opts)

		assert.Error(t, err)
		assert.Equal(t, 1, calls)
	})

	t.Run("context cancellation", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		err := WithRetry(ctx, func() error { return errors.New("busy") }, opts)
		assert.ErrorIs(t, err, context.Canceled)
	})
}
