package cache

import (
	"context"
	"errors"
	"time"
)

// RetryableError marks a backend failure that may succeed on a later attempt,
// such as a Redis server that is still starting.
type RetryableError struct{ Err error }

// Retryable marks err as retryable. A nil err stays nil.
func Retryable(err error) error {
	if err == nil {
		return nil
	}
	return &RetryableError{Err: err}
}

func (e *RetryableError) Error() string { return e.Err.Error() }
func (e *RetryableError) Unwrap() error { return e.Err }

// IsRetryable reports whether err, or anything it wraps, is a RetryableError.
func IsRetryable(err error) bool {
	var re *RetryableError
	return errors.As(err, &re)
}

const retryAttempts = 3

// retryDelay is the wait before the second attempt. Each later wait doubles.
var retryDelay = 500 * time.Millisecond

// RetryWithBackoff calls fn until it succeeds, returns an error that is not
// retryable, or has run retryAttempts times. It gives up early when ctx ends.
func RetryWithBackoff(ctx context.Context, fn func() error) error {
	wait := retryDelay
	var err error
	for attempt := 1; ; attempt++ {
		if err = fn(); err == nil || !IsRetryable(err) || attempt == retryAttempts {
			return err
		}
		t := time.NewTimer(wait)
		select {
		case <-ctx.Done():
			t.Stop()
			return ctx.Err()
		case <-t.C:
		}
		wait *= 2
	}
}
