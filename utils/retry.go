package utils

import (
	"context"
	"errors"
	"time"
)

// RetryPolicy describes how many times and how often a task is attempted.
type RetryPolicy struct {
	// Attempts bounds total attempts including the first one.
	Attempts int
	// Forever ignores Attempts, only cancellation stops the loop.
	Forever bool
	// Interval is a fixed pause between attempts.
	Interval time.Duration
}

// RetryTask is a single attempt.
// Return error wrapped with Recoverable to request another attempt.
type RetryTask[T any] func(ctx context.Context) (T, error)

// Sleeper pauses for the duration or until context is done.
type Sleeper func(ctx context.Context, d time.Duration) error

// Sleep is the default sleeper.
func Sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// Retry executes task until it succeeds, fails non-recoverably or runs out of attempts.
func Retry[T any](ctx context.Context, policy *RetryPolicy, task RetryTask[T]) (T, error) {
	return RetryWithSleeper(ctx, policy, Sleep, task)
}

// RetryWithSleeper is Retry with a custom pause implementation.
func RetryWithSleeper[T any](ctx context.Context, policy *RetryPolicy, sleep Sleeper, task RetryTask[T]) (T, error) {
	var zero T
	attempts := policy.Attempts
	if attempts < 1 {
		attempts = 1
	}

	for attempt := 1; ; attempt++ {
		if err := ctx.Err(); err != nil {
			return zero, &ErrCancelled{Attempts: attempt - 1, Cause: err}
		}

		result, err := task(ctx)
		if err == nil {
			return result, nil
		}

		var rec *ErrRecoverable
		if !errors.As(err, &rec) {
			return zero, err
		}

		if !policy.Forever && attempt >= attempts {
			return zero, &ErrRetryExhausted{Attempts: attempt, Last: rec.Cause}
		}

		if err := sleep(ctx, policy.Interval); err != nil {
			return zero, &ErrCancelled{Attempts: attempt, Cause: err}
		}
	}
}
