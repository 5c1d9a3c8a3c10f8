package utils

import "fmt"

// ErrInvalidConfig defines wrong configuration error.
type ErrInvalidConfig struct {
	Name string
}

// Error formats output.
func (e *ErrInvalidConfig) Error() string {
	if e.Name == "" {
		return "config validation error"
	}

	return fmt.Sprintf("config validation error: %s", e.Name)
}

// ErrRecoverable marks a task failure after which another attempt is meaningful.
type ErrRecoverable struct {
	Cause error
}

// Error formats output.
func (e *ErrRecoverable) Error() string {
	return e.Cause.Error()
}

// Unwrap returns underlying failure.
func (e *ErrRecoverable) Unwrap() error {
	return e.Cause
}

// Recoverable wraps error so the retry loop will try again.
func Recoverable(err error) error {
	if err == nil {
		return nil
	}

	return &ErrRecoverable{Cause: err}
}

// ErrRetryExhausted defines a retry loop which ran out of attempts.
type ErrRetryExhausted struct {
	Attempts int
	Last     error
}

// Error formats output.
func (e *ErrRetryExhausted) Error() string {
	return fmt.Sprintf("gave up after %d attempts: %s", e.Attempts, e.Last)
}

// Unwrap returns the last observed recoverable failure.
func (e *ErrRetryExhausted) Unwrap() error {
	return e.Last
}

// ErrCancelled defines a retry loop stopped by its context.
type ErrCancelled struct {
	Attempts int
	Cause    error
}

// Error formats output.
func (e *ErrCancelled) Error() string {
	return fmt.Sprintf("cancelled after %d attempts: %s", e.Attempts, e.Cause)
}

// Unwrap returns context error.
func (e *ErrCancelled) Unwrap() error {
	return e.Cause
}
