package lock

import (
	"errors"
	"fmt"

	"github.com/go-home-io/gluehome/plugins/device/enums"
	"github.com/go-home-io/gluehome/utils"
)

// ErrorKind classifies command failures.
type ErrorKind string

const (
	// KindNone describes absence of an error.
	KindNone ErrorKind = ""
	// KindPrecondition describes command which can't be delivered to the lock.
	KindPrecondition ErrorKind = "precondition"
	// KindRemoteRejected describes operation which finished without completing.
	KindRemoteRejected ErrorKind = "remote_rejected"
	// KindRetryExhausted describes operation which stayed pending for too long.
	KindRetryExhausted ErrorKind = "retry_exhausted"
	// KindTransport describes network, authorization or server failure.
	KindTransport ErrorKind = "transport"
	// KindCancelled describes command stopped by its context.
	KindCancelled ErrorKind = "cancelled"
)

// ErrNotConnected defines lock which doesn't accept remote commands.
type ErrNotConnected struct {
	LockID string
	Status enums.ConnectionStatus
}

// Error formats output.
func (e *ErrNotConnected) Error() string {
	status := e.Status.String()
	if "" == status {
		status = "unknown"
	}

	return fmt.Sprintf("lock %s is not connected (status: %s)", e.LockID, status)
}

// ErrInvalidTarget defines state no command can achieve.
type ErrInvalidTarget struct {
	State enums.LockState
}

// Error formats output.
func (e *ErrInvalidTarget) Error() string {
	return fmt.Sprintf("lock can't be moved into %s state", e.State)
}

// ErrOperationFailed defines operation which reached non-completed terminal status.
type ErrOperationFailed struct {
	OperationID string
	Status      enums.OperationStatus
	Reason      string
}

// Error formats output.
func (e *ErrOperationFailed) Error() string {
	if "" == e.Reason {
		return fmt.Sprintf("operation %s finished with status %s", e.OperationID, e.Status)
	}

	return fmt.Sprintf("operation %s finished with status %s: %s", e.OperationID, e.Status, e.Reason)
}

// ErrPending defines operation which is not finished yet.
type ErrPending struct {
	OperationID string
	Status      enums.OperationStatus
}

// Error formats output.
func (e *ErrPending) Error() string {
	return fmt.Sprintf("operation %s is still %s", e.OperationID, e.Status)
}

// ErrTransport defines failed call to the remote service.
type ErrTransport struct {
	Cause error
}

// Error formats output.
func (e *ErrTransport) Error() string {
	return fmt.Sprintf("remote call failed: %s", e.Cause)
}

// Unwrap returns client error.
func (e *ErrTransport) Unwrap() error {
	return e.Cause
}

// Kind classifies error returned by Execute.
func Kind(err error) ErrorKind {
	if nil == err {
		return KindNone
	}

	var (
		cancelled *utils.ErrCancelled
		exhausted *utils.ErrRetryExhausted
		notConn   *ErrNotConnected
		target    *ErrInvalidTarget
		failed    *ErrOperationFailed
	)

	switch {
	case errors.As(err, &cancelled):
		return KindCancelled
	case errors.As(err, &exhausted):
		return KindRetryExhausted
	case errors.As(err, &notConn), errors.As(err, &target):
		return KindPrecondition
	case errors.As(err, &failed):
		return KindRemoteRejected
	default:
		return KindTransport
	}
}
