package server

import "fmt"

// ErrUnknownLock defines unknown lock error.
type ErrUnknownLock struct {
	ID string
}

// Error formats output.
func (e *ErrUnknownLock) Error() string {
	return fmt.Sprintf("lock %s is unknown", e.ID)
}

// ErrUnknownState defines unknown target state error.
type ErrUnknownState struct {
	Name string
}

// Error formats output.
func (e *ErrUnknownState) Error() string {
	return fmt.Sprintf("state %s is unknown", e.Name)
}

// ErrForbidden defines command which is not allowed for the user.
type ErrForbidden struct {
	ID string
}

// Error formats output.
func (e *ErrForbidden) Error() string {
	return fmt.Sprintf("commands for lock %s are not allowed", e.ID)
}
