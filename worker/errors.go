package worker

import "fmt"

// ErrWrongFilter defines incorrect lock glob.
type ErrWrongFilter struct {
	Pattern string
}

// Error formats output.
func (e *ErrWrongFilter) Error() string {
	return fmt.Sprintf("lock filter %s is incorrect", e.Pattern)
}
