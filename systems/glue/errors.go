package glue

import "fmt"

// ErrUnauthorized defines rejected API key or credentials.
type ErrUnauthorized struct {
}

// Error formats output.
func (*ErrUnauthorized) Error() string {
	return "wrong authentication data provided, please check the configuration"
}

// ErrNotFound defines unknown lock or operation.
type ErrNotFound struct {
	Path string
}

// Error formats output.
func (e *ErrNotFound) Error() string {
	return fmt.Sprintf("%s is not found", e.Path)
}

// ErrTransport defines network failure or request timeout.
type ErrTransport struct {
	Cause error
}

// Error formats output.
func (e *ErrTransport) Error() string {
	return fmt.Sprintf("transport failure: %s", e.Cause)
}

// Unwrap returns underlying network error.
func (e *ErrTransport) Unwrap() error {
	return e.Cause
}

// ErrServer defines error response returned by the remote service.
type ErrServer struct {
	Status        int    `json:"-"`
	Title         string `json:"title"`
	Code          int    `json:"code"`
	Detail        string `json:"detail"`
	CorrelationID string `json:"correlationId"`
}

// Error formats output.
func (e *ErrServer) Error() string {
	return fmt.Sprintf("%s (code: %d correlationId: %s details: %s)", e.Title, e.Code, e.CorrelationID, e.Detail)
}
