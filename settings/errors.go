package settings

import "fmt"

// ErrNoConfig defines absence of configuration.
type ErrNoConfig struct {
	Location string
}

// Error formats output.
func (e *ErrNoConfig) Error() string {
	return fmt.Sprintf("no configuration found at %s", e.Location)
}

// ErrNoCredentials defines absence of both API key and account credentials.
type ErrNoCredentials struct {
}

// Error formats output.
func (*ErrNoCredentials) Error() string {
	return "neither API key nor username and password are configured"
}
