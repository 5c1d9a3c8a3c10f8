package security

import "fmt"

// ErrNoCredentials is returned when request carries no basic auth credentials.
type ErrNoCredentials struct {
}

func (*ErrNoCredentials) Error() string {
	return "no basic auth credentials"
}

// ErrMalformedCredentials is returned when credentials can't be decoded into user and password.
// Raw header is never included.
type ErrMalformedCredentials struct {
}

func (*ErrMalformedCredentials) Error() string {
	return "malformed basic auth credentials"
}

// ErrUnknownUser is returned for a user missing in both config and _users file.
type ErrUnknownUser struct {
	User string
}

func (e *ErrUnknownUser) Error() string {
	return fmt.Sprintf("unknown user %s", e.User)
}

// ErrWrongPassword is returned when password doesn't match the stored bcrypt hash.
type ErrWrongPassword struct {
	User string
}

func (e *ErrWrongPassword) Error() string {
	return fmt.Sprintf("wrong password of user %s", e.User)
}
