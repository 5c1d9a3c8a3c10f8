//+build !release

package mocks

import "github.com/go-home-io/gluehome/providers"

type fakeSecurity struct {
	enabled bool
	user    *providers.AuthenticatedUser
	err     error
}

func (f *fakeSecurity) IsEnabled() bool {
	return f.enabled
}

func (f *fakeSecurity) GetUser(map[string][]string) (*providers.AuthenticatedUser, error) {
	return f.user, f.err
}

// FakeNewSecurity creates a new fake security provider.
func FakeNewSecurity(enabled bool, user *providers.AuthenticatedUser, err error) providers.ISecurityProvider {
	return &fakeSecurity{
		enabled: enabled,
		user:    user,
		err:     err,
	}
}
