package security

import (
	"path/filepath"
	"testing"

	"github.com/go-home-io/gluehome/mocks"
	"github.com/go-home-io/gluehome/providers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func getSecurity(t *testing.T, roles []*providers.SecRole) providers.ISecurityProvider {
	return NewSecurityProvider(&ConstructSecurityProvider{
		Logger: mocks.FakeNewLogger(nil),
		Users: map[string]string{
			"admin": getHash("admin"),
			"guest": getHash("guest"),
		},
		Roles:     roles,
		UsersFile: filepath.Join(t.TempDir(), "_users"),
	})
}

// Tests disabled security.
func TestSecurityDisabled(t *testing.T) {
	prov := NewSecurityProvider(&ConstructSecurityProvider{
		Logger:    mocks.FakeNewLogger(nil),
		UsersFile: filepath.Join(t.TempDir(), "_users"),
	})

	assert.False(t, prov.IsEnabled())
	_, err := prov.GetUser(getAuthHeader("admin", "admin"))
	assert.Error(t, err)
}

// Tests full access without roles.
func TestSecurityNoRoles(t *testing.T) {
	prov := getSecurity(t, nil)
	assert.True(t, prov.IsEnabled())

	usr, err := prov.GetUser(getAuthHeader("guest", "guest"))
	require.NoError(t, err)
	assert.True(t, usr.LockGet("any"))
	assert.True(t, usr.LockCommand("any"))
}

// Tests role rules.
func TestSecurityRoles(t *testing.T) {
	prov := getSecurity(t, []*providers.SecRole{
		{
			Name:  "admins",
			Users: []string{"adm*"},
			Verbs: []providers.SecVerb{providers.SecVerbAll},
		},
		{
			Name:  "guests",
			Users: []string{"guest"},
			Locks: []string{"front*"},
			Verbs: []providers.SecVerb{providers.SecVerbGet},
		},
		{
			Name:  "empty",
			Users: []string{"guest"},
		},
		{
			Name:  "broken",
			Users: []string{"[a"},
			Verbs: []providers.SecVerb{providers.SecVerbAll},
		},
		nil,
	})

	admin, err := prov.GetUser(getAuthHeader("admin", "admin"))
	require.NoError(t, err)
	assert.True(t, admin.LockCommand("back"))
	assert.True(t, admin.LockGet("front"))

	guest, err := prov.GetUser(getAuthHeader("guest", "guest"))
	require.NoError(t, err)
	assert.True(t, guest.LockGet("FRONT-door"))
	assert.False(t, guest.LockGet("back"))
	assert.False(t, guest.LockCommand("front-door"))
	assert.Len(t, guest.Rules, 1)

	cached, err := prov.GetUser(getAuthHeader("guest", "guest"))
	require.NoError(t, err)
	assert.Same(t, guest, cached)

	_, err = prov.GetUser(getAuthHeader("guest", "wrong"))
	assert.Error(t, err)
}
