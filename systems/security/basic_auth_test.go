package security

import (
	"encoding/base64"
	"fmt"
	"io/ioutil"
	"path/filepath"
	"testing"

	"github.com/go-home-io/gluehome/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func getAuthHeader(usr, pwd string) map[string][]string {
	pair := fmt.Sprintf("%s:%s", usr, pwd)

	return map[string][]string{"Authorization": {
		fmt.Sprintf("Basic %s", base64.StdEncoding.EncodeToString([]byte(pair)))}}
}

func getHash(pwd string) string {
	b, _ := bcrypt.GenerateFromPassword([]byte(pwd), bcrypt.MinCost)
	return string(b)
}

func getProvider(t *testing.T, file string, users map[string]string) *basicAuthProvider {
	location := filepath.Join(t.TempDir(), "_users")
	if "" != file {
		require.NoError(t, ioutil.WriteFile(location, []byte(file), 0600))
	}

	return newBasicAuthProvider(mocks.FakeNewLogger(nil), users, location)
}

// Tests missing users file.
func TestFileAccessError(t *testing.T) {
	logFound := false
	prov := newBasicAuthProvider(mocks.FakeNewLogger(func(m string) {
		if m == "_users file is not found, going to use configured users only" {
			logFound = true
		}
	}), nil, filepath.Join(t.TempDir(), "_users"))

	assert.True(t, logFound)
	assert.False(t, prov.hasUsers())
}

// Tests header parsing errors.
func TestWrongHeaders(t *testing.T) {
	prov := getProvider(t, "", map[string]string{"john": getHash("pwd")})

	data := []struct {
		headers map[string][]string
		err     interface{}
	}{
		{map[string][]string{}, &ErrNoCredentials{}},
		{map[string][]string{"Authorization": {"Bearer 123"}}, &ErrNoCredentials{}},
		{map[string][]string{"Authorization": {"Basic 123", "Basic 456"}}, &ErrNoCredentials{}},
		{map[string][]string{"Authorization": {"Basic !!!"}}, &ErrMalformedCredentials{}},
		{map[string][]string{"Authorization": {"Basic " + base64.StdEncoding.EncodeToString([]byte("john"))}},
			&ErrMalformedCredentials{}},
		{getAuthHeader("john", "wrong"), &ErrWrongPassword{}},
		{getAuthHeader("jane", "pwd"), &ErrUnknownUser{}},
	}

	for _, v := range data {
		_, err := prov.Authorize(v.headers)
		require.Error(t, err)
		assert.IsType(t, v.err, err)
	}
}

// Tests that error doesn't expose the raw header.
func TestMalformedNotExposed(t *testing.T) {
	prov := getProvider(t, "", map[string]string{"john": getHash("pwd")})
	raw := base64.StdEncoding.EncodeToString([]byte("john-secret"))

	_, err := prov.Authorize(map[string][]string{"Authorization": {"Basic " + raw}})
	require.Error(t, err)
	assert.NotContains(t, err.Error(), raw)
}

// Tests users from file and config.
func TestAuthorize(t *testing.T) {
	file := fmt.Sprintf("jane:%s\n\n  \nbroken\n", getHash("jane-pwd"))
	prov := getProvider(t, file, map[string]string{"john": getHash("john-pwd")})
	assert.True(t, prov.hasUsers())

	usr, err := prov.Authorize(getAuthHeader("jane", "jane-pwd"))
	require.NoError(t, err)
	assert.Equal(t, "jane", usr)

	usr, err = prov.Authorize(getAuthHeader("john", "john-pwd"))
	require.NoError(t, err)
	assert.Equal(t, "john", usr)
}
