package security

import (
	"encoding/base64"
	"fmt"
	"io/ioutil"
	"strings"

	"github.com/go-home-io/gluehome/plugins/common"
	"github.com/go-home-io/gluehome/utils"
	"golang.org/x/crypto/bcrypt"
)

// Basic auth user storage.
type basicAuthProvider struct {
	logger          common.ILoggerProvider
	presetPasswords map[string]string
}

// Loads configured users and regular htpasswd file.
// Passwords must be generated with -B option.
func newBasicAuthProvider(logger common.ILoggerProvider, users map[string]string, file string) *basicAuthProvider {
	b := &basicAuthProvider{
		logger:          logger,
		presetPasswords: make(map[string]string),
	}

	if "" == file {
		file = fmt.Sprintf("%s/_users", utils.GetDefaultConfigsDir())
	}

	if !b.readFile(file) {
		b.logger.Debug("_users file is not found, going to use configured users only", common.LogFileToken, file)
	}

	for k, v := range users {
		b.presetPasswords[k] = v
	}

	return b
}

// Checks whether any user is known.
func (b *basicAuthProvider) hasUsers() bool {
	return len(b.presetPasswords) > 0
}

// Authorize validates basic auth header against loaded users.
func (b *basicAuthProvider) Authorize(headers map[string][]string) (username string, err error) {
	var auth []string

	for k, v := range headers {
		if k != "Authorization" {
			continue
		}

		if 1 != len(v) {
			continue
		}

		auth = strings.SplitN(v[0], " ", 2)
		break
	}

	if 2 != len(auth) || "Basic" != auth[0] {
		b.logger.Debug("No Basic Auth header found")
		return "", &ErrNoCredentials{}
	}

	payload, err := base64.StdEncoding.DecodeString(auth[1])
	if err != nil {
		b.logger.Warn("Failed to decode Basic Auth header")
		return "", &ErrMalformedCredentials{}
	}

	pair := strings.SplitN(string(payload), ":", 2)
	if 2 != len(pair) {
		b.logger.Warn("Corrupted Basic Auth header")
		return "", &ErrMalformedCredentials{}
	}

	pwd, ok := b.presetPasswords[pair[0]]
	if !ok {
		b.logger.Warn("Unknown user", common.LogUserNameToken, pair[0])
		return "", &ErrUnknownUser{User: pair[0]}
	}

	if bcrypt.CompareHashAndPassword([]byte(pwd), []byte(pair[1])) != nil {
		b.logger.Warn("Wrong password", common.LogUserNameToken, pair[0])
		return "", &ErrWrongPassword{User: pair[0]}
	}

	b.logger.Debug("User authorized", common.LogUserNameToken, pair[0])
	return pair[0], nil
}

// Reads htpasswd file.
func (b *basicAuthProvider) readFile(name string) bool {
	bytes, err := ioutil.ReadFile(name)
	if err != nil {
		return false
	}

	lines := strings.Split(string(bytes), "\n")
	for _, v := range lines {
		v = strings.Trim(v, " \r")
		if 0 == len(v) {
			continue
		}

		parts := strings.Split(v, ":")
		if 2 != len(parts) {
			continue
		}

		b.presetPasswords[parts[0]] = parts[1]
	}

	return true
}
