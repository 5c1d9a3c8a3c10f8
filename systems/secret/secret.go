// Package secret contains secrets store provider.
package secret

import (
	"github.com/go-home-io/gluehome/plugins/common"
	"github.com/go-home-io/gluehome/plugins/secret"
	"github.com/go-home-io/gluehome/providers"
)

const (
	// Secret logs system value.
	logSystem = "secret"
)

// Secrets store wrapper implementation.
type provider struct {
	Secret secret.ISecret

	logger common.ILoggerProvider
}

// ConstructSecret has data required for a new secrets provider.
type ConstructSecret struct {
	Location string
	Logger   common.ILoggerProvider
}

// NewSecretProvider constructs a new file system secrets store provider.
func NewSecretProvider(ctor *ConstructSecret) providers.IInternalSecret {
	s := &fsSecret{}
	s.Init(&secret.InitDataSecret{ // nolint: errcheck
		Location: ctor.Location,
		Logger:   ctor.Logger,
	})

	ctor.Logger.Debug("Using File System secret", common.LogSystemToken, logSystem, common.LogFileToken, s.location)
	return &provider{
		Secret: s,
		logger: ctor.Logger,
	}
}

// Get returns secret value or throws an error if it wasn't found.
func (s *provider) Get(name string) (string, error) {
	s.logger.Debug("Requesting secret", common.LogSecretToken, name, common.LogSystemToken, logSystem)
	value, err := s.Secret.Get(name)
	if err != nil {
		s.logger.Warn("Can't find requested secret", common.LogSecretToken, name, common.LogSystemToken, logSystem)
		return "", err
	}

	return value, nil
}

// Set saves a new secret or updates existing one.
func (s *provider) Set(name string, data string) error {
	s.logger.Debug("Setting a new secret", common.LogSecretToken, name, common.LogSystemToken, logSystem)
	err := s.Secret.Set(name, data)

	if err != nil {
		s.logger.Error("Failed to add a new secret", err, common.LogSecretToken, name, common.LogSystemToken, logSystem)
		return err
	}
	return nil
}

// UpdateLogger updates a secret's provider logger.
// Since this component loads before main logger, we need to update it.
func (s *provider) UpdateLogger(provider common.ILoggerProvider) {
	s.logger = provider
	s.Secret.UpdateLogger(provider)
}
