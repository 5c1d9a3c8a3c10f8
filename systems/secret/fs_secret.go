package secret

import (
	"fmt"
	"io/ioutil"
	"os"
	"sync"

	"github.com/go-home-io/gluehome/plugins/common"
	"github.com/go-home-io/gluehome/plugins/secret"
	"github.com/go-home-io/gluehome/utils"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

// File system secrets store.
type fsSecret struct {
	sync.Mutex
	location string
	logger   common.ILoggerProvider
}

// DefaultLocation returns default secrets file.
func DefaultLocation() string {
	return fmt.Sprintf("%s/_secrets.yaml", utils.GetDefaultConfigsDir())
}

// Init sets secrets file.
func (s *fsSecret) Init(data *secret.InitDataSecret) error {
	s.location = data.Location
	if "" == s.location {
		s.location = DefaultLocation()
	}

	s.logger = data.Logger
	return nil
}

// Get reads secret from the file.
func (s *fsSecret) Get(name string) (string, error) {
	s.Lock()
	defer s.Unlock()

	sec, err := s.load()
	if err != nil {
		return "", err
	}

	value, ok := sec[name]
	if !ok {
		return "", errors.Errorf("secret %s is not found", name)
	}

	return value, nil
}

// Set saves secret into the file.
// File directory must exist.
func (s *fsSecret) Set(name string, data string) error {
	s.Lock()
	defer s.Unlock()

	sec, err := s.load()
	if err != nil {
		return err
	}

	sec[name] = data
	out, err := yaml.Marshal(sec)
	if err != nil {
		return errors.Wrap(err, "failed to marshal secrets")
	}

	if err := ioutil.WriteFile(s.location, out, 0600); err != nil {
		return errors.Wrap(err, "failed to save secrets")
	}

	s.logger.Debug("Secrets file updated", common.LogFileToken, s.location)
	return nil
}

// UpdateLogger replaces logger.
func (s *fsSecret) UpdateLogger(provider common.ILoggerProvider) {
	s.Lock()
	defer s.Unlock()
	s.logger = provider
}

// Reads the whole file, missing file is an empty store.
func (s *fsSecret) load() (map[string]string, error) {
	sec := make(map[string]string)
	data, err := ioutil.ReadFile(s.location)
	if err != nil {
		if os.IsNotExist(err) {
			return sec, nil
		}

		return nil, errors.Wrap(err, "failed to read secrets")
	}

	if err := yaml.Unmarshal(data, &sec); err != nil {
		return nil, errors.Wrap(err, "failed to parse secrets")
	}

	return sec, nil
}
