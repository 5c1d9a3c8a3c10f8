// Package settings is responsible for parsing yaml-based configuration.
package settings

import (
	"bytes"
	"context"
	"io"

	"github.com/go-home-io/gluehome/plugins/common"
	"github.com/go-home-io/gluehome/providers"
	"github.com/go-home-io/gluehome/systems/config"
	"github.com/go-home-io/gluehome/systems/fanout"
	"github.com/go-home-io/gluehome/systems/glue"
	"github.com/go-home-io/gluehome/systems/logger"
	"github.com/go-home-io/gluehome/systems/metrics"
	"github.com/go-home-io/gluehome/systems/secret"
	"github.com/go-home-io/gluehome/systems/security"
	"github.com/go-home-io/gluehome/utils"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

const (
	// Logger system.
	logSystem = "settings"
)

// StartUpOptions defines arguments allowed by the system.
type StartUpOptions struct {
	Config   string `short:"c" long:"config" description:"Config file or folder. Defaults to ./configs."`
	Secrets  string `short:"s" long:"secrets" description:"Secrets file. Defaults to ./configs/_secrets.yaml."`
	Users    string `short:"u" long:"users" description:"API users htpasswd file. Defaults to ./configs/_users."`
	LogLevel string `short:"l" long:"log-level" description:"Overrides configured log level."`
}

// Load system configuration.
func Load(ctx context.Context, options *StartUpOptions) (providers.ISettingsProvider, error) {
	level := options.LogLevel
	if "" == level {
		level = "info"
	}

	bootLogger, err := logger.NewLoggerProvider(&logger.ConstructLogger{
		LoggerType: logger.TypeConsole,
		Level:      level,
	})
	if err != nil {
		return nil, err
	}

	s := &settingsProvider{
		logger:   bootLogger,
		settings: &providers.Settings{},
	}

	s.validator = utils.NewValidator(s.logger)
	s.secrets = secret.NewSecretProvider(&secret.ConstructSecret{
		Location: options.Secrets,
		Logger:   s.logger,
	})

	if err = s.loadFiles(options.Config); err != nil {
		return nil, err
	}

	if "" != options.LogLevel {
		s.settings.LogLevel = options.LogLevel
	}

	if err = s.validate(); err != nil {
		return nil, err
	}

	if err = s.loadLogger(); err != nil {
		return nil, err
	}

	s.cron = utils.NewCron()
	s.fanOut = fanout.NewFanOut()
	s.metrics = metrics.NewMetrics()
	s.security = security.NewSecurityProvider(&security.ConstructSecurityProvider{
		Logger:    s.PluginLogger("security"),
		Users:     s.settings.Server.Users,
		Roles:     s.settings.Server.Roles,
		UsersFile: options.Users,
	})

	key, err := s.resolveAPIKey(ctx)
	if err != nil {
		s.cron.Stop()
		s.fanOut.Stop()
		return nil, err
	}

	s.glue = glue.NewClient(&glue.ConstructClient{
		URL:     s.settings.Glue.URL,
		APIKey:  key,
		Timeout: s.settings.Glue.Timeout,
		Logger:  s.PluginLogger("glue"),
	})

	return s, nil
}

// Loads every config file into the settings.
// Later files and documents override earlier ones.
func (s *settingsProvider) loadFiles(location string) error {
	tpl := newTemplateProvider(&constructTemplate{
		Logger:  s.logger,
		Secrets: s.secrets,
	})

	dataChan := config.NewConfigProvider(&config.ConstructConfig{
		Location:     location,
		PluginLogger: s.logger,
	}).Load()
	if nil == dataChan {
		return &ErrNoConfig{Location: location}
	}

	var loadErr error
	for fileData := range dataChan {
		if loadErr != nil {
			continue
		}

		loadErr = s.loadFile(fileData, tpl)
	}

	return loadErr
}

// Processes single yaml file.
func (s *settingsProvider) loadFile(fileData []byte, tpl ITemplateProvider) error {
	fileData, err := tpl.Process(fileData)
	if err != nil {
		return err
	}

	decoder := yaml.NewDecoder(bytes.NewReader(fileData))
	for {
		err := decoder.Decode(s.settings)
		if err == io.EOF {
			return nil
		}

		if err != nil {
			return errors.Wrap(err, "failed to parse config file")
		}
	}
}

// Sets defaults and validates loaded settings.
func (s *settingsProvider) validate() error {
	if !s.validator.Validate(s.settings) {
		return &utils.ErrInvalidConfig{}
	}

	if s.settings.MQTT.Enabled && "" == s.settings.MQTT.Broker {
		return &utils.ErrInvalidConfig{Name: "mqtt broker is required"}
	}

	return nil
}

// Replaces boot logger with the configured one.
func (s *settingsProvider) loadLogger() error {
	log, err := logger.NewLoggerProvider(&logger.ConstructLogger{
		LoggerType: s.settings.Logger,
		Level:      s.settings.LogLevel,
	})
	if err != nil {
		return err
	}

	s.logger = log
	s.validator.SetLogger(s.PluginLogger("validator"))
	s.secrets.UpdateLogger(s.logger)
	return nil
}

// Returns configured API key or issues a new one.
// Issued key is persisted into the secrets store.
func (s *settingsProvider) resolveAPIKey(ctx context.Context) (string, error) {
	cfg := s.settings.Glue
	if "" != cfg.APIKey {
		return cfg.APIKey, nil
	}

	if key, err := s.secrets.Get(providers.SecretGlueAPIKey); err == nil && "" != key {
		return key, nil
	}

	username, password := cfg.Username, cfg.Password
	if "" == username {
		username, _ = s.secrets.Get(providers.SecretGlueUsername) // nolint: errcheck
	}

	if "" == password {
		password, _ = s.secrets.Get(providers.SecretGluePassword) // nolint: errcheck
	}

	if "" == username || "" == password {
		return "", &ErrNoCredentials{}
	}

	s.logger.Info("Issuing a new API key", common.LogSystemToken, logSystem, common.LogUserNameToken, username)
	key, err := glue.IssueAPIKey(ctx, cfg.URL, cfg.Timeout, username, password)
	if err != nil {
		return "", errors.Wrap(err, "failed to issue API key")
	}

	if err = s.secrets.Set(providers.SecretGlueAPIKey, key); err != nil {
		s.logger.Warn("Failed to persist issued API key", common.LogSystemToken, logSystem,
			common.LogSecretToken, providers.SecretGlueAPIKey)
	}

	return key, nil
}
