package settings

import (
	"github.com/go-home-io/gluehome/plugins/common"
	"github.com/go-home-io/gluehome/providers"
	"github.com/go-home-io/gluehome/systems/logger"
)

// System settings.
type settingsProvider struct {
	logger    common.ILoggerProvider
	cron      providers.ICronProvider
	validator providers.IValidatorProvider
	secrets   providers.IInternalSecret
	fanOut    providers.IInternalFanOutProvider
	glue      providers.IGlueAPIProvider
	security  providers.ISecurityProvider
	metrics   providers.IMetricsProvider

	settings *providers.Settings
}

// SystemLogger returns default system logger.
func (s *settingsProvider) SystemLogger() common.ILoggerProvider {
	return s.logger
}

// PluginLogger returns logger decorated with system name and extra fields.
func (s *settingsProvider) PluginLogger(system string, fields ...string) common.ILoggerProvider {
	return logger.NewPluginLogger(&logger.ConstructPluginLogger{
		SystemLogger: s.logger,
		System:       system,
		Fields:       fields,
	})
}

// Cron returns system's cron provider.
func (s *settingsProvider) Cron() providers.ICronProvider {
	return s.cron
}

// Validator returns yaml validator provider.
func (s *settingsProvider) Validator() providers.IValidatorProvider {
	return s.validator
}

// Secrets returns secrets store.
func (s *settingsProvider) Secrets() common.ISecretProvider {
	return s.secrets
}

// FanOut returns fan out channel.
func (s *settingsProvider) FanOut() providers.IInternalFanOutProvider {
	return s.fanOut
}

// GlueAPI returns remote lock service client.
func (s *settingsProvider) GlueAPI() providers.IGlueAPIProvider {
	return s.glue
}

// Metrics returns metrics collector.
func (s *settingsProvider) Metrics() providers.IMetricsProvider {
	return s.metrics
}

// Security returns a security provider.
func (s *settingsProvider) Security() providers.ISecurityProvider {
	return s.security
}

// Settings returns loaded configuration.
func (s *settingsProvider) Settings() *providers.Settings {
	return s.settings
}
