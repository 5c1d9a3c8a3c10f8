//+build !release

package mocks

import (
	"time"

	"github.com/go-home-io/gluehome/plugins/common"
	"github.com/go-home-io/gluehome/providers"
)

// FakeSettings is a settings provider assembled from fakes.
type FakeSettings struct {
	Logger   common.ILoggerProvider
	CronProv providers.ICronProvider
	Fan      providers.IInternalFanOutProvider
	API      providers.IGlueAPIProvider
	Sec      providers.ISecurityProvider
	Metr     *FakeMetrics
	Secret   common.ISecretProvider
	Config   *providers.Settings
}

// SystemLogger returns fake logger.
func (f *FakeSettings) SystemLogger() common.ILoggerProvider {
	return f.Logger
}

// PluginLogger returns the same fake logger.
func (f *FakeSettings) PluginLogger(string, ...string) common.ILoggerProvider {
	return f.Logger
}

// Cron returns fake cron.
func (f *FakeSettings) Cron() providers.ICronProvider {
	return f.CronProv
}

// Validator returns always succeeding validator.
func (f *FakeSettings) Validator() providers.IValidatorProvider {
	return FakeNewValidator(true)
}

// Secrets returns fake secrets store.
func (f *FakeSettings) Secrets() common.ISecretProvider {
	return f.Secret
}

// FanOut returns fake fan-out.
func (f *FakeSettings) FanOut() providers.IInternalFanOutProvider {
	return f.Fan
}

// GlueAPI returns fake remote API.
func (f *FakeSettings) GlueAPI() providers.IGlueAPIProvider {
	return f.API
}

// Security returns security provider.
func (f *FakeSettings) Security() providers.ISecurityProvider {
	return f.Sec
}

// Metrics returns fake metrics.
func (f *FakeSettings) Metrics() providers.IMetricsProvider {
	return f.Metr
}

// Settings returns loaded settings.
func (f *FakeSettings) Settings() *providers.Settings {
	return f.Config
}

// FakeNewSettingsData returns settings with default values.
func FakeNewSettingsData() *providers.Settings {
	return &providers.Settings{
		Logger:   "console",
		LogLevel: "debug",
		Glue: providers.GlueSettings{
			URL:     "https://user-api.gluehome.com",
			Timeout: 60 * time.Second,
		},
		Poll: providers.PollSettings{
			Attempts: 5,
			Interval: 2 * time.Second,
		},
		Refresh: providers.RefreshSettings{
			Interval:  10 * time.Second,
			Discovery: time.Minute,
		},
		Server: providers.ServerSettings{
			Port:           8000,
			IdempotencyTTL: 5 * time.Minute,
		},
	}
}

// FakeNewSettings creates a new fake settings provider.
func FakeNewSettings(api providers.IGlueAPIProvider, logCallback func(string)) *FakeSettings {
	return &FakeSettings{
		Logger:   FakeNewLogger(logCallback),
		CronProv: FakeNewCron(),
		Fan:      FakeNewFanOut(),
		API:      api,
		Sec:      FakeNewSecurity(false, nil, nil),
		Metr:     FakeNewMetrics(),
		Secret:   FakeNewSecretStore(nil, false),
		Config:   FakeNewSettingsData(),
	}
}
