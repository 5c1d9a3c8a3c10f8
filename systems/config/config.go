// Package config loads raw configuration files.
package config

import (
	"github.com/go-home-io/gluehome/plugins/common"
	"github.com/go-home-io/gluehome/plugins/config"
	"github.com/go-home-io/gluehome/systems/logger"
)

const (
	// Logger system.
	logSystem = "config"
)

// IConfigProvider provides capabilities for loading system configuration.
type IConfigProvider interface {
	Load() chan []byte
}

// Implements config provider wrapper.
type provider struct {
	Config config.IConfig
}

// ConstructConfig contains data required for a new config provider.
type ConstructConfig struct {
	Location     string
	PluginLogger common.ILoggerProvider
}

// NewConfigProvider constructs a new file system config provider.
func NewConfigProvider(ctor *ConstructConfig) IConfigProvider {
	configLogger := logger.NewPluginLogger(&logger.ConstructPluginLogger{
		SystemLogger: ctor.PluginLogger,
		Provider:     "fs",
		System:       logSystem,
	})

	cfg := &fsConfig{}
	cfg.Init(&config.InitDataConfig{ // nolint: gosec, errcheck
		Location: ctor.Location,
		Logger:   configLogger,
	})

	return &provider{
		Config: cfg,
	}
}

// Load returns channel with content of every config file.
func (p *provider) Load() chan []byte {
	return p.Config.Load()
}
