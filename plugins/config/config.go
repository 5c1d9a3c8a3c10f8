// Package config contains configuration source definitions.
package config

import (
	"path/filepath"

	"github.com/go-home-io/gluehome/plugins/common"
)

// IConfig defines configuration source interface.
type IConfig interface {
	Init(*InitDataConfig) error
	Load() chan []byte
}

// InitDataConfig has data required for initializing configuration source.
type InitDataConfig struct {
	// Location is a yaml file or a folder with yaml files, defaults to configs folder.
	Location string
	Logger   common.ILoggerProvider
}

// IsValidConfigFileName checks whether config file name is valid.
// Files starting with underscore hold secrets and users.
func IsValidConfigFileName(name string) bool {
	name = filepath.Base(name)

	if name[0] == '_' {
		return false
	}

	name = filepath.Ext(name)
	return name == ".yaml" || name == ".yml"
}
