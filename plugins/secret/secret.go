// Package secret contains secrets store definitions.
package secret

import (
	"github.com/go-home-io/gluehome/plugins/common"
)

// ISecret defines secrets store backend interface.
type ISecret interface {
	common.ISecretProvider
	Init(*InitDataSecret) error
	UpdateLogger(common.ILoggerProvider)
}

// InitDataSecret has data required for initializing of a new secret store.
type InitDataSecret struct {
	// Location is a secrets file, defaults to configs/_secrets.yaml.
	Location string
	Logger   common.ILoggerProvider
}
