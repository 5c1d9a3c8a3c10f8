// Package common contains data shared by all gluehome systems.
package common

import (
	"github.com/go-home-io/gluehome/plugins/device/enums"
)

// ISecretProvider defines secrets provider which is shared between all systems.
type ISecretProvider interface {
	Get(string) (string, error)
	Set(name string, data string) error
}

// ILoggerProvider defines logger provider which will be passed to every system.
type ILoggerProvider interface {
	Debug(msg string, fields ...string)
	Info(msg string, fields ...string)
	Warn(msg string, fields ...string)
	Error(msg string, err error, fields ...string)
	Fatal(msg string, err error, fields ...string)
}

// MsgLockUpdate contains changed properties of a single lock.
// Only attributes which differ from the previously published state are present.
type MsgLockUpdate struct {
	ID        string
	Name      string
	State     map[enums.Property]interface{}
	FirstSeen bool
}

// IFanOutProvider defines interface used for distributing
// lock updates across all subscribers.
type IFanOutProvider interface {
	SubscribeLockUpdates() (int64, chan *MsgLockUpdate)
	UnSubscribeLockUpdates(int64)
}
