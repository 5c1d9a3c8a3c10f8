// Package device contains lock snapshots reported by the remote service.
package device

import (
	"time"

	"github.com/go-home-io/gluehome/plugins/device/enums"
)

// Manufacturer is reported to the host as accessory information.
const Manufacturer = "GlueHome"

// LockEvent describes the last event lock reported.
type LockEvent struct {
	EventType enums.EventType `json:"eventType"`
	Date      time.Time       `json:"lastLockEventDate"`
}
