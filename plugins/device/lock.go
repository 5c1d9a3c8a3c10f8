package device

import (
	"time"

	"github.com/go-home-io/gluehome/plugins/device/enums"
)

const (
	// MaxRawBattery is the top of the raw battery scale reported by the lock.
	MaxRawBattery = 255
	// RawLowBatteryThreshold is the raw battery value below which battery is low.
	RawLowBatteryThreshold = 50
	// Number of serial number characters which form the lock model.
	modelPrefixLen = 4
)

// Lock is an immutable snapshot of a single lock.
// Snapshots are replaced wholesale, never patched.
type Lock struct {
	ID               string                 `json:"id"`
	SerialNumber     string                 `json:"serialNumber"`
	Description      string                 `json:"description"`
	FirmwareVersion  string                 `json:"firmwareVersion"`
	BatteryStatus    int                    `json:"batteryStatus"`
	ConnectionStatus enums.ConnectionStatus `json:"connectionStatus"`
	LastLockEvent    *LockEvent             `json:"lastLockEvent,omitempty"`
	HubID            string                 `json:"hubId,omitempty"`
}

// Model returns lock model which is encoded in the serial number.
func (l *Lock) Model() string {
	if len(l.SerialNumber) < modelPrefixLen {
		return l.SerialNumber
	}

	return l.SerialNumber[:modelPrefixLen]
}

// BatteryLevel returns battery level normalized to 0-100.
func (l *Lock) BatteryLevel() uint8 {
	raw := l.BatteryStatus
	if raw <= 0 {
		return 0
	}

	if raw >= MaxRawBattery {
		return 100
	}

	return uint8(raw * 100 / MaxRawBattery)
}

// IsBatteryLow checks raw battery value against the low threshold.
func (l *Lock) IsBatteryLow() bool {
	return l.BatteryStatus < RawLowBatteryThreshold
}

// IsConnected checks whether lock accepts remote commands.
func (l *Lock) IsConnected() bool {
	return l.ConnectionStatus == enums.ConnConnected
}

// CurrentState returns canonical state derived from the last event.
// Second value is false if lock has not reported any event.
func (l *Lock) CurrentState() (enums.LockState, bool) {
	if nil == l.LastLockEvent {
		return enums.LockUnknown, false
	}

	return TranslateEvent(l.LastLockEvent.EventType), true
}

// WithLastEvent returns a copy of the snapshot with replaced last event.
func (l *Lock) WithLastEvent(eventType enums.EventType, at time.Time) *Lock {
	c := *l
	c.LastLockEvent = &LockEvent{
		EventType: eventType,
		Date:      at,
	}

	return &c
}
