// Package lock contains per-lock command lifecycle and state reconciliation.
package lock

import (
	"sync"
	"sync/atomic"

	"github.com/go-home-io/gluehome/plugins/common"
	"github.com/go-home-io/gluehome/plugins/device"
	"github.com/go-home-io/gluehome/plugins/device/enums"
	"github.com/go-home-io/gluehome/providers"
)

// LogSystem is logger system of per-lock components.
const LogSystem = "lock"

// Device holds the current snapshot of a single lock.
// Snapshot is replaced atomically, last write wins.
type Device struct {
	id     string
	fanOut providers.IInternalFanOutProvider
	logger common.ILoggerProvider

	snapshot atomic.Pointer[device.Lock]

	sync.Mutex
	published map[enums.Property]interface{}
	state     enums.LockState
}

// NewDevice constructs a new holder.
// Publishing is enabled only if fan-out is provided.
func NewDevice(l *device.Lock, fanOut providers.IInternalFanOutProvider, logger common.ILoggerProvider) *Device {
	d := &Device{
		id:        l.ID,
		fanOut:    fanOut,
		logger:    logger,
		published: make(map[enums.Property]interface{}),
		state:     enums.LockUnknown,
	}

	d.snapshot.Store(l)
	return d
}

// ID returns lock id.
func (d *Device) ID() string {
	return d.id
}

// Snapshot returns the current lock snapshot.
func (d *Device) Snapshot() *device.Lock {
	return d.snapshot.Load()
}

// State returns the last known canonical state.
// Snapshots without an event don't change it.
func (d *Device) State() enums.LockState {
	d.Lock()
	defer d.Unlock()
	return d.state
}

// Replace stores a new snapshot and publishes changed properties.
func (d *Device) Replace(l *device.Lock) {
	d.snapshot.Store(l)
	d.publish(l)
}

// Publish sends full current state.
func (d *Device) Publish() {
	d.publish(d.Snapshot())
}

// Computes properties of the snapshot.
func (d *Device) properties(l *device.Lock) map[enums.Property]interface{} {
	props := map[enums.Property]interface{}{
		enums.PropName:         l.Description,
		enums.PropBatteryLevel: l.BatteryLevel(),
		enums.PropBatteryLow:   l.IsBatteryLow(),
		enums.PropConnection:   l.ConnectionStatus,
	}

	if state, ok := l.CurrentState(); ok {
		props[enums.PropLockState] = state
	}

	return props
}

// Publishes properties which differ from the previously published ones.
func (d *Device) publish(l *device.Lock) {
	d.Lock()
	defer d.Unlock()

	firstSeen := 0 == len(d.published)
	changes := make(map[enums.Property]interface{})
	for k, v := range d.properties(l) {
		old, ok := d.published[k]
		if ok && old == v {
			continue
		}

		changes[k] = v
		d.published[k] = v
		d.logger.Debug("Lock property changed", common.LogDevicePropertyToken, k.String())
	}

	if state, ok := changes[enums.PropLockState]; ok {
		d.state = state.(enums.LockState)
	}

	if 0 == len(changes) || nil == d.fanOut {
		return
	}

	d.fanOut.ChannelInLockUpdates() <- &common.MsgLockUpdate{
		ID:        d.id,
		Name:      l.Description,
		State:     changes,
		FirstSeen: firstSeen,
	}
}
