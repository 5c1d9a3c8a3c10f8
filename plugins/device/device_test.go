package device

import (
	"testing"
	"time"

	"github.com/go-home-io/gluehome/plugins/device/enums"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Tests that every event, including unrecognized ones, has a state.
func TestTranslateEvent(t *testing.T) {
	data := []struct {
		in  enums.EventType
		out enums.LockState
	}{
		{in: enums.EventPressAndGo, out: enums.LockSecured},
		{in: enums.EventLocalLock, out: enums.LockSecured},
		{in: enums.EventManualLock, out: enums.LockSecured},
		{in: enums.EventRemoteLock, out: enums.LockSecured},
		{in: enums.EventLocalUnlock, out: enums.LockUnsecured},
		{in: enums.EventManualUnlock, out: enums.LockUnsecured},
		{in: enums.EventRemoteUnlock, out: enums.LockUnsecured},
		{in: enums.EventUnknown, out: enums.LockUnknown},
		{in: "", out: enums.LockUnknown},
		{in: "autoLock", out: enums.LockUnknown},
	}

	for _, v := range data {
		assert.Equal(t, v.out, TranslateEvent(v.in), v.in.String())
	}
}

// Tests that mapping covers all known events.
func TestEventStatesComplete(t *testing.T) {
	assert.NoError(t, validateEventStates(enums.KnownEventTypes, eventStates))
	assert.Error(t, validateEventStates([]enums.EventType{"newEvent"}, eventStates))
}

// Tests command to event and state to command conversions.
func TestCommandConversions(t *testing.T) {
	assert.Equal(t, enums.EventRemoteUnlock, EventForCommand(enums.OpUnlock))
	assert.Equal(t, enums.EventRemoteLock, EventForCommand(enums.OpLock))
	assert.Equal(t, enums.EventUnknown, EventForCommand("open"))

	op, ok := CommandForState(enums.LockSecured)
	assert.True(t, ok)
	assert.Equal(t, enums.OpLock, op)

	op, ok = CommandForState(enums.LockUnsecured)
	assert.True(t, ok)
	assert.Equal(t, enums.OpUnlock, op)

	_, ok = CommandForState(enums.LockUnknown)
	assert.False(t, ok)

	for _, v := range []enums.OperationType{enums.OpLock, enums.OpUnlock} {
		st := TranslateEvent(EventForCommand(v))
		back, ok := CommandForState(st)
		require.True(t, ok, v.String())
		assert.Equal(t, v, back)
	}
}

// Tests battery normalization and low threshold.
func TestBattery(t *testing.T) {
	data := []struct {
		raw   int
		level uint8
		low   bool
	}{
		{raw: -5, level: 0, low: true},
		{raw: 0, level: 0, low: true},
		{raw: 49, level: 19, low: true},
		{raw: 50, level: 19, low: false},
		{raw: 128, level: 50, low: false},
		{raw: 255, level: 100, low: false},
		{raw: 300, level: 100, low: false},
	}

	for _, v := range data {
		l := &Lock{BatteryStatus: v.raw}
		assert.Equal(t, v.level, l.BatteryLevel(), "%d", v.raw)
		assert.Equal(t, v.low, l.IsBatteryLow(), "%d", v.raw)
		assert.True(t, l.BatteryLevel() <= 100)
	}
}

// Tests lock model and connectivity.
func TestLockInfo(t *testing.T) {
	l := &Lock{SerialNumber: "GL2X1234", ConnectionStatus: enums.ConnConnected}
	assert.Equal(t, "GL2X", l.Model())
	assert.True(t, l.IsConnected())

	l = &Lock{SerialNumber: "GL", ConnectionStatus: enums.ConnBusy}
	assert.Equal(t, "GL", l.Model())
	assert.False(t, l.IsConnected())
}

// Tests that last event replacement does not mutate original snapshot.
func TestWithLastEvent(t *testing.T) {
	l := &Lock{ID: "1"}
	st, ok := l.CurrentState()
	assert.False(t, ok)
	assert.Equal(t, enums.LockUnknown, st)

	now := time.Now()
	n := l.WithLastEvent(enums.EventRemoteUnlock, now)
	assert.Nil(t, l.LastLockEvent)
	require.NotNil(t, n.LastLockEvent)
	assert.Equal(t, now, n.LastLockEvent.Date)

	st, ok = n.CurrentState()
	assert.True(t, ok)
	assert.Equal(t, enums.LockUnsecured, st)
}

// Tests operation finished state.
func TestOperationFinished(t *testing.T) {
	data := map[enums.OperationStatus]bool{
		enums.OpStatusPending:   false,
		enums.OpStatusCompleted: true,
		enums.OpStatusTimeout:   true,
		enums.OpStatusFailed:    true,
	}

	for k, v := range data {
		op := &LockOperation{Status: k}
		assert.Equal(t, v, op.IsFinished(), k.String())
	}
}
