package lock

import (
	"context"
	"time"

	"github.com/go-home-io/gluehome/mocks"
	"github.com/go-home-io/gluehome/plugins/device"
	"github.com/go-home-io/gluehome/plugins/device/enums"
)

var lockEventDate = time.Date(2020, 1, 2, 3, 4, 5, 0, time.UTC)

// Returns connected lock which was locked manually.
func getLock(event enums.EventType) *device.Lock {
	l := &device.Lock{
		ID:               "l1",
		SerialNumber:     "2011-0001",
		Description:      "Front door",
		FirmwareVersion:  "1.2.3",
		BatteryStatus:    200,
		ConnectionStatus: enums.ConnConnected,
	}

	if "" != event {
		l.LastLockEvent = &device.LockEvent{EventType: event, Date: lockEventDate}
	}

	return l
}

// Returns operation snapshot.
func getOperation(status enums.OperationStatus) *device.LockOperation {
	return &device.LockOperation{ID: "op1", LockID: "l1", Status: status}
}

// Records every requested pause.
type fakeSleeper struct {
	calls []time.Duration
	hook  func()
}

func (f *fakeSleeper) sleep(ctx context.Context, d time.Duration) error {
	f.calls = append(f.calls, d)
	if f.hook != nil {
		f.hook()
	}
	return ctx.Err()
}

func (f *fakeSleeper) total() time.Duration {
	var t time.Duration
	for _, v := range f.calls {
		t += v
	}
	return t
}

// Test environment of a single lock.
type testLock struct {
	api     *mocks.FakeGlueAPI
	fanOut  *mocks.FakeFanOut
	cron    *mocks.FakeCron
	device  *Device
	sleeper *fakeSleeper
}

func newTestLock(l *device.Lock) *testLock {
	t := &testLock{
		api:     mocks.FakeNewGlueAPI(l),
		fanOut:  mocks.FakeNewFanOut(),
		cron:    mocks.FakeNewCron(),
		sleeper: &fakeSleeper{},
	}

	c := *l
	t.device = NewDevice(&c, t.fanOut, mocks.FakeNewLogger(nil))
	t.device.Publish()
	t.fanOut.Drain()
	return t
}
