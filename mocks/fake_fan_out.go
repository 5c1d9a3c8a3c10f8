//+build !release

package mocks

import (
	"github.com/go-home-io/gluehome/plugins/common"
)

// FakeFanOut is a single channel fan-out.
type FakeFanOut struct {
	updates chan *common.MsgLockUpdate
}

// SubscribeLockUpdates returns the only channel.
func (f *FakeFanOut) SubscribeLockUpdates() (int64, chan *common.MsgLockUpdate) {
	return 1, f.updates
}

// UnSubscribeLockUpdates does nothing.
func (f *FakeFanOut) UnSubscribeLockUpdates(int64) {
}

// ChannelInLockUpdates returns the only channel.
func (f *FakeFanOut) ChannelInLockUpdates() chan *common.MsgLockUpdate {
	return f.updates
}

// Stop does nothing.
func (f *FakeFanOut) Stop() {
}

// Drain returns all published messages without blocking.
func (f *FakeFanOut) Drain() []*common.MsgLockUpdate {
	msgs := make([]*common.MsgLockUpdate, 0)
	for {
		select {
		case m := <-f.updates:
			msgs = append(msgs, m)
		default:
			return msgs
		}
	}
}

// FakeNewFanOut creates a fake fan-out provider.
func FakeNewFanOut() *FakeFanOut {
	return &FakeFanOut{
		updates: make(chan *common.MsgLockUpdate, 100),
	}
}
