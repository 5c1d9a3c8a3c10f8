package fanout

import (
	"strconv"
	"testing"
	"time"

	"github.com/fortytw2/leaktest"
	"github.com/go-home-io/gluehome/plugins/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Waits for a message or fails.
func receive(t *testing.T, c chan *common.MsgLockUpdate) *common.MsgLockUpdate {
	select {
	case m, ok := <-c:
		require.True(t, ok, "channel closed")
		return m
	case <-time.After(time.Second):
		require.Fail(t, "no message")
	}

	return nil
}

// Checks that channel is closed.
func closed(c chan *common.MsgLockUpdate) bool {
	select {
	case _, ok := <-c:
		return !ok
	case <-time.After(time.Second):
		return false
	}
}

// Tests lock updates channels.
func TestLockUpdates(t *testing.T) {
	defer leaktest.Check(t)()

	fo := NewFanOut()
	defer fo.Stop()

	id1, c1 := fo.SubscribeLockUpdates()
	id2, c2 := fo.SubscribeLockUpdates()
	assert.NotEqual(t, id1, id2)

	fo.ChannelInLockUpdates() <- &common.MsgLockUpdate{ID: "l1"}
	assert.Equal(t, "l1", receive(t, c1).ID, "channel 1")
	assert.Equal(t, "l1", receive(t, c2).ID, "channel 2")

	fo.UnSubscribeLockUpdates(id1)
	assert.True(t, closed(c1), "exit channel 1")

	fo.ChannelInLockUpdates() <- &common.MsgLockUpdate{ID: "l2"}
	assert.Equal(t, "l2", receive(t, c2).ID, "unsubscribe channel 2")

	fo.UnSubscribeLockUpdates(id2)
	assert.True(t, closed(c2), "exit channel 2")

	fo.ChannelInLockUpdates() <- &common.MsgLockUpdate{ID: "l3"}
	fo.UnSubscribeLockUpdates(id2)
}

// Tests that stop closes remaining subscriptions.
func TestStop(t *testing.T) {
	defer leaktest.Check(t)()

	fo := NewFanOut()
	_, c := fo.SubscribeLockUpdates()

	fo.Stop()
	assert.True(t, closed(c))
	fo.Stop()
}

// Tests that updates are delivered in the order they were sent.
func TestLockUpdatesOrder(t *testing.T) {
	defer leaktest.Check(t)()

	fo := NewFanOut()
	defer fo.Stop()

	_, c := fo.SubscribeLockUpdates()
	total := 2000
	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < total; i++ {
			fo.ChannelInLockUpdates() <- &common.MsgLockUpdate{ID: "l1", Name: strconv.Itoa(i)}
		}
	}()

	for i := 0; i < total; i++ {
		require.Equal(t, strconv.Itoa(i), receive(t, c).Name, "update %d", i)
	}
	<-done
}

// Tests that a stalled subscriber is disconnected and doesn't block others.
func TestSlowSubscriber(t *testing.T) {
	defer leaktest.Check(t)()

	fo := NewFanOut()
	defer fo.Stop()

	slowID, slow := fo.SubscribeLockUpdates()
	_, fast := fo.SubscribeLockUpdates()

	for i := 0; i <= SubscriberBuffer; i++ {
		fo.ChannelInLockUpdates() <- &common.MsgLockUpdate{ID: "l1", Name: strconv.Itoa(i)}
		assert.Equal(t, strconv.Itoa(i), receive(t, fast).Name)
	}

	for i := 0; i < SubscriberBuffer; i++ {
		m, ok := <-slow
		require.True(t, ok)
		assert.Equal(t, strconv.Itoa(i), m.Name)
	}
	assert.True(t, closed(slow), "slow subscriber is disconnected")

	fo.UnSubscribeLockUpdates(slowID)
	fo.ChannelInLockUpdates() <- &common.MsgLockUpdate{ID: "l2"}
	assert.Equal(t, "l2", receive(t, fast).ID)
}
