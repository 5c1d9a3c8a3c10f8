// Package fanout contains implementation of pub-sub fanout channels.
package fanout

import (
	"math/rand"
	"sync"

	"github.com/go-home-io/gluehome/plugins/common"
	"github.com/go-home-io/gluehome/providers"
	"github.com/go-home-io/gluehome/utils"
)

// SubscriberBuffer is the number of updates a subscriber can lag behind before it's disconnected.
const SubscriberBuffer = 100

// Implements IInternalFanOutProvider.
type provider struct {
	sync.Mutex

	inLockUpdates  chan *common.MsgLockUpdate
	outLockUpdates map[int64]chan *common.MsgLockUpdate

	stop     chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
}

// NewFanOut constructs new FanOut provider.
func NewFanOut() providers.IInternalFanOutProvider {
	p := &provider{
		inLockUpdates:  make(chan *common.MsgLockUpdate, 10),
		outLockUpdates: make(map[int64]chan *common.MsgLockUpdate),
		stop:           make(chan struct{}),
	}

	p.wg.Add(1)
	go p.internalCycle()
	return p
}

// SubscribeLockUpdates allows to subscribe to the lock updates.
func (p *provider) SubscribeLockUpdates() (int64, chan *common.MsgLockUpdate) {
	p.Lock()
	defer p.Unlock()

	c := make(chan *common.MsgLockUpdate, SubscriberBuffer)
	rnd := p.getID()
	for {
		if _, ok := p.outLockUpdates[rnd]; !ok {
			break
		}
		rnd = p.getID()
	}

	p.outLockUpdates[rnd] = c
	return rnd, c
}

// UnSubscribeLockUpdates allows to un-subscribe from the lock updates.
func (p *provider) UnSubscribeLockUpdates(id int64) {
	p.Lock()
	defer p.Unlock()

	c, ok := p.outLockUpdates[id]
	if !ok {
		return
	}

	close(c)
	delete(p.outLockUpdates, id)
}

// ChannelInLockUpdates returns input channel for the lock updates.
func (p *provider) ChannelInLockUpdates() chan *common.MsgLockUpdate {
	return p.inLockUpdates
}

// Stop terminates broadcasting and closes all subscriptions.
func (p *provider) Stop() {
	p.stopOnce.Do(func() {
		close(p.stop)
		p.wg.Wait()

		p.Lock()
		defer p.Unlock()
		for k, v := range p.outLockUpdates {
			close(v)
			delete(p.outLockUpdates, k)
		}
	})
}

// Returns random ID.
func (p *provider) getID() int64 {
	return utils.TimeNow() + rand.Int63()
}

// Delivers updates one by one, keeping the order they were sent in.
func (p *provider) internalCycle() {
	defer p.wg.Done()
	for {
		select {
		case <-p.stop:
			return
		case u := <-p.inLockUpdates:
			p.lockUpdates(u)
		}
	}
}

// Broadcasts lock updates.
// Subscriber which can't keep up is disconnected: a skipped update would leave it
// with a stale state, since only changed properties are published.
func (p *provider) lockUpdates(update *common.MsgLockUpdate) {
	p.Lock()
	defer p.Unlock()

	for k, v := range p.outLockUpdates {
		select {
		case v <- update:
		default:
			close(v)
			delete(p.outLockUpdates, k)
		}
	}
}
