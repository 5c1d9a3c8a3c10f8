//+build !release

package mocks

import (
	"context"
	"sync"

	"github.com/go-home-io/gluehome/plugins/device"
	"github.com/go-home-io/gluehome/plugins/device/enums"
	"github.com/pkg/errors"
)

// FakeGlueAPI is a scripted remote lock service.
type FakeGlueAPI struct {
	sync.Mutex

	Locks map[string]*device.Lock
	// Snapshot returned on operation creation.
	Created *device.LockOperation
	// Snapshots returned by consecutive polls, last one repeats.
	Polls []*device.LockOperation

	CreateErr  error
	PollErr    error
	GetLockErr error
	ListErr    error

	// Called before GetLock returns, can block.
	// Non-nil error is returned to the caller.
	OnGetLock func(ctx context.Context) error

	CreateCalls  int
	PollCalls    int
	GetLockCalls int
	ListCalls    int
	CreatedTypes []enums.OperationType
}

// GetLocks returns all known locks.
func (f *FakeGlueAPI) GetLocks(ctx context.Context) ([]*device.Lock, error) {
	f.Lock()
	defer f.Unlock()

	f.ListCalls++
	if f.ListErr != nil {
		return nil, f.ListErr
	}

	locks := make([]*device.Lock, 0, len(f.Locks))
	for _, v := range f.Locks {
		c := *v
		locks = append(locks, &c)
	}

	return locks, nil
}

// GetLock returns a copy of the lock.
func (f *FakeGlueAPI) GetLock(ctx context.Context, lockID string) (*device.Lock, error) {
	f.Lock()
	f.GetLockCalls++
	hook := f.OnGetLock
	f.Unlock()

	if hook != nil {
		if err := hook(ctx); err != nil {
			return nil, err
		}
	}

	f.Lock()
	defer f.Unlock()

	if f.GetLockErr != nil {
		return nil, f.GetLockErr
	}

	l, ok := f.Locks[lockID]
	if !ok {
		return nil, errors.Errorf("lock %s is not found", lockID)
	}

	c := *l
	return &c, nil
}

// GetLockOperation returns next scripted poll result.
func (f *FakeGlueAPI) GetLockOperation(ctx context.Context, lockID string,
	operationID string) (*device.LockOperation, error) {
	f.Lock()
	defer f.Unlock()

	f.PollCalls++
	if f.PollErr != nil {
		return nil, f.PollErr
	}

	if 0 == len(f.Polls) {
		return nil, errors.New("no scripted polls")
	}

	idx := f.PollCalls - 1
	if idx >= len(f.Polls) {
		idx = len(f.Polls) - 1
	}

	c := *f.Polls[idx]
	return &c, nil
}

// CreateLockOperation returns scripted creation result.
func (f *FakeGlueAPI) CreateLockOperation(ctx context.Context, lockID string,
	op enums.OperationType) (*device.LockOperation, error) {
	f.Lock()
	defer f.Unlock()

	f.CreateCalls++
	f.CreatedTypes = append(f.CreatedTypes, op)
	if f.CreateErr != nil {
		return nil, f.CreateErr
	}

	if nil == f.Created {
		return nil, errors.New("no scripted operation")
	}

	c := *f.Created
	return &c, nil
}

// SetLock replaces lock snapshot.
func (f *FakeGlueAPI) SetLock(l *device.Lock) {
	f.Lock()
	defer f.Unlock()
	f.Locks[l.ID] = l
}

// RemoveLock removes lock from the service.
func (f *FakeGlueAPI) RemoveLock(id string) {
	f.Lock()
	defer f.Unlock()
	delete(f.Locks, id)
}

// Calls returns number of remote calls made.
func (f *FakeGlueAPI) Calls() (create int, poll int, getLock int) {
	f.Lock()
	defer f.Unlock()
	return f.CreateCalls, f.PollCalls, f.GetLockCalls
}

// FakeNewGlueAPI creates a fake remote service with provided locks.
func FakeNewGlueAPI(locks ...*device.Lock) *FakeGlueAPI {
	f := &FakeGlueAPI{
		Locks: make(map[string]*device.Lock),
	}

	for _, v := range locks {
		f.Locks[v.ID] = v
	}

	return f
}
