package providers

import (
	"context"

	"github.com/go-home-io/gluehome/plugins/device"
	"github.com/go-home-io/gluehome/plugins/device/enums"
)

// IGlueAPIProvider defines remote lock service API.
// Implementation must be safe for concurrent use by all locks.
type IGlueAPIProvider interface {
	GetLocks(ctx context.Context) ([]*device.Lock, error)
	GetLock(ctx context.Context, lockID string) (*device.Lock, error)
	GetLockOperation(ctx context.Context, lockID string, operationID string) (*device.LockOperation, error)
	CreateLockOperation(ctx context.Context, lockID string, op enums.OperationType) (*device.LockOperation, error)
}
