package device

import (
	"time"

	"github.com/go-home-io/gluehome/plugins/device/enums"
)

// LockOperation is a snapshot of a remote lock/unlock command.
// Each poll yields a fresh snapshot.
type LockOperation struct {
	ID         string                `json:"id"`
	LockID     string                `json:"lockId,omitempty"`
	UserID     string                `json:"userId,omitempty"`
	Status     enums.OperationStatus `json:"status"`
	Reason     string                `json:"reason,omitempty"`
	ValidFrom  *time.Time            `json:"validFrom,omitempty"`
	ValidUntil *time.Time            `json:"validUntil,omitempty"`
}

// IsFinished checks whether operation reached a terminal status.
func (o *LockOperation) IsFinished() bool {
	return o.Status.IsTerminal()
}
