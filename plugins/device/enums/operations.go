package enums

// OperationType describes enum with remote commands.
type OperationType string

const (
	// OpLock describes lock command.
	OpLock OperationType = "lock"
	// OpUnlock describes unlock command.
	OpUnlock OperationType = "unlock"
)

// String returns raw operation type.
func (i OperationType) String() string {
	return string(i)
}

// OperationStatus describes remote operation status.
// Pending is the only non-terminal status.
type OperationStatus string

const (
	// OpStatusPending describes operation which is still executing.
	OpStatusPending OperationStatus = "pending"
	// OpStatusCompleted describes successfully executed operation.
	OpStatusCompleted OperationStatus = "completed"
	// OpStatusTimeout describes operation which lock did not acknowledge in time.
	OpStatusTimeout OperationStatus = "timeout"
	// OpStatusFailed describes operation rejected by the lock.
	OpStatusFailed OperationStatus = "failed"
)

// String returns raw operation status.
func (i OperationStatus) String() string {
	return string(i)
}

// IsTerminal checks whether status won't change anymore.
func (i OperationStatus) IsTerminal() bool {
	return i != OpStatusPending
}

// ConnectionStatus describes lock connectivity.
type ConnectionStatus string

const (
	// ConnOffline describes lock which is not reachable at all.
	ConnOffline ConnectionStatus = "offline"
	// ConnDisconnected describes lock which lost connection to its bridge.
	ConnDisconnected ConnectionStatus = "disconnected"
	// ConnConnected describes lock which accepts commands.
	ConnConnected ConnectionStatus = "connected"
	// ConnBusy describes lock which is executing another command.
	ConnBusy ConnectionStatus = "busy"
)

// String returns raw connection status.
func (i ConnectionStatus) String() string {
	return string(i)
}
