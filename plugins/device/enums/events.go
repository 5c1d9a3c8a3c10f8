package enums

// EventType describes enum with events reported by a lock.
type EventType string

const (
	// EventUnknown describes event which lock could not classify.
	EventUnknown EventType = "unknown"
	// EventLocalLock describes lock secured from the keypad or app over bluetooth.
	EventLocalLock EventType = "localLock"
	// EventLocalUnlock describes lock opened from the keypad or app over bluetooth.
	EventLocalUnlock EventType = "localUnlock"
	// EventRemoteLock describes lock secured through the cloud.
	EventRemoteLock EventType = "remoteLock"
	// EventRemoteUnlock describes lock opened through the cloud.
	EventRemoteUnlock EventType = "remoteUnlock"
	// EventPressAndGo describes lock secured with a single button press.
	EventPressAndGo EventType = "pressAndGo"
	// EventManualUnlock describes lock opened by hand.
	EventManualUnlock EventType = "manualUnlock"
	// EventManualLock describes lock secured by hand.
	EventManualLock EventType = "manualLock"
)

// KnownEventTypes contains every event type of the supported protocol.
var KnownEventTypes = []EventType{
	EventUnknown,
	EventLocalLock,
	EventLocalUnlock,
	EventRemoteLock,
	EventRemoteUnlock,
	EventPressAndGo,
	EventManualUnlock,
	EventManualLock,
}

// String returns raw event type.
func (i EventType) String() string {
	return string(i)
}
