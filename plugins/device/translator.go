package device

import (
	"fmt"

	"github.com/go-home-io/gluehome/plugins/device/enums"
)

// Maps every known event into a canonical state.
var eventStates = map[enums.EventType]enums.LockState{
	enums.EventUnknown:      enums.LockUnknown,
	enums.EventPressAndGo:   enums.LockSecured,
	enums.EventLocalLock:    enums.LockSecured,
	enums.EventManualLock:   enums.LockSecured,
	enums.EventRemoteLock:   enums.LockSecured,
	enums.EventLocalUnlock:  enums.LockUnsecured,
	enums.EventManualUnlock: enums.LockUnsecured,
	enums.EventRemoteUnlock: enums.LockUnsecured,
}

// Maps issued command into the event lock reports after completing it.
var commandEvents = map[enums.OperationType]enums.EventType{
	enums.OpLock:   enums.EventRemoteLock,
	enums.OpUnlock: enums.EventRemoteUnlock,
}

func init() {
	if err := validateEventStates(enums.KnownEventTypes, eventStates); err != nil {
		panic(err)
	}
}

// Checks that mapping covers every known event.
func validateEventStates(known []enums.EventType, states map[enums.EventType]enums.LockState) error {
	for _, v := range known {
		if _, ok := states[v]; !ok {
			return fmt.Errorf("event %s has no lock state", v)
		}
	}

	return nil
}

// TranslateEvent maps lock event into a canonical state.
// Unrecognized events are unknown.
func TranslateEvent(eventType enums.EventType) enums.LockState {
	state, ok := eventStates[eventType]
	if !ok {
		return enums.LockUnknown
	}

	return state
}

// EventForCommand returns event which corresponds to a completed command.
func EventForCommand(op enums.OperationType) enums.EventType {
	ev, ok := commandEvents[op]
	if !ok {
		return enums.EventUnknown
	}

	return ev
}

// CommandForState returns command which moves lock into the requested state.
func CommandForState(state enums.LockState) (enums.OperationType, bool) {
	switch state {
	case enums.LockSecured:
		return enums.OpLock, true
	case enums.LockUnsecured:
		return enums.OpUnlock, true
	default:
		return "", false
	}
}
