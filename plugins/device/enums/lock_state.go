package enums

import (
	"fmt"
	"strings"
)

// LockState describes canonical lock state, independent of any host encoding.
type LockState int

const (
	// LockUnknown describes lock with unknown state.
	LockUnknown LockState = iota
	// LockSecured describes locked lock.
	LockSecured
	// LockUnsecured describes unlocked lock.
	LockUnsecured
)

var lockStateNames = map[LockState]string{
	LockUnknown:   "unknown",
	LockSecured:   "secured",
	LockUnsecured: "unsecured",
}

// String returns lower-case representation of the state.
func (i LockState) String() string {
	name, ok := lockStateNames[i]
	if !ok {
		return lockStateNames[LockUnknown]
	}

	return name
}

// MarshalText allows to send state as a JSON string.
func (i LockState) MarshalText() ([]byte, error) {
	return []byte(i.String()), nil
}

// UnmarshalText parses state from its text representation.
func (i *LockState) UnmarshalText(text []byte) error {
	s, err := LockStateString(string(text))
	if err != nil {
		return err
	}

	*i = s
	return nil
}

// LockStateString transforms string into the lock state.
func LockStateString(s string) (LockState, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for k, v := range lockStateNames {
		if v == s {
			return k, nil
		}
	}

	return LockUnknown, fmt.Errorf("%s does not belong to LockState values", s)
}
