// Package enums contains host-facing enumerations shared by locks and their subscribers.
package enums

import (
	"fmt"
	"strings"
)

// Property describes enum with known lock properties published to the host.
type Property int

const (
	// PropName describes human readable lock name.
	PropName Property = iota
	// PropBatteryLevel describes normalized 0-100 battery level.
	PropBatteryLevel
	// PropBatteryLow describes low battery flag.
	PropBatteryLow
	// PropConnection describes lock connection status.
	PropConnection
	// PropLockState describes canonical lock state.
	PropLockState
)

var propertyNames = map[Property]string{
	PropName:         "name",
	PropBatteryLevel: "battery_level",
	PropBatteryLow:   "battery_low",
	PropConnection:   "connection",
	PropLockState:    "lock_state",
}

// AllProperties contains every property a lock publishes.
var AllProperties = []Property{PropName, PropBatteryLevel, PropBatteryLow, PropConnection, PropLockState}

// String returns snake-case representation of the property.
func (i Property) String() string {
	name, ok := propertyNames[i]
	if !ok {
		return fmt.Sprintf("Property(%d)", int(i))
	}

	return name
}

// MarshalText allows to use property as a JSON map key.
func (i Property) MarshalText() ([]byte, error) {
	return []byte(i.String()), nil
}

// UnmarshalText parses property from its text representation.
func (i *Property) UnmarshalText(text []byte) error {
	p, err := PropertyString(string(text))
	if err != nil {
		return err
	}

	*i = p
	return nil
}

// PropertyString transforms string into the property.
func PropertyString(s string) (Property, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for k, v := range propertyNames {
		if v == s {
			return k, nil
		}
	}

	return 0, fmt.Errorf("%s does not belong to Property values", s)
}

// SliceContainsProperty checks whether slice contains certain property.
func SliceContainsProperty(s []Property, e Property) bool {
	for _, a := range s {
		if a == e {
			return true
		}
	}
	return false
}
