package vehicle

import (
	"errors"
	"fmt"
)

// ErrIllegalTransition is returned when a requested vehicle status change is not in
// the allowed transition table.
var ErrIllegalTransition = errors.New("illegal vehicle status transition")

// Status represents the operational state of a vehicle.
// It implements a state machine with defined transitions so a vehicle's status always
// reflects its most recent trip or maintenance event.
//
// State transitions:
//
//	Available ──> On Trip ──> Available      (trip dispatched / completed)
//	Available ──> In Shop ──> Available      (maintenance logged / completed)
//	Available | On Trip | In Shop ──> Retired (terminal)
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Available means the vehicle is in the dispatch pool and selectable for trips.
	Available

	// OnTrip means the vehicle is currently executing a dispatched trip.
	OnTrip

	// InShop means the vehicle is undergoing maintenance and removed from the
	// dispatch pool.
	InShop

	// Retired is the terminal status. Retired vehicles are never deleted and never
	// transition again.
	Retired
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "Unknown",
		Available: "Available",
		OnTrip:    "On Trip",
		InShop:    "In Shop",
		Retired:   "Retired",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Available: "Available",
		OnTrip:    "On Trip",
		InShop:    "In Shop",
		Retired:   "Retired",
	}
}

// Validate checks if the Status value is one of the valid operational states.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return fmt.Errorf("%w: %d is not a valid status", ErrIllegalTransition, s)
	}
	return nil
}

// String returns the human-readable name of the status.
// Implements fmt.Stringer and is safe to call on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// StatusFromString parses the persisted string form of a status.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, fmt.Errorf("%w: %q is not a valid status", ErrIllegalTransition, s)
}

// Dispatch transitions the status to OnTrip.
//
// Valid transitions:
//   - Available -> OnTrip (trip moved to Dispatched)
func (s Status) Dispatch() (Status, error) {
	if s != Available {
		return 0, fmt.Errorf("%w: cannot dispatch from %s", ErrIllegalTransition, s)
	}
	return OnTrip, nil
}

// Release transitions the status back to Available.
//
// Valid transitions:
//   - OnTrip -> Available (trip completed or cancelled while dispatched)
func (s Status) Release() (Status, error) {
	if s != OnTrip {
		return 0, fmt.Errorf("%w: cannot release from %s", ErrIllegalTransition, s)
	}
	return Available, nil
}

// SendToShop transitions the status to InShop.
//
// Valid transitions:
//   - Available -> InShop (maintenance expense logged)
//   - InShop -> InShop (additional maintenance on a vehicle already in the shop)
func (s Status) SendToShop() (Status, error) {
	if s != Available && s != InShop {
		return 0, fmt.Errorf("%w: cannot send to shop from %s", ErrIllegalTransition, s)
	}
	return InShop, nil
}

// CompleteMaintenance transitions the status back to Available.
//
// Valid transitions:
//   - InShop -> Available (maintenance marked completed)
//   - Available -> Available (repeat completion is a no-op, not an error)
func (s Status) CompleteMaintenance() (Status, error) {
	if s != InShop && s != Available {
		return 0, fmt.Errorf("%w: cannot complete maintenance from %s", ErrIllegalTransition, s)
	}
	return Available, nil
}

// Retire transitions the status to Retired. Allowed from every non-Retired status.
// Retired has no outgoing transitions.
func (s Status) Retire() (Status, error) {
	if s == Retired {
		return 0, fmt.Errorf("%w: vehicle is already retired", ErrIllegalTransition)
	}
	if err := s.Validate(); err != nil {
		return 0, err
	}
	return Retired, nil
}
