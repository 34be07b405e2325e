package trip

import (
	"errors"
	"fmt"

	"fleetflow/internal/pkg/errs"
)

// ErrIllegalTransition is returned when a trip status change violates the
// lifecycle. Trips move strictly forward: Draft to Dispatched to Completed, with
// Cancelled reachable from Draft or Dispatched.
var ErrIllegalTransition = errors.New("illegal trip status transition")

// Status represents the current state of a trip in its lifecycle.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	Unknown Status = iota

	// Draft means the trip has been created but not yet dispatched. Vehicle and
	// driver are assigned but not yet committed.
	Draft

	// Dispatched means the trip is underway and its vehicle is on the road.
	Dispatched

	// Completed means the trip finished successfully and its revenue counts
	// toward fleet earnings.
	Completed

	// Cancelled means the trip was called off before completion.
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "Unknown",
		Draft:      "Draft",
		Dispatched: "Dispatched",
		Completed:  "Completed",
		Cancelled:  "Cancelled",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Draft:      "Draft",
		Dispatched: "Dispatched",
		Completed:  "Completed",
		Cancelled:  "Cancelled",
	}
}

// Validate checks if the Status value is valid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("trip status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether the status admits no further transitions.
func (s Status) IsTerminal() bool {
	return s == Completed || s == Cancelled
}

// Dispatch transitions the trip from Draft to Dispatched.
func (s Status) Dispatch() (Status, error) {
	if s != Draft {
		return s, fmt.Errorf("%w: %s -> %s", ErrIllegalTransition, s, Dispatched)
	}
	return Dispatched, nil
}

// Complete transitions the trip from Dispatched to Completed. A Draft trip cannot
// complete without being dispatched first.
func (s Status) Complete() (Status, error) {
	if s != Dispatched {
		return s, fmt.Errorf("%w: %s -> %s", ErrIllegalTransition, s, Completed)
	}
	return Completed, nil
}

// Cancel transitions the trip to Cancelled from Draft or Dispatched.
func (s Status) Cancel() (Status, error) {
	if s != Draft && s != Dispatched {
		return s, fmt.Errorf("%w: %s -> %s", ErrIllegalTransition, s, Cancelled)
	}
	return Cancelled, nil
}

// StatusFromString parses the persisted string form of a status.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("trip status", fmt.Errorf("%q is not a valid status", s))
}
