package driver

import (
	"fmt"

	"fleetflow/internal/pkg/errs"
)

// Status represents a driver's duty state. Unlike vehicle and trip statuses this is
// not a restricted state machine: dispatch managers edit duty status directly, so any
// valid status can move to any other valid status.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	Unknown Status = iota

	// OnDuty means the driver is working and, license permitting, eligible for
	// trip assignment.
	OnDuty

	// OffDuty means the driver is not working and never eligible for assignment.
	OffDuty

	// Suspended means the driver is barred from assignment regardless of license.
	Suspended
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "Unknown",
		OnDuty:    "On Duty",
		OffDuty:   "Off Duty",
		Suspended: "Suspended",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		OnDuty:    "On Duty",
		OffDuty:   "Off Duty",
		Suspended: "Suspended",
	}
}

// Validate checks if the Status value is valid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("driver status", fmt.Errorf("%d is not a valid status", s))
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

// StatusFromString parses the persisted string form of a status.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("driver status", fmt.Errorf("%q is not a valid status", s))
}
