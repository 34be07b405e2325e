package vehicle

import (
	"fmt"

	"fleetflow/internal/pkg/errs"
)

// Kind classifies a vehicle by body type.
type Kind int

const (
	// KindUnknown represents an invalid or undefined kind.
	KindUnknown Kind = iota

	// Truck is a heavy cargo vehicle.
	Truck

	// Van is a light cargo vehicle.
	Van
)

func getKindStrings() map[Kind]string {
	return map[Kind]string{
		Truck: "Truck",
		Van:   "Van",
	}
}

// Validate checks if the Kind value is valid.
func (k Kind) Validate() error {
	if _, ok := getKindStrings()[k]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("vehicle kind", fmt.Errorf("%d is not a valid kind", k))
	}
	return nil
}

// String returns the human-readable name of the kind.
func (k Kind) String() string {
	if str, ok := getKindStrings()[k]; ok {
		return str
	}
	return "Unknown"
}

// KindFromString parses the persisted string form of a kind.
func KindFromString(s string) (Kind, error) {
	for kind, str := range getKindStrings() {
		if str == s {
			return kind, nil
		}
	}
	return KindUnknown, errs.NewValueIsInvalidErrorWithCause("vehicle kind", fmt.Errorf("%q is not a valid kind", s))
}
