package expense

import (
	"fmt"

	"fleetflow/internal/pkg/errs"
)

// Kind represents the category of a fleet expense.
type Kind int

const (
	// KindUnknown represents an invalid or undefined kind.
	KindUnknown Kind = iota

	// Fuel is a refuelling expense. Fuel expenses carry the litres purchased.
	Fuel

	// Maintenance is a repair or servicing expense.
	Maintenance
)

func getKindStrings() map[Kind]string {
	return map[Kind]string{
		KindUnknown: "Unknown",
		Fuel:        "Fuel",
		Maintenance: "Maintenance",
	}
}

func getValidKindStrings() map[Kind]string {
	//nolint:exhaustive // KindUnknown is intentionally excluded as it's invalid
	return map[Kind]string{
		Fuel:        "Fuel",
		Maintenance: "Maintenance",
	}
}

// Validate checks if the Kind value is valid.
func (k Kind) Validate() error {
	if _, ok := getValidKindStrings()[k]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("expense kind", fmt.Errorf("%d is not a valid kind", k))
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
	for kind, str := range getValidKindStrings() {
		if str == s {
			return kind, nil
		}
	}
	return KindUnknown, errs.NewValueIsInvalidErrorWithCause("expense kind", fmt.Errorf("%q is not a valid kind", s))
}
