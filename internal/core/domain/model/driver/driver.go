package driver

import (
	"errors"
	"time"

	"fleetflow/internal/core/domain/model/kernel"
	"fleetflow/internal/pkg/errs"
)

// ComplianceWindowDays is the renewal window used for license compliance. A license
// expiring within this many days counts as expiring soon rather than compliant.
const ComplianceWindowDays = 30

var (
	// ErrDriverIsNotConstructed is returned when a Driver instance was not created
	// through the NewDriver or RestoreDriver factory methods.
	ErrDriverIsNotConstructed = errors.New("Driver must be created via NewDriver constructor")
)

// ExpiryBucket classifies how urgent a driver's license renewal is.
type ExpiryBucket int

const (
	// Expired means the license expiry date is in the past.
	Expired ExpiryBucket = iota

	// ExpiringSoon means the license expires within the compliance window
	// (0 to 30 days out, inclusive).
	ExpiringSoon

	// Compliant means the license is valid beyond the compliance window.
	Compliant
)

// String returns the human-readable name of the bucket.
func (b ExpiryBucket) String() string {
	switch b {
	case Expired:
		return "Expired"
	case ExpiringSoon:
		return "Expiring Soon"
	case Compliant:
		return "Compliant"
	}
	return "Unknown"
}

// Driver represents a fleet driver. It manages driver identity, duty status, and
// license compliance.
//
// Driver follows these invariants:
//   - Must have a valid unique identifier and non-empty name
//   - License expiry must be set
//   - Duty status is a closed enumeration
//
// Dispatch eligibility is never stored: it is a function of duty status and
// wall-clock time and is recomputed on every check.
type Driver struct {
	// id is the unique identifier for the driver
	id kernel.UUID

	// name is the driver's display name
	name string

	// licenseExpiry is the date the driving license expires
	licenseExpiry time.Time

	// status is the current duty state
	status Status

	// isConstructed ensures the driver was created via a factory method
	isConstructed bool
}

// NewDriver registers a new driver with validation. The driver starts On Duty,
// matching the registration flow where drivers are added when they join the roster.
func NewDriver(id kernel.UUID, name string, licenseExpiry time.Time) (*Driver, error) {
	d := &Driver{
		status:        OnDuty,
		isConstructed: true,
	}

	if err := errors.Join(
		d.setID(id),
		d.setName(name),
		d.setLicenseExpiry(licenseExpiry),
	); err != nil {
		return nil, err
	}

	return d, nil
}

// RestoreDriver reconstructs a driver from persistence, including the stored duty
// status.
func RestoreDriver(id kernel.UUID, name string, licenseExpiry time.Time, status Status) (*Driver, error) {
	d, err := NewDriver(id, name, licenseExpiry)
	if err != nil {
		return nil, err
	}

	if err := status.Validate(); err != nil {
		return nil, err
	}
	d.status = status

	return d, nil
}

// Validate ensures the Driver instance was properly constructed through a factory
// method.
func (d *Driver) Validate() error {
	if d == nil || !d.isConstructed {
		return ErrDriverIsNotConstructed
	}
	return nil
}

// IsEqual compares two drivers by their unique identifiers.
func (d *Driver) IsEqual(other *Driver) bool {
	return other != nil && d.id.IsEqual(other.id)
}

// ID returns the driver's unique identifier.
func (d *Driver) ID() kernel.UUID {
	return d.id
}

// Name returns the driver's display name.
func (d *Driver) Name() string {
	return d.name
}

// LicenseExpiry returns the license expiry date.
func (d *Driver) LicenseExpiry() time.Time {
	return d.licenseExpiry
}

// Status returns the current duty status.
func (d *Driver) Status() Status {
	return d.status
}

// ChangeStatus sets the driver's duty status. Any valid status may move to any other
// valid status; duty changes are direct roster edits, not a workflow.
func (d *Driver) ChangeStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	d.status = status
	return nil
}

// IsEligible reports whether the driver may be assigned to a new trip at the given
// moment: on duty with a license expiring strictly in the future. The result must
// not be cached since it depends on wall-clock time.
func (d *Driver) IsEligible(now time.Time) bool {
	return d.status == OnDuty && d.licenseExpiry.After(now)
}

// DaysUntilExpiry returns the number of whole days between now and the license
// expiry, comparing calendar days. Negative values mean the license has expired.
func (d *Driver) DaysUntilExpiry(now time.Time) int {
	expiry := startOfDay(d.licenseExpiry)
	today := startOfDay(now)
	return int(expiry.Sub(today).Hours() / 24)
}

// ExpiryBucketAt classifies the license into a renewal-urgency bucket at the given
// moment.
func (d *Driver) ExpiryBucketAt(now time.Time) ExpiryBucket {
	days := d.DaysUntilExpiry(now)
	switch {
	case days < 0:
		return Expired
	case days <= ComplianceWindowDays:
		return ExpiringSoon
	default:
		return Compliant
	}
}

func startOfDay(t time.Time) time.Time {
	year, month, day := t.UTC().Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func (d *Driver) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	d.id = id
	return nil
}

func (d *Driver) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	d.name = name
	return nil
}

func (d *Driver) setLicenseExpiry(expiry time.Time) error {
	if expiry.IsZero() {
		return errs.NewValueIsRequiredError("license expiry")
	}
	d.licenseExpiry = expiry
	return nil
}
