package commands

import (
	"errors"
	"time"

	"fleetflow/internal/core/domain/model/kernel"
	"fleetflow/internal/pkg/guard"
)

var (
	ErrRegisterDriverCommandIsNotConstructed = errors.New(
		"RegisterDriverCommand must be created via NewRegisterDriverCommand constructor",
	)
	ErrDriverNameIsRequired    = errors.New("driver name is required")
	ErrLicenseExpiryIsRequired = errors.New("license expiry is required")
)

// RegisterDriverCommand represents a request to add a driver to the roster.
// New drivers start On Duty.
type RegisterDriverCommand struct { //nolint:recvcheck //using for validation
	driverID      kernel.UUID
	name          string
	licenseExpiry time.Time

	guard guard.ConstructorGuard
}

// NewRegisterDriverCommand creates a command to register a new driver.
// Validates that the driver ID is valid, the name is not empty, and the license
// expiry is set. An already-expired license is accepted at registration; it only
// blocks dispatch.
func NewRegisterDriverCommand(driverID kernel.UUID, name string, licenseExpiry time.Time) (RegisterDriverCommand, error) {
	cmd := RegisterDriverCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setDriverID(driverID),
		cmd.setName(name),
		cmd.setLicenseExpiry(licenseExpiry),
	); err != nil {
		return RegisterDriverCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrRegisterDriverCommandIsNotConstructed if validation fails.
func (c RegisterDriverCommand) Validate() error {
	return c.guard.Validate(ErrRegisterDriverCommandIsNotConstructed)
}

// DriverID returns the unique identifier for the new driver.
func (c RegisterDriverCommand) DriverID() kernel.UUID {
	return c.driverID
}

// Name returns the driver's display name.
func (c RegisterDriverCommand) Name() string {
	return c.name
}

// LicenseExpiry returns the driving license expiry date.
func (c RegisterDriverCommand) LicenseExpiry() time.Time {
	return c.licenseExpiry
}

func (c *RegisterDriverCommand) setDriverID(driverID kernel.UUID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}

	c.driverID = driverID
	return nil
}

func (c *RegisterDriverCommand) setName(name string) error {
	if name == "" {
		return ErrDriverNameIsRequired
	}

	c.name = name
	return nil
}

func (c *RegisterDriverCommand) setLicenseExpiry(expiry time.Time) error {
	if expiry.IsZero() {
		return ErrLicenseExpiryIsRequired
	}

	c.licenseExpiry = expiry
	return nil
}
