package commands

import (
	"context"

	"fleetflow/internal/core/domain/model/driver"
)

// RegisterDriverCommandHandler handles the business logic for driver registration.
// New drivers join the roster On Duty.
type RegisterDriverCommandHandler struct {
	uowFactory DriverUoWFactory
}

// NewRegisterDriverCommandHandler creates a handler for driver registration operations.
// Requires a DriverUoWFactory for transactional persistence.
func NewRegisterDriverCommandHandler(uowFactory DriverUoWFactory) RegisterDriverCommandHandler {
	return RegisterDriverCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the driver registration command.
func (h RegisterDriverCommandHandler) Handle(ctx context.Context, cmd RegisterDriverCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	d, err := driver.NewDriver(cmd.DriverID(), cmd.Name(), cmd.LicenseExpiry())
	if err != nil {
		return err
	}

	if err = uow.DriverRepository().Add(ctx, d); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
