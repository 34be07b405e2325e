package commands

import (
	"context"
)

// ChangeDriverStatusCommandHandler handles direct duty-status edits.
// A suspended or off-duty driver immediately drops out of the dispatch pool;
// existing trips are unaffected.
type ChangeDriverStatusCommandHandler struct {
	uowFactory DriverUoWFactory
}

// NewChangeDriverStatusCommandHandler creates a handler for duty-status edits.
// Requires a DriverUoWFactory for transactional persistence.
func NewChangeDriverStatusCommandHandler(uowFactory DriverUoWFactory) ChangeDriverStatusCommandHandler {
	return ChangeDriverStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the duty-status change.
// Loads the driver, applies the new status, and persists within a transaction.
func (h ChangeDriverStatusCommandHandler) Handle(ctx context.Context, cmd ChangeDriverStatusCommand) error {
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

	driverRepo := uow.DriverRepository()

	d, err := driverRepo.Get(ctx, cmd.DriverID())
	if err != nil {
		return err
	}

	observed := d.Status()
	if err = d.ChangeStatus(cmd.Status()); err != nil {
		return err
	}

	if err = driverRepo.UpdateIfStatus(ctx, d, observed); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
