package commands

import (
	"errors"
	"fmt"

	"fleetflow/internal/core/domain/model/kernel"
	"fleetflow/internal/core/domain/model/trip"
	"fleetflow/internal/pkg/guard"
)

var (
	ErrTransitionTripCommandIsNotConstructed = errors.New(
		"TransitionTripCommand must be created via NewTransitionTripCommand constructor",
	)
	ErrTargetStatusIsInvalid = errors.New("target status is not reachable by transition")
)

// TransitionTripCommand represents a request to move a trip to a new lifecycle
// status. Only Dispatched, Completed, and Cancelled are valid targets; Draft is
// the creation status and cannot be re-entered.
type TransitionTripCommand struct { //nolint:recvcheck //using for validation
	tripID kernel.UUID
	target trip.Status

	guard guard.ConstructorGuard
}

// NewTransitionTripCommand creates a command to transition a trip.
func NewTransitionTripCommand(tripID kernel.UUID, target trip.Status) (TransitionTripCommand, error) {
	cmd := TransitionTripCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setTripID(tripID),
		cmd.setTarget(target),
	); err != nil {
		return TransitionTripCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrTransitionTripCommandIsNotConstructed if validation fails.
func (c TransitionTripCommand) Validate() error {
	return c.guard.Validate(ErrTransitionTripCommandIsNotConstructed)
}

// TripID returns the identifier of the trip to transition.
func (c TransitionTripCommand) TripID() kernel.UUID {
	return c.tripID
}

// Target returns the requested lifecycle status.
func (c TransitionTripCommand) Target() trip.Status {
	return c.target
}

func (c *TransitionTripCommand) setTripID(tripID kernel.UUID) error {
	if err := tripID.Validate(); err != nil {
		return err
	}

	c.tripID = tripID
	return nil
}

func (c *TransitionTripCommand) setTarget(target trip.Status) error {
	if err := target.Validate(); err != nil {
		return err
	}
	if target == trip.Draft {
		return fmt.Errorf("%w: %s", ErrTargetStatusIsInvalid, target)
	}

	c.target = target
	return nil
}
