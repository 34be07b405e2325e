// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"fleetflow/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// VehicleRepoFactory provides access to the vehicle repository within a transaction.
	VehicleRepoFactory interface {
		VehicleRepository() ports.VehicleRepository
	}

	// DriverRepoFactory provides access to the driver repository within a transaction.
	DriverRepoFactory interface {
		DriverRepository() ports.DriverRepository
	}

	// TripRepoFactory provides access to the trip repository within a transaction.
	TripRepoFactory interface {
		TripRepository() ports.TripRepository
	}

	// ExpenseRepoFactory provides access to the expense repository within a transaction.
	ExpenseRepoFactory interface {
		ExpenseRepository() ports.ExpenseRepository
	}

	// VehicleUoW manages transactions for vehicle-only operations.
	// Used when commands only modify vehicle aggregates.
	VehicleUoW interface {
		TxManager
		VehicleRepoFactory
	}

	// VehicleUoWFactory creates new vehicle unit of work instances.
	VehicleUoWFactory interface {
		Create() VehicleUoW
	}

	// DriverUoW manages transactions for driver-only operations.
	DriverUoW interface {
		TxManager
		DriverRepoFactory
	}

	// DriverUoWFactory creates new driver unit of work instances.
	DriverUoWFactory interface {
		Create() DriverUoW
	}

	// TripUoW manages transactions spanning trips, vehicles, and drivers.
	// Used for trip creation and transitions where status cascades must commit
	// atomically with the trip write.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   tripRepo := uow.TripRepository()
	//   vehicleRepo := uow.VehicleRepository()
	//   // ... perform operations
	//
	//   err = uow.Commit(ctx)
	TripUoW interface {
		TxManager
		TripRepoFactory
		VehicleRepoFactory
		DriverRepoFactory
	}

	// TripUoWFactory creates new trip unit of work instances.
	TripUoWFactory interface {
		Create() TripUoW
	}

	// ExpenseUoW manages transactions spanning expenses and vehicles.
	// Used when logging an expense also moves the vehicle, as maintenance does.
	ExpenseUoW interface {
		TxManager
		ExpenseRepoFactory
		VehicleRepoFactory
	}

	// ExpenseUoWFactory creates new expense unit of work instances.
	ExpenseUoWFactory interface {
		Create() ExpenseUoW
	}
)
