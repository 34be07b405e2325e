package ports

import (
	"context"

	"fleetflow/internal/core/domain/model/expense"
	"fleetflow/internal/core/domain/model/kernel"
)

// ExpenseRepository defines the persistence contract for the expense ledger.
// The ledger is append-only: there is no update or delete.
type ExpenseRepository interface {
	// Add persists a new expense record.
	Add(ctx context.Context, aggregate *expense.Expense) error

	// GetAllByVehicle retrieves every expense recorded against the given vehicle.
	GetAllByVehicle(ctx context.Context, vehicleID kernel.UUID) ([]*expense.Expense, error)
}
