// Package expenserepo provides data transfer objects and mapping functions for expense persistence.
// The expense table is an append-only ledger: rows are inserted and read, never updated.
package expenserepo

import (
	"time"

	"fleetflow/internal/core/domain/model/expense"
	"fleetflow/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// ExpenseDTO represents the database structure for persisting expense records.
type ExpenseDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	VehicleID uuid.UUID `gorm:"type:uuid;index"`
	Kind      int
	Amount    float64
	Liters    *float64
	CreatedAt time.Time
}

// TableName specifies the database table name for expense entities.
func (ExpenseDTO) TableName() string {
	return "expenses"
}

// fromDomain converts an expense domain aggregate to its database representation.
func fromDomain(e *expense.Expense) ExpenseDTO {
	return ExpenseDTO{
		ID:        e.ID().Bytes(),
		VehicleID: e.VehicleID().Bytes(),
		Kind:      int(e.Kind()),
		Amount:    e.Amount(),
		Liters:    e.Liters(),
		CreatedAt: e.CreatedAt(),
	}
}

// toDomain converts a database DTO to an expense domain aggregate using RestoreExpense.
func toDomain(dto ExpenseDTO) (*expense.Expense, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	vehicleID, err := kernel.UUIDFromBytes(dto.VehicleID[:])
	if err != nil {
		return nil, err
	}

	return expense.RestoreExpense(id, vehicleID, expense.Kind(dto.Kind), dto.Amount, dto.Liters, dto.CreatedAt)
}
