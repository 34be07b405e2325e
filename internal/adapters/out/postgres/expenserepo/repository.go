package expenserepo

import (
	"context"

	"fleetflow/internal/core/domain/model/expense"
	"fleetflow/internal/core/domain/model/kernel"

	"gorm.io/gorm"
)

// GormExpenseRepository implements ExpenseRepository using GORM.
// There is deliberately no update or delete: the ledger is append-only and
// corrections are recorded as new rows.
type GormExpenseRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormExpenseRepository creates a new GORM expense repository.
func NewGormExpenseRepository(db *gorm.DB, tracker aggregateTracker) *GormExpenseRepository {
	return &GormExpenseRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new expense record to the database.
func (r *GormExpenseRepository) Add(ctx context.Context, aggregate *expense.Expense) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// GetAllByVehicle retrieves every expense recorded against the given vehicle,
// oldest first.
func (r *GormExpenseRepository) GetAllByVehicle(ctx context.Context, vehicleID kernel.UUID) ([]*expense.Expense, error) {
	if err := vehicleID.Validate(); err != nil {
		return nil, err
	}

	var dtos []ExpenseDTO
	if err := r.db.WithContext(ctx).Order("created_at").Find(&dtos, "vehicle_id = ?", vehicleID.Bytes()).Error; err != nil {
		return nil, err
	}

	expenses := make([]*expense.Expense, 0, len(dtos))
	for _, dto := range dtos {
		e, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		expenses = append(expenses, e)
	}

	return expenses, nil
}
