// Package postgres provides GORM-based implementation of the Unit of Work pattern.
// The Unit of Work pattern maintains a list of objects affected by a business
// transaction and coordinates writing out changes and resolving concurrency problems.
//
// Key Features:
//   - Transaction management across multiple repositories
//   - Aggregate tracking for domain event processing
//   - Proper isolation between concurrent operations
//   - Repository factory pattern for consistent database connections
//
// Usage Patterns:
//
// Basic Transaction Management:
//
//	factory := NewGormUnitOfWorkFactory(db)
//	uow := factory.Create()
//
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//
//	// Perform repository operations
//	if err := uow.VehicleRepository().Add(ctx, v); err != nil {
//	    uow.Rollback(ctx)
//	    return err
//	}
//
//	return uow.Commit(ctx)
//
// Cross-Aggregate Transactions:
//
//	uow := factory.Create()
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//
//	// A trip transition and its vehicle cascade commit or roll back together
//	if err := uow.TripRepository().UpdateIfStatus(ctx, t, observed); err != nil {
//	    uow.Rollback(ctx)
//	    return err
//	}
//
//	if err := uow.VehicleRepository().UpdateIfStatus(ctx, v, observed); err != nil {
//	    uow.Rollback(ctx)
//	    return err
//	}
//
//	return uow.Commit(ctx)
//
// Concurrency Considerations:
//   - Each UnitOfWork instance provides isolated transactions
//   - Multiple goroutines should use separate UnitOfWork instances
//   - Status-bearing writes are compare-and-swap on the observed status, so
//     racing transitions of the same vehicle or trip cannot both commit
package postgres

import (
	"context"
	"errors"

	"fleetflow/internal/adapters/out/postgres/driverrepo"
	"fleetflow/internal/adapters/out/postgres/expenserepo"
	"fleetflow/internal/adapters/out/postgres/triprepo"
	"fleetflow/internal/adapters/out/postgres/vehiclerepo"
	"fleetflow/internal/core/domain/model/driver"
	"fleetflow/internal/core/domain/model/expense"
	"fleetflow/internal/core/domain/model/kernel"
	"fleetflow/internal/core/domain/model/trip"
	"fleetflow/internal/core/domain/model/vehicle"
	"fleetflow/internal/core/ports"

	"gorm.io/gorm"
)

// trackedAggregate represents an aggregate modified during the unit of work.
// This is useful for implementing patterns like event sourcing or outbox pattern.
type trackedAggregate struct {
	ID        kernel.UUID
	Aggregate interface{} // Will be changed to a common Aggregate interface in the future
}

// GormUnitOfWorkFactory creates UnitOfWork instances using GORM database connections.
// Factory ensures each business operation gets a fresh unit of work instance
// with proper isolation from other concurrent operations.
type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

// NewGormUnitOfWorkFactory creates a factory for GORM-based unit of work instances.
// The provided database connection will be used for all created unit of work instances.
//
// Example:
//
//	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
//	if err != nil {
//	    log.Fatal("failed to connect database")
//	}
//	factory := NewGormUnitOfWorkFactory(db)
func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db}
}

// Create produces a new UnitOfWork instance ready for business transaction management.
// Each instance maintains its own transaction state and aggregate tracking,
// ensuring proper isolation between concurrent operations.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{
		db:                f.db,
		trackedAggregates: make([]trackedAggregate, 0),
	}
}

// GormUnitOfWork coordinates database transactions and tracks aggregate changes
// for business operations. Implements the Unit of Work pattern using GORM's
// transaction capabilities to ensure data consistency and proper rollback handling.
//
// The unit of work tracks all aggregates modified during the transaction,
// enabling patterns like domain event publishing after successful commits
// or implementing the outbox pattern for reliable event processing.
type GormUnitOfWork struct {
	db                *gorm.DB
	tx                *gorm.DB
	trackedAggregates []trackedAggregate
}

// Begin initiates a new database transaction for the unit of work.
// Subsequent repository operations will execute within this transaction context.
// Multiple calls to Begin on the same instance are safe and will not create nested transactions.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	uow.tx = uow.db.WithContext(ctx).Begin()
	if uow.tx.Error != nil {
		return uow.tx.Error
	}

	return nil
}

// Commit finalizes all changes made within the current transaction.
// All tracked aggregates and their modifications become permanent in the database.
// After commit, the transaction is closed and cannot be reused.
//
// A pg_notify is queued for every tracked aggregate before committing; Postgres
// delivers the notifications to change-feed listeners only when the commit
// succeeds, so observers never see events for rolled-back work.
//
// Returns error if no active transaction exists or if the commit operation fails.
func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	if err := uow.notifyChanges(); err != nil {
		rollbackErr := uow.tx.Rollback().Error
		uow.tx = nil
		return errors.Join(err, rollbackErr)
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	return err
}

// notifyChanges queues one change-feed notification per tracked aggregate kind.
func (uow *GormUnitOfWork) notifyChanges() error {
	kinds := make(map[string]struct{}, len(uow.trackedAggregates))
	for _, tracked := range uow.trackedAggregates {
		kinds[aggregateKind(tracked.Aggregate)] = struct{}{}
	}

	for kind := range kinds {
		if err := uow.tx.Exec("SELECT pg_notify(?, ?)", ports.ChangeChannel, kind).Error; err != nil {
			return err
		}
	}

	return nil
}

func aggregateKind(aggregate interface{}) string {
	switch aggregate.(type) {
	case *vehicle.Vehicle:
		return "vehicles"
	case *driver.Driver:
		return "drivers"
	case *trip.Trip:
		return "trips"
	case *expense.Expense:
		return "expenses"
	}
	return "unknown"
}

// Rollback discards all changes made within the current transaction.
// Database returns to its state before the transaction began.
// After rollback, the transaction is closed and cannot be reused.
//
// Returns error if no active transaction exists or if the rollback operation fails.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	return err
}

// VehicleRepository provides access to vehicle persistence operations within the unit of work.
// Repository operations will execute within the current transaction if one is active,
// otherwise they use the main database connection for immediate execution.
func (uow *GormUnitOfWork) VehicleRepository() ports.VehicleRepository {
	db := uow.db
	if uow.tx != nil {
		db = uow.tx
	}
	return vehiclerepo.NewGormVehicleRepository(db, uow)
}

// DriverRepository provides access to driver persistence operations within the unit of work.
// Repository operations will execute within the current transaction if one is active,
// otherwise they use the main database connection for immediate execution.
func (uow *GormUnitOfWork) DriverRepository() ports.DriverRepository {
	db := uow.db
	if uow.tx != nil {
		db = uow.tx
	}
	return driverrepo.NewGormDriverRepository(db, uow)
}

// TripRepository provides access to trip persistence operations within the unit of work.
// Repository operations will execute within the current transaction if one is active,
// otherwise they use the main database connection for immediate execution.
func (uow *GormUnitOfWork) TripRepository() ports.TripRepository {
	db := uow.db
	if uow.tx != nil {
		db = uow.tx
	}
	return triprepo.NewGormTripRepository(db, uow)
}

// ExpenseRepository provides access to expense persistence operations within the unit of work.
// Repository operations will execute within the current transaction if one is active,
// otherwise they use the main database connection for immediate execution.
func (uow *GormUnitOfWork) ExpenseRepository() ports.ExpenseRepository {
	db := uow.db
	if uow.tx != nil {
		db = uow.tx
	}
	return expenserepo.NewGormExpenseRepository(db, uow)
}

// TrackAggregate registers a domain aggregate as modified within this unit of work.
// This method is typically called by repository implementations when aggregates
// are added, updated, or otherwise modified.
//
// The tracked aggregates can be retrieved after the transaction completes,
// enabling domain event processing or other post-transaction activities.
func (uow *GormUnitOfWork) TrackAggregate(id kernel.UUID, aggregate interface{}) {
	uow.trackedAggregates = append(uow.trackedAggregates, trackedAggregate{
		ID:        id,
		Aggregate: aggregate,
	})
}
