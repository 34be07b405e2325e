package cmd

import (
	"log/slog"

	httpin "fleetflow/internal/adapters/in/http"
	"fleetflow/internal/adapters/out/postgres"
	"fleetflow/internal/adapters/out/postgres/changefeed"
	"fleetflow/internal/adapters/out/safety"
	"fleetflow/internal/core/application/usecases/commands"
	"fleetflow/internal/core/application/usecases/queries"
	"fleetflow/internal/jobs"

	"gorm.io/gorm"
)

// CompositionRoot wires adapters, use cases, and background machinery together.
// All object graph construction happens here so the rest of the code depends
// only on interfaces.
type CompositionRoot struct {
	gormDB       *gorm.DB
	uowFactory   postgres.GormUnitOfWorkFactory
	metricsCache *queries.MetricsCache
	changeFeed   *changefeed.Listener
	logger       *slog.Logger
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		gormDB:       gormDB,
		uowFactory:   *postgres.NewGormUnitOfWorkFactory(gormDB),
		metricsCache: queries.NewMetricsCache(),
		changeFeed:   changefeed.NewListener(config.DSN(), logger),
		logger:       logger,
	}
}

func (c *CompositionRoot) CreateRegisterVehicleCommandHandler() commands.RegisterVehicleCommandHandler {
	var f commands.VehicleUoWFactory = FuncVehicleUoWFactory(func() commands.VehicleUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRegisterVehicleCommandHandler(f)
}

func (c *CompositionRoot) CreateCompleteMaintenanceCommandHandler() commands.CompleteMaintenanceCommandHandler {
	var f commands.VehicleUoWFactory = FuncVehicleUoWFactory(func() commands.VehicleUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCompleteMaintenanceCommandHandler(f)
}

func (c *CompositionRoot) CreateRetireVehicleCommandHandler() commands.RetireVehicleCommandHandler {
	var f commands.VehicleUoWFactory = FuncVehicleUoWFactory(func() commands.VehicleUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRetireVehicleCommandHandler(f)
}

func (c *CompositionRoot) CreateRegisterDriverCommandHandler() commands.RegisterDriverCommandHandler {
	var f commands.DriverUoWFactory = FuncDriverUoWFactory(func() commands.DriverUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRegisterDriverCommandHandler(f)
}

func (c *CompositionRoot) CreateChangeDriverStatusCommandHandler() commands.ChangeDriverStatusCommandHandler {
	var f commands.DriverUoWFactory = FuncDriverUoWFactory(func() commands.DriverUoW {
		return c.uowFactory.Create()
	})
	return commands.NewChangeDriverStatusCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateTripCommandHandler() commands.CreateTripCommandHandler {
	var f commands.TripUoWFactory = FuncTripUoWFactory(func() commands.TripUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateTripCommandHandler(f)
}

func (c *CompositionRoot) CreateTransitionTripCommandHandler() commands.TransitionTripCommandHandler {
	var f commands.TripUoWFactory = FuncTripUoWFactory(func() commands.TripUoW {
		return c.uowFactory.Create()
	})
	return commands.NewTransitionTripCommandHandler(f)
}

func (c *CompositionRoot) CreateLogMaintenanceCommandHandler() commands.LogMaintenanceCommandHandler {
	var f commands.ExpenseUoWFactory = FuncExpenseUoWFactory(func() commands.ExpenseUoW {
		return c.uowFactory.Create()
	})
	return commands.NewLogMaintenanceCommandHandler(f)
}

func (c *CompositionRoot) CreateLogFuelCommandHandler() commands.LogFuelCommandHandler {
	var f commands.ExpenseUoWFactory = FuncExpenseUoWFactory(func() commands.ExpenseUoW {
		return c.uowFactory.Create()
	})
	return commands.NewLogFuelCommandHandler(f)
}

func (c *CompositionRoot) CreateGetFleetMetricsQueryHandler() queries.GetFleetMetricsQueryHandler {
	return queries.NewGetFleetMetricsQueryHandler(c.gormDB, c.metricsCache)
}

func (c *CompositionRoot) CreateGetLicenseExpiryReportQueryHandler() queries.GetLicenseExpiryReportQueryHandler {
	return queries.NewGetLicenseExpiryReportQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetSafetyReportQueryHandler() queries.GetSafetyReportQueryHandler {
	return queries.NewGetSafetyReportQueryHandler(
		c.gormDB,
		safety.NewStaticProvider(safety.DefaultBaselineScore),
	)
}

// MetricsCache returns the shared fleet metrics cache.
func (c *CompositionRoot) MetricsCache() *queries.MetricsCache {
	return c.metricsCache
}

// ChangeFeed returns the Postgres LISTEN/NOTIFY change feed.
func (c *CompositionRoot) ChangeFeed() *changefeed.Listener {
	return c.changeFeed
}

// CreateHTTPServer builds the HTTP server with all handlers wired in.
func (c *CompositionRoot) CreateHTTPServer() *httpin.Server {
	return httpin.NewServer(
		c.CreateRegisterVehicleCommandHandler(),
		c.CreateRegisterDriverCommandHandler(),
		c.CreateChangeDriverStatusCommandHandler(),
		c.CreateCreateTripCommandHandler(),
		c.CreateTransitionTripCommandHandler(),
		c.CreateLogMaintenanceCommandHandler(),
		c.CreateLogFuelCommandHandler(),
		c.CreateCompleteMaintenanceCommandHandler(),
		c.CreateRetireVehicleCommandHandler(),
		c.CreateGetFleetMetricsQueryHandler(),
		c.CreateGetLicenseExpiryReportQueryHandler(),
		c.CreateGetSafetyReportQueryHandler(),
	)
}

// CreateJobManager builds the background job manager.
func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreateGetLicenseExpiryReportQueryHandler(),
		c.CreateGetFleetMetricsQueryHandler(),
		c.logger,
	)
}

type FuncVehicleUoWFactory func() commands.VehicleUoW

func (f FuncVehicleUoWFactory) Create() commands.VehicleUoW {
	return f()
}

type FuncDriverUoWFactory func() commands.DriverUoW

func (f FuncDriverUoWFactory) Create() commands.DriverUoW {
	return f()
}

type FuncTripUoWFactory func() commands.TripUoW

func (f FuncTripUoWFactory) Create() commands.TripUoW {
	return f()
}

type FuncExpenseUoWFactory func() commands.ExpenseUoW

func (f FuncExpenseUoWFactory) Create() commands.ExpenseUoW {
	return f()
}
