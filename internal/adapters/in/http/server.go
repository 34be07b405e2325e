// Package http exposes the fleet operations API over HTTP.
// It coordinates between HTTP handlers and application use cases.
package http

import (
	"errors"
	"net/http"
	"time"

	"fleetflow/internal/core/application/usecases/commands"
	"fleetflow/internal/core/application/usecases/queries"
	"fleetflow/internal/core/domain/model/driver"
	"fleetflow/internal/core/domain/model/kernel"
	"fleetflow/internal/core/domain/model/trip"
	"fleetflow/internal/core/domain/model/vehicle"
	"fleetflow/internal/core/domain/services"
	"fleetflow/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server routes fleet API requests to command and query handlers.
type Server struct {
	// Command handlers
	registerVehicleHandler     commands.RegisterVehicleCommandHandler
	registerDriverHandler      commands.RegisterDriverCommandHandler
	changeDriverStatusHandler  commands.ChangeDriverStatusCommandHandler
	createTripHandler          commands.CreateTripCommandHandler
	transitionTripHandler      commands.TransitionTripCommandHandler
	logMaintenanceHandler      commands.LogMaintenanceCommandHandler
	logFuelHandler             commands.LogFuelCommandHandler
	completeMaintenanceHandler commands.CompleteMaintenanceCommandHandler
	retireVehicleHandler       commands.RetireVehicleCommandHandler

	// Query handlers
	getFleetMetricsHandler        queries.GetFleetMetricsQueryHandler
	getLicenseExpiryReportHandler queries.GetLicenseExpiryReportQueryHandler
	getSafetyReportHandler        queries.GetSafetyReportQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	registerVehicleHandler commands.RegisterVehicleCommandHandler,
	registerDriverHandler commands.RegisterDriverCommandHandler,
	changeDriverStatusHandler commands.ChangeDriverStatusCommandHandler,
	createTripHandler commands.CreateTripCommandHandler,
	transitionTripHandler commands.TransitionTripCommandHandler,
	logMaintenanceHandler commands.LogMaintenanceCommandHandler,
	logFuelHandler commands.LogFuelCommandHandler,
	completeMaintenanceHandler commands.CompleteMaintenanceCommandHandler,
	retireVehicleHandler commands.RetireVehicleCommandHandler,
	getFleetMetricsHandler queries.GetFleetMetricsQueryHandler,
	getLicenseExpiryReportHandler queries.GetLicenseExpiryReportQueryHandler,
	getSafetyReportHandler queries.GetSafetyReportQueryHandler,
) *Server {
	return &Server{
		registerVehicleHandler:        registerVehicleHandler,
		registerDriverHandler:         registerDriverHandler,
		changeDriverStatusHandler:     changeDriverStatusHandler,
		createTripHandler:             createTripHandler,
		transitionTripHandler:         transitionTripHandler,
		logMaintenanceHandler:         logMaintenanceHandler,
		logFuelHandler:                logFuelHandler,
		completeMaintenanceHandler:    completeMaintenanceHandler,
		retireVehicleHandler:          retireVehicleHandler,
		getFleetMetricsHandler:        getFleetMetricsHandler,
		getLicenseExpiryReportHandler: getLicenseExpiryReportHandler,
		getSafetyReportHandler:        getSafetyReportHandler,
	}
}

// RegisterRoutes attaches all fleet API routes to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/vehicles", s.RegisterVehicle)
	api.POST("/vehicles/:id/maintenance", s.LogMaintenance)
	api.POST("/vehicles/:id/maintenance/complete", s.CompleteMaintenance)
	api.POST("/vehicles/:id/fuel", s.LogFuel)
	api.POST("/vehicles/:id/retire", s.RetireVehicle)

	api.POST("/drivers", s.RegisterDriver)
	api.POST("/drivers/:id/status", s.ChangeDriverStatus)

	api.POST("/trips", s.CreateTrip)
	api.POST("/trips/:id/status", s.TransitionTrip)

	api.GET("/metrics", s.GetFleetMetrics)
	api.GET("/compliance", s.GetLicenseExpiryReport)
	api.GET("/safety", s.GetSafetyReport)

	e.GET("/health", s.Health)
}

// Error is the JSON error payload returned by every failing endpoint.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// CreatedResponse carries the identifier of a newly created resource.
type CreatedResponse struct {
	ID string `json:"id"`
}

// NewVehicle is the request body for vehicle registration.
type NewVehicle struct {
	Name            string  `json:"name"`
	Plate           string  `json:"plate"`
	Kind            string  `json:"kind"`
	MaxLoad         int     `json:"maxLoad"`
	Odometer        int     `json:"odometer"`
	AcquisitionCost float64 `json:"acquisitionCost"`
}

// NewDriver is the request body for driver registration.
type NewDriver struct {
	Name          string    `json:"name"`
	LicenseExpiry time.Time `json:"licenseExpiry"`
}

// StatusChange is the request body for driver and trip status changes.
type StatusChange struct {
	Status string `json:"status"`
}

// NewTrip is the request body for trip creation.
type NewTrip struct {
	VehicleID   string  `json:"vehicleId"`
	DriverID    string  `json:"driverId"`
	CargoWeight int     `json:"cargoWeight"`
	Revenue     float64 `json:"revenue"`
}

// NewMaintenanceExpense is the request body for logging a maintenance expense.
type NewMaintenanceExpense struct {
	Amount float64    `json:"amount"`
	Date   *time.Time `json:"date,omitempty"`
}

// NewFuelExpense is the request body for logging a fuel purchase.
type NewFuelExpense struct {
	Liters        float64    `json:"liters"`
	PricePerLiter float64    `json:"pricePerLiter"`
	Date          *time.Time `json:"date,omitempty"`
}

// RegisterVehicle handles POST /api/v1/vehicles - registers a new fleet vehicle.
func (s *Server) RegisterVehicle(ctx echo.Context) error {
	var body NewVehicle
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	kind, err := vehicle.KindFromString(body.Kind)
	if err != nil {
		return badRequest(ctx, "Invalid vehicle kind: "+err.Error())
	}

	vehicleID := kernel.NewUUID()
	cmd, err := commands.NewRegisterVehicleCommand(
		vehicleID, body.Name, body.Plate, kind, body.MaxLoad, body.Odometer, body.AcquisitionCost,
	)
	if err != nil {
		return badRequest(ctx, "Invalid vehicle data: "+err.Error())
	}

	if err := s.registerVehicleHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: vehicleID.String()})
}

// RegisterDriver handles POST /api/v1/drivers - registers a new driver.
// A driver may be registered with an already expired license; they simply
// cannot be dispatched until it is renewed.
func (s *Server) RegisterDriver(ctx echo.Context) error {
	var body NewDriver
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	driverID := kernel.NewUUID()
	cmd, err := commands.NewRegisterDriverCommand(driverID, body.Name, body.LicenseExpiry)
	if err != nil {
		return badRequest(ctx, "Invalid driver data: "+err.Error())
	}

	if err := s.registerDriverHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: driverID.String()})
}

// ChangeDriverStatus handles POST /api/v1/drivers/:id/status.
func (s *Server) ChangeDriverStatus(ctx echo.Context) error {
	driverID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid driver ID")
	}

	var body StatusChange
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	status, err := driver.StatusFromString(body.Status)
	if err != nil {
		return badRequest(ctx, "Invalid driver status: "+err.Error())
	}

	cmd, err := commands.NewChangeDriverStatusCommand(driverID, status)
	if err != nil {
		return badRequest(ctx, "Invalid status change: "+err.Error())
	}

	if err := s.changeDriverStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CreateTrip handles POST /api/v1/trips - creates a trip in Draft status after
// validating the vehicle and driver assignment.
func (s *Server) CreateTrip(ctx echo.Context) error {
	var body NewTrip
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	vehicleID, err := kernel.UUIDFromString(body.VehicleID)
	if err != nil {
		return badRequest(ctx, "Invalid vehicle ID")
	}

	driverID, err := kernel.UUIDFromString(body.DriverID)
	if err != nil {
		return badRequest(ctx, "Invalid driver ID")
	}

	tripID := kernel.NewUUID()
	cmd, err := commands.NewCreateTripCommand(tripID, vehicleID, driverID, body.CargoWeight, body.Revenue)
	if err != nil {
		return badRequest(ctx, "Invalid trip data: "+err.Error())
	}

	if err := s.createTripHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: tripID.String()})
}

// TransitionTrip handles POST /api/v1/trips/:id/status - moves a trip through
// its lifecycle and cascades the vehicle status change in the same transaction.
func (s *Server) TransitionTrip(ctx echo.Context) error {
	tripID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid trip ID")
	}

	var body StatusChange
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	target, err := trip.StatusFromString(body.Status)
	if err != nil {
		return badRequest(ctx, "Invalid trip status: "+err.Error())
	}

	cmd, err := commands.NewTransitionTripCommand(tripID, target)
	if err != nil {
		return badRequest(ctx, "Invalid status change: "+err.Error())
	}

	if err := s.transitionTripHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// LogMaintenance handles POST /api/v1/vehicles/:id/maintenance - records a
// maintenance expense and moves the vehicle into the shop.
func (s *Server) LogMaintenance(ctx echo.Context) error {
	vehicleID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid vehicle ID")
	}

	var body NewMaintenanceExpense
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	expenseID := kernel.NewUUID()
	cmd, err := commands.NewLogMaintenanceCommand(expenseID, vehicleID, body.Amount, expenseDate(body.Date))
	if err != nil {
		return badRequest(ctx, "Invalid maintenance data: "+err.Error())
	}

	if err := s.logMaintenanceHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: expenseID.String()})
}

// LogFuel handles POST /api/v1/vehicles/:id/fuel - records a fuel purchase.
// The expense amount is derived from liters and price per liter.
func (s *Server) LogFuel(ctx echo.Context) error {
	vehicleID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid vehicle ID")
	}

	var body NewFuelExpense
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	expenseID := kernel.NewUUID()
	cmd, err := commands.NewLogFuelCommand(
		expenseID, vehicleID, body.Liters, body.PricePerLiter, expenseDate(body.Date),
	)
	if err != nil {
		return badRequest(ctx, "Invalid fuel data: "+err.Error())
	}

	if err := s.logFuelHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: expenseID.String()})
}

// CompleteMaintenance handles POST /api/v1/vehicles/:id/maintenance/complete.
// Completing maintenance on a vehicle that is already available is a no-op.
func (s *Server) CompleteMaintenance(ctx echo.Context) error {
	vehicleID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid vehicle ID")
	}

	cmd, err := commands.NewCompleteMaintenanceCommand(vehicleID)
	if err != nil {
		return badRequest(ctx, "Invalid request: "+err.Error())
	}

	if err := s.completeMaintenanceHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RetireVehicle handles POST /api/v1/vehicles/:id/retire - permanently removes
// a vehicle from service.
func (s *Server) RetireVehicle(ctx echo.Context) error {
	vehicleID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid vehicle ID")
	}

	cmd, err := commands.NewRetireVehicleCommand(vehicleID)
	if err != nil {
		return badRequest(ctx, "Invalid request: "+err.Error())
	}

	if err := s.retireVehicleHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetFleetMetrics handles GET /api/v1/metrics - returns fleet-wide financial
// and operational metrics.
func (s *Server) GetFleetMetrics(ctx echo.Context) error {
	query := queries.NewGetFleetMetricsQuery()

	metrics, err := s.getFleetMetricsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return internalError(ctx, "Failed to retrieve fleet metrics")
	}

	type vehicleROI struct {
		ID   string  `json:"id"`
		Name string  `json:"name"`
		ROI  float64 `json:"roi"`
	}
	type response struct {
		VehicleROI      []vehicleROI `json:"vehicleRoi"`
		UtilizationRate float64      `json:"utilizationRate"`
		ComplianceRate  float64      `json:"complianceRate"`
		NetProfit       float64      `json:"netProfit"`
	}

	resp := response{
		VehicleROI:      make([]vehicleROI, len(metrics.VehicleROI)),
		UtilizationRate: metrics.UtilizationRate,
		ComplianceRate:  metrics.ComplianceRate,
		NetProfit:       metrics.NetProfit,
	}
	for i, v := range metrics.VehicleROI {
		resp.VehicleROI[i] = vehicleROI{ID: v.ID.String(), Name: v.Name, ROI: v.ROI}
	}

	return ctx.JSON(http.StatusOK, resp)
}

// GetLicenseExpiryReport handles GET /api/v1/compliance - returns license
// expiry standing for every driver, most urgent first.
func (s *Server) GetLicenseExpiryReport(ctx echo.Context) error {
	query := queries.NewGetLicenseExpiryReportQuery()

	report, err := s.getLicenseExpiryReportHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return internalError(ctx, "Failed to retrieve license expiry report")
	}

	type entry struct {
		ID            string    `json:"id"`
		Name          string    `json:"name"`
		LicenseExpiry time.Time `json:"licenseExpiry"`
		DaysRemaining int       `json:"daysRemaining"`
		Bucket        string    `json:"bucket"`
	}

	resp := make([]entry, len(report))
	for i, r := range report {
		resp[i] = entry{
			ID:            r.ID.String(),
			Name:          r.Name,
			LicenseExpiry: r.LicenseExpiry,
			DaysRemaining: r.DaysRemaining,
			Bucket:        r.Bucket.String(),
		}
	}

	return ctx.JSON(http.StatusOK, resp)
}

// GetSafetyReport handles GET /api/v1/safety - returns per-driver safety
// scores with fleet aggregates.
func (s *Server) GetSafetyReport(ctx echo.Context) error {
	query := queries.NewGetSafetyReportQuery()

	report, err := s.getSafetyReportHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return internalError(ctx, "Failed to retrieve safety report")
	}

	type driverScore struct {
		ID    string  `json:"id"`
		Name  string  `json:"name"`
		Score float64 `json:"score"`
	}
	type response struct {
		Drivers        []driverScore `json:"drivers"`
		AverageScore   float64       `json:"averageScore"`
		HighRiskCount  int           `json:"highRiskCount"`
		CompliantCount int           `json:"compliantCount"`
	}

	resp := response{
		Drivers:        make([]driverScore, len(report.Drivers)),
		AverageScore:   report.AverageScore,
		HighRiskCount:  report.HighRiskCount,
		CompliantCount: report.CompliantCount,
	}
	for i, d := range report.Drivers {
		resp.Drivers[i] = driverScore{ID: d.ID.String(), Name: d.Name, Score: d.Score}
	}

	return ctx.JSON(http.StatusOK, resp)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "Healthy")
}

func expenseDate(date *time.Time) time.Time {
	if date != nil {
		return *date
	}
	return time.Now().UTC()
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

func internalError(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusInternalServerError, Error{
		Code:    http.StatusInternalServerError,
		Message: message,
	})
}

// domainError maps use case failures to HTTP status codes. Missing aggregates
// map to 404, lost optimistic concurrency races to 409, business rule
// violations to 422, and anything else to 500.
func domainError(ctx echo.Context, err error) error {
	var capacityErr *services.CapacityExceededError

	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return ctx.JSON(http.StatusNotFound, Error{
			Code:    http.StatusNotFound,
			Message: err.Error(),
		})
	case errors.Is(err, errs.ErrPreconditionFailed):
		return ctx.JSON(http.StatusConflict, Error{
			Code:    http.StatusConflict,
			Message: err.Error(),
		})
	case errors.As(err, &capacityErr),
		errors.Is(err, services.ErrVehicleUnavailable),
		errors.Is(err, services.ErrDriverIneligible),
		errors.Is(err, services.ErrVehicleRetired),
		errors.Is(err, vehicle.ErrIllegalTransition),
		errors.Is(err, trip.ErrIllegalTransition):
		return ctx.JSON(http.StatusUnprocessableEntity, Error{
			Code:    http.StatusUnprocessableEntity,
			Message: err.Error(),
		})
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, errs.ErrValueIsRequired):
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		})
	}

	return internalError(ctx, "Internal server error")
}
