package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"fleetflow/cmd"
	"fleetflow/internal/adapters/out/postgres/driverrepo"
	"fleetflow/internal/adapters/out/postgres/expenserepo"
	"fleetflow/internal/adapters/out/postgres/triprepo"
	"fleetflow/internal/adapters/out/postgres/vehiclerepo"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	db, err := gorm.Open(gorm_postgres.Open(configs.DSN()), &gorm.Config{})
	if err != nil {
		logger.Error("failed to connect database", "error", err)
		os.Exit(1)
	}

	err = db.AutoMigrate(
		&vehiclerepo.VehicleDTO{},
		&driverrepo.DriverDTO{},
		&triprepo.TripDTO{},
		&expenserepo.ExpenseDTO{},
	)
	if err != nil {
		logger.Error("failed to migrate database", "error", err)
		os.Exit(1)
	}

	app := cmd.NewCompositionRoot(configs, db, logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		if watchErr := app.MetricsCache().Watch(ctx, app.ChangeFeed(), logger); watchErr != nil {
			logger.Error("metrics cache watch stopped", "error", watchErr)
		}
	}()

	jobManager := app.CreateJobManager()
	if err := jobManager.StartAll(); err != nil {
		logger.Error("failed to start jobs", "error", err)
		os.Exit(1)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:   goDotEnvVariable("HTTP_PORT"),
		DBHost:     goDotEnvVariable("DB_HOST"),
		DBPort:     goDotEnvVariable("DB_PORT"),
		DBUser:     goDotEnvVariable("DB_USER"),
		DBPassword: goDotEnvVariable("DB_PASSWORD"),
		DBName:     goDotEnvVariable("DB_NAME"),
		DBSslMode:  goDotEnvVariable("DB_SSLMODE"),
	}
	return config
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()
	app.CreateHTTPServer().RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
