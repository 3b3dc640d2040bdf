package main

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"warehouse/cmd"
	httpin "warehouse/internal/adapters/in/http"
	"warehouse/internal/core/domain/model/warehouse"
	"warehouse/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	gormDB := openDatabase(configs)

	app := cmd.NewCompositionRoot(configs, gormDB)

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	jobManager := jobs.NewJobManager(
		app.CreateGetUnfulfilledOrdersQueryHandler(),
		app.CreateFulfillOrderCommandHandler(),
		app.CreateCreateRestockOrderCommandHandler(),
		logger,
	)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:     goDotEnvVariable("HTTP_PORT"),
		DBHost:       goDotEnvVariable("DB_HOST"),
		DBPort:       goDotEnvVariable("DB_PORT"),
		DBUser:       goDotEnvVariable("DB_USER"),
		DBPassword:   goDotEnvVariable("DB_PASSWORD"),
		DBName:       goDotEnvVariable("DB_NAME"),
		DBSslMode:    goDotEnvVariable("DB_SSLMODE"),
		GridRows:     goDotEnvIntVariable("GRID_ROWS", warehouse.DefaultRows),
		GridCols:     goDotEnvIntVariable("GRID_COLS", warehouse.DefaultCols),
		GridCapacity: goDotEnvIntVariable("GRID_CAPACITY", warehouse.DefaultCapacity),
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

func goDotEnvIntVariable(key string, fallback int) int {
	raw := goDotEnvVariable(key)
	if raw == "" {
		return fallback
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		log.Fatalf("Invalid value for %s: %v", key, err)
	}
	return value
}

func openDatabase(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(postgresdriver.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	return gormDB
}

func startWebServer(app cmd.CompositionRoot, port string) {
	server := httpin.NewServer(
		app.CreateCreateCustomerOrderCommandHandler(),
		app.CreateFulfillOrderCommandHandler(),
		app.CreateStoreDeliveryCommandHandler(),
		app.CreateCreateRestockOrderCommandHandler(),
		app.CreateCreateShortfallOrderCommandHandler(),
		app.CreateGetStockLevelsQueryHandler(),
		app.CreateGetUnfulfilledOrdersQueryHandler(),
		app.CreateGetOrderCostQueryHandler(),
		app.CreateGetCatalogQueryHandler(),
	)

	e := echo.New()
	httpin.RegisterRoutes(e, server)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
