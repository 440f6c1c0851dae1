package main

import (
	"database/sql"
	"flag"
	"log"
	"net/http"
	"time"

	_ "github.com/lib/pq"

	httpapi "rentalmanager-backend/internal/api/http"
	"rentalmanager-backend/internal/config"
	"rentalmanager-backend/internal/logger"
	"rentalmanager-backend/internal/repository/postgres"
	"rentalmanager-backend/internal/security"
	"rentalmanager-backend/internal/service"
	"rentalmanager-backend/internal/storage"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting Rental Manager backend...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "address", cfg.GetServerAddress())
	logger.Info("Database configuration", "host", cfg.Database.Host, "port", cfg.Database.Port, "database", cfg.Database.Database, "user", cfg.Database.User)

	// Initialize Database
	db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Test database connection
	if err := db.Ping(); err != nil {
		logger.Error("Failed to ping database", "error", err)
		log.Fatalf("Failed to ping database: %v", err)
	}
	logger.Info("Database connection established")

	// Initialize Repositories
	store := postgres.NewStore(db)

	// Initialize Security
	tokenManager := security.NewTokenManager(cfg.Auth.JWTSecret, time.Duration(cfg.Auth.TokenExpiryHours)*time.Hour)

	// Initialize Storage Service
	imageStorage, err := storage.New(cfg.Storage)
	if err != nil {
		logger.Error("Failed to initialize storage", "error", err, "type", cfg.Storage.Type)
		log.Fatalf("Failed to initialize storage: %v", err)
	}
	logger.Info("Storage backend ready", "type", cfg.Storage.Type)

	// Initialize Services
	emailSvc := service.NewEmailService(cfg.Email)
	authSvc := service.NewAuthService(tokenManager, cfg.Auth.StaffPasswordHash)
	customerSvc := service.NewCustomerService(store.CustomerRepository)
	bookingSvc := service.NewBookingService(
		store.RentalRepository,
		store.VehicleRepository,
		store.CustomerRepository,
		store.RentalRequestRepository,
	)
	vehicleSvc := service.NewVehicleService(store.VehicleRepository, bookingSvc)
	requestSvc := service.NewRequestService(
		store.RentalRequestRepository,
		store.CustomerRepository,
		store.VehicleRepository,
		bookingSvc,
		store.SettingsRepository,
		emailSvc,
		cfg.Email.StaffEmail,
	)
	settingsSvc := service.NewSettingsService(store.SettingsRepository)
	imageSvc := service.NewImageService(imageStorage, requestSvc, cfg.Storage.MaxFileSizeMB)

	// Set up HTTP server
	router := httpapi.NewRouter(httpapi.Services{
		Auth:      authSvc,
		Vehicles:  vehicleSvc,
		Customers: customerSvc,
		Booking:   bookingSvc,
		Requests:  requestSvc,
		Settings:  settingsSvc,
		Images:    imageSvc,
		Storage:   imageStorage,
	})

	server := &http.Server{
		Addr:         cfg.GetServerAddress(),
		Handler:      router,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	logger.Info("HTTP server listening", "address", cfg.GetServerAddress())
	if err := server.ListenAndServe(); err != nil {
		logger.Error("HTTP server error", "error", err)
		log.Fatalf("Failed to serve: %v", err)
	}
}
