package main

import (
	"context"
	"database/sql"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpapi "equipment-rental-backend/internal/api/http"
	"equipment-rental-backend/internal/config"
	"equipment-rental-backend/internal/logger"
	"equipment-rental-backend/internal/repository/postgres"
	"equipment-rental-backend/internal/security"
	"equipment-rental-backend/internal/service"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	flag.Parse()

	// A .env file is optional; real environment variables win.
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Printf("Failed to read .env file: %v", err)
	}

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting Equipment Rental Backend...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "address", cfg.GetServerAddress(), "allowed_origins", cfg.Server.AllowedOrigins)
	logger.Info("Database configuration", "host", cfg.Database.Host, "port", cfg.Database.Port, "database", cfg.Database.Database, "user", cfg.Database.User)
	logger.Info("Rental policy", "max_days", cfg.Rental.MaxDays, "mark_pending_on_submit", cfg.Rental.MarkPendingOnSubmit)

	// Initialize Database
	logger.Debug("Connecting to database...", "connection_string", fmt.Sprintf("%s@%s:%d/%s", cfg.Database.User, cfg.Database.Host, cfg.Database.Port, cfg.Database.Database))
	db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if cfg.Database.MaxConns > 0 {
		db.SetMaxOpenConns(cfg.Database.MaxConns)
	}

	// Test database connection
	if err := db.Ping(); err != nil {
		logger.Error("Failed to ping database", "error", err)
		log.Fatalf("Failed to ping database: %v", err)
	}
	logger.Info("Database connection established")

	// Initialize Repositories
	store := postgres.NewStore(db)
	defer store.Close()

	// Initialize Security
	passwords, err := security.NewPasswordChecker(cfg.Admin.Password, cfg.Admin.PasswordHash)
	if err != nil {
		logger.Error("Invalid admin password configuration", "error", err)
		log.Fatalf("Invalid admin password configuration: %v", err)
	}
	tokenManager := security.NewTokenManager(cfg.Admin.TokenSecret, time.Duration(cfg.Admin.TokenTTLMinutes)*time.Minute)

	// Initialize Email Service
	if !cfg.NotificationsEnabled() {
		logger.Warn("SendGrid API key not set, emails will only be logged")
	}
	emailSvc := service.NewEmailService(service.EmailSettings{
		APIKey:     cfg.Notify.SendGridAPIKey,
		FromEmail:  cfg.Notify.FromEmail,
		FromName:   cfg.Notify.FromName,
		AdminEmail: cfg.Notify.AdminEmail,
	})

	// Initialize Services
	equipmentSvc := service.NewEquipmentService(store.EquipmentRepository, store.RentalRequestRepository)
	rentalSvc := service.NewRentalService(
		store.RentalRequestRepository,
		store.EquipmentRepository,
		emailSvc,
		service.RentalPolicy{
			MaxDays:             cfg.Rental.MaxDays,
			MarkPendingOnSubmit: cfg.Rental.MarkPendingOnSubmit,
		},
	)
	adminSvc := service.NewAdminService(passwords, tokenManager)

	// Initialize HTTP handlers
	handler := httpapi.NewHandler(equipmentSvc, rentalSvc, adminSvc, store)

	srv := &http.Server{
		Addr:         cfg.GetServerAddress(),
		Handler:      httpapi.NewRouter(handler, cfg.Server.AllowedOrigins),
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeoutSeconds) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeoutSeconds) * time.Second,
	}

	go func() {
		logger.Info("HTTP server listening", "address", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("HTTP server error", "error", err)
			log.Fatalf("Failed to serve: %v", err)
		}
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	// Graceful shutdown
	logger.Info("Shutting down HTTP server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("HTTP server shutdown failed", "error", err)
	}
	logger.Info("Server stopped. Goodbye!")
}
