// Package cli provides common initialization utilities for cmd/fintrack.
package cli

import (
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"fintrack/internal/config"
	"fintrack/internal/storage"
)

// SetupLogger initializes structured logging with default settings.
// Returns the configured logger and sets it as the default logger.
func SetupLogger() *slog.Logger {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)
	return logger
}

// LoadEnvFile loads the .env file for local development.
// Errors are ignored silently as this is optional in production.
func LoadEnvFile() {
	_ = godotenv.Load()
}

// LoadAndValidateConfig loads configuration and validates it.
// Returns the config or exits the process on validation failure.
func LoadAndValidateConfig(logger *slog.Logger) *config.Config {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		logger.Error("Configuration validation failed", "error", err)
		os.Exit(1)
	}
	return cfg
}

// InitStore opens the key-value store selected by the configuration.
// Returns the store or exits the process on failure.
func InitStore(logger *slog.Logger, cfg *config.Config) storage.Store {
	switch cfg.DataBackend {
	case "sqlite":
		store, err := storage.NewSQLiteStore(cfg.SQLiteDBPath)
		if err != nil {
			logger.Error("Failed to initialize SQLite store", "error", err, "path", cfg.SQLiteDBPath)
			os.Exit(1)
		}
		return store
	default:
		logger.Warn("Using in-memory store, data will not survive restarts")
		return storage.NewMemoryStore()
	}
}
