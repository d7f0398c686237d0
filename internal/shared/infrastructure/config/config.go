package config

import (
	"os"

	"github.com/dottify/dottify-backend/internal/shared/infrastructure/database"
)

// Config holds all configuration for the application
type Config struct {
	Server   ServerConfig
	Database database.PostgresConfig
	JWT      JWTConfig
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Port           string
	AllowedOrigins string
	MigrationsPath string
}

// JWTConfig holds the secret shared with the external identity provider.
// Tokens are issued by the provider; this service only validates them.
type JWTConfig struct {
	Secret string
}

// Load reads configuration from environment variables
func Load() Config {
	return Config{
		Server: ServerConfig{
			Port:           getEnv("PORT", "8080"),
			AllowedOrigins: getEnv("ALLOWED_ORIGINS", "http://localhost:4200"),
			MigrationsPath: getEnv("MIGRATIONS_PATH", "./migrations"),
		},
		Database: database.PostgresConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", ""),
			DBName:   getEnv("DB_NAME", "dottify"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
		JWT: JWTConfig{
			Secret: getEnv("JWT_SECRET", "default-dev-secret"),
		},
	}
}

// getEnv reads an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
