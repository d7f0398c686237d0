package migration

import (
	"database/sql"
	"fmt"
	"log/slog"
	"os"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/lib/pq"
)

// Config holds migration configuration
type Config struct {
	MigrationsPath string
	DatabaseURL    string
	Logger         *slog.Logger
}

// Runner handles database migrations
type Runner struct {
	config *Config
	logger *slog.Logger
}

// NewRunner creates a new migration runner
func NewRunner(config *Config) *Runner {
	logger := config.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(os.Stdout, nil))
	}
	return &Runner{config: config, logger: logger}
}

// Up runs all pending migrations
func (r *Runner) Up() error {
	m, err := r.getMigrate()
	if err != nil {
		return fmt.Errorf("failed to initialize migrate: %w", err)
	}
	defer m.Close()

	if err := m.Up(); err != nil {
		if err == migrate.ErrNoChange {
			r.logger.Info("No new migrations to run")
			return nil
		}
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	r.logger.Info("Migrations completed successfully")
	return nil
}

// Version returns the current migration version
func (r *Runner) Version() (uint, bool, error) {
	m, err := r.getMigrate()
	if err != nil {
		return 0, false, fmt.Errorf("failed to initialize migrate: %w", err)
	}
	defer m.Close()

	version, dirty, err := m.Version()
	if err != nil {
		if err == migrate.ErrNilVersion {
			return 0, false, nil
		}
		return 0, false, fmt.Errorf("failed to get version: %w", err)
	}
	return version, dirty, nil
}

// getMigrate creates a new migrate instance
func (r *Runner) getMigrate() (*migrate.Migrate, error) {
	db, err := sql.Open("postgres", r.config.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	driver, err := postgres.WithInstance(db, &postgres.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to create postgres driver: %w", err)
	}

	return migrate.NewWithDatabaseInstance(
		fmt.Sprintf("file://%s", r.config.MigrationsPath),
		"postgres",
		driver,
	)
}

// AutoMigrate runs migrations automatically on application start.
func AutoMigrate(dbURL, migrationsPath string, logger *slog.Logger) error {
	runner := NewRunner(&Config{
		MigrationsPath: migrationsPath,
		DatabaseURL:    dbURL,
		Logger:         logger,
	})

	version, dirty, err := runner.Version()
	if err != nil {
		logger.Error("Failed to get migration version", "error", err)
		return err
	}
	if dirty {
		logger.Warn("Database is in dirty state", "version", version)
		return fmt.Errorf("database in dirty state at version %d", version)
	}

	if err := runner.Up(); err != nil {
		return err
	}

	newVersion, _, err := runner.Version()
	if err != nil {
		return err
	}
	logger.Info("Migration completed", "from_version", version, "to_version", newVersion)
	return nil
}
