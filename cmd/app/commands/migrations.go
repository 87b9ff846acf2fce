package commands

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/mysql"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
)

// RunMigrations applies every pending migration from migrations/{mysql,postgresql}
// relative to the working directory. No pending migrations is not an error.
func RunMigrations(logger *slog.Logger, driver, connectionString string) error {
	sourceURL, databaseURL, err := migrationURLs(driver, connectionString)
	if err != nil {
		return err
	}

	logger.Info("running database migrations", slog.String("driver", driver))

	m, err := migrate.New(sourceURL, databaseURL)
	if err != nil {
		return fmt.Errorf("failed to create migrate instance: %w", err)
	}
	defer closeMigrate(m, logger)

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	logger.Info("migrations completed successfully")
	return nil
}

// migrationURLs maps the application driver name to the migrate source and database
// URLs. The mysql driver expects its DSN behind a mysql:// scheme.
func migrationURLs(driver, connectionString string) (sourceURL, databaseURL string, err error) {
	switch driver {
	case "mysql":
		databaseURL = connectionString
		if !strings.HasPrefix(databaseURL, "mysql://") {
			databaseURL = "mysql://" + databaseURL
		}
		return "file://migrations/mysql", databaseURL, nil
	case "postgres":
		return "file://migrations/postgresql", connectionString, nil
	default:
		return "", "", fmt.Errorf("unsupported database driver: %s", driver)
	}
}
