package postgres

import (
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"

	"github.com/xy-planning-network/habits"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// NewMigrator constructs a *migrate.Migrate applying the embedded migrations
// to the database at databaseURL.
//
// The caller must Close it.
func NewMigrator(databaseURL string) (*migrate.Migrate, error) {
	src, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return nil, fmt.Errorf("%w: failed reading migrations: %s", habits.ErrUnexpected, err)
	}

	m, err := migrate.NewWithSourceInstance("iofs", src, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("%w: failed creating migrator: %s", habits.ErrUnexpected, err)
	}

	return m, nil
}

// Migrate applies every migration not yet applied.
// A database already up to date is not an error.
func Migrate(databaseURL string) error {
	return withMigrator(databaseURL, func(m *migrate.Migrate) error { return m.Up() })
}

// MigrateDown reverts the most recently applied migration.
func MigrateDown(databaseURL string) error {
	return withMigrator(databaseURL, func(m *migrate.Migrate) error { return m.Steps(-1) })
}

// MigrationVersion reports the version of the last applied migration
// and whether it failed partway, leaving the database dirty.
// A database without migrations is at version 0.
func MigrationVersion(databaseURL string) (version uint, dirty bool, err error) {
	err = withMigrator(databaseURL, func(m *migrate.Migrate) error {
		var verr error
		version, dirty, verr = m.Version()
		if errors.Is(verr, migrate.ErrNilVersion) {
			return nil
		}

		return verr
	})

	return version, dirty, err
}

func withMigrator(databaseURL string, fn func(m *migrate.Migrate) error) error {
	m, err := NewMigrator(databaseURL)
	if err != nil {
		return err
	}
	defer m.Close()

	if err := fn(m); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("%w: failed migrating: %s", habits.ErrUnexpected, err)
	}

	return nil
}
