package postgres

import (
	"errors"
	"fmt"
	"strings"

	"github.com/aussiebroadwan/taskboard/internal/taskboard/store/drivers/postgres/migrations"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

// ApplyMigrations applies the embedded migrations through a dedicated
// connection opened by golang-migrate's pgx/v5 driver.
func (s *Store) ApplyMigrations() error {
	if s.url == "" {
		return errors.New("postgres: no database url to migrate")
	}

	migrationsFilesystem, err := iofs.New(migrations.Migrations, ".")
	if err != nil {
		return err
	}

	instance, err := migrate.NewWithSourceInstance("iofs", migrationsFilesystem, migrateURL(s.url))
	if err != nil {
		return fmt.Errorf("postgres: init migrate: %w", err)
	}
	defer func() { _, _ = instance.Close() }()

	err = instance.Up()
	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}

	return nil
}

// migrateURL rewrites a libpq style URL to the scheme the pgx/v5 migrate
// driver registers.
func migrateURL(url string) string {
	for _, prefix := range []string{"postgres://", "postgresql://"} {
		if rest, ok := strings.CutPrefix(url, prefix); ok {
			return "pgx5://" + rest
		}
	}
	return url
}
