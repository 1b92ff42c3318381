// Package migration applies the embedded SQL schema migrations.
package migration

import (
	"context"
	"embed"
	"io/fs"
	"log/slog"

	"crm/config"
	"crm/internal/domain/lifecycle"
	"crm/internal/errors"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

//go:embed sql/*.sql
var migrationsFS embed.FS

// Direction selects which way the migrations run.
type Direction string

const (
	Up   Direction = "up"
	Down Direction = "down"
)

// Apply runs every pending migration in the given direction.
// It borrows a single connection from db and leaves the pool open.
func Apply(ctx context.Context, db *gorm.DB, direction Direction) error {
	srcDriver, err := iofs.New(migrationsFS, "sql")
	if err != nil {
		return errors.Wrap(err, "init iofs")
	}

	sqlDB, err := db.DB()
	if err != nil {
		return errors.Wrap(err, "get sql db")
	}

	conn, err := sqlDB.Conn(ctx)
	if err != nil {
		return errors.Wrap(err, "acquire connection")
	}

	// Closing the migrator closes the borrowed connection only.
	dbDriver, err := postgres.WithConnection(ctx, conn, &postgres.Config{})
	if err != nil {
		_ = conn.Close()

		return errors.Wrap(err, "init db driver")
	}

	m, err := migrate.NewWithInstance("iofs", srcDriver, "postgres", dbDriver)
	if err != nil {
		_ = dbDriver.Close()

		return errors.Wrap(err, "init migrate")
	}
	defer m.Close()

	switch direction {
	case Up:
		err = m.Up()
	case Down:
		err = m.Down()
	default:
		return errors.Errorf("unknown migration direction: %s", direction)
	}

	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		if errors.Is(err, fs.ErrNotExist) {
			return errors.Wrapf(err, "migrate %s (every version needs both .up.sql and .down.sql)", direction)
		}

		return errors.Wrapf(err, "migrate %s", direction)
	}

	return nil
}

// AutoMigrateParams defines the dependencies of RegisterAutoMigrate
type AutoMigrateParams struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
	DB     *gorm.DB
}

// RegisterAutoMigrate applies pending migrations on start when migration.autoMigrate is set.
func RegisterAutoMigrate(params AutoMigrateParams) {
	if params.Config.Migration == nil || !params.Config.Migration.AutoMigrate {
		return
	}

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := Apply(ctx, params.DB, Up); err != nil {
				return err
			}
			params.Logger.Info("Database migrations applied")

			return nil
		},
	})
}
