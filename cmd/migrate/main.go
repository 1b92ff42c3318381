package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"crm/config"
	"crm/internal/errors"
	logs "crm/internal/infra/log"
	"crm/internal/infra/persistence/migration"

	pgLib "github.com/slighter12/go-lib/database/postgres"
)

func main() {
	direction := flag.String("direction", string(migration.Up), "migration direction: up or down")
	flag.Parse()

	if err := run(migration.Direction(*direction)); err != nil {
		slog.Error("Migration failed", slog.Any("error", err))
		os.Exit(1)
	}
}

func run(direction migration.Direction) error {
	if direction != migration.Up && direction != migration.Down {
		return errors.Errorf("unknown direction %q", direction)
	}

	cfg, err := config.New()
	if err != nil {
		return err
	}

	logger, err := logs.New(logs.Params{Config: cfg})
	if err != nil {
		return err
	}

	db, err := pgLib.New(cfg.Postgres)
	if err != nil {
		return errors.Wrap(err, "failed to create PostgreSQL client")
	}
	sqlDB, err := db.DB()
	if err != nil {
		return errors.Wrap(err, "failed to get PostgreSQL sql.DB")
	}
	defer sqlDB.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("Applying migrations", slog.String("direction", string(direction)))
	if err := migration.Apply(ctx, db, direction); err != nil {
		return err
	}
	logger.Info("Migrations applied", slog.String("direction", string(direction)))

	return nil
}
