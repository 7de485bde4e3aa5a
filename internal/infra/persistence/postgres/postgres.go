// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"log/slog"
	"time"

	"passport/config"
	"passport/internal/errors"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"go.uber.org/fx"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const pingTimeout = 10 * time.Second

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New creates the PostgreSQL client and wires its lifecycle: ping and
// migrations on start, connection close on stop.
func New(params Params) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(params.Config.Postgres.DSN()), &gorm.Config{
		// Surface duplicate-key violations as gorm.ErrDuplicatedKey so the
		// repositories can map them to domain errors.
		TranslateError: true,
		Logger:         newQueryLogger(params.Logger, params.Config),
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create PostgreSQL client")
	}

	db = db.Session(&gorm.Session{
		// Single-statement writes don't need GORM's implicit transaction;
		// multi-step operations go through the transaction manager.
		SkipDefaultTransaction: true,
	})

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get PostgreSQL sql.DB")
	}

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, pingTimeout)
			defer cancel()

			if err := sqlDB.PingContext(ctx); err != nil {
				return errors.Wrap(err, "failed to ping PostgreSQL")
			}

			if err := applyMigrations(params.Config, params.Logger); err != nil {
				return err
			}

			return nil
		},
		OnStop: func(_ context.Context) error {
			return sqlDB.Close()
		},
	})

	return db, nil
}

// applyMigrations brings the schema up to date. The unique constraints on
// accounts.username and accounts.email live here; their violation is the
// authoritative duplicate-identity signal.
func applyMigrations(cfg *config.Config, log *slog.Logger) error {
	if cfg.Postgres.MigrationsPath == "" {
		log.Debug("No migrations path configured, skipping migrations")

		return nil
	}

	m, err := migrate.New(cfg.Postgres.MigrationsPath, cfg.Postgres.DSN())
	if err != nil {
		return errors.Wrap(err, "failed to create migrator")
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return errors.Wrap(err, "failed to apply migrations")
	}

	log.Info("Database schema is up to date")

	return nil
}
