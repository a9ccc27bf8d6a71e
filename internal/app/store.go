package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/toneshift-backend/internal/adapter/postgres"
	pgtransformation "github.com/heartmarshall/toneshift-backend/internal/adapter/postgres/transformation"
	"github.com/heartmarshall/toneshift-backend/internal/adapter/redis"
	redistransformation "github.com/heartmarshall/toneshift-backend/internal/adapter/redis/transformation"
	"github.com/heartmarshall/toneshift-backend/internal/adapter/sqlite"
	sqlitetransformation "github.com/heartmarshall/toneshift-backend/internal/adapter/sqlite/transformation"
	"github.com/heartmarshall/toneshift-backend/internal/config"
	"github.com/heartmarshall/toneshift-backend/internal/domain"
)

// transformationStore is what every store driver provides.
type transformationStore interface {
	Create(ctx context.Context, t domain.NewTransformation) (*domain.Transformation, error)
	ListRecent(ctx context.Context, limit int) ([]domain.Transformation, error)
	Ping(ctx context.Context) error
}

// openStore connects the configured store driver, applying migrations first
// when store.auto_migrate is set. The returned close function releases the
// connection.
func openStore(ctx context.Context, cfg *config.Config, log *slog.Logger) (transformationStore, func(), error) {
	switch cfg.Store.Driver {
	case config.DriverPostgres:
		if cfg.Store.AutoMigrate {
			if err := postgres.Migrate(ctx, cfg.Database.DSN, log); err != nil {
				return nil, nil, fmt.Errorf("migrate postgres: %w", err)
			}
		}
		pool, err := postgres.NewPool(ctx, cfg.Database)
		if err != nil {
			return nil, nil, err
		}
		return pgtransformation.New(pool), pool.Close, nil

	case config.DriverSQLite:
		db, err := sqlite.Open(ctx, cfg.SQLite.Path)
		if err != nil {
			return nil, nil, err
		}
		if cfg.Store.AutoMigrate {
			if err := sqlite.Migrate(ctx, db, log); err != nil {
				_ = db.Close()
				return nil, nil, fmt.Errorf("migrate sqlite: %w", err)
			}
		}
		return sqlitetransformation.New(db), func() { _ = db.Close() }, nil

	case config.DriverRedis:
		client, err := redis.NewClient(ctx, cfg.Redis)
		if err != nil {
			return nil, nil, err
		}
		repo := redistransformation.NewFromClient(client, redistransformation.WithPrefix(cfg.Redis.KeyPrefix))
		return repo, func() { _ = client.Close() }, nil

	default:
		return nil, nil, fmt.Errorf("unknown store driver %q", cfg.Store.Driver)
	}
}

// Migrate applies pending schema migrations for the configured store.
// The redis driver is schemaless and needs none.
func Migrate(ctx context.Context, cfg *config.Config, log *slog.Logger) error {
	switch cfg.Store.Driver {
	case config.DriverPostgres:
		return postgres.Migrate(ctx, cfg.Database.DSN, log)
	case config.DriverSQLite:
		db, err := sqlite.Open(ctx, cfg.SQLite.Path)
		if err != nil {
			return err
		}
		defer db.Close()
		return sqlite.Migrate(ctx, db, log)
	case config.DriverRedis:
		log.InfoContext(ctx, "redis store has no migrations")
		return nil
	default:
		return fmt.Errorf("unknown store driver %q", cfg.Store.Driver)
	}
}
