package bootstrap

import (
	"context"
	"fmt"
	"time"

	"dealswap/internal/infra/db"
	"dealswap/internal/pkg/config"
	"dealswap/migrations"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var DBModule = fx.Module("db",
	fx.Provide(
		NewDB,
	),
)

func NewDB(lc fx.Lifecycle, cfg config.Config) (*pgxpool.Pool, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, cleanup, err := db.Connect(ctx, cfg.DB)
	if err != nil {
		return nil, err
	}

	if err := db.ApplyMigrations(ctx, pool, migrations.FS); err != nil {
		cleanup()
		return nil, fmt.Errorf("failed to apply migrations: %w", err)
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			if cleanup != nil {
				cleanup()
			}
			return nil
		},
	})

	return pool, nil
}
