package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"dealswap/internal/handler/middleware"
	"dealswap/internal/infra/catalog"
	"dealswap/internal/infra/db"
	"dealswap/internal/infra/uow"
	"dealswap/internal/pkg/config"
	"dealswap/migrations"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type seedConfig struct {
	DB  config.DBConfig
	Log config.LogConfig
}

func main() {
	catalogPath := flag.String("catalog", "configs/catalog.yaml", "path to the deal and coupon catalog")
	skipMigrate := flag.Bool("skip-migrate", false, "do not apply schema migrations first")
	timeout := flag.Duration("timeout", 2*time.Minute, "overall deadline")
	flag.Parse()

	if err := run(*catalogPath, *skipMigrate, *timeout); err != nil {
		slog.Error("seed failed", "error", err)
		os.Exit(1)
	}
}

func run(catalogPath string, skipMigrate bool, timeout time.Duration) error {
	if err := godotenv.Load(); err != nil {
		slog.Debug("no .env file loaded", "error", err.Error())
	}

	var cfg seedConfig
	if err := envconfig.Process("", &cfg); err != nil {
		return err
	}
	middleware.NewLogger(cfg.Log)

	c, err := catalog.Load(catalogPath)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	pool, closePool, err := db.Connect(ctx, cfg.DB)
	if err != nil {
		return err
	}
	defer closePool()

	if !skipMigrate {
		if err := db.ApplyMigrations(ctx, pool, migrations.FS); err != nil {
			return err
		}
	}

	if err := catalog.Apply(ctx, uow.NewPostgresUoW(pool), c); err != nil {
		return err
	}

	slog.Info("🌱 catalog seeded", "deals", len(c.Deals), "coupons", len(c.Coupons), "source", catalogPath)
	return nil
}
