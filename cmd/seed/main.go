package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/Diegosch1990/sistema-reserva-quadras/internal/config"
	"github.com/Diegosch1990/sistema-reserva-quadras/internal/court"
	"github.com/Diegosch1990/sistema-reserva-quadras/internal/db"
	"github.com/Diegosch1990/sistema-reserva-quadras/internal/logger"
	"github.com/Diegosch1990/sistema-reserva-quadras/internal/seed"
	"github.com/Diegosch1990/sistema-reserva-quadras/internal/settings"
)

func main() {
	path := flag.String("file", "seed.toml", "seed file with courts and operating hours")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	zlog, err := logger.New(cfg.IsProduction, cfg.LogLevel)
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer func() { _ = zlog.Sync() }()

	f, err := seed.Load(*path)
	if err != nil {
		zlog.Fatal("failed to read seed file", zap.Error(err))
	}

	pool, err := db.NewPool(ctx, cfg.DBDSN)
	if err != nil {
		zlog.Fatal("failed to connect to db", zap.Error(err))
	}
	defer pool.Close()

	if err := db.EnsureSchema(ctx, pool); err != nil {
		zlog.Fatal("failed to apply schema", zap.Error(err))
	}

	courts := court.NewService(court.NewPgxRepository(pool))
	hours := settings.NewService(settings.NewPgxRepository(pool), zlog.Named("settings"))

	if err := seed.Apply(ctx, f, courts, hours, zlog.Named("seed")); err != nil {
		zlog.Fatal("seed failed", zap.Error(err))
	}
	zlog.Info("seed complete", zap.String("file", *path))
}
