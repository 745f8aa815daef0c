// Command migrate applies the SQL files under migrations/ that have not run yet.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"time"

	"toolshare/internal/infra/db"
	"toolshare/internal/pkg/config"
)

func main() {
	dir := flag.String("dir", "migrations", "directory holding *.sql migrations")
	timeout := flag.Duration("timeout", time.Minute, "overall timeout")
	flag.Parse()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadDBConfig()
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	if err := db.ApplyMigrations(ctx, cfg, *dir); err != nil {
		logger.Error("migration failed", "error", err)
		os.Exit(1)
	}
	logger.Info("migrations applied", "dir", *dir)
}
