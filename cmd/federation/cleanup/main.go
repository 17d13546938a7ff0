package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jessevdk/go-flags"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/exposurewarn-backend/internal/federation"
	"github.com/goodnatureofminers/exposurewarn-backend/internal/metrics"
	"github.com/goodnatureofminers/exposurewarn-backend/internal/repository/postgres"
)

type config struct {
	PostgresDSN   string `long:"postgres-dsn" env:"FEDERATION_POSTGRES_DSN" description:"Postgres DSN of the batch tracker" required:"true"`
	RetentionDays int    `long:"retention-days" env:"FEDERATION_RETENTION_DAYS" description:"days batch info is kept" default:"14"`
	// Date purges a single date (yyyy-mm-dd) instead of everything past retention.
	Date string `long:"date" env:"FEDERATION_CLEANUP_DATE" description:"purge only this date (yyyy-mm-dd)"`
}

func main() {
	cfg := config{}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()

	if _, err := flags.ParseArgs(&cfg, os.Args); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		logger.Fatal("failed to parse flags", zap.Error(err))
	}

	if err := run(ctx, cfg, logger); err != nil {
		logger.Fatal("federation cleanup failed", zap.Error(err))
	}
}

func run(ctx context.Context, cfg config, logger *zap.Logger) error {
	tracker, err := postgres.NewRepository(cfg.PostgresDSN, metrics.NewPostgresRepository())
	if err != nil {
		return fmt.Errorf("init batch tracker: %w", err)
	}
	defer func() {
		if err := tracker.Close(); err != nil {
			logger.Error("failed to close batch tracker", zap.Error(err))
		}
	}()

	cleaner, err := federation.NewCleaner(tracker, cfg.RetentionDays, logger.Named("cleanup"))
	if err != nil {
		return err
	}

	if cfg.Date != "" {
		date, err := time.Parse(time.DateOnly, cfg.Date)
		if err != nil {
			return fmt.Errorf("parse date: %w", err)
		}
		_, err = cleaner.PurgeDate(ctx, date)
		return err
	}
	_, err = cleaner.Run(ctx)
	return err
}
