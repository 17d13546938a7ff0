package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/jessevdk/go-flags"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/exposurewarn-backend/internal/distribution"
	"github.com/goodnatureofminers/exposurewarn-backend/internal/metrics"
	"github.com/goodnatureofminers/exposurewarn-backend/internal/repository/clickhouse"
)

type config struct {
	ClickhouseDSN      string   `long:"clickhouse-dsn" env:"DISTRIBUTION_CLICKHOUSE_DSN" description:"ClickHouse DSN" required:"true"`
	OutputDir          string   `long:"output-dir" env:"DISTRIBUTION_OUTPUT_DIR" description:"directory receiving the packages" default:"out"`
	Origin             string   `long:"origin" env:"DISTRIBUTION_ORIGIN" description:"country check-in warnings are published for" default:"DE"`
	SupportedCountries []string `long:"supported-country" env:"DISTRIBUTION_SUPPORTED_COUNTRIES" env-delim:"," description:"country with its own key directory (repeatable)"`
	RetentionDays      int      `long:"retention-days" env:"DISTRIBUTION_RETENTION_DAYS" description:"days of data to distribute" default:"14"`
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
		logger.Fatal("distribution failed", zap.Error(err))
	}
}

func run(ctx context.Context, cfg config, logger *zap.Logger) error {
	repo, err := clickhouse.NewRepository(cfg.ClickhouseDSN, metrics.NewClickhouseRepository())
	if err != nil {
		return fmt.Errorf("init repository: %w", err)
	}
	writer, err := distribution.NewFileWriter(cfg.OutputDir)
	if err != nil {
		return err
	}

	job, err := distribution.NewJob(
		distribution.JobConfig{
			Origin:             cfg.Origin,
			SupportedCountries: cfg.SupportedCountries,
			RetentionDays:      cfg.RetentionDays,
		},
		repo,
		writer,
		metrics.NewDistribution(),
		logger.Named("distribution"),
	)
	if err != nil {
		return err
	}
	return job.Run(ctx)
}
