package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jessevdk/go-flags"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/exposurewarn-backend/internal/federation"
	"github.com/goodnatureofminers/exposurewarn-backend/internal/metrics"
	"github.com/goodnatureofminers/exposurewarn-backend/internal/model"
	"github.com/goodnatureofminers/exposurewarn-backend/internal/repository/clickhouse"
	"github.com/goodnatureofminers/exposurewarn-backend/internal/repository/postgres"
)

type config struct {
	ClickhouseDSN  string                            `long:"clickhouse-dsn" env:"FEDERATION_CLICKHOUSE_DSN" description:"ClickHouse DSN" required:"true"`
	PostgresDSN    string                            `long:"postgres-dsn" env:"FEDERATION_POSTGRES_DSN" description:"Postgres DSN of the batch tracker" required:"true"`
	Source         model.FederationBatchSourceSystem `long:"source" env:"FEDERATION_SOURCE" description:"federation source system" choice:"EFGS" choice:"CHGS" default:"EFGS"`
	GatewayURL     string                            `long:"gateway-url" env:"FEDERATION_GATEWAY_URL" description:"federation gateway base URL" required:"true"`
	GatewayRPS     int                               `long:"gateway-rps" env:"FEDERATION_GATEWAY_RPS" description:"max gateway downloads per second, 0 is unlimited" default:"5"`
	GatewayTimeout time.Duration                     `long:"gateway-timeout" env:"FEDERATION_GATEWAY_TIMEOUT" description:"timeout of one gateway download" default:"30s"`
	RetentionDays  int                               `long:"retention-days" env:"FEDERATION_RETENTION_DAYS" description:"days a federated key stays acceptable" default:"14"`
	Workers        int                               `long:"workers" env:"FEDERATION_WORKERS" description:"concurrent batch downloads" default:"4"`
	MaxRounds      int                               `long:"max-rounds" env:"FEDERATION_MAX_ROUNDS" description:"max rounds of batch discovery per date" default:"100"`
	ForceReprocess bool                              `long:"force-reprocess" env:"FEDERATION_FORCE_REPROCESS" description:"purge the tracked batches of the date before processing"`
	Interval       time.Duration                     `long:"interval" env:"FEDERATION_INTERVAL" description:"delay between runs, 0 runs once" default:"0s"`
	MetricsAddr    string                            `long:"metrics-addr" env:"FEDERATION_METRICS_ADDR" description:"address for metrics server" default:":2113"`
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
		logger.Fatal("federation batch processor failed", zap.Error(err))
	}
}

func run(ctx context.Context, cfg config, logger *zap.Logger) error {
	startMetricsServer(ctx, cfg.MetricsAddr, logger)

	keys, err := clickhouse.NewRepository(cfg.ClickhouseDSN, metrics.NewClickhouseRepository())
	if err != nil {
		return fmt.Errorf("init key repository: %w", err)
	}
	tracker, err := postgres.NewRepository(cfg.PostgresDSN, metrics.NewPostgresRepository())
	if err != nil {
		return fmt.Errorf("init batch tracker: %w", err)
	}
	defer func() {
		if err := tracker.Close(); err != nil {
			logger.Error("failed to close batch tracker", zap.Error(err))
		}
	}()

	gateway, err := federation.NewHTTPGateway(cfg.GatewayURL, cfg.GatewayRPS, cfg.GatewayTimeout)
	if err != nil {
		return fmt.Errorf("init gateway: %w", err)
	}

	processor, err := federation.NewProcessor(
		federation.ProcessorConfig{
			Source:         cfg.Source,
			RetentionDays:  cfg.RetentionDays,
			WorkerCount:    cfg.Workers,
			MaxRounds:      cfg.MaxRounds,
			ForceReprocess: cfg.ForceReprocess,
			Interval:       cfg.Interval,
		},
		tracker,
		federation.NewObservedGateway(gateway, metrics.NewGatewayClient(cfg.Source)),
		keys,
		metrics.NewFederationProcessor(cfg.Source),
		logger.Named("federation"),
	)
	if err != nil {
		return err
	}
	if err := processor.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

func startMetricsServer(ctx context.Context, addr string, logger *zap.Logger) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.Info("starting metrics server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server failed", zap.Error(err))
		}
	}()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("failed to shutdown metrics server", zap.Error(err))
		}
	}()
}
