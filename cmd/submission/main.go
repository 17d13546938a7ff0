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
	"github.com/rs/cors"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/exposurewarn-backend/internal/checkin"
	"github.com/goodnatureofminers/exposurewarn-backend/internal/metrics"
	"github.com/goodnatureofminers/exposurewarn-backend/internal/repository/clickhouse"
	"github.com/goodnatureofminers/exposurewarn-backend/internal/submission"
	"github.com/goodnatureofminers/exposurewarn-backend/internal/transport"
)

type config struct {
	ClickhouseDSN             string        `long:"clickhouse-dsn" env:"SUBMISSION_CLICKHOUSE_DSN" description:"ClickHouse DSN" required:"true"`
	Addr                      string        `long:"addr" env:"SUBMISSION_ADDR" description:"submission server address" default:":8080"`
	MetricsAddr               string        `long:"metrics-addr" env:"SUBMISSION_METRICS_ADDR" description:"address for metrics server" default:":2112"`
	VerificationURL           string        `long:"verification-url" env:"SUBMISSION_VERIFICATION_URL" description:"TAN verification service base URL" required:"true"`
	VerificationTimeout       time.Duration `long:"verification-timeout" env:"SUBMISSION_VERIFICATION_TIMEOUT" description:"timeout of TAN verification requests" default:"5s"`
	DefaultOrigin             string        `long:"default-origin" env:"SUBMISSION_DEFAULT_ORIGIN" description:"origin country for submissions without one" default:"DE"`
	RetentionDays             int           `long:"retention-days" env:"SUBMISSION_RETENTION_DAYS" description:"days a key stays acceptable" default:"14"`
	KeyPaddingMultiplier      int           `long:"key-padding-multiplier" env:"SUBMISSION_KEY_PADDING_MULTIPLIER" description:"total keys per genuine key after padding" default:"10"`
	CheckInPaddingMultiplier  int           `long:"checkin-padding-multiplier" env:"SUBMISSION_CHECKIN_PADDING_MULTIPLIER" description:"synthetic warnings per genuine check-in" default:"1"`
	CheckInPaddingPepper      string        `long:"checkin-padding-pepper" env:"SUBMISSION_CHECKIN_PADDING_PEPPER" description:"secret pepper for synthetic check-in ids" required:"true"`
	AcceptedEventDateDays     int           `long:"accepted-event-date-days" env:"SUBMISSION_ACCEPTED_EVENT_DATE_DAYS" description:"drop check-ins that ended more than this many days ago" default:"15"`
	MaxCheckInsPerDay         int           `long:"max-checkins-per-day" env:"SUBMISSION_MAX_CHECKINS_PER_DAY" description:"check-ins allowed per day, 0 disables the limit" default:"0"`
	TRLDerivationsFile        string        `long:"trl-derivations-file" env:"SUBMISSION_TRL_DERIVATIONS_FILE" description:"YAML file with the transmission risk level mapping"`
	InitialFakeDelay          time.Duration `long:"initial-fake-delay" env:"SUBMISSION_INITIAL_FAKE_DELAY" description:"initial mean delay of fake requests" default:"10ms"`
	FakeDelayMovingAverageLen int           `long:"fake-delay-samples" env:"SUBMISSION_FAKE_DELAY_SAMPLES" description:"requests averaged into the fake delay" default:"100"`
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
		logger.Fatal("submission server failed", zap.Error(err))
	}
}

func run(ctx context.Context, cfg config, logger *zap.Logger) error {
	startMetricsServer(ctx, cfg.MetricsAddr, logger)

	repo, err := clickhouse.NewRepository(cfg.ClickhouseDSN, metrics.NewClickhouseRepository())
	if err != nil {
		return fmt.Errorf("init repository: %w", err)
	}

	trl := submission.DefaultTRLDerivations()
	if cfg.TRLDerivationsFile != "" {
		if trl, err = submission.LoadTRLDerivations(cfg.TRLDerivationsFile); err != nil {
			return err
		}
	}

	submissionMetrics := metrics.NewSubmission()
	svc, err := submission.NewService(
		submission.Config{
			DefaultOriginCountry:     cfg.DefaultOrigin,
			RetentionDays:            cfg.RetentionDays,
			KeyPaddingMultiplier:     cfg.KeyPaddingMultiplier,
			CheckInPaddingMultiplier: cfg.CheckInPaddingMultiplier,
			CheckInPaddingPepper:     []byte(cfg.CheckInPaddingPepper),
		},
		repo,
		repo,
		checkin.NewFilter(checkin.FilterConfig{
			AcceptedEventDateThresholdDays: cfg.AcceptedEventDateDays,
			MaxCheckInsPerDay:              cfg.MaxCheckInsPerDay,
		}, nil),
		checkin.NewPadder(checkin.DefaultMaxIntervalOffset),
		trl,
		submissionMetrics,
		logger.Named("submission"),
	)
	if err != nil {
		return err
	}

	verifier, err := transport.NewHTTPVerifier(cfg.VerificationURL, cfg.VerificationTimeout)
	if err != nil {
		return err
	}
	handler, err := transport.NewSubmissionHandler(
		svc,
		verifier,
		submission.NewFakeDelayManager(cfg.InitialFakeDelay, cfg.FakeDelayMovingAverageLen),
		submissionMetrics,
		logger.Named("transport"),
	)
	if err != nil {
		return err
	}

	mux := http.NewServeMux()
	handler.Register(mux)
	mux.Handle(transport.HealthPath, transport.HealthHandler())

	corsHandler := cors.New(cors.Options{
		AllowedMethods: []string{http.MethodPost},
		AllowedHeaders: []string{"Content-Type", "cwa-authorization", "cwa-fake"},
		ExposedHeaders: []string{"cwa-filtered-checkins", "cwa-saved-checkins"},
	})
	s := &http.Server{
		Addr:              cfg.Addr,
		Handler:           corsHandler.Handler(mux),
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    http.DefaultMaxHeaderBytes,
	}
	go func() {
		<-ctx.Done()
		logger.Info("Shutting down the http server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := s.Shutdown(shutdownCtx); err != nil {
			logger.Error("Failed to shutdown http server", zap.Error(err))
		}
	}()

	logger.Info("Starting HTTP server", zap.String("addr", cfg.Addr))
	if err := s.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
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
