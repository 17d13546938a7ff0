// Package distribution assembles stored keys and check-in warnings into hour
// packages with their index documents.
package distribution

import (
	"context"
	"errors"
	"fmt"
	"path"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/exposurewarn-backend/internal/model"
	"github.com/goodnatureofminers/exposurewarn-backend/pkg/safe"
)

const (
	kindCheckIns = "checkins"
	kindKeys     = "keys"
)

// JobConfig configures a distribution run.
type JobConfig struct {
	// Origin is the country check-in warnings are published for.
	Origin string
	// SupportedCountries get a key directory each.
	SupportedCountries []string
	RetentionDays      int
}

// Job loads the records inside the retention window and writes them out.
type Job struct {
	logger  *zap.Logger
	cfg     JobConfig
	repo    Repository
	writer  Writer
	metrics Metrics
	now     func() time.Time
}

func NewJob(cfg JobConfig, repo Repository, writer Writer, metrics Metrics, logger *zap.Logger) (*Job, error) {
	if repo == nil || writer == nil {
		return nil, errors.New("distribution repository and writer are required")
	}
	if metrics == nil {
		return nil, errors.New("distribution metrics is required")
	}
	if cfg.RetentionDays <= 0 {
		return nil, fmt.Errorf("retention days must be positive, got %d", cfg.RetentionDays)
	}
	cfg.Origin = strings.ToUpper(strings.TrimSpace(cfg.Origin))
	if cfg.Origin == "" {
		return nil, errors.New("origin country is required")
	}
	cfg.SupportedCountries = normalizeCountries(cfg.SupportedCountries, cfg.Origin)
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Job{
		logger:  logger,
		cfg:     cfg,
		repo:    repo,
		writer:  writer,
		metrics: metrics,
		now:     time.Now,
	}, nil
}

// Run writes the check-in directory and one key directory per supported
// country and date. The running hour is never distributed.
func (j *Job) Run(ctx context.Context) (err error) {
	started := time.Now()
	defer func() {
		j.metrics.ObserveRun(err, started)
	}()

	logger := j.logger.With(zap.String("run_id", uuid.NewString()))
	distributionHour := model.HourSinceEpoch(j.now())
	window, err := safe.Uint32(j.cfg.RetentionDays * 24)
	if err != nil {
		return fmt.Errorf("retention window: %w", err)
	}
	var since uint32
	if distributionHour > window {
		since = distributionHour - window
	}

	checkIns, err := j.repo.CheckInWarningsSince(ctx, since)
	if err != nil {
		return fmt.Errorf("load check-in warnings: %w", err)
	}
	keys, err := j.repo.DiagnosisKeysSince(ctx, since)
	if err != nil {
		return fmt.Errorf("load diagnosis keys: %w", err)
	}

	checkIns = Bundle(checkIns, distributionHour)
	written, err := NewHourDirectory[model.CheckInWarning](checkInDirectory(j.cfg.Origin), j.writer).Write(ctx, checkIns)
	j.metrics.ObservePackages(kindCheckIns, written)
	if err != nil {
		return err
	}
	logger.Info("check-in warnings distributed",
		zap.Int("warnings", len(checkIns)),
		zap.Int("packages", written))

	keys = Bundle(keys, distributionHour)
	for _, country := range j.cfg.SupportedCountries {
		byDate := keysByDate(keysForCountry(keys, country))
		dates := make([]string, 0, len(byDate))
		for date := range byDate {
			dates = append(dates, date)
		}
		slices.Sort(dates)

		packages := 0
		for _, date := range dates {
			written, err := NewHourDirectory[model.DiagnosisKey](keyDirectory(country, date), j.writer).Write(ctx, byDate[date])
			packages += written
			if err != nil {
				j.metrics.ObservePackages(kindKeys, packages)
				return err
			}
		}
		j.metrics.ObservePackages(kindKeys, packages)
		logger.Info("diagnosis keys distributed",
			zap.String("country", country),
			zap.Int("dates", len(dates)),
			zap.Int("packages", packages))
	}
	return nil
}

func checkInDirectory(origin string) string {
	return path.Join("twp", "country", origin, "hour")
}

func keyDirectory(country, date string) string {
	return path.Join("diagnosis-keys", "country", country, "date", date, "hour")
}

func keysForCountry(keys []model.DiagnosisKey, country string) []model.DiagnosisKey {
	var out []model.DiagnosisKey
	for _, k := range keys {
		if k.OriginCountry == country || slices.Contains(k.VisitedCountries, country) {
			out = append(out, k)
		}
	}
	return out
}

func keysByDate(keys []model.DiagnosisKey) map[string][]model.DiagnosisKey {
	grouped := make(map[string][]model.DiagnosisKey)
	for _, k := range keys {
		date := time.Unix(int64(k.SubmissionHour)*model.SecondsPerHour, 0).UTC().Format(time.DateOnly)
		grouped[date] = append(grouped[date], k)
	}
	return grouped
}

func normalizeCountries(countries []string, origin string) []string {
	out := []string{origin}
	for _, c := range countries {
		c = strings.ToUpper(strings.TrimSpace(c))
		if c != "" && !slices.Contains(out, c) {
			out = append(out, c)
		}
	}
	slices.Sort(out)
	return out
}
