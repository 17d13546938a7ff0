// Package federation downloads key batches from federation partners and
// tracks their processing state.
package federation

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/goodnatureofminers/exposurewarn-backend/internal/clock"
	"github.com/goodnatureofminers/exposurewarn-backend/internal/model"
	"github.com/goodnatureofminers/exposurewarn-backend/internal/submission"
	"github.com/goodnatureofminers/exposurewarn-backend/pkg/workerpool"
)

const (
	defaultWorkerCount = 4
	defaultMaxRounds   = 100
	maxRollingPeriod   = 144
	maxRiskLevel       = 8
)

// ProcessorConfig configures one federation source.
type ProcessorConfig struct {
	Source        model.FederationBatchSourceSystem
	RetentionDays int
	WorkerCount   int
	MaxRounds     int
	// ForceReprocess purges the tracker rows of a date before it is processed again.
	ForceReprocess bool
	// Interval between runs of Run; zero runs once.
	Interval time.Duration
}

// Processor discovers, downloads and stores federation batches.
type Processor struct {
	logger  *zap.Logger
	cfg     ProcessorConfig
	tracker BatchTracker
	gateway Gateway
	keys    KeyRepository
	metrics ProcessorMetrics
	sleep   func(context.Context, time.Duration) error
	now     func() time.Time
}

func NewProcessor(
	cfg ProcessorConfig,
	tracker BatchTracker,
	gateway Gateway,
	keys KeyRepository,
	metrics ProcessorMetrics,
	logger *zap.Logger,
) (*Processor, error) {
	if tracker == nil || gateway == nil || keys == nil {
		return nil, errors.New("federation tracker, gateway and key repository are required")
	}
	if metrics == nil {
		return nil, errors.New("federation processor metrics is required")
	}
	if cfg.Source == "" {
		return nil, errors.New("federation source system is required")
	}
	if cfg.RetentionDays <= 0 {
		return nil, fmt.Errorf("retention days must be positive, got %d", cfg.RetentionDays)
	}
	if cfg.WorkerCount <= 0 {
		cfg.WorkerCount = defaultWorkerCount
	}
	if cfg.MaxRounds <= 0 {
		cfg.MaxRounds = defaultMaxRounds
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Processor{
		logger:  logger.With(zap.String("source", string(cfg.Source))),
		cfg:     cfg,
		tracker: tracker,
		gateway: gateway,
		keys:    keys,
		metrics: metrics,
		sleep:   clock.SleepWithContext,
		now:     time.Now,
	}, nil
}

// Run processes the current UTC date, repeating every Interval until ctx is
// canceled. A forced reprocess purges the first date only.
func (p *Processor) Run(ctx context.Context) error {
	if err := p.PrepareDate(ctx, model.Day(p.now())); err != nil {
		return err
	}
	for {
		if err := p.processDate(ctx, p.now()); err != nil {
			if p.cfg.Interval == 0 || ctx.Err() != nil {
				return err
			}
			p.logger.Warn("federation run failed, backing off", zap.Error(err), zap.Duration("sleep", p.cfg.Interval))
		}
		if p.cfg.Interval == 0 {
			return nil
		}
		if err := p.sleep(ctx, p.cfg.Interval); err != nil {
			return err
		}
	}
}

// ProcessDate runs every stage for one date.
func (p *Processor) ProcessDate(ctx context.Context, date time.Time) error {
	if err := p.PrepareDate(ctx, model.Day(date)); err != nil {
		return err
	}
	return p.processDate(ctx, date)
}

func (p *Processor) processDate(ctx context.Context, date time.Time) error {
	date = model.Day(date)
	logger := p.logger.With(zap.String("date", date.Format(time.DateOnly)))

	if err := p.DiscoverFirstBatch(ctx, date); err != nil {
		return err
	}
	if err := p.ProcessErrorBatches(ctx); err != nil {
		return err
	}
	if err := p.ProcessUnprocessedBatches(ctx); err != nil {
		return err
	}
	logger.Info("federation batches processed")
	return nil
}

// PrepareDate purges the tracker rows of date when reprocessing is forced.
func (p *Processor) PrepareDate(ctx context.Context, date time.Time) error {
	if !p.cfg.ForceReprocess {
		return nil
	}
	purged, err := p.tracker.PurgeForDate(ctx, date)
	if err != nil {
		return fmt.Errorf("purge batches of %s: %w", date.Format(time.DateOnly), err)
	}
	p.logger.Info("purged batch info for reprocessing",
		zap.String("date", date.Format(time.DateOnly)),
		zap.Int64("rows", purged))
	return nil
}

// DiscoverFirstBatch downloads the first batch of date and marks it UNPROCESSED
// unless it is already known.
func (p *Processor) DiscoverFirstBatch(ctx context.Context, date time.Time) error {
	batch, err := p.gateway.DownloadBatch(ctx, date, "")
	if errors.Is(err, ErrNoBatch) {
		p.logger.Info("no batch available", zap.String("date", date.Format(time.DateOnly)))
		return nil
	}
	if err != nil {
		return fmt.Errorf("download first batch: %w", err)
	}

	inserted, err := p.tracker.Discover(ctx, batch.Tag, date, p.cfg.Source)
	if err != nil {
		return fmt.Errorf("discover first batch %s: %w", batch.Tag, err)
	}
	if inserted {
		p.logger.Info("discovered first batch", zap.String("batch_tag", batch.Tag))
	}
	return nil
}

// ProcessErrorBatches retries every ERROR batch once. A failed retry is terminal.
func (p *Processor) ProcessErrorBatches(ctx context.Context) error {
	infos, err := p.findByStatus(ctx, model.BatchError)
	if err != nil {
		return err
	}

	for _, info := range infos {
		outcome := model.BatchProcessed
		if err := p.processBatch(ctx, info); err != nil {
			p.logger.Warn("retry of failed batch failed",
				zap.String("batch_tag", info.BatchTag), zap.Error(err))
			outcome = model.BatchErrorWontRetry
		}
		if err := p.tracker.RecordOutcome(ctx, info.BatchTag, info.Date, info.SourceSystem, outcome); err != nil {
			return fmt.Errorf("record outcome of %s: %w", info.BatchTag, err)
		}
	}
	return nil
}

// ProcessUnprocessedBatches works off UNPROCESSED batches in rounds. Tags
// discovered while processing become the next round.
func (p *Processor) ProcessUnprocessedBatches(ctx context.Context) error {
	for round := 0; round < p.cfg.MaxRounds; round++ {
		infos, err := p.findByStatus(ctx, model.BatchUnprocessed)
		if err != nil {
			return err
		}
		if len(infos) == 0 {
			return nil
		}

		started := time.Now()
		err = workerpool.Process(ctx, p.cfg.WorkerCount, infos, func(ctx context.Context, info model.FederationBatchInfo) error {
			outcome := model.BatchProcessed
			if err := p.processBatch(ctx, info); err != nil {
				p.logger.Warn("batch processing failed",
					zap.String("batch_tag", info.BatchTag), zap.Error(err))
				outcome = model.BatchError
			}
			if err := p.tracker.RecordOutcome(ctx, info.BatchTag, info.Date, info.SourceSystem, outcome); err != nil {
				return fmt.Errorf("record outcome of %s: %w", info.BatchTag, err)
			}
			return nil
		}, nil)
		p.metrics.ObserveProcessRound(err, len(infos), started)
		if err != nil {
			return err
		}
	}

	p.logger.Warn("stopped after max rounds", zap.Int("rounds", p.cfg.MaxRounds))
	return nil
}

func (p *Processor) findByStatus(ctx context.Context, status model.FederationBatchStatus) ([]model.FederationBatchInfo, error) {
	infos, err := p.tracker.FindByStatus(ctx, status)
	p.metrics.ObserveFetchBatches(status, err)
	if err != nil {
		return nil, fmt.Errorf("find %s batches: %w", status, err)
	}
	return slices.DeleteFunc(infos, func(info model.FederationBatchInfo) bool {
		return info.SourceSystem != p.cfg.Source
	}), nil
}

// processBatch downloads, validates and stores one batch and discovers its successor.
func (p *Processor) processBatch(ctx context.Context, info model.FederationBatchInfo) (err error) {
	started := time.Now()
	var stored, discarded int
	defer func() {
		outcome := model.BatchProcessed
		if err != nil {
			outcome = model.BatchError
		}
		p.metrics.ObserveBatch(outcome, stored, discarded, started)
	}()

	batch, err := p.gateway.DownloadBatch(ctx, info.Date, info.BatchTag)
	if err != nil {
		return fmt.Errorf("download batch: %w", err)
	}

	keys := p.prepareKeys(batch.Keys)
	discarded = len(batch.Keys) - len(keys)
	if len(keys) > 0 {
		if err = p.keys.InsertDiagnosisKeys(ctx, keys); err != nil {
			return fmt.Errorf("store batch keys: %w", err)
		}
	}
	stored = len(keys)

	if batch.NextTag != "" {
		inserted, err := p.tracker.Discover(ctx, batch.NextTag, info.Date, info.SourceSystem)
		if err != nil {
			return fmt.Errorf("discover next batch %s: %w", batch.NextTag, err)
		}
		if inserted {
			p.logger.Debug("discovered next batch", zap.String("batch_tag", batch.NextTag))
		}
	}

	p.logger.Debug("batch stored",
		zap.String("batch_tag", info.BatchTag),
		zap.Int("stored", stored),
		zap.Int("discarded", discarded))
	return nil
}

// prepareKeys drops invalid or expired keys and stamps the rest as federated.
func (p *Processor) prepareKeys(keys []model.DiagnosisKey) []model.DiagnosisKey {
	now := p.now()
	hour := model.HourSinceEpoch(now)
	currentInterval := model.IntervalSinceEpoch(now)

	prepared := make([]model.DiagnosisKey, 0, len(keys))
	for _, key := range keys {
		switch {
		case len(key.KeyData) != model.KeyDataLength:
		case key.RollingPeriod < 1 || key.RollingPeriod > maxRollingPeriod:
		case key.RollingStartIntervalNumber > currentInterval:
		case key.TransmissionRiskLevel < 1 || key.TransmissionRiskLevel > maxRiskLevel:
		case strings.TrimSpace(key.OriginCountry) == "":
		case !submission.WithinRetention(key.RollingStartIntervalNumber, p.cfg.RetentionDays, now):
		default:
			key.OriginCountry = strings.ToUpper(strings.TrimSpace(key.OriginCountry))
			key.VisitedCountries = visitedWithOrigin(key.VisitedCountries, key.OriginCountry)
			if key.ReportType == "" {
				key.ReportType = model.ReportConfirmedTest
			}
			key.SubmissionType = model.SubmissionFederation
			key.SubmissionHour = hour
			key.ConsentToFederation = false
			prepared = append(prepared, key)
		}
	}
	return prepared
}

func visitedWithOrigin(visited []string, origin string) []string {
	out := make([]string, 0, len(visited)+1)
	out = append(out, origin)
	for _, c := range visited {
		c = strings.ToUpper(strings.TrimSpace(c))
		if c != "" && !slices.Contains(out, c) {
			out = append(out, c)
		}
	}
	slices.Sort(out)
	return out
}
