// Package submission ingests diagnosis keys and check-ins submitted by clients.
package submission

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/goodnatureofminers/exposurewarn-backend/internal/checkin"
	"github.com/goodnatureofminers/exposurewarn-backend/internal/model"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	maxRollingPeriod = 144
	minDSOS          = -14
	maxDSOS          = 4000
)

// Config holds the tunables of the submission service.
type Config struct {
	DefaultOriginCountry     string
	RetentionDays            int
	KeyPaddingMultiplier     int
	CheckInPaddingMultiplier int
	CheckInPaddingPepper     []byte
}

type Service struct {
	logger    *zap.Logger
	cfg       Config
	keys      KeyRepository
	checkIns  CheckInRepository
	filter    CheckInFilter
	padder    CheckInPadder
	trl       RiskLevelDeriver
	retention RetentionFilter
	metrics   Metrics
	now       func() time.Time
}

type keyStats struct {
	invalid  int
	outdated int
}

func NewService(
	cfg Config,
	keys KeyRepository,
	checkIns CheckInRepository,
	filter CheckInFilter,
	padder CheckInPadder,
	trl RiskLevelDeriver,
	metrics Metrics,
	logger *zap.Logger,
) (*Service, error) {
	if keys == nil || checkIns == nil {
		return nil, errors.New("submission repositories are required")
	}
	if filter == nil || padder == nil {
		return nil, errors.New("check-in filter and padder are required")
	}
	if trl == nil {
		return nil, errors.New("trl derivations are required")
	}
	if metrics == nil {
		return nil, errors.New("submission metrics is required")
	}
	if strings.TrimSpace(cfg.DefaultOriginCountry) == "" {
		return nil, errors.New("default origin country is required")
	}
	if cfg.RetentionDays <= 0 {
		return nil, fmt.Errorf("retention days must be positive, got %d", cfg.RetentionDays)
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	s := &Service{
		logger:   logger,
		cfg:      cfg,
		keys:     keys,
		checkIns: checkIns,
		filter:   filter,
		padder:   padder,
		trl:      trl,
		metrics:  metrics,
	}
	s.setClock(time.Now)
	return s, nil
}

func (s *Service) setClock(now func() time.Time) {
	s.now = now
	s.retention = NewRetentionFilter(s.cfg.RetentionDays, now)
}

// Submit stores the keys of one submission and, isolated from that, its
// check-ins. Only a failure to store keys is returned.
func (s *Service) Submit(ctx context.Context, payload model.SubmissionPayload) (result model.SubmissionResult, err error) {
	started := time.Now()
	defer func() {
		s.metrics.ObserveSubmission(err, started)
	}()

	logger := s.logger.With(zap.String("submission_id", uuid.NewString()))
	now := s.now()

	if err = s.storeDiagnosisKeys(ctx, logger, payload, now); err != nil {
		logger.Error("store diagnosis keys failed", zap.Error(err))
		return model.SubmissionResult{}, err
	}

	return s.storeCheckIns(ctx, logger, payload, now), nil
}

func (s *Service) storeDiagnosisKeys(ctx context.Context, logger *zap.Logger, payload model.SubmissionPayload, now time.Time) error {
	keys, stats := s.extractDiagnosisKeys(payload, now)
	if stats.outdated > 0 {
		logger.Warn("not persisting diagnosis keys outdated beyond retention threshold", zap.Int("count", stats.outdated))
	}
	if stats.invalid > 0 {
		logger.Warn("not persisting invalid diagnosis keys", zap.Int("count", stats.invalid))
	}

	padded, err := PadKeys(keys, s.cfg.KeyPaddingMultiplier)
	if err != nil {
		return fmt.Errorf("pad diagnosis keys: %w", err)
	}

	if len(padded) > 0 {
		if err := s.keys.InsertDiagnosisKeys(ctx, padded); err != nil {
			return fmt.Errorf("insert diagnosis keys: %w", err)
		}
	}

	s.metrics.ObserveKeys(len(keys), len(padded)-len(keys), stats.invalid+stats.outdated)
	logger.Debug("diagnosis keys stored", zap.Int("genuine", len(keys)), zap.Int("total", len(padded)))
	return nil
}

func (s *Service) extractDiagnosisKeys(payload model.SubmissionPayload, now time.Time) ([]model.DiagnosisKey, keyStats) {
	origin := strings.ToUpper(strings.TrimSpace(payload.Origin))
	if origin == "" {
		origin = strings.ToUpper(strings.TrimSpace(s.cfg.DefaultOriginCountry))
	}
	visited := normalizeCountries(payload.VisitedCountries, origin)

	submissionType := payload.SubmissionType
	if submissionType == "" {
		submissionType = model.SubmissionPCRTest
	}
	hour := model.HourSinceEpoch(now)
	currentInterval := model.IntervalSinceEpoch(now)

	var stats keyStats
	keys := make([]model.DiagnosisKey, 0, len(payload.Keys))
	for _, raw := range payload.Keys {
		if !validKey(raw, currentInterval) {
			stats.invalid++
			continue
		}
		if !s.retention.Accept(raw.RollingStartIntervalNumber) {
			stats.outdated++
			continue
		}

		reportType := raw.ReportType
		if reportType == "" {
			reportType = model.ReportConfirmedTest
		}
		keys = append(keys, model.DiagnosisKey{
			KeyData:                    slices.Clone(raw.KeyData),
			RollingStartIntervalNumber: raw.RollingStartIntervalNumber,
			RollingPeriod:              raw.RollingPeriod,
			TransmissionRiskLevel:      s.trl.Derive(raw.TransmissionRiskLevel),
			ReportType:                 reportType,
			OriginCountry:              origin,
			VisitedCountries:           slices.Clone(visited),
			ConsentToFederation:        payload.ConsentToFederation,
			SubmissionType:             submissionType,
			DaysSinceOnsetOfSymptoms:   raw.DaysSinceOnsetOfSymptoms,
			SubmissionHour:             hour,
		})
	}
	return keys, stats
}

func (s *Service) storeCheckIns(ctx context.Context, logger *zap.Logger, payload model.SubmissionPayload, now time.Time) model.SubmissionResult {
	var result model.SubmissionResult
	err := s.processCheckIns(ctx, payload, now, &result)
	switch {
	case errors.Is(err, checkin.ErrTooManyCheckInsAtSameDay):
		logger.Error("check-ins rejected", zap.Error(err))
	case err != nil:
		logger.Error("an error occurred while storing check-in data", zap.Error(err))
	}
	s.metrics.ObserveCheckIns(result.FilteredCheckIns, result.SavedCheckIns, err)
	return result
}

// processCheckIns fills result as far as it gets; counters reached before a
// failure are kept.
func (s *Service) processCheckIns(ctx context.Context, payload model.SubmissionPayload, now time.Time, result *model.SubmissionResult) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("check-in processing panicked: %v", r)
		}
	}()

	if len(payload.CheckIns) == 0 {
		return nil
	}

	if err := s.filter.ValidateByDate(payload.CheckIns); err != nil {
		return err
	}
	kept := s.filter.Apply(payload.CheckIns)
	result.FilteredCheckIns = len(payload.CheckIns) - len(kept)
	if len(kept) == 0 {
		return nil
	}

	submissionType := payload.SubmissionType
	if submissionType == "" {
		submissionType = model.SubmissionPCRTest
	}
	warnings := s.padder.Pad(kept, s.cfg.CheckInPaddingMultiplier, s.cfg.CheckInPaddingPepper,
		model.HourSinceEpoch(now), submissionType)

	if err := s.checkIns.InsertCheckInWarnings(ctx, warnings); err != nil {
		return fmt.Errorf("insert check-in warnings: %w", err)
	}
	result.SavedCheckIns = len(warnings)
	return nil
}

func validKey(raw model.RawKey, currentInterval uint32) bool {
	if len(raw.KeyData) != model.KeyDataLength {
		return false
	}
	if raw.RollingPeriod < 1 || raw.RollingPeriod > maxRollingPeriod {
		return false
	}
	if raw.RollingStartIntervalNumber > currentInterval {
		return false
	}
	if dsos := raw.DaysSinceOnsetOfSymptoms; dsos != nil && (*dsos < minDSOS || *dsos > maxDSOS) {
		return false
	}
	return true
}

// normalizeCountries upper-cases, deduplicates and sorts the visited countries
// and always includes origin.
func normalizeCountries(countries []string, origin string) []string {
	seen := map[string]struct{}{origin: {}}
	normalized := []string{origin}
	for _, c := range countries {
		c = strings.ToUpper(strings.TrimSpace(c))
		if c == "" {
			continue
		}
		if _, ok := seen[c]; ok {
			continue
		}
		seen[c] = struct{}{}
		normalized = append(normalized, c)
	}
	slices.Sort(normalized)
	return normalized
}
