package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/exposurewarn-backend/internal/model"
)

const insertDiagnosisKeysQuery = `
INSERT INTO diagnosis_keys (
	key_data,
	rolling_start_interval_number,
	rolling_period,
	transmission_risk_level,
	report_type,
	origin_country,
	visited_countries,
	consent_to_federation,
	submission_type,
	days_since_onset_of_symptoms,
	submission_hour
) VALUES`

// InsertDiagnosisKeys stores all keys in one INSERT block; either every key is
// written or none is.
func (r *Repository) InsertDiagnosisKeys(ctx context.Context, keys []model.DiagnosisKey) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("insert_diagnosis_keys", len(keys), err, start)
	}()

	if len(keys) == 0 {
		return nil
	}

	batch, err := r.conn.PrepareBatch(ctx, insertDiagnosisKeysQuery)
	if err != nil {
		return fmt.Errorf("prepare diagnosis keys batch: %w", err)
	}

	for _, key := range keys {
		if err = batch.Append(
			string(key.KeyData),
			key.RollingStartIntervalNumber,
			key.RollingPeriod,
			key.TransmissionRiskLevel,
			string(key.ReportType),
			key.OriginCountry,
			key.VisitedCountries,
			key.ConsentToFederation,
			string(key.SubmissionType),
			key.DaysSinceOnsetOfSymptoms,
			key.SubmissionHour,
		); err != nil {
			_ = batch.Abort()
			return fmt.Errorf("append diagnosis key: %w", err)
		}
	}

	if err = batch.Send(); err != nil {
		return fmt.Errorf("insert diagnosis keys: %w", err)
	}
	return nil
}
