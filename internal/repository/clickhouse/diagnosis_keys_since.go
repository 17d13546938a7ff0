package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/exposurewarn-backend/internal/model"
)

const diagnosisKeysSinceQuery = `
SELECT
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
FROM diagnosis_keys FINAL
WHERE submission_hour >= ?
ORDER BY submission_hour ASC, key_data ASC`

// DiagnosisKeysSince returns the keys submitted in or after the given hour.
func (r *Repository) DiagnosisKeysSince(ctx context.Context, hour uint32) ([]model.DiagnosisKey, error) {
	start := time.Now()
	var (
		err  error
		keys []model.DiagnosisKey
	)
	defer func() {
		r.metrics.Observe("diagnosis_keys_since", len(keys), err, start)
	}()

	rows, err := r.conn.Query(ctx, diagnosisKeysSinceQuery, hour)
	if err != nil {
		return nil, fmt.Errorf("query diagnosis keys: %w", err)
	}
	defer closeRows(rows, &err)

	for rows.Next() {
		var (
			keyData        string
			reportType     string
			submissionType string
			key            model.DiagnosisKey
		)
		if err = rows.Scan(
			&keyData,
			&key.RollingStartIntervalNumber,
			&key.RollingPeriod,
			&key.TransmissionRiskLevel,
			&reportType,
			&key.OriginCountry,
			&key.VisitedCountries,
			&key.ConsentToFederation,
			&submissionType,
			&key.DaysSinceOnsetOfSymptoms,
			&key.SubmissionHour,
		); err != nil {
			return nil, fmt.Errorf("scan diagnosis key: %w", err)
		}
		key.KeyData = []byte(keyData)
		key.ReportType = model.ReportType(reportType)
		key.SubmissionType = model.SubmissionType(submissionType)
		keys = append(keys, key)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate diagnosis keys: %w", err)
	}
	return keys, nil
}
