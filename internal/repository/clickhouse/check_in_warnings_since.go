package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/exposurewarn-backend/internal/model"
)

const checkInWarningsSinceQuery = `
SELECT
	trace_location_id,
	start_interval_number,
	period,
	transmission_risk_level,
	submission_hour,
	submission_type
FROM check_in_warnings
WHERE submission_hour >= ?
ORDER BY submission_hour ASC`

// CheckInWarningsSince returns the check-in warnings submitted in or after the given hour.
func (r *Repository) CheckInWarningsSince(ctx context.Context, hour uint32) ([]model.CheckInWarning, error) {
	start := time.Now()
	var (
		err      error
		warnings []model.CheckInWarning
	)
	defer func() {
		r.metrics.Observe("check_in_warnings_since", len(warnings), err, start)
	}()

	rows, err := r.conn.Query(ctx, checkInWarningsSinceQuery, hour)
	if err != nil {
		return nil, fmt.Errorf("query check-in warnings: %w", err)
	}
	defer closeRows(rows, &err)

	for rows.Next() {
		var (
			traceLocationID string
			submissionType  string
			w               model.CheckInWarning
		)
		if err = rows.Scan(
			&traceLocationID,
			&w.StartIntervalNumber,
			&w.Period,
			&w.TransmissionRiskLevel,
			&w.SubmissionHour,
			&submissionType,
		); err != nil {
			return nil, fmt.Errorf("scan check-in warning: %w", err)
		}
		w.TraceLocationID = []byte(traceLocationID)
		w.SubmissionType = model.SubmissionType(submissionType)
		warnings = append(warnings, w)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate check-in warnings: %w", err)
	}
	return warnings, nil
}
