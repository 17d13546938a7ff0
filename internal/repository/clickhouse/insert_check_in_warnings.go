package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/exposurewarn-backend/internal/model"
)

const insertCheckInWarningsQuery = `
INSERT INTO check_in_warnings (
	trace_location_id,
	start_interval_number,
	period,
	transmission_risk_level,
	submission_hour,
	submission_type
) VALUES`

// InsertCheckInWarnings stores check-in warnings in one INSERT block.
func (r *Repository) InsertCheckInWarnings(ctx context.Context, warnings []model.CheckInWarning) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("insert_check_in_warnings", len(warnings), err, start)
	}()

	if len(warnings) == 0 {
		return nil
	}

	batch, err := r.conn.PrepareBatch(ctx, insertCheckInWarningsQuery)
	if err != nil {
		return fmt.Errorf("prepare check-in warnings batch: %w", err)
	}

	for _, w := range warnings {
		if err = batch.Append(
			string(w.TraceLocationID),
			w.StartIntervalNumber,
			w.Period,
			w.TransmissionRiskLevel,
			w.SubmissionHour,
			string(w.SubmissionType),
		); err != nil {
			_ = batch.Abort()
			return fmt.Errorf("append check-in warning: %w", err)
		}
	}

	if err = batch.Send(); err != nil {
		return fmt.Errorf("insert check-in warnings: %w", err)
	}
	return nil
}
