package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/exposurewarn-backend/internal/model"
)

// PurgeOlderThan deletes batches dated strictly before cutoff and returns the deleted row count.
func (r *Repository) PurgeOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("purge_older_than", err, start)
	}()

	result := r.db.WithContext(ctx).
		Where("date < ?", model.Day(cutoff)).
		Delete(&batchInfoRow{})
	if err = result.Error; err != nil {
		return 0, fmt.Errorf("delete federation batches before %s: %w", cutoff.Format(time.DateOnly), err)
	}
	return result.RowsAffected, nil
}

// PurgeForDate deletes batches of exactly one date.
func (r *Repository) PurgeForDate(ctx context.Context, date time.Time) (int64, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("purge_for_date", err, start)
	}()

	result := r.db.WithContext(ctx).
		Where("date = ?", model.Day(date)).
		Delete(&batchInfoRow{})
	if err = result.Error; err != nil {
		return 0, fmt.Errorf("delete federation batches of %s: %w", date.Format(time.DateOnly), err)
	}
	return result.RowsAffected, nil
}
