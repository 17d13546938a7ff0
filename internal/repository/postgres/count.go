package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/exposurewarn-backend/internal/model"
)

func (r *Repository) CountOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("count_older_than", err, start)
	}()

	var count int64
	if err = r.db.WithContext(ctx).
		Model(&batchInfoRow{}).
		Where("date < ?", model.Day(cutoff)).
		Count(&count).
		Error; err != nil {
		return 0, fmt.Errorf("count federation batches before %s: %w", cutoff.Format(time.DateOnly), err)
	}
	return count, nil
}

func (r *Repository) CountForDate(ctx context.Context, date time.Time) (int64, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("count_for_date", err, start)
	}()

	var count int64
	if err = r.db.WithContext(ctx).
		Model(&batchInfoRow{}).
		Where("date = ?", model.Day(date)).
		Count(&count).
		Error; err != nil {
		return 0, fmt.Errorf("count federation batches of %s: %w", date.Format(time.DateOnly), err)
	}
	return count, nil
}
