package federation

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/goodnatureofminers/exposurewarn-backend/internal/model"
)

// Cleaner removes batch tracking rows that left the retention window.
type Cleaner struct {
	logger        *zap.Logger
	tracker       CleanupTracker
	retentionDays int
	now           func() time.Time
}

func NewCleaner(tracker CleanupTracker, retentionDays int, logger *zap.Logger) (*Cleaner, error) {
	if tracker == nil {
		return nil, errors.New("cleanup tracker is required")
	}
	if retentionDays <= 0 {
		return nil, fmt.Errorf("retention days must be positive, got %d", retentionDays)
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Cleaner{
		logger:        logger,
		tracker:       tracker,
		retentionDays: retentionDays,
		now:           time.Now,
	}, nil
}

// Run deletes every batch dated before today minus the retention days.
func (c *Cleaner) Run(ctx context.Context) (int64, error) {
	cutoff := model.Day(c.now()).AddDate(0, 0, -c.retentionDays)
	logger := c.logger.With(zap.String("cutoff", cutoff.Format(time.DateOnly)))

	expected, err := c.tracker.CountOlderThan(ctx, cutoff)
	if err != nil {
		return 0, fmt.Errorf("count batches before %s: %w", cutoff.Format(time.DateOnly), err)
	}
	logger.Info("deleting batch info older than retention", zap.Int64("expected", expected))

	deleted, err := c.tracker.PurgeOlderThan(ctx, cutoff)
	if err != nil {
		return 0, fmt.Errorf("purge batches before %s: %w", cutoff.Format(time.DateOnly), err)
	}
	logger.Info("deleted batch info", zap.Int64("rows", deleted))
	return deleted, nil
}

// PurgeDate deletes the batches of one date.
func (c *Cleaner) PurgeDate(ctx context.Context, date time.Time) (int64, error) {
	date = model.Day(date)
	logger := c.logger.With(zap.String("date", date.Format(time.DateOnly)))

	expected, err := c.tracker.CountForDate(ctx, date)
	if err != nil {
		return 0, fmt.Errorf("count batches of %s: %w", date.Format(time.DateOnly), err)
	}
	logger.Info("deleting batch info of date", zap.Int64("expected", expected))

	deleted, err := c.tracker.PurgeForDate(ctx, date)
	if err != nil {
		return 0, fmt.Errorf("purge batches of %s: %w", date.Format(time.DateOnly), err)
	}
	logger.Info("deleted batch info", zap.Int64("rows", deleted))
	return deleted, nil
}
