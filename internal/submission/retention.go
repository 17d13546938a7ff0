package submission

import (
	"time"

	"github.com/goodnatureofminers/exposurewarn-backend/internal/model"
)

// RetentionFilter rejects keys whose rolling start date lies before the retention horizon.
type RetentionFilter struct {
	retentionDays int
	now           func() time.Time
}

// NewRetentionFilter constructs a RetentionFilter; now defaults to time.Now.
func NewRetentionFilter(retentionDays int, now func() time.Time) RetentionFilter {
	if now == nil {
		now = time.Now
	}
	return RetentionFilter{retentionDays: retentionDays, now: now}
}

// Accept reports whether the rolling start date is on or after today minus the retention days (UTC).
func (f RetentionFilter) Accept(rollingStartIntervalNumber uint32) bool {
	return WithinRetention(rollingStartIntervalNumber, f.retentionDays, f.now())
}

// WithinRetention is the predicate behind RetentionFilter.
func WithinRetention(rollingStartIntervalNumber uint32, retentionDays int, now time.Time) bool {
	threshold := model.Day(now).AddDate(0, 0, -retentionDays)
	start := model.Day(time.Unix(int64(rollingStartIntervalNumber)*model.SecondsPerInterval, 0))
	return !start.Before(threshold)
}
