// Package checkin validates, filters and pads venue check-ins before storage.
package checkin

import (
	"errors"
	"fmt"
	"time"

	"github.com/goodnatureofminers/exposurewarn-backend/internal/model"
)

// ErrTooManyCheckInsAtSameDay is returned when one day holds more check-ins than allowed.
var ErrTooManyCheckInsAtSameDay = errors.New("too many check-ins at the same day")

const intervalsPerDay = 24 * 60 * 60 / model.SecondsPerInterval

// FilterConfig configures the check-in filter.
type FilterConfig struct {
	// AcceptedEventDateThresholdDays drops check-ins that ended before today minus this many days.
	AcceptedEventDateThresholdDays int
	// MaxCheckInsPerDay bounds check-ins starting on the same UTC day.
	MaxCheckInsPerDay int
}

// Filter drops check-ins that must not be distributed.
type Filter struct {
	cfg FilterConfig
	now func() time.Time
}

// NewFilter constructs a Filter; now defaults to time.Now.
func NewFilter(cfg FilterConfig, now func() time.Time) *Filter {
	if now == nil {
		now = time.Now
	}
	return &Filter{cfg: cfg, now: now}
}

// ValidateByDate fails with ErrTooManyCheckInsAtSameDay when a single UTC day
// holds more than MaxCheckInsPerDay check-ins.
func (f *Filter) ValidateByDate(checkIns []model.CheckIn) error {
	if f.cfg.MaxCheckInsPerDay <= 0 {
		return nil
	}

	perDay := make(map[uint32]int)
	for _, c := range checkIns {
		day := c.StartIntervalNumber / intervalsPerDay
		perDay[day]++
		if perDay[day] > f.cfg.MaxCheckInsPerDay {
			date := time.Unix(int64(day)*intervalsPerDay*model.SecondsPerInterval, 0).UTC()
			return fmt.Errorf("%w: more than %d on %s", ErrTooManyCheckInsAtSameDay,
				f.cfg.MaxCheckInsPerDay, date.Format(time.DateOnly))
		}
	}
	return nil
}

// Apply returns the check-ins that pass every filter, preserving order.
func (f *Filter) Apply(checkIns []model.CheckIn) []model.CheckIn {
	now := f.now()
	currentInterval := model.IntervalSinceEpoch(now)
	threshold := model.IntervalSinceEpoch(model.Day(now).AddDate(0, 0, -f.cfg.AcceptedEventDateThresholdDays))

	kept := make([]model.CheckIn, 0, len(checkIns))
	for _, c := range checkIns {
		switch {
		case len(c.LocationID) == 0:
		case c.EndIntervalNumber <= c.StartIntervalNumber:
		case c.TransmissionRiskLevel <= 0:
		case c.StartIntervalNumber > currentInterval:
		case c.EndIntervalNumber < threshold:
		default:
			kept = append(kept, c)
		}
	}
	return kept
}
