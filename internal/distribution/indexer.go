package distribution

import "github.com/goodnatureofminers/exposurewarn-backend/internal/model"

// HourMarked is implemented by every record distributed in hour packages.
type HourMarked interface {
	SubmissionHourMarker() uint32
}

// Index returns the oldest and latest submission hour of records. Both bounds
// stay nil for an empty input.
func Index[T HourMarked](records []T) model.HourIndex {
	var index model.HourIndex
	for _, r := range records {
		hour := r.SubmissionHourMarker()
		if index.Oldest == nil || hour < *index.Oldest {
			oldest := hour
			index.Oldest = &oldest
		}
		if index.Latest == nil || hour > *index.Latest {
			latest := hour
			index.Latest = &latest
		}
	}
	return index
}
