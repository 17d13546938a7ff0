package distribution

// Bundle keeps the records submitted before distributionHour. Records of the
// running hour are left for the next run.
func Bundle[T HourMarked](records []T, distributionHour uint32) []T {
	bundled := make([]T, 0, len(records))
	for _, r := range records {
		if r.SubmissionHourMarker() < distributionHour {
			bundled = append(bundled, r)
		}
	}
	return bundled
}

func groupByHour[T HourMarked](records []T) map[uint32][]T {
	grouped := make(map[uint32][]T)
	for _, r := range records {
		hour := r.SubmissionHourMarker()
		grouped[hour] = append(grouped[hour], r)
	}
	return grouped
}
