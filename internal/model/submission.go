package model

import "time"

const (
	// SecondsPerHour is the length of one hour bucket.
	SecondsPerHour = 3600
	// SecondsPerInterval is the length of one rolling interval.
	SecondsPerInterval = 600
)

// RawKey is a key as submitted by a client, before derivation.
type RawKey struct {
	KeyData                    []byte
	RollingStartIntervalNumber uint32
	RollingPeriod              uint32
	TransmissionRiskLevel      int32
	ReportType                 ReportType
	DaysSinceOnsetOfSymptoms   *int32
}

// SubmissionPayload is one submission handed over by the transport.
type SubmissionPayload struct {
	Keys                []RawKey
	CheckIns            []CheckIn
	Origin              string
	VisitedCountries    []string
	ConsentToFederation bool
	SubmissionType      SubmissionType
}

// SubmissionResult carries the counters reported back to the submitter.
type SubmissionResult struct {
	FilteredCheckIns int
	SavedCheckIns    int
}

// HourIndex bounds the submission hours of one directory of hour packages.
// Both bounds are nil for an empty directory.
type HourIndex struct {
	Oldest *uint32 `json:"oldest"`
	Latest *uint32 `json:"latest"`
}

// HourSinceEpoch derives the submission hour marker from wall-clock time.
func HourSinceEpoch(t time.Time) uint32 {
	return uint32(t.Unix() / SecondsPerHour)
}

// IntervalSinceEpoch derives the ten-minute interval number from wall-clock time.
func IntervalSinceEpoch(t time.Time) uint32 {
	return uint32(t.Unix() / SecondsPerInterval)
}
