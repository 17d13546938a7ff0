package model

// CheckIn is a raw venue check-in as submitted by a client.
// Interval numbers are ten-minute intervals since epoch.
type CheckIn struct {
	LocationID            []byte
	StartIntervalNumber   uint32
	EndIntervalNumber     uint32
	TransmissionRiskLevel int32
}

// CheckInWarning is a check-in converted for distribution.
type CheckInWarning struct {
	TraceLocationID       []byte
	StartIntervalNumber   uint32
	Period                uint32
	TransmissionRiskLevel int32
	SubmissionHour        uint32
	SubmissionType        SubmissionType
}

// SubmissionHourMarker returns the hour since epoch the warning was submitted in.
func (w CheckInWarning) SubmissionHourMarker() uint32 {
	return w.SubmissionHour
}
