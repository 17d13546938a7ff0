// Package model defines domain models shared by submission, federation and distribution.
package model

// KeyDataLength is the payload length of every diagnosis key, genuine or synthetic.
const KeyDataLength = 16

// ReportType describes how a diagnosis was established.
type ReportType string

var (
	ReportConfirmedTest ReportType = "CONFIRMED_TEST"
	ReportSelfReport    ReportType = "SELF_REPORT"
	ReportRecursive     ReportType = "RECURSIVE"
	ReportRevoked       ReportType = "REVOKED"
)

// SubmissionType is the channel a key or check-in arrived through.
type SubmissionType string

var (
	SubmissionPCRTest     SubmissionType = "SUBMISSION_TYPE_PCR_TEST"
	SubmissionRapidTest   SubmissionType = "SUBMISSION_TYPE_RAPID_TEST"
	SubmissionHostWarning SubmissionType = "SUBMISSION_TYPE_HOST_WARNING"
	SubmissionFederation  SubmissionType = "SUBMISSION_TYPE_FEDERATION"
)

// DiagnosisKey is a proximity key persisted to ClickHouse.
// TransmissionRiskLevel always holds the stored (derived) value.
type DiagnosisKey struct {
	KeyData                    []byte
	RollingStartIntervalNumber uint32
	RollingPeriod              uint32
	TransmissionRiskLevel      int32
	ReportType                 ReportType
	OriginCountry              string
	VisitedCountries           []string
	ConsentToFederation        bool
	SubmissionType             SubmissionType
	// DaysSinceOnsetOfSymptoms is nil when unknown.
	DaysSinceOnsetOfSymptoms *int32
	SubmissionHour           uint32
}

// SubmissionHourMarker returns the hour since epoch the key was submitted in.
func (k DiagnosisKey) SubmissionHourMarker() uint32 {
	return k.SubmissionHour
}
