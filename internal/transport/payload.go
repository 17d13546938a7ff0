package transport

import (
	"strings"

	"github.com/goodnatureofminers/exposurewarn-backend/internal/model"
)

type submissionRequest struct {
	Keys                []requestKey     `json:"keys"`
	CheckIns            []requestCheckIn `json:"checkIns"`
	Origin              string           `json:"origin"`
	VisitedCountries    []string         `json:"visitedCountries"`
	ConsentToFederation bool             `json:"consentToFederation"`
	SubmissionType      string           `json:"submissionType"`
}

type requestKey struct {
	KeyData                    []byte `json:"keyData"`
	RollingStartIntervalNumber uint32 `json:"rollingStartIntervalNumber"`
	RollingPeriod              uint32 `json:"rollingPeriod"`
	TransmissionRiskLevel      int32  `json:"transmissionRiskLevel"`
	ReportType                 string `json:"reportType"`
	DaysSinceOnsetOfSymptoms   *int32 `json:"daysSinceOnsetOfSymptoms,omitempty"`
}

type requestCheckIn struct {
	LocationID            []byte `json:"locationId"`
	StartIntervalNumber   uint32 `json:"startIntervalNumber"`
	EndIntervalNumber     uint32 `json:"endIntervalNumber"`
	TransmissionRiskLevel int32  `json:"transmissionRiskLevel"`
}

func (r submissionRequest) toPayload() model.SubmissionPayload {
	payload := model.SubmissionPayload{
		Keys:                make([]model.RawKey, 0, len(r.Keys)),
		CheckIns:            make([]model.CheckIn, 0, len(r.CheckIns)),
		Origin:              strings.TrimSpace(r.Origin),
		VisitedCountries:    r.VisitedCountries,
		ConsentToFederation: r.ConsentToFederation,
		SubmissionType:      model.SubmissionType(r.SubmissionType),
	}
	for _, k := range r.Keys {
		payload.Keys = append(payload.Keys, model.RawKey{
			KeyData:                    k.KeyData,
			RollingStartIntervalNumber: k.RollingStartIntervalNumber,
			RollingPeriod:              k.RollingPeriod,
			TransmissionRiskLevel:      k.TransmissionRiskLevel,
			ReportType:                 model.ReportType(k.ReportType),
			DaysSinceOnsetOfSymptoms:   k.DaysSinceOnsetOfSymptoms,
		})
	}
	for _, c := range r.CheckIns {
		payload.CheckIns = append(payload.CheckIns, model.CheckIn{
			LocationID:            c.LocationID,
			StartIntervalNumber:   c.StartIntervalNumber,
			EndIntervalNumber:     c.EndIntervalNumber,
			TransmissionRiskLevel: c.TransmissionRiskLevel,
		})
	}
	return payload
}
