package submission

import (
	"context"
	"time"

	"github.com/goodnatureofminers/exposurewarn-backend/internal/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	KeyRepository interface {
		InsertDiagnosisKeys(ctx context.Context, keys []model.DiagnosisKey) error
	}
	CheckInRepository interface {
		InsertCheckInWarnings(ctx context.Context, warnings []model.CheckInWarning) error
	}
	CheckInFilter interface {
		ValidateByDate(checkIns []model.CheckIn) error
		Apply(checkIns []model.CheckIn) []model.CheckIn
	}
	CheckInPadder interface {
		Pad(checkIns []model.CheckIn, multiplier int, pepper []byte, hour uint32, submissionType model.SubmissionType) []model.CheckInWarning
	}
	RiskLevelDeriver interface {
		Derive(submitted int32) int32
	}
	Metrics interface {
		ObserveSubmission(err error, started time.Time)
		ObserveKeys(genuine, padding, discarded int)
		ObserveCheckIns(filtered, saved int, err error)
	}
)
