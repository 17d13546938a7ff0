package distribution

import (
	"context"
	"time"

	"github.com/goodnatureofminers/exposurewarn-backend/internal/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	Repository interface {
		DiagnosisKeysSince(ctx context.Context, hour uint32) ([]model.DiagnosisKey, error)
		CheckInWarningsSince(ctx context.Context, hour uint32) ([]model.CheckInWarning, error)
	}
	// Writer persists finalized hour packages and directory indexes.
	Writer interface {
		WritePackage(ctx context.Context, dir string, hour uint32, records any) error
		WriteIndex(ctx context.Context, dir string, index model.HourIndex) error
	}
	Metrics interface {
		ObserveRun(err error, started time.Time)
		ObservePackages(kind string, packages int)
	}
)
