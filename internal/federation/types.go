package federation

import (
	"context"
	"time"

	"github.com/goodnatureofminers/exposurewarn-backend/internal/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// Gateway downloads batches from a federation partner. An empty tag asks
	// for the first batch of the date.
	Gateway interface {
		DownloadBatch(ctx context.Context, date time.Time, tag string) (model.FederationBatch, error)
	}
	BatchTracker interface {
		Discover(ctx context.Context, tag string, date time.Time, source model.FederationBatchSourceSystem) (bool, error)
		RecordOutcome(ctx context.Context, tag string, date time.Time, source model.FederationBatchSourceSystem, status model.FederationBatchStatus) error
		FindByStatus(ctx context.Context, status model.FederationBatchStatus) ([]model.FederationBatchInfo, error)
		PurgeForDate(ctx context.Context, date time.Time) (int64, error)
	}
	CleanupTracker interface {
		CountOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
		PurgeOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
		CountForDate(ctx context.Context, date time.Time) (int64, error)
		PurgeForDate(ctx context.Context, date time.Time) (int64, error)
	}
	KeyRepository interface {
		InsertDiagnosisKeys(ctx context.Context, keys []model.DiagnosisKey) error
	}
	ProcessorMetrics interface {
		ObserveFetchBatches(status model.FederationBatchStatus, err error)
		ObserveProcessRound(err error, batches int, started time.Time)
		ObserveBatch(outcome model.FederationBatchStatus, stored, discarded int, started time.Time)
	}
	GatewayMetrics interface {
		Observe(operation string, err error, started time.Time)
	}
)
