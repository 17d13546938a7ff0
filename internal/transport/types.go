package transport

import (
	"context"
	"time"

	"github.com/goodnatureofminers/exposurewarn-backend/internal/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	Submitter interface {
		Submit(ctx context.Context, payload model.SubmissionPayload) (model.SubmissionResult, error)
	}
	// Verifier checks a TAN against the verification service.
	Verifier interface {
		Verify(ctx context.Context, tan string) (bool, error)
	}
	DelayManager interface {
		Update(observed time.Duration)
		Delay() time.Duration
		JitteredDelay() time.Duration
	}
	Metrics interface {
		ObserveRequest(kind string)
		ObserveFakeDelay(d time.Duration)
	}
)
