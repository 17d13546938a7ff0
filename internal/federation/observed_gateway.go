package federation

import (
	"context"
	"errors"
	"time"

	"github.com/goodnatureofminers/exposurewarn-backend/internal/model"
)

// ObservedGateway records metrics around every gateway call.
type ObservedGateway struct {
	gateway Gateway
	metrics GatewayMetrics
}

func NewObservedGateway(gateway Gateway, metrics GatewayMetrics) *ObservedGateway {
	return &ObservedGateway{
		gateway: gateway,
		metrics: metrics,
	}
}

func (g *ObservedGateway) DownloadBatch(ctx context.Context, date time.Time, tag string) (batch model.FederationBatch, err error) {
	started := time.Now()
	defer func() {
		observed := err
		if errors.Is(err, ErrNoBatch) {
			observed = nil
		}
		g.metrics.Observe("download_batch", observed, started)
	}()
	return g.gateway.DownloadBatch(ctx, date, tag)
}
