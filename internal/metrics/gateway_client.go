package metrics

import (
	"time"

	"github.com/goodnatureofminers/exposurewarn-backend/internal/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	gatewayRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "gateway_client",
		Name:      "operations_total",
		Help:      "Count of federation gateway operations.",
	}, []string{"operation", "source", "status"})
	gatewayRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "gateway_client",
		Name:      "operation_duration_seconds",
		Help:      "Duration of federation gateway operations.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"operation", "source", "status"})
)

// GatewayClient tracks metrics for calls to a federation gateway.
type GatewayClient struct {
	source model.FederationBatchSourceSystem
}

// NewGatewayClient constructs a metrics collector for gateway calls.
func NewGatewayClient(source model.FederationBatchSourceSystem) *GatewayClient {
	if source == "" {
		source = "unknown"
	}
	return &GatewayClient{source: source}
}

// Observe records a single gateway call outcome and duration.
func (m GatewayClient) Observe(operation string, err error, started time.Time) {
	status := statusLabel(err)

	gatewayRequestsTotal.WithLabelValues(operation, string(m.source), status).Inc()
	gatewayRequestDuration.WithLabelValues(operation, string(m.source), status).Observe(time.Since(started).Seconds())
}
