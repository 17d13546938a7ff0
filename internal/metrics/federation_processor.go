package metrics

import (
	"time"

	"github.com/goodnatureofminers/exposurewarn-backend/internal/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	federationFetchBatchesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "federation_processor",
		Name:      "fetch_batches_total",
		Help:      "Count of attempts to load batches by status.",
	}, []string{"source", "batch_status", "status"})

	federationProcessRoundTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "federation_processor",
		Name:      "process_round_total",
		Help:      "Count of processing rounds.",
	}, []string{"source", "status"})

	federationProcessRoundDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "federation_processor",
		Name:      "process_round_duration_seconds",
		Help:      "Duration of a processing round.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"source", "status"})

	federationProcessRoundSize = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "federation_processor",
		Name:      "process_round_size",
		Help:      "Number of batches processed per round.",
		Buckets:   prometheus.ExponentialBuckets(1, 2, 10),
	}, []string{"source"})

	federationBatchOutcomeTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "federation_processor",
		Name:      "batch_outcome_total",
		Help:      "Count of batches by recorded outcome.",
	}, []string{"source", "outcome"})

	federationBatchDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "federation_processor",
		Name:      "batch_duration_seconds",
		Help:      "Duration of processing a single batch.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"source", "outcome"})

	federationBatchKeys = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "federation_processor",
		Name:      "keys_total",
		Help:      "Count of downloaded keys by disposition.",
	}, []string{"source", "disposition"})
)

// FederationProcessor tracks metrics for the federation batch processor.
type FederationProcessor struct {
	source model.FederationBatchSourceSystem
}

// NewFederationProcessor constructs a FederationProcessor with defaults.
func NewFederationProcessor(source model.FederationBatchSourceSystem) *FederationProcessor {
	if source == "" {
		source = "unknown"
	}
	return &FederationProcessor{source: source}
}

// ObserveFetchBatches records a FindByStatus attempt.
func (m FederationProcessor) ObserveFetchBatches(status model.FederationBatchStatus, err error) {
	federationFetchBatchesTotal.WithLabelValues(string(m.source), string(status), statusLabel(err)).Inc()
}

// ObserveProcessRound records one round over the unprocessed queue.
func (m FederationProcessor) ObserveProcessRound(err error, batches int, started time.Time) {
	status := statusLabel(err)
	federationProcessRoundTotal.WithLabelValues(string(m.source), status).Inc()
	federationProcessRoundDuration.WithLabelValues(string(m.source), status).
		Observe(time.Since(started).Seconds())
	federationProcessRoundSize.WithLabelValues(string(m.source)).Observe(float64(batches))
}

// ObserveBatch records the outcome of a single batch.
func (m FederationProcessor) ObserveBatch(outcome model.FederationBatchStatus, stored, discarded int, started time.Time) {
	federationBatchOutcomeTotal.WithLabelValues(string(m.source), string(outcome)).Inc()
	federationBatchDuration.WithLabelValues(string(m.source), string(outcome)).
		Observe(time.Since(started).Seconds())
	federationBatchKeys.WithLabelValues(string(m.source), "stored").Add(float64(stored))
	federationBatchKeys.WithLabelValues(string(m.source), "discarded").Add(float64(discarded))
}
