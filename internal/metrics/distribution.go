package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	distributionRunTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "distribution",
		Name:      "runs_total",
		Help:      "Count of distribution runs.",
	}, []string{"status"})

	distributionRunDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "distribution",
		Name:      "run_duration_seconds",
		Help:      "Duration of a distribution run.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"status"})

	distributionPackagesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "distribution",
		Name:      "packages_total",
		Help:      "Count of written hour packages by directory kind.",
	}, []string{"kind"})
)

// Distribution tracks metrics for the packaging job.
type Distribution struct{}

// NewDistribution constructs a Distribution metrics collector.
func NewDistribution() *Distribution {
	return &Distribution{}
}

// ObserveRun records the outcome of one run.
func (m Distribution) ObserveRun(err error, started time.Time) {
	status := statusLabel(err)
	distributionRunTotal.WithLabelValues(status).Inc()
	distributionRunDuration.WithLabelValues(status).Observe(time.Since(started).Seconds())
}

// ObservePackages counts hour packages written for one directory.
func (m Distribution) ObservePackages(kind string, packages int) {
	distributionPackagesTotal.WithLabelValues(kind).Add(float64(packages))
}
