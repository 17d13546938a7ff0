package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	submissionRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "submission",
		Name:      "requests_total",
		Help:      "Count of handled submissions.",
	}, []string{"status"})

	submissionDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "submission",
		Name:      "duration_seconds",
		Help:      "Duration of handling a submission.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"status"})

	submissionKeysTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "submission",
		Name:      "keys_total",
		Help:      "Count of submitted keys by disposition.",
	}, []string{"disposition"})

	submissionCheckInsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "submission",
		Name:      "checkins_total",
		Help:      "Count of submitted check-ins by disposition.",
	}, []string{"disposition"})

	submissionCheckInFailuresTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "submission",
		Name:      "checkin_failures_total",
		Help:      "Count of submissions whose check-in path failed.",
	})

	submissionFakeDelaySeconds = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: "submission",
		Name:      "fake_delay_seconds",
		Help:      "Current mean delay applied to fake requests.",
	})

	submissionRequestsByKind = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "submission",
		Name:      "http_requests_total",
		Help:      "Count of submission HTTP requests by kind.",
	}, []string{"kind"})
)

// Submission tracks metrics for the submission service and its transport.
type Submission struct{}

// NewSubmission constructs a Submission metrics collector.
func NewSubmission() *Submission {
	return &Submission{}
}

// ObserveSubmission records the outcome of a submission.
func (m Submission) ObserveSubmission(err error, started time.Time) {
	status := statusLabel(err)
	submissionRequestsTotal.WithLabelValues(status).Inc()
	submissionDuration.WithLabelValues(status).Observe(time.Since(started).Seconds())
}

// ObserveKeys records how many keys were stored, padded and discarded.
func (m Submission) ObserveKeys(genuine, padding, discarded int) {
	submissionKeysTotal.WithLabelValues("genuine").Add(float64(genuine))
	submissionKeysTotal.WithLabelValues("padding").Add(float64(padding))
	submissionKeysTotal.WithLabelValues("discarded").Add(float64(discarded))
}

// ObserveCheckIns records the check-in counters of one submission.
func (m Submission) ObserveCheckIns(filtered, saved int, err error) {
	submissionCheckInsTotal.WithLabelValues("filtered").Add(float64(filtered))
	submissionCheckInsTotal.WithLabelValues("saved").Add(float64(saved))
	if err != nil {
		submissionCheckInFailuresTotal.Inc()
	}
}

// ObserveFakeDelay exports the current fake delay mean.
func (m Submission) ObserveFakeDelay(d time.Duration) {
	submissionFakeDelaySeconds.Set(d.Seconds())
}

// ObserveRequest counts an HTTP request by kind (real, fake, invalid_tan, bad_request).
func (m Submission) ObserveRequest(kind string) {
	submissionRequestsByKind.WithLabelValues(kind).Inc()
}
