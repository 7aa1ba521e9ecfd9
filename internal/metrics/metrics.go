package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics groups all Prometheus instruments used across the application.
// Registered once at startup via New(); passed by pointer wherever needed.
type Metrics struct {
	EmailsRequested *prometheus.CounterVec
	EmailsFailed    *prometheus.CounterVec
	DispatchLatency prometheus.Histogram
}

// New registers all instruments with the given Prometheus registerer and
// returns the populated Metrics struct.
// Using a custom registry (instead of prometheus.DefaultRegisterer) keeps
// tests isolated and avoids global state.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		EmailsRequested: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "notify_emails_requested_total",
			Help: "Total number of email requests accepted by the notification provider.",
		}, []string{"status"}),

		EmailsFailed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "notify_emails_failed_total",
			Help: "Total number of email dispatches that ended in a failure result.",
		}, []string{"status"}),

		DispatchLatency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "notify_dispatch_seconds",
			Help:    "Latency of the outbound call to the notification provider.",
			Buckets: prometheus.DefBuckets,
		}),
	}

	reg.MustRegister(
		m.EmailsRequested,
		m.EmailsFailed,
		m.DispatchLatency,
	)

	return m
}

// DispatchHooks returns the callback functions expected by notify.Hooks.
// Centralises the prometheus observation calls so the client stays
// import-free.
func (m *Metrics) DispatchHooks() (
	onSuccess func(status int, elapsed time.Duration),
	onFailure func(status int),
) {
	onSuccess = func(status int, elapsed time.Duration) {
		m.EmailsRequested.WithLabelValues(strconv.Itoa(status)).Inc()
		m.DispatchLatency.Observe(elapsed.Seconds())
	}
	onFailure = func(status int) {
		m.EmailsFailed.WithLabelValues(strconv.Itoa(status)).Inc()
	}
	return
}
