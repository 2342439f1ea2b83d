// Package metrics holds the Prometheus instrumentation shared across the
// application: common histogram buckets and the domain counters incremented
// by the workflow services.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// DefaultBuckets provides a common set of histogram buckets in seconds that can
// be reused across the application for latency metrics.
var DefaultBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10} //nolint: gochecknoglobals

// Metrics tracks domain-level events. All services accept a *Metrics and
// tolerate nil, so unit tests can pass nothing.
type Metrics struct {
	DonorsRegistered  prometheus.Counter
	HospitalsApproved prometheus.Counter
	HospitalsRejected prometheus.Counter
	RequestsCreated   *prometheus.CounterVec
	DonorsNotified    prometheus.Counter
	MatchDuration     prometheus.Histogram
}

// New creates a Metrics instance with all collectors registered on reg.
// Production passes prometheus.DefaultRegisterer; tests pass a fresh
// prometheus.NewRegistry() so repeated construction in one process does not
// trip duplicate-registration panics.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		DonorsRegistered: factory.NewCounter(prometheus.CounterOpts{
			Name: "bloodlink_donors_registered_total",
			Help: "Total number of donors registered",
		}),
		HospitalsApproved: factory.NewCounter(prometheus.CounterOpts{
			Name: "bloodlink_hospitals_approved_total",
			Help: "Total number of hospitals approved by an admin",
		}),
		HospitalsRejected: factory.NewCounter(prometheus.CounterOpts{
			Name: "bloodlink_hospitals_rejected_total",
			Help: "Total number of hospitals rejected by an admin",
		}),
		RequestsCreated: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "bloodlink_blood_requests_created_total",
			Help: "Total number of blood requests created, by urgency",
		}, []string{"urgency"}),
		DonorsNotified: factory.NewCounter(prometheus.CounterOpts{
			Name: "bloodlink_donors_notified_total",
			Help: "Total number of donor notifications dispatched",
		}),
		MatchDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "bloodlink_match_duration_seconds",
			Help:    "Duration of eligible-donor matching queries",
			Buckets: DefaultBuckets,
		}),
	}
}

// IncDonorsRegistered records a successful donor registration. Nil-safe.
func (m *Metrics) IncDonorsRegistered() {
	if m != nil {
		m.DonorsRegistered.Inc()
	}
}

// IncHospitalsApproved records a hospital approval. Nil-safe.
func (m *Metrics) IncHospitalsApproved() {
	if m != nil {
		m.HospitalsApproved.Inc()
	}
}

// IncHospitalsRejected records a hospital rejection. Nil-safe.
func (m *Metrics) IncHospitalsRejected() {
	if m != nil {
		m.HospitalsRejected.Inc()
	}
}

// IncRequestsCreated records a created blood request. Nil-safe.
func (m *Metrics) IncRequestsCreated(urgency string) {
	if m != nil {
		m.RequestsCreated.WithLabelValues(urgency).Inc()
	}
}

// AddDonorsNotified records dispatched donor notifications. Nil-safe.
func (m *Metrics) AddDonorsNotified(n int) {
	if m != nil {
		m.DonorsNotified.Add(float64(n))
	}
}

// ObserveMatchDuration records the duration of a matching query in seconds.
// Nil-safe.
func (m *Metrics) ObserveMatchDuration(seconds float64) {
	if m != nil {
		m.MatchDuration.Observe(seconds)
	}
}
