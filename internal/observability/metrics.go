package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	// total requests per endpoint, method and status code
	RequestCount = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gitdrills_requests_total",
			Help: "Total API requests received",
		},
		[]string{"endpoint", "method", "status"},
	)

	// request latency in seconds per endpoint/method
	RequestLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "gitdrills_request_duration_seconds",
			Help:    "Histogram of request latencies",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"endpoint", "method"},
	)

	// fixtures served, labelled by drill
	FixtureServed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gitdrills_fixtures_served_total",
			Help: "Total canned fixtures served",
		},
		[]string{"drill"},
	)

	// lookups for a drill or case that is not in the catalog
	FixtureMisses = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "gitdrills_fixture_misses_total",
			Help: "Total lookups of unknown drills or cases",
		},
	)
)

func init() {
	prometheus.MustRegister(
		RequestCount,
		RequestLatency,
		FixtureServed,
		FixtureMisses,
	)
}
