package observability

import (
	"sync"
	"time"
)

// MetricsRegistry provides an interface for recording application metrics.
type MetricsRegistry interface {
	// HTTP Request metrics
	IncrementRequests(endpoint, method, status string)
	RecordRequestLatency(endpoint, method string, duration time.Duration)

	// Fixture metrics
	IncrementFixtureServed(drill string)
	IncrementFixtureMisses()
}

// PrometheusRegistry implements MetricsRegistry using the global Prometheus metrics
type PrometheusRegistry struct{}

// NewPrometheusRegistry creates a new PrometheusRegistry
func NewPrometheusRegistry() *PrometheusRegistry {
	return &PrometheusRegistry{}
}

func (r *PrometheusRegistry) IncrementRequests(endpoint, method, status string) {
	RequestCount.WithLabelValues(endpoint, method, status).Inc()
}

func (r *PrometheusRegistry) RecordRequestLatency(endpoint, method string, duration time.Duration) {
	RequestLatency.WithLabelValues(endpoint, method).Observe(duration.Seconds())
}

func (r *PrometheusRegistry) IncrementFixtureServed(drill string) {
	FixtureServed.WithLabelValues(drill).Inc()
}

func (r *PrometheusRegistry) IncrementFixtureMisses() {
	FixtureMisses.Inc()
}

// NoOpRegistry implements MetricsRegistry with no-op methods for testing
type NoOpRegistry struct{}

// NewNoOpRegistry creates a new NoOpRegistry
func NewNoOpRegistry() *NoOpRegistry {
	return &NoOpRegistry{}
}

func (r *NoOpRegistry) IncrementRequests(endpoint, method, status string)                    {}
func (r *NoOpRegistry) RecordRequestLatency(endpoint, method string, duration time.Duration) {}
func (r *NoOpRegistry) IncrementFixtureServed(drill string)                                  {}
func (r *NoOpRegistry) IncrementFixtureMisses()                                              {}

// RecordingRegistry counts calls so tests can assert on them.
type RecordingRegistry struct {
	mu       sync.Mutex
	Requests map[string]int // keyed by "endpoint method status"
	Served   map[string]int
	Misses   int
}

// NewRecordingRegistry creates an empty RecordingRegistry.
func NewRecordingRegistry() *RecordingRegistry {
	return &RecordingRegistry{
		Requests: make(map[string]int),
		Served:   make(map[string]int),
	}
}

func (r *RecordingRegistry) IncrementRequests(endpoint, method, status string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Requests[endpoint+" "+method+" "+status]++
}

func (r *RecordingRegistry) RecordRequestLatency(endpoint, method string, duration time.Duration) {}

func (r *RecordingRegistry) IncrementFixtureServed(drill string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Served[drill]++
}

func (r *RecordingRegistry) IncrementFixtureMisses() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Misses++
}

// RequestCount returns how many requests were recorded for the label triple.
func (r *RecordingRegistry) RequestCount(endpoint, method, status string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.Requests[endpoint+" "+method+" "+status]
}
