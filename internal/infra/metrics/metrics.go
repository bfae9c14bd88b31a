// Package metrics records fragment store request outcomes as Prometheus metrics.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Recorder is what the fragment client reports to.
type Recorder interface {
	RecordResponse(operation string, statusCode int, duration time.Duration)
	RecordFailure(operation string, kind string)
	RecordRefresh(fragmentCount int)
}

// Collector is the Prometheus-backed Recorder.
type Collector struct {
	responses *prometheus.CounterVec
	failures  *prometheus.CounterVec
	latency   *prometheus.HistogramVec
	viewSize  prometheus.Gauge
}

// NewCollector creates a Collector and registers its metrics on reg.
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		responses: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "fragments_client_responses_total",
			Help: "Responses received from the fragment store by operation and status code.",
		}, []string{"operation", "status_code"}),
		failures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "fragments_client_failures_total",
			Help: "Failed fragment operations by operation and failure kind.",
		}, []string{"operation", "kind"}),
		latency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "fragments_client_request_duration_seconds",
			Help:    "Round-trip latency of fragment store requests.",
			Buckets: prometheus.DefBuckets,
		}, []string{"operation"}),
		viewSize: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "fragments_view_size",
			Help: "Number of fragments in the last authoritative refresh.",
		}),
	}

	reg.MustRegister(c.responses, c.failures, c.latency, c.viewSize)

	return c
}

// RecordResponse counts a response and observes its latency.
func (c *Collector) RecordResponse(operation string, statusCode int, duration time.Duration) {
	c.responses.WithLabelValues(operation, strconv.Itoa(statusCode)).Inc()
	c.latency.WithLabelValues(operation).Observe(duration.Seconds())
}

// RecordFailure counts a classified failure.
func (c *Collector) RecordFailure(operation string, kind string) {
	c.failures.WithLabelValues(operation, kind).Inc()
}

// RecordRefresh sets the size of the current fragment view.
func (c *Collector) RecordRefresh(fragmentCount int) {
	c.viewSize.Set(float64(fragmentCount))
}

// Handler returns the scrape handler for gatherer.
func Handler(gatherer prometheus.Gatherer) http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))

	return mux
}

// Nop discards everything.
type Nop struct{}

func (Nop) RecordResponse(string, int, time.Duration) {}
func (Nop) RecordFailure(string, string)              {}
func (Nop) RecordRefresh(int)                         {}
