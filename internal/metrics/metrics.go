// Package metrics provides Prometheus metrics collection for the translation service.
package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequestDuration tracks HTTP request duration by method, path, and status code.
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status_code"},
	)

	// HTTPRequestTotal tracks total HTTP requests by method, path, and status code.
	HTTPRequestTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status_code"},
	)

	// JobsTotal counts finished translation jobs by kind and outcome.
	JobsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "translation_jobs_total",
			Help: "Total number of translation jobs",
		},
		[]string{"kind", "status"},
	)

	// JobDuration tracks end-to-end job duration.
	JobDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "translation_job_duration_seconds",
			Help:    "Translation job duration in seconds",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30, 60, 120},
		},
		[]string{"kind"},
	)

	// ProviderRequestsTotal counts outbound provider calls by result.
	ProviderRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "provider_requests_total",
			Help: "Total number of translation provider requests",
		},
		[]string{"result"},
	)

	// ProviderRequestDuration tracks a single provider round trip.
	ProviderRequestDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "provider_request_duration_seconds",
			Help:    "Translation provider request duration in seconds",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2, 5, 10, 30},
		},
	)

	// ChunksTotal counts chunks sent to the provider.
	ChunksTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "translation_chunks_total",
			Help: "Total number of text chunks translated",
		},
	)

	// ExtractionFailuresTotal counts documents and images whose text could not be read.
	ExtractionFailuresTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "extraction_failures_total",
			Help: "Total number of failed text extractions",
		},
		[]string{"kind"},
	)

	// CircuitBreakerState reports 0 (closed), 1 (open) or 2 (half-open) per breaker.
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_state",
			Help: "Circuit breaker state: 0 closed, 1 open, 2 half-open",
		},
		[]string{"name"},
	)

	// JobRecordsDropped counts audit records discarded because the writer queue was full.
	JobRecordsDropped = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "job_records_dropped_total",
			Help: "Total number of job records dropped",
		},
	)
)

// PrometheusMiddleware returns a Gin middleware that collects HTTP metrics.
func PrometheusMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}

		c.Next()

		duration := time.Since(start).Seconds()
		statusCode := strconv.Itoa(c.Writer.Status())
		method := c.Request.Method

		HTTPRequestDuration.WithLabelValues(method, path, statusCode).Observe(duration)
		HTTPRequestTotal.WithLabelValues(method, path, statusCode).Inc()
	}
}

// RecordJob records metrics for a finished job.
func RecordJob(kind, status string, duration time.Duration) {
	JobDuration.WithLabelValues(kind).Observe(duration.Seconds())
	JobsTotal.WithLabelValues(kind, status).Inc()
}

// RecordProviderRequest records one provider round trip. result is "success"
// or a short error classification.
func RecordProviderRequest(result string, duration time.Duration) {
	ProviderRequestDuration.Observe(duration.Seconds())
	ProviderRequestsTotal.WithLabelValues(result).Inc()
}

// RecordChunk counts one translated chunk.
func RecordChunk() {
	ChunksTotal.Inc()
}

// RecordExtractionFailure counts a failed extraction of the given kind (document, image).
func RecordExtractionFailure(kind string) {
	ExtractionFailuresTotal.WithLabelValues(kind).Inc()
}

// RecordJobRecordDropped counts one dropped audit record.
func RecordJobRecordDropped() {
	JobRecordsDropped.Inc()
}

// SetCircuitBreakerState records the current state of a named circuit breaker.
func SetCircuitBreakerState(name string, state int) {
	CircuitBreakerState.WithLabelValues(name).Set(float64(state))
}
