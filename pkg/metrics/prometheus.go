// Package metrics provides Prometheus metrics for the resumatch service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Manager manages all Prometheus metrics for the resumatch service.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	enabled          bool
	registry         prometheus.Registerer

	// Core Business Metrics - analysis pipeline
	analysesTotal      *prometheus.CounterVec
	analysisDuration   prometheus.Histogram
	validationFailures *prometheus.CounterVec
	semanticFallbacks  prometheus.Counter

	// Cache Metrics
	cacheHits   prometheus.Counter
	cacheMisses prometheus.Counter

	// Extraction Metrics - document-to-text collaborator
	extractionsTotal *prometheus.CounterVec
	extractionErrors *prometheus.CounterVec

	// HTTP Performance Metrics
	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	// Run Statistics Gauges
	totalAnalyses prometheus.Gauge
	averageScore  prometheus.Gauge

	// System Performance Metrics
	systemMemoryUsage    prometheus.Gauge
	systemGoroutineCount prometheus.Gauge
}

// Global metrics manager instance.
var globalManager *Manager //nolint:gochecknoglobals // intentional global for singleton metrics manager

// Custom registry to avoid default Go metrics.
var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // intentional global for metrics registry

func init() { //nolint:gochecknoinits // intentional init for global metrics setup
	globalManager = NewManager(WithPrometheusRegistry(customRegistry))
}

// NewManager creates a new metrics manager with default configuration.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "resumatch",
		subsystem:        "engine",
		histogramBuckets: prometheus.DefBuckets,
		enabled:          true,
		registry:         prometheus.DefaultRegisterer,
	}

	for _, opt := range opts {
		opt(m)
	}

	m.initializeMetrics()

	return m
}

// initializeMetrics creates all the Prometheus metrics.
func (m *Manager) initializeMetrics() {
	auto := promauto.With(m.registry)

	m.analysesTotal = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "analyses_total",
			Help:      "Total number of completed analyses by similarity strategy",
		},
		[]string{"strategy"},
	)

	m.analysisDuration = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "analysis_duration_milliseconds",
		Help:      "Histogram of full analysis duration in milliseconds",
		Buckets:   m.histogramBuckets,
	})

	m.validationFailures = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "validation_failures_total",
			Help:      "Total number of rejected analysis requests by reason",
		},
		[]string{"reason"},
	)

	m.semanticFallbacks = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "semantic_fallbacks_total",
		Help:      "Total number of analyses that fell back from the semantic strategy",
	})

	m.cacheHits = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "result_cache_hits_total",
		Help:      "Total number of analyses served from the result cache",
	})

	m.cacheMisses = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "result_cache_misses_total",
		Help:      "Total number of analyses not found in the result cache",
	})

	m.extractionsTotal = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "extractions_total",
			Help:      "Total number of document text extractions by format",
		},
		[]string{"format"},
	)

	m.extractionErrors = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "extraction_errors_total",
			Help:      "Total number of failed document text extractions by format",
		},
		[]string{"format"},
	)

	m.httpRequests = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests by endpoint and method",
		},
		[]string{"endpoint", "method", "status_code"},
	)

	m.httpRequestDuration = auto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "http_request_duration_milliseconds",
			Help:      "HTTP request duration in milliseconds",
			Buckets:   m.histogramBuckets,
		},
		[]string{"endpoint", "method", "status_code"},
	)

	m.totalAnalyses = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "run_total_analyses",
		Help:      "Total number of analyses recorded since process start",
	})

	m.averageScore = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "run_average_overall_score",
		Help:      "Running average overall score across all analyses",
	})

	m.systemMemoryUsage = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "system_memory_usage_bytes",
		Help:      "Current heap memory usage in bytes",
	})

	m.systemGoroutineCount = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "system_goroutine_count",
		Help:      "Current number of goroutines",
	})
}

// GetRegistry returns the custom Prometheus registry used by the global manager.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}

// RecordAnalysis records a completed analysis and its duration.
func RecordAnalysis(strategy string, durationMs float64) {
	if !globalManager.enabled {
		return
	}
	globalManager.analysesTotal.WithLabelValues(strategy).Inc()
	globalManager.analysisDuration.Observe(durationMs)
}

// RecordValidationFailure records a rejected analysis request.
func RecordValidationFailure(reason string) {
	if !globalManager.enabled {
		return
	}
	globalManager.validationFailures.WithLabelValues(reason).Inc()
}

// RecordSemanticFallback records a semantic-to-frequency strategy fallback.
func RecordSemanticFallback() {
	if !globalManager.enabled {
		return
	}
	globalManager.semanticFallbacks.Inc()
}

// RecordCacheHit records a result cache hit.
func RecordCacheHit() {
	if !globalManager.enabled {
		return
	}
	globalManager.cacheHits.Inc()
}

// RecordCacheMiss records a result cache miss.
func RecordCacheMiss() {
	if !globalManager.enabled {
		return
	}
	globalManager.cacheMisses.Inc()
}

// RecordExtraction records a document text extraction.
func RecordExtraction(format string) {
	if !globalManager.enabled {
		return
	}
	globalManager.extractionsTotal.WithLabelValues(format).Inc()
}

// RecordExtractionError records a failed document text extraction.
func RecordExtractionError(format string) {
	if !globalManager.enabled {
		return
	}
	globalManager.extractionErrors.WithLabelValues(format).Inc()
}

// RecordHTTPRequest records an HTTP request.
func RecordHTTPRequest(endpoint, method, statusCode string) {
	if !globalManager.enabled {
		return
	}
	globalManager.httpRequests.WithLabelValues(endpoint, method, statusCode).Inc()
}

// RecordHTTPRequestDuration records HTTP request duration.
func RecordHTTPRequestDuration(endpoint, method, statusCode string, durationMs float64) {
	if !globalManager.enabled {
		return
	}
	globalManager.httpRequestDuration.WithLabelValues(endpoint, method, statusCode).Observe(durationMs)
}

// UpdateTotalAnalyses updates the run-stats analysis count gauge.
func UpdateTotalAnalyses(count int) {
	if !globalManager.enabled {
		return
	}
	globalManager.totalAnalyses.Set(float64(count))
}

// UpdateAverageScore updates the run-stats average score gauge.
func UpdateAverageScore(score float64) {
	if !globalManager.enabled {
		return
	}
	globalManager.averageScore.Set(score)
}

// UpdateSystemMemoryUsage updates the heap memory gauge.
func UpdateSystemMemoryUsage(bytes uint64) {
	if !globalManager.enabled {
		return
	}
	globalManager.systemMemoryUsage.Set(float64(bytes))
}

// UpdateSystemGoroutineCount updates the goroutine count gauge.
func UpdateSystemGoroutineCount(count int) {
	if !globalManager.enabled {
		return
	}
	globalManager.systemGoroutineCount.Set(float64(count))
}
