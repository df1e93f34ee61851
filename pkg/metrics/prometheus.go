// Package metrics provides Prometheus metrics for the riderboard service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Manager manages all Prometheus metrics for the riderboard service.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	registry         prometheus.Registerer

	// Load Metrics - one-shot batch ingestion at startup
	rowsLoaded      prometheus.Counter
	rowErrors       *prometheus.CounterVec
	holidaysMatched prometheus.Gauge
	loadDurationMS  prometheus.Gauge
	datasetDays     prometheus.Gauge
	datasetYears    prometheus.Gauge

	// Query Metrics - summary/series computation
	summaryQueries *prometheus.CounterVec
	seriesQueries  prometheus.Counter
	queryLatency   prometheus.Histogram
	filterRejects  prometheus.Counter

	// HTTP Performance Metrics
	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
	httpErrors          *prometheus.CounterVec

	// System Metrics
	systemMemoryUsage    prometheus.Gauge
	systemGoroutineCount prometheus.Gauge
}

// Global metrics manager instance.
var globalManager *Manager //nolint:gochecknoglobals // intentional global for singleton metrics manager

// Custom registry to avoid default Go metrics.
var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // intentional global for metrics registry

// Initialize global metrics.
func init() { //nolint:gochecknoinits // intentional init for global metrics setup
	globalManager = NewManager(WithPrometheusRegistry(customRegistry))
}

// NewManager creates a new metrics manager with default configuration.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "riderboard",
		subsystem:        "dataset",
		histogramBuckets: prometheus.DefBuckets,
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

	m.rowsLoaded = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "rows_loaded_total",
		Help:      "Total number of source rows normalized into records",
	})

	m.rowErrors = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "row_errors_total",
			Help:      "Total number of rejected or degraded source rows by kind",
		},
		[]string{"kind"},
	)

	m.holidaysMatched = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "holidays_matched",
		Help:      "Number of records that matched a public holiday",
	})

	m.loadDurationMS = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "load_duration_milliseconds",
		Help:      "Wall time of the startup load pipeline",
	})

	m.datasetDays = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "days",
		Help:      "Number of calendar days in the loaded dataset",
	})

	m.datasetYears = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "years",
		Help:      "Number of distinct years in the loaded dataset",
	})

	m.summaryQueries = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: "query",
			Name:      "summaries_total",
			Help:      "Total number of summary computations by mode",
		},
		[]string{"mode"},
	)

	m.seriesQueries = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: "query",
		Name:      "series_total",
		Help:      "Total number of chart series selections",
	})

	m.queryLatency = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: "query",
		Name:      "latency_milliseconds",
		Help:      "Histogram of aggregation query latency in milliseconds",
		Buckets:   m.histogramBuckets,
	})

	m.filterRejects = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: "query",
		Name:      "filter_rejects_total",
		Help:      "Total number of queries rejected for invalid filters",
	})

	m.httpRequests = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests by endpoint and method",
		},
		[]string{"endpoint", "method", "status_code"},
	)

	m.httpRequestDuration = auto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: m.namespace,
			Subsystem: "http",
			Name:      "request_duration_milliseconds",
			Help:      "HTTP request duration in milliseconds",
			Buckets:   m.histogramBuckets,
		},
		[]string{"endpoint", "method", "status_code"},
	)

	m.httpErrors = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: "http",
			Name:      "errors_total",
			Help:      "Total number of HTTP error responses by endpoint and type",
		},
		[]string{"endpoint", "method", "error_type"},
	)

	m.systemMemoryUsage = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: "system",
		Name:      "memory_usage_bytes",
		Help:      "System memory usage in bytes",
	})

	m.systemGoroutineCount = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: "system",
		Name:      "goroutine_count",
		Help:      "Number of goroutines",
	})
}

// AddRowsLoaded counts source rows normalized into records.
func AddRowsLoaded(n int) {
	globalManager.rowsLoaded.Add(float64(n))
}

// AddRowErrors counts rejected or degraded source rows of one kind.
func AddRowErrors(kind string, n int) {
	globalManager.rowErrors.WithLabelValues(kind).Add(float64(n))
}

// UpdateHolidaysMatched sets the number of holiday-matched records.
func UpdateHolidaysMatched(count int) {
	globalManager.holidaysMatched.Set(float64(count))
}

// UpdateLoadDuration sets the load pipeline wall time in milliseconds.
func UpdateLoadDuration(ms float64) {
	globalManager.loadDurationMS.Set(ms)
}

// UpdateDatasetDays sets the number of calendar days loaded.
func UpdateDatasetDays(count int) {
	globalManager.datasetDays.Set(float64(count))
}

// UpdateDatasetYears sets the number of distinct years loaded.
func UpdateDatasetYears(count int) {
	globalManager.datasetYears.Set(float64(count))
}

// RecordSummaryQuery counts a summary computation by mode.
func RecordSummaryQuery(mode string) {
	globalManager.summaryQueries.WithLabelValues(mode).Inc()
}

// RecordSeriesQuery counts a chart series selection.
func RecordSeriesQuery() {
	globalManager.seriesQueries.Inc()
}

// RecordQueryLatency records aggregation latency in milliseconds.
func RecordQueryLatency(latencyMs float64) {
	globalManager.queryLatency.Observe(latencyMs)
}

// RecordFilterReject counts a query rejected for an invalid filter.
func RecordFilterReject() {
	globalManager.filterRejects.Inc()
}

// RecordHTTPRequest records an HTTP request.
func RecordHTTPRequest(endpoint, method, statusCode string) {
	globalManager.httpRequests.WithLabelValues(endpoint, method, statusCode).Inc()
}

// RecordHTTPRequestDuration records HTTP request duration.
func RecordHTTPRequestDuration(endpoint, method, statusCode string, duration float64) {
	globalManager.httpRequestDuration.WithLabelValues(endpoint, method, statusCode).Observe(duration)
}

// RecordHTTPError records an HTTP error response.
func RecordHTTPError(endpoint, method, errorType string) {
	globalManager.httpErrors.WithLabelValues(endpoint, method, errorType).Inc()
}

// UpdateSystemMemoryUsage sets the system memory usage in bytes.
func UpdateSystemMemoryUsage(bytes uint64) {
	globalManager.systemMemoryUsage.Set(float64(bytes))
}

// UpdateSystemGoroutineCount sets the number of goroutines.
func UpdateSystemGoroutineCount(count int) {
	globalManager.systemGoroutineCount.Set(float64(count))
}

// GetRegistry returns the custom Prometheus registry used by our metrics.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}
