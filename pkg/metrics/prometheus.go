// Package metrics provides Prometheus metrics for the Shop Steward Hub service.
package metrics

import (
	"sync/atomic"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	defaultNamespace = "shop"
	defaultSubsystem = "hub"
)

// Manager owns every Prometheus collector of the service.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	constLabels      map[string]string
	registry         *prometheus.Registry

	// Job registry
	jobsCreated  prometheus.Counter
	jobsReplaced prometheus.Counter
	jobsStored   prometheus.Gauge
	jobLookups   *prometheus.CounterVec

	// Fixture endpoints
	kickoffRequests  prometheus.Counter
	scenarioRequests *prometheus.CounterVec

	// HTTP
	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	// Errors
	errorRateByType     *prometheus.CounterVec
	errorRateByEndpoint *prometheus.CounterVec

	// System
	systemMemoryUsage    prometheus.Gauge
	systemGoroutineCount prometheus.Gauge
	systemGCPauseTime    prometheus.Histogram
}

var globalManager atomic.Pointer[Manager] //nolint:gochecknoglobals // singleton metrics manager

func init() { //nolint:gochecknoinits // global metrics setup
	globalManager.Store(NewManager())
}

// NewManager creates a Manager registered on its own registry unless
// WithPrometheusRegistry supplies one.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        defaultNamespace,
		subsystem:        defaultSubsystem,
		histogramBuckets: prometheus.DefBuckets,
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.registry == nil {
		m.registry = prometheus.NewRegistry()
	}
	m.initializeMetrics()
	return m
}

// Init replaces the global manager with one built from opts. It is meant to
// be called once at startup, before any request is served.
func Init(opts ...Option) *Manager {
	m := NewManager(opts...)
	globalManager.Store(m)
	return m
}

// Use installs m as the global manager.
func Use(m *Manager) error {
	if m == nil {
		return ErrNilManager
	}
	globalManager.Store(m)
	return nil
}

func (m *Manager) initializeMetrics() { //nolint:funlen // flat list of collectors
	auto := promauto.With(m.registry)
	counter := func(name, help string) prometheus.Counter {
		return auto.NewCounter(prometheus.CounterOpts{
			Namespace: m.namespace, Subsystem: m.subsystem, Name: name, Help: help, ConstLabels: m.constLabels,
		})
	}
	gauge := func(name, help string) prometheus.Gauge {
		return auto.NewGauge(prometheus.GaugeOpts{
			Namespace: m.namespace, Subsystem: m.subsystem, Name: name, Help: help, ConstLabels: m.constLabels,
		})
	}
	counterVec := func(name, help string, labels ...string) *prometheus.CounterVec {
		return auto.NewCounterVec(prometheus.CounterOpts{
			Namespace: m.namespace, Subsystem: m.subsystem, Name: name, Help: help, ConstLabels: m.constLabels,
		}, labels)
	}

	m.jobsCreated = counter("jobs_created_total", "Total number of jobs posted to the registry")
	m.jobsReplaced = counter("jobs_replaced_total", "Total number of posts that replaced an existing job number")
	m.jobsStored = gauge("jobs_stored", "Number of distinct job numbers held in memory")
	m.jobLookups = counterVec("job_lookups_total", "Job lookups by result", "result")

	m.kickoffRequests = counter("kickoff_requests_total", "Total number of kickoff checklist requests")
	m.scenarioRequests = counterVec("scenario_requests_total", "Scenario requests by scenario type", "scenario")

	m.httpRequests = counterVec("http_requests_total",
		"Total number of HTTP requests by endpoint and method", "endpoint", "method", "status_code")
	m.httpRequestDuration = auto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "http_request_duration_milliseconds",
		Help:        "HTTP request duration in milliseconds",
		Buckets:     m.histogramBuckets,
		ConstLabels: m.constLabels,
	}, []string{"endpoint", "method", "status_code"})

	m.errorRateByType = counterVec("errors_by_type_total", "Total number of errors by type", "error_type", "severity")
	m.errorRateByEndpoint = counterVec("errors_by_endpoint_total",
		"Total number of errors by endpoint", "endpoint", "method", "error_type")

	m.systemMemoryUsage = gauge("system_memory_usage_bytes", "Heap bytes allocated")
	m.systemGoroutineCount = gauge("system_goroutine_count", "Number of goroutines")
	m.systemGCPauseTime = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "system_gc_pause_time_milliseconds",
		Help:        "Average GC pause time in milliseconds",
		Buckets:     []float64{0.1, 0.5, 1, 2, 5, 10, 25, 50, 100, 250, 500, 1000},
		ConstLabels: m.constLabels,
	})
}

// Registry returns the registry the manager's collectors live on.
func (m *Manager) Registry() *prometheus.Registry {
	return m.registry
}

func current() *Manager {
	return globalManager.Load()
}

// RecordJobCreated counts a job post; replaced reports whether it overwrote
// an existing job number.
func RecordJobCreated(replaced bool) {
	m := current()
	m.jobsCreated.Inc()
	if replaced {
		m.jobsReplaced.Inc()
	}
}

// UpdateJobsStored sets the number of distinct jobs held in memory.
func UpdateJobsStored(count int) {
	current().jobsStored.Set(float64(count))
}

// RecordJobLookup counts a job lookup; found=false counts a miss.
func RecordJobLookup(found bool) {
	result := "found"
	if !found {
		result = "not_found"
	}
	current().jobLookups.WithLabelValues(result).Inc()
}

// RecordKickoffRequest counts a kickoff checklist request.
func RecordKickoffRequest() {
	current().kickoffRequests.Inc()
}

// RecordScenarioRequest counts a scenario lookup. Unknown types should be
// reported as "invalid" to keep label cardinality bounded.
func RecordScenarioRequest(scenario string) {
	current().scenarioRequests.WithLabelValues(scenario).Inc()
}

// RecordHTTPRequest records an HTTP request.
func RecordHTTPRequest(endpoint, method, statusCode string) {
	current().httpRequests.WithLabelValues(endpoint, method, statusCode).Inc()
}

// RecordHTTPRequestDuration records HTTP request duration.
func RecordHTTPRequestDuration(endpoint, method, statusCode string, duration float64) {
	current().httpRequestDuration.WithLabelValues(endpoint, method, statusCode).Observe(duration)
}

// RecordErrorByType records an error by type and severity.
func RecordErrorByType(errorType, severity string) {
	current().errorRateByType.WithLabelValues(errorType, severity).Inc()
}

// RecordErrorByEndpoint records an error by endpoint.
func RecordErrorByEndpoint(endpoint, method, errorType string) {
	current().errorRateByEndpoint.WithLabelValues(endpoint, method, errorType).Inc()
}

// UpdateSystemMemoryUsage sets the allocated heap size.
func UpdateSystemMemoryUsage(bytes uint64) {
	current().systemMemoryUsage.Set(float64(bytes))
}

// UpdateSystemGoroutineCount sets the goroutine count.
func UpdateSystemGoroutineCount(count int) {
	current().systemGoroutineCount.Set(float64(count))
}

// RecordSystemGCPauseTime records the average GC pause time.
func RecordSystemGCPauseTime(pauseMs float64) {
	current().systemGCPauseTime.Observe(pauseMs)
}

// GetRegistry returns the registry of the global manager.
func GetRegistry() *prometheus.Registry {
	return current().registry
}
