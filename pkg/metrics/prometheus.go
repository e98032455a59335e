// Package metrics provides Prometheus metrics for the podium analytics service.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Default metrics configuration constants.
const (
	defaultRefreshInterval = 10 * time.Second
)

// Lookup sources reported by the resolver and locator counters.
const (
	SourceTable    = "table"
	SourceFallback = "fallback"
	SourceCache    = "cache"
	SourceExternal = "external"
	SourceMiss     = "miss"
	SourceUnknown  = "unknown"
	SourceAvatar   = "avatar"
)

// Manager manages all Prometheus metrics for the podium service.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	refreshInterval  time.Duration
	customLabels     map[string]string
	registry         prometheus.Registerer

	// HTTP
	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	// Reference data lookups
	continentLookups *prometheus.CounterVec
	venueLookups     *prometheus.CounterVec
	imageLookups     *prometheus.CounterVec

	// Outbound providers
	providerRequests *prometheus.CounterVec
	providerLatency  *prometheus.HistogramVec
	breakerState     *prometheus.GaugeVec

	// Datasets
	datasetRows       *prometheus.GaugeVec
	datasetLoadTime   prometheus.Histogram
	datasetLastLoaded prometheus.Gauge

	// System
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
		namespace:        "podium",
		subsystem:        "",
		histogramBuckets: prometheus.DefBuckets,
		refreshInterval:  defaultRefreshInterval,
		customLabels:     make(map[string]string),
		registry:         prometheus.DefaultRegisterer,
	}

	for _, opt := range opts {
		opt(m)
	}

	m.initializeMetrics()

	return m
}

// RefreshInterval reports how often callers should refresh gauges.
func (m *Manager) RefreshInterval() time.Duration { return m.refreshInterval }

func (m *Manager) counterVec(name, help string, labels ...string) *prometheus.CounterVec {
	return promauto.With(m.registry).NewCounterVec(prometheus.CounterOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        name,
		Help:        help,
		ConstLabels: m.customLabels,
	}, labels)
}

func (m *Manager) gaugeVec(name, help string, labels ...string) *prometheus.GaugeVec {
	return promauto.With(m.registry).NewGaugeVec(prometheus.GaugeOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        name,
		Help:        help,
		ConstLabels: m.customLabels,
	}, labels)
}

func (m *Manager) gauge(name, help string) prometheus.Gauge {
	return promauto.With(m.registry).NewGauge(prometheus.GaugeOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        name,
		Help:        help,
		ConstLabels: m.customLabels,
	})
}

func (m *Manager) initializeMetrics() {
	auto := promauto.With(m.registry)

	m.httpRequests = m.counterVec("http_requests_total",
		"Total number of HTTP requests by endpoint, method and status code",
		"endpoint", "method", "status_code")

	m.httpRequestDuration = auto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "http_request_duration_seconds",
		Help:        "HTTP request duration in seconds",
		Buckets:     m.histogramBuckets,
		ConstLabels: m.customLabels,
	}, []string{"endpoint", "method"})

	m.continentLookups = m.counterVec("continent_lookups_total",
		"Continent resolutions by source (table, cache, external, unknown)", "source")

	m.venueLookups = m.counterVec("venue_lookups_total",
		"Venue coordinate resolutions by source (fallback, cache, external, miss)", "source")

	m.imageLookups = m.counterVec("image_lookups_total",
		"Athlete image resolutions by source (cache, external, avatar)", "source")

	m.providerRequests = m.counterVec("provider_requests_total",
		"Outbound provider calls by provider and outcome", "provider", "outcome")

	m.providerLatency = auto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "provider_request_duration_seconds",
		Help:        "Outbound provider call duration in seconds",
		Buckets:     m.histogramBuckets,
		ConstLabels: m.customLabels,
	}, []string{"provider"})

	m.breakerState = m.gaugeVec("breaker_state",
		"Circuit breaker state per provider (0 closed, 1 half-open, 2 open)", "name")

	m.datasetRows = m.gaugeVec("dataset_rows", "Rows loaded per dataset", "dataset")

	m.datasetLoadTime = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "dataset_load_duration_seconds",
		Help:        "Time spent loading and enriching all datasets",
		Buckets:     m.histogramBuckets,
		ConstLabels: m.customLabels,
	})

	m.datasetLastLoaded = m.gauge("dataset_last_loaded_unix", "Unix timestamp of the last successful dataset load")
	m.systemMemoryUsage = m.gauge("system_memory_usage_bytes", "Heap memory in use in bytes")
	m.systemGoroutineCount = m.gauge("system_goroutine_count", "Number of goroutines")
}

// RecordHTTPRequest records an HTTP request.
func RecordHTTPRequest(endpoint, method, statusCode string) {
	globalManager.httpRequests.WithLabelValues(endpoint, method, statusCode).Inc()
}

// RecordHTTPRequestDuration records HTTP request duration.
func RecordHTTPRequestDuration(endpoint, method string, d time.Duration) {
	globalManager.httpRequestDuration.WithLabelValues(endpoint, method).Observe(d.Seconds())
}

// RecordContinentLookup counts a continent resolution by source.
func RecordContinentLookup(source string) {
	globalManager.continentLookups.WithLabelValues(source).Inc()
}

// RecordVenueLookup counts a venue resolution by source.
func RecordVenueLookup(source string) {
	globalManager.venueLookups.WithLabelValues(source).Inc()
}

// RecordImageLookup counts an athlete image resolution by source.
func RecordImageLookup(source string) {
	globalManager.imageLookups.WithLabelValues(source).Inc()
}

// RecordProviderRequest records an outbound provider call and its latency.
func RecordProviderRequest(provider, outcome string, d time.Duration) {
	globalManager.providerRequests.WithLabelValues(provider, outcome).Inc()
	globalManager.providerLatency.WithLabelValues(provider).Observe(d.Seconds())
}

// UpdateBreakerState publishes a breaker state.
func UpdateBreakerState(name string, state int) {
	globalManager.breakerState.WithLabelValues(name).Set(float64(state))
}

// UpdateDatasetRows sets the loaded row count for a dataset.
func UpdateDatasetRows(dataset string, rows int) {
	globalManager.datasetRows.WithLabelValues(dataset).Set(float64(rows))
}

// RecordDatasetLoad records a full dataset load.
func RecordDatasetLoad(d time.Duration) {
	globalManager.datasetLoadTime.Observe(d.Seconds())
	globalManager.datasetLastLoaded.Set(float64(time.Now().Unix()))
}

// UpdateSystemMemoryUsage sets the heap memory in use in bytes.
func UpdateSystemMemoryUsage(bytes uint64) {
	globalManager.systemMemoryUsage.Set(float64(bytes))
}

// UpdateSystemGoroutineCount sets the number of goroutines.
func UpdateSystemGoroutineCount(count int) {
	globalManager.systemGoroutineCount.Set(float64(count))
}

// RefreshInterval returns the gauge refresh interval of the global manager.
func RefreshInterval() time.Duration {
	return globalManager.refreshInterval
}

// GetRegistry returns the custom Prometheus registry used by our metrics.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}
