package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

// Registry holds every metric the core emits: view-cache build
// activity, algorithm phase durations and convergence depth, and
// triangle/k-Truss counters (spec §1 DOMAIN STACK — instrumentation
// only, no HTTP exporter; serving /metrics is a CLI/server concern).
type Registry struct {
	// View cache metrics (pkg/views).
	ViewBuildsTotal   *prometheus.CounterVec
	ViewBuildDuration *prometheus.HistogramVec
	ViewCacheSize     prometheus.Gauge

	// Community detection metrics (pkg/community).
	AlgorithmRunsTotal     *prometheus.CounterVec
	AlgorithmPhaseDuration *prometheus.HistogramVec
	CommunityLevels        *prometheus.HistogramVec
	CommunityModularity    *prometheus.GaugeVec
	CommunityCount         *prometheus.GaugeVec

	// Triangle count and k-Truss metrics (pkg/triangles).
	TriangleCountDuration *prometheus.HistogramVec
	TriangleGlobalCount   prometheus.Gauge
	KTrussAliveEdges      prometheus.Gauge
	KTrussRounds          prometheus.Histogram
	SimilarityDuration    prometheus.Histogram

	registry *prometheus.Registry
	mu       sync.RWMutex
}

var (
	// Global registry instance
	defaultRegistry *Registry
	once            sync.Once
)

// DefaultRegistry returns the global metrics registry.
func DefaultRegistry() *Registry {
	once.Do(func() {
		defaultRegistry = NewRegistry()
	})
	return defaultRegistry
}

// NewRegistry creates a registry with every metric initialized against
// its own prometheus.Registry, so tests can construct isolated
// instances instead of sharing DefaultRegistry's global state.
func NewRegistry() *Registry {
	reg := prometheus.NewRegistry()

	r := &Registry{
		registry: reg,
	}

	r.initViewMetrics()
	r.initCommunityMetrics()
	r.initTriangleMetrics()

	return r
}

// GetPrometheusRegistry returns the underlying Prometheus registry.
func (r *Registry) GetPrometheusRegistry() *prometheus.Registry {
	return r.registry
}
