package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

func (r *Registry) initViewMetrics() {
	r.ViewBuildsTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "parageon_view_builds_total",
			Help: "Total number of topology views built, by kind and outcome",
		},
		[]string{"kind", "status"},
	)

	r.ViewBuildDuration = promauto.With(r.registry).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "parageon_view_build_duration_seconds",
			Help:    "Time to build a topology view of a given kind",
			Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1.0, 5.0},
		},
		[]string{"kind"},
	)

	r.ViewCacheSize = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "parageon_view_cache_size",
			Help: "Number of views currently held in the topology view cache",
		},
	)
}
