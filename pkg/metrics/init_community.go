package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

func (r *Registry) initCommunityMetrics() {
	r.AlgorithmRunsTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "parageon_algorithm_runs_total",
			Help: "Total number of algorithm runs, by algorithm name and outcome",
		},
		[]string{"algorithm", "status"},
	)

	r.AlgorithmPhaseDuration = promauto.With(r.registry).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "parageon_algorithm_phase_duration_seconds",
			Help:    "Time spent in a named phase of an algorithm run",
			Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1.0, 5.0, 30.0},
		},
		[]string{"algorithm", "phase"},
	)

	r.CommunityLevels = promauto.With(r.registry).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "parageon_community_levels",
			Help:    "Number of coarsening levels a community detection run took to converge",
			Buckets: []float64{1, 2, 3, 5, 8, 10, 15, 20},
		},
		[]string{"algorithm"},
	)

	r.CommunityModularity = promauto.With(r.registry).NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "parageon_community_modularity",
			Help: "Final modularity score of the last community detection run",
		},
		[]string{"algorithm"},
	)

	r.CommunityCount = promauto.With(r.registry).NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "parageon_community_count",
			Help: "Number of communities found by the last community detection run",
		},
		[]string{"algorithm"},
	)
}
