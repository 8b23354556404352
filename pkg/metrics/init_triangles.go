package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

func (r *Registry) initTriangleMetrics() {
	r.TriangleCountDuration = promauto.With(r.registry).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "parageon_triangle_count_duration_seconds",
			Help:    "Time to count triangles, by algorithm variant",
			Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1.0, 5.0, 30.0},
		},
		[]string{"algorithm"},
	)

	r.TriangleGlobalCount = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "parageon_triangle_global_count",
			Help: "Global triangle count from the last triangle-counting run",
		},
	)

	r.KTrussAliveEdges = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "parageon_ktruss_alive_edges",
			Help: "Number of edges surviving the last k-Truss decomposition",
		},
	)

	r.KTrussRounds = promauto.With(r.registry).NewHistogram(
		prometheus.HistogramOpts{
			Name:    "parageon_ktruss_rounds",
			Help:    "Number of edge-removal rounds the last k-Truss decomposition took to reach a fixpoint",
			Buckets: []float64{1, 2, 3, 5, 8, 13, 21},
		},
	)

	r.SimilarityDuration = promauto.With(r.registry).NewHistogram(
		prometheus.HistogramOpts{
			Name:    "parageon_jaccard_similarity_duration_seconds",
			Help:    "Time to compute Jaccard similarity against a comparison node",
			Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1.0, 5.0, 30.0},
		},
	)
}
