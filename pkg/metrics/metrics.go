package metrics

import (
	"time"
)

// RecordViewBuild records a topology view build and its duration.
func (r *Registry) RecordViewBuild(kind, status string, duration time.Duration) {
	r.ViewBuildsTotal.WithLabelValues(kind, status).Inc()
	r.ViewBuildDuration.WithLabelValues(kind).Observe(duration.Seconds())
}

// SetViewCacheSize reports the current number of cached views.
func (r *Registry) SetViewCacheSize(size int) {
	r.ViewCacheSize.Set(float64(size))
}

// RecordAlgorithmRun records the outcome of a full algorithm run.
func (r *Registry) RecordAlgorithmRun(algorithm, status string) {
	r.AlgorithmRunsTotal.WithLabelValues(algorithm, status).Inc()
}

// RecordAlgorithmPhase records the duration of a named phase within an
// algorithm run (e.g. "coarsen", "move", "refine", "count").
func (r *Registry) RecordAlgorithmPhase(algorithm, phase string, duration time.Duration) {
	r.AlgorithmPhaseDuration.WithLabelValues(algorithm, phase).Observe(duration.Seconds())
}

// RecordCommunityResult records the levels-to-convergence, modularity,
// and community count of a finished community detection run.
func (r *Registry) RecordCommunityResult(algorithm string, levels int, modularity float64, numCommunities int) {
	r.CommunityLevels.WithLabelValues(algorithm).Observe(float64(levels))
	r.CommunityModularity.WithLabelValues(algorithm).Set(modularity)
	r.CommunityCount.WithLabelValues(algorithm).Set(float64(numCommunities))
}

// RecordTriangleCount records the duration and global count of a
// finished triangle-counting run.
func (r *Registry) RecordTriangleCount(algorithm string, duration time.Duration, globalCount int) {
	r.TriangleCountDuration.WithLabelValues(algorithm).Observe(duration.Seconds())
	r.TriangleGlobalCount.Set(float64(globalCount))
}

// RecordKTruss records the outcome of a finished k-Truss decomposition.
func (r *Registry) RecordKTruss(aliveEdges, rounds int) {
	r.KTrussAliveEdges.Set(float64(aliveEdges))
	r.KTrussRounds.Observe(float64(rounds))
}

// RecordSimilarity records the duration of a finished Jaccard
// similarity run.
func (r *Registry) RecordSimilarity(duration time.Duration) {
	r.SimilarityDuration.Observe(duration.Seconds())
}
