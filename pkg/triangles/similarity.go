package triangles

import (
	"time"

	"github.com/dd0wney/parageon/pkg/errs"
	"github.com/dd0wney/parageon/pkg/logging"
	"github.com/dd0wney/parageon/pkg/metrics"
	"github.com/dd0wney/parageon/pkg/parallel"
	"github.com/dd0wney/parageon/pkg/properties"
)

// SimilarityResult is JaccardSimilarity's output (spec §6's fixed
// result type "similarity (f64)"): every node's similarity to the
// comparison node, plus the max/min/average over every other node,
// grounded on original_source's
// libgraph/src/analytics/jaccard/jaccard.cpp JaccardStatistics::Compute.
type SimilarityResult struct {
	PerNode []float64
	Max     float64
	Min     float64
	Average float64
}

// JaccardSimilarity computes, for every node n, the Jaccard similarity
// of n's neighborhood to compareNode's neighborhood:
// |N(a) ∩ N(b)| / |N(a) ∪ N(b)|, or 1 when the union is empty. Grounded
// on original_source's libgraph/src/analytics/jaccard/jaccard.cpp
// IntersectWithSortedEdgeList, which walks two sorted edge lists with a
// synchronized two-pointer merge — the same intersectCount primitive
// k-Truss's support check uses, so the sorted-adjacency case is all this module
// implements (the unsorted variant the original also offers is
// redundant once every caller holds a SortedView).
func JaccardSimilarity(view SortedView, compareNode uint32) (*SimilarityResult, error) {
	n := view.NumNodes()
	if n == 0 || int(compareNode) >= n {
		return nil, errs.InvalidArgument("JaccardSimilarity", "compareNode out of range")
	}

	log := logging.With(logging.Component("triangles"), logging.Operation("jaccard"))
	start := time.Now()

	base := sortedNeighbors(view, compareNode)
	baseSize := len(base)

	perNode := make([]float64, n)
	pool := parallel.Root()
	parallel.DoAll(pool, n, func(node int) {
		v := uint32(node)
		nbrs := sortedNeighbors(view, v)
		intersection := intersectCount(base, nbrs)
		union := baseSize + len(nbrs) - intersection
		if union > 0 {
			perNode[node] = float64(intersection) / float64(union)
		} else {
			perNode[node] = 1
		}
		releaseNeighbors(nbrs)
	})
	releaseNeighbors(base)

	var maxSim, minSim, total float64
	first := true
	for v := 0; v < n; v++ {
		if uint32(v) == compareNode {
			continue
		}
		s := perNode[v]
		if first {
			maxSim, minSim = s, s
			first = false
		} else {
			if s > maxSim {
				maxSim = s
			}
			if s < minSim {
				minSim = s
			}
		}
		total += s
	}
	var average float64
	if n > 1 {
		average = total / float64(n-1)
	}

	elapsed := time.Since(start)
	metrics.DefaultRegistry().RecordSimilarity(elapsed)
	log.Info("jaccard similarity complete",
		logging.CompareNode(uint64(compareNode)),
		logging.Latency(elapsed))

	return &SimilarityResult{PerNode: perNode, Max: maxSim, Min: minSim, Average: average}, nil
}

// WriteSimilarity publishes per-node Jaccard similarity as an f64 node
// property (spec §6, "similarity (f64)"), upserting so repeated runs
// never fail with AlreadyExists.
func WriteSimilarity(table *properties.Table, name string, perNode []float64) error {
	return table.UpsertProperties(properties.NewColumn(name, perNode))
}
