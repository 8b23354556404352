package graph_test

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/dd0wney/parageon/pkg/graph"
)

// buildFromEdgePairs constructs a valid CSR topology from a flat
// (src,dst) list reduced into range, grouping by source node so
// out_indices stays non-decreasing.
func buildFromEdgePairs(n int, raw []int) (*graph.Topology, error) {
	if n == 0 {
		return graph.NewTopology(0, nil, nil)
	}
	buckets := make([][]graph.NodeID, n)
	for i := 0; i+1 < len(raw); i += 2 {
		src := ((raw[i] % n) + n) % n
		dst := ((raw[i+1] % n) + n) % n
		buckets[src] = append(buckets[src], graph.NodeID(dst))
	}
	outIndices := make([]uint64, n)
	var outDests []graph.NodeID
	var running uint64
	for v := 0; v < n; v++ {
		outDests = append(outDests, buckets[v]...)
		running += uint64(len(buckets[v]))
		outIndices[v] = running
	}
	return graph.NewTopology(n, outIndices, outDests)
}

// TestOutDegreeSumsToEdgeCount property-tests the CSR invariant that
// summing OutDegree across every node always reconstructs NumEdges,
// the same way the teacher's property tests drive storage invariants
// with gopter instead of a handful of fixed fixtures.
func TestOutDegreeSumsToEdgeCount(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping property-based test in short mode")
	}

	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 50
	properties := gopter.NewProperties(parameters)

	properties.Property("sum of out-degrees equals edge count", prop.ForAll(
		func(n int, raw []int) bool {
			topo, err := buildFromEdgePairs(n, raw)
			if err != nil {
				return false
			}
			var sum int
			for v := 0; v < n; v++ {
				sum += topo.OutDegree(graph.NodeID(v))
			}
			return sum == topo.NumEdges()
		},
		gen.IntRange(1, 16),
		gen.SliceOf(gen.IntRange(0, 200)),
	))

	properties.Property("every out-edge destination is in range", prop.ForAll(
		func(n int, raw []int) bool {
			topo, err := buildFromEdgePairs(n, raw)
			if err != nil {
				return false
			}
			ok := true
			for v := 0; v < n; v++ {
				topo.ForEachOutEdge(graph.NodeID(v), func(_ graph.EdgeID, dst graph.NodeID) {
					if int(dst) >= n {
						ok = false
					}
				})
			}
			return ok
		},
		gen.IntRange(1, 16),
		gen.SliceOf(gen.IntRange(0, 200)),
	))

	properties.TestingRun(t)
}
