package community

// Modularity computes Q for a given community assignment over view,
// treated as an undirected, unweighted adjacency (use graph.Graph's
// Undirected view so each edge contributes once per endpoint):
//
//	Q = (1 / 2m) * Σ_ij [A_ij - resolution*(k_i*k_j)/(2m)] * δ(c_i, c_j)
//
// where m is the total edge-endpoint count / 2, k_i is node i's
// degree, and δ is 1 when i and j share a community (spec §8). A
// self-loop (u, u) appears once in the CSR traversal, not twice, but
// contributes 2 to u's degree and to the Σ_ij diagonal term — the same
// convention level.go's levelGraph applies to coarsened self-loops.
func Modularity(view AdjacencyView, assignment []int, resolution float64) float64 {
	n := view.NumNodes()
	offDiag, selfLoops := countInternalEdges(view, assignment)

	var twoM int64
	degreeSum := make(map[int]int64)
	for v := 0; v < n; v++ {
		deg := degreeWithSelfLoops(view, uint32(v))
		degreeSum[assignment[v]] += deg
		twoM += deg
	}
	if twoM == 0 {
		return 0
	}
	m := float64(twoM) / 2
	internal := float64(offDiag) + float64(selfLoops)

	var nullModel float64
	for _, k := range degreeSum {
		nullModel += float64(k) * float64(k)
	}
	nullModel = resolution * nullModel / (4 * m * m)

	return internal/m - nullModel
}

// degreeWithSelfLoops returns v's out-degree, counting any self-loop
// edge twice (it occupies one CSR slot but contributes 2 to degree).
func degreeWithSelfLoops(view AdjacencyView, v uint32) int64 {
	start, end := view.OutRange(v)
	deg := int64(end - start)
	for e := start; e < end; e++ {
		if view.OutEdgeDst(e) == v {
			deg++
		}
	}
	return deg
}

// countInternalEdges scans every edge and splits same-community
// contributions into off-diagonal pairs (each counted from both
// endpoints, halved here) and self-loops (counted once per occurrence,
// never halved — a self-loop has only one CSR entry to begin with).
func countInternalEdges(view AdjacencyView, assignment []int) (offDiag, selfLoops int64) {
	n := view.NumNodes()
	for v := 0; v < n; v++ {
		c := assignment[v]
		start, end := view.OutRange(uint32(v))
		for e := start; e < end; e++ {
			dst := view.OutEdgeDst(e)
			if assignment[dst] != c {
				continue
			}
			if dst == uint32(v) {
				selfLoops++
				continue
			}
			offDiag++
		}
	}
	return offDiag / 2, selfLoops
}

// fillCommunityStats computes internal edge counts and density for
// each community, given the final assignment, and attaches modularity
// to produce the complete Result.
func fillCommunityStats(view AdjacencyView, assignment []int, resolution float64, levels int) *Result {
	n := view.NumNodes()
	stats := buildStats(n, assignment)

	communityOffDiag := make([]int64, len(stats))
	communitySelfLoops := make([]int64, len(stats))
	for v := 0; v < n; v++ {
		c := assignment[v]
		start, end := view.OutRange(uint32(v))
		for e := start; e < end; e++ {
			dst := view.OutEdgeDst(e)
			if assignment[dst] != c {
				continue
			}
			if dst == uint32(v) {
				communitySelfLoops[c]++
				continue
			}
			communityOffDiag[c]++
		}
	}
	for i := range stats {
		stats[i].InternalEdges = int(communityOffDiag[i]/2 + communitySelfLoops[i])
		k := stats[i].Size
		maxEdges := k * (k - 1) / 2
		if maxEdges > 0 {
			stats[i].Density = float64(stats[i].InternalEdges) / float64(maxEdges)
		}
	}

	return &Result{
		Assignment:  assignment,
		Communities: stats,
		Modularity:  Modularity(view, assignment, resolution),
		Levels:      levels,
	}
}
