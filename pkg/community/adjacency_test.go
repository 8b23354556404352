package community_test

import "github.com/dd0wney/parageon/pkg/community"

// symAdjacency is a minimal community.AdjacencyView test double built
// from a symmetric edge list, mirroring the rawTopology double in
// pkg/views' tests.
type symAdjacency struct {
	n    int
	out  [][]uint32
	flat []uint32
	idx  []uint64
}

// newSymAdjacency builds a view from an undirected edge list: each pair
// {u, v} is expected to appear once and is expanded to both directions.
func newSymAdjacency(n int, edges [][2]uint32) *symAdjacency {
	adj := make([][]uint32, n)
	for _, e := range edges {
		adj[e[0]] = append(adj[e[0]], e[1])
		adj[e[1]] = append(adj[e[1]], e[0])
	}
	a := &symAdjacency{n: n, out: adj, idx: make([]uint64, n)}
	var off uint64
	for v := 0; v < n; v++ {
		a.flat = append(a.flat, adj[v]...)
		off += uint64(len(adj[v]))
		a.idx[v] = off
	}
	return a
}

func (a *symAdjacency) NumNodes() int { return a.n }
func (a *symAdjacency) NumEdges() int { return len(a.flat) }
func (a *symAdjacency) OutRange(v uint32) (start, end uint64) {
	if v > 0 {
		start = a.idx[v-1]
	}
	end = a.idx[v]
	return start, end
}
func (a *symAdjacency) OutDegree(v uint32) int { return len(a.out[v]) }
func (a *symAdjacency) OutEdgeDst(e uint64) uint32 { return a.flat[e] }

// twoCliquesWithBridge is spec §8 scenario 4: two disjoint 4-cliques
// {0,1,2,3} and {4,5,6,7} joined by a single bridge edge (3,4).
func twoCliquesWithBridge() *symAdjacency {
	edges := [][2]uint32{
		{0, 1}, {0, 2}, {0, 3}, {1, 2}, {1, 3}, {2, 3},
		{4, 5}, {4, 6}, {4, 7}, {5, 6}, {5, 7}, {6, 7},
		{3, 4},
	}
	return newSymAdjacency(8, edges)
}

// windmillOfTriangles is spec §8 scenario 5: a "friendship graph" of 5
// triangles sharing a common hub node 0, each triangle's other two
// nodes private to it. The hub's high degree makes plain Louvain prone
// to merging everything into one community around it; Leiden's
// refinement is expected to split the windmill into 5 communities, one
// per triangle's private pair (the hub may land in any of them).
func windmillOfTriangles() *symAdjacency {
	const k = 5
	var edges [][2]uint32
	for i := 0; i < k; i++ {
		a := uint32(1 + 2*i)
		b := uint32(2 + 2*i)
		edges = append(edges, [2]uint32{0, a}, [2]uint32{0, b}, [2]uint32{a, b})
	}
	return newSymAdjacency(1+2*k, edges)
}
