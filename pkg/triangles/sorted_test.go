package triangles_test

import (
	"sort"

	"github.com/dd0wney/parageon/pkg/views"
)

// sortedSym is a minimal triangles.SortedView test double: a symmetric
// edge list with each node's adjacency sorted ascending, enabling
// FindEdge via binary search (mirrors pkg/views' sortedDestView).
type sortedSym struct {
	n    int
	adj  [][]uint32
	flat []uint32
	idx  []uint64
}

func newSortedSym(n int, edges [][2]uint32) *sortedSym {
	adj := make([][]uint32, n)
	for _, e := range edges {
		adj[e[0]] = append(adj[e[0]], e[1])
		adj[e[1]] = append(adj[e[1]], e[0])
	}
	for v := range adj {
		sort.Slice(adj[v], func(i, j int) bool { return adj[v][i] < adj[v][j] })
	}
	s := &sortedSym{n: n, adj: adj, idx: make([]uint64, n)}
	var off uint64
	for v := 0; v < n; v++ {
		s.flat = append(s.flat, adj[v]...)
		off += uint64(len(adj[v]))
		s.idx[v] = off
	}
	return s
}

func (s *sortedSym) Kind() views.Kind { return views.EdgesSortedByDestID }
func (s *sortedSym) NumNodes() int    { return s.n }
func (s *sortedSym) NumEdges() int    { return len(s.flat) }
func (s *sortedSym) OutRange(v uint32) (start, end uint64) {
	if v > 0 {
		start = s.idx[v-1]
	}
	end = s.idx[v]
	return start, end
}
func (s *sortedSym) OutDegree(v uint32) int       { return len(s.adj[v]) }
func (s *sortedSym) OutEdgeDst(e uint64) uint32   { return s.flat[e] }
func (s *sortedSym) FindEdge(src, dst uint32) (uint64, bool) {
	start, end := s.OutRange(src)
	bucket := s.flat[start:end]
	i := sort.Search(len(bucket), func(i int) bool { return bucket[i] >= dst })
	if i < len(bucket) && bucket[i] == dst {
		return start + uint64(i), true
	}
	return 0, false
}

// diamond is spec §8 scenarios 1 and 2: nodes {0,1,2,3}, every pair
// connected except none missing — a 4-clique minus nothing, i.e. the
// "2x2 grid with both diagonals" is literally K4 here. Expected: 4
// triangles via every algorithm.
func diamond() *sortedSym {
	edges := [][2]uint32{
		{0, 1}, {1, 2}, {2, 3}, {3, 0}, {0, 2}, {1, 3},
	}
	return newSortedSym(4, edges)
}

// cliqueWithPendant is spec §8 scenario 3: K4 on {0,1,2,3} plus a
// pendant edge (3,4).
func cliqueWithPendant() *sortedSym {
	edges := [][2]uint32{
		{0, 1}, {0, 2}, {0, 3}, {1, 2}, {1, 3}, {2, 3},
		{3, 4},
	}
	return newSortedSym(5, edges)
}

// triangleWithIsolatedNode is spec §8 scenario 6.
func triangleWithIsolatedNode() *sortedSym {
	edges := [][2]uint32{{0, 1}, {1, 2}, {2, 0}}
	return newSortedSym(4, edges)
}
