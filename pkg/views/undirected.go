package views

// undirectedView symmetrizes adjacency: every directed edge (u,v)
// contributes a neighbor slot at both u and v (self-loops contribute
// once, matching a single stored occurrence, per spec §4.4
// Undirected "each edge appears once per endpoint").
type undirectedView struct {
	numNodes int
	indices  []uint64
	neighbor []NodeID
}

func newUndirectedView(base BaseTopology) (*undirectedView, error) {
	n := base.NumNodes()
	degree := make([]uint64, n)

	for v := 0; v < n; v++ {
		start, end := base.OutRange(NodeID(v))
		for e := start; e < end; e++ {
			dst := base.OutEdgeDst(e)
			degree[v]++
			if dst != NodeID(v) {
				degree[dst]++
			}
		}
	}

	indices := make([]uint64, n)
	var running uint64
	for v := 0; v < n; v++ {
		running += degree[v]
		indices[v] = running
	}

	cursor := make([]uint64, n)
	for v := 0; v < n; v++ {
		if v == 0 {
			cursor[v] = 0
		} else {
			cursor[v] = indices[v-1]
		}
	}

	neighbor := make([]NodeID, running)
	for v := 0; v < n; v++ {
		start, end := base.OutRange(NodeID(v))
		for e := start; e < end; e++ {
			dst := base.OutEdgeDst(e)
			neighbor[cursor[v]] = dst
			cursor[v]++
			if dst != NodeID(v) {
				neighbor[cursor[dst]] = NodeID(v)
				cursor[dst]++
			}
		}
	}

	return &undirectedView{numNodes: n, indices: indices, neighbor: neighbor}, nil
}

func (v *undirectedView) Kind() Kind    { return Undirected }
func (v *undirectedView) NumNodes() int { return v.numNodes }
func (v *undirectedView) NumEdges() int { return len(v.neighbor) }

func (v *undirectedView) OutRange(n NodeID) (start, end EdgeID) { return v.UndirectedEdges(n) }
func (v *undirectedView) OutDegree(n NodeID) int                { return v.UndirectedDegree(n) }
func (v *undirectedView) OutEdgeDst(e EdgeID) NodeID            { return v.UndirectedEdgeNeighbor(e) }

func (v *undirectedView) UndirectedEdges(n NodeID) (start, end EdgeID) {
	if n > 0 {
		start = EdgeID(v.indices[n-1])
	}
	end = EdgeID(v.indices[n])
	return start, end
}

func (v *undirectedView) UndirectedDegree(n NodeID) int {
	start, end := v.UndirectedEdges(n)
	return int(end - start)
}

func (v *undirectedView) UndirectedEdgeNeighbor(e EdgeID) NodeID { return v.neighbor[e] }
