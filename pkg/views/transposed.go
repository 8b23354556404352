package views

import "github.com/dd0wney/parageon/pkg/errs"

// transposedView exposes the reversed graph: OutRange/OutEdgeDst walk
// incoming edges of base. Built with the classic two-pass CSR
// transpose: count in-degrees, prefix-sum into an index array, then
// scatter sources into place using a per-node write cursor, O(N+M)
// time and space.
type transposedView struct {
	numNodes  int
	inIndices []uint64 // length numNodes, same convention as graph.Topology.outIndices
	inSrcs    []NodeID // length numEdges; inSrcs[e] is the source of transposed-edge e
}

func newTransposedView(base BaseTopology) (*transposedView, error) {
	n := base.NumNodes()
	m := base.NumEdges()
	if n < 0 {
		return nil, errs.InvalidArgument("BuildTransposed", "negative node count")
	}

	degree := make([]uint64, n)
	for v := 0; v < n; v++ {
		start, end := base.OutRange(NodeID(v))
		for e := start; e < end; e++ {
			dst := base.OutEdgeDst(e)
			degree[dst]++
		}
	}

	inIndices := make([]uint64, n)
	var running uint64
	for v := 0; v < n; v++ {
		running += degree[v]
		inIndices[v] = running
	}
	if int(running) != m {
		return nil, errs.Assertion("BuildTransposed", "accumulated in-degree does not match edge count")
	}

	// cursor[v] starts at the first free slot for v's incoming bucket
	// (the slot immediately after inIndices[v-1]) and advances as
	// sources are scattered in.
	cursor := make([]uint64, n)
	for v := 0; v < n; v++ {
		if v == 0 {
			cursor[v] = 0
		} else {
			cursor[v] = inIndices[v-1]
		}
	}

	inSrcs := make([]NodeID, m)
	for v := 0; v < n; v++ {
		start, end := base.OutRange(NodeID(v))
		for e := start; e < end; e++ {
			dst := base.OutEdgeDst(e)
			slot := cursor[dst]
			inSrcs[slot] = NodeID(v)
			cursor[dst]++
		}
	}

	return &transposedView{numNodes: n, inIndices: inIndices, inSrcs: inSrcs}, nil
}

func (v *transposedView) Kind() Kind    { return Transposed }
func (v *transposedView) NumNodes() int { return v.numNodes }
func (v *transposedView) NumEdges() int { return len(v.inSrcs) }

// OutRange on the transposed view walks base's incoming edges: the
// transposed graph's "out" direction is base's "in" direction.
func (v *transposedView) OutRange(n NodeID) (start, end EdgeID) {
	if n > 0 {
		start = EdgeID(v.inIndices[n-1])
	}
	end = EdgeID(v.inIndices[n])
	return start, end
}

func (v *transposedView) OutDegree(n NodeID) int {
	start, end := v.OutRange(n)
	return int(end - start)
}

func (v *transposedView) OutEdgeDst(e EdgeID) NodeID { return v.inSrcs[e] }
