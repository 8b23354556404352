package views

import "sort"

// sortedDestView reorders each node's adjacency list ascending by
// destination id, same index convention as the base topology,
// enabling FindEdge via binary search within a node's range (spec
// §4.1 find_edge, §4.4 EdgesSortedByDestID).
type sortedDestView struct {
	base      BaseTopology
	outIndices []uint64 // identical to base's; adjacency is reordered, not resized
	outDests   []NodeID
}

func newSortedDestView(base BaseTopology) (*sortedDestView, error) {
	outIndices, outDests := base.RawArrays()
	sortedDests := make([]NodeID, len(outDests))
	copy(sortedDests, outDests)

	n := base.NumNodes()
	for v := 0; v < n; v++ {
		var lo uint64
		if v > 0 {
			lo = outIndices[v-1]
		}
		hi := outIndices[v]
		bucket := sortedDests[lo:hi]
		sort.Slice(bucket, func(i, j int) bool { return bucket[i] < bucket[j] })
	}

	idxCopy := make([]uint64, len(outIndices))
	copy(idxCopy, outIndices)

	return &sortedDestView{base: base, outIndices: idxCopy, outDests: sortedDests}, nil
}

func (v *sortedDestView) Kind() Kind    { return EdgesSortedByDestID }
func (v *sortedDestView) NumNodes() int { return v.base.NumNodes() }
func (v *sortedDestView) NumEdges() int { return len(v.outDests) }

func (v *sortedDestView) OutRange(n NodeID) (start, end EdgeID) {
	if n > 0 {
		start = EdgeID(v.outIndices[n-1])
	}
	end = EdgeID(v.outIndices[n])
	return start, end
}

func (v *sortedDestView) OutDegree(n NodeID) int {
	start, end := v.OutRange(n)
	return int(end - start)
}

func (v *sortedDestView) OutEdgeDst(e EdgeID) NodeID { return v.outDests[e] }

// FindEdge binary-searches src's sorted adjacency for dst. Parallel
// edges resolve to the first matching slot. Returns (0, false) if no
// such edge exists.
func (v *sortedDestView) FindEdge(src, dst NodeID) (EdgeID, bool) {
	start, end := v.OutRange(src)
	bucket := v.outDests[start:end]
	idx := sort.Search(len(bucket), func(i int) bool { return bucket[i] >= dst })
	if idx < len(bucket) && bucket[idx] == dst {
		return start + EdgeID(idx), true
	}
	return 0, false
}
