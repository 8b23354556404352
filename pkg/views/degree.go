package views

import "sort"

// degreeSortedView relabels nodes by ascending out-degree (ties broken
// by original id for determinism) and, when composeSortedDest is set,
// additionally sorts each relabeled node's adjacency by destination in
// the new id space (spec §4.4 NodesSortedByDegree and
// NodesSortedByDegreeEdgesSortedByDestID).
type degreeSortedView struct {
	numNodes int
	// perm[newID] = originalID; inv[originalID] = newID.
	perm []NodeID
	inv  []NodeID

	outIndices []uint64
	outDests   []NodeID
	sortedDest bool
}

func newDegreeSortedView(base BaseTopology, composeSortedDest bool) (*degreeSortedView, error) {
	n := base.NumNodes()
	perm := make([]NodeID, n)
	for v := 0; v < n; v++ {
		perm[v] = NodeID(v)
	}
	degreeOf := func(v NodeID) int {
		start, end := base.OutRange(v)
		return int(end - start)
	}
	sort.SliceStable(perm, func(i, j int) bool {
		di, dj := degreeOf(perm[i]), degreeOf(perm[j])
		if di != dj {
			return di < dj
		}
		return perm[i] < perm[j]
	})

	inv := make([]NodeID, n)
	for newID, origID := range perm {
		inv[origID] = NodeID(newID)
	}

	outIndices := make([]uint64, n)
	outDests := make([]NodeID, base.NumEdges())

	var cursor uint64
	for newID := 0; newID < n; newID++ {
		orig := perm[newID]
		start, end := base.OutRange(orig)
		for e := start; e < end; e++ {
			outDests[cursor] = inv[base.OutEdgeDst(e)]
			cursor++
		}
		outIndices[newID] = cursor
	}

	if composeSortedDest {
		for newID := 0; newID < n; newID++ {
			var lo uint64
			if newID > 0 {
				lo = outIndices[newID-1]
			}
			hi := outIndices[newID]
			bucket := outDests[lo:hi]
			sort.Slice(bucket, func(i, j int) bool { return bucket[i] < bucket[j] })
		}
	}

	return &degreeSortedView{
		numNodes:   n,
		perm:       perm,
		inv:        inv,
		outIndices: outIndices,
		outDests:   outDests,
		sortedDest: composeSortedDest,
	}, nil
}

func (v *degreeSortedView) Kind() Kind {
	if v.sortedDest {
		return NodesSortedByDegreeEdgesSortedByDestID
	}
	return NodesSortedByDegree
}

func (v *degreeSortedView) NumNodes() int { return v.numNodes }
func (v *degreeSortedView) NumEdges() int { return len(v.outDests) }

func (v *degreeSortedView) OutRange(n NodeID) (start, end EdgeID) {
	if n > 0 {
		start = EdgeID(v.outIndices[n-1])
	}
	end = EdgeID(v.outIndices[n])
	return start, end
}

func (v *degreeSortedView) OutDegree(n NodeID) int {
	start, end := v.OutRange(n)
	return int(end - start)
}

func (v *degreeSortedView) OutEdgeDst(e EdgeID) NodeID { return v.outDests[e] }

// Permutation[newID] returns the original node id now at newID.
func (v *degreeSortedView) Permutation() []NodeID { return v.perm }

// Inverse[originalID] returns the relabeled slot holding originalID.
func (v *degreeSortedView) Inverse() []NodeID { return v.inv }

// FindEdge is only meaningful when this view composes destination
// sorting; it binary-searches the relabeled, dest-sorted adjacency.
func (v *degreeSortedView) FindEdge(src, dst NodeID) (EdgeID, bool) {
	if !v.sortedDest {
		return 0, false
	}
	start, end := v.OutRange(src)
	bucket := v.outDests[start:end]
	idx := sort.Search(len(bucket), func(i int) bool { return bucket[i] >= dst })
	if idx < len(bucket) && bucket[idx] == dst {
		return start + EdgeID(idx), true
	}
	return 0, false
}
