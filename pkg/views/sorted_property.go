package views

import "sort"

// sortedByPropertyView reorders each node's adjacency ascending by an
// externally supplied edge weight, breaking ties by destination id,
// per spec §4.4 EdgesSortedByProperty ("sorted by a given edge
// property, then by destination"). The property itself lives in the
// edge property table (package properties); this view only needs the
// resolved weight slice, keeping views free of a properties import.
type sortedByPropertyView struct {
	base         BaseTopology
	propertyName string
	outIndices   []uint64
	outDests     []NodeID
	// order[e] is the original base edge id now occupying slot e of
	// this view's adjacency, so callers can map a view edge back to
	// its source property value.
	order []EdgeID
}

func newSortedByPropertyView(base BaseTopology, propertyName string, weight []float64) (*sortedByPropertyView, error) {
	outIndices, outDests := base.RawArrays()
	n := base.NumNodes()
	m := len(outDests)

	sortedDests := make([]NodeID, m)
	order := make([]EdgeID, m)

	for v := 0; v < n; v++ {
		var lo uint64
		if v > 0 {
			lo = outIndices[v-1]
		}
		hi := outIndices[v]

		idx := make([]int, 0, hi-lo)
		for e := lo; e < hi; e++ {
			idx = append(idx, int(e))
		}
		sort.Slice(idx, func(i, j int) bool {
			a, b := idx[i], idx[j]
			if weight[a] != weight[b] {
				return weight[a] < weight[b]
			}
			return outDests[a] < outDests[b]
		})
		for i, e := range idx {
			slot := int(lo) + i
			sortedDests[slot] = outDests[e]
			order[slot] = EdgeID(e)
		}
	}

	idxCopy := make([]uint64, len(outIndices))
	copy(idxCopy, outIndices)

	return &sortedByPropertyView{
		base:         base,
		propertyName: propertyName,
		outIndices:   idxCopy,
		outDests:     sortedDests,
		order:        order,
	}, nil
}

func (v *sortedByPropertyView) Kind() Kind            { return EdgesSortedByProperty }
func (v *sortedByPropertyView) NumNodes() int         { return v.base.NumNodes() }
func (v *sortedByPropertyView) NumEdges() int         { return len(v.outDests) }
func (v *sortedByPropertyView) PropertyName() string   { return v.propertyName }

func (v *sortedByPropertyView) OutRange(n NodeID) (start, end EdgeID) {
	if n > 0 {
		start = EdgeID(v.outIndices[n-1])
	}
	end = EdgeID(v.outIndices[n])
	return start, end
}

func (v *sortedByPropertyView) OutDegree(n NodeID) int {
	start, end := v.OutRange(n)
	return int(end - start)
}

func (v *sortedByPropertyView) OutEdgeDst(e EdgeID) NodeID { return v.outDests[e] }

// BaseEdgeID maps a view-local edge id back to the base topology's
// edge id, so a caller can look up the original edge's full property
// row after iterating this view's order.
func (v *sortedByPropertyView) BaseEdgeID(e EdgeID) EdgeID { return v.order[e] }
