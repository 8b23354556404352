package views

import "sort"

// typeAwareView is BiDirectional with each node's out- and in-edges
// additionally partitioned and sorted by edge entity-type id, so
// OutEdgesOfType/InEdgesOfType run in time proportional to the
// matching slice rather than the full adjacency (spec §4.4
// EdgeTypeAwareBiDir, §9 "Σ_t out_degree(v,t) = out_degree(v)").
type typeAwareView struct {
	bidi      *biDirectionalView
	numTypes  int
	edgeType  []uint32 // indexed by base edge id

	// outTypeStart[v][t]/outTypeEnd[v][t] bound the contiguous
	// sub-range of outOrder[v]'s edges carrying type t.
	outOrder     [][]EdgeID // per node, edges grouped by type then by dest
	outTypeStart [][]int
	outTypeEnd   [][]int

	inOrder     [][]EdgeID
	inTypeStart [][]int
	inTypeEnd   [][]int
}

func newTypeAwareView(base BaseTopology, edgeType []uint32, numTypes int) (*typeAwareView, error) {
	bidi, err := newBiDirectionalView(base)
	if err != nil {
		return nil, err
	}

	n := base.NumNodes()
	outOrder := make([][]EdgeID, n)
	outStart := make([][]int, n)
	outEnd := make([][]int, n)
	inOrder := make([][]EdgeID, n)
	inStart := make([][]int, n)
	inEnd := make([][]int, n)

	for v := 0; v < n; v++ {
		start, end := bidi.OutRange(NodeID(v))
		edges := make([]EdgeID, 0, end-start)
		for e := start; e < end; e++ {
			edges = append(edges, e)
		}
		o, s, en := groupByType(edges, edgeType, numTypes, func(e EdgeID) NodeID { return bidi.OutEdgeDst(e) })
		outOrder[v] = o
		outStart[v] = s
		outEnd[v] = en

		inS, inE := bidi.InRange(NodeID(v))
		inEdges := make([]EdgeID, 0, inE-inS)
		for e := inS; e < inE; e++ {
			inEdges = append(inEdges, e)
		}
		io, is, ie := groupByType(inEdges, edgeType, numTypes, func(e EdgeID) NodeID { return bidi.InEdgeSrc(e) })
		inOrder[v] = io
		inStart[v] = is
		inEnd[v] = ie
	}

	return &typeAwareView{
		bidi:         bidi,
		numTypes:     numTypes,
		edgeType:     edgeType,
		outOrder:     outOrder,
		outTypeStart: outStart,
		outTypeEnd:   outEnd,
		inOrder:      inOrder,
		inTypeStart:  inStart,
		inTypeEnd:    inEnd,
	}, nil
}

// groupByType buckets edges by their entity-type id (ascending by
// neighbor id within a bucket) and returns the flattened edge order
// plus per-type [start,end) bounds into that order.
func groupByType(edges []EdgeID, edgeType []uint32, numTypes int, neighbor func(EdgeID) NodeID) ([]EdgeID, []int, []int) {
	buckets := make([][]EdgeID, numTypes)
	for _, e := range edges {
		t := edgeType[e]
		buckets[t] = append(buckets[t], e)
	}

	order := make([]EdgeID, 0, len(edges))
	typeStart := make([]int, numTypes)
	typeEnd := make([]int, numTypes)
	for t := 0; t < numTypes; t++ {
		bucket := buckets[t]
		sort.Slice(bucket, func(i, j int) bool { return neighbor(bucket[i]) < neighbor(bucket[j]) })
		typeStart[t] = len(order)
		order = append(order, bucket...)
		typeEnd[t] = len(order)
	}
	return order, typeStart, typeEnd
}

func (v *typeAwareView) Kind() Kind    { return EdgeTypeAwareBiDir }
func (v *typeAwareView) NumNodes() int { return v.bidi.NumNodes() }
func (v *typeAwareView) NumEdges() int { return v.bidi.NumEdges() }

func (v *typeAwareView) OutRange(n NodeID) (start, end EdgeID) { return v.bidi.OutRange(n) }
func (v *typeAwareView) OutDegree(n NodeID) int                { return v.bidi.OutDegree(n) }
func (v *typeAwareView) OutEdgeDst(e EdgeID) NodeID            { return v.bidi.OutEdgeDst(e) }

func (v *typeAwareView) InRange(n NodeID) (start, end EdgeID) { return v.bidi.InRange(n) }
func (v *typeAwareView) InDegree(n NodeID) int                { return v.bidi.InDegree(n) }
func (v *typeAwareView) InEdgeSrc(e EdgeID) NodeID            { return v.bidi.InEdgeSrc(e) }

func (v *typeAwareView) OutEdgesOfType(n NodeID, t uint32) (start, end EdgeID) {
	s, e := v.outTypeStart[n][t], v.outTypeEnd[n][t]
	return EdgeID(s), EdgeID(e)
}

func (v *typeAwareView) OutDegreeOfType(n NodeID, t uint32) int {
	return v.outTypeEnd[n][t] - v.outTypeStart[n][t]
}

func (v *typeAwareView) InEdgesOfType(n NodeID, t uint32) (start, end EdgeID) {
	s, e := v.inTypeStart[n][t], v.inTypeEnd[n][t]
	return EdgeID(s), EdgeID(e)
}

func (v *typeAwareView) InDegreeOfType(n NodeID, t uint32) int {
	return v.inTypeEnd[n][t] - v.inTypeStart[n][t]
}

// OutEdgeAt and InEdgeAt resolve a (node, type, local-index) triple
// from OutEdgesOfType/InEdgesOfType back to the underlying base edge
// id, since those ranges index into this view's per-node reordering
// rather than the base edge id space directly.
func (v *typeAwareView) OutEdgeAt(n NodeID, i EdgeID) EdgeID { return v.outOrder[n][i] }
func (v *typeAwareView) InEdgeAt(n NodeID, i EdgeID) EdgeID  { return v.inOrder[n][i] }
