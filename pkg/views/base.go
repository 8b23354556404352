package views

// NodeID and EdgeID mirror graph.NodeID/graph.EdgeID exactly (both are
// plain type aliases), so values flow between the two packages without
// conversion while views stays free of an import on package graph.
type NodeID = uint32
type EdgeID = uint64

// BaseTopology is the structural shape of *graph.Topology that views
// needs: a fixed node/edge count, O(1) out-edge range and destination
// lookup, and access to the raw backing arrays so a view can build
// auxiliary structures without copying the base topology.
type BaseTopology interface {
	NumNodes() int
	NumEdges() int
	OutRange(v NodeID) (start, end EdgeID)
	OutEdgeDst(e EdgeID) NodeID
	RawArrays() (outIndices []uint64, outDests []NodeID)
}

// TopologyView is the capability every view kind provides: iterate
// nodes, get a node's out-edge range, its degree, and an edge's
// destination. Algorithms generic over "some view" accept this
// interface; views with richer capabilities additionally satisfy one
// or more of InEdger, Sorted, Undirected, or TypeAware below (spec §9,
// "Polymorphic views").
type TopologyView interface {
	Kind() Kind
	NumNodes() int
	NumEdges() int
	OutRange(v NodeID) (start, end EdgeID)
	OutDegree(v NodeID) int
	OutEdgeDst(e EdgeID) NodeID
}

// InEdger is satisfied by views that also expose an in-edge
// adjacency (BiDirectional, EdgeTypeAwareBiDir). The Transposed view
// exposes the reversed graph through OutRange/OutEdgeDst instead.
type InEdger interface {
	InRange(v NodeID) (start, end EdgeID)
	InDegree(v NodeID) int
	InEdgeSrc(e EdgeID) NodeID
}

// Sorted is satisfied by views whose per-node adjacency is ordered,
// enabling binary-search edge lookup (spec §4.1 find_edge).
type Sorted interface {
	FindEdge(src, dst NodeID) (EdgeID, bool)
}

// DegreeRelabeled is satisfied by views that relabel nodes by a
// degree-sorted permutation.
type DegreeRelabeled interface {
	// Permutation[i] is the original node id now occupying relabeled slot i.
	Permutation() []NodeID
	// Inverse[v] is the relabeled slot holding original node id v.
	Inverse() []NodeID
}

// Undirected is satisfied by the Undirected view kind.
type Undirected interface {
	UndirectedEdges(v NodeID) (start, end EdgeID)
	UndirectedDegree(v NodeID) int
	UndirectedEdgeNeighbor(e EdgeID) NodeID
}

// TypeAware is satisfied by EdgeTypeAwareBiDir: out/in edges and
// degrees restricted to one edge entity-type id, in time proportional
// to the result size (spec §4.4, §9).
type TypeAware interface {
	OutEdgesOfType(v NodeID, t uint32) (start, end EdgeID)
	OutDegreeOfType(v NodeID, t uint32) int
	InEdgesOfType(v NodeID, t uint32) (start, end EdgeID)
	InDegreeOfType(v NodeID, t uint32) int
}

// defaultView wraps the base topology unmodified.
type defaultView struct {
	base BaseTopology
}

func (v *defaultView) Kind() Kind       { return Default }
func (v *defaultView) NumNodes() int    { return v.base.NumNodes() }
func (v *defaultView) NumEdges() int    { return v.base.NumEdges() }
func (v *defaultView) OutRange(n NodeID) (EdgeID, EdgeID) {
	return v.base.OutRange(n)
}
func (v *defaultView) OutDegree(n NodeID) int {
	start, end := v.base.OutRange(n)
	return int(end - start)
}
func (v *defaultView) OutEdgeDst(e EdgeID) NodeID { return v.base.OutEdgeDst(e) }
