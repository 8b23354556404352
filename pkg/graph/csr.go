package graph

import (
	"fmt"

	"github.com/dd0wney/parageon/pkg/errs"
)

// NodeID is a dense node identifier in [0, N).
type NodeID = uint32

// EdgeID is both a handle into the adjacency arrays and a property
// index; it is dense in [0, M) for the default topology.
type EdgeID = uint64

// Topology is the base compressed-sparse-row adjacency: outIndices is a
// prefix sum of length N where outIndices[v] is the one-past-last edge
// of node v (outIndices[-1] is implicit 0, per spec §3); outDests holds
// the destination node of each out-edge concatenated in node-id order.
//
// A Topology is immutable after construction via NewTopology; every
// method is safe for unsynchronized concurrent reads.
type Topology struct {
	numNodes   int
	outIndices []uint64 // length numNodes
	outDests   []NodeID // length numEdges
}

// NewTopology builds a Topology from caller-supplied arrays. outIndices
// must have length numNodes, be non-decreasing, and end at
// len(outDests) (outIndices[numNodes-1] == M). Every destination in
// outDests must be < numNodes. Self-loops and parallel edges are
// permitted; the base topology imposes no ordering within a node's
// adjacency.
func NewTopology(numNodes int, outIndices []uint64, outDests []NodeID) (*Topology, error) {
	if numNodes < 0 {
		return nil, errs.InvalidArgument("NewTopology", "numNodes must be >= 0")
	}
	if len(outIndices) != numNodes {
		return nil, errs.InvalidArgument("NewTopology",
			fmt.Sprintf("outIndices length %d must equal numNodes (%d)", len(outIndices), numNodes))
	}
	var prev uint64
	for i, v := range outIndices {
		if v < prev {
			return nil, errs.InvalidArgument("NewTopology",
				fmt.Sprintf("outIndices must be non-decreasing at index %d", i))
		}
		prev = v
	}
	if numNodes > 0 && outIndices[numNodes-1] != uint64(len(outDests)) {
		return nil, errs.InvalidArgument("NewTopology", "outIndices[N-1] must equal len(outDests)")
	}
	if numNodes == 0 && len(outDests) != 0 {
		return nil, errs.InvalidArgument("NewTopology", "zero-node topology must have zero edges")
	}
	for _, d := range outDests {
		if int(d) >= numNodes {
			return nil, errs.InvalidArgument("NewTopology",
				fmt.Sprintf("out_dests entry %d out of range for %d nodes", d, numNodes))
		}
	}

	t := &Topology{
		numNodes:   numNodes,
		outIndices: make([]uint64, len(outIndices)),
		outDests:   make([]NodeID, len(outDests)),
	}
	copy(t.outIndices, outIndices)
	copy(t.outDests, outDests)
	return t, nil
}

// NumNodes returns N in constant time.
func (t *Topology) NumNodes() int {
	return t.numNodes
}

// NumEdges returns M in constant time.
func (t *Topology) NumEdges() int {
	return len(t.outDests)
}

// OutRange returns the half-open edge-id range [start, end) of v's
// out-edges; its length equals OutDegree(v).
func (t *Topology) OutRange(v NodeID) (start, end EdgeID) {
	var lo uint64
	if v > 0 {
		lo = t.outIndices[v-1]
	}
	return lo, t.outIndices[v]
}

// OutDegree returns the out-degree of v in O(1).
func (t *Topology) OutDegree(v NodeID) int {
	start, end := t.OutRange(v)
	return int(end - start)
}

// OutEdgeDst returns out_dests[e] in O(1).
func (t *Topology) OutEdgeDst(e EdgeID) NodeID {
	return t.outDests[e]
}

// ForEachOutEdge calls fn(e, dst) for every out-edge of v, in adjacency
// order. It never allocates and is the primitive most hot loops in the
// algorithm packages are built on.
func (t *Topology) ForEachOutEdge(v NodeID, fn func(e EdgeID, dst NodeID)) {
	start, end := t.OutRange(v)
	for e := start; e < end; e++ {
		fn(e, t.outDests[e])
	}
}

// RawArrays exposes the backing arrays by reference for derived views
// that need to build additional structures on top of the base CSR
// without copying it (§4.4). Callers must not mutate the returned
// slices.
func (t *Topology) RawArrays() (outIndices []uint64, outDests []NodeID) {
	return t.outIndices, t.outDests
}
