package community

// AdjacencyView is the structural shape of a views.TopologyView that
// community detection needs. Any handle returned by
// graph.Graph.BuildView (most naturally the Undirected view, since
// modularity is defined over undirected adjacency) satisfies this
// without community importing package views, mirroring the
// BaseTopology pattern in pkg/views.
type AdjacencyView interface {
	NumNodes() int
	NumEdges() int
	OutRange(v uint32) (start, end uint64)
	OutDegree(v uint32) int
	OutEdgeDst(e uint64) uint32
}
